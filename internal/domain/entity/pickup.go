package entity

// Glasses reveal every invisible platform of the level when the player touches them
type Glasses struct {
	staticTile
	PlatformTileID int
	Points         int
}

// NewGlasses creates glasses drawn with tileID at pixel coordinates x, y
func NewGlasses(x, y, tileID, width, platformTileID, points int) *Glasses {
	g := &Glasses{
		staticTile:     staticTile{tileID: tileID, width: width},
		PlatformTileID: platformTileID,
		Points:         points,
	}
	g.SetPixelPos(x, y)
	return g
}

// CollidedWith reveals the hidden platforms and is consumed when other is the player
func (g *Glasses) CollidedWith(other Object, level *Level) bool {
	p, ok := other.(*Player)
	if !ok {
		return false
	}
	level.RevealInvisiblePlatforms(g.PlatformTileID)
	p.AddScore(g.Points)
	return true
}

// Ammo grants the player extra shots
type Ammo struct {
	staticTile
	Shots  int
	Points int
}

// NewAmmo creates an ammo pickup drawn with tileID at pixel coordinates x, y
func NewAmmo(x, y, tileID, width, shots, points int) *Ammo {
	a := &Ammo{
		staticTile: staticTile{tileID: tileID, width: width},
		Shots:      shots,
		Points:     points,
	}
	a.SetPixelPos(x, y)
	return a
}

// CollidedWith grants the shots and is consumed when other is the player
func (a *Ammo) CollidedWith(other Object, _ *Level) bool {
	p, ok := other.(*Player)
	if !ok {
		return false
	}
	p.AddAmmo(a.Shots)
	p.AddScore(a.Points)
	return true
}
