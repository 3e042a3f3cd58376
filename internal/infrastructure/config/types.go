package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig `json:"display"`
	Player  PlayerConfig  `json:"player"`
}

// DisplayConfig holds the fixed geometry the simulation arithmetic depends on
type DisplayConfig struct {
	TileWidth      int `json:"tileWidth"`      // unscaled pixels
	TileHeight     int `json:"tileHeight"`     // unscaled pixels
	ViewportWidth  int `json:"viewportWidth"`  // tiles
	ViewportHeight int `json:"viewportHeight"` // tiles
	Scale          int `json:"scale"`
	Framerate      int `json:"framerate"`
}

// ViewportPixels returns the viewport size in unscaled pixels
func (d DisplayConfig) ViewportPixels() (w, h int) {
	return d.ViewportWidth * d.TileWidth, d.ViewportHeight * d.TileHeight
}

// ScreenSize returns the window size in scaled pixels
func (d DisplayConfig) ScreenSize() (w, h int) {
	vw, vh := d.ViewportPixels()
	return vw * d.Scale, vh * d.Scale
}

// PlayerConfig holds the player movement constants, in unscaled pixels per second
type PlayerConfig struct {
	MaxXVelocity     float64 `json:"maxXVelocity"`
	MaxYVelocity     float64 `json:"maxYVelocity"`
	Acceleration     float64 `json:"acceleration"`
	TerminalVelocity float64 `json:"terminalVelocity"`
	AnimationRate    float64 `json:"animationRate"` // seconds per frame
	MaxBulletsFlying int     `json:"maxBulletsFlying"`
	StartingAmmo     int     `json:"startingAmmo"`
	StartingLives    int     `json:"startingLives"`
}

// Defaults returns the physics used when a field is left out of physics.json
func Defaults() PhysicsConfig {
	return PhysicsConfig{
		Display: DisplayConfig{
			TileWidth:      32,
			TileHeight:     32,
			ViewportWidth:  20,
			ViewportHeight: 15,
			Scale:          2,
			Framerate:      60,
		},
		Player: PlayerConfig{
			MaxXVelocity:     64,
			MaxYVelocity:     80,
			Acceleration:     80,
			TerminalVelocity: 160,
			AnimationRate:    0.1,
			MaxBulletsFlying: 1,
			StartingAmmo:     0,
			StartingLives:    3,
		},
	}
}

// ApplyDefaults fills zero-valued fields from Defaults
func (c *PhysicsConfig) ApplyDefaults() {
	d := Defaults()

	setInt(&c.Display.TileWidth, d.Display.TileWidth)
	setInt(&c.Display.TileHeight, d.Display.TileHeight)
	setInt(&c.Display.ViewportWidth, d.Display.ViewportWidth)
	setInt(&c.Display.ViewportHeight, d.Display.ViewportHeight)
	setInt(&c.Display.Scale, d.Display.Scale)
	setInt(&c.Display.Framerate, d.Display.Framerate)

	setFloat(&c.Player.MaxXVelocity, d.Player.MaxXVelocity)
	setFloat(&c.Player.MaxYVelocity, d.Player.MaxYVelocity)
	setFloat(&c.Player.Acceleration, d.Player.Acceleration)
	setFloat(&c.Player.TerminalVelocity, d.Player.TerminalVelocity)
	setFloat(&c.Player.AnimationRate, d.Player.AnimationRate)
	setInt(&c.Player.MaxBulletsFlying, d.Player.MaxBulletsFlying)
	setInt(&c.Player.StartingLives, d.Player.StartingLives)
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
