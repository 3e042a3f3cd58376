package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Glasses   GlassesConfig   `json:"glasses"`
	Ammo      AmmoConfig      `json:"ammo"`
	Satellite SatelliteConfig `json:"satellite"`
	Pushable  PushableConfig  `json:"pushable"`
	Bullet    BulletConfig    `json:"bullet"`
}

// GlassesConfig configures the glasses pickup
type GlassesConfig struct {
	TileID         int `json:"tileID"`         // drawn when the mid layer has no graphic
	PlatformTileID int `json:"platformTileID"` // graphic of a revealed platform
	Points         int `json:"points"`
}

// AmmoConfig configures the ammo pickup
type AmmoConfig struct {
	TileID int `json:"tileID"`
	Shots  int `json:"shots"`
	Points int `json:"points"`
}

// SatelliteConfig configures the satellite dish
type SatelliteConfig struct {
	FrameSeconds float64 `json:"frameSeconds"`
}

// PushableConfig configures the pushable block
type PushableConfig struct {
	TileID int `json:"tileID"`
}

// BulletConfig configures the player's bullet
type BulletConfig struct {
	TileID     int     `json:"tileID"`
	Width      int     `json:"width"`
	SpeedTiles float64 `json:"speedTiles"` // tile widths per second
}

// DefaultEntities returns the object settings used when a field is left out of entities.json
func DefaultEntities() EntitiesConfig {
	return EntitiesConfig{
		Glasses:   GlassesConfig{TileID: 52, PlatformTileID: 53, Points: 50},
		Ammo:      AmmoConfig{TileID: 354, Shots: 5, Points: 10},
		Satellite: SatelliteConfig{FrameSeconds: 0.33},
		Pushable:  PushableConfig{TileID: 56},
		Bullet:    BulletConfig{TileID: 437, Width: 7, SpeedTiles: 3},
	}
}

// ApplyDefaults fills zero-valued fields from DefaultEntities.
// Points may legitimately be zero and are left alone.
func (c *EntitiesConfig) ApplyDefaults() {
	d := DefaultEntities()

	setInt(&c.Glasses.TileID, d.Glasses.TileID)
	setInt(&c.Glasses.PlatformTileID, d.Glasses.PlatformTileID)
	setInt(&c.Ammo.TileID, d.Ammo.TileID)
	setInt(&c.Ammo.Shots, d.Ammo.Shots)
	setFloat(&c.Satellite.FrameSeconds, d.Satellite.FrameSeconds)
	setInt(&c.Pushable.TileID, d.Pushable.TileID)
	setInt(&c.Bullet.TileID, d.Bullet.TileID)
	setInt(&c.Bullet.Width, d.Bullet.Width)
	setFloat(&c.Bullet.SpeedTiles, d.Bullet.SpeedTiles)
}
