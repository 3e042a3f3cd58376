package entity

var satelliteFrames = [FramesPerAnimation]int{357, 358, 357, 359} // center, right, center, left

// SatelliteDish is a scenery object that keeps sweeping left and right.
// It counts the bullets that hit it but is never destroyed.
type SatelliteDish struct {
	Body
	Frame        int
	FrameElapsed float64
	FrameSeconds float64
	Width        int
	Hits         int
}

// NewSatelliteDish creates a dish at pixel coordinates x, y
func NewSatelliteDish(x, y, width int, frameSeconds float64) *SatelliteDish {
	s := &SatelliteDish{
		FrameSeconds: frameSeconds,
		Width:        width,
	}
	s.SetPixelPos(x, y)
	return s
}

// Tick advances the sweep animation
func (s *SatelliteDish) Tick(dt float64) {
	s.FrameElapsed += dt
	if s.FrameElapsed >= s.FrameSeconds {
		s.Frame = (s.Frame + 1) % FramesPerAnimation
		s.FrameElapsed = 0
	}
}

func (s *SatelliteDish) TileID() int    { return satelliteFrames[s.Frame] }
func (s *SatelliteDish) DrawWidth() int { return s.Width }

// CollidedWith records bullet hits. The dish is never consumed.
func (s *SatelliteDish) CollidedWith(other Object, _ *Level) bool {
	if _, ok := other.(*Bullet); ok {
		s.Hits++
	}
	return false
}
