package replay

// FrameInput records the held actions and the delta of a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	L  bool    `json:"l,omitempty"` // Left
	R  bool    `json:"r,omitempty"` // Right
	X  bool    `json:"x,omitempty"` // Fire
	J  bool    `json:"j,omitempty"` // Jump
	DT float64 `json:"dt"`          // Seconds since the previous frame
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
