package entity

import "fmt"

// Solidity is a bitmask of the tile edges that cannot be entered from that side
type Solidity uint8

// Solidity bits. The values match the level editor's definitions.
const (
	SolidTop    Solidity = 1 << 0
	SolidLeft   Solidity = 1 << 1
	SolidBottom Solidity = 1 << 2
	SolidRight  Solidity = 1 << 3

	SolidAll = SolidTop | SolidLeft | SolidBottom | SolidRight
)

// Has reports whether every bit in mask is set
func (s Solidity) Has(mask Solidity) bool {
	return s&mask == mask
}

// MapCode is the semantic tag placed on a tile by the level author
type MapCode int

const (
	CodeNone              MapCode = 0
	CodePlayerSpawn       MapCode = 1
	CodeDeath             MapCode = 2
	CodeInvisiblePlatform MapCode = 3
	CodeGlasses           MapCode = 4
	CodeTNT               MapCode = 5
	CodePushable          MapCode = 6
	CodeAmmo              MapCode = 7
	CodeSatellite         MapCode = 8
	CodeUseTNT            MapCode = 9 // next to the exit door, where TNT can be used
)

// String returns the string representation of the map code
func (c MapCode) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodePlayerSpawn:
		return "PlayerSpawn"
	case CodeDeath:
		return "Death"
	case CodeInvisiblePlatform:
		return "InvisiblePlatform"
	case CodeGlasses:
		return "Glasses"
	case CodeTNT:
		return "TNT"
	case CodePushable:
		return "Pushable"
	case CodeAmmo:
		return "Ammo"
	case CodeSatellite:
		return "Satellite"
	case CodeUseTNT:
		return "UseTNT"
	default:
		return fmt.Sprintf("MapCode(%d)", int(c))
	}
}

// NoTile marks an empty graphics cell
const NoTile = -1

// Facing is the horizontal direction an entity looks toward
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Sign returns -1 for left and +1 for right
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Action is a discrete player input resolved once per frame
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
	ActionFire
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

type layers struct {
	back, mid, front []int
	bounds           []Solidity
	codes            []MapCode
}

func (l layers) clone() layers {
	return layers{
		back:   append([]int(nil), l.back...),
		mid:    append([]int(nil), l.mid...),
		front:  append([]int(nil), l.front...),
		bounds: append([]Solidity(nil), l.bounds...),
		codes:  append([]MapCode(nil), l.codes...),
	}
}

// Level is the fixed-size tile grid of the current level.
// Every per-tile array is indexed by row*Width+column.
type Level struct {
	Name       string
	Width      int // tiles
	Height     int // tiles
	TileWidth  int // unscaled pixels
	TileHeight int // unscaled pixels

	// Revision increases on every grid mutation so renderers can rebuild cached backgrounds
	Revision int

	cur      layers
	pristine layers
}

// NewLevel creates an empty level: no graphics, no solidity, no codes
func NewLevel(name string, width, height, tileWidth, tileHeight int) *Level {
	n := width * height
	l := layers{
		back:   make([]int, n),
		mid:    make([]int, n),
		front:  make([]int, n),
		bounds: make([]Solidity, n),
		codes:  make([]MapCode, n),
	}
	for i := 0; i < n; i++ {
		l.back[i] = NoTile
		l.mid[i] = NoTile
		l.front[i] = NoTile
	}
	return &Level{
		Name:       name,
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		cur:        l,
		pristine:   l.clone(),
	}
}

// Index returns the array index of a tile and whether it lies inside the grid
func (l *Level) Index(col, row int) (int, bool) {
	if col < 0 || col >= l.Width || row < 0 || row >= l.Height {
		return 0, false
	}
	return row*l.Width + col, true
}

// Bounds returns the solidity of a tile. Tiles outside the grid are solid on every side.
func (l *Level) Bounds(col, row int) Solidity {
	i, ok := l.Index(col, row)
	if !ok {
		return SolidAll
	}
	return l.cur.bounds[i]
}

// SetBounds overwrites the solidity of a tile inside the grid
func (l *Level) SetBounds(col, row int, s Solidity) {
	i, ok := l.Index(col, row)
	if !ok {
		return
	}
	l.cur.bounds[i] = s
	l.Revision++
}

// Code returns the map code of a tile, CodeNone outside the grid
func (l *Level) Code(col, row int) MapCode {
	i, ok := l.Index(col, row)
	if !ok {
		return CodeNone
	}
	return l.cur.codes[i]
}

// SetCode overwrites the map code of a tile inside the grid
func (l *Level) SetCode(col, row int, c MapCode) {
	i, ok := l.Index(col, row)
	if !ok {
		return
	}
	l.cur.codes[i] = c
	l.Revision++
}

// BackTile returns the background graphic id, NoTile outside the grid
func (l *Level) BackTile(col, row int) int {
	i, ok := l.Index(col, row)
	if !ok {
		return NoTile
	}
	return l.cur.back[i]
}

// MidTile returns the mid-layer graphic id, NoTile outside the grid
func (l *Level) MidTile(col, row int) int {
	i, ok := l.Index(col, row)
	if !ok {
		return NoTile
	}
	return l.cur.mid[i]
}

// FrontTile returns the foreground graphic id, NoTile outside the grid
func (l *Level) FrontTile(col, row int) int {
	i, ok := l.Index(col, row)
	if !ok {
		return NoTile
	}
	return l.cur.front[i]
}

// SetMidTile overwrites the mid-layer graphic of a tile inside the grid
func (l *Level) SetMidTile(col, row, tileID int) {
	i, ok := l.Index(col, row)
	if !ok {
		return
	}
	l.cur.mid[i] = tileID
	l.Revision++
}

// SetCell writes every layer of one tile. Used while building a level.
func (l *Level) SetCell(col, row int, back, mid, front int, bounds Solidity, code MapCode) {
	i, ok := l.Index(col, row)
	if !ok {
		return
	}
	l.cur.back[i] = back
	l.cur.mid[i] = mid
	l.cur.front[i] = front
	l.cur.bounds[i] = bounds
	l.cur.codes[i] = code
	l.Revision++
}

// Seal records the current layers as the level's initial state for Restore
func (l *Level) Seal() {
	l.pristine = l.cur.clone()
}

// Restore puts every layer back to the state recorded by Seal
func (l *Level) Restore() {
	l.cur = l.pristine.clone()
	l.Revision++
}

// RevealInvisiblePlatforms turns every invisible-platform tile into a standable platform.
// Code, solidity and mid graphic of a tile are rewritten together.
// Returns the number of tiles revealed.
func (l *Level) RevealInvisiblePlatforms(platformTileID int) int {
	revealed := 0
	for i, code := range l.cur.codes {
		if code != CodeInvisiblePlatform {
			continue
		}
		l.cur.codes[i] = CodeNone
		l.cur.bounds[i] = SolidTop
		l.cur.mid[i] = platformTileID
		revealed++
	}
	if revealed > 0 {
		l.Revision++
	}
	return revealed
}

// Find returns the first tile carrying the given code, scanning row by row
func (l *Level) Find(code MapCode) (col, row int, ok bool) {
	for i, c := range l.cur.codes {
		if c == code {
			return i % l.Width, i / l.Width, true
		}
	}
	return 0, 0, false
}

// PixelWidth returns the level width in unscaled pixels
func (l *Level) PixelWidth() int {
	return l.Width * l.TileWidth
}

// PixelHeight returns the level height in unscaled pixels
func (l *Level) PixelHeight() int {
	return l.Height * l.TileHeight
}

// ColumnAt returns the tile column containing the unscaled pixel x
func (l *Level) ColumnAt(px int) int {
	return floorDiv(px, l.TileWidth)
}

// RowAt returns the tile row containing the unscaled pixel y
func (l *Level) RowAt(py int) int {
	return floorDiv(py, l.TileHeight)
}

// CodeAtPixel returns the map code of the tile containing the given pixel
func (l *Level) CodeAtPixel(px, py int) MapCode {
	return l.Code(l.ColumnAt(px), l.RowAt(py))
}

// floorDiv divides rounding toward negative infinity so pixels left of
// the grid map to column -1 rather than 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
