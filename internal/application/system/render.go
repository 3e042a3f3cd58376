package system

import (
	"github.com/younwookim/sam/internal/domain/entity"
	"github.com/younwookim/sam/internal/infrastructure/config"
)

// Camera is the top-left corner of the viewport in unscaled level pixels
type Camera struct {
	X, Y         int
	viewW, viewH int
	tileW, tileH int
}

// NewCamera creates a camera with the viewport size of display
func NewCamera(display config.DisplayConfig) *Camera {
	vw, vh := display.ViewportPixels()
	return &Camera{
		viewW: vw,
		viewH: vh,
		tileW: display.TileWidth,
		tileH: display.TileHeight,
	}
}

// Follow centres the viewport on the player, clamped to the level edges
func (c *Camera) Follow(p *entity.Player, level *entity.Level) {
	c.X = clampView(p.PixelX()+c.tileW/2-c.viewW/2, level.PixelWidth()-c.viewW)
	c.Y = clampView(p.PixelY()+c.tileH/2-c.viewH/2, level.PixelHeight()-c.viewH)
}

// ViewportSize returns the viewport size in unscaled pixels
func (c *Camera) ViewportSize() (w, h int) {
	return c.viewW, c.viewH
}

func clampView(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// DrawCommand asks the renderer to draw one atlas tile into a screen rectangle.
// Coordinates are scaled screen pixels.
type DrawCommand struct {
	TileID int
	X, Y   int
	W, H   int
}

// RenderFeed is everything the renderer needs for one frame, in draw order
type RenderFeed struct {
	Back    []DrawCommand
	Mid     []DrawCommand
	Front   []DrawCommand
	Objects []DrawCommand
	Player  DrawCommand
	Status  Status
}

// FeedBuilder produces render feeds, reusing the tile commands while
// neither the level nor the camera has changed.
// A feed's slices are only valid until the next Build.
type FeedBuilder struct {
	camera *Camera
	scale  int

	cached   bool
	revision int
	camX     int
	camY     int
	level    *entity.Level
	back     []DrawCommand
	mid      []DrawCommand
	front    []DrawCommand
}

// NewFeedBuilder creates a builder drawing through camera at the display scale
func NewFeedBuilder(camera *Camera, scale int) *FeedBuilder {
	return &FeedBuilder{camera: camera, scale: scale}
}

// Build follows the player with the camera and returns the frame's feed
func (b *FeedBuilder) Build(sim *Simulation) RenderFeed {
	level := sim.Level()
	b.camera.Follow(sim.Player(), level)

	if !b.cached || b.level != level || b.revision != level.Revision ||
		b.camX != b.camera.X || b.camY != b.camera.Y {
		b.buildTiles(level)
	}

	feed := RenderFeed{
		Back:   b.back,
		Mid:    b.mid,
		Front:  b.front,
		Status: sim.Status(),
	}

	vw, vh := b.camera.ViewportSize()
	for _, obj := range sim.Objects() {
		x, y := obj.Position()
		if !rectsOverlap(int(x), int(y), obj.DrawWidth(), level.TileHeight, b.camera.X, b.camera.Y, vw, vh) {
			continue
		}
		feed.Objects = append(feed.Objects, b.sprite(obj, level.TileHeight))
	}
	feed.Player = b.sprite(sim.Player(), level.TileHeight)

	return feed
}

func (b *FeedBuilder) sprite(obj entity.Object, height int) DrawCommand {
	x, y := obj.Position()
	return DrawCommand{
		TileID: obj.TileID(),
		X:      (int(x) - b.camera.X) * b.scale,
		Y:      (int(y) - b.camera.Y) * b.scale,
		W:      obj.DrawWidth() * b.scale,
		H:      height * b.scale,
	}
}

func (b *FeedBuilder) buildTiles(level *entity.Level) {
	b.back = b.back[:0]
	b.mid = b.mid[:0]
	b.front = b.front[:0]

	tw, th := level.TileWidth, level.TileHeight
	vw, vh := b.camera.ViewportSize()
	firstCol, lastCol := level.ColumnAt(b.camera.X), level.ColumnAt(b.camera.X+vw-1)
	firstRow, lastRow := level.RowAt(b.camera.Y), level.RowAt(b.camera.Y+vh-1)

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			dst := DrawCommand{
				X: (col*tw - b.camera.X) * b.scale,
				Y: (row*th - b.camera.Y) * b.scale,
				W: tw * b.scale,
				H: th * b.scale,
			}
			if id := level.BackTile(col, row); id != entity.NoTile {
				dst.TileID = id
				b.back = append(b.back, dst)
			}
			if id := level.MidTile(col, row); id != entity.NoTile {
				dst.TileID = id
				b.mid = append(b.mid, dst)
			}
			if id := level.FrontTile(col, row); id != entity.NoTile {
				dst.TileID = id
				b.front = append(b.front, dst)
			}
		}
	}

	b.cached = true
	b.level = level
	b.revision = level.Revision
	b.camX, b.camY = b.camera.X, b.camera.Y
}
