package system

import (
	"image"

	"github.com/younwookim/sam/internal/domain/entity"
)

// OnSolidGround reports whether a body of the given width standing at x, y
// rests on a tile that is solid on top.
// Only tile-aligned heights count as grounded.
func OnSolidGround(level *entity.Level, x, y float64, width int) bool {
	py := int(y)
	if float64(py) != y || py%level.TileHeight != 0 {
		return false
	}
	px := int(x)
	row := level.RowAt(py) + 1
	left := level.ColumnAt(px)
	right := level.ColumnAt(px + width - 1)
	return level.Bounds(left, row).Has(entity.SolidTop) ||
		level.Bounds(right, row).Has(entity.SolidTop)
}

// CanMoveUp reports whether the row above the body's top is open from below
// under both its left and right edge
func CanMoveUp(level *entity.Level, x, y float64, width int) bool {
	px := int(x)
	row := level.RowAt(int(y) - 1)
	left := level.ColumnAt(px)
	right := level.ColumnAt(px + width - 1)
	return !level.Bounds(left, row).Has(entity.SolidBottom) &&
		!level.Bounds(right, row).Has(entity.SolidBottom)
}

// InDeathSquare reports whether any corner of the body lies in a hazard tile
func InDeathSquare(level *entity.Level, x, y float64, width, height int) bool {
	left, top := int(x), int(y)
	right, bottom := left+width-1, top+height-1
	for _, c := range [4][2]int{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
		if level.CodeAtPixel(c[0], c[1]) == entity.CodeDeath {
			return true
		}
	}
	return false
}

// AlphaMask tells whether a pixel of a tile is drawn.
// px, py are relative to the tile's top-left corner.
type AlphaMask interface {
	Opaque(tileID, px, py int) bool
}

// CollisionResolver tests objects for overlap.
// Each object's box is its draw width by one tile height.
type CollisionResolver struct {
	tileHeight int
	mask       AlphaMask
}

// NewCollisionResolver creates a resolver; mask may be nil when only box tests are needed
func NewCollisionResolver(tileHeight int, mask AlphaMask) *CollisionResolver {
	return &CollisionResolver{tileHeight: tileHeight, mask: mask}
}

// Overlaps reports whether the boxes of a and b intersect.
// An object always overlaps itself.
func (r *CollisionResolver) Overlaps(a, b entity.Object) bool {
	if a == b {
		return true
	}
	ax, ay := a.Position()
	bx, by := b.Position()
	return rectsOverlap(int(ax), int(ay), a.DrawWidth(), r.tileHeight,
		int(bx), int(by), b.DrawWidth(), r.tileHeight)
}

// PixelOverlap reports whether a and b share at least one opaque pixel.
// Falls back to the box test when no mask is configured.
func (r *CollisionResolver) PixelOverlap(a, b entity.Object) bool {
	if a == b {
		return true
	}
	if !r.Overlaps(a, b) {
		return false
	}
	if r.mask == nil {
		return true
	}

	ax, ay := a.Position()
	bx, by := b.Position()
	ra := image.Rect(int(ax), int(ay), int(ax)+a.DrawWidth(), int(ay)+r.tileHeight)
	rb := image.Rect(int(bx), int(by), int(bx)+b.DrawWidth(), int(by)+r.tileHeight)
	overlap := ra.Intersect(rb)

	ta, tb := a.TileID(), b.TileID()
	for y := overlap.Min.Y; y < overlap.Max.Y; y++ {
		for x := overlap.Min.X; x < overlap.Max.X; x++ {
			if r.mask.Opaque(ta, x-ra.Min.X, y-ra.Min.Y) && r.mask.Opaque(tb, x-rb.Min.X, y-rb.Min.Y) {
				return true
			}
		}
	}
	return false
}

// AtlasMask reads opacity from a tile atlas image laid out row by row
type AtlasMask struct {
	img        image.Image
	tileWidth  int
	tileHeight int
	perRow     int
}

// NewAtlasMask creates a mask over an atlas of tileWidth x tileHeight tiles
func NewAtlasMask(img image.Image, tileWidth, tileHeight int) *AtlasMask {
	return &AtlasMask{
		img:        img,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		perRow:     img.Bounds().Dx() / tileWidth,
	}
}

// Opaque reports whether the pixel has any alpha.
// Pixels outside the atlas are transparent.
func (m *AtlasMask) Opaque(tileID, px, py int) bool {
	if tileID < 0 || m.perRow == 0 {
		return false
	}
	b := m.img.Bounds()
	x := b.Min.X + (tileID%m.perRow)*m.tileWidth + px
	y := b.Min.Y + (tileID/m.perRow)*m.tileHeight + py
	if !image.Pt(x, y).In(b) {
		return false
	}
	_, _, _, a := m.img.At(x, y).RGBA()
	return a != 0
}

// rectsOverlap checks if two rectangles overlap
func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 int) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}
