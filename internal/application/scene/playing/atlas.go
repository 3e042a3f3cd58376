package playing

import (
	"fmt"
	"image"
	_ "image/png" // atlas sheets are PNG

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Atlas is the tile sheet every draw command's tile id indexes into.
// Tiles are laid out row by row.
type Atlas struct {
	image      *ebiten.Image
	source     image.Image
	tileWidth  int
	tileHeight int
	perRow     int
}

// LoadAtlas reads a tile sheet image from path
func LoadAtlas(path string, tileWidth, tileHeight int) (*Atlas, error) {
	img, src, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas %s: %w", path, err)
	}
	perRow := src.Bounds().Dx() / tileWidth
	if perRow == 0 {
		return nil, fmt.Errorf("atlas %s is narrower than one tile", path)
	}
	return &Atlas{
		image:      img,
		source:     src,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		perRow:     perRow,
	}, nil
}

// Source returns the decoded sheet, used for pixel-accurate collisions
func (a *Atlas) Source() image.Image {
	return a.source
}

// Tile returns the left width pixels of a tile
func (a *Atlas) Tile(id, width int) *ebiten.Image {
	x := (id % a.perRow) * a.tileWidth
	y := (id / a.perRow) * a.tileHeight
	return a.image.SubImage(image.Rect(x, y, x+width, y+a.tileHeight)).(*ebiten.Image)
}
