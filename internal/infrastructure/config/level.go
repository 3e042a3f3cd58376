package config

import (
	"fmt"
	"unicode/utf8"
)

// LevelConfig is the root config for level YAML files
type LevelConfig struct {
	Name   string                `yaml:"name"`
	Width  int                   `yaml:"width"`  // tiles
	Height int                   `yaml:"height"` // tiles
	Legend map[string]CellConfig `yaml:"legend"`
	Rows   []string              `yaml:"rows"`
}

// CellConfig describes every layer of one tile.
// Graphics default to empty (-1) when omitted.
type CellConfig struct {
	Back   *int     `yaml:"back"`
	Mid    *int     `yaml:"mid"`
	Front  *int     `yaml:"front"`
	Bounds []string `yaml:"bounds"` // any of top, left, bottom, right, all
	Code   string   `yaml:"code"`   // spawn, death, invisible, glasses, tnt, pushable, ammo, satellite, usetnt
}

// Validate checks that the rows describe a width x height grid
// and every legend entry names known bounds and codes.
func (c *LevelConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", c.Width, c.Height)
	}
	if len(c.Rows) != c.Height {
		return fmt.Errorf("got %d rows, want %d", len(c.Rows), c.Height)
	}
	for i, row := range c.Rows {
		if n := utf8.RuneCountInString(row); n != c.Width {
			return fmt.Errorf("row %d has %d cells, want %d", i, n, c.Width)
		}
	}
	for key, cell := range c.Legend {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("legend key %q must be a single character", key)
		}
		for _, b := range cell.Bounds {
			if _, ok := boundNames[b]; !ok {
				return fmt.Errorf("legend %q: unknown bound %q", key, b)
			}
		}
		if _, ok := codeNames[cell.Code]; !ok {
			return fmt.Errorf("legend %q: unknown code %q", key, cell.Code)
		}
	}
	return nil
}

// Solidity bit values, matching the level editor's definitions
const (
	BoundTop    = 1 << 0
	BoundLeft   = 1 << 1
	BoundBottom = 1 << 2
	BoundRight  = 1 << 3
)

var boundNames = map[string]int{
	"top":    BoundTop,
	"left":   BoundLeft,
	"bottom": BoundBottom,
	"right":  BoundRight,
	"all":    BoundTop | BoundLeft | BoundBottom | BoundRight,
}

var codeNames = map[string]int{
	"":          0,
	"spawn":     1,
	"death":     2,
	"invisible": 3,
	"glasses":   4,
	"tnt":       5,
	"pushable":  6,
	"ammo":      7,
	"satellite": 8,
	"usetnt":    9,
}

// BoundsMask returns the solidity bitmask of the cell
func (c CellConfig) BoundsMask() int {
	mask := 0
	for _, b := range c.Bounds {
		mask |= boundNames[b]
	}
	return mask
}

// CodeValue returns the numeric map code of the cell
func (c CellConfig) CodeValue() int {
	return codeNames[c.Code]
}

// Tiles returns the back, mid and front graphics, -1 where omitted
func (c CellConfig) Tiles() (back, mid, front int) {
	return tileOr(c.Back), tileOr(c.Mid), tileOr(c.Front)
}

func tileOr(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}
