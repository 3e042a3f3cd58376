package system

import (
	"github.com/younwookim/sam/internal/domain/entity"
	"github.com/younwookim/sam/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a sealed Level entity.
// Characters missing from the legend become empty cells.
func LoadLevel(cfg *config.LevelConfig, display config.DisplayConfig) *entity.Level {
	level := entity.NewLevel(cfg.Name, cfg.Width, cfg.Height, display.TileWidth, display.TileHeight)

	for row, line := range cfg.Rows {
		col := 0
		for _, char := range line {
			if col >= cfg.Width {
				break
			}
			cell, ok := cfg.Legend[string(char)]
			if ok {
				back, mid, front := cell.Tiles()
				level.SetCell(col, row, back, mid, front,
					entity.Solidity(cell.BoundsMask()), entity.MapCode(cell.CodeValue()))
			}
			col++
		}
	}

	level.Seal()
	return level
}
