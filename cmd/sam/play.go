package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/sam/internal/application/game"
	"github.com/younwookim/sam/internal/application/scene/playing"
)

var (
	flagRecord string
	flagAtlas  string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Open a window and play a level.

Controls:
  Left/Right (or Numpad 4/6) - Walk
  Z                          - Jump
  X                          - Fire
  Esc                        - Pause
  F5                         - Save the recording so far

Without --atlas, tiles are drawn as plain rectangles.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	playCmd.Flags().StringVar(&flagAtlas, "atlas", "", "Tile sheet PNG")
}

func runPlay(_ *cobra.Command, args []string) error {
	level := "level1"
	if len(args) == 1 {
		level = args[0]
	}

	logger := newLogger()
	sim, cfg, err := newSimulation(level, logger)
	if err != nil {
		return err
	}

	display := cfg.Physics.Display
	var atlas *playing.Atlas
	if flagAtlas != "" {
		atlas, err = playing.LoadAtlas(flagAtlas, display.TileWidth, display.TileHeight)
		if err != nil {
			return err
		}
	}

	screenW, screenH := display.ScreenSize()
	g := game.New(playing.New(cfg, sim, atlas, flagRecord, logger), screenW, screenH, display.Framerate)
	defer g.Close()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(fmt.Sprintf("sam - %s", level))
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}
