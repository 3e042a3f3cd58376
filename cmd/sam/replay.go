package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/sam/internal/application/replay"
)

var flagReplayLevel string

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recorded session headless",
	Long: `Feed a recording made with 'sam play --record' through the simulation
without opening a window, then print the final status.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayLevel, "level", "", "Level to replay on (default: the recorded level)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	level := data.Level
	if flagReplayLevel != "" {
		level = flagReplayLevel
	}

	logger := newLogger()
	sim, _, err := newSimulation(level, logger)
	if err != nil {
		return err
	}

	r := replay.NewReplayer(*data)
	status := r.Run(sim)
	logger.Debug("replay finished", "frames", r.TotalFrames())

	fmt.Fprintf(cmd.OutOrStdout(), "level=%s frames=%d score=%d ammo=%d lives=%d state=%s\n",
		level, r.TotalFrames(), status.Score, status.Ammo, status.Lives, status.State)
	return nil
}
