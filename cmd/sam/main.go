// sam runs the platformer.
//
// Usage:
//
//	sam play [level]     - Open a window and play a level (default: level1)
//	sam replay <file>    - Run a recorded session headless and print the final status
//	sam levels           - List available levels
//
// Global flags:
//
//	--debug           - Log at debug level
//	--configs <dir>   - Read configs from a directory instead of the embedded set
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/sam/internal/application/system"
	"github.com/younwookim/sam/internal/infrastructure/config"
)

var (
	// Global flags
	flagDebug      bool
	flagConfigsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sam",
	Short: "A tile platformer",
	Long: `sam is a side-scrolling tile platformer.

Examples:
  sam play
  sam play training --record session.json
  sam replay session.json
  sam levels`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagConfigsDir, "configs", "", "Config directory (default: embedded configs)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sam",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func newLoader() (*config.Loader, error) {
	if flagConfigsDir != "" {
		return config.NewLoader(flagConfigsDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// newSimulation loads the configs and the named level and builds a simulation on it
func newSimulation(level string, logger *log.Logger) (*system.Simulation, *config.GameConfig, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	lc, err := loader.LoadLevel(level)
	if err != nil {
		return nil, nil, err
	}

	sim, err := system.NewSimulation(cfg, system.LoadLevel(lc, cfg.Physics.Display), logger)
	if err != nil {
		return nil, nil, err
	}
	return sim, cfg, nil
}
