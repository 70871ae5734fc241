// Command game opens the Stick Survivor window.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/stick-survivor/internal/config"
	"github.com/Garsondee/stick-survivor/internal/game"
)

var (
	configPath string
	seed       int64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "stick-survivor",
	Short: "Top-down stick figure survival game",
	Long: `Stick Survivor: fight stick figure enemies, hunt pigs and collect coins in a
scrolling world that turns hostile at night.

Move with WASD or the arrow keys, aim with the mouse and swing with the left
button or Space. B opens the store, L toggles the event feed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		g, err := game.New(cfg, logger)
		if err != nil {
			return err
		}
		ebiten.SetWindowTitle("Stick Survivor")
		ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
		logger.Info("starting", "seed", cfg.Seed, "world", fmt.Sprintf("%.0fx%.0f", cfg.WorldWidth, cfg.WorldHeight))
		return ebiten.RunGame(g)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML session config (defaults when empty)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "world seed (overrides the config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
