package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"ebiten-dungeon/generation"
)

var (
	presetID   string
	presetDir  string
	seed       int64
	gridWidth  int
	gridHeight int
	logEvents  bool
)

var rootCmd = &cobra.Command{
	Use:   "ebiten-dungeon",
	Short: "Generate room-and-corridor dungeon layouts",
	Long: `Generate a dungeon layout: rooms with a minimum separation on a
background grid, with short corridor stubs leaving their borders.

Examples:
  ebiten-dungeon print --seed 42
  ebiten-dungeon view --preset inset
  ebiten-dungeon term --preset sprawl --events`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&presetID, "preset", "p", "classic", "Layout preset ID")
	flags.StringVar(&presetDir, "preset-dir", "data/layouts", "Directory of extra JSON presets")
	flags.Int64VarP(&seed, "seed", "s", 0, "Random seed (0 = time based)")
	flags.IntVar(&gridWidth, "width", 0, "Override the preset grid width")
	flags.IntVar(&gridHeight, "height", 0, "Override the preset grid height")
	flags.BoolVar(&logEvents, "events", false, "Log every generation decision")
}

// loadPresets returns the builtin presets plus any found in presetDir
func loadPresets() (*generation.PresetManager, error) {
	presets := generation.NewPresetManager()
	if presetDir == "" {
		return presets, nil
	}
	if err := presets.LoadPresetsFromDirectory(presetDir); err != nil {
		return nil, err
	}
	return presets, nil
}

// resolveConfig picks the selected preset and applies command-line overrides
func resolveConfig() (generation.Config, error) {
	presets, err := loadPresets()
	if err != nil {
		return generation.Config{}, err
	}
	preset := presets.GetPreset(presetID)
	if preset == nil {
		return generation.Config{}, fmt.Errorf("unknown preset %q", presetID)
	}

	cfg := preset.Config
	if gridWidth > 0 {
		cfg.Width = gridWidth
	}
	if gridHeight > 0 {
		cfg.Height = gridHeight
	}
	return cfg, cfg.Validate()
}

// newGenerator creates a generator for the --seed flag, logging events when asked
func newGenerator(seed int64) *generation.DungeonGenerator {
	g := generation.NewDungeonGenerator()
	g.SetSeed(seed)
	if logEvents {
		g.Observe(func(e generation.Event) {
			log.Printf("%s: %s", e.Type, e)
		})
	}
	return g
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
