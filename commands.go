package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"ebiten-dungeon/config"
	"ebiten-dungeon/systems"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print a layout as text",
		RunE:  runPrint,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "term",
		Short: "Show layouts in the terminal (r regenerates, any other key quits)",
		RunE:  runTerm,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "view",
		Short: "Show layouts in a window (R regenerates, Esc quits)",
		RunE:  runView,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "presets",
		Short: "List available layout presets",
		RunE:  runPresets,
	})
}

// effectiveSeed resolves seed 0 to a time-based seed so it can be reported and stepped
func effectiveSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	s := effectiveSeed()
	layout, err := newGenerator(s).Generate(cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, systems.NewTextRenderer(nil).Render(layout.Grid))
	fmt.Fprintf(out, "seed %d: %s\n", s, systems.Summary(layout))
	return nil
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	defer screen.Fini()

	renderer := systems.NewTerminalRenderer(screen, nil)
	s := effectiveSeed()
	for {
		layout, err := newGenerator(s).Generate(cfg)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		renderer.Draw(layout.Grid)
		renderer.DrawStatus(layout.Grid.Height, fmt.Sprintf("seed %d: %s  [r] again, any key quits", s, systems.Summary(layout)))

		ev, ok := waitForKey(screen)
		if !ok || ev.Rune() != 'r' {
			return nil
		}
		s++
	}
}

// waitForKey blocks until a key is pressed, redrawing on resize
func waitForKey(screen tcell.Screen) (*tcell.EventKey, bool) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil, false
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	viewer, err := NewLayoutViewer(cfg, effectiveSeed())
	if err != nil {
		return err
	}

	windowWidth, windowHeight := config.GetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Ebiten Dungeon - Layout Viewer")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Printf("viewer stopped: %v", err)
		return err
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	presets, err := loadPresets()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, p := range presets.GetAllPresets() {
		fmt.Fprintf(out, "%-10s %dx%d  %s\n", p.ID, p.Config.Width, p.Config.Height, p.Description)
	}
	return nil
}
