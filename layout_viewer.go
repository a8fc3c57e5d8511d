package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/config"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/systems"
)

// LayoutViewer implements ebiten.Game to show one generated layout at a time.
type LayoutViewer struct {
	cfg          generation.Config
	seed         int64
	renderSystem *systems.RenderSystem
	messages     *systems.MessageLog
	layout       *generation.Layout
}

// NewLayoutViewer creates a viewer and generates its first layout
func NewLayoutViewer(cfg generation.Config, seed int64) (*LayoutViewer, error) {
	v := &LayoutViewer{
		cfg:          cfg,
		seed:         seed,
		renderSystem: systems.NewRenderSystem(nil, config.TileSize),
		messages:     systems.NewMessageLog(config.MessagePanelLines),
	}
	if err := v.regenerate(); err != nil {
		return nil, err
	}
	return v, nil
}

// regenerate replaces the current layout with one from the current seed
func (v *LayoutViewer) regenerate() error {
	v.messages.Clear()
	g := newGenerator(v.seed)
	g.Observe(v.messages.HandleEvent)

	layout, err := g.Generate(v.cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	v.layout = layout
	v.messages.Add(fmt.Sprintf("seed %d - R regenerates, Esc quits", v.seed))
	v.messages.AddSummary(layout)
	return nil
}

// Update handles regeneration and quitting
func (v *LayoutViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.seed++
		return v.regenerate()
	}
	return nil
}

// Draw paints the layout and the message panel below it
func (v *LayoutViewer) Draw(screen *ebiten.Image) {
	v.renderSystem.Draw(screen, v.layout.Grid)

	mapHeight := float32(v.layout.Grid.Height * config.TileSize)
	panelWidth := float32(v.layout.Grid.Width * config.TileSize)
	vector.DrawFilledRect(screen, 0, mapHeight, panelWidth, float32(config.MessagePanelLines*config.MessageLineHeight), color.RGBA{16, 16, 32, 255}, false)

	// Oldest message on top
	lines := v.messages.RecentMessages(config.MessagePanelLines)
	for i := range lines {
		msg := lines[len(lines)-1-i]
		ebitenutil.DebugPrintAt(screen, msg, 4, int(mapHeight)+i*config.MessageLineHeight)
	}
}

// Layout returns the logical screen size for the current grid
func (v *LayoutViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions(v.cfg.Width, v.cfg.Height)
}
