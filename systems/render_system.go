package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/components"
)

// RenderSystem draws layouts onto an ebiten image as solid tiles
type RenderSystem struct {
	mapping  *components.TileMapping
	tileSize int
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(mapping *components.TileMapping, tileSize int) *RenderSystem {
	if mapping == nil {
		mapping = components.NewTileMapping()
	}
	return &RenderSystem{
		mapping:  mapping,
		tileSize: tileSize,
	}
}

// TileSize returns the edge length of one tile in pixels
func (s *RenderSystem) TileSize() int {
	return s.tileSize
}

// Draw clears screen and paints every tile of grid, highest y at the top
func (s *RenderSystem) Draw(screen *ebiten.Image, grid *components.Grid) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	if grid == nil {
		return
	}
	PaintGrid(grid, &imagePainter{
		dst:     screen,
		grid:    grid,
		mapping: s.mapping,
		size:    float32(s.tileSize),
	})
}

type imagePainter struct {
	dst     *ebiten.Image
	grid    *components.Grid
	mapping *components.TileMapping
	size    float32
}

func (p *imagePainter) PaintTile(x, y int, kind components.TileKind) {
	if kind == components.TileEmpty {
		return
	}
	def := p.mapping.GetTileDefinition(kind)
	fill := def.BG
	if fill == nil {
		fill = def.FG
	}
	px := float32(x) * p.size
	py := float32(screenRow(p.grid, y)) * p.size
	vector.DrawFilledRect(p.dst, px, py, p.size, p.size, fill, false)
}
