package systems

import (
	"strings"

	"ebiten-dungeon/components"
)

// TilePainter receives one call per grid cell. It is the boundary between a
// generated layout and whatever surface shows it.
type TilePainter interface {
	PaintTile(x, y int, kind components.TileKind)
}

// PaintGrid hands every cell of grid to painter, row by row from y = 0
func PaintGrid(grid *components.Grid, painter TilePainter) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			painter.PaintTile(x, y, grid.Tiles[y][x])
		}
	}
}

// screenRow converts a grid y (up is +y) to a top-down screen row
func screenRow(grid *components.Grid, y int) int {
	return grid.Height - 1 - y
}

// TextRenderer draws a grid as lines of glyphs
type TextRenderer struct {
	mapping *components.TileMapping
}

// NewTextRenderer creates a text renderer. A nil mapping uses the default glyphs.
func NewTextRenderer(mapping *components.TileMapping) *TextRenderer {
	if mapping == nil {
		mapping = components.NewTileMapping()
	}
	return &TextRenderer{mapping: mapping}
}

// Render returns one line per row, highest y first, each ending in a newline
func (r *TextRenderer) Render(grid *components.Grid) string {
	rows := make([][]rune, grid.Height)
	for i := range rows {
		rows[i] = make([]rune, grid.Width)
	}
	PaintGrid(grid, textPainter{rows: rows, grid: grid, mapping: r.mapping})

	var sb strings.Builder
	sb.Grow((grid.Width + 1) * grid.Height)
	for _, row := range rows {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

type textPainter struct {
	rows    [][]rune
	grid    *components.Grid
	mapping *components.TileMapping
}

func (p textPainter) PaintTile(x, y int, kind components.TileKind) {
	p.rows[screenRow(p.grid, y)][x] = p.mapping.GetTileDefinition(kind).Glyph
}
