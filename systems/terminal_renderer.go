package systems

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"ebiten-dungeon/components"
)

// TerminalRenderer paints layouts into a tcell screen, one cell per tile
type TerminalRenderer struct {
	screen  tcell.Screen
	mapping *components.TileMapping
	styles  map[components.TileKind]tcell.Style
}

// NewTerminalRenderer creates a renderer for an initialised screen
func NewTerminalRenderer(screen tcell.Screen, mapping *components.TileMapping) *TerminalRenderer {
	if mapping == nil {
		mapping = components.NewTileMapping()
	}
	return &TerminalRenderer{
		screen:  screen,
		mapping: mapping,
		styles:  make(map[components.TileKind]tcell.Style),
	}
}

// Draw clears the screen and paints grid. Cells beyond the screen size are dropped.
func (r *TerminalRenderer) Draw(grid *components.Grid) {
	r.screen.Clear()
	PaintGrid(grid, terminalPainter{r: r, grid: grid})
	r.screen.Show()
}

// DrawStatus writes text on the given screen row in the default style
func (r *TerminalRenderer) DrawStatus(row int, text string) {
	col := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		col += w
	}
	r.screen.Show()
}

func (r *TerminalRenderer) style(kind components.TileKind) tcell.Style {
	if st, ok := r.styles[kind]; ok {
		return st
	}
	def := r.mapping.GetTileDefinition(kind)
	st := tcell.StyleDefault.Foreground(toTcellColor(def.FG))
	if def.BG != nil {
		st = st.Background(toTcellColor(def.BG))
	}
	r.styles[kind] = st
	return st
}

type terminalPainter struct {
	r    *TerminalRenderer
	grid *components.Grid
}

func (p terminalPainter) PaintTile(x, y int, kind components.TileKind) {
	def := p.r.mapping.GetTileDefinition(kind)
	p.r.screen.SetContent(x, screenRow(p.grid, y), def.Glyph, nil, p.r.style(kind))
}

func toTcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
