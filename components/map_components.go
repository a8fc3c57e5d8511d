package components

import (
	"image/color"
)

// TileKind is the state stored for one grid cell
type TileKind uint8

// Tile kinds
const (
	TileEmpty TileKind = iota // Unset
	TileBackground
	TileRoom
	TileCorridor
)

// String returns a lowercase name for the tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileBackground:
		return "background"
	case TileRoom:
		return "room"
	case TileCorridor:
		return "corridor"
	}
	return "unknown"
}

// Point is an integer grid coordinate
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ChebyshevDistance returns max(|dx|, |dy|) between two points
func (p Point) ChebyshevDistance(o Point) int {
	dx := p.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

// Grid stores the tile state of a layout. Tiles is indexed [y][x].
type Grid struct {
	Width  int
	Height int
	Tiles  [][]TileKind
}

// NewGrid creates a grid with every cell unset
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([][]TileKind, height),
	}
	for y := 0; y < height; y++ {
		g.Tiles[y] = make([]TileKind, width)
	}
	return g
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the tile at (x, y). Out of bounds reads as TileEmpty.
func (g *Grid) Get(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileEmpty
	}
	return g.Tiles[y][x]
}

// Set writes a tile. Writes outside the grid are dropped and reported as false.
func (g *Grid) Set(x, y int, kind TileKind) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.Tiles[y][x] = kind
	return true
}

// HasTile reports whether (x, y) holds anything other than TileEmpty
func (g *Grid) HasTile(x, y int) bool {
	return g.Get(x, y) != TileEmpty
}

// Fill sets every cell to kind
func (g *Grid) Fill(kind TileKind) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Tiles[y][x] = kind
		}
	}
}

// Count returns how many cells hold kind
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, row := range g.Tiles {
		for _, t := range row {
			if t == kind {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	for y := range g.Tiles {
		copy(c.Tiles[y], g.Tiles[y])
	}
	return c
}

// Equal reports whether both grids have the same size and contents
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x] != o.Tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// TileDefinition describes how a presentation layer shows a tile kind
type TileDefinition struct {
	Glyph rune        // Character for text and terminal output
	FG    color.Color // Foreground color
	BG    color.Color // Background color (optional)
}

// NewTileDefinition creates a tile definition from a glyph and colors
func NewTileDefinition(glyph rune, fg, bg color.Color) TileDefinition {
	return TileDefinition{
		Glyph: glyph,
		FG:    fg,
		BG:    bg,
	}
}

// TileMapping maps tile kinds to their visual representation
type TileMapping struct {
	Definitions map[TileKind]TileDefinition
}

// NewTileMapping creates the default tile mapping
func NewTileMapping() *TileMapping {
	mapping := &TileMapping{
		Definitions: make(map[TileKind]TileDefinition),
	}
	black := color.RGBA{0, 0, 0, 255}
	mapping.Definitions[TileEmpty] = NewTileDefinition(' ', black, black)
	mapping.Definitions[TileBackground] = NewTileDefinition('.', color.RGBA{64, 64, 64, 255}, color.RGBA{24, 24, 24, 255})
	mapping.Definitions[TileRoom] = NewTileDefinition('#', color.RGBA{200, 200, 200, 255}, color.RGBA{110, 110, 130, 255})
	mapping.Definitions[TileCorridor] = NewTileDefinition('+', color.RGBA{139, 69, 19, 255}, color.RGBA{170, 120, 60, 255}) // Brown
	return mapping
}

// GetTileDefinition returns the visual definition for a tile kind
func (t *TileMapping) GetTileDefinition(kind TileKind) TileDefinition {
	if def, exists := t.Definitions[kind]; exists {
		return def
	}

	// Magenta for undefined tiles
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255},
		BG:    color.RGBA{0, 0, 0, 255},
	}
}
