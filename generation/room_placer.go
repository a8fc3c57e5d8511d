package generation

import (
	"ebiten-dungeon/components"
)

// Placement is the outcome of one room placement attempt
type Placement struct {
	Rect   Rect               // Candidate rect; zero when no position could be drawn
	Border []components.Point // Non-corner border tiles, set only on success
	Reason string             // Rejection reason, empty on success
}

// RoomPlacer proposes room rectangles and commits the accepted ones to a grid
type RoomPlacer struct {
	cfg Config
	rng RandomSource
}

// NewRoomPlacer creates a placer using the size, margin and separation settings of cfg
func NewRoomPlacer(cfg Config, rng RandomSource) *RoomPlacer {
	return &RoomPlacer{cfg: cfg, rng: rng}
}

// TryPlace makes one placement attempt. A candidate whose rect padded by
// MinSeparation overlaps any existing rect is rejected; existing rects are
// compared unpadded. On success the room is painted onto grid.
func (p *RoomPlacer) TryPlace(existing []Rect, grid *components.Grid) (Placement, bool) {
	squareWidth := p.rng.Range(p.cfg.RoomSize.Min, p.cfg.RoomSize.Max+1)
	squareHeight := p.rng.Range(p.cfg.RoomSize.Min, p.cfg.RoomSize.Max+1)

	maxX := p.cfg.Width - squareWidth - p.cfg.FarEdgeMargin
	maxY := p.cfg.Height - squareHeight - p.cfg.FarEdgeMargin
	if maxX <= p.cfg.EdgeMargin || maxY <= p.cfg.EdgeMargin {
		return Placement{Reason: ReasonNoPosition}, false
	}

	startX := p.rng.Range(p.cfg.EdgeMargin, maxX)
	startY := p.rng.Range(p.cfg.EdgeMargin, maxY)

	squareArea := NewRect(startX, startY, squareWidth, squareHeight)
	expandedArea := squareArea.Expand(p.cfg.MinSeparation)

	for _, existingRoom := range existing {
		if expandedArea.Overlaps(existingRoom) {
			return Placement{Rect: squareArea, Reason: ReasonOverlap}, false
		}
	}

	return Placement{Rect: squareArea, Border: PaintRoom(grid, squareArea)}, true
}

// PaintRoom fills area with room tiles and returns its non-corner border tiles
// in column-major order (x outer, y inner).
func PaintRoom(grid *components.Grid, area Rect) []components.Point {
	for x := area.XMin(); x < area.XMax(); x++ {
		for y := area.YMin(); y < area.YMax(); y++ {
			grid.Set(x, y, components.TileRoom)
		}
	}
	return BorderTiles(area)
}

// BorderTiles classifies the non-corner border tiles of area. Degenerate
// sizes get no special case: a 1-wide room has every tile on both x edges.
func BorderTiles(area Rect) []components.Point {
	var borderTiles []components.Point
	for x := area.XMin(); x < area.XMax(); x++ {
		for y := area.YMin(); y < area.YMax(); y++ {
			tile := components.Point{X: x, Y: y}
			if area.IsBorder(tile) && !area.IsCorner(tile) {
				borderTiles = append(borderTiles, tile)
			}
		}
	}
	return borderTiles
}
