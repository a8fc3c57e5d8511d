package generation

import (
	"ebiten-dungeon/components"
)

// Corridor is a stub grown from one seed
type Corridor struct {
	Seed      components.Point
	Direction Direction
	Tiles     []components.Point // Every tile set to corridor, seed first
}

// CorridorBuilder picks corridor seeds on room borders and grows stubs from them
type CorridorBuilder struct {
	cfg    Config
	rng    RandomSource
	events *EventLog
}

// NewCorridorBuilder creates a builder. events may be nil.
func NewCorridorBuilder(cfg Config, rng RandomSource, events *EventLog) *CorridorBuilder {
	return &CorridorBuilder{cfg: cfg, rng: rng, events: events}
}

// SelectSeeds draws the corridor count and picks that many seeds from border
// under the configured SeedPolicy. border is not modified.
func (b *CorridorBuilder) SelectSeeds(room int, border []components.Point) []components.Point {
	count := b.rng.Range(b.cfg.CorridorCount.Min, b.cfg.CorridorCount.Max)

	pool := make([]components.Point, len(border))
	copy(pool, border)

	var seeds []components.Point
	switch b.cfg.SeedPolicy {
	case SeedsExhaustive:
		for len(seeds) < count && len(pool) > 0 {
			idx := b.rng.Range(0, len(pool))
			tile := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)
			if b.isAdjacent(tile, seeds) {
				b.events.Emit(Event{Type: EventSeedRejected, Room: room, Point: tile, Detail: ReasonAdjacent})
				continue
			}
			seeds = b.accept(room, seeds, tile)
		}
	default:
		for i := 0; i < count; i++ {
			if len(pool) == 0 {
				break
			}
			idx := b.rng.Range(0, len(pool))
			tile := pool[idx]
			if b.cfg.SeedPolicy == SeedsCapped && b.isAdjacent(tile, seeds) {
				// The pick stays in the pool and still uses up a draw
				b.events.Emit(Event{Type: EventSeedRejected, Room: room, Point: tile, Detail: ReasonAdjacent})
				continue
			}
			pool = append(pool[:idx], pool[idx+1:]...)
			seeds = b.accept(room, seeds, tile)
		}
	}
	return seeds
}

func (b *CorridorBuilder) accept(room int, seeds []components.Point, tile components.Point) []components.Point {
	b.events.Emit(Event{Type: EventSeedChosen, Room: room, Point: tile})
	return append(seeds, tile)
}

func (b *CorridorBuilder) isAdjacent(tile components.Point, seeds []components.Point) bool {
	for _, s := range seeds {
		if tile.ChebyshevDistance(s) <= b.cfg.AdjacencyRadius {
			return true
		}
	}
	return false
}

// Grow marks seed as a corridor and extends it under the configured GrowthPolicy.
// room is the index reported on the emitted event.
func (b *CorridorBuilder) Grow(room int, seed components.Point, grid *components.Grid) Corridor {
	if b.cfg.GrowthPolicy == GrowNeighborProbe {
		return b.probe(room, seed, grid)
	}
	return b.growDirectional(room, seed, grid)
}

// growDirectional carves up to length tiles in a straight line. Tiles that
// cannot be claimed are skipped without ending the corridor.
func (b *CorridorBuilder) growDirectional(room int, seed components.Point, grid *components.Grid) Corridor {
	grid.Set(seed.X, seed.Y, components.TileCorridor)
	corridor := Corridor{Seed: seed, Tiles: []components.Point{seed}}

	length := b.rng.Range(b.cfg.CorridorLength.Min, b.cfg.CorridorLength.Max)
	directionX := b.rng.Range(-1, 2)
	directionY := 0
	if directionX == 0 {
		directionY = b.rng.Range(-1, 2)
	}
	corridor.Direction = directionOf(directionX, directionY)

	if corridor.Direction != DirNone {
		for step := 1; step <= length; step++ {
			next := seed.Add(step*directionX, step*directionY)
			if !grid.InBounds(next.X, next.Y) || !b.claimable(grid.Get(next.X, next.Y)) {
				continue
			}
			grid.Set(next.X, next.Y, components.TileCorridor)
			corridor.Tiles = append(corridor.Tiles, next)
		}
	}

	b.events.Emit(Event{Type: EventCorridorGrown, Room: room, Point: seed, Direction: corridor.Direction, Count: len(corridor.Tiles) - 1})
	return corridor
}

func (b *CorridorBuilder) claimable(kind components.TileKind) bool {
	if b.cfg.StrictCarving {
		return kind == components.TileEmpty
	}
	return kind == components.TileEmpty || kind == components.TileBackground
}

// probe marks only the seed and reports the first background neighbour, as
// seen before the seed was marked, in the order up, down, right, left.
func (b *CorridorBuilder) probe(room int, seed components.Point, grid *components.Grid) Corridor {
	order := []Direction{DirUp, DirDown, DirRight, DirLeft}
	neighbours := make([]components.TileKind, len(order))
	for i, d := range order {
		dx, dy := d.Delta()
		neighbours[i] = grid.Get(seed.X+dx, seed.Y+dy)
	}

	grid.Set(seed.X, seed.Y, components.TileCorridor)
	corridor := Corridor{Seed: seed, Tiles: []components.Point{seed}}

	for i, d := range order {
		if neighbours[i] == components.TileBackground {
			corridor.Direction = d
			break
		}
	}

	b.events.Emit(Event{Type: EventCorridorProbed, Room: room, Point: seed, Direction: corridor.Direction})
	return corridor
}
