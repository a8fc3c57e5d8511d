package generation

import (
	"ebiten-dungeon/components"
)

// Room is a committed room with the border tiles it offered and the corridors grown from it
type Room struct {
	Rect      Rect
	Border    []components.Point
	Seeds     []components.Point
	Corridors []Corridor
}

// Layout is the result of one generation pass
type Layout struct {
	Config    Config
	Grid      *components.Grid
	Rooms     []Room
	Requested int
	Events    *EventLog
}

// Placed returns the number of rooms committed, which may be below Requested
func (l *Layout) Placed() int {
	return len(l.Rooms)
}

// Rects returns the committed room rectangles in placement order
func (l *Layout) Rects() []Rect {
	rects := make([]Rect, len(l.Rooms))
	for i, room := range l.Rooms {
		rects[i] = room.Rect
	}
	return rects
}

// DungeonGenerator handles procedural generation of dungeon layouts.
// It is not safe for concurrent use.
type DungeonGenerator struct {
	rng       RandomSource
	observers []EventHandler
}

// NewDungeonGenerator creates a new dungeon generator with a time-based seed
func NewDungeonGenerator() *DungeonGenerator {
	return &DungeonGenerator{rng: NewRandomSource(0)}
}

// NewDungeonGeneratorWithSource creates a generator drawing from rng
func NewDungeonGeneratorWithSource(rng RandomSource) *DungeonGenerator {
	return &DungeonGenerator{rng: rng}
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.rng = NewRandomSource(seed)
}

// Observe registers a handler that receives every event of later Generate calls
func (g *DungeonGenerator) Observe(handler EventHandler) {
	g.observers = append(g.observers, handler)
}

// Generate fills a background grid, then places rooms and grows corridor
// stubs from their borders. Rooms that cannot be placed within
// MaxPlacementAttempts are skipped; only an invalid cfg is an error.
func (g *DungeonGenerator) Generate(cfg Config) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	events := NewEventLog()
	for _, handler := range g.observers {
		events.SubscribeAll(handler)
	}

	grid := components.NewGrid(cfg.Width, cfg.Height)
	grid.Fill(components.TileBackground)
	events.Emit(Event{Type: EventBackgroundFilled, Count: cfg.Width * cfg.Height})

	layout := &Layout{
		Config: cfg,
		Grid:   grid,
		Events: events,
	}

	layout.Requested = g.rng.Range(cfg.RoomCount.Min, cfg.RoomCount.Max)
	events.Emit(Event{Type: EventRoomCountDrawn, Count: layout.Requested})

	placer := NewRoomPlacer(cfg, g.rng)
	builder := NewCorridorBuilder(cfg, g.rng, events)
	var placedSquares []Rect

	for i := 0; i < layout.Requested; i++ {
		squarePlaced := false
		for attempt := 0; attempt < cfg.MaxPlacementAttempts; attempt++ {
			placement, ok := placer.TryPlace(placedSquares, grid)
			if !ok {
				events.Emit(Event{Type: EventRoomRejected, Room: i, Attempt: attempt, Rect: placement.Rect, Detail: placement.Reason})
				continue
			}
			events.Emit(Event{Type: EventRoomPlaced, Room: i, Attempt: attempt, Rect: placement.Rect, Count: len(placement.Border)})

			room := Room{Rect: placement.Rect, Border: placement.Border}
			room.Seeds = builder.SelectSeeds(i, placement.Border)
			for _, seed := range room.Seeds {
				room.Corridors = append(room.Corridors, builder.Grow(i, seed, grid))
			}

			layout.Rooms = append(layout.Rooms, room)
			placedSquares = append(placedSquares, room.Rect)
			squarePlaced = true
			break
		}

		if !squarePlaced {
			events.Emit(Event{Type: EventRoomSkipped, Room: i, Attempt: cfg.MaxPlacementAttempts})
		}
	}

	return layout, nil
}
