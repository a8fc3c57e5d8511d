package generation

import (
	"reflect"
	"testing"

	"ebiten-dungeon/components"
)

// roomGrid returns a 20x20 background grid holding a 5x5 room at (5,5) and its border
func roomGrid(t *testing.T) (*components.Grid, []components.Point) {
	t.Helper()
	grid := components.NewGrid(20, 20)
	grid.Fill(components.TileBackground)
	border := PaintRoom(grid, NewRect(5, 5, 5, 5))
	if len(border) != 12 {
		t.Fatalf("expected 12 border tiles, got %d", len(border))
	}
	return grid, border
}

func pts(coords ...int) []components.Point {
	out := make([]components.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, components.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func TestSelectSeedsPolicies(t *testing.T) {
	cases := []struct {
		policy   SeedPolicy
		draws    []int
		want     []components.Point
		rejected int
	}{
		// Border order: (5,6) (5,7) (5,8) (6,5) (6,9) (7,5) (7,9) (8,5) (8,9) (9,6) (9,7) (9,8)
		{SeedsRelaxed, []int{3, 5, 5, 5}, pts(7, 5, 7, 9, 8, 5), 0},
		{SeedsCapped, []int{3, 5, 5, 5}, pts(7, 5, 7, 9), 1},
		{SeedsExhaustive, []int{3, 5, 5, 5, 0}, pts(7, 5, 7, 9, 5, 6), 1},
	}

	for _, c := range cases {
		t.Run(string(c.policy), func(t *testing.T) {
			_, border := roomGrid(t)
			before := append([]components.Point(nil), border...)

			cfg := smallConfig()
			cfg.SeedPolicy = c.policy
			events := NewEventLog()
			seeds := NewCorridorBuilder(cfg, newScripted(0, c.draws...), events).SelectSeeds(0, border)

			if !reflect.DeepEqual(seeds, c.want) {
				t.Fatalf("seeds = %v, want %v", seeds, c.want)
			}
			if got := len(events.OfType(EventSeedRejected)); got != c.rejected {
				t.Fatalf("expected %d rejections, got %d", c.rejected, got)
			}
			if !reflect.DeepEqual(border, before) {
				t.Fatalf("SelectSeeds modified the caller's border slice")
			}
		})
	}
}

func TestSelectSeedsStopsWhenPoolIsEmpty(t *testing.T) {
	cfg := smallConfig()
	cfg.SeedPolicy = SeedsRelaxed
	cfg.CorridorCount = IntRange{Min: 1, Max: 10}
	border := BorderTiles(NewRect(0, 0, 3, 3))

	seeds := NewCorridorBuilder(cfg, newScripted(0, 9), nil).SelectSeeds(0, border)
	if len(seeds) != len(border) {
		t.Fatalf("expected every one of %d border tiles, got %d", len(border), len(seeds))
	}
}

func TestSelectSeedsStrictNeverAdjacent(t *testing.T) {
	for _, policy := range []SeedPolicy{SeedsCapped, SeedsExhaustive} {
		for seed := int64(1); seed <= 200; seed++ {
			cfg := DefaultConfig(40, 40)
			cfg.SeedPolicy = policy
			cfg.CorridorCount = IntRange{Min: 1, Max: 8}
			border := BorderTiles(NewRect(3, 3, 6, 4))

			seeds := NewCorridorBuilder(cfg, NewRandomSource(seed), nil).SelectSeeds(0, border)
			for i := range seeds {
				for j := i + 1; j < len(seeds); j++ {
					if seeds[i].ChebyshevDistance(seeds[j]) <= cfg.AdjacencyRadius {
						t.Fatalf("%s seed %d: %v and %v touch", policy, seed, seeds[i], seeds[j])
					}
				}
			}
		}
	}
}

func TestGrowDirectionalClaimsBackground(t *testing.T) {
	grid, _ := roomGrid(t)
	cfg := smallConfig()
	src := newScripted(0, 4, 0, -1)

	corridor := NewCorridorBuilder(cfg, src, nil).Grow(0, components.Point{X: 7, Y: 5}, grid)

	want := pts(7, 5, 7, 4, 7, 3, 7, 2, 7, 1)
	if !reflect.DeepEqual(corridor.Tiles, want) {
		t.Fatalf("tiles = %v, want %v", corridor.Tiles, want)
	}
	if corridor.Direction != DirDown {
		t.Fatalf("expected down, got %s", corridor.Direction)
	}
	for _, p := range want {
		if grid.Get(p.X, p.Y) != components.TileCorridor {
			t.Fatalf("%v not marked as corridor", p)
		}
	}
}

func TestGrowDirectionalSkipsOccupiedTiles(t *testing.T) {
	grid, _ := roomGrid(t)
	cfg := smallConfig()

	// Heading down from the top edge crosses four room tiles before reaching background
	corridor := NewCorridorBuilder(cfg, newScripted(0, 6, 0, -1), nil).Grow(0, components.Point{X: 7, Y: 9}, grid)

	want := pts(7, 9, 7, 4, 7, 3)
	if !reflect.DeepEqual(corridor.Tiles, want) {
		t.Fatalf("tiles = %v, want %v", corridor.Tiles, want)
	}
	for y := 5; y < 9; y++ {
		if grid.Get(7, y) != components.TileRoom {
			t.Fatalf("room tile (7,%d) was overwritten", y)
		}
	}
}

func TestGrowDirectionalHorizontalSkipsSecondDraw(t *testing.T) {
	grid, _ := roomGrid(t)
	src := newScripted(0, 3, 1)

	corridor := NewCorridorBuilder(smallConfig(), src, nil).Grow(0, components.Point{X: 9, Y: 7}, grid)
	if corridor.Direction != DirRight {
		t.Fatalf("expected right, got %s", corridor.Direction)
	}
	if src.calls != 2 {
		t.Fatalf("a horizontal corridor draws length and x only, got %d draws", src.calls)
	}
	if len(corridor.Tiles) != 4 {
		t.Fatalf("expected seed plus 3 tiles, got %v", corridor.Tiles)
	}
}

func TestGrowDirectionalStaysInBounds(t *testing.T) {
	grid := components.NewGrid(10, 10)
	grid.Fill(components.TileBackground)

	corridor := NewCorridorBuilder(smallConfig(), newScripted(0, 7, -1), nil).Grow(0, components.Point{X: 2, Y: 4}, grid)
	if len(corridor.Tiles) != 3 {
		t.Fatalf("expected seed plus two in-bounds tiles, got %v", corridor.Tiles)
	}
}

func TestGrowDirectionalStationary(t *testing.T) {
	grid, _ := roomGrid(t)
	corridor := NewCorridorBuilder(smallConfig(), newScripted(0, 5, 0, 0), nil).Grow(0, components.Point{X: 5, Y: 7}, grid)
	if corridor.Direction != DirNone || len(corridor.Tiles) != 1 {
		t.Fatalf("zero direction should leave a seed-only stub, got %v", corridor)
	}
}

func TestGrowStrictCarvingOnlyClaimsEmpty(t *testing.T) {
	grid, _ := roomGrid(t)
	cfg := smallConfig()
	cfg.StrictCarving = true

	corridor := NewCorridorBuilder(cfg, newScripted(0, 4, 0, -1), nil).Grow(0, components.Point{X: 7, Y: 5}, grid)
	if len(corridor.Tiles) != 1 {
		t.Fatalf("background tiles should not be claimed, got %v", corridor.Tiles)
	}

	grid.Set(7, 4, components.TileEmpty)
	corridor = NewCorridorBuilder(cfg, newScripted(0, 4, 0, -1), nil).Grow(0, components.Point{X: 7, Y: 5}, grid)
	if len(corridor.Tiles) != 2 {
		t.Fatalf("an unset tile should be claimed, got %v", corridor.Tiles)
	}
}

func TestNeighborProbe(t *testing.T) {
	cases := []struct {
		name string
		seed components.Point
		want Direction
	}{
		{"top edge opens up", components.Point{X: 6, Y: 9}, DirUp},
		{"bottom edge opens down", components.Point{X: 6, Y: 5}, DirDown},
		{"right edge opens right", components.Point{X: 9, Y: 7}, DirRight},
		{"left edge opens left", components.Point{X: 5, Y: 7}, DirLeft},
		{"interior has no opening", components.Point{X: 7, Y: 7}, DirNone},
	}

	cfg := smallConfig()
	cfg.GrowthPolicy = GrowNeighborProbe

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			grid, _ := roomGrid(t)
			before := grid.Clone()
			src := newScripted(0)
			events := NewEventLog()

			corridor := NewCorridorBuilder(cfg, src, events).Grow(0, c.seed, grid)
			if corridor.Direction != c.want {
				t.Fatalf("direction = %s, want %s", corridor.Direction, c.want)
			}
			if len(corridor.Tiles) != 1 || grid.Get(c.seed.X, c.seed.Y) != components.TileCorridor {
				t.Fatalf("probe should mark exactly the seed")
			}
			before.Set(c.seed.X, c.seed.Y, components.TileCorridor)
			if !grid.Equal(before) {
				t.Fatalf("probe changed tiles other than the seed")
			}
			if src.calls != 0 {
				t.Fatalf("probe should not draw random numbers, got %d", src.calls)
			}
			if got := events.OfType(EventCorridorProbed); len(got) != 1 || got[0].Direction != c.want {
				t.Fatalf("expected one probe event heading %s, got %v", c.want, got)
			}
		})
	}
}

func TestNeighborProbePriority(t *testing.T) {
	grid := components.NewGrid(5, 5)
	grid.Fill(components.TileBackground)
	cfg := smallConfig()
	cfg.GrowthPolicy = GrowNeighborProbe

	corridor := NewCorridorBuilder(cfg, newScripted(0), nil).Grow(0, components.Point{X: 2, Y: 2}, grid)
	if corridor.Direction != DirUp {
		t.Fatalf("up should win when every neighbour is open, got %s", corridor.Direction)
	}

	grid.Set(2, 3, components.TileRoom)
	grid.Set(2, 1, components.TileRoom)
	corridor = NewCorridorBuilder(cfg, newScripted(0), nil).Grow(0, components.Point{X: 2, Y: 2}, grid)
	if corridor.Direction != DirRight {
		t.Fatalf("right should follow up and down, got %s", corridor.Direction)
	}
}
