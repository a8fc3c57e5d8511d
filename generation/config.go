package generation

import (
	"errors"
	"fmt"
)

// Default layout parameters
const (
	DefaultWidth                = 100
	DefaultHeight               = 100
	DefaultMinSeparation        = 3
	DefaultEdgeMargin           = 1
	DefaultFarEdgeMargin        = 1
	DefaultMaxPlacementAttempts = 100
	DefaultAdjacencyRadius      = 1

	// MaxGridDimension bounds width and height so that no bounds sum can overflow
	MaxGridDimension = 1 << 14
)

// ErrInvalidConfig is matched by every *ConfigurationError
var ErrInvalidConfig = errors.New("invalid layout configuration")

// ConfigurationError reports a configuration that cannot produce a layout
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid layout configuration: %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is match ErrInvalidConfig
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// IntRange is a pair of integer bounds. Whether Max is inclusive depends on the field using it.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SeedPolicy selects how corridor seeds are picked from a room's border tiles
type SeedPolicy string

const (
	// SeedsRelaxed accepts every pick
	SeedsRelaxed SeedPolicy = "relaxed"
	// SeedsCapped rejects picks near an accepted seed, drawing exactly count times
	SeedsCapped SeedPolicy = "capped"
	// SeedsExhaustive rejects picks near an accepted seed and keeps drawing until count seeds or an empty pool
	SeedsExhaustive SeedPolicy = "exhaustive"
)

// GrowthPolicy selects how a corridor extends from its seed
type GrowthPolicy string

const (
	// GrowDirectional extends a straight stub in a random axis direction
	GrowDirectional GrowthPolicy = "directional"
	// GrowNeighborProbe marks only the seed and reports the open neighbour
	GrowNeighborProbe GrowthPolicy = "probe"
)

// Config holds every layout generation parameter
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	RoomCount IntRange `json:"room_count"` // Max exclusive
	RoomSize  IntRange `json:"room_size"`  // Max inclusive

	MinSeparation        int `json:"min_separation"`
	EdgeMargin           int `json:"edge_margin"`     // Lowest allowed room origin on both axes
	FarEdgeMargin        int `json:"far_edge_margin"` // Subtracted from width-size for the origin's exclusive bound
	MaxPlacementAttempts int `json:"max_placement_attempts"`

	CorridorCount  IntRange `json:"corridor_count"`  // Max exclusive
	CorridorLength IntRange `json:"corridor_length"` // Max exclusive

	AdjacencyRadius int          `json:"adjacency_radius"`
	SeedPolicy      SeedPolicy   `json:"seed_policy"`
	GrowthPolicy    GrowthPolicy `json:"growth_policy"`

	// StrictCarving lets corridors claim only unset tiles instead of unset or background
	StrictCarving bool `json:"strict_carving"`
}

// DefaultConfig returns the standard parameters for a width x height grid
func DefaultConfig(width, height int) Config {
	return Config{
		Width:                width,
		Height:               height,
		RoomCount:            IntRange{Min: 3, Max: 7},
		RoomSize:             IntRange{Min: 5, Max: 10},
		MinSeparation:        DefaultMinSeparation,
		EdgeMargin:           DefaultEdgeMargin,
		FarEdgeMargin:        DefaultFarEdgeMargin,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
		CorridorCount:        IntRange{Min: 1, Max: 4},
		CorridorLength:       IntRange{Min: 3, Max: 8},
		AdjacencyRadius:      DefaultAdjacencyRadius,
		SeedPolicy:           SeedsCapped,
		GrowthPolicy:         GrowDirectional,
	}
}

// Validate checks that every random draw the generator makes has a non-empty range
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &ConfigurationError{Field: "width/height", Reason: fmt.Sprintf("grid must be positive, got %dx%d", c.Width, c.Height)}
	}
	if c.Width > MaxGridDimension || c.Height > MaxGridDimension {
		return &ConfigurationError{Field: "width/height", Reason: fmt.Sprintf("grid may be at most %d on a side, got %dx%d", MaxGridDimension, c.Width, c.Height)}
	}
	span := max(c.Width, c.Height)
	if c.RoomCount.Min < 0 || c.RoomCount.Max <= c.RoomCount.Min {
		return &ConfigurationError{Field: "room_count", Reason: fmt.Sprintf("need 0 <= min < max, got [%d,%d)", c.RoomCount.Min, c.RoomCount.Max)}
	}
	if c.RoomSize.Min < 1 || c.RoomSize.Max < c.RoomSize.Min {
		return &ConfigurationError{Field: "room_size", Reason: fmt.Sprintf("need 1 <= min <= max, got [%d,%d]", c.RoomSize.Min, c.RoomSize.Max)}
	}
	if c.RoomSize.Max > c.Width || c.RoomSize.Max > c.Height {
		return &ConfigurationError{Field: "room_size", Reason: fmt.Sprintf("max %d exceeds the %dx%d grid", c.RoomSize.Max, c.Width, c.Height)}
	}
	if c.MinSeparation < 0 || c.MinSeparation > span {
		return &ConfigurationError{Field: "min_separation", Reason: fmt.Sprintf("need 0 <= separation <= %d, got %d", span, c.MinSeparation)}
	}
	if c.EdgeMargin < 0 || c.FarEdgeMargin < 0 {
		return &ConfigurationError{Field: "edge_margin", Reason: "margins must not be negative"}
	}
	if c.EdgeMargin > span || c.FarEdgeMargin > span {
		return &ConfigurationError{Field: "edge_margin", Reason: fmt.Sprintf("margins may be at most %d, got %d/%d", span, c.EdgeMargin, c.FarEdgeMargin)}
	}
	if c.Width-c.RoomSize.Min-c.FarEdgeMargin <= c.EdgeMargin {
		return &ConfigurationError{Field: "room_size", Reason: fmt.Sprintf("a %d-wide room does not fit a %d-wide grid with margins %d/%d", c.RoomSize.Min, c.Width, c.EdgeMargin, c.FarEdgeMargin)}
	}
	if c.Height-c.RoomSize.Min-c.FarEdgeMargin <= c.EdgeMargin {
		return &ConfigurationError{Field: "room_size", Reason: fmt.Sprintf("a %d-tall room does not fit a %d-tall grid with margins %d/%d", c.RoomSize.Min, c.Height, c.EdgeMargin, c.FarEdgeMargin)}
	}
	if c.MaxPlacementAttempts < 1 {
		return &ConfigurationError{Field: "max_placement_attempts", Reason: "must be at least 1"}
	}
	if c.CorridorCount.Min < 0 || c.CorridorCount.Max <= c.CorridorCount.Min {
		return &ConfigurationError{Field: "corridor_count", Reason: fmt.Sprintf("need 0 <= min < max, got [%d,%d)", c.CorridorCount.Min, c.CorridorCount.Max)}
	}
	if c.CorridorLength.Min < 0 || c.CorridorLength.Max <= c.CorridorLength.Min {
		return &ConfigurationError{Field: "corridor_length", Reason: fmt.Sprintf("need 0 <= min < max, got [%d,%d)", c.CorridorLength.Min, c.CorridorLength.Max)}
	}
	if c.CorridorLength.Max > span+1 {
		return &ConfigurationError{Field: "corridor_length", Reason: fmt.Sprintf("max %d is longer than the grid allows (%d)", c.CorridorLength.Max, span+1)}
	}
	if c.AdjacencyRadius < 0 {
		return &ConfigurationError{Field: "adjacency_radius", Reason: "must not be negative"}
	}
	switch c.SeedPolicy {
	case SeedsRelaxed, SeedsCapped, SeedsExhaustive:
	default:
		return &ConfigurationError{Field: "seed_policy", Reason: fmt.Sprintf("unknown policy %q", c.SeedPolicy)}
	}
	switch c.GrowthPolicy {
	case GrowDirectional, GrowNeighborProbe:
	default:
		return &ConfigurationError{Field: "growth_policy", Reason: fmt.Sprintf("unknown policy %q", c.GrowthPolicy)}
	}
	return nil
}
