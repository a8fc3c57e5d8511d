package generation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LayoutPreset is a named generation configuration
type LayoutPreset struct {
	ID          string `json:"id"`          // Unique identifier for the preset
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // What kind of layout the preset produces
	Config      Config `json:"config"`      // Fields left out of the JSON keep their DefaultConfig values
}

// BuiltinPresets returns the presets compiled into the binary
func BuiltinPresets() []*LayoutPreset {
	classic := DefaultConfig(DefaultWidth, DefaultHeight)
	classic.SeedPolicy = SeedsRelaxed

	inset := DefaultConfig(DefaultWidth, DefaultHeight)
	inset.EdgeMargin = 5
	inset.GrowthPolicy = GrowNeighborProbe

	return []*LayoutPreset{
		{
			ID:          "classic",
			Name:        "Classic",
			Description: "Rooms one tile from the edge, any border tile may start a corridor, straight corridor stubs",
			Config:      classic,
		},
		{
			ID:          "inset",
			Name:        "Inset",
			Description: "Rooms five tiles from the low edges, corridor mouths never touch, single-tile stubs",
			Config:      inset,
		},
	}
}

// PresetManager handles loading and looking up layout presets
type PresetManager struct {
	presets map[string]*LayoutPreset
}

// NewPresetManager creates a manager holding the builtin presets
func NewPresetManager() *PresetManager {
	m := &PresetManager{
		presets: make(map[string]*LayoutPreset),
	}
	for _, p := range BuiltinPresets() {
		m.presets[p.ID] = p
	}
	return m
}

// Register adds or replaces a preset after validating it
func (m *PresetManager) Register(preset *LayoutPreset) error {
	if preset.ID == "" {
		return fmt.Errorf("preset is missing ID")
	}
	if err := preset.Config.Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", preset.ID, err)
	}
	m.presets[preset.ID] = preset
	return nil
}

// LoadPresetsFromDirectory loads all preset files from a directory
func (m *PresetManager) LoadPresetsFromDirectory(directory string) error {
	files, err := filepath.Glob(filepath.Join(directory, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to read preset directory: %w", err)
	}

	for _, file := range files {
		if err := m.LoadPresetFromFile(file); err != nil {
			return fmt.Errorf("failed to load preset from %s: %w", filepath.Base(file), err)
		}
	}

	return nil
}

// LoadPresetFromFile loads a single preset from a JSON file
func (m *PresetManager) LoadPresetFromFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read preset file: %w", err)
	}

	preset := LayoutPreset{Config: DefaultConfig(DefaultWidth, DefaultHeight)}
	if err := json.Unmarshal(data, &preset); err != nil {
		return fmt.Errorf("failed to parse preset JSON: %w", err)
	}

	return m.Register(&preset)
}

// GetPreset retrieves a preset by ID
func (m *PresetManager) GetPreset(id string) *LayoutPreset {
	return m.presets[id]
}

// GetAllPresets returns all presets sorted by ID
func (m *PresetManager) GetAllPresets() []*LayoutPreset {
	result := make([]*LayoutPreset, 0, len(m.presets))
	for _, preset := range m.presets {
		result = append(result, preset)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
