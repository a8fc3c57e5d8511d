package generation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestBuiltinPresetsAreValid(t *testing.T) {
	m := NewPresetManager()
	for _, id := range []string{"classic", "inset"} {
		p := m.GetPreset(id)
		if p == nil {
			t.Fatalf("missing builtin preset %q", id)
		}
		if err := p.Config.Validate(); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
	}
	if m.GetPreset("inset").Config.EdgeMargin != 5 {
		t.Fatalf("inset preset should keep rooms five tiles from the edge")
	}
}

func TestLoadPresetKeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "tight.json", `{
		"id": "tight",
		"name": "Tight",
		"config": {"width": 40, "height": 30, "min_separation": 1, "seed_policy": "exhaustive"}
	}`)

	m := NewPresetManager()
	if err := m.LoadPresetsFromDirectory(dir); err != nil {
		t.Fatalf("LoadPresetsFromDirectory: %v", err)
	}

	p := m.GetPreset("tight")
	if p == nil {
		t.Fatalf("preset not registered")
	}
	cfg := p.Config
	if cfg.Width != 40 || cfg.Height != 30 || cfg.MinSeparation != 1 || cfg.SeedPolicy != SeedsExhaustive {
		t.Fatalf("explicit fields not applied: %+v", cfg)
	}
	if cfg.RoomSize != (IntRange{Min: 5, Max: 10}) || cfg.MaxPlacementAttempts != DefaultMaxPlacementAttempts || cfg.GrowthPolicy != GrowDirectional {
		t.Fatalf("missing fields should keep defaults: %+v", cfg)
	}

	all := m.GetAllPresets()
	if len(all) != 3 || all[0].ID != "classic" || all[1].ID != "inset" || all[2].ID != "tight" {
		t.Fatalf("expected presets sorted by ID, got %d", len(all))
	}
}

func TestLoadPresetRejectsBadFiles(t *testing.T) {
	cases := map[string]string{
		"no id":      `{"name": "Nameless"}`,
		"bad json":   `{"id": "broken",`,
		"bad config": `{"id": "tiny", "config": {"width": 6, "height": 6}}`,
		"bad policy": `{"id": "odd", "config": {"growth_policy": "spiral"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writePreset(t, dir, "preset.json", body)
			if err := NewPresetManager().LoadPresetsFromDirectory(dir); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}

	dir := t.TempDir()
	writePreset(t, dir, "tiny.json", `{"id": "tiny", "config": {"width": 6, "height": 6}}`)
	err := NewPresetManager().LoadPresetFromFile(filepath.Join(dir, "tiny.json"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("config errors should stay matchable, got %v", err)
	}
}

func TestShippedPresetsLoad(t *testing.T) {
	m := NewPresetManager()
	if err := m.LoadPresetsFromDirectory(filepath.Join("..", "data", "layouts")); err != nil {
		t.Fatalf("LoadPresetsFromDirectory: %v", err)
	}
	for _, id := range []string{"classic", "inset", "sprawl"} {
		p := m.GetPreset(id)
		if p == nil {
			t.Fatalf("missing shipped preset %q", id)
		}
		if _, err := NewDungeonGeneratorWithSource(NewRandomSource(3)).Generate(p.Config); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
	}
	if m.GetPreset("inset").Config.GrowthPolicy != GrowNeighborProbe {
		t.Fatalf("shipped inset preset should use the neighbour probe")
	}
}
