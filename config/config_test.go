package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("screen size = %dx%d, want positive", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Course.Width <= 0 {
		t.Error("course width not set by defaults")
	}
	if cfg.Units.PerYard <= 0 {
		t.Error("units per yard not set by defaults")
	}
	if cfg.Ball.Gravity <= 0 {
		t.Error("gravity not set by defaults (down-positive)")
	}
	if cfg.Ball.AirborneClearance <= 0 {
		t.Error("airborne clearance not set by defaults")
	}
	if len(cfg.Clubs) == 0 {
		t.Fatal("no clubs after loading defaults")
	}
	if cfg.Round.Holes <= 0 {
		t.Error("round length not set by defaults")
	}
}

func TestLoadComputesDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	want := int(cfg.Course.Width/cfg.Course.SegmentWidth) + 1
	if cfg.Derived.SegmentCount != want {
		t.Errorf("SegmentCount = %d, want %d", cfg.Derived.SegmentCount, want)
	}
	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("ScreenW32 = %.0f, want %d", cfg.Derived.ScreenW32, cfg.Screen.Width)
	}
	for i, club := range cfg.Clubs {
		if got := cfg.Derived.ClubIndex[club.Name]; got != i {
			t.Errorf("ClubIndex[%q] = %d, want %d", club.Name, got, i)
		}
	}
}

func TestDefaultClubOrderings(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	byName := make(map[string]ClubConfig, len(cfg.Clubs))
	for _, c := range cfg.Clubs {
		byName[c.Name] = c
	}
	for _, name := range []string{"driver", "iron", "wedge", "putter"} {
		if _, ok := byName[name]; !ok {
			t.Fatalf("default bag is missing the %s", name)
		}
	}

	// The putter rolls furthest, the wedge checks up fastest.
	for name, c := range byName {
		if name != "putter" && c.Friction <= byName["putter"].Friction {
			t.Errorf("%s friction %.2f not above putter %.2f", name, c.Friction, byName["putter"].Friction)
		}
		if name != "wedge" && c.Friction >= byName["wedge"].Friction {
			t.Errorf("%s friction %.2f not below wedge %.2f", name, c.Friction, byName["wedge"].Friction)
		}
	}

	// Sand punishes the driver hardest and the wedge least.
	for name, c := range byName {
		if name != "wedge" && c.BunkerFactor >= byName["wedge"].BunkerFactor {
			t.Errorf("%s keeps %.2f in sand, not below wedge %.2f", name, c.BunkerFactor, byName["wedge"].BunkerFactor)
		}
		if name != "driver" && c.BunkerFactor <= byName["driver"].BunkerFactor {
			t.Errorf("%s keeps %.2f in sand, not above driver %.2f", name, c.BunkerFactor, byName["driver"].BunkerFactor)
		}
	}

	if byName["putter"].CanFly {
		t.Error("putter is marked as a flying club")
	}
	if !byName["driver"].CanFly {
		t.Error("driver is not marked as a flying club")
	}
}

func TestSlopeBandOrdering(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if !(cfg.Slopes.RestAngle < cfg.Slopes.Steep && cfg.Slopes.Steep < cfg.Slopes.VerySteep) {
		t.Errorf("slope bands out of order: rest %.2f, steep %.2f, very steep %.2f",
			cfg.Slopes.RestAngle, cfg.Slopes.Steep, cfg.Slopes.VerySteep)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("course:\n  width: 12345\nwind:\n  max_speed: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Course.Width != 12345 {
		t.Errorf("course width = %.0f, want the override 12345", cfg.Course.Width)
	}
	if cfg.Wind.MaxSpeed != 3 {
		t.Errorf("wind max speed = %.0f, want the override 3", cfg.Wind.MaxSpeed)
	}
	// Untouched fields keep their defaults.
	if cfg.Ball.Gravity <= 0 {
		t.Error("override wiped defaulted fields")
	}
	// Derived values follow the override.
	if want := int(12345/cfg.Course.SegmentWidth) + 1; cfg.Derived.SegmentCount != want {
		t.Errorf("SegmentCount = %d, want %d", cfg.Derived.SegmentCount, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load of a missing file returned no error")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if back.Course.Width != cfg.Course.Width {
		t.Errorf("course width round trip: %.0f != %.0f", back.Course.Width, cfg.Course.Width)
	}
	if len(back.Clubs) != len(cfg.Clubs) {
		t.Errorf("club count round trip: %d != %d", len(back.Clubs), len(cfg.Clubs))
	}
}
