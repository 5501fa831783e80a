package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.Simulation.StepsPerFrame <= 0 {
		t.Fatalf("expected a positive default steps_per_frame, got %d", cfg.Simulation.StepsPerFrame)
	}
	if cfg.Derived.StepsPerFrameClamped != cfg.Simulation.StepsPerFrame {
		t.Fatalf("derived clamp should match an in-range default value")
	}
}

func TestLoadOverlayFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	const overlay = "simulation:\n  steps_per_frame: 5\n"
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q): %v", path, err)
	}
	if cfg.Simulation.StepsPerFrame != 5 {
		t.Fatalf("overlay did not override steps_per_frame: got %d", cfg.Simulation.StepsPerFrame)
	}
	if cfg.Worldgen.FloorHeight == 0 {
		t.Fatalf("overlay should not erase fields it did not mention")
	}
}

func TestComputeDerivedClampsStepsPerFrame(t *testing.T) {
	cfg := &Config{Simulation: SimulationConfig{StepsPerFrame: 9000}}
	cfg.computeDerived()
	if cfg.Derived.StepsPerFrameClamped != 240 {
		t.Fatalf("expected clamp to 240, got %d", cfg.Derived.StepsPerFrameClamped)
	}

	cfg = &Config{Simulation: SimulationConfig{StepsPerFrame: -5}}
	cfg.computeDerived()
	if cfg.Derived.StepsPerFrameClamped != 0 {
		t.Fatalf("expected clamp to 0, got %d", cfg.Derived.StepsPerFrameClamped)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}
