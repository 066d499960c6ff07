package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/plumage/curve"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/placement"
	"github.com/pthm-cable/plumage/transform"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Parameters != params.Defaults() {
		t.Errorf("expected default parameters %+v, got %+v", params.Defaults(), cfg.Parameters)
	}
	if cfg.Curve != curve.DefaultConstants() {
		t.Errorf("expected default curve constants, got %+v", cfg.Curve)
	}
	if cfg.Attach != transform.DefaultAttachment() {
		t.Errorf("expected default attachment, got %+v", cfg.Attach)
	}
	if cfg.Motion != transform.DefaultMotion() {
		t.Errorf("expected default motion, got %+v", cfg.Motion)
	}
	if cfg.Wing.Mode != params.ModeRebuild {
		t.Errorf("expected rebuild mode, got %v", cfg.Wing.Mode)
	}
	if len(cfg.Wing.Layers) != 2 || cfg.Wing.Layers[0] != 0 || cfg.Wing.Layers[1] != 0.5 {
		t.Errorf("expected layers [0 0.5], got %v", cfg.Wing.Layers)
	}
	if len(cfg.Wing.Sides) != 2 || cfg.Wing.Sides[0] != placement.Left || cfg.Wing.Sides[1] != placement.Right {
		t.Errorf("expected sides [left right], got %v", cfg.Wing.Sides)
	}
	if cfg.Camera.EyeY != 1 || cfg.Camera.EyeZ != 5 || cfg.Camera.FOV != 75 {
		t.Errorf("unexpected camera %+v", cfg.Camera)
	}
	if cfg.Derived.ScreenW32 != 1280 || cfg.Derived.FrameDT != 1.0/60 || cfg.Derived.StatsEvery != 60 {
		t.Errorf("unexpected derived values %+v", cfg.Derived)
	}
}

func TestLoadOverridesOnlyPresentKeys(t *testing.T) {
	path := writeConfig(t, `
wing:
  mode: continuous
parameters:
  curvature: 0.8
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wing.Mode != params.ModeContinuous {
		t.Errorf("expected continuous mode, got %v", cfg.Wing.Mode)
	}
	if cfg.Parameters.Curvature != 0.8 {
		t.Errorf("expected curvature 0.8, got %v", cfg.Parameters.Curvature)
	}
	// Untouched keys keep their defaults.
	if cfg.Parameters.OrientationDeg != 70 || cfg.Wing.MeshPath != "geo/feather.obj" {
		t.Errorf("defaults lost: %+v %q", cfg.Parameters, cfg.Wing.MeshPath)
	}
}

func TestLoadClampsParameters(t *testing.T) {
	path := writeConfig(t, `
parameters:
  orientation: 120
  flap_speed: -3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Parameters.OrientationDeg != 90 {
		t.Errorf("expected orientation clamped to 90, got %v", cfg.Parameters.OrientationDeg)
	}
	if cfg.Parameters.FlapSpeed != 0 {
		t.Errorf("expected flap speed clamped to 0, got %v", cfg.Parameters.FlapSpeed)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown mode", "wing:\n  mode: sideways\n"},
		{"unknown side", "wing:\n  sides: [up]\n"},
		{"no layers", "wing:\n  layers: []\n"},
		{"layer out of range", "wing:\n  layers: [0, 1.5]\n"},
		{"inverted fov range", "camera:\n  min_fov: 100\n  max_fov: 50\n"},
		{"malformed yaml", "wing: [\n"},
	}
	for _, tc := range tests {
		if _, err := Load(writeConfig(t, tc.body)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Wing.Mode = params.ModeContinuous
	cfg.Parameters.ColorTint = 0.3

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if back.Wing.Mode != params.ModeContinuous || back.Parameters.ColorTint != 0.3 {
		t.Errorf("snapshot lost edits: mode %v tint %v", back.Wing.Mode, back.Parameters.ColorTint)
	}
	if back.Attach != cfg.Attach {
		t.Errorf("attachment changed across snapshot: %+v vs %+v", back.Attach, cfg.Attach)
	}
}

func TestInitAndCfg(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Cfg().Screen.TargetFPS != 60 {
		t.Errorf("expected target fps 60, got %d", Cfg().Screen.TargetFPS)
	}
}
