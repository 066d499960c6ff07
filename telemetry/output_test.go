package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/plumage/config"
	"github.com/pthm-cable/plumage/params"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager, got %v %v", om, err)
	}
	// Methods on a nil manager are no-ops.
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Errorf("WriteStats: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	c := NewCollector(1, 0.5)
	p := params.Defaults()
	for frame := int32(2); frame <= 6; frame += 2 {
		if err := om.WriteStats(c.Flush(frame, 178, params.ModeContinuous, p, []float64{1, 2})); err != nil {
			t.Fatalf("WriteStats: %v", err)
		}
	}
	if err := om.WritePerf(PerfStats{PhasePct: map[string]float64{PhasePose: 80}}, 6); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "wing.csv"))
	if err != nil {
		t.Fatalf("reading wing.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "window_end,elapsed,mode,instances") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Contains(lines[0], "WindowStartFrame") {
		t.Error("excluded column was written")
	}
	if !strings.Contains(lines[1], "continuous") {
		t.Errorf("expected mode in row, got %q", lines[1])
	}

	perf, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}
	if !strings.Contains(string(perf), "pose_pct") {
		t.Errorf("perf.csv missing pose_pct column:\n%s", perf)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot does not load: %v", err)
	}
}
