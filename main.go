package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plumage/config"
	"github.com/pthm-cable/plumage/game"
	"github.com/pthm-cable/plumage/params"
	"github.com/pthm-cable/plumage/scene"
	"github.com/pthm-cable/plumage/telemetry"
	"github.com/pthm-cable/plumage/wing"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	frames := flag.Int("frames", 600, "Frames to run in headless mode (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	mode := flag.String("mode", "", "Update mode: rebuild or continuous (empty = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *mode != "" {
		m, err := params.ParseMode(*mode)
		if err != nil {
			slog.Error("invalid -mode", "error", err)
			os.Exit(1)
		}
		cfg.Wing.Mode = m
	}

	opts := wing.OptionsFromConfig(cfg)
	opts.LogStats = *logStats
	if *statsWindow > 0 {
		opts.StatsWindowSec = *statsWindow
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}
	opts.Output = output

	if *headless {
		runHeadless(opts, *frames, cfg.Derived.FrameDT, cfg.Derived.StatsEvery)
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, "Plumage")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(game.Options{Wing: opts})
	if err != nil {
		slog.Error("failed to start viewer", "error", err)
		return
	}
	defer g.Unload()

	slog.Info("starting viewer", "mode", cfg.Wing.Mode.String(), "mesh", cfg.Wing.MeshPath)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// runHeadless drives the wing against an in-memory scene on a fixed clock.
func runHeadless(opts wing.Options, frames int, dt float64, statsEvery int) {
	sc := scene.NewMemory()
	w, err := wing.New(sc, scene.StaticMesh(1), opts)
	if err != nil {
		slog.Error("failed to create wing", "error", err)
		os.Exit(1)
	}

	slog.Info("starting headless run",
		"mode", opts.Mode.String(),
		"frames", frames,
		"dt", dt,
		"stats_every", statsEvery,
	)

	var clock scene.ManualClock
	for frames <= 0 || int(w.Frame()) < frames {
		if err := w.Update(clock.Elapsed()); err != nil {
			slog.Error("wing update failed", "frame", w.Frame(), "error", err)
			os.Exit(1)
		}
		clock.Advance(dt)
	}

	slog.Info("headless run finished", "frame", w.Frame(), "instances", sc.Len())
}
