package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kotlot/config"
	"github.com/pthm-cable/kotlot/game"
	"github.com/pthm-cable/kotlot/renderer"
	"github.com/pthm-cable/kotlot/telemetry"
	"github.com/pthm-cable/kotlot/ui"
)

const controlsLegend = "W/S thrust | A/D strafe | Mouse aim | Space/LMB fire | F3 perf | F4 quit"

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run the autopilot without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	opts := game.Options{
		Seed:     rngSeed,
		Output:   output,
		LogStats: *logStats,
	}

	if *headless {
		runHeadless(cfg, opts, *maxTicks)
		return
	}
	runWindowed(cfg, opts, *maxTicks)
}

// runHeadless steps the autopilot at the fixed tick length.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int) {
	g := game.NewGame(cfg, opts)

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"run_id", opts.Output.RunID(),
	)

	for !g.QuitRequested() {
		g.Step(cfg.Physics.DT, g.AutopilotInput())

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}
}

// runWindowed opens the raylib window and plays with keyboard and mouse.
func runWindowed(cfg *config.Config, opts game.Options, maxTicks int) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Kotlot")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.HideCursor()

	audio := renderer.NewAudio(cfg.Assets.Dir, cfg.Assets.Sounds)
	defer audio.Close()
	opts.Cues = audio

	assets := renderer.NewAssets()
	defer assets.Unload()

	g := game.NewGame(cfg, opts)

	background := renderer.NewBackgroundRenderer(assets, filepath.Join(cfg.Assets.Dir, cfg.Assets.Background), 10, 12, 20)
	sprites := renderer.NewSpriteRenderer(assets)
	hud := ui.NewHUD()
	perfPanel := ui.NewPerfPanel(int32(cfg.Screen.Width)-250, 10)
	showPerf := false

	for !rl.WindowShouldClose() && !g.QuitRequested() {
		if rl.IsKeyPressed(rl.KeyF3) {
			showPerf = !showPerf
		}

		cam := g.Camera()
		g.Step(float64(rl.GetFrameTime()), renderer.ReadInput(cam))
		g.RecordFrame()

		level, xp, next := g.Progress()

		rl.BeginDrawing()
		background.Draw(cam)
		sprites.Draw(g, cam)
		hud.Draw(ui.HUDData{
			Level:        level,
			XP:           xp,
			NextXP:       next,
			Selection:    g.SelectionLabel(),
			Tick:         g.Tick(),
			FPS:          rl.GetFPS(),
			Enemies:      g.EnemyCount(),
			Colliders:    g.ColliderCount(),
			Quadrant:     g.Arena().Shown.String(),
			ScreenWidth:  int32(rl.GetScreenWidth()),
			ScreenHeight: int32(rl.GetScreenHeight()),
		})
		hud.DrawControls(int32(rl.GetScreenHeight()), controlsLegend)
		if showPerf {
			perfPanel.Draw(g.PerfStats())
		}
		rl.EndDrawing()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}
