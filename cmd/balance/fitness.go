package main

import (
	"fmt"
	"log"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/kotlot/config"
	"github.com/pthm-cable/kotlot/game"
	"github.com/pthm-cable/kotlot/telemetry"
)

// Targets describe the pacing a balanced arena should produce under the
// autopilot.
type Targets struct {
	KillsPerMinute float64 // kills per simulated minute
	HitRate        float64 // hits per shot
	EnemyFill      float64 // average enemies as a fraction of max_count
	LevelSeconds   float64 // simulated seconds to reach level 3
}

// DefaultTargets returns the pacing the defaults were tuned against.
func DefaultTargets() Targets {
	return Targets{
		KillsPerMinute: 12,
		HitRate:        0.5,
		EnemyFill:      0.6,
		LevelSeconds:   90,
	}
}

// FitnessEvaluator runs headless autopilot games and scores their pacing.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config
	targets    Targets

	mu          sync.Mutex
	lastSummary runSummary
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
		targets:    targets,
	}
}

// LastSummary returns the averaged metrics of the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() runSummary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// runSummary holds the pacing metrics of one or more runs.
type runSummary struct {
	killsPerMinute float64
	hitRate        float64
	enemyFill      float64
	levelSeconds   float64
}

// failedFitness is charged when any run of an evaluation fails.
const failedFitness = 1e6

// Evaluate computes fitness for a parameter vector (lower = better).
// Each seed runs on its own goroutine; games share no state.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	summaries := make([]runSummary, len(fe.seeds))

	var eg errgroup.Group
	for i, seed := range fe.seeds {
		eg.Go(func() error {
			s, err := fe.runSimulation(x, seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			summaries[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Printf("evaluation failed: %v", err)
		return failedFitness
	}

	avg := averageSummaries(summaries)

	fe.mu.Lock()
	fe.lastSummary = avg
	fe.mu.Unlock()

	return fe.computeFitness(avg)
}

// runSimulation plays one autopilot game and summarizes its windows.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) (runSummary, error) {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return runSummary{}, fmt.Errorf("parameter %s is %v", fe.params.Specs[i].Name, v)
		}
	}

	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	var windows []telemetry.WindowStats
	g := game.NewGame(cfg, game.Options{
		Seed: seed,
		StatsCallback: func(stats telemetry.WindowStats) {
			windows = append(windows, stats)
		},
	})

	levelSeconds := math.NaN()
	for g.Tick() < fe.maxTicks {
		if g.QuitRequested() {
			return runSummary{}, fmt.Errorf("game quit at tick %d", g.Tick())
		}
		g.Step(cfg.Physics.DT, g.AutopilotInput())

		if math.IsNaN(levelSeconds) {
			if level, _, _ := g.Progress(); level >= 3 {
				levelSeconds = float64(g.Tick()) * cfg.Physics.DT
			}
		}
	}
	if math.IsNaN(levelSeconds) {
		// Never levelled: charge the full run plus a margin.
		levelSeconds = 2 * float64(fe.maxTicks) * cfg.Physics.DT
	}

	return summarize(windows, cfg.Enemy.MaxCount, levelSeconds), nil
}

// summarize reduces stats windows to the pacing metrics.
func summarize(windows []telemetry.WindowStats, maxCount int, levelSeconds float64) runSummary {
	s := runSummary{levelSeconds: levelSeconds}
	if len(windows) == 0 {
		return s
	}

	var kills, shots, hits int
	fill := make([]float64, 0, len(windows))
	var prevTime float64
	for _, w := range windows {
		kills += w.Kills
		shots += w.Shots
		hits += w.Hits
		if maxCount > 0 {
			fill = append(fill, float64(w.Enemies)/float64(maxCount))
		}
		prevTime = w.SimTimeSec
	}

	if prevTime > 0 {
		s.killsPerMinute = float64(kills) / prevTime * 60
	}
	if shots > 0 {
		s.hitRate = float64(hits) / float64(shots)
	}
	if len(fill) > 0 {
		s.enemyFill = stat.Mean(fill, nil)
	}
	return s
}

func averageSummaries(all []runSummary) runSummary {
	var kpm, hr, fill, lvl []float64
	for _, s := range all {
		kpm = append(kpm, s.killsPerMinute)
		hr = append(hr, s.hitRate)
		fill = append(fill, s.enemyFill)
		lvl = append(lvl, s.levelSeconds)
	}
	return runSummary{
		killsPerMinute: stat.Mean(kpm, nil),
		hitRate:        stat.Mean(hr, nil),
		enemyFill:      stat.Mean(fill, nil),
		levelSeconds:   stat.Mean(lvl, nil),
	}
}

// copyConfig creates a copy of the base config. Slices and maps are
// shared but never written by a run.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// Fitness component weights.
const (
	weightKills = 0.35
	weightHits  = 0.20
	weightFill  = 0.20
	weightLevel = 0.25
)

// computeFitness is the weighted squared relative error from the targets.
func (fe *FitnessEvaluator) computeFitness(s runSummary) float64 {
	t := fe.targets
	return weightKills*relErr2(s.killsPerMinute, t.KillsPerMinute) +
		weightHits*relErr2(s.hitRate, t.HitRate) +
		weightFill*relErr2(s.enemyFill, t.EnemyFill) +
		weightLevel*relErr2(s.levelSeconds, t.LevelSeconds)
}

func relErr2(got, want float64) float64 {
	if want == 0 {
		return got * got
	}
	e := (got - want) / want
	return e * e
}
