// Package game wires the slipway simulation core to the platform: it
// loads configuration, maps platform actions to the steering scalar,
// drives the fixed-step clock from frame time, and renders the ribbon
// into a screen buffer.
package game

import (
	"github.com/slipway-games/slipway/internal/config"
	"github.com/slipway-games/slipway/internal/core"
	"github.com/slipway-games/slipway/internal/sim"
)

// steerResponse is how quickly the smoothed steering scalar approaches
// the key-derived target, per second.
const steerResponse = 8.0

// slowMoScale is the time-scale multiplier while slow motion is held.
const slowMoScale = 0.35

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// Game implements the slipway runner game logic on top of the sim core.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SlipwayConfig

	world *sim.World
	clock *sim.Clock

	steering  float64 // Smoothed steering scalar fed to the sim
	timeScale float64
	paused    bool
	gameOver  bool

	events []sim.Event // Events gathered since the last Drain
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "slipway"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slipway"
}

// Config returns the loaded game configuration.
func (g *Game) Config() config.SlipwayConfig {
	return g.cfg
}

// World exposes the simulation for the renderer and tests.
func (g *Game) World() *sim.World {
	return g.world
}

// Reset initializes or restarts the game with the given runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.world = sim.NewWorld(cfg)
	g.clock = sim.NewClock(cfg.Physics.StepsPerSecond, cfg.Physics.MaxFrameTime)
	g.steering = 0
	g.timeScale = 1
	g.paused = false
	g.gameOver = false
	g.events = g.events[:0]

	g.events = append(g.events, g.world.StartRun(uint32(runtime.Seed))...)
}

// Step advances the game by one display frame. frameTime is the
// wall-clock delta since the previous frame in seconds; the clock
// clamps it and converts it into zero or more fixed simulation steps.
func (g *Game) Step(in core.InputFrame, frameTime float64) core.GameState {
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if in.Has(core.ActionNewSeed) {
		g.regenerateSeed()
	}

	g.timeScale = 1.0
	if in.Has(core.ActionSlowMo) {
		g.timeScale = slowMoScale
	}

	// Smooth held steering keys into the continuous scalar the sim
	// consumes. Touch/tilt collaborators would feed this directly.
	target := 0.0
	if in.Has(core.ActionSteerLeft) {
		target -= g.cfg.Physics.SteerLimit
	}
	if in.Has(core.ActionSteerRight) {
		target += g.cfg.Physics.SteerLimit
	}
	blend := steerResponse * frameTime
	if blend > 1 {
		blend = 1
	}
	g.steering += (target - g.steering) * blend

	steps := g.clock.Advance(frameTime, g.paused || g.gameOver, g.timeScale)
	for i := 0; i < steps; i++ {
		res := g.world.Step(sim.Input{Steering: g.steering}, g.clock.FixedStep())
		for _, ev := range res.Events {
			if _, ended := ev.(sim.RunEndedEvent); ended {
				g.gameOver = true
			}
			g.events = append(g.events, ev)
		}
	}

	return g.State()
}

// regenerateSeed performs a hard reset with a fresh seed, an LCG step
// of the previous one, keeping the restart sequence deterministic for
// a given initial seed.
func (g *Game) regenerateSeed() {
	next := g.world.Seed()*1664525 + 1013904223
	g.clock.Reset()
	g.paused = false
	g.gameOver = false
	g.steering = 0
	g.events = append(g.events, g.world.StartRun(next)...)
}

// DrainEvents returns the events gathered since the last call and
// clears the buffer. Audio, particle, and leaderboard collaborators
// consume these.
func (g *Game) DrainEvents() []sim.Event {
	out := g.events
	g.events = nil
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.world.Player()
	return core.GameState{
		Score:    g.world.Score(),
		Distance: p.Distance,
		Speed:    p.ForwardSpeed,
		OnTrack:  p.OnTrack(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
