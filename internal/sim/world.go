package sim

import "github.com/slipway-games/slipway/internal/config"

// Input is the external control state for one simulation step.
// Steering is expected to be pre-smoothed by the input collaborator.
type Input struct {
	Steering float64 // Clamped to ±physics.steer_limit by the integrator
}

// StepResult reports what happened during one fixed step.
type StepResult struct {
	Events []Event
}

// World ties the RNG, track, gate sequencer, and player together into
// one deterministic simulation stream. All mutation happens
// synchronously inside Step; nothing here blocks or suspends.
type World struct {
	cfg        config.SlipwayConfig
	difficulty *config.DifficultyManager

	track  *Track
	gates  *GateSequencer
	player *Player

	seed   uint32
	score  int
	active bool
}

// NewWorld creates a world. StartRun must be called before stepping.
func NewWorld(cfg config.SlipwayConfig) *World {
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return &World{
		cfg:        cfg,
		difficulty: diff,
		track:      NewTrack(cfg.Track),
		gates:      NewGateSequencer(cfg.Gates, diff),
		player:     NewPlayer(cfg.Physics, cfg.Track.HalfWidth),
	}
}

// StartRun discards all track, gate, and player state and begins a
// fresh run from the seed. Safe to call at any time between frames.
func (w *World) StartRun(seed uint32) []Event {
	w.seed = seed
	w.score = 0
	w.active = true

	w.track.SetLevel(w.difficulty.Level(0))
	w.track.Reset(seed)
	w.gates.Reset()
	w.gates.EnsureAhead(w.track, 0)
	w.player.Reset()

	return []Event{RunStartedEvent{Seed: seed}}
}

// Step advances the simulation by one fixed step. Track extension and
// gate backfill run before the integrator, so the integrator never
// samples past the generated window.
func (w *World) Step(in Input, dt float64) StepResult {
	if !w.active {
		return StepResult{}
	}

	w.track.EnsureLength(w.player.Distance + w.cfg.Track.Lookahead)
	w.gates.Recycle(w.track, w.player.Distance, w.score)

	events, terminal := w.player.Step(w.track, in.Steering, dt)

	for _, g := range w.gates.Check(w.player.Distance) {
		w.score = g.Index
		w.track.SetLevel(w.difficulty.Level(w.score))
		events = append(events, GatePassedEvent{Index: g.Index, Distance: g.Distance})
	}

	w.track.Recycle(w.player.Distance)

	if terminal {
		w.active = false
		events = append(events, RunEndedEvent{Score: w.score, Distance: w.player.Distance})
	}
	return StepResult{Events: events}
}

// Player returns the simulated player state.
func (w *World) Player() *Player {
	return w.player
}

// Track returns the live track window.
func (w *World) Track() *Track {
	return w.track
}

// Gates returns the in-play gates, ordered by distance.
func (w *World) Gates() []*Gate {
	return w.gates.InPlay()
}

// PlayerPose returns the sampled pose at the player's distance, used
// by camera framing collaborators.
func (w *World) PlayerPose() (Pose, error) {
	return w.track.SampleAt(w.player.Distance)
}

// Score returns the index of the last-passed gate.
func (w *World) Score() int {
	return w.score
}

// ExpectedGate returns the next gate index that must be passed for a
// correct sequence. Informational only; passing out of order is not
// rejected.
func (w *World) ExpectedGate() int {
	return w.score + 1
}

// Seed returns the seed of the current run.
func (w *World) Seed() uint32 {
	return w.seed
}

// Active reports whether a run is in progress.
func (w *World) Active() bool {
	return w.active
}
