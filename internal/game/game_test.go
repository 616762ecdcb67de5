package game

import (
	"testing"

	"github.com/slipway-games/slipway/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime())
	return g
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)

	state := g.State()
	if state.GameOver || state.Paused {
		t.Errorf("Fresh game state = %+v", state)
	}
	if state.Score != 0 {
		t.Errorf("Fresh score = %d", state.Score)
	}
	if g.World().Seed() != 1 {
		t.Errorf("Seed = %d, want 1", g.World().Seed())
	}

	events := g.DrainEvents()
	if len(events) == 0 {
		t.Error("Reset produced no run-started event")
	}
	if len(g.DrainEvents()) != 0 {
		t.Error("DrainEvents did not clear the buffer")
	}
}

func TestGameStepAdvances(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()

	var prev float64
	for i := 0; i < 60; i++ {
		state := g.Step(in, 1.0/60.0)
		if state.Distance < prev {
			t.Fatalf("Distance moved backward at frame %d", i)
		}
		prev = state.Distance
	}
	if prev == 0 {
		t.Error("One second of frames did not move the player")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	state := g.Step(in, 1.0/60.0)
	if !state.Paused {
		t.Fatal("Pause action did not pause")
	}

	before := state.Distance
	in.Clear()
	state = g.Step(in, 1.0/60.0)
	if state.Distance != before {
		t.Error("Paused game advanced")
	}

	in.Set(core.ActionPause)
	state = g.Step(in, 1.0/60.0)
	if state.Paused {
		t.Error("Second pause action did not resume")
	}
}

func TestGameSteeringSmoothing(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionSteerRight)
	g.Step(in, 1.0/60.0)

	limit := g.Config().Physics.SteerLimit
	if g.steering <= 0 || g.steering >= limit {
		t.Errorf("One frame of steering = %v, want between 0 and %v", g.steering, limit)
	}

	// Holding converges toward the limit
	for i := 0; i < 120; i++ {
		g.Step(in, 1.0/60.0)
	}
	if g.steering < limit*0.95 {
		t.Errorf("Held steering = %v, want near %v", g.steering, limit)
	}

	// Releasing decays toward zero
	in.Clear()
	for i := 0; i < 120; i++ {
		g.Step(in, 1.0/60.0)
	}
	if g.steering > limit*0.05 {
		t.Errorf("Released steering = %v, want near 0", g.steering)
	}
}

func TestGameDeterminismAcrossInstances(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)
	a.DrainEvents()
	b.DrainEvents()

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		if i%7 == 0 {
			in.Set(core.ActionSteerLeft)
		}
		sa := a.Step(in, 1.0/60.0)
		sb := b.Step(in, 1.0/60.0)
		if sa != sb {
			t.Fatalf("States diverged at frame %d: %+v vs %+v", i, sa, sb)
		}
		in.Clear()
	}
}

func TestGameNewSeedRestarts(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()

	for i := 0; i < 30; i++ {
		g.Step(in, 1.0/60.0)
	}
	oldSeed := g.World().Seed()

	in.Set(core.ActionNewSeed)
	state := g.Step(in, 1.0/60.0)

	if g.World().Seed() == oldSeed {
		t.Error("NewSeed kept the old seed")
	}
	if state.GameOver {
		t.Error("NewSeed left the game over")
	}
	if state.Distance > 1 {
		t.Errorf("NewSeed did not restart the run: distance %v", state.Distance)
	}
}

func TestGameRenderDoesNotPanic(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()

	screens := []*core.Screen{
		core.NewScreen(80, 24),
		core.NewScreen(20, 6), // Too small for the ribbon view
		core.NewScreen(200, 60),
	}

	for i := 0; i < 30; i++ {
		g.Step(in, 1.0/60.0)
		for _, s := range screens {
			g.Render(s)
		}
	}
}
