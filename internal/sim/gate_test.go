package sim

import (
	"testing"

	"github.com/slipway-games/slipway/internal/config"
)

func newTestSequencer() (*GateSequencer, *Track) {
	cfg := config.DefaultConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	seq := NewGateSequencer(cfg.Gates, diff)
	seq.Reset()
	tr := newTestTrack(cfg.Track, 42)
	return seq, tr
}

func TestGateSpawnSequence(t *testing.T) {
	cfg := config.DefaultConfig().Gates
	seq, tr := newTestSequencer()

	seq.EnsureAhead(tr, 0)

	gates := seq.InPlay()
	if len(gates) != cfg.TargetInPlay {
		t.Fatalf("InPlay = %d gates, want %d", len(gates), cfg.TargetInPlay)
	}
	if gates[0].Index != 1 {
		t.Errorf("First gate index = %d, want 1", gates[0].Index)
	}
	if gates[0].Distance != cfg.FirstOffset {
		t.Errorf("First gate distance = %v, want %v", gates[0].Distance, cfg.FirstOffset)
	}

	for i := 1; i < len(gates); i++ {
		if gates[i].Index != gates[i-1].Index+1 {
			t.Fatalf("Gate indices not sequential: %d after %d", gates[i].Index, gates[i-1].Index)
		}
		if gates[i].Distance <= gates[i-1].Distance {
			t.Fatalf("Gate distances not strictly increasing at index %d", gates[i].Index)
		}
	}
}

func TestGateSpacingFloor(t *testing.T) {
	cfg := config.DefaultConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	seq := NewGateSequencer(cfg.Gates, diff)
	seq.Reset()
	tr := newTestTrack(cfg.Track, 42)

	// At an absurd score the difficulty is maxed; spacing must still be
	// at least the floor.
	seq.EnsureAhead(tr, 1_000_000)

	gates := seq.InPlay()
	for i := 1; i < len(gates); i++ {
		gap := gates[i].Distance - gates[i-1].Distance
		if gap < cfg.Gates.MinSpacing-1e-9 {
			t.Fatalf("Gate spacing %v below floor %v", gap, cfg.Gates.MinSpacing)
		}
	}
}

func TestGateCheckPassesInOrder(t *testing.T) {
	seq, tr := newTestSequencer()
	seq.EnsureAhead(tr, 0)

	first := *seq.InPlay()[0]
	second := *seq.InPlay()[1]

	// Not there yet
	if passed := seq.Check(first.Distance - 5); len(passed) != 0 {
		t.Fatalf("Check before the gate passed %d gates", len(passed))
	}

	// Reach the first gate
	passed := seq.Check(first.Distance + 0.1)
	if len(passed) != 1 || passed[0].Index != 1 {
		t.Fatalf("Check at gate 1 returned %+v", passed)
	}

	// Skipping far ahead pops every reached gate, earliest first
	passed = seq.Check(second.Distance + 0.1)
	if len(passed) != 1 || passed[0].Index != 2 {
		t.Fatalf("Check at gate 2 returned %+v", passed)
	}
}

func TestGateCheckPassTolerance(t *testing.T) {
	cfg := config.DefaultConfig().Gates
	seq, tr := newTestSequencer()
	seq.EnsureAhead(tr, 0)

	first := *seq.InPlay()[0]

	// Within tolerance short of the gate still counts
	passed := seq.Check(first.Distance - cfg.PassTolerance/2)
	if len(passed) != 1 {
		t.Errorf("Gate within pass tolerance not counted")
	}
}

func TestGatePoolReuse(t *testing.T) {
	seq, tr := newTestSequencer()
	seq.EnsureAhead(tr, 0)

	if seq.PoolSize() != 0 {
		t.Fatalf("Fresh sequencer pool = %d, want 0", seq.PoolSize())
	}

	first := *seq.InPlay()[0]
	seq.Check(first.Distance + 1)

	if seq.PoolSize() != 1 {
		t.Errorf("Pool after one pass = %d, want 1", seq.PoolSize())
	}

	// Backfill takes the record back out of the pool
	seq.EnsureAhead(tr, 1)
	if seq.PoolSize() != 0 {
		t.Errorf("Pool after backfill = %d, want 0", seq.PoolSize())
	}
}

func TestGateRecycleBehindPlayer(t *testing.T) {
	cfg := config.DefaultConfig().Gates
	seq, tr := newTestSequencer()
	seq.EnsureAhead(tr, 0)

	first := *seq.InPlay()[0]

	// Player far past the first gate without passing it (fell and
	// recovered beyond it); the gate expires instead.
	playerD := first.Distance + cfg.TrailingMargin + 1
	seq.Recycle(tr, playerD, 0)

	for _, g := range seq.InPlay() {
		if g.Distance < playerD-cfg.TrailingMargin {
			t.Errorf("Expired gate %d still in play at %v", g.Index, g.Distance)
		}
	}
	if len(seq.InPlay()) != cfg.TargetInPlay {
		t.Errorf("Recycle did not backfill: %d in play", len(seq.InPlay()))
	}
}

func TestGateResetRestartsSequence(t *testing.T) {
	seq, tr := newTestSequencer()
	seq.EnsureAhead(tr, 0)
	seq.Check(seq.InPlay()[0].Distance + 1)

	seq.Reset()
	if len(seq.InPlay()) != 0 {
		t.Errorf("Reset left %d gates in play", len(seq.InPlay()))
	}
	if seq.NextIndex() != 1 {
		t.Errorf("Reset left next index at %d", seq.NextIndex())
	}

	seq.EnsureAhead(tr, 0)
	if seq.InPlay()[0].Index != 1 {
		t.Errorf("Sequence did not restart at 1")
	}
}
