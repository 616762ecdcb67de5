package sim

import "github.com/slipway-games/slipway/internal/config"

// Gate is a numbered checkpoint at a fixed arc length. Gate records
// are pooled and reused across spawns; a record in the free list
// carries no meaningful index or distance until re-acquired.
type Gate struct {
	Index    int     // 1-based spawn order
	Distance float64 // Arc length position
}

// GateSequencer schedules numbered gates at increasing distances ahead
// of the player and recycles passed or expired ones. A gate record is
// owned by exactly one of the free list or the in-play list at a time.
type GateSequencer struct {
	cfg        config.GatesConfig
	difficulty *config.DifficultyManager

	inPlay []*Gate // Ordered by distance; spawn order keeps it sorted
	free   []*Gate

	nextIndex    int     // Index the next spawned gate receives
	nextDistance float64 // Placement accumulator for the next spawn
}

// NewGateSequencer creates a sequencer with an empty pool.
func NewGateSequencer(cfg config.GatesConfig, diff *config.DifficultyManager) *GateSequencer {
	return &GateSequencer{
		cfg:        cfg,
		difficulty: diff,
		inPlay:     make([]*Gate, 0, cfg.TargetInPlay),
		free:       make([]*Gate, 0, cfg.TargetInPlay),
	}
}

// Reset releases every in-play gate and restarts the spawn sequence.
func (s *GateSequencer) Reset() {
	for _, g := range s.inPlay {
		s.release(g)
	}
	s.inPlay = s.inPlay[:0]
	s.nextIndex = 1
	s.nextDistance = s.cfg.FirstOffset
}

// acquire takes a gate record from the pool, allocating only when the
// pool is empty.
func (s *GateSequencer) acquire() *Gate {
	if n := len(s.free); n > 0 {
		g := s.free[n-1]
		s.free = s.free[:n-1]
		return g
	}
	return &Gate{}
}

// release returns a gate record to the pool.
func (s *GateSequencer) release(g *Gate) {
	g.Index = 0
	g.Distance = 0
	s.free = append(s.free, g)
}

// EnsureAhead spawns gates until the target in-play count is reached.
// The track is extended first so every placement distance is
// sampleable. Consecutive placement distances are strictly increasing:
// the spacing added after each spawn shrinks with score but is floored
// at the configured minimum.
func (s *GateSequencer) EnsureAhead(track *Track, score int) {
	for len(s.inPlay) < s.cfg.TargetInPlay {
		track.EnsureLength(s.nextDistance)

		g := s.acquire()
		g.Index = s.nextIndex
		g.Distance = s.nextDistance
		s.inPlay = append(s.inPlay, g)

		s.nextIndex++
		s.nextDistance += s.difficulty.GateSpacing(s.cfg.BaseSpacing, s.cfg.MinSpacing, score)
	}
}

// Recycle releases in-play gates that have fallen more than the
// trailing margin behind the player, then backfills ahead.
func (s *GateSequencer) Recycle(track *Track, playerDistance float64, score int) {
	kept := s.inPlay[:0]
	for _, g := range s.inPlay {
		if g.Distance < playerDistance-s.cfg.TrailingMargin {
			s.release(g)
			continue
		}
		kept = append(kept, g)
	}
	s.inPlay = kept
	s.EnsureAhead(track, score)
}

// Check pops every in-play gate the player has reached or passed,
// earliest first, and returns their records in pass order. The caller
// updates score and difficulty from the returned indices; the records
// themselves are already back in the pool. Only the earliest-by-
// distance gate is ever considered, so passing out of numeric order is
// not rejected here.
func (s *GateSequencer) Check(playerDistance float64) []Gate {
	var passed []Gate
	for len(s.inPlay) > 0 && s.inPlay[0].Distance <= playerDistance+s.cfg.PassTolerance {
		g := s.inPlay[0]
		passed = append(passed, *g)
		s.inPlay = s.inPlay[:copy(s.inPlay, s.inPlay[1:])]
		s.release(g)
	}
	return passed
}

// InPlay returns the gates currently scheduled, ordered by distance.
func (s *GateSequencer) InPlay() []*Gate {
	return s.inPlay
}

// NextIndex returns the index the next spawned gate will receive.
func (s *GateSequencer) NextIndex() int {
	return s.nextIndex
}

// PoolSize returns the number of gate records in the free list.
func (s *GateSequencer) PoolSize() int {
	return len(s.free)
}
