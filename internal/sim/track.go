package sim

import (
	"errors"
	"math"

	"github.com/slipway-games/slipway/internal/config"
	"github.com/slipway-games/slipway/internal/mathx"
)

// ErrNoTrack is returned when a pose is sampled from a track with no
// points. It indicates a sequencing bug in the caller: sampling must
// always follow a Reset and EnsureLength.
var ErrNoTrack = errors.New("sim: track has no points")

// TrackPoint is one generated sample of the ribbon centerline.
// Points are immutable once created and spaced exactly one track step
// apart in arc length.
type TrackPoint struct {
	Distance float64    // Cumulative arc length from the start
	Position mathx.Vec3 // Centerline position
	Forward  mathx.Vec3 // Unit travel direction
	Up       mathx.Vec3 // Unit surface normal
	Right    mathx.Vec3 // Unit lateral axis, forward × up
	Bank     float64    // Roll angle, radians
	Slope    float64    // Pitch rate, radians per unit
}

// Pose is an interpolated track sample at an arbitrary arc length.
type Pose struct {
	Distance float64
	Position mathx.Vec3
	Forward  mathx.Vec3
	Up       mathx.Vec3
	Right    mathx.Vec3
}

// Cursor is the generator pen: the frame that last wrote a point plus
// the damped curvature/bank/slope state it is steering toward. It is a
// value threaded through each spawn step, so generation can be tested
// in isolation without hidden mutable state.
type Cursor struct {
	Distance float64
	Position mathx.Vec3
	Forward  mathx.Vec3
	Up       mathx.Vec3
	Right    mathx.Vec3

	Curvature float64
	Bank      float64
	Slope     float64

	TargetCurvature float64
	TargetBank      float64
	TargetSlope     float64

	// UntilRetarget counts points until new targets are drawn.
	UntilRetarget int
}

// startCursor returns the deterministic start condition: a flat
// platform at the configured height, heading world-forward.
func startCursor(cfg config.TrackConfig) Cursor {
	return Cursor{
		Position: mathx.V3(0, cfg.StartHeight, 0),
		Forward:  mathx.Forward(),
		Up:       mathx.Up(),
		Right:    mathx.Right(),
	}
}

// point materializes the cursor's current state as a TrackPoint.
func (c Cursor) point() TrackPoint {
	return TrackPoint{
		Distance: c.Distance,
		Position: c.Position,
		Forward:  c.Forward,
		Up:       c.Up,
		Right:    c.Right,
		Bank:     c.Bank,
		Slope:    c.Slope,
	}
}

// advanceCursor extends the cursor by one fixed arc-length step and
// returns the new point together with the updated cursor.
//
// Every BlockPoints steps new curvature/bank/slope targets are drawn
// from the RNG, with magnitude ranges widened by the difficulty level.
// Current values approach their targets by exponential damping, so
// steering never jumps between blocks. The frame update order is
// yaw → pitch → roll → re-orthogonalize right.
func advanceCursor(c Cursor, rng *RNG, cfg config.TrackConfig, level float64) (TrackPoint, Cursor) {
	if c.UntilRetarget <= 0 {
		lvl := mathx.Clamp(level, 0, 1)
		c.TargetCurvature = rng.Sign() * rng.Float() * mathx.Lerp(cfg.CurvatureMin, cfg.CurvatureMax, lvl)
		c.TargetBank = rng.Sign() * rng.Float() * mathx.Lerp(cfg.BankMin, cfg.BankMax, lvl)
		c.TargetSlope = rng.Sign() * rng.Float() * mathx.Lerp(cfg.SlopeMin, cfg.SlopeMax, lvl)
		c.UntilRetarget = cfg.BlockPoints
	}
	c.UntilRetarget--

	damp := 1 - math.Exp(-cfg.DampingRate*cfg.Step)
	c.Curvature += (c.TargetCurvature - c.Curvature) * damp
	prevBank := c.Bank
	c.Bank += (c.TargetBank - c.Bank) * damp
	c.Slope += (c.TargetSlope - c.Slope) * damp

	// Yaw about up, then pitch about right, renormalizing after each.
	c.Forward = c.Forward.RotateAround(c.Up, c.Curvature*cfg.Step).Normalize()
	c.Forward = c.Forward.RotateAround(c.Right, c.Slope*cfg.Step).Normalize()

	// Re-derive right, roll up by the bank delta, then rebuild the
	// frame so it stays orthonormal: right from forward and up, up from
	// right and forward. The rebuild keeps the roll but removes the
	// pitch misalignment the forward rotation introduced.
	c.Right = c.Forward.Cross(c.Up).Normalize()
	c.Up = c.Up.RotateAround(c.Forward, c.Bank-prevBank).Normalize()
	c.Right = c.Forward.Cross(c.Up).Normalize()
	c.Up = c.Right.Cross(c.Forward)

	c.Position = c.Position.Add(c.Forward.Scale(cfg.Step))
	c.Distance += cfg.Step

	return c.point(), c
}

// Track holds a sliding window of an effectively infinite ribbon.
// The window is a compacted slice; since points are spaced exactly one
// step apart, arc length maps to a slice index in O(1), which the
// bounded-neighborhood projection search relies on.
type Track struct {
	cfg    config.TrackConfig
	points []TrackPoint
	cursor Cursor
	rng    *RNG
	level  float64
}

// NewTrack creates an empty track with the given generator config.
// Reset must be called before any sampling.
func NewTrack(cfg config.TrackConfig) *Track {
	return &Track{
		cfg:    cfg,
		points: make([]TrackPoint, 0, cfg.InitialPoints+cfg.BlockPoints),
	}
}

// Reset discards all points and regenerates the initial window from
// the seed: a flat starting platform point followed by InitialPoints
// generated steps.
func (t *Track) Reset(seed uint32) {
	t.rng = NewRNG(seed)
	t.cursor = startCursor(t.cfg)
	t.points = t.points[:0]
	t.points = append(t.points, t.cursor.point())

	for i := 0; i < t.cfg.InitialPoints; i++ {
		t.SpawnNextStep()
	}
}

// SetLevel sets the difficulty level used for future target draws.
func (t *Track) SetLevel(level float64) {
	t.level = level
}

// SpawnNextStep appends exactly one new point extending the ribbon by
// one fixed arc-length step.
func (t *Track) SpawnNextStep() {
	var p TrackPoint
	p, t.cursor = advanceCursor(t.cursor, t.rng, t.cfg, t.level)
	t.points = append(t.points, p)
}

// EnsureLength appends points until the tail distance covers
// targetDistance. It is idempotent and safe to call every tick.
func (t *Track) EnsureLength(targetDistance float64) {
	if len(t.points) == 0 {
		return
	}
	for t.points[len(t.points)-1].Distance < targetDistance {
		t.SpawnNextStep()
	}
}

// Recycle drops points more than the trailing window behind
// playerDistance, keeping at least MinPoints so downstream queries
// always have a bracketing pair. Remaining points keep their order and
// distances.
func (t *Track) Recycle(playerDistance float64) {
	limit := playerDistance - t.cfg.TrailingWindow
	n := 0
	for n < len(t.points) && t.points[n].Distance < limit && len(t.points)-(n+1) >= t.cfg.MinPoints {
		n++
	}
	if n == 0 {
		return
	}
	copy(t.points, t.points[n:])
	t.points = t.points[:len(t.points)-n]
}

// Len returns the number of points in the live window.
func (t *Track) Len() int {
	return len(t.points)
}

// First returns the oldest point in the live window.
func (t *Track) First() TrackPoint {
	return t.points[0]
}

// Last returns the newest point in the live window.
func (t *Track) Last() TrackPoint {
	return t.points[len(t.points)-1]
}

// Window returns the live point window for read-only iteration.
func (t *Track) Window() []TrackPoint {
	return t.points
}

// HalfWidth returns half the ribbon width.
func (t *Track) HalfWidth() float64 {
	return t.cfg.HalfWidth
}

// segmentIndex maps an arc length to the index of the bracketing
// segment, clamped into the live window.
func (t *Track) segmentIndex(distance float64) int {
	idx := int(math.Floor((distance - t.points[0].Distance) / t.cfg.Step))
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.points)-2 {
		idx = len(t.points) - 2
	}
	return idx
}

func pose(p TrackPoint) Pose {
	return Pose{
		Distance: p.Distance,
		Position: p.Position,
		Forward:  p.Forward,
		Up:       p.Up,
		Right:    p.Right,
	}
}

// SampleAt returns the interpolated pose at an arbitrary arc length.
// Out-of-range distances clamp to the nearest endpoint pose rather
// than extrapolating. Position and each frame axis are interpolated
// independently and renormalized; the axes are not re-orthogonalized
// against each other, which is accurate enough at the step density
// used.
func (t *Track) SampleAt(distance float64) (Pose, error) {
	if len(t.points) == 0 {
		return Pose{}, ErrNoTrack
	}
	if len(t.points) == 1 || distance <= t.points[0].Distance {
		return pose(t.points[0]), nil
	}
	if distance >= t.points[len(t.points)-1].Distance {
		return pose(t.points[len(t.points)-1]), nil
	}

	idx := t.segmentIndex(distance)
	a, b := t.points[idx], t.points[idx+1]
	frac := mathx.Clamp((distance-a.Distance)/(b.Distance-a.Distance), 0, 1)

	return Pose{
		Distance: distance,
		Position: a.Position.Lerp(b.Position, frac),
		Forward:  a.Forward.Lerp(b.Forward, frac).Normalize(),
		Up:       a.Up.Lerp(b.Up, frac).Normalize(),
		Right:    a.Right.Lerp(b.Right, frac).Normalize(),
	}, nil
}

// Project returns the arc length of the closest point on the
// piecewise-linear centerline to a world position. Only a bounded
// neighborhood of segments around hintDistance is searched; the caller
// is expected to supply a temporally coherent hint (true once per tick
// for a continuously moving player). The result is finite even for a
// two-point track.
func (t *Track) Project(world mathx.Vec3, hintDistance float64) float64 {
	if len(t.points) == 0 {
		return 0
	}
	if len(t.points) == 1 {
		return t.points[0].Distance
	}

	center := t.segmentIndex(hintDistance)
	lo := center - t.cfg.ProjectWindow
	if lo < 0 {
		lo = 0
	}
	hi := center + t.cfg.ProjectWindow
	if hi > len(t.points)-2 {
		hi = len(t.points) - 2
	}

	best := math.MaxFloat64
	bestDistance := t.points[lo].Distance
	for i := lo; i <= hi; i++ {
		a, b := t.points[i], t.points[i+1]
		seg := b.Position.Sub(a.Position)
		denom := seg.LenSq()
		frac := 0.0
		if denom > 0 {
			frac = mathx.Clamp(world.Sub(a.Position).Dot(seg)/denom, 0, 1)
		}
		closest := a.Position.Add(seg.Scale(frac))
		d2 := world.Sub(closest).LenSq()
		if d2 < best {
			best = d2
			bestDistance = a.Distance + frac*(b.Distance-a.Distance)
		}
	}
	return bestDistance
}
