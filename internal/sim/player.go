package sim

import (
	"math"

	"github.com/slipway-games/slipway/internal/config"
	"github.com/slipway-games/slipway/internal/mathx"
)

// Mode is the player's integration mode. The two modes have disjoint
// invariants: on the ribbon the track-relative distance/lateral/speeds
// are authoritative and the world velocity is meaningless; airborne it
// is the other way around, until recovery recomputes the relative
// state from the velocity.
type Mode int

const (
	ModeOnTrack Mode = iota
	ModeAirborne
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeOnTrack:
		return "OnTrack"
	case ModeAirborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// Player is the rigid body constrained to (or ejected from) the ribbon.
type Player struct {
	cfg       config.PhysicsConfig
	halfWidth float64

	Mode         Mode
	Distance     float64    // Arc length along the ribbon
	Lateral      float64    // Signed offset from the centerline along right
	ForwardSpeed float64    // Speed along the track forward axis
	LateralSpeed float64    // Speed along the track right axis
	Position     mathx.Vec3 // World position; authoritative while airborne
	Velocity     mathx.Vec3 // World velocity; meaningful only while airborne

	// grace is the time left before landing is tested again. A freshly
	// ejected ball starts inside the landing band, so without it every
	// fall would recover on the next step.
	grace float64

	trail *trail
}

// NewPlayer creates a player for a ribbon of the given half width.
func NewPlayer(cfg config.PhysicsConfig, halfWidth float64) *Player {
	return &Player{
		cfg:       cfg,
		halfWidth: halfWidth,
		trail:     newTrail(cfg.TrailLength),
	}
}

// Reset places the player at the start of a fresh run.
func (p *Player) Reset() {
	p.Mode = ModeOnTrack
	p.Distance = 0
	p.Lateral = 0
	p.ForwardSpeed = p.cfg.InitialForwardSpeed
	p.LateralSpeed = 0
	p.Position = mathx.Vec3{}
	p.Velocity = mathx.Vec3{}
	p.grace = 0
	p.trail.Clear()
}

// Trail returns recent world positions, most recent first.
func (p *Player) Trail() []mathx.Vec3 {
	return p.trail.Positions()
}

// OnTrack reports whether the player is constrained to the ribbon.
func (p *Player) OnTrack() bool {
	return p.Mode == ModeOnTrack
}

// Step advances the player by one fixed step. The returned events
// record mode transitions; terminal is true when the player has fallen
// below the fall depth and the run must end. The track must already be
// long enough; the caller's EnsureLength contract guarantees it.
func (p *Player) Step(track *Track, steer, dt float64) (events []Event, terminal bool) {
	switch p.Mode {
	case ModeOnTrack:
		return p.stepOnTrack(track, steer, dt), false
	case ModeAirborne:
		return p.stepAirborne(track, dt)
	}
	return nil, false
}

// stepOnTrack integrates the lateral/forward dynamics in the track
// frame, then tests for edge ejection.
func (p *Player) stepOnTrack(track *Track, steer, dt float64) []Event {
	pose, err := track.SampleAt(p.Distance)
	if err != nil {
		return nil
	}

	// Gravity along the downhill component of the forward pitch.
	p.ForwardSpeed += -pose.Forward.Y * p.cfg.Gravity * dt
	p.ForwardSpeed = mathx.Clamp(p.ForwardSpeed, 0, p.cfg.MaxForwardSpeed)

	// Steering force, centering spring, and the gravity component
	// along the banked right axis.
	steer = mathx.Clamp(steer, -p.cfg.SteerLimit, p.cfg.SteerLimit)
	p.LateralSpeed += (steer*p.cfg.SteerAccel - p.Lateral*p.cfg.SpringBack - pose.Right.Y*p.cfg.BankAssist) * dt
	p.LateralSpeed -= p.LateralSpeed * math.Min(1, p.cfg.LateralDamping*dt)

	p.Distance += p.ForwardSpeed * dt
	p.Lateral += p.LateralSpeed * dt

	pose, err = track.SampleAt(p.Distance)
	if err != nil {
		return nil
	}
	p.Position = surfacePoint(pose, p.Lateral, p.cfg.PlayerRadius)
	p.trail.Push(p.Position)

	// Edge ejection. Lateral is clamped first so the overshoot cannot
	// place the player arbitrarily far off the ribbon.
	if math.Abs(p.Lateral) > p.halfWidth-p.cfg.EdgeMargin {
		p.Lateral = mathx.Clamp(p.Lateral, -p.halfWidth, p.halfWidth)
		p.Position = surfacePoint(pose, p.Lateral, p.cfg.PlayerRadius)
		p.Velocity = pose.Forward.Scale(p.ForwardSpeed).Add(pose.Right.Scale(p.LateralSpeed))
		p.Mode = ModeAirborne
		p.grace = p.cfg.RecoveryGrace
		return []Event{FellOffEvent{}}
	}
	return nil
}

// stepAirborne integrates gravity-accelerated free flight with linear
// drag, holds the projected distance, and tests the landing band.
func (p *Player) stepAirborne(track *Track, dt float64) ([]Event, bool) {
	p.Velocity = p.Velocity.Add(mathx.V3(0, -p.cfg.Gravity, 0).Scale(dt))
	p.Velocity = p.Velocity.Scale(1 - math.Min(1, p.cfg.AirDrag*dt))
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.trail.Push(p.Position)

	// Hold distance at the latest projection; never let it move back.
	proj := track.Project(p.Position, p.Distance)
	if proj > p.Distance {
		p.Distance = proj
	}

	pose, err := track.SampleAt(proj)
	if err != nil {
		return nil, false
	}

	offset := p.Position.Sub(pose.Position)
	height := offset.Dot(pose.Up)
	lateral := offset.Dot(pose.Right)

	// Landing band: a thin slab just above the surface, inside the
	// ribbon width, with the player descending or level. Not tested
	// during the post-ejection grace window.
	p.grace -= dt
	maxHeight := p.cfg.RecoveryHeightFactor * p.cfg.PlayerRadius
	if p.grace <= 0 && height > p.cfg.RecoveryMinHeight && height < maxHeight &&
		math.Abs(lateral) <= p.halfWidth+p.cfg.RecoveryLateralSlack &&
		p.Velocity.Dot(pose.Up) <= 0 {

		p.Lateral = mathx.Clamp(lateral, -(p.halfWidth - p.cfg.EdgeMargin), p.halfWidth-p.cfg.EdgeMargin)
		p.ForwardSpeed = math.Max(p.cfg.MinForwardSpeed, p.Velocity.Dot(pose.Forward))
		p.ForwardSpeed = mathx.Clamp(p.ForwardSpeed, 0, p.cfg.MaxForwardSpeed)
		p.LateralSpeed = p.Velocity.Dot(pose.Right) * p.cfg.Restitution
		p.Velocity = mathx.Vec3{}
		p.Position = surfacePoint(pose, p.Lateral, p.cfg.PlayerRadius)
		p.Mode = ModeOnTrack
		return []Event{RecoveredEvent{}}, false
	}

	// Terminal: fell too far below the surface at the held distance.
	if p.Position.Y < pose.Position.Y-p.cfg.FallDepth {
		return nil, true
	}
	return nil, false
}

// surfacePoint returns the ball center resting on the ribbon at the
// given lateral offset.
func surfacePoint(pose Pose, lateral, radius float64) mathx.Vec3 {
	return pose.Position.Add(pose.Right.Scale(lateral)).Add(pose.Up.Scale(radius))
}

// trail is a fixed-capacity ring buffer of recent world positions.
type trail struct {
	data []mathx.Vec3
	pos  int
	full bool
}

func newTrail(capacity int) *trail {
	if capacity < 1 {
		capacity = 1
	}
	return &trail{data: make([]mathx.Vec3, capacity)}
}

// Push adds a position to the ring.
func (t *trail) Push(v mathx.Vec3) {
	t.data[t.pos] = v
	t.pos++
	if t.pos >= len(t.data) {
		t.pos = 0
		t.full = true
	}
}

// Clear empties the ring.
func (t *trail) Clear() {
	t.pos = 0
	t.full = false
}

// Positions returns the buffered positions, most recent first.
func (t *trail) Positions() []mathx.Vec3 {
	n := t.pos
	if t.full {
		n = len(t.data)
	}
	out := make([]mathx.Vec3, 0, n)
	for i := 1; i <= n; i++ {
		idx := t.pos - i
		if idx < 0 {
			idx += len(t.data)
		}
		out = append(out, t.data[idx])
	}
	return out
}
