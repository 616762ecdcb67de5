// Package config provides YAML-based configuration loading and
// difficulty management for the slipway runner. Every playtest-tuned
// number in the simulation (damping rates, recovery band, spacing
// floor) lives here as a named field rather than a literal in the sim.
package config

// SlipwayConfig contains all configuration for the ribbon runner.
type SlipwayConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Gates      GatesConfig      `yaml:"gates"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrackConfig defines the procedural ribbon generator parameters.
type TrackConfig struct {
	Step           float64 `yaml:"step"`            // Arc length between consecutive points
	BlockPoints    int     `yaml:"block_points"`    // Points per target-reassignment block
	InitialPoints  int     `yaml:"initial_points"`  // Points generated on reset
	Lookahead      float64 `yaml:"lookahead"`       // Distance kept generated ahead of the player
	TrailingWindow float64 `yaml:"trailing_window"` // Distance kept behind the player before recycling
	MinPoints      int     `yaml:"min_points"`      // Recycling never drops below this count
	HalfWidth      float64 `yaml:"half_width"`      // Half the ribbon width
	StartHeight    float64 `yaml:"start_height"`    // Y of the flat starting platform
	CurvatureMin   float64 `yaml:"curvature_min"`   // Max |curvature| target at difficulty 0
	CurvatureMax   float64 `yaml:"curvature_max"`   // Max |curvature| target at difficulty 1
	BankMin        float64 `yaml:"bank_min"`        // Max |bank| target at difficulty 0, radians
	BankMax        float64 `yaml:"bank_max"`        // Max |bank| target at difficulty 1, radians
	SlopeMin       float64 `yaml:"slope_min"`       // Max |slope| target at difficulty 0
	SlopeMax       float64 `yaml:"slope_max"`       // Max |slope| target at difficulty 1
	DampingRate    float64 `yaml:"damping_rate"`    // Exponential approach rate toward targets, per unit
	ProjectWindow  int     `yaml:"project_window"`  // Segments searched either side of the projection hint
}

// PhysicsConfig defines the player integrator parameters.
type PhysicsConfig struct {
	StepsPerSecond       int     `yaml:"steps_per_second"`       // Fixed simulation step rate
	MaxFrameTime         float64 `yaml:"max_frame_time"`         // Wall-clock delta clamp, seconds
	Gravity              float64 `yaml:"gravity"`                // World gravity, units/s²
	SteerAccel           float64 `yaml:"steer_accel"`            // Lateral acceleration per unit of steering
	SteerLimit           float64 `yaml:"steer_limit"`            // Steering input is clamped to ±this
	SpringBack           float64 `yaml:"spring_back"`            // Centerline restoring force per unit offset
	LateralDamping       float64 `yaml:"lateral_damping"`        // Lateral speed decay rate, per second
	BankAssist           float64 `yaml:"bank_assist"`            // Lateral force per unit of right-vector tilt
	MaxForwardSpeed      float64 `yaml:"max_forward_speed"`      // Forward speed clamp
	MinForwardSpeed      float64 `yaml:"min_forward_speed"`      // Forward speed floor after recovery
	InitialForwardSpeed  float64 `yaml:"initial_forward_speed"`  // Forward speed at run start
	EdgeMargin           float64 `yaml:"edge_margin"`            // Fall-off margin inside the half width
	AirDrag              float64 `yaml:"air_drag"`               // Linear drag while airborne, per second
	Restitution          float64 `yaml:"restitution"`            // Lateral speed kept on landing
	PlayerRadius         float64 `yaml:"player_radius"`          // Ball radius
	RecoveryMinHeight    float64 `yaml:"recovery_min_height"`    // Landing band lower bound above the surface
	RecoveryHeightFactor float64 `yaml:"recovery_height_factor"` // Landing band upper bound, × player radius
	RecoveryLateralSlack float64 `yaml:"recovery_lateral_slack"` // Extra lateral tolerance when landing
	RecoveryGrace        float64 `yaml:"recovery_grace"`         // Seconds after ejection before landing is tested
	FallDepth            float64 `yaml:"fall_depth"`             // Depth below the surface that ends the run
	TrailLength          int     `yaml:"trail_length"`           // World positions kept for the trail
}

// GatesConfig defines the checkpoint gate sequencer parameters.
type GatesConfig struct {
	FirstOffset    float64 `yaml:"first_offset"`    // Distance of gate 1 from the start
	BaseSpacing    float64 `yaml:"base_spacing"`    // Gate spacing at difficulty 0
	MinSpacing     float64 `yaml:"min_spacing"`     // Spacing never shrinks below this
	TargetInPlay   int     `yaml:"target_in_play"`  // Gates kept scheduled ahead of the player
	TrailingMargin float64 `yaml:"trailing_margin"` // Gates this far behind the player are recycled
	PassTolerance  float64 `yaml:"pass_tolerance"`  // Forward reach within which a gate counts as passed
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpacingReduction float64 `yaml:"spacing_reduction"` // Gate spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SlipwayConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// FixedStep returns the simulation step duration in seconds.
func (p PhysicsConfig) FixedStep() float64 {
	if p.StepsPerSecond <= 0 {
		return 1.0 / 120.0
	}
	return 1.0 / float64(p.StepsPerSecond)
}
