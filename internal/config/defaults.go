package config

import (
	_ "embed"
)

//go:embed defaults/slipway.yaml
var defaultSlipwayYAML []byte

// DefaultConfig returns the default slipway configuration.
// It mirrors defaults/slipway.yaml and serves as the fallback if the
// embedded YAML fails to parse.
func DefaultConfig() SlipwayConfig {
	return SlipwayConfig{
		Track: TrackConfig{
			Step:           1.0,
			BlockPoints:    40,
			InitialPoints:  450,
			Lookahead:      250.0,
			TrailingWindow: 60.0,
			MinPoints:      32,
			HalfWidth:      3.0,
			StartHeight:    10.0,
			CurvatureMin:   0.008,
			CurvatureMax:   0.045,
			BankMin:        0.15,
			BankMax:        0.6,
			SlopeMin:       0.08,
			SlopeMax:       0.25,
			DampingRate:    0.08,
			ProjectWindow:  12,
		},
		Physics: PhysicsConfig{
			StepsPerSecond:       120,
			MaxFrameTime:         0.25,
			Gravity:              25.0,
			SteerAccel:           30.0,
			SteerLimit:           1.5,
			SpringBack:           4.0,
			LateralDamping:       2.5,
			BankAssist:           18.0,
			MaxForwardSpeed:      42.0,
			MinForwardSpeed:      8.0,
			InitialForwardSpeed:  12.0,
			EdgeMargin:           0.2,
			AirDrag:              0.12,
			Restitution:          0.45,
			PlayerRadius:         0.5,
			RecoveryMinHeight:    0.05,
			RecoveryHeightFactor: 1.5,
			RecoveryLateralSlack: 0.35,
			RecoveryGrace:        0.25,
			FallDepth:            40.0,
			TrailLength:          48,
		},
		Gates: GatesConfig{
			FirstOffset:    60.0,
			BaseSpacing:    55.0,
			MinSpacing:     18.0,
			TargetInPlay:   10,
			TrailingMargin: 30.0,
			PassTolerance:  1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpacingReduction: 30.0,
			},
		},
	}
}
