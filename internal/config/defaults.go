package config

import (
	_ "embed"
)

//go:embed defaults/ghostflap.yaml
var defaultYAML []byte

// Default returns the default configuration, tuned for an 80x24
// terminal at the reference 30ms tick.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:      0.08,
			JumpVelocity: -0.55,
		},
		Pipes: PipesConfig{
			Width:   4,
			Spacing: 28,
			Speed:   0.6,
		},
		Player: PlayerConfig{
			X:      12,
			Width:  2,
			Height: 1,
		},
		Rules: RulesConfig{
			Lives:            3,
			HitCooldownTicks: 30,
			DamageTicks:      12,
			WinScore:         0,
		},
		Clock: ClockConfig{
			TickPeriodMS: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
