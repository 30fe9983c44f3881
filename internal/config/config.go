// Package config provides YAML-based configuration loading for the
// simulation parameters and the tick clock.
package config

import (
	"github.com/vovakirdan/ghostflap/internal/sim"
)

// Config contains all tunable parameters. Everything the transition
// function reads comes from here plus the terminal size; nothing is
// sampled at runtime, so two sessions with the same config and level
// replay identically.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Player  PlayerConfig  `yaml:"player"`
	Rules   RulesConfig   `yaml:"rules"`
	Clock   ClockConfig   `yaml:"clock"`
}

// PhysicsConfig defines vertical motion parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// PipesConfig defines obstacle geometry and scroll speed.
type PipesConfig struct {
	Width   float64 `yaml:"width"`
	Spacing float64 `yaml:"spacing"`
	Speed   float64 `yaml:"speed"`
}

// PlayerConfig defines the actor's hitbox and fixed column.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RulesConfig defines lives, grace periods, and the win condition.
type RulesConfig struct {
	Lives            int `yaml:"lives"`
	HitCooldownTicks int `yaml:"hit_cooldown_ticks"`
	DamageTicks      int `yaml:"damage_ticks"`
	WinScore         int `yaml:"win_score"` // 0 = pass every obstacle
}

// ClockConfig defines the real-time pacing of the simulation clock.
// It never reaches the transition function; the simulation only counts
// ticks.
type ClockConfig struct {
	TickPeriodMS int `yaml:"tick_period_ms"`
}

// Params builds simulation parameters from the config and a concrete
// viewport size in cells.
func (c Config) Params(width, height int) sim.Params {
	return sim.Params{
		ViewportW:        float64(width),
		ViewportH:        float64(height),
		ActorX:           c.Player.X,
		ActorW:           c.Player.Width,
		ActorH:           c.Player.Height,
		PipeWidth:        c.Pipes.Width,
		PipeSpacing:      c.Pipes.Spacing,
		PipeSpeed:        c.Pipes.Speed,
		Gravity:          c.Physics.Gravity,
		JumpVelocity:     c.Physics.JumpVelocity,
		Lives:            c.Rules.Lives,
		HitCooldownTicks: c.Rules.HitCooldownTicks,
		DamageTicks:      c.Rules.DamageTicks,
		WinScore:         c.Rules.WinScore,
	}
}
