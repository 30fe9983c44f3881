package config

// DifficultyPreset represents a named difficulty level. Presets adjust
// the config once, before a session starts; parameters never change
// mid-run, so ghosts recorded under a preset replay exactly.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset returns true if the preset is one of the named levels.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the config as loaded.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Rules.HitCooldownTicks = cfg.Rules.HitCooldownTicks * 3 / 2
		cfg.Pipes.Speed *= 0.8
	case DifficultyHard:
		cfg.Rules.Lives = 1
		cfg.Rules.HitCooldownTicks = cfg.Rules.HitCooldownTicks / 2
		cfg.Pipes.Speed *= 1.25
	}
}
