// Package level loads pipe course definitions for ghostflap.
// A level is a plain-text table: one header line, then one line per
// obstacle with three comma-separated decimals - gap center and gap
// height as fractions of viewport height, and a spawn-time value that
// is recorded but not used for scheduling (obstacles are pre-placed by
// ordinal index).
package level

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedLevel indicates a data line that does not parse to three
// numbers, or fraction values outside the usable range. A malformed
// level is fatal: no run may start.
var ErrMalformedLevel = errors.New("level: malformed level data")

// ObstacleSpec describes one pipe pair as parsed from the level table.
// Fractions are of viewport height; horizontal placement is derived
// from the ordinal index at run construction.
type ObstacleSpec struct {
	GapCenter float64 // Fraction of viewport height, 0 = top
	GapHeight float64 // Fraction of viewport height
	SpawnTime float64 // Recorded from source data, not used to schedule
}

// Level is an ordered sequence of obstacle specs.
type Level struct {
	Obstacles []ObstacleSpec
}

// Count returns the number of obstacles, which is also the win threshold
// when no score shortcut is configured.
func (l Level) Count() int {
	return len(l.Obstacles)
}

// Parse reads a level table. The first line is a header and ignored.
// Blank lines are skipped. Each data line must hold exactly three
// parseable numbers; anything else fails with ErrMalformedLevel.
// Obstacles are ordered by spawn time, which matches source order for
// well-formed levels.
func Parse(data []byte) (Level, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header
	}

	var specs []ObstacleSpec
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		spec, err := parseLine(line)
		if err != nil {
			return Level{}, fmt.Errorf("%w: line %d: %v", ErrMalformedLevel, i+2, err)
		}
		specs = append(specs, spec)
	}

	sort.SliceStable(specs, func(a, b int) bool {
		return specs[a].SpawnTime < specs[b].SpawnTime
	})

	return Level{Obstacles: specs}, nil
}

// parseLine parses one comma-separated data line.
func parseLine(line string) (ObstacleSpec, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return ObstacleSpec{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	nums := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return ObstacleSpec{}, fmt.Errorf("field %d: %v", i+1, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ObstacleSpec{}, fmt.Errorf("field %d: not finite", i+1)
		}
		nums[i] = v
	}

	spec := ObstacleSpec{GapCenter: nums[0], GapHeight: nums[1], SpawnTime: nums[2]}
	if spec.GapCenter <= 0 || spec.GapCenter >= 1 {
		return ObstacleSpec{}, fmt.Errorf("gap center %v outside (0, 1)", spec.GapCenter)
	}
	if spec.GapHeight <= 0 || spec.GapHeight > 1 {
		return ObstacleSpec{}, fmt.Errorf("gap height %v outside (0, 1]", spec.GapHeight)
	}
	return spec, nil
}
