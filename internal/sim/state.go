// Package sim implements the deterministic per-tick simulation core of
// ghostflap: a pure state-transition function over a closed event union.
// The package has no clock, no I/O and no randomness - a run is fully
// determined by its level, parameters and event stream, which is what
// makes ghost playback exact.
package sim

import (
	"github.com/vovakirdan/ghostflap/internal/core"
	"github.com/vovakirdan/ghostflap/internal/level"
)

// Actor is the player-controlled body. The horizontal position is fixed
// for the whole run.
type Actor struct {
	X   float64
	Y   float64
	Vel float64
}

// Ghost is a non-interactive echo of the actor from a previous run.
// It integrates the same gravity and clamp rules but is invisible to
// scoring and collision. Finished marks that its source run has ended,
// after which it stops advancing and is no longer drawn.
type Ghost struct {
	Y        float64
	Vel      float64
	EndTick  int // Tick at which the source run ended
	Finished bool
}

// GhostSeed is the construction input for one ghost, taken from a ledger
// snapshot at run start.
type GhostSeed struct {
	StartY  float64
	EndTick int
}

// Obstacle is one pipe pair. Passed is set exactly once, when the pipe's
// horizontal center crosses the actor's position, and never clears.
type Obstacle struct {
	Index     int     // Ordinal position in the level
	X         float64 // Left edge; decreases every tick
	GapCenter float64 // Center of the gap, in cells from the top
	GapHeight float64 // Vertical extent of the gap, in cells
	Passed    bool
}

// Center returns the obstacle's horizontal center.
func (o Obstacle) Center(pipeWidth float64) float64 {
	return o.X + pipeWidth/2
}

// GapTop returns the top edge of the gap.
func (o Obstacle) GapTop() float64 {
	return o.GapCenter - o.GapHeight/2
}

// GapBottom returns the bottom edge of the gap.
func (o Obstacle) GapBottom() float64 {
	return o.GapCenter + o.GapHeight/2
}

// InGap reports whether a vertical position lies within the gap,
// inclusive on both edges.
func (o Obstacle) InGap(y float64) bool {
	return y >= o.GapTop() && y <= o.GapBottom()
}

// RunState is the single source of truth for one run. Step never mutates
// a RunState in place; every event produces a wholly new value derived
// from the previous one.
type RunState struct {
	Tick int // Completed ticks; frozen once the run ends

	Actor     Actor
	Ghosts    []Ghost
	Obstacles []Obstacle // Active set; off-screen pipes are dropped

	Lives       int // Non-increasing, floor 0
	Score       int // Non-decreasing
	PassedCount int // Obstacles marked passed, including dropped ones

	Over bool // Latched: never reverts once true
	Won  bool // Latched alongside Over

	Cooldown int // Ticks before another collision may cost a life
	Damage   int // Ticks remaining on the transient hit indicator

	TotalObstacles int // Win threshold when no score shortcut is set
}

// NewRun builds the initial state for a run: full lives, zero score,
// actor centered vertically, obstacles pre-placed off-screen to the
// right by ordinal index, and one ghost per seed.
func NewRun(p Params, lvl level.Level, seeds []GhostSeed) RunState {
	obstacles := make([]Obstacle, len(lvl.Obstacles))
	for i, spec := range lvl.Obstacles {
		obstacles[i] = Obstacle{
			Index:     i,
			X:         p.ViewportW + float64(i)*p.PipeSpacing,
			GapCenter: spec.GapCenter * p.ViewportH,
			GapHeight: spec.GapHeight * p.ViewportH,
		}
	}

	startY := core.ClampF(p.ViewportH/2, p.minActorY(), p.maxActorY())

	ghosts := make([]Ghost, len(seeds))
	for i, seed := range seeds {
		ghosts[i] = Ghost{
			Y:       core.ClampF(seed.StartY, p.minActorY(), p.maxActorY()),
			EndTick: seed.EndTick,
		}
	}

	return RunState{
		Actor:          Actor{X: p.ActorX, Y: startY},
		Ghosts:         ghosts,
		Obstacles:      obstacles,
		Lives:          p.Lives,
		TotalObstacles: len(obstacles),
	}
}

// clone returns a copy of the state with its own obstacle and ghost
// slices, so the previous value stays untouched.
func (s RunState) clone() RunState {
	next := s
	next.Obstacles = make([]Obstacle, len(s.Obstacles))
	copy(next.Obstacles, s.Obstacles)
	next.Ghosts = make([]Ghost, len(s.Ghosts))
	copy(next.Ghosts, s.Ghosts)
	return next
}

// AllPassed reports whether every obstacle in the level has been marked
// passed, regardless of whether it scored.
func (s RunState) AllPassed() bool {
	return s.TotalObstacles > 0 && s.PassedCount == s.TotalObstacles
}
