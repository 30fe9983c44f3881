// Package session sequences runs: it waits for a start signal, builds a
// fresh simulation with ghosts seeded from the replay ledger, feeds it
// the event stream, and records the run back into the ledger when it
// ends. At most one run is live at a time; starting a new one simply
// supersedes the old, whose remaining events are discarded unrecorded.
package session

import (
	"github.com/vovakirdan/ghostflap/internal/level"
	"github.com/vovakirdan/ghostflap/internal/replay"
	"github.com/vovakirdan/ghostflap/internal/sim"
)

// Supervisor owns the Idle/Running state machine for one player session.
// It is driven from a single goroutine (the platform's tick loop) and
// does not lock; the ledger it appends to is safe on its own.
type Supervisor struct {
	params sim.Params
	lvl    level.Level
	ledger *replay.Ledger
	run    *activeRun
}

// activeRun bundles one live simulation with its replay bookkeeping.
type activeRun struct {
	state       sim.RunState
	seeds       []replay.RunRecord // Ledger snapshot taken at run start
	ghostCursor []int              // Per-ghost index into seed impulse ticks
	impulses    []int              // Player impulse ticks collected this run
	startY      float64
	recorded    bool
}

// New creates a supervisor in the Idle state.
func New(p sim.Params, lvl level.Level, ledger *replay.Ledger) *Supervisor {
	return &Supervisor{params: p, lvl: lvl, ledger: ledger}
}

// Running reports whether a run is live (including one sitting on its
// game-over screen).
func (sv *Supervisor) Running() bool {
	return sv.run != nil
}

// Params returns the simulation parameters the supervisor runs with.
func (sv *Supervisor) Params() sim.Params {
	return sv.params
}

// GhostCount returns the number of ghosts the current run carries.
func (sv *Supervisor) GhostCount() int {
	if sv.run == nil {
		return 0
	}
	return len(sv.run.seeds)
}

// Start begins a new run, superseding any live one. The superseded run
// is discarded without being recorded; only runs that reach their own
// end-of-game enter the ledger. The ghost set is fixed here, from a
// ledger snapshot: growth of the ledger during the run is not observed.
func (sv *Supervisor) Start() sim.RunState {
	seeds := sv.ledger.Seeds()

	ghostSeeds := make([]sim.GhostSeed, len(seeds))
	for i, rec := range seeds {
		ghostSeeds[i] = sim.GhostSeed{StartY: rec.StartY, EndTick: rec.EndTick}
	}

	state := sim.NewRun(sv.params, sv.lvl, ghostSeeds)
	sv.run = &activeRun{
		state:       state,
		seeds:       seeds,
		ghostCursor: make([]int, len(seeds)),
		startY:      state.Actor.Y,
	}
	return state
}

// Flap applies one player impulse and tags it with the current tick
// index for the replay record. The impulse itself is unconditional; the
// simulation ignores it after end-of-game, and ended runs collect no
// further replay ticks. A no-op while Idle.
func (sv *Supervisor) Flap() {
	if sv.run == nil {
		return
	}

	if !sv.run.state.Over {
		sv.run.impulses = append(sv.run.impulses, sv.run.state.Tick)
	}
	sv.run.state = sim.Step(sv.params, sv.run.state, sim.Impulse{Target: sim.TargetPlayer})
}

// Advance consumes one clock tick: ghost impulses recorded for the
// current tick index are applied first, then the tick itself. When a run
// reaches its end-of-game for the first time it is recorded into the
// ledger exactly once. Returns the new state and whether the run ended
// on this very tick.
func (sv *Supervisor) Advance() (sim.RunState, bool) {
	if sv.run == nil {
		return sim.RunState{}, false
	}
	r := sv.run

	// Synthesize ghost impulses: each ghost flaps at the tick indices
	// its source run recorded, replayed against the same tick counter.
	now := r.state.Tick
	for g, rec := range r.seeds {
		for r.ghostCursor[g] < len(rec.ImpulseTicks) && rec.ImpulseTicks[r.ghostCursor[g]] == now {
			r.state = sim.Step(sv.params, r.state, sim.Impulse{Target: g})
			r.ghostCursor[g]++
		}
	}

	r.state = sim.Step(sv.params, r.state, sim.Tick{})

	justEnded := false
	if r.state.Over && !r.recorded {
		sv.ledger.Record(replay.RunRecord{
			ImpulseTicks: r.impulses,
			StartY:       r.startY,
			EndTick:      r.state.Tick,
			Score:        r.state.Score,
			Won:          r.state.Won,
		})
		r.recorded = true
		justEnded = true
	}

	return r.state, justEnded
}

// State returns the current run's state. The second return is false
// while Idle.
func (sv *Supervisor) State() (sim.RunState, bool) {
	if sv.run == nil {
		return sim.RunState{}, false
	}
	return sv.run.state, true
}
