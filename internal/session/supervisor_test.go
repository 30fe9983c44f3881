package session

import (
	"testing"

	"github.com/vovakirdan/ghostflap/internal/level"
	"github.com/vovakirdan/ghostflap/internal/replay"
	"github.com/vovakirdan/ghostflap/internal/sim"
)

// fastParams end a no-input run within a handful of ticks: the actor
// free-falls to the bottom edge and bleeds lives on a short cooldown.
func fastParams() sim.Params {
	return sim.Params{
		ViewportW:        60,
		ViewportH:        20,
		ActorX:           10,
		ActorW:           2,
		ActorH:           2,
		PipeWidth:        4,
		PipeSpacing:      30,
		PipeSpeed:        0.1,
		Gravity:          1,
		JumpVelocity:     -4,
		Lives:            1,
		HitCooldownTicks: 5,
		DamageTicks:      3,
	}
}

func testLevel() level.Level {
	return level.Level{Obstacles: []level.ObstacleSpec{
		{GapCenter: 0.5, GapHeight: 0.4, SpawnTime: 0},
	}}
}

// runToEnd advances until the run records itself, guarding against
// runaway loops.
func runToEnd(t *testing.T, sv *Supervisor) sim.RunState {
	t.Helper()
	for i := 0; i < 1000; i++ {
		state, ended := sv.Advance()
		if ended {
			return state
		}
	}
	t.Fatal("run never ended")
	return sim.RunState{}
}

func TestSupervisorStartsIdle(t *testing.T) {
	sv := New(fastParams(), testLevel(), replay.NewLedger())

	if sv.Running() {
		t.Error("supervisor should start Idle")
	}
	if _, ok := sv.State(); ok {
		t.Error("State() should report no run while Idle")
	}

	// Input and ticks while Idle are absences of a run, not errors.
	sv.Flap()
	if _, ended := sv.Advance(); ended {
		t.Error("Advance() while Idle must not report an ended run")
	}
}

func TestSupervisorRecordsFinishedRunOnce(t *testing.T) {
	ledger := replay.NewLedger()
	sv := New(fastParams(), testLevel(), ledger)

	start := sv.Start()
	if !sv.Running() {
		t.Fatal("Start() should enter Running")
	}
	if start.Lives != 1 || start.Tick != 0 {
		t.Fatalf("fresh run state = %+v", start)
	}

	sv.Flap() // one impulse at tick 0
	end := runToEnd(t, sv)

	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d records, expected 1", ledger.Len())
	}

	rec := ledger.Seeds()[0]
	if len(rec.ImpulseTicks) != 1 || rec.ImpulseTicks[0] != 0 {
		t.Errorf("recorded impulse ticks = %v, expected [0]", rec.ImpulseTicks)
	}
	if rec.EndTick != end.Tick {
		t.Errorf("recorded end tick = %d, state tick = %d", rec.EndTick, end.Tick)
	}
	if rec.StartY != 10 {
		t.Errorf("recorded start y = %v, expected 10", rec.StartY)
	}
	if rec.Won {
		t.Error("a bottom-edge death must record Won=false")
	}

	// Further ticks after the end must not record again or re-report.
	for i := 0; i < 10; i++ {
		if _, ended := sv.Advance(); ended {
			t.Fatal("Advance() reported the same run ending twice")
		}
	}
	if ledger.Len() != 1 {
		t.Errorf("ledger grew to %d after the run already recorded", ledger.Len())
	}
}

func TestSupervisorSupersededRunIsNotRecorded(t *testing.T) {
	ledger := replay.NewLedger()
	sv := New(fastParams(), testLevel(), ledger)

	sv.Start()
	sv.Flap()
	sv.Advance()
	sv.Advance()

	// A new start discards the in-flight run entirely.
	fresh := sv.Start()
	if fresh.Tick != 0 || fresh.Lives != 1 {
		t.Errorf("superseding start did not reset the run: %+v", fresh)
	}
	if ledger.Len() != 0 {
		t.Errorf("superseded run leaked into the ledger: %d records", ledger.Len())
	}

	// The replacement run still records normally.
	runToEnd(t, sv)
	if ledger.Len() != 1 {
		t.Errorf("ledger has %d records, expected 1", ledger.Len())
	}
}

func TestSupervisorGhostReplaysSourceTrajectory(t *testing.T) {
	p := fastParams()
	p.Lives = 2
	ledger := replay.NewLedger()
	sv := New(p, testLevel(), ledger)

	// First run: no input, so the actor free-falls and dies quickly.
	// Remember its trajectory per tick.
	sv.Start()
	trajectory := map[int]float64{}
	for i := 0; i < 1000; i++ {
		next, ended := sv.Advance()
		trajectory[next.Tick] = next.Actor.Y
		if ended {
			break
		}
	}

	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d records after first run", ledger.Len())
	}
	endTick := ledger.Seeds()[0].EndTick

	// Second run: the player flaps to outlive the source run. The single
	// ghost must retrace the first run's actor exactly and then finish.
	sv.Start()
	if sv.GhostCount() != 1 {
		t.Fatalf("second run has %d ghosts, expected 1", sv.GhostCount())
	}

	for i := 0; i < endTick+5; i++ {
		state, _ := sv.State()
		if state.Tick == 2 || state.Tick == 4 {
			sv.Flap()
		}
		next, _ := sv.Advance()
		if next.Over {
			break
		}
		g := next.Ghosts[0]
		if next.Tick <= endTick {
			want := trajectory[next.Tick]
			if g.Finished {
				t.Fatalf("ghost finished early at tick %d (source ended at %d)", next.Tick, endTick)
			}
			if g.Y != want {
				t.Fatalf("ghost y = %v at tick %d, source actor was at %v", g.Y, next.Tick, want)
			}
		} else if !g.Finished {
			t.Fatalf("ghost not finished at tick %d, source ended at %d", next.Tick, endTick)
		}
	}
}

func TestSupervisorSnapshotsSeedsAtStart(t *testing.T) {
	ledger := replay.NewLedger()
	sv := New(fastParams(), testLevel(), ledger)

	sv.Start()
	if sv.GhostCount() != 0 {
		t.Fatalf("first run has %d ghosts, expected 0", sv.GhostCount())
	}

	// A record appearing mid-run must not grow the live run's ghost set.
	ledger.Record(replay.RunRecord{ImpulseTicks: []int{1}, StartY: 10, EndTick: 9})
	if sv.GhostCount() != 0 {
		t.Error("ghost set must be fixed at run start")
	}

	sv.Start()
	if sv.GhostCount() != 1 {
		t.Errorf("new run has %d ghosts, expected 1", sv.GhostCount())
	}
}

func TestSupervisorIdenticalRunsRecordOnce(t *testing.T) {
	ledger := replay.NewLedger()
	sv := New(fastParams(), testLevel(), ledger)

	// Two no-input runs produce identical impulse lists; the ledger
	// keeps one.
	sv.Start()
	runToEnd(t, sv)
	sv.Start()
	runToEnd(t, sv)

	if ledger.Len() != 1 {
		t.Errorf("ledger has %d records, expected 1 for identical runs", ledger.Len())
	}
}
