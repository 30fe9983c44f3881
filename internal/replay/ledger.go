// Package replay keeps the in-session history of completed runs. Each
// record is enough to reconstruct a run's trajectory as a ghost: the
// tick indices of its impulses, the starting height, and the tick at
// which it ended. The ledger lives for the process lifetime and is never
// pruned; it is not persisted.
package replay

import (
	"slices"
	"sync"
)

// RunRecord describes one completed run.
type RunRecord struct {
	ImpulseTicks []int   // Tick indices at which the player flapped, in order
	StartY       float64 // Actor starting height
	EndTick      int     // Tick at which the run ended
	Score        int
	Won          bool
}

// Ledger is an append-only collection of completed runs. It is owned by
// whoever constructs it and passed down explicitly - never a package
// global. Only one run is ever active at a time, but the ledger is safe
// for concurrent use anyway since the SSH path shares patterns with the
// local one.
type Ledger struct {
	mu   sync.RWMutex
	runs []RunRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends a completed run. Recording is idempotent: if a run with
// an identical impulse-tick list already exists, the call is a no-op.
func (l *Ledger) Record(rec RunRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.runs {
		if slices.Equal(existing.ImpulseTicks, rec.ImpulseTicks) {
			return
		}
	}

	// Copy the tick list so later appends by the caller cannot reach in.
	stored := rec
	stored.ImpulseTicks = slices.Clone(rec.ImpulseTicks)
	l.runs = append(l.runs, stored)
}

// Len returns the number of recorded runs.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.runs)
}

// Seeds returns a snapshot of all recorded runs for constructing a new
// run's ghost set. The snapshot is fixed: growth of the ledger after the
// call is never visible through it, which keeps ghost playback
// deterministic for the run that took the snapshot.
func (l *Ledger) Seeds() []RunRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seeds := make([]RunRecord, len(l.runs))
	for i, rec := range l.runs {
		seeds[i] = rec
		seeds[i].ImpulseTicks = slices.Clone(rec.ImpulseTicks)
	}
	return seeds
}
