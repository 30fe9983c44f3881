package sim

// TargetPlayer addresses an impulse at the live player's actor.
// Non-negative targets address the ghost with that index.
const TargetPlayer = -1

// Event is the closed set of inputs to the transition function. One run
// is a left-fold of Step over the event stream the session layer feeds
// it: clock ticks interleaved with impulses.
type Event interface {
	isEvent()
}

// Tick advances the simulation by one fixed step. It is the only event
// that moves obstacles, integrates gravity and mutates lives, score and
// the end-of-game flags.
type Tick struct{}

// Impulse sets the target body's vertical velocity to the configured
// jump velocity. The velocity is replaced, not accumulated, which gives
// the characteristic upward snap.
type Impulse struct {
	Target int // TargetPlayer or a ghost index
}

func (Tick) isEvent()    {}
func (Impulse) isEvent() {}
