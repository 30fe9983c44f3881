package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the session layer decides
// what they mean for the current run.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space, W, Up - the single impulse action
	ActionStart        // Enter - start the first run / replay after game over
	ActionPause        // P - pause/unpause the clock
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two clock ticks.
// Each qualifying key press counts once; there is no debounce here -
// the simulation decides whether an impulse has any effect.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Add records one occurrence of an action.
func (f *InputFrame) Add(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered at least once.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a] > 0
}

// Count returns how many times the given action was triggered.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
