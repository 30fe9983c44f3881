package sim

// Params holds every constant the transition function reads. Values are
// in viewport cells and cells-per-tick; the platform builds Params from
// the YAML config and the terminal size.
type Params struct {
	ViewportW float64 // Viewport width in cells
	ViewportH float64 // Viewport height in cells

	ActorX float64 // Fixed horizontal position of the actor's center
	ActorW float64 // Actor hitbox width
	ActorH float64 // Actor hitbox height

	PipeWidth   float64 // Obstacle width
	PipeSpacing float64 // Horizontal distance between obstacle spawns
	PipeSpeed   float64 // Leftward obstacle motion per tick

	Gravity      float64 // Downward acceleration per tick
	JumpVelocity float64 // Velocity set by an impulse (negative = up)

	Lives            int // Starting lives
	HitCooldownTicks int // Grace ticks after a life is lost
	DamageTicks      int // Duration of the transient hit indicator
	WinScore         int // Score shortcut end condition; 0 = pass every obstacle
}

// DefaultParams returns parameters tuned for an 80x24 terminal.
func DefaultParams() Params {
	return Params{
		ViewportW:        80,
		ViewportH:        24,
		ActorX:           12,
		ActorW:           2,
		ActorH:           1,
		PipeWidth:        4,
		PipeSpacing:      28,
		PipeSpeed:        0.6,
		Gravity:          0.08,
		JumpVelocity:     -0.55,
		Lives:            3,
		HitCooldownTicks: 30,
		DamageTicks:      12,
		WinScore:         0,
	}
}

// minActorY returns the lowest vertical position the actor's center may
// occupy (half the hitbox below the top edge).
func (p Params) minActorY() float64 {
	return p.ActorH / 2
}

// maxActorY returns the highest vertical position the actor's center may
// occupy.
func (p Params) maxActorY() float64 {
	return p.ViewportH - p.ActorH/2
}
