package sim

import (
	"github.com/vovakirdan/ghostflap/internal/core"
)

// Step is the total transition function: given the current state and one
// event it produces the next state. It never fails and never mutates its
// input; all arithmetic is clamped.
func Step(p Params, s RunState, ev Event) RunState {
	switch e := ev.(type) {
	case Tick:
		return stepTick(p, s)
	case Impulse:
		return applyImpulse(p, s, e)
	}
	return s
}

// stepTick advances physics, obstacles, scoring, lives and the win/loss
// latch by one tick. Ordering matters: the actor's post-gravity, clamped
// position is what scoring and collision are judged against.
func stepTick(p Params, s RunState) RunState {
	if s.Over {
		// End-of-game freezes physics and the tick counter; only the
		// cooldown and damage counters keep decaying toward zero.
		next := s.clone()
		next.Cooldown = core.Max(0, s.Cooldown-1)
		next.Damage = core.Max(0, s.Damage-1)
		return next
	}

	next := s.clone()
	next.Tick = s.Tick + 1

	// Gravity integration, then clamp to the viewport band.
	a := s.Actor
	a.Vel += p.Gravity
	a.Y = core.ClampF(a.Y+a.Vel, p.minActorY(), p.maxActorY())
	next.Actor = a

	collision := false

	// Advance obstacles, resolve passes against the new actor position,
	// drop pipes that have moved fully off-screen. The pass check runs
	// before the drop so a fast pipe cannot leave the level unjudged.
	active := next.Obstacles[:0]
	for _, o := range next.Obstacles {
		o.X -= p.PipeSpeed

		if !o.Passed && o.Center(p.PipeWidth) < p.ActorX {
			// Pipe-center rule: judged exactly once, against the gap
			// band rather than the pipe sprite rectangles.
			o.Passed = true
			next.PassedCount++
			if o.InGap(a.Y) {
				next.Score++
			} else {
				collision = true
			}
		}

		if o.X <= -p.PipeWidth {
			continue
		}
		active = append(active, o)
	}
	next.Obstacles = active

	// Touching either screen edge counts as a collision.
	if a.Y <= p.minActorY() || a.Y >= p.maxActorY() {
		collision = true
	}

	// Cooldown-gated life loss: the gate reads the pre-decrement value,
	// so one continuous overlap costs at most one life per cooldown
	// window.
	preCooldown := s.Cooldown
	next.Cooldown = core.Max(0, preCooldown-1)
	lifeLost := false
	if collision && preCooldown == 0 {
		next.Lives = core.Max(0, s.Lives-1)
		next.Cooldown = p.HitCooldownTicks
		lifeLost = true
	}

	if lifeLost {
		next.Damage = p.DamageTicks
	} else {
		next.Damage = core.Max(0, s.Damage-1)
	}

	// Loss takes precedence: a win requires lives remaining.
	switch {
	case next.Lives == 0:
		next.Over = true
		next.Won = false
	case next.AllPassed() || (p.WinScore > 0 && next.Score >= p.WinScore):
		next.Over = true
		next.Won = true
	}

	// Ghosts integrate the identical gravity/clamp rule, independently
	// of the actor. A ghost whose source run has already ended is marked
	// finished and stops advancing, so it disappears instead of freezing
	// mid-air.
	for i := range next.Ghosts {
		g := &next.Ghosts[i]
		if g.Finished {
			continue
		}
		if next.Tick > g.EndTick {
			g.Finished = true
			continue
		}
		g.Vel += p.Gravity
		g.Y = core.ClampF(g.Y+g.Vel, p.minActorY(), p.maxActorY())
	}

	return next
}

// applyImpulse sets the target body's velocity to the jump velocity.
// Impulses have no effect once the run has ended.
func applyImpulse(p Params, s RunState, e Impulse) RunState {
	if s.Over {
		return s
	}

	next := s.clone()
	if e.Target == TargetPlayer {
		next.Actor.Vel = p.JumpVelocity
		return next
	}

	if e.Target >= 0 && e.Target < len(next.Ghosts) && !next.Ghosts[e.Target].Finished {
		next.Ghosts[e.Target].Vel = p.JumpVelocity
	}
	return next
}
