package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// CollisionEvent records one overlap found during a tick.
type CollisionEvent struct {
	ColliderID int
	Tag        Tag
	Side       core.Side
}

// CollisionSound is played once per detected overlap.
type CollisionSound interface {
	PlayCollision()
}

// ApplyInput sets horizontal velocity from held keys and starts a jump.
// Left wins when both horizontal keys are held. A jump only starts when the
// actor is not already jumping.
func ApplyInput(a *Actor, in core.InputFrame, p config.PhysicsConfig) {
	if in.Has(core.ActionUp) && !a.Jumping {
		a.Velocity.Y = p.JumpSpeed
		a.Jumping = true
	}

	switch {
	case in.Has(core.ActionLeft):
		a.Velocity.X = -p.XSpeed
	case in.Has(core.ActionRight):
		a.Velocity.X = p.XSpeed
	default:
		a.Velocity.X = 0
	}
}

// MovePaddle steps the paddle by its speed in the held directions and clamps
// it inside the arena. It does nothing when paddle movement is disabled and
// reports whether the paddle was moved.
func MovePaddle(p *Paddle, in core.InputFrame, cfg config.JumperConfig) bool {
	if !cfg.Paddle.MovementEnabled {
		return false
	}

	// Left wins over Right and Down over Up when both are held.
	var dx, dy float32
	switch {
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	}
	switch {
	case in.Has(core.ActionDown):
		dy = -1
	case in.Has(core.ActionUp):
		dy = 1
	}

	step := float32(cfg.Paddle.Speed * cfg.Physics.TimeStep)
	minX, maxX, minY, maxY := paddleBounds(cfg)

	p.Rect.Center.X = core.ClampF(p.Rect.Center.X+float32(dx*step), minX, maxX)
	p.Rect.Center.Y = core.ClampF(p.Rect.Center.Y+float32(dy*step), minY, maxY)
	return true
}

// Integrate advances the actor by one tick. Gravity is a flat per-tick
// decrement applied after the position update and is not scaled by dt.
// Crossing ±wrap horizontally teleports the actor to the opposite bound.
func Integrate(a *Actor, dt, gravity, wrap float32) {
	a.Rect.Center.X += float32(a.Velocity.X * dt)
	a.Rect.Center.Y += float32(a.Velocity.Y * dt)

	if a.Rect.Center.X > wrap {
		a.Rect.Center.X = -wrap
	}
	if a.Rect.Center.X < -wrap {
		a.Rect.Center.X = wrap
	}

	a.Velocity.Y -= gravity
}

// ResolveCollisions tests the actor against every live collider in registry
// order. Bricks add one point each and are removed once the pass is over;
// walls and the paddle stop motion into the side that was hit.
func ResolveCollisions(w *World) {
	var hitBricks []int

	for c := range w.colliders.Live() {
		side := core.Collide(w.Actor.Rect, c.Rect)
		if side == core.SideNone {
			continue
		}

		w.events = append(w.events, CollisionEvent{ColliderID: c.ID, Tag: c.Tag, Side: side})
		if w.sound != nil {
			w.sound.PlayCollision()
		}

		if c.Tag == TagBrick {
			w.score++
			hitBricks = append(hitBricks, c.ID)
			continue
		}

		stopAgainst(&w.Actor, side, w.cfg.Physics.LandingSide)
	}

	for _, id := range hitBricks {
		w.colliders.Remove(id)
	}
}

// stopAgainst zeroes the velocity component heading into a wall. The
// landing side also ends the current jump.
func stopAgainst(a *Actor, side core.Side, landing string) {
	switch side {
	case core.SideLeft:
		if a.Velocity.X > 0 {
			a.Velocity.X = 0
		}
	case core.SideRight:
		if a.Velocity.X < 0 {
			a.Velocity.X = 0
		}
	case core.SideTop:
		if a.Velocity.Y < 0 {
			a.Velocity.Y = 0
			if landing != config.LandingBottom {
				a.Jumping = false
			}
		}
	case core.SideBottom:
		if a.Velocity.Y > 0 {
			a.Velocity.Y = 0
			if landing == config.LandingBottom {
				a.Jumping = false
			}
		}
	}
}
