package jumper

import (
	"fmt"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// World holds the whole simulation: one actor, one paddle, the collider
// registry and the score.
type World struct {
	Actor  Actor
	Paddle Paddle

	cfg       config.JumperConfig
	colliders *Registry
	score     int
	tick      uint64
	events    []CollisionEvent
	sound     CollisionSound
}

// NewWorld builds a world from a validated configuration.
func NewWorld(cfg config.JumperConfig) (*World, error) {
	paddle := NewPaddle(cfg.Paddle)

	reg, paddleID, err := BuildLevel(cfg, paddle.Rect)
	if err != nil {
		return nil, fmt.Errorf("jumper: build level: %w", err)
	}
	paddle.ColliderID = paddleID

	return &World{
		Actor:     NewActor(cfg.Actor, cfg.Physics.XSpeed),
		Paddle:    paddle,
		cfg:       cfg,
		colliders: reg,
	}, nil
}

// SetSound installs the collision sound. Nil silences the world.
func (w *World) SetSound(s CollisionSound) {
	w.sound = s
}

// Tick advances the world by one fixed step: input, paddle, integration,
// then collisions. Events from the previous tick are discarded first.
func (w *World) Tick(in core.InputFrame) {
	w.tick++
	w.events = w.events[:0]

	ApplyInput(&w.Actor, in, w.cfg.Physics)

	if MovePaddle(&w.Paddle, in, w.cfg) && w.Paddle.ColliderID >= 0 {
		w.colliders.Move(w.Paddle.ColliderID, w.Paddle.Rect.Center)
	}

	wrap := w.cfg.Physics.WrapCells * w.cfg.Level.BlockSize
	Integrate(&w.Actor, w.cfg.Physics.TimeStep, w.cfg.Physics.Gravity, wrap)

	ResolveCollisions(w)
}

// Score returns the number of bricks collected.
func (w *World) Score() int {
	return w.score
}

// Ticks returns the number of ticks simulated.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Events returns the overlaps found during the last tick. The slice is
// reused by the next tick.
func (w *World) Events() []CollisionEvent {
	return w.events
}

// Colliders returns the collider registry.
func (w *World) Colliders() *Registry {
	return w.colliders
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.JumperConfig {
	return w.cfg
}
