package jumper

import "math"

// Snapshot is a flat copy of the simulation state used for determinism
// tests and debugging.
type Snapshot struct {
	Tick    uint64
	Score   int
	Paused  bool
	ActorX  float32
	ActorY  float32
	VelX    float32
	VelY    float32
	Jumping bool
	PaddleX float32
	PaddleY float32

	// Alive holds each collider's alive flag by ID.
	Alive []bool
}

// Snapshot captures the world state.
func (w *World) Snapshot() Snapshot {
	alive := make([]bool, len(w.colliders.colliders))
	for i, c := range w.colliders.colliders {
		alive[i] = c.Alive
	}

	return Snapshot{
		Tick:    w.tick,
		Score:   w.score,
		ActorX:  w.Actor.Rect.Center.X,
		ActorY:  w.Actor.Rect.Center.Y,
		VelX:    w.Actor.Velocity.X,
		VelY:    w.Actor.Velocity.Y,
		Jumping: w.Actor.Jumping,
		PaddleX: w.Paddle.Rect.Center.X,
		PaddleY: w.Paddle.Rect.Center.Y,
		Alive:   alive,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so runs must match exactly.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(math.Float32bits(snap.ActorX))
	h = h*31 + uint64(math.Float32bits(snap.ActorY))
	h = h*31 + uint64(math.Float32bits(snap.VelX))
	h = h*31 + uint64(math.Float32bits(snap.VelY))
	h = h*31 + boolBit(snap.Jumping)
	h = h*31 + uint64(math.Float32bits(snap.PaddleX))
	h = h*31 + uint64(math.Float32bits(snap.PaddleY))

	for _, alive := range snap.Alive {
		h = h*31 + boolBit(alive)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
