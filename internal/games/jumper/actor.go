package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Actor is the jumping character.
type Actor struct {
	Rect     core.Rect
	Velocity core.Vec2

	// Jumping is set by a jump impulse and cleared on landing. While set,
	// further jump input is ignored.
	Jumping bool
}

// NewActor places the actor at its configured start, moving along its
// initial direction at xSpeed.
func NewActor(cfg config.ActorConfig, xSpeed float32) Actor {
	dir := core.V2(cfg.InitialDirection.X, cfg.InitialDirection.Y)
	return Actor{
		Rect:     core.NewRect(cfg.Start.X, cfg.Start.Y, cfg.Size.X, cfg.Size.Y),
		Velocity: dir.Normalize().Scale(xSpeed),
	}
}

// Paddle is the secondary, keyboard-driven rectangle.
type Paddle struct {
	Rect core.Rect

	// ColliderID is the paddle's entry in the registry, or -1 when the
	// paddle does not collide.
	ColliderID int
}

// NewPaddle places the paddle centered horizontally at its configured height.
func NewPaddle(cfg config.PaddleConfig) Paddle {
	return Paddle{
		Rect:       core.NewRect(0, cfg.Y, cfg.Size.X, cfg.Size.Y),
		ColliderID: -1,
	}
}

// paddleBounds returns the clamp range for the paddle center.
func paddleBounds(cfg config.JumperConfig) (minX, maxX, minY, maxY float32) {
	l, p := cfg.Level, cfg.Paddle
	halfT := l.WallThickness / 2
	halfW, halfH := p.Size.X/2, p.Size.Y/2

	minX = l.Left + halfT + halfW + p.Padding
	maxX = l.Right - halfT - halfW - p.Padding
	minY = l.Bottom - halfT - halfH - p.Padding
	maxY = l.Top + halfT + halfH + p.Padding
	return minX, maxX, minY, maxY
}
