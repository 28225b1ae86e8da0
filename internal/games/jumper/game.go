package jumper

import (
	"fmt"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Variant selects a registered flavour of the game.
type Variant int

const (
	VariantClassic Variant = iota // Configuration as loaded
	VariantBricks                 // Brick grid forced on
)

// configPath stores the custom config path set via CLI
var configPath string

// collisionSound is installed into every new world when set
var collisionSound CollisionSound

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetCollisionSound sets the sound played on every collision. Nil disables it.
func SetCollisionSound(s CollisionSound) {
	collisionSound = s
}

// Game adapts the world to the platform's game interface: it owns config
// loading, pause and restart, and terminal rendering.
type Game struct {
	variant Variant
	world   *World
	cfg     config.JumperConfig
	paused  bool

	// configErr is set when the configured file could not be used and the
	// built-in defaults were loaded instead.
	configErr error

	runtime        core.RuntimeConfig
	view           Viewport
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game that plays the loaded configuration as is.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewBricks creates a game with the brick grid enabled.
func NewBricks() *Game {
	return &Game{variant: VariantBricks}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantBricks {
		return "jumper_bricks"
	}
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantBricks {
		return "Jumper (Bricks)"
	}
	return "Jumper"
}

// Reset loads the configuration and starts a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.configErr = nil

	cfg, err := config.Load(configPath)
	if err != nil {
		g.configErr = err
		cfg = config.DefaultJumperConfig()
	}
	if g.variant == VariantBricks {
		cfg.Bricks.Enabled = true
	}

	world, err := NewWorld(cfg)
	if err != nil {
		g.configErr = err
		cfg = config.DefaultJumperConfig()
		cfg.Bricks.Enabled = g.variant == VariantBricks
		world, err = NewWorld(cfg)
		if err != nil {
			panic(fmt.Sprintf("jumper: built-in config does not build a level: %v", err))
		}
	}
	world.SetSound(collisionSound)

	g.cfg = cfg
	g.world = world
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the view to a new terminal size without touching the
// simulation.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height

	g.minScreenW = 40
	g.minScreenH = 15
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
	g.view = NewViewport(g.cfg.Level, width, height-1, 1)
}

// ConfigError returns why the configured file was not used, if it wasn't.
func (g *Game) ConfigError() error {
	return g.configErr
}

// World returns the running simulation.
func (g *Game) World() *World {
	return g.world
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Tick(in)

	return core.StepResult{
		State:      g.State(),
		Collisions: len(g.world.Events()),
	}
}

// Render draws the world and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderColliders(dst)
	g.view.Draw(dst, g.world.Actor.Rect, ActorGlyph, core.ColorActor)
	g.renderHUD(dst)

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "P to resume")
	}
}

func (g *Game) renderColliders(dst *core.Screen) {
	for c := range g.world.Colliders().Live() {
		switch c.Tag {
		case TagWall:
			g.view.Draw(dst, c.Rect, WallGlyph, core.ColorWall)
		case TagBrick:
			g.view.Draw(dst, c.Rect, BrickGlyph, core.ColorBrick)
		}
	}
	// The paddle is drawn even when it does not collide.
	g.view.Draw(dst, g.world.Paddle.Rect, PaddleGlyph, core.ColorPaddle)
}

func (g *Game) renderHUD(dst *core.Screen) {
	label := "Score: "
	dst.DrawTextColored(1, 0, label, core.ColorText)
	score := fmt.Sprintf("%d", g.world.Score())
	dst.DrawTextColored(1+len(label), 0, score, core.ColorScore)
	left := 1 + len(label) + len(score)

	if g.cfg.Bricks.Enabled {
		bricks := fmt.Sprintf("  Bricks: %d", g.world.Colliders().CountAlive(TagBrick))
		dst.DrawTextColored(left, 0, bricks, core.ColorText)
		left += len(bricks)
	}

	hint := "←→ move  ↑ jump  P pause  R restart"
	if g.configErr != nil {
		hint = "config error, using defaults"
	}
	x := dst.Width() - len([]rune(hint)) - 1
	if x > left+1 {
		dst.DrawTextColored(x, 0, hint, core.ColorDim)
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	box := core.CellRect{
		X: (dst.Width() - w) / 2,
		Y: (dst.Height() - h) / 2,
		W: w,
		H: h,
	}

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextColored((dst.Width()-len(subtitle))/2, box.Y+3, subtitle, core.ColorDim)
}

// State returns the current game state. The game has no losing condition.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.world.Score(),
		Paused: g.paused,
	}
}

// Snapshot captures the game state for determinism tests.
func (g *Game) Snapshot() Snapshot {
	snap := g.world.Snapshot()
	snap.Paused = g.paused
	return snap
}

func init() {
	registry.Register("jumper", func() registry.Game { return New() })
	registry.Register("jumper_bricks", func() registry.Game { return NewBricks() })
}
