package jumper

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

func TestWallLocations(t *testing.T) {
	l := config.DefaultJumperConfig().Level

	tests := []struct {
		loc  WallLocation
		pos  core.Vec2
		size core.Vec2
	}{
		{WallLeft, core.V2(-450, 0), core.V2(20, 560)},
		{WallRight, core.V2(450, 0), core.V2(20, 560)},
		{WallBottom, core.V2(0, -240), core.V2(640, 20)},
		{WallTop, core.V2(0, 300), core.V2(640, 20)},
		{Platform1, core.V2(200, -120), core.V2(240, 20)},
		{Platform2, core.V2(-200, -120), core.V2(240, 20)},
		{Platform3, core.V2(0, 0), core.V2(320, 20)},
		{Platform4, core.V2(280, -20), core.V2(80, 20)},
		{Platform5, core.V2(-280, -20), core.V2(80, 20)},
		{Platform6, core.V2(180, 120), core.V2(280, 20)},
		{Platform7, core.V2(-180, 120), core.V2(280, 20)},
	}

	for _, tc := range tests {
		if got := tc.loc.Position(l); got != tc.pos {
			t.Errorf("location %d: Position() = %v, expected %v", tc.loc, got, tc.pos)
		}
		if got := tc.loc.Size(l); got != tc.size {
			t.Errorf("location %d: Size() = %v, expected %v", tc.loc, got, tc.size)
		}
	}
}

func TestParseWallLocation(t *testing.T) {
	for _, name := range config.WallNames {
		if _, err := ParseWallLocation(name); err != nil {
			t.Errorf("ParseWallLocation(%q) error = %v", name, err)
		}
	}

	if _, err := ParseWallLocation("platform8"); err == nil {
		t.Error("ParseWallLocation(platform8) should fail")
	}
}

func TestLayoutBricksDefault(t *testing.T) {
	grid, err := LayoutBricks(config.DefaultJumperConfig())
	if err != nil {
		t.Fatalf("LayoutBricks() error = %v", err)
	}

	// Width 900-40=860 fits 57 cells of 15, height 300+230-20=510 fits 34.
	if grid.Columns != 57 || grid.Rows != 34 {
		t.Errorf("grid = %dx%d, expected 57x34", grid.Columns, grid.Rows)
	}
	if grid.Origin != core.V2(-420, -225) {
		t.Errorf("Origin = %v, expected (-420,-225)", grid.Origin)
	}
	if got := grid.Position(33, 56); got != core.V2(420, 270) {
		t.Errorf("Position(33, 56) = %v, expected (420,270)", got)
	}

	// The column count is rounded down, so the real side margin is wider
	// than the configured one and the grid stays centered.
	left := grid.Origin.X - grid.Size.X/2
	right := grid.Position(0, grid.Columns-1).X + grid.Size.X/2
	if left != -425 || right != 425 {
		t.Errorf("grid spans [%v,%v], expected [-425,425]", left, right)
	}
}

func TestLayoutBricksNoSpace(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Bricks.GapToSides = 500

	if _, err := LayoutBricks(cfg); !errors.Is(err, ErrNoBrickSpace) {
		t.Errorf("LayoutBricks() error = %v, expected ErrNoBrickSpace", err)
	}

	cfg = config.DefaultJumperConfig()
	cfg.Bricks.GapToPaddle = 900
	if _, err := LayoutBricks(cfg); !errors.Is(err, ErrNoBrickSpace) {
		t.Errorf("LayoutBricks() error = %v, expected ErrNoBrickSpace", err)
	}
}

func TestBuildLevelOrder(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	paddle := NewPaddle(cfg.Paddle)

	reg, paddleID, err := BuildLevel(cfg, paddle.Rect)
	if err != nil {
		t.Fatalf("BuildLevel() error = %v", err)
	}

	if paddleID != 0 {
		t.Errorf("paddle ID = %d, expected 0", paddleID)
	}
	if reg.Len() != 9 {
		t.Fatalf("Len() = %d, expected paddle + 8 walls", reg.Len())
	}

	c, _ := reg.Get(1)
	if c.Tag != TagWall || c.Rect != WallBottom.Rect(cfg.Level) {
		t.Errorf("collider 1 = %+v, expected bottom wall", c)
	}
	if n := reg.CountAlive(TagBrick); n != 0 {
		t.Errorf("bricks = %d with bricks disabled, expected 0", n)
	}

	cfg.Bricks.Enabled = true
	cfg.Paddle.Collides = false
	reg, paddleID, err = BuildLevel(cfg, paddle.Rect)
	if err != nil {
		t.Fatalf("BuildLevel() error = %v", err)
	}
	if paddleID != -1 {
		t.Errorf("paddle ID = %d, expected -1 when the paddle does not collide", paddleID)
	}
	if n := reg.CountAlive(TagBrick); n != 57*34 {
		t.Errorf("bricks = %d, expected %d", n, 57*34)
	}

	// Walls come before bricks.
	first, _ := reg.Get(0)
	last, _ := reg.Get(reg.Len() - 1)
	if first.Tag != TagWall || last.Tag != TagBrick {
		t.Errorf("order: first %v last %v, expected wall then brick", first.Tag, last.Tag)
	}
}

func TestBuildLevelUnknownWall(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Level.Walls = []string{"bottom", "ceiling"}

	if _, _, err := BuildLevel(cfg, core.Rect{}); err == nil {
		t.Error("BuildLevel() should reject unknown wall names")
	}
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry()
	a := reg.Add(core.NewRect(0, 0, 10, 10), TagBrick)
	b := reg.Add(core.NewRect(20, 0, 10, 10), TagBrick)

	if !reg.Remove(a) {
		t.Error("Remove() of live collider = false")
	}
	if reg.Remove(a) {
		t.Error("Remove() of removed collider = true")
	}
	if reg.Remove(99) || reg.Remove(-1) {
		t.Error("Remove() of unknown id = true")
	}
	if reg.Move(a, core.V2(5, 5)) {
		t.Error("Move() of removed collider = true")
	}

	var live []int
	for c := range reg.Live() {
		live = append(live, c.ID)
	}
	if len(live) != 1 || live[0] != b {
		t.Errorf("Live() = %v, expected [%d]", live, b)
	}

	// IDs are never reused.
	if c := reg.Add(core.NewRect(0, 0, 1, 1), TagWall); c != 2 {
		t.Errorf("Add() after Remove = %d, expected 2", c)
	}
}
