// Package jumper implements a platform game: one actor runs and jumps across
// fixed platforms, collecting bricks for score.
package jumper

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Tag identifies what a collider is.
type Tag int

const (
	TagWall   Tag = iota // Permanent platform or boundary
	TagBrick             // Collectible, removed when hit
	TagPaddle            // The paddle, resolved like a wall
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagWall:
		return "wall"
	case TagBrick:
		return "brick"
	case TagPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// Collider is a static rectangle the actor can hit.
type Collider struct {
	ID    int
	Rect  core.Rect
	Tag   Tag
	Alive bool
}

// Registry holds every collider in registration order. IDs are indexes
// into the registry and are never reused.
type Registry struct {
	colliders []Collider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a collider and returns its ID.
func (r *Registry) Add(rect core.Rect, tag Tag) int {
	id := len(r.colliders)
	r.colliders = append(r.colliders, Collider{ID: id, Rect: rect, Tag: tag, Alive: true})
	return id
}

// Get returns the collider with the given ID, alive or not.
func (r *Registry) Get(id int) (Collider, bool) {
	if id < 0 || id >= len(r.colliders) {
		return Collider{}, false
	}
	return r.colliders[id], true
}

// Remove takes a collider out of play. It reports false if the ID is
// unknown or already removed.
func (r *Registry) Remove(id int) bool {
	if id < 0 || id >= len(r.colliders) || !r.colliders[id].Alive {
		return false
	}
	r.colliders[id].Alive = false
	return true
}

// Move recenters a live collider.
func (r *Registry) Move(id int, center core.Vec2) bool {
	if id < 0 || id >= len(r.colliders) || !r.colliders[id].Alive {
		return false
	}
	r.colliders[id].Rect.Center = center
	return true
}

// Live yields alive colliders in registration order.
func (r *Registry) Live() iter.Seq[Collider] {
	return func(yield func(Collider) bool) {
		for _, c := range r.colliders {
			if !c.Alive {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// CountAlive returns the number of alive colliders with the given tag.
func (r *Registry) CountAlive(tag Tag) int {
	count := 0
	for c := range r.Live() {
		if c.Tag == tag {
			count++
		}
	}
	return count
}

// Len returns the number of colliders ever registered.
func (r *Registry) Len() int {
	return len(r.colliders)
}

// WallLocation is one of the named places a wall can be spawned.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
	Platform1
	Platform2
	Platform3
	Platform4
	Platform5
	Platform6
	Platform7
)

var wallNames = map[string]WallLocation{
	"left":      WallLeft,
	"right":     WallRight,
	"bottom":    WallBottom,
	"top":       WallTop,
	"platform1": Platform1,
	"platform2": Platform2,
	"platform3": Platform3,
	"platform4": Platform4,
	"platform5": Platform5,
	"platform6": Platform6,
	"platform7": Platform7,
}

// ParseWallLocation maps a config name to a location.
func ParseWallLocation(name string) (WallLocation, error) {
	loc, ok := wallNames[name]
	if !ok {
		return 0, fmt.Errorf("jumper: unknown wall location %q", name)
	}
	return loc, nil
}

// Position returns the wall center for the given level constants.
func (w WallLocation) Position(l config.LevelConfig) core.Vec2 {
	b := l.BlockSize
	switch w {
	case WallLeft:
		return core.V2(l.Left, 0)
	case WallRight:
		return core.V2(l.Right, 0)
	case WallBottom:
		return core.V2(0, l.Bottom)
	case WallTop:
		return core.V2(0, l.Top)
	case Platform1:
		return core.V2(b*10, b*-6)
	case Platform2:
		return core.V2(b*-10, b*-6)
	case Platform3:
		return core.V2(0, 0)
	case Platform4:
		return core.V2(b*14, b*-1)
	case Platform5:
		return core.V2(b*-14, b*-1)
	case Platform6:
		return core.V2(b*9, b*6)
	case Platform7:
		return core.V2(b*-9, b*6)
	default:
		return core.Vec2{}
	}
}

// Size returns the wall extent for the given level constants.
func (w WallLocation) Size(l config.LevelConfig) core.Vec2 {
	b := l.BlockSize
	arenaHeight := l.Top - l.Bottom
	switch w {
	case WallLeft, WallRight:
		return core.V2(l.WallThickness, arenaHeight+l.WallThickness)
	case WallBottom, WallTop:
		return core.V2(b*32, l.WallThickness)
	case Platform1, Platform2:
		return core.V2(b*12, b)
	case Platform3:
		return core.V2(b*16, b)
	case Platform4, Platform5:
		return core.V2(b*4, b)
	case Platform6, Platform7:
		return core.V2(b*14, b)
	default:
		return core.Vec2{}
	}
}

// Rect returns the wall rectangle.
func (w WallLocation) Rect(l config.LevelConfig) core.Rect {
	return core.Rect{Center: w.Position(l), Size: w.Size(l)}
}

// BrickGrid is the computed brick layout.
type BrickGrid struct {
	Columns int
	Rows    int
	Origin  core.Vec2 // Center of the bottom-left brick
	Step    core.Vec2 // Distance between neighbouring brick centers
	Size    core.Vec2
}

// ErrNoBrickSpace is returned when the margins leave no room for bricks.
var ErrNoBrickSpace = errors.New("jumper: no space for bricks")

// LayoutBricks computes how many bricks fit above the paddle and where they
// go. Counts are rounded down, so the side and ceiling gaps are lower bounds
// and the grid is centered on the arena.
//
// Explicit float32 conversions keep each product rounded on its own so the
// placement is identical on every architecture.
func LayoutBricks(cfg config.JumperConfig) (BrickGrid, error) {
	l, bc := cfg.Level, cfg.Bricks
	size := core.V2(bc.Size.X, bc.Size.Y)

	totalWidth := (l.Right - l.Left) - float32(2*bc.GapToSides)
	bottomEdge := cfg.Paddle.Y + bc.GapToPaddle
	totalHeight := l.Top - bottomEdge - bc.GapToCeiling
	if totalWidth <= 0 || totalHeight <= 0 {
		return BrickGrid{}, fmt.Errorf("%w: available area %gx%g", ErrNoBrickSpace, totalWidth, totalHeight)
	}

	cols := int(math.Floor(float64(totalWidth / (size.X + bc.Gap))))
	rows := int(math.Floor(float64(totalHeight / (size.Y + bc.Gap))))
	verticalGaps := cols - 1

	center := (l.Left + l.Right) / 2
	leftEdge := center -
		float32(float32(cols)/2*size.X) -
		float32(float32(verticalGaps)/2*bc.Gap)

	return BrickGrid{
		Columns: cols,
		Rows:    rows,
		Origin:  core.V2(leftEdge+size.X/2, bottomEdge+size.Y/2),
		Step:    core.V2(size.X+bc.Gap, size.Y+bc.Gap),
		Size:    size,
	}, nil
}

// Position returns the center of the brick at (row, col).
func (g BrickGrid) Position(row, col int) core.Vec2 {
	return core.V2(
		g.Origin.X+float32(float32(col)*g.Step.X),
		g.Origin.Y+float32(float32(row)*g.Step.Y),
	)
}

// BuildLevel creates the collider registry for a configuration: the paddle
// (when it collides), then the configured walls in order, then the brick
// grid when enabled. It returns the paddle's collider ID, or -1.
func BuildLevel(cfg config.JumperConfig, paddle core.Rect) (*Registry, int, error) {
	reg := NewRegistry()

	paddleID := -1
	if cfg.Paddle.Collides {
		paddleID = reg.Add(paddle, TagPaddle)
	}

	for _, name := range cfg.Level.Walls {
		loc, err := ParseWallLocation(name)
		if err != nil {
			return nil, -1, err
		}
		reg.Add(loc.Rect(cfg.Level), TagWall)
	}

	if !cfg.Bricks.Enabled {
		return reg, paddleID, nil
	}

	grid, err := LayoutBricks(cfg)
	if err != nil {
		return nil, -1, err
	}
	for row := range grid.Rows {
		for col := range grid.Columns {
			reg.Add(core.Rect{Center: grid.Position(row, col), Size: grid.Size}, TagBrick)
		}
	}

	return reg, paddleID, nil
}
