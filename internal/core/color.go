package core

// Color is a palette slot for a screen cell. The platform maps each slot to
// a terminal color; games only pick the role.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall          // light gray platforms
	ColorBrick         // periwinkle collectibles
	ColorActor         // the jumping actor
	ColorPaddle        // dark blue paddle
	ColorText          // HUD labels
	ColorScore         // HUD score value
	ColorDim           // hints and overlays
)

// ANSI returns the 256-color code used for this slot, or "" for the
// terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorWall:
		return "252"
	case ColorBrick:
		return "147"
	case ColorActor:
		return "203"
	case ColorPaddle:
		return "61"
	case ColorText:
		return "147"
	case ColorScore:
		return "210"
	case ColorDim:
		return "245"
	default:
		return ""
	}
}
