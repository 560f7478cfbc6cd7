package fluent

// AnimationType tags the direction a popup opens in.
type AnimationType int

const (
	// AnimationNone opens in place with no slide.
	AnimationNone AnimationType = iota
	// AnimationDropDown opens below the anchor, sliding down.
	AnimationDropDown
	// AnimationPullUp opens above the anchor, sliding up.
	AnimationPullUp
)

func (a AnimationType) String() string {
	switch a {
	case AnimationDropDown:
		return "drop-down"
	case AnimationPullUp:
		return "pull-up"
	default:
		return "none"
	}
}

// SizingOracle reports how much vertical space a popup may occupy when
// opened at an anchor point in a direction. The windowing layer provides
// the real one; tests provide fakes.
type SizingOracle interface {
	HeightForAnimation(anchor Vec2, ani AnimationType) float32
}

// OracleFunc adapts a function to the SizingOracle interface.
type OracleFunc func(anchor Vec2, ani AnimationType) float32

// HeightForAnimation calls f.
func (f OracleFunc) HeightForAnimation(anchor Vec2, ani AnimationType) float32 {
	return f(anchor, ani)
}

// DisplayOracle bounds popups by a display of the given size: drop-downs
// get the space below the anchor, pull-ups the space above it.
type DisplayOracle struct {
	DisplaySize Vec2
}

// HeightForAnimation returns the available vertical space in the given
// direction, never negative.
func (o DisplayOracle) HeightForAnimation(anchor Vec2, ani AnimationType) float32 {
	if ani == AnimationPullUp {
		return maxf(0, anchor.Y)
	}
	return maxf(0, o.DisplaySize.Y-anchor.Y)
}

// Placement is the outcome of choosing a popup direction.
type Placement struct {
	Position  Vec2          // Screen position the popup opens at
	Animation AnimationType // Chosen direction
	Height    float32       // Achievable popup height at that position
}

// ChoosePlacement picks drop-down or pull-up for a popup of menuSize
// anchored to the given rectangle. The popup's horizontal center aligns
// with the anchor's center, shifted by the popup's left content inset so
// the visible edge (not the margin box) lines up. Each direction is
// probed at its own anchor point: the drop-down candidate at the
// anchor's bottom edge, the pull-up candidate at its top edge. Whichever
// offers at least as much room as the other wins, drop-down taking ties.
//
// This is a stateless computation, re-evaluated on every open.
func ChoosePlacement(anchor Rect, menuSize Vec2, leftInset float32, oracle SizingOracle) Placement {
	x := anchor.CenterX() - menuSize.X/2 + leftInset

	down := Vec2{X: x, Y: anchor.Bottom()}
	up := Vec2{X: x, Y: anchor.Y}

	hd := oracle.HeightForAnimation(down, AnimationDropDown)
	hu := oracle.HeightForAnimation(up, AnimationPullUp)

	if hd >= hu {
		return Placement{
			Position:  down,
			Animation: AnimationDropDown,
			Height:    minf(menuSize.Y, hd),
		}
	}
	return Placement{
		Position:  Vec2{X: up.X, Y: up.Y - minf(menuSize.Y, hu)},
		Animation: AnimationPullUp,
		Height:    minf(menuSize.Y, hu),
	}
}
