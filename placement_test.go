package fluent_test

import (
	"testing"

	"github.com/fluent-go/fluent"
)

func fixedOracle(below, above float32) fluent.OracleFunc {
	return func(anchor fluent.Vec2, ani fluent.AnimationType) float32 {
		if ani == fluent.AnimationPullUp {
			return above
		}
		return below
	}
}

func TestChoosePlacementPrefersDropDown(t *testing.T) {
	anchor := fluent.Rect{X: 100, Y: 100, W: 200, H: 33}
	menu := fluent.Vec2{X: 200, Y: 150}

	p := fluent.ChoosePlacement(anchor, menu, 0, fixedOracle(300, 50))

	if p.Animation != fluent.AnimationDropDown {
		t.Fatalf("Animation = %v, want drop-down", p.Animation)
	}
	if p.Position.Y != anchor.Bottom() {
		t.Errorf("Position.Y = %v, want anchor bottom %v", p.Position.Y, anchor.Bottom())
	}
	if p.Height != 150 {
		t.Errorf("Height = %v, want full menu height 150", p.Height)
	}
}

func TestChoosePlacementPullsUpWhenMoreRoomAbove(t *testing.T) {
	anchor := fluent.Rect{X: 100, Y: 500, W: 200, H: 33}
	menu := fluent.Vec2{X: 200, Y: 150}

	p := fluent.ChoosePlacement(anchor, menu, 0, fixedOracle(40, 400))

	if p.Animation != fluent.AnimationPullUp {
		t.Fatalf("Animation = %v, want pull-up", p.Animation)
	}
	// Position is the popup's top-left: the anchor top minus the
	// achievable height.
	if p.Position.Y != anchor.Y-150 {
		t.Errorf("Position.Y = %v, want %v", p.Position.Y, anchor.Y-150)
	}
}

func TestChoosePlacementTieGoesDown(t *testing.T) {
	anchor := fluent.Rect{X: 0, Y: 0, W: 100, H: 30}

	p := fluent.ChoosePlacement(anchor, fluent.Vec2{X: 100, Y: 80}, 0, fixedOracle(120, 120))

	if p.Animation != fluent.AnimationDropDown {
		t.Errorf("Animation = %v on tie, want drop-down", p.Animation)
	}
}

func TestChoosePlacementClampsHeight(t *testing.T) {
	anchor := fluent.Rect{X: 0, Y: 0, W: 100, H: 30}

	p := fluent.ChoosePlacement(anchor, fluent.Vec2{X: 100, Y: 500}, 0, fixedOracle(200, 10))

	if p.Height != 200 {
		t.Errorf("Height = %v, want clamped 200", p.Height)
	}
}

func TestChoosePlacementCentersWithInset(t *testing.T) {
	anchor := fluent.Rect{X: 100, Y: 0, W: 200, H: 30} // center x = 200
	menu := fluent.Vec2{X: 300, Y: 100}

	p := fluent.ChoosePlacement(anchor, menu, 8, fixedOracle(500, 0))

	want := float32(200) - 150 + 8
	if p.Position.X != want {
		t.Errorf("Position.X = %v, want %v", p.Position.X, want)
	}
}

func TestChoosePlacementProbesEachDirectionAtItsOwnEdge(t *testing.T) {
	anchor := fluent.Rect{X: 0, Y: 100, W: 100, H: 40}

	var downProbe, upProbe fluent.Vec2
	oracle := fluent.OracleFunc(func(p fluent.Vec2, ani fluent.AnimationType) float32 {
		if ani == fluent.AnimationPullUp {
			upProbe = p
		} else {
			downProbe = p
		}
		return 100
	})

	fluent.ChoosePlacement(anchor, fluent.Vec2{X: 100, Y: 50}, 0, oracle)

	if downProbe.Y != anchor.Bottom() {
		t.Errorf("drop-down probed at y=%v, want anchor bottom %v", downProbe.Y, anchor.Bottom())
	}
	if upProbe.Y != anchor.Y {
		t.Errorf("pull-up probed at y=%v, want anchor top %v", upProbe.Y, anchor.Y)
	}
}

func TestDisplayOracle(t *testing.T) {
	oracle := fluent.DisplayOracle{DisplaySize: fluent.Vec2{X: 800, Y: 600}}

	if got := oracle.HeightForAnimation(fluent.Vec2{Y: 400}, fluent.AnimationDropDown); got != 200 {
		t.Errorf("drop-down space = %v, want 200", got)
	}
	if got := oracle.HeightForAnimation(fluent.Vec2{Y: 400}, fluent.AnimationPullUp); got != 400 {
		t.Errorf("pull-up space = %v, want 400", got)
	}

	// Off-screen anchors never report negative space.
	if got := oracle.HeightForAnimation(fluent.Vec2{Y: 700}, fluent.AnimationDropDown); got != 0 {
		t.Errorf("below-display drop-down space = %v, want 0", got)
	}
	if got := oracle.HeightForAnimation(fluent.Vec2{Y: -10}, fluent.AnimationPullUp); got != 0 {
		t.Errorf("above-display pull-up space = %v, want 0", got)
	}
}

func TestAnimationTypeString(t *testing.T) {
	cases := map[fluent.AnimationType]string{
		fluent.AnimationNone:     "none",
		fluent.AnimationDropDown: "drop-down",
		fluent.AnimationPullUp:   "pull-up",
	}
	for ani, want := range cases {
		if got := ani.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ani, got, want)
		}
	}
}
