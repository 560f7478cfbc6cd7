package fluent_test

import (
	"testing"

	"github.com/fluent-go/fluent"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	resizes     int
}

func (m *mockRenderer) Render(dl *fluent.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {
	m.resizes++
}

// probeWidget records what the surface feeds it.
type probeWidget struct {
	fluent.WidgetBase
	painted   int
	sawDark   bool
	mouseSeen int
}

func (p *probeWidget) Paint(pc *fluent.PaintContext) {
	p.painted++
	p.sawDark = pc.Theme.Dark
}

func (p *probeWidget) HandleMouse(in *fluent.InputState) {
	p.mouseSeen++
}

// stubPopup is a minimal popup for lifecycle tests.
type stubPopup struct {
	open    bool
	painted int
}

func (s *stubPopup) Paint(pc *fluent.PaintContext) {
	s.painted++
	pc.ForegroundDrawList.AddRect(0, 0, 10, 10, fluent.ColorWhite)
}
func (s *stubPopup) HandleMouse(in *fluent.InputState) {}
func (s *stubPopup) IsOpen() bool                      { return s.open }
func (s *stubPopup) Close()                            { s.open = false }

func TestSurfaceFrameDrivesWidgets(t *testing.T) {
	renderer := &mockRenderer{}
	surface := fluent.NewSurface(renderer)

	w := &probeWidget{WidgetBase: fluent.NewWidgetBase()}
	surface.Add(w)

	if err := surface.Frame(fluent.Vec2{X: 800, Y: 600}, 0.016); err != nil {
		t.Fatalf("Frame: %v", err)
	}

	if w.painted != 1 {
		t.Errorf("painted = %d, want 1", w.painted)
	}
	if w.mouseSeen != 1 {
		t.Errorf("mouse dispatches = %d, want 1", w.mouseSeen)
	}
	// Empty foreground layer renders the main list only.
	if renderer.renderCalls != 1 {
		t.Errorf("render calls = %d, want 1", renderer.renderCalls)
	}
}

func TestSurfaceThemeProviderResolvedPerFrame(t *testing.T) {
	renderer := &mockRenderer{}
	manager := fluent.NewThemeManager(false)
	surface := fluent.NewSurface(renderer, fluent.WithThemeProvider(manager))

	w := &probeWidget{WidgetBase: fluent.NewWidgetBase()}
	surface.Add(w)

	surface.Frame(fluent.Vec2{X: 800, Y: 600}, 0.016)
	if w.sawDark {
		t.Error("widget saw dark theme while manager is light")
	}

	manager.SetDark(true)
	surface.Frame(fluent.Vec2{X: 800, Y: 600}, 0.016)
	if !w.sawDark {
		t.Error("widget did not see the dark theme after switch")
	}
}

func TestSurfacePopupRendersOnTop(t *testing.T) {
	renderer := &mockRenderer{}
	surface := fluent.NewSurface(renderer)

	popup := &stubPopup{open: true}
	surface.OpenPopup(popup)

	surface.Frame(fluent.Vec2{X: 800, Y: 600}, 0.016)

	if popup.painted != 1 {
		t.Errorf("popup painted %d times, want 1", popup.painted)
	}
	// Foreground content forces a second render pass.
	if renderer.renderCalls != 2 {
		t.Errorf("render calls = %d, want 2", renderer.renderCalls)
	}
}

func TestSurfaceOpeningSecondPopupClosesFirst(t *testing.T) {
	surface := fluent.NewSurface(&mockRenderer{})

	first := &stubPopup{open: true}
	second := &stubPopup{open: true}
	surface.OpenPopup(first)
	surface.OpenPopup(second)

	if first.open {
		t.Error("first popup should close when the second opens")
	}
	if surface.ActivePopup() != second {
		t.Error("second popup should be active")
	}
}

func TestSurfaceReleasesClosedPopup(t *testing.T) {
	surface := fluent.NewSurface(&mockRenderer{})

	popup := &stubPopup{open: true}
	surface.OpenPopup(popup)
	popup.Close()

	surface.Frame(fluent.Vec2{X: 800, Y: 600}, 0.016)

	if surface.ActivePopup() != nil {
		t.Error("closed popup should be released after the frame")
	}
}

func TestSurfaceDefaultOracleTracksDisplay(t *testing.T) {
	surface := fluent.NewSurface(&mockRenderer{})
	surface.Frame(fluent.Vec2{X: 800, Y: 600}, 0.016)

	oracle := surface.Oracle()
	if got := oracle.HeightForAnimation(fluent.Vec2{Y: 100}, fluent.AnimationDropDown); got != 500 {
		t.Errorf("drop-down space = %v, want 500", got)
	}
}

func TestSurfaceCustomOracle(t *testing.T) {
	custom := fluent.OracleFunc(func(p fluent.Vec2, ani fluent.AnimationType) float32 {
		return 42
	})
	surface := fluent.NewSurface(&mockRenderer{}, fluent.WithSizingOracle(custom))

	if got := surface.Oracle().HeightForAnimation(fluent.Vec2{}, fluent.AnimationDropDown); got != 42 {
		t.Errorf("oracle height = %v, want 42", got)
	}
}

func TestSurfaceResetsPerFrameInput(t *testing.T) {
	surface := fluent.NewSurface(&mockRenderer{})

	surface.Input().SetMouseWheel(0, 5)
	surface.Frame(fluent.Vec2{X: 800, Y: 600}, 0.016)

	if surface.Input().MouseWheelY != 0 {
		t.Errorf("wheel delta = %v after frame, want 0", surface.Input().MouseWheelY)
	}
}

func TestSurfaceComboBoxEndToEnd(t *testing.T) {
	surface := fluent.NewSurface(&mockRenderer{})

	combo := fluent.NewComboBox()
	combo.AddItems("A", "B", "C")
	combo.SetRect(fluent.Rect{X: 10, Y: 10, W: 150, H: 33})
	surface.Add(combo)

	display := fluent.Vec2{X: 800, Y: 600}

	// Press inside the header, then release: the menu opens during the
	// release frame's paint pass.
	surface.Input().SetMousePos(50, 20)
	surface.Input().SetMouseButton(fluent.MouseButtonLeft, true)
	surface.Frame(display, 0.016)

	surface.Input().SetMouseButton(fluent.MouseButtonLeft, false)
	surface.Frame(display, 0.016)

	if !combo.IsMenuOpen() {
		t.Fatal("menu should be open")
	}
	if surface.ActivePopup() == nil {
		t.Fatal("surface should track the open menu as its popup")
	}

	// A click far outside dismisses it.
	surface.Input().SetMousePos(700, 500)
	surface.Input().SetMouseButton(fluent.MouseButtonLeft, true)
	surface.Frame(display, 0.016)
	surface.Input().SetMouseButton(fluent.MouseButtonLeft, false)
	surface.Frame(display, 0.016)

	if combo.IsMenuOpen() {
		t.Error("menu should be closed after an outside click")
	}
	if surface.ActivePopup() != nil {
		t.Error("surface should have released the popup")
	}
}
