package fluent_test

import (
	"testing"

	"github.com/fluent-go/fluent"
)

type fakeRows struct {
	labels  []string
	current int
}

func (f *fakeRows) Count() int                 { return len(f.labels) }
func (f *fakeRows) Label(i int) string         { return f.labels[i] }
func (f *fakeRows) RowIcon(i int) *fluent.Icon { return nil }
func (f *fakeRows) IsCurrent(i int) bool       { return i == f.current }

type fakeDelegate struct {
	clicked []int
	closed  int
}

func (d *fakeDelegate) OnItemClicked(index int) { d.clicked = append(d.clicked, index) }
func (d *fakeDelegate) OnClosed()               { d.closed++ }

func newTestPC() *fluent.PaintContext {
	pc := &fluent.PaintContext{
		FontScale:   1,
		CharWidth:   8,
		CharHeight:  16,
		Theme:       fluent.LightTheme(),
		DisplaySize: fluent.Vec2{X: 800, Y: 600},
	}
	pc.DrawList = fluent.AcquireDrawList()
	pc.ForegroundDrawList = fluent.AcquireDrawList()
	return pc
}

func releaseTestPC(pc *fluent.PaintContext) {
	fluent.ReleaseDrawList(pc.DrawList)
	fluent.ReleaseDrawList(pc.ForegroundDrawList)
}

func openTestMenu(t *testing.T, labels []string) (*fluent.DropDownMenu, *fakeDelegate, *fluent.PaintContext) {
	t.Helper()
	rows := &fakeRows{labels: labels}
	delegate := &fakeDelegate{}
	menu := fluent.NewDropDownMenu(rows, delegate)
	menu.SetMinWidth(150)

	pc := newTestPC()
	t.Cleanup(func() { releaseTestPC(pc) })

	anchor := fluent.Rect{X: 0, Y: 0, W: 150, H: 33}
	oracle := fluent.DisplayOracle{DisplaySize: pc.DisplaySize}
	menu.Exec(pc, anchor, oracle, false)
	return menu, delegate, pc
}

func TestMenuExecOpens(t *testing.T) {
	menu, _, _ := openTestMenu(t, []string{"A", "B", "C"})

	if !menu.IsOpen() {
		t.Fatal("menu should be open after Exec")
	}
	if menu.Animation() != fluent.AnimationDropDown {
		t.Errorf("Animation = %v, want drop-down", menu.Animation())
	}

	r := menu.Rect()
	if r.W < 150 {
		t.Errorf("menu width %v narrower than min width 150", r.W)
	}
	wantH := 3*fluent.DefaultItemHeight + 8 // view margins: 2 top, 6 bottom
	if r.H != wantH {
		t.Errorf("menu height = %v, want %v", r.H, wantH)
	}
	if r.Y != 33 {
		t.Errorf("menu top = %v, want anchor bottom 33", r.Y)
	}
}

func TestMenuMaxVisibleClampsHeight(t *testing.T) {
	rows := &fakeRows{labels: []string{"A", "B", "C", "D", "E", "F"}}
	menu := fluent.NewDropDownMenu(rows, &fakeDelegate{})
	menu.SetMaxVisibleItems(3)

	pc := newTestPC()
	defer releaseTestPC(pc)

	anchor := fluent.Rect{X: 0, Y: 0, W: 100, H: 33}
	menu.Exec(pc, anchor, fluent.DisplayOracle{DisplaySize: pc.DisplaySize}, false)

	wantH := 3*fluent.DefaultItemHeight + 8
	if menu.Rect().H != wantH {
		t.Errorf("menu height = %v, want %v", menu.Rect().H, wantH)
	}
}

func TestMenuCloseFiresOnClosedOnce(t *testing.T) {
	menu, delegate, _ := openTestMenu(t, []string{"A"})

	menu.Close()
	menu.Close()

	if menu.IsOpen() {
		t.Error("menu still open after Close")
	}
	if delegate.closed != 1 {
		t.Errorf("OnClosed fired %d times, want 1", delegate.closed)
	}
}

func TestMenuClickRowActivates(t *testing.T) {
	menu, delegate, _ := openTestMenu(t, []string{"A", "B", "C"})

	// Row 1 sits one item height below the view top.
	r := menu.Rect()
	x := r.X + 10
	y := r.Y + 2 + fluent.DefaultItemHeight + 5

	in := fluent.NewInputState()
	in.SetMousePos(x, y)
	in.SetMouseButton(fluent.MouseButtonLeft, true)
	menu.HandleMouse(in)

	in.Reset()
	in.SetMouseButton(fluent.MouseButtonLeft, false)
	menu.HandleMouse(in)

	if len(delegate.clicked) != 1 || delegate.clicked[0] != 1 {
		t.Fatalf("clicked = %v, want [1]", delegate.clicked)
	}
	if menu.IsOpen() {
		t.Error("menu should close after activation")
	}
	if delegate.closed != 1 {
		t.Errorf("OnClosed fired %d times, want 1", delegate.closed)
	}
}

func TestMenuClickOutsideCloses(t *testing.T) {
	menu, delegate, _ := openTestMenu(t, []string{"A", "B"})

	in := fluent.NewInputState()
	in.SetMousePos(500, 500)
	in.SetMouseButton(fluent.MouseButtonLeft, true)
	menu.HandleMouse(in)

	if menu.IsOpen() {
		t.Error("menu should close on outside click")
	}
	if len(delegate.clicked) != 0 {
		t.Errorf("clicked = %v, want none", delegate.clicked)
	}
	if delegate.closed != 1 {
		t.Errorf("OnClosed fired %d times, want 1", delegate.closed)
	}
}

func TestMenuKeyboardNavigation(t *testing.T) {
	menu, delegate, _ := openTestMenu(t, []string{"A", "B", "C"})

	in := fluent.NewInputState()

	press := func(key fluent.Key) {
		in.Reset()
		in.SetKey(key, true)
		menu.HandleKeyboard(in)
		in.SetKey(key, false)
	}

	press(fluent.KeyDown)
	press(fluent.KeyDown)
	press(fluent.KeyEnter)

	// The fake source marks row 0 current, so navigation starts there
	// and two downs land on row 2.
	if len(delegate.clicked) != 1 || delegate.clicked[0] != 2 {
		t.Fatalf("clicked = %v, want [2]", delegate.clicked)
	}
	if menu.IsOpen() {
		t.Error("menu should close after Enter")
	}
}

func TestMenuKeyboardStopsAtEnds(t *testing.T) {
	menu, delegate, _ := openTestMenu(t, []string{"A", "B"})

	in := fluent.NewInputState()
	press := func(key fluent.Key) {
		in.Reset()
		in.SetKey(key, true)
		menu.HandleKeyboard(in)
		in.SetKey(key, false)
	}

	press(fluent.KeyUp) // already at row 0
	press(fluent.KeyDown)
	press(fluent.KeyDown) // already at last row
	press(fluent.KeyEnter)

	if len(delegate.clicked) != 1 || delegate.clicked[0] != 1 {
		t.Fatalf("clicked = %v, want [1]", delegate.clicked)
	}
}

func TestMenuEscapeCloses(t *testing.T) {
	menu, delegate, _ := openTestMenu(t, []string{"A"})

	in := fluent.NewInputState()
	in.SetKey(fluent.KeyEscape, true)
	menu.HandleKeyboard(in)

	if menu.IsOpen() {
		t.Error("menu should close on Escape")
	}
	if delegate.closed != 1 {
		t.Errorf("OnClosed fired %d times, want 1", delegate.closed)
	}
}

func TestMenuPullUpPositionsAboveAnchor(t *testing.T) {
	rows := &fakeRows{labels: []string{"A", "B"}}
	menu := fluent.NewDropDownMenu(rows, &fakeDelegate{})

	pc := newTestPC()
	defer releaseTestPC(pc)

	// Anchor near the display bottom leaves more room above.
	anchor := fluent.Rect{X: 0, Y: 560, W: 100, H: 33}
	menu.Exec(pc, anchor, fluent.DisplayOracle{DisplaySize: pc.DisplaySize}, false)

	if menu.Animation() != fluent.AnimationPullUp {
		t.Fatalf("Animation = %v, want pull-up", menu.Animation())
	}
	if got := menu.Rect().Bottom(); got != anchor.Y {
		t.Errorf("menu bottom = %v, want anchor top %v", got, anchor.Y)
	}
}

func TestMenuPaintProducesGeometry(t *testing.T) {
	menu, _, pc := openTestMenu(t, []string{"A", "B", "C"})

	menu.Paint(pc)

	if len(pc.ForegroundDrawList.VtxBuffer) == 0 {
		t.Error("menu painted no vertices to the foreground list")
	}
	if len(pc.DrawList.VtxBuffer) != 0 {
		t.Error("menu painted to the main list instead of the foreground")
	}
}
