package fluent

// MenuDataSource provides rows for a drop-down menu. The menu doesn't
// know what the rows represent - just how to display them.
type MenuDataSource interface {
	// Count returns the number of rows.
	Count() int

	// Label returns the display text for a row.
	Label(index int) string

	// RowIcon returns the icon for a row, nil for none.
	RowIcon(index int) *Icon

	// IsCurrent returns true if the row is the current selection and
	// should carry the indicator bar.
	IsCurrent(index int) bool
}

// MenuDelegate receives callbacks from menu interactions.
type MenuDelegate interface {
	// OnItemClicked is called when the user activates a row, before the
	// menu closes.
	OnItemClicked(index int)

	// OnClosed is called exactly once when the menu closes, whatever
	// the reason (activation, click outside, Escape, Close).
	OnClosed()
}

// Menu geometry defaults, after the Fluent drop-down metrics.
const (
	DefaultItemHeight  float32 = 33
	menuViewMarginTop  float32 = 2
	menuViewMarginBot  float32 = 6
	menuItemPaddingX   float32 = 12
	menuIconSize       float32 = 16
	menuIconSpacing    float32 = 8
	menuIndicatorWidth float32 = 3
	menuSlideDuration  float32 = 0.25
)

// DropDownMenu is a popup listing the rows of a data source. A fresh
// menu is created for every open and released when dismissed; nothing
// is cached across opens.
type DropDownMenu struct {
	WidgetBase

	dataSource MenuDataSource
	delegate   MenuDelegate

	itemHeight float32
	maxVisible int // -1 = unlimited
	minWidth   float32
	leftInset  float32 // left content inset, used for anchor alignment

	open      bool
	closed    bool // guards OnClosed from double firing
	animation AnimationType
	slide     Animation

	viewHeight    float32 // achievable height from placement
	contentHeight float32

	scrollY    float32
	hoverIndex int
	keyIndex   int
	pressIndex int
}

// NewDropDownMenu creates a menu for the given data source and delegate.
func NewDropDownMenu(ds MenuDataSource, delegate MenuDelegate) *DropDownMenu {
	return &DropDownMenu{
		WidgetBase: NewWidgetBase(),
		dataSource: ds,
		delegate:   delegate,
		itemHeight: DefaultItemHeight,
		maxVisible: -1,
		leftInset:  4,
		hoverIndex: -1,
		keyIndex:   -1,
		pressIndex: -1,
	}
}

// SetItemHeight overrides the row height.
func (m *DropDownMenu) SetItemHeight(h float32) {
	if h > 0 {
		m.itemHeight = h
	}
}

// SetMaxVisibleItems limits visible rows; excess rows scroll. -1 lifts
// the limit.
func (m *DropDownMenu) SetMaxVisibleItems(n int) {
	m.maxVisible = n
}

// SetMinWidth widens the menu to at least w (the combo box passes its
// own width so the menu never ends up narrower than its header).
func (m *DropDownMenu) SetMinWidth(w float32) {
	m.minWidth = w
}

// LeftInset returns the left content inset used for anchor alignment.
func (m *DropDownMenu) LeftInset() float32 {
	return m.leftInset
}

// IsOpen reports whether the menu is showing.
func (m *DropDownMenu) IsOpen() bool {
	return m.open
}

// Animation returns the direction the menu opened in.
func (m *DropDownMenu) Animation() AnimationType {
	return m.animation
}

// measureSize computes the natural popup size from the data source.
func (m *DropDownMenu) measureSize(pc *PaintContext) Vec2 {
	count := m.dataSource.Count()

	width := m.minWidth
	hasIcons := false
	for i := 0; i < count; i++ {
		w := pc.MeasureText(m.dataSource.Label(i)).X + menuItemPaddingX*2
		if w > width {
			width = w
		}
		if m.dataSource.RowIcon(i) != nil {
			hasIcons = true
		}
	}
	if hasIcons {
		width += menuIconSize + menuIconSpacing
	}

	rows := count
	if m.maxVisible >= 0 && rows > m.maxVisible {
		rows = m.maxVisible
	}

	m.contentHeight = float32(count) * m.itemHeight
	height := float32(rows)*m.itemHeight + menuViewMarginTop + menuViewMarginBot
	return Vec2{X: width, Y: height}
}

// Exec opens the menu anchored to the given rectangle, choosing
// drop-down or pull-up from the oracle and starting the slide animation
// when animated is true. Returns the chosen placement.
func (m *DropDownMenu) Exec(pc *PaintContext, anchor Rect, oracle SizingOracle, animated bool) Placement {
	size := m.measureSize(pc)
	placement := ChoosePlacement(anchor, size, m.leftInset, oracle)

	m.viewHeight = placement.Height
	m.SetRect(Rect{
		X: placement.Position.X,
		Y: placement.Position.Y,
		W: size.X,
		H: placement.Height,
	})
	m.animation = placement.Animation
	m.open = true
	m.closed = false
	m.keyIndex = m.currentRow()
	m.scrollY = 0
	m.ensureRowVisible(m.keyIndex)

	if animated {
		m.slide.Easing = EaseOutCubic
		m.slide.Start(0, 1, menuSlideDuration)
	} else {
		m.slide.Start(1, 1, 0)
	}

	uiLogger.Debug("menu opened",
		"direction", placement.Animation.String(),
		"height", placement.Height,
		"rows", m.dataSource.Count())
	return placement
}

// Close dismisses the menu. Safe to call more than once; OnClosed fires
// only the first time.
func (m *DropDownMenu) Close() {
	if !m.open {
		return
	}
	m.open = false
	if !m.closed {
		m.closed = true
		if m.delegate != nil {
			m.delegate.OnClosed()
		}
	}
}

func (m *DropDownMenu) currentRow() int {
	for i := 0; i < m.dataSource.Count(); i++ {
		if m.dataSource.IsCurrent(i) {
			return i
		}
	}
	return -1
}

// viewRect is the scrollable row area inside the content margins.
func (m *DropDownMenu) viewRect() Rect {
	r := m.Rect()
	return Rect{
		X: r.X,
		Y: r.Y + menuViewMarginTop,
		W: r.W,
		H: r.H - menuViewMarginTop - menuViewMarginBot,
	}
}

func (m *DropDownMenu) maxScroll() float32 {
	return maxf(0, m.contentHeight-m.viewRect().H)
}

// ensureRowVisible scrolls just enough to bring a row into view.
func (m *DropDownMenu) ensureRowVisible(index int) {
	if index < 0 {
		return
	}
	view := m.viewRect()
	rowTop := float32(index) * m.itemHeight
	rowBot := rowTop + m.itemHeight
	if rowTop < m.scrollY {
		m.scrollY = rowTop
	} else if rowBot > m.scrollY+view.H {
		m.scrollY = rowBot - view.H
	}
	m.scrollY = clampf(m.scrollY, 0, m.maxScroll())
}

// rowAt maps a screen point to a row index, -1 when outside the rows.
func (m *DropDownMenu) rowAt(p Vec2) int {
	view := m.viewRect()
	if !view.Contains(p) {
		return -1
	}
	index := int((p.Y - view.Y + m.scrollY) / m.itemHeight)
	if index < 0 || index >= m.dataSource.Count() {
		return -1
	}
	return index
}

// HandleMouse routes this frame's mouse input to the menu. Clicks
// outside dismiss it; clicks on a row activate it.
func (m *DropDownMenu) HandleMouse(in *InputState) {
	if !m.open || in == nil {
		return
	}

	mouse := in.MousePos()
	m.hoverIndex = m.rowAt(mouse)

	if in.MouseWheelY != 0 && m.Rect().Contains(mouse) {
		m.scrollY = clampf(m.scrollY-in.MouseWheelY*20, 0, m.maxScroll())
		m.hoverIndex = m.rowAt(mouse)
	}

	if in.MouseClicked(MouseButtonLeft) {
		if !m.Rect().Contains(mouse) {
			m.Close()
			return
		}
		m.pressIndex = m.hoverIndex
	}

	if in.MouseReleased(MouseButtonLeft) {
		row := m.hoverIndex
		if row >= 0 && row == m.pressIndex {
			m.activate(row)
		}
		m.pressIndex = -1
	}
}

// HandleKeyboard navigates the menu while it is open.
func (m *DropDownMenu) HandleKeyboard(in *InputState) {
	if !m.open || in == nil {
		return
	}

	if in.KeyPressed(KeyEscape) {
		m.Close()
		return
	}

	count := m.dataSource.Count()
	if in.KeyRepeated(KeyUp) && m.keyIndex > 0 {
		m.keyIndex--
		m.ensureRowVisible(m.keyIndex)
	}
	if in.KeyRepeated(KeyDown) && m.keyIndex < count-1 {
		m.keyIndex++
		m.ensureRowVisible(m.keyIndex)
	}
	if in.KeyPressed(KeyHome) && count > 0 {
		m.keyIndex = 0
		m.ensureRowVisible(0)
	}
	if in.KeyPressed(KeyEnd) && count > 0 {
		m.keyIndex = count - 1
		m.ensureRowVisible(m.keyIndex)
	}

	if in.KeyPressed(KeyEnter) || in.KeyPressed(KeySpace) {
		if m.keyIndex >= 0 && m.keyIndex < count {
			m.activate(m.keyIndex)
		}
	}
}

func (m *DropDownMenu) activate(index int) {
	if m.delegate != nil {
		m.delegate.OnItemClicked(index)
	}
	m.Close()
}

// Paint draws the menu to the foreground draw list, clipped to the
// slide animation's revealed portion.
func (m *DropDownMenu) Paint(pc *PaintContext) {
	if !m.open {
		return
	}

	m.slide.Update(pc.DeltaTime)

	dl := pc.ForegroundDrawList
	if dl == nil {
		dl = pc.DrawList
	}
	theme := pc.Theme

	r := m.Rect()
	revealed := r.H * m.slide.Value()

	// Drop-down reveals from the top edge down; pull-up from the bottom
	// edge up. The final geometry is fixed, only the clip window moves.
	clipY := r.Y
	if m.animation == AnimationPullUp {
		clipY = r.Bottom() - revealed
	}
	dl.PushClipRect(r.X, clipY, r.Right(), clipY+revealed)

	dl.AddRect(r.X, r.Y, r.W, r.H, theme.MenuBackground)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, theme.MenuBorder, 1)

	view := m.viewRect()
	dl.PushClipRect(view.X, view.Y, view.Right(), view.Bottom())

	count := m.dataSource.Count()
	y := view.Y - m.scrollY
	for i := 0; i < count; i++ {
		rowTop := y + float32(i)*m.itemHeight
		if rowTop+m.itemHeight < view.Y {
			continue
		}
		if rowTop > view.Bottom() {
			break
		}

		rowRect := Rect{X: view.X, Y: rowTop, W: view.W, H: m.itemHeight}

		switch {
		case i == m.pressIndex:
			dl.AddRect(rowRect.X, rowRect.Y, rowRect.W, rowRect.H, theme.ItemPressed)
		case i == m.hoverIndex || i == m.keyIndex:
			dl.AddRect(rowRect.X, rowRect.Y, rowRect.W, rowRect.H, theme.ItemHover)
		}

		// Accent indicator bar next to the current selection.
		if m.dataSource.IsCurrent(i) {
			barH := m.itemHeight * 0.45
			dl.AddRect(rowRect.X, rowRect.Y+(m.itemHeight-barH)/2, menuIndicatorWidth, barH, theme.Accent)
		}

		textX := rowRect.X + menuItemPaddingX
		if ic := m.dataSource.RowIcon(i); ic != nil {
			iconRect := Rect{
				X: textX,
				Y: rowRect.Y + (m.itemHeight-menuIconSize)/2,
				W: menuIconSize,
				H: menuIconSize,
			}
			pc.DrawIcon(dl, ic, iconRect, theme.ItemText)
			textX += menuIconSize + menuIconSpacing
		}

		label := m.dataSource.Label(i)
		textY := rowRect.Y + (m.itemHeight-pc.LineHeight())/2
		pc.AddTextTo(dl, textX, textY, label, theme.ItemText)
	}

	dl.PopClipRect()
	dl.PopClipRect()
}
