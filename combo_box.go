package fluent

// Combo box metrics.
const (
	comboPaddingX  float32 = 12
	comboArrowSize float32 = 12
	comboArrowPadR float32 = 10
	comboClearSize float32 = 12
	comboClearPad  float32 = 4
)

// modelSource adapts a SelectionModel to the menu's row interface.
type modelSource struct {
	model *SelectionModel
}

func (s modelSource) Count() int           { return s.model.Count() }
func (s modelSource) Label(i int) string   { return s.model.ItemText(i) }
func (s modelSource) RowIcon(i int) *Icon  { return s.model.ItemIcon(i) }
func (s modelSource) IsCurrent(i int) bool { return i == s.model.CurrentIndex() }

// ComboBox is a closed drop-down selector: a header showing the current
// item and an arrow, popping a DropDownMenu over its items.
type ComboBox struct {
	WidgetBase

	model       *SelectionModel
	text        string
	placeholder string
	arrow       TranslateYAnimation

	surface  *Surface
	dropMenu *DropDownMenu

	// menuDelegate is the widget itself; the editable variant installs
	// its own override here.
	menuDelegate MenuDelegate

	// menuRequested defers the menu open to the paint pass, which has
	// the text metrics the placement needs.
	menuRequested bool
	// closedUnderCursor suppresses the reopen when the click that
	// dismissed the menu also lands on the header.
	closedUnderCursor bool

	// OnCurrentTextChanged fires with the new displayed text whenever
	// the selection's text changes. Fires before OnCurrentIndexChanged.
	OnCurrentTextChanged func(text string)

	// OnCurrentIndexChanged fires with the new current index.
	OnCurrentIndexChanged func(index int)
}

// NewComboBox creates an empty combo box.
func NewComboBox() *ComboBox {
	c := &ComboBox{WidgetBase: NewWidgetBase()}
	c.model = NewSelectionModel(func(text string) { c.text = text })
	c.menuDelegate = c
	c.wireModel()
	return c
}

func (c *ComboBox) wireModel() {
	c.model.OnCurrentTextChanged = func(text string) {
		if c.OnCurrentTextChanged != nil {
			c.OnCurrentTextChanged(text)
		}
	}
	c.model.OnCurrentIndexChanged = func(index int) {
		if c.OnCurrentIndexChanged != nil {
			c.OnCurrentIndexChanged(index)
		}
	}
}

// Model exposes the full selection API for operations without a
// passthrough on the widget.
func (c *ComboBox) Model() *SelectionModel {
	return c.model
}

// attach is called by the surface when the widget is added.
func (c *ComboBox) attach(s *Surface) {
	c.surface = s
}

// AddItem appends an entry with optional icon and user data.
func (c *ComboBox) AddItem(text string, icon *Icon, userData any) {
	c.model.AddItem(text, icon, userData)
}

// AddItems appends plain text entries.
func (c *ComboBox) AddItems(texts ...string) {
	c.model.AddItems(texts...)
}

// InsertItem inserts an entry at index.
func (c *ComboBox) InsertItem(index int, text string, icon *Icon, userData any) {
	c.model.InsertItem(index, text, icon, userData)
}

// RemoveItem removes the entry at index.
func (c *ComboBox) RemoveItem(index int) {
	c.model.RemoveItem(index)
}

// SetCurrentIndex selects an entry without firing notifications.
func (c *ComboBox) SetCurrentIndex(index int) {
	c.model.SetCurrentIndex(index)
}

// CurrentIndex returns the selected index, -1 for none.
func (c *ComboBox) CurrentIndex() int {
	return c.model.CurrentIndex()
}

// CurrentText returns the selected entry's text, "" for none.
func (c *ComboBox) CurrentText() string {
	return c.model.CurrentText()
}

// SetCurrentText selects the first entry with the given text.
func (c *ComboBox) SetCurrentText(text string) {
	c.model.SetCurrentText(text)
}

// Count returns the number of entries.
func (c *ComboBox) Count() int {
	return c.model.Count()
}

// Clear removes all entries.
func (c *ComboBox) Clear() {
	c.model.Clear()
}

// SetMaxVisibleItems caps the rows shown before the menu scrolls.
func (c *ComboBox) SetMaxVisibleItems(n int) {
	c.model.SetMaxVisibleItems(n)
}

// SetPlaceholderText sets the hint shown while nothing is selected.
func (c *ComboBox) SetPlaceholderText(text string) {
	c.placeholder = text
}

// IsMenuOpen reports whether the drop menu is showing.
func (c *ComboBox) IsMenuOpen() bool {
	return c.dropMenu != nil && c.dropMenu.IsOpen()
}

// HandleMouse toggles the drop menu on a completed click and drives the
// arrow nudge animation.
func (c *ComboBox) HandleMouse(in *InputState) {
	if !c.Enabled() || in == nil {
		return
	}

	wasPressed := c.Pressed()
	clicked := c.trackMouse(in)
	if !wasPressed && c.Pressed() {
		c.arrow.Press()
	}
	if wasPressed && !c.Pressed() {
		c.arrow.Release()
	}

	if clicked {
		c.toggleMenu()
	}
}

func (c *ComboBox) toggleMenu() {
	if c.closedUnderCursor {
		// The click that closed the menu is the same click we just
		// completed; swallow it instead of reopening.
		c.closedUnderCursor = false
		return
	}
	if c.IsMenuOpen() {
		c.dropMenu.Close()
		return
	}
	if c.model.Count() > 0 {
		c.menuRequested = true
	}
}

// OnItemClicked implements MenuDelegate; a menu row was activated.
func (c *ComboBox) OnItemClicked(index int) {
	c.model.SelectItem(index)
}

// OnClosed implements MenuDelegate.
func (c *ComboBox) OnClosed() {
	if c.Hovered() {
		c.closedUnderCursor = true
	}
	c.dropMenu = nil
}

// openMenu builds a fresh menu over the model and shows it. Runs in the
// paint pass because placement needs text measurement.
func (c *ComboBox) openMenu(pc *PaintContext) {
	menu := NewDropDownMenu(modelSource{c.model}, c.menuDelegate)
	menu.SetMinWidth(c.Rect().W)
	menu.SetMaxVisibleItems(c.model.MaxVisibleItems())

	var oracle SizingOracle = DisplayOracle{DisplaySize: pc.DisplaySize}
	if c.surface != nil {
		oracle = c.surface.Oracle()
	}
	menu.Exec(pc, c.Rect(), oracle, true)

	c.dropMenu = menu
	if c.surface != nil {
		c.surface.OpenPopup(menu)
	}
}

// Paint draws the header. The open menu paints itself through the
// surface's popup pass.
func (c *ComboBox) Paint(pc *PaintContext) {
	if c.menuRequested {
		c.menuRequested = false
		if !c.IsMenuOpen() {
			c.openMenu(pc)
		}
	}

	c.arrow.Update(pc.DeltaTime)

	dl := pc.DrawList
	theme := pc.Theme
	r := c.Rect()

	dl.AddRect(r.X, r.Y, r.W, r.H, theme.ButtonBackground)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, theme.ButtonBorder, 1)

	fade := float32(1)
	switch {
	case c.Pressed():
		fade = pressedOpacity
	case c.Hovered():
		fade = hoverOpacity
	}

	label := c.text
	textColor := theme.ButtonText
	if label == "" && c.model.CurrentIndex() < 0 && c.placeholder != "" {
		label = c.placeholder
		textColor = theme.PlaceholderText
	}
	if !c.Enabled() {
		textColor = theme.TextDisabled
	} else {
		textColor = ScaleAlpha(textColor, fade)
	}

	textY := r.Y + (r.H-pc.LineHeight())/2
	dl.PushClipRect(r.X, r.Y, r.Right()-comboArrowSize-comboArrowPadR, r.Bottom())
	pc.AddTextTo(dl, r.X+comboPaddingX, textY, label, textColor)
	dl.PopClipRect()

	c.paintArrow(pc, dl, r, fade)
}

func (c *ComboBox) paintArrow(pc *PaintContext, dl *DrawList, r Rect, fade float32) {
	tint := pc.Theme.ArrowFill
	if !c.Enabled() {
		tint = pc.Theme.TextDisabled
	} else {
		tint = ScaleAlpha(tint, fade)
	}

	arrowRect := Rect{
		X: r.Right() - comboArrowSize - comboArrowPadR,
		Y: r.Y + (r.H-comboArrowSize)/2 + c.arrow.Y(),
		W: comboArrowSize,
		H: comboArrowSize,
	}
	if !pc.DrawIcon(dl, IconArrowDown, arrowRect, tint) {
		// Primitive fallback when no texture factory is wired.
		midX := arrowRect.X + arrowRect.W/2
		dl.AddTriangle(
			arrowRect.X+2, arrowRect.Y+arrowRect.H*0.35,
			arrowRect.Right()-2, arrowRect.Y+arrowRect.H*0.35,
			midX, arrowRect.Bottom()-arrowRect.H*0.25,
			tint,
		)
	}
}

// EditableComboBox is a combo box whose header is a text field: the user
// can type free text or pick an entry, and Enter commits typed text,
// appending it as a new entry when it matches nothing.
type EditableComboBox struct {
	ComboBox

	lineEdit *LineEdit
}

// NewEditableComboBox creates an empty editable combo box.
func NewEditableComboBox() *EditableComboBox {
	e := &EditableComboBox{}
	e.WidgetBase = NewWidgetBase()
	e.lineEdit = NewLineEdit()
	e.model = NewSelectionModel(e.lineEdit.SetText)
	e.menuDelegate = e
	e.wireModel()

	e.lineEdit.OnTextEdited = e.onTextEdited
	e.lineEdit.OnReturnPressed = e.onReturnPressed
	return e
}

// LineEdit exposes the embedded text field.
func (e *EditableComboBox) LineEdit() *LineEdit {
	return e.lineEdit
}

// SetPlaceholderText sets the hint shown while the field is empty.
func (e *EditableComboBox) SetPlaceholderText(text string) {
	e.lineEdit.SetPlaceholder(text)
}

// CurrentText returns the text in the field, which may not correspond
// to any entry.
func (e *EditableComboBox) CurrentText() string {
	return e.lineEdit.Text()
}

// ClearText empties the field and deselects without notifications.
// The clear button goes through here too, so clearing never differs
// between the programmatic and interactive paths.
func (e *EditableComboBox) ClearText() {
	e.lineEdit.Clear()
	e.model.currentIndex = -1
}

// onTextEdited tracks typed text: the selection drops to -1 and the
// text notification fires; when the text matches an entry exactly, the
// selection snaps to it and the index notification fires too.
func (e *EditableComboBox) onTextEdited(text string) {
	e.model.currentIndex = -1
	e.model.emitText(text)
	if i := e.model.FindText(text); i >= 0 {
		e.model.currentIndex = i
		e.model.emitIndex(i)
	}
}

// onReturnPressed commits the typed text. A match selects it; no match
// appends the text as a new entry and selects that.
func (e *EditableComboBox) onReturnPressed() {
	text := e.lineEdit.Text()
	if text == "" {
		return
	}
	index := e.model.FindText(text)
	switch {
	case index >= 0 && index != e.model.CurrentIndex():
		e.model.currentIndex = index
		e.model.emitIndex(index)
	case index == -1:
		e.model.AddItem(text, nil, nil)
		e.model.SetCurrentIndex(e.model.Count() - 1)
	}
}

// arrowRegion is the right-hand strip that toggles the menu; the rest
// of the header belongs to the text field.
func (e *EditableComboBox) arrowRegion() Rect {
	r := e.Rect()
	w := comboArrowSize + comboArrowPadR*2
	return Rect{X: r.Right() - w, Y: r.Y, W: w, H: r.H}
}

// clearRegion is the clear button slot just left of the arrow strip.
func (e *EditableComboBox) clearRegion() Rect {
	a := e.arrowRegion()
	w := comboClearSize + comboClearPad*2
	return Rect{X: a.X - w, Y: a.Y, W: w, H: a.H}
}

// showsClearButton reports whether the clear button is visible: only
// while the field is focused and holds text.
func (e *EditableComboBox) showsClearButton() bool {
	return e.lineEdit.Focused() && e.lineEdit.Text() != ""
}

// fieldRect is the header minus the arrow strip and, when visible, the
// clear button slot.
func (e *EditableComboBox) fieldRect() Rect {
	r := e.Rect()
	r.W -= e.arrowRegion().W
	if e.showsClearButton() {
		r.W -= e.clearRegion().W
	}
	return r
}

// HandleMouse routes clicks on the arrow strip to the menu toggle and
// everything else to the text field.
func (e *EditableComboBox) HandleMouse(in *InputState) {
	if !e.Enabled() || in == nil {
		return
	}

	wasPressed := e.Pressed()
	clicked := e.trackMouse(in)
	if !wasPressed && e.Pressed() {
		e.arrow.Press()
	}
	if wasPressed && !e.Pressed() {
		e.arrow.Release()
	}

	mouse := in.MousePos()
	inStrips := e.arrowRegion().Contains(mouse) ||
		(e.showsClearButton() && e.clearRegion().Contains(mouse))

	if clicked && e.arrowRegion().Contains(mouse) {
		e.toggleMenu()
	}
	if clicked && e.showsClearButton() && e.clearRegion().Contains(mouse) {
		// The clear button resets like a programmatic clear, without
		// notifications; the field keeps focus.
		e.ClearText()
		return
	}

	// Presses on the arrow or clear strip must not reach the field,
	// which treats any outside click as a blur.
	if in.MouseClicked(MouseButtonLeft) && inStrips {
		return
	}

	// The text field owns the part of the header left of the arrow.
	e.lineEdit.SetRect(e.fieldRect())
	e.lineEdit.HandleMouse(in)
}

// HandleKeyboard forwards typing to the text field.
func (e *EditableComboBox) HandleKeyboard(in *InputState) {
	if !e.Enabled() {
		return
	}
	e.lineEdit.HandleKeyboard(in)
}

// OnClosed implements MenuDelegate. Unlike the closed combo box, the
// editable one always releases the menu so the next arrow click reopens
// it even when the cursor never left the header.
func (e *EditableComboBox) OnClosed() {
	e.dropMenu = nil
}

// Paint draws the text field plus the arrow strip.
func (e *EditableComboBox) Paint(pc *PaintContext) {
	if e.menuRequested {
		e.menuRequested = false
		if !e.IsMenuOpen() {
			e.openMenu(pc)
		}
	}

	e.arrow.Update(pc.DeltaTime)

	r := e.Rect()
	e.lineEdit.SetRect(e.fieldRect())
	e.lineEdit.Paint(pc)

	// The strips right of the field continue its background.
	dl := pc.DrawList
	strip := e.arrowRegion()
	if e.showsClearButton() {
		strip.X = e.clearRegion().X
		strip.W = r.Right() - strip.X
	}
	dl.AddRect(strip.X, strip.Y, strip.W, strip.H, pc.Theme.InputBackground)
	dl.AddRectOutline(strip.X, strip.Y, strip.W, strip.H, pc.Theme.InputBorder, 1)

	fade := float32(1)
	switch {
	case e.Pressed():
		fade = pressedOpacity
	case e.Hovered():
		fade = hoverOpacity
	}
	if e.showsClearButton() {
		e.paintClear(pc, dl, fade)
	}
	e.paintArrow(pc, dl, r, fade)
}

func (e *EditableComboBox) paintClear(pc *PaintContext, dl *DrawList, fade float32) {
	c := e.clearRegion()
	glyph := Rect{
		X: c.X + (c.W-comboClearSize)/2,
		Y: c.Y + (c.H-comboClearSize)/2,
		W: comboClearSize,
		H: comboClearSize,
	}
	tint := ScaleAlpha(pc.Theme.ArrowFill, fade)
	if !pc.DrawIcon(dl, IconClose, glyph, tint) {
		dl.AddLine(glyph.X+2, glyph.Y+2, glyph.Right()-2, glyph.Bottom()-2, tint, 1.5)
		dl.AddLine(glyph.Right()-2, glyph.Y+2, glyph.X+2, glyph.Bottom()-2, tint, 1.5)
	}
}
