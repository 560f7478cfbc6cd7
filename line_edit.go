package fluent

// LineEdit is a single-line text field. It holds the editing state for
// the editable combo box header: a rune buffer, a cursor and the usual
// movement and deletion keys. No selection or undo.
type LineEdit struct {
	WidgetBase

	runes  []rune
	cursor int

	placeholder string
	focused     bool

	// OnTextEdited fires for every user edit, after the buffer changed.
	// Programmatic SetText does not fire it.
	OnTextEdited func(string)

	// OnReturnPressed fires when Enter is pressed while focused.
	OnReturnPressed func()
}

// NewLineEdit creates an empty line edit.
func NewLineEdit() *LineEdit {
	return &LineEdit{WidgetBase: NewWidgetBase()}
}

// Text returns the current contents.
func (e *LineEdit) Text() string {
	return string(e.runes)
}

// SetText replaces the contents and moves the cursor to the end.
func (e *LineEdit) SetText(text string) {
	e.runes = []rune(text)
	e.cursor = len(e.runes)
}

// Clear empties the field and moves the cursor home.
func (e *LineEdit) Clear() {
	e.runes = e.runes[:0]
	e.cursor = 0
}

// SetPlaceholder sets the hint text shown while the field is empty and
// unfocused.
func (e *LineEdit) SetPlaceholder(text string) {
	e.placeholder = text
}

// Placeholder returns the hint text.
func (e *LineEdit) Placeholder() string {
	return e.placeholder
}

// SetFocused grants or removes keyboard focus.
func (e *LineEdit) SetFocused(focused bool) {
	e.focused = focused
}

// Focused reports whether the field has keyboard focus.
func (e *LineEdit) Focused() bool {
	return e.focused
}

// CursorPos returns the cursor position in runes.
func (e *LineEdit) CursorPos() int {
	return e.cursor
}

// HandleMouse focuses the field when clicked and unfocuses it when a
// click lands elsewhere.
func (e *LineEdit) HandleMouse(in *InputState) {
	if !e.Enabled() || in == nil {
		return
	}
	e.trackMouse(in)
	if in.MouseClicked(MouseButtonLeft) {
		e.focused = e.Rect().Contains(in.MousePos())
	}
}

// HandleKeyboard applies this frame's typed characters and editing keys.
func (e *LineEdit) HandleKeyboard(in *InputState) {
	if !e.focused || !e.Enabled() || in == nil {
		return
	}

	edited := false
	if in.HasInputChars() {
		for _, r := range in.InputChars {
			if r < ' ' {
				continue
			}
			e.insertRune(r)
			edited = true
		}
		in.ConsumeInputChars()
	}

	if in.KeyRepeated(KeyBackspace) && e.cursor > 0 {
		e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
		e.cursor--
		edited = true
	}
	if in.KeyRepeated(KeyDelete) && e.cursor < len(e.runes) {
		e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
		edited = true
	}

	if in.KeyRepeated(KeyLeft) && e.cursor > 0 {
		e.cursor--
	}
	if in.KeyRepeated(KeyRight) && e.cursor < len(e.runes) {
		e.cursor++
	}
	if in.KeyPressed(KeyHome) {
		e.cursor = 0
	}
	if in.KeyPressed(KeyEnd) {
		e.cursor = len(e.runes)
	}

	if edited && e.OnTextEdited != nil {
		e.OnTextEdited(e.Text())
	}

	if in.KeyPressed(KeyEnter) && e.OnReturnPressed != nil {
		e.OnReturnPressed()
	}
}

func (e *LineEdit) insertRune(r rune) {
	e.runes = append(e.runes, 0)
	copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
	e.runes[e.cursor] = r
	e.cursor++
}

// Paint draws the field body, text or placeholder, and the cursor when
// focused. The bottom focus line follows the Fluent text-field look.
func (e *LineEdit) Paint(pc *PaintContext) {
	dl := pc.DrawList
	theme := pc.Theme
	r := e.Rect()

	dl.AddRect(r.X, r.Y, r.W, r.H, theme.InputBackground)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, theme.InputBorder, 1)
	if e.focused {
		dl.AddRect(r.X, r.Bottom()-2, r.W, 2, theme.InputFocusLine)
	}

	textX := r.X + buttonPaddingX
	textY := r.Y + (r.H-pc.LineHeight())/2

	dl.PushClipRect(r.X, r.Y, r.Right(), r.Bottom())
	text := e.Text()
	if text == "" && !e.focused && e.placeholder != "" {
		pc.AddTextTo(dl, textX, textY, e.placeholder, theme.PlaceholderText)
	} else {
		color := theme.Text
		if !e.Enabled() {
			color = theme.TextDisabled
		}
		pc.AddTextTo(dl, textX, textY, text, color)

		if e.focused && e.Enabled() {
			before := string(e.runes[:e.cursor])
			cursorX := textX + pc.MeasureText(before).X
			dl.AddRect(cursorX, textY, 1, pc.LineHeight(), theme.Text)
		}
	}
	dl.PopClipRect()
}
