package fluent

// Button metrics.
const (
	buttonPaddingX   float32 = 12
	buttonIconSize   float32 = 16
	buttonIconGap    float32 = 8
	disabledTextFade float32 = 0.45
)

// PushButton is a themed clickable button with an optional leading icon.
type PushButton struct {
	WidgetBase

	text string
	icon *Icon

	// OnClicked fires when the button is pressed and released inside
	// its bounds.
	OnClicked func()
}

// NewPushButton creates a button with the given label.
func NewPushButton(text string) *PushButton {
	return &PushButton{
		WidgetBase: NewWidgetBase(),
		text:       text,
	}
}

// SetText changes the button label.
func (b *PushButton) SetText(text string) {
	b.text = text
}

// Text returns the button label.
func (b *PushButton) Text() string {
	return b.text
}

// SetIcon sets a leading icon, nil to remove it.
func (b *PushButton) SetIcon(ic *Icon) {
	b.icon = ic
}

// HandleMouse updates hover and press state and fires OnClicked on a
// completed click.
func (b *PushButton) HandleMouse(in *InputState) {
	if !b.Enabled() {
		return
	}
	if b.trackMouse(in) && b.OnClicked != nil {
		b.OnClicked()
	}
}

// Paint draws the button. Hover and press are rendered by fading the
// whole face, matching the Fluent interaction feedback.
func (b *PushButton) Paint(pc *PaintContext) {
	theme := pc.Theme

	bg := theme.ButtonBackground
	border := theme.ButtonBorder
	text := theme.ButtonText
	switch {
	case !b.Enabled():
		text = theme.TextDisabled
	case b.Pressed():
		bg = ScaleAlpha(bg, pressedOpacity)
		text = ScaleAlpha(text, pressedOpacity)
	case b.Hovered():
		bg = ScaleAlpha(bg, hoverOpacity)
		text = ScaleAlpha(text, hoverOpacity)
	}

	b.paintFace(pc, bg, border, text)
}

// paintFace draws the button body with the given colors. The variants
// share it and differ only in how they pick the colors.
func (b *PushButton) paintFace(pc *PaintContext, bg, border, text uint32) {
	dl := pc.DrawList
	r := b.Rect()

	dl.AddRect(r.X, r.Y, r.W, r.H, bg)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, border, 1)

	contentW := pc.MeasureText(b.text).X
	if b.icon != nil {
		contentW += buttonIconSize + buttonIconGap
	}
	x := r.X + (r.W-contentW)/2
	if x < r.X+buttonPaddingX {
		x = r.X + buttonPaddingX
	}

	if b.icon != nil {
		iconRect := Rect{
			X: x,
			Y: r.Y + (r.H-buttonIconSize)/2,
			W: buttonIconSize,
			H: buttonIconSize,
		}
		tint := text
		if !b.Enabled() {
			tint = ScaleAlpha(text, disabledTextFade)
		}
		pc.DrawIcon(dl, b.icon, iconRect, tint)
		x += buttonIconSize + buttonIconGap
	}

	textY := r.Y + (r.H-pc.LineHeight())/2
	pc.AddTextTo(dl, x, textY, b.text, text)
}

// paintAccentFace draws the accent-filled rendition shared by the
// primary button and the checked toggle state. Hover and press shift
// the fill through the theme's derived shades rather than fading.
func (b *PushButton) paintAccentFace(pc *PaintContext) {
	theme := pc.Theme

	bg := theme.Accent
	text := ColorWhite
	switch {
	case !b.Enabled():
		bg = ScaleAlpha(bg, disabledTextFade)
		text = ScaleAlpha(text, disabledTextFade)
	case b.Pressed():
		bg = theme.PressedShade(bg)
	case b.Hovered():
		bg = theme.HoverShade(bg)
	}

	b.paintFace(pc, bg, bg, text)
}

// PrimaryPushButton is a push button filled with the theme accent,
// used for the dominant action of a view.
type PrimaryPushButton struct {
	PushButton
}

// NewPrimaryPushButton creates an accent-filled button with the given
// label.
func NewPrimaryPushButton(text string) *PrimaryPushButton {
	return &PrimaryPushButton{PushButton: *NewPushButton(text)}
}

// Paint draws the accent-filled face.
func (b *PrimaryPushButton) Paint(pc *PaintContext) {
	b.paintAccentFace(pc)
}

// TransparentPushButton is a push button with no resting fill or
// border; hover and press show the same subtle fill menu rows use.
type TransparentPushButton struct {
	PushButton
}

// NewTransparentPushButton creates a transparent button with the given
// label.
func NewTransparentPushButton(text string) *TransparentPushButton {
	return &TransparentPushButton{PushButton: *NewPushButton(text)}
}

// Paint draws the label over a fill that only appears on interaction.
func (b *TransparentPushButton) Paint(pc *PaintContext) {
	theme := pc.Theme

	var bg uint32
	text := theme.ButtonText
	switch {
	case !b.Enabled():
		text = theme.TextDisabled
	case b.Pressed():
		bg = theme.ItemPressed
	case b.Hovered():
		bg = theme.ItemHover
	}

	b.paintFace(pc, bg, 0, text)
}

// ToggleButton is a push button holding a checked state: each click
// flips it, and the checked face uses the accent fill.
type ToggleButton struct {
	PushButton

	checked bool

	// OnToggled fires with the new state after each click-driven flip.
	OnToggled func(checked bool)
}

// NewToggleButton creates an unchecked toggle button with the given
// label.
func NewToggleButton(text string) *ToggleButton {
	return &ToggleButton{PushButton: *NewPushButton(text)}
}

// SetChecked sets the checked state without firing OnToggled.
func (b *ToggleButton) SetChecked(checked bool) {
	b.checked = checked
}

// IsChecked reports the checked state.
func (b *ToggleButton) IsChecked() bool {
	return b.checked
}

// HandleMouse flips the checked state on a completed click.
func (b *ToggleButton) HandleMouse(in *InputState) {
	if !b.Enabled() {
		return
	}
	if b.trackMouse(in) {
		b.checked = !b.checked
		if b.OnToggled != nil {
			b.OnToggled(b.checked)
		}
		if b.OnClicked != nil {
			b.OnClicked()
		}
	}
}

// Paint draws the accent face while checked, the plain face otherwise.
func (b *ToggleButton) Paint(pc *PaintContext) {
	if b.checked {
		b.paintAccentFace(pc)
		return
	}
	b.PushButton.Paint(pc)
}
