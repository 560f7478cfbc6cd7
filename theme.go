package fluent

import (
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/atomic"
)

// DefaultAccent is the default accent color of the Fluent palette.
const DefaultAccent = "#009FAA"

// Theme defines the visual appearance of the widget layer.
// All widgets receive their colors from a Theme at paint time; nothing
// queries a process-wide mode flag during painting.
type Theme struct {
	// Text
	Text            uint32
	TextDisabled    uint32
	PlaceholderText uint32

	// Buttons and combo box headers
	ButtonBackground uint32
	ButtonBorder     uint32
	ButtonText       uint32

	// Drop-down menu
	MenuBackground uint32
	MenuBorder     uint32
	ItemHover      uint32 // Row background under the cursor
	ItemPressed    uint32 // Row background while pressed
	ItemText       uint32

	// Selection indicator (the accent bar next to the current item)
	Accent uint32

	// Arrow glyph fill. The dark palette renders the glyph untinted;
	// the light palette fills it with a mid gray.
	ArrowFill uint32

	// Line edit (editable combo box header)
	InputBackground uint32
	InputBorder     uint32
	InputFocusLine  uint32

	Dark bool
}

// LightTheme returns the light Fluent palette.
func LightTheme() Theme {
	t := Theme{
		Text:            RGBA(0, 0, 0, 228),
		TextDisabled:    RGBA(0, 0, 0, 92),
		PlaceholderText: RGBA(96, 96, 96, 255),

		ButtonBackground: RGBA(253, 253, 253, 255),
		ButtonBorder:     RGBA(229, 229, 229, 255),
		ButtonText:       RGBA(0, 0, 0, 228),

		MenuBackground: RGBA(249, 249, 249, 255),
		MenuBorder:     RGBA(0, 0, 0, 20),
		ItemHover:      RGBA(0, 0, 0, 9),
		ItemPressed:    RGBA(0, 0, 0, 6),
		ItemText:       RGBA(0, 0, 0, 228),

		ArrowFill: RGBA(100, 100, 100, 255), // #646464

		InputBackground: RGBA(255, 255, 255, 255),
		InputBorder:     RGBA(0, 0, 0, 34),

		Dark: false,
	}
	t.applyAccent(DefaultAccent)
	return t
}

// DarkTheme returns the dark Fluent palette.
func DarkTheme() Theme {
	t := Theme{
		Text:            RGBA(255, 255, 255, 255),
		TextDisabled:    RGBA(255, 255, 255, 92),
		PlaceholderText: RGBA(204, 204, 204, 255),

		ButtonBackground: RGBA(53, 53, 53, 255),
		ButtonBorder:     RGBA(255, 255, 255, 18),
		ButtonText:       RGBA(255, 255, 255, 255),

		MenuBackground: RGBA(43, 43, 43, 255),
		MenuBorder:     RGBA(0, 0, 0, 51),
		ItemHover:      RGBA(255, 255, 255, 21),
		ItemPressed:    RGBA(255, 255, 255, 13),
		ItemText:       RGBA(255, 255, 255, 255),

		ArrowFill: ColorWhite,

		InputBackground: RGBA(36, 36, 36, 255),
		InputBorder:     RGBA(255, 255, 255, 20),

		Dark: true,
	}
	t.applyAccent(DefaultAccent)
	return t
}

// applyAccent sets the accent-derived roles from a hex color string.
// Invalid strings leave the previous accent untouched.
func (t *Theme) applyAccent(hex string) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return
	}
	t.Accent = packColorful(c, 255)
	if t.Dark {
		t.InputFocusLine = packColorful(lighten(c, 0.15), 255)
	} else {
		t.InputFocusLine = t.Accent
	}
}

// HoverShade derives the hover variant of a background color by blending
// it toward the opposite pole of the palette.
func (t Theme) HoverShade(c uint32) uint32 {
	return blendShade(c, t.Dark, 0.06)
}

// PressedShade derives the pressed variant of a background color.
func (t Theme) PressedShade(c uint32) uint32 {
	return blendShade(c, t.Dark, 0.12)
}

func blendShade(c uint32, dark bool, amount float64) uint32 {
	r, g, b, a := UnpackRGBA(c)
	base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	pole := colorful.Color{R: 0, G: 0, B: 0}
	if dark {
		pole = colorful.Color{R: 1, G: 1, B: 1}
	}
	return packColorful(base.BlendRgb(pole, amount), a)
}

func lighten(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, amount)
}

func packColorful(c colorful.Color, a uint8) uint32 {
	r, g, b := c.Clamped().RGB255()
	return RGBA(r, g, b, a)
}

// ThemeProvider is the capability widgets use to resolve colors at paint
// time. Injecting it (rather than consulting a global) keeps paint code
// testable without a live display context.
type ThemeProvider interface {
	Theme() Theme
}

// StaticTheme is a ThemeProvider that always returns the same palette.
// Useful in tests and for hosts without runtime theme switching.
type StaticTheme Theme

// Theme returns the wrapped palette.
func (s StaticTheme) Theme() Theme { return Theme(s) }

// ThemeManager is the default ThemeProvider. The dark flag is atomic so a
// host watching OS theme changes may flip it from another goroutine while
// the UI thread paints.
type ThemeManager struct {
	dark   *atomic.Bool
	accent *atomic.String
}

// NewThemeManager creates a manager starting in the given mode.
func NewThemeManager(dark bool) *ThemeManager {
	return &ThemeManager{
		dark:   atomic.NewBool(dark),
		accent: atomic.NewString(DefaultAccent),
	}
}

// Theme returns the palette for the current mode with the accent applied.
func (m *ThemeManager) Theme() Theme {
	var t Theme
	if m.dark.Load() {
		t = DarkTheme()
	} else {
		t = LightTheme()
	}
	t.applyAccent(m.accent.Load())
	return t
}

// IsDark reports whether the manager is in dark mode.
func (m *ThemeManager) IsDark() bool {
	return m.dark.Load()
}

// SetDark switches between the dark and light palettes.
func (m *ThemeManager) SetDark(dark bool) {
	m.dark.Store(dark)
}

// Toggle flips the mode and returns the new dark flag.
func (m *ThemeManager) Toggle() bool {
	return !m.dark.Toggle()
}

// SetAccent sets the accent color from a hex string, e.g. "#009FAA".
func (m *ThemeManager) SetAccent(hex string) {
	if _, err := colorful.Hex(hex); err != nil {
		return
	}
	m.accent.Store(hex)
}
