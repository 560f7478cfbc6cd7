package fluent

import (
	"log/slog"
	"os"
)

// uiLogLevel controls widget-layer log verbosity. Defaults to Info so
// per-frame debug output stays off unless a host opts in.
var uiLogLevel = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelInfo)
	return v
}()

var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))

// SetLogLevel sets the widget-layer log level.
func SetLogLevel(level slog.Level) {
	uiLogLevel.Set(level)
}

// Paintable is the capability the surface invokes to draw a widget.
type Paintable interface {
	Paint(pc *PaintContext)
}

// Clickable is the capability the surface invokes to route mouse input.
type Clickable interface {
	HandleMouse(in *InputState)
}

// KeyboardHandler is the capability for widgets that consume key input
// while active (the open drop-down menu, the editable header).
type KeyboardHandler interface {
	HandleKeyboard(in *InputState)
}

// PaintContext carries everything a widget needs during a paint pass:
// the frame's draw lists, the resolved theme, fonts and the icon cache.
type PaintContext struct {
	// DrawList receives normal widget content.
	DrawList *DrawList

	// ForegroundDrawList receives popups, drawn above everything else.
	ForegroundDrawList *DrawList

	// Theme is resolved once per frame from the surface's ThemeProvider.
	Theme Theme

	DisplaySize Vec2
	DeltaTime   float32

	// Icons rasterizes and caches icon textures. May be nil in tests;
	// widgets fall back to primitive glyphs.
	Icons *IconCache

	fontProvider FontProvider

	// Monospace fallback metrics, used when no font provider is set.
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	FontTextureID uint32

	// Per-frame text measurement cache.
	textMeasureCache map[string]Vec2
	glyphBuffer      []GlyphQuad
}

// SetFontProvider injects a font provider for proportional text.
func (pc *PaintContext) SetFontProvider(fp FontProvider) {
	pc.fontProvider = fp
}

func (pc *PaintContext) activeFont() Font {
	if pc.fontProvider != nil {
		return pc.fontProvider.ActiveFont()
	}
	return nil
}

// LineHeight returns the height of a single line of text.
func (pc *PaintContext) LineHeight() float32 {
	if f := pc.activeFont(); f != nil {
		return f.LineHeight(pc.FontScale)
	}
	return pc.CharHeight * pc.FontScale
}

// MeasureText returns the pixel size of rendered text.
// Results are cached per frame.
func (pc *PaintContext) MeasureText(text string) Vec2 {
	if pc.textMeasureCache != nil {
		if cached, ok := pc.textMeasureCache[text]; ok {
			return cached
		}
	}

	var result Vec2
	if f := pc.activeFont(); f != nil {
		size := f.MeasureText(text, pc.FontScale)
		result = Vec2{X: size.X, Y: size.Y}
	} else {
		result = Vec2{
			X: float32(len(text)) * pc.CharWidth * pc.FontScale,
			Y: pc.CharHeight * pc.FontScale,
		}
	}

	if pc.textMeasureCache != nil {
		pc.textMeasureCache[text] = result
	}
	return result
}

// AddText draws text to the main draw list.
func (pc *PaintContext) AddText(x, y float32, text string, color uint32) {
	pc.AddTextTo(pc.DrawList, x, y, text, color)
}

// AddTextTo draws text to a specific draw list (used by popups painting
// to the foreground layer).
func (pc *PaintContext) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}

	if f := pc.activeFont(); f != nil {
		dl.SetTexture(f.TextureID())
		fontQuads := f.GetGlyphQuads(text, x, y, pc.FontScale)

		if cap(pc.glyphBuffer) < len(fontQuads) {
			pc.glyphBuffer = make([]GlyphQuad, 0, len(fontQuads)*2)
		}
		pc.glyphBuffer = pc.glyphBuffer[:len(fontQuads)]

		for i, q := range fontQuads {
			pc.glyphBuffer[i] = GlyphQuad{
				X0: q.X0, Y0: q.Y0,
				X1: q.X1, Y1: q.Y1,
				U0: q.U0, V0: q.V0,
				U1: q.U1, V1: q.V1,
			}
		}
		dl.AddGlyphQuads(pc.glyphBuffer, color)
		dl.SetTexture(0)
		return
	}

	// Built-in monospace bitmap font fallback.
	dl.SetTexture(pc.FontTextureID)
	dl.AddText(x, y, text, color, pc.FontScale, pc.CharWidth, pc.CharHeight)
	dl.SetTexture(0)
}

// DrawIcon draws an icon into rect on the given draw list, tinted with
// the given color. Returns false when the icon could not be rasterized
// (no cache, bad SVG); callers then draw a primitive fallback glyph.
func (pc *PaintContext) DrawIcon(dl *DrawList, ic *Icon, rect Rect, tint uint32) bool {
	if ic == nil || pc.Icons == nil {
		return false
	}

	tex, err := pc.Icons.Texture(ic, int(rect.W), int(rect.H))
	if err != nil {
		uiLogger.Warn("icon rasterization failed", "icon", ic.Name, "err", err)
		return false
	}
	dl.AddImage(tex, rect.X, rect.Y, rect.W, rect.H, tint)
	return true
}

// resetFrame prepares the context for a new frame.
func (pc *PaintContext) resetFrame(displaySize Vec2, deltaTime float32, theme Theme) {
	pc.DisplaySize = displaySize
	pc.DeltaTime = deltaTime
	pc.Theme = theme
	if pc.textMeasureCache == nil {
		pc.textMeasureCache = make(map[string]Vec2, 64)
	}
	clear(pc.textMeasureCache)
}

// Interaction feedback fades the widget face rather than swapping
// colors, after the Fluent hover/press treatment.
const (
	hoverOpacity   float32 = 0.8
	pressedOpacity float32 = 0.7
)

// WidgetBase carries the state every widget shares: geometry, enable
// flag and hover/press tracking. Widgets embed it and the surface feeds
// it mouse state through trackMouse.
type WidgetBase struct {
	rect    Rect
	hovered bool
	pressed bool
	enabled bool
}

// NewWidgetBase returns an enabled base with zero geometry.
func NewWidgetBase() WidgetBase {
	return WidgetBase{enabled: true}
}

// SetRect positions the widget in screen coordinates.
func (w *WidgetBase) SetRect(r Rect) {
	w.rect = r
}

// Rect returns the widget's screen rectangle.
func (w *WidgetBase) Rect() Rect {
	return w.rect
}

// SetEnabled enables or disables interaction. Disabling clears any
// in-progress hover/press state.
func (w *WidgetBase) SetEnabled(enabled bool) {
	w.enabled = enabled
	if !enabled {
		w.hovered = false
		w.pressed = false
	}
}

// Enabled reports whether the widget accepts input.
func (w *WidgetBase) Enabled() bool {
	return w.enabled
}

// Hovered reports whether the cursor is over the widget.
func (w *WidgetBase) Hovered() bool {
	return w.hovered
}

// Pressed reports whether the primary button is held on the widget.
func (w *WidgetBase) Pressed() bool {
	return w.pressed
}

// trackMouse updates hover/press state from this frame's input and
// returns true on a completed click (press and release both inside).
func (w *WidgetBase) trackMouse(in *InputState) bool {
	if !w.enabled || in == nil {
		return false
	}

	inside := w.rect.Contains(in.MousePos())
	w.hovered = inside

	if inside && in.MouseClicked(MouseButtonLeft) {
		w.pressed = true
	}

	clicked := false
	if in.MouseReleased(MouseButtonLeft) {
		if w.pressed && inside {
			clicked = true
		}
		w.pressed = false
	}
	return clicked
}
