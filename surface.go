package fluent

// Renderer is the interface for presenting finished draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Popup is a transient widget shown above everything else. One popup is
// active at a time; opening another closes the first.
type Popup interface {
	Paintable
	Clickable
	IsOpen() bool
	Close()
}

// surfaceAttacher lets widgets receive the surface they were added to.
type surfaceAttacher interface {
	attach(s *Surface)
}

// Surface owns a set of retained widgets and drives them once per
// frame: input routing, painting, popup lifecycle and rendering.
type Surface struct {
	renderer     Renderer
	themes       ThemeProvider
	fontProvider FontProvider
	icons        *IconCache
	oracle       SizingOracle

	input *InputState
	pc    PaintContext

	widgets []Paintable
	popup   Popup

	displaySize Vec2
}

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithThemeProvider sets the theme source resolved each frame.
func WithThemeProvider(tp ThemeProvider) SurfaceOption {
	return func(s *Surface) { s.themes = tp }
}

// WithFontProvider sets a font provider for proportional text.
func WithFontProvider(fp FontProvider) SurfaceOption {
	return func(s *Surface) { s.fontProvider = fp }
}

// WithTextureFactory enables icon rasterization through the given
// factory. Without it, widgets draw primitive fallback glyphs.
func WithTextureFactory(tf TextureFactory) SurfaceOption {
	return func(s *Surface) { s.icons = NewIconCache(tf) }
}

// WithSizingOracle overrides how popups probe available height. The
// default measures against the display bounds.
func WithSizingOracle(oracle SizingOracle) SurfaceOption {
	return func(s *Surface) { s.oracle = oracle }
}

// NewSurface creates a surface rendering through the given renderer.
func NewSurface(renderer Renderer, opts ...SurfaceOption) *Surface {
	s := &Surface{
		renderer: renderer,
		themes:   StaticTheme(LightTheme()),
		input:    NewInputState(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.pc.FontScale = 1
	s.pc.CharWidth = 8
	s.pc.CharHeight = 16
	if s.fontProvider != nil {
		s.pc.SetFontProvider(s.fontProvider)
	}
	return s
}

// Add attaches a widget to the surface. Paint order follows add order.
func (s *Surface) Add(w Paintable) {
	if a, ok := w.(surfaceAttacher); ok {
		a.attach(s)
	}
	s.widgets = append(s.widgets, w)
}

// Input returns the input state the host feeds events into.
func (s *Surface) Input() *InputState {
	return s.input
}

// SetThemeProvider swaps the theme source.
func (s *Surface) SetThemeProvider(tp ThemeProvider) {
	s.themes = tp
}

// Oracle returns the popup sizing oracle, falling back to the display
// bounds when the host installed none.
func (s *Surface) Oracle() SizingOracle {
	if s.oracle != nil {
		return s.oracle
	}
	return DisplayOracle{DisplaySize: s.displaySize}
}

// OpenPopup shows a popup above the widgets, closing any active one.
func (s *Surface) OpenPopup(p Popup) {
	if s.popup != nil && s.popup != p {
		s.popup.Close()
	}
	s.popup = p
}

// ClosePopup dismisses the active popup, if any.
func (s *Surface) ClosePopup() {
	if s.popup != nil {
		s.popup.Close()
		s.popup = nil
	}
}

// ActivePopup returns the showing popup, nil when none.
func (s *Surface) ActivePopup() Popup {
	return s.popup
}

// Frame runs one full frame: routes input, paints every widget and the
// active popup, renders both layers and resets per-frame input.
func (s *Surface) Frame(displaySize Vec2, deltaTime float32) error {
	s.displaySize = displaySize
	s.input.UpdateKeyRepeat(deltaTime)

	s.pc.DrawList = AcquireDrawList()
	s.pc.ForegroundDrawList = AcquireDrawList()
	s.pc.Icons = s.icons
	s.pc.FontTextureID = s.renderer.FontTextureID()
	s.pc.resetFrame(displaySize, deltaTime, s.themes.Theme())

	s.routeInput()
	s.paint()

	err := s.render()

	// A popup that closed itself this frame is released here; the next
	// open builds a fresh one.
	if s.popup != nil && !s.popup.IsOpen() {
		s.popup = nil
	}

	s.input.Reset()
	return err
}

// routeInput dispatches this frame's input. The popup sees mouse input
// first and owns the keyboard while open; widgets still see the mouse
// so a header click can swallow the toggle that dismissed its menu.
func (s *Surface) routeInput() {
	if s.popup != nil && s.popup.IsOpen() {
		s.popup.HandleMouse(s.input)
		if kh, ok := s.popup.(KeyboardHandler); ok {
			kh.HandleKeyboard(s.input)
		}
		for _, w := range s.widgets {
			if c, ok := w.(Clickable); ok {
				c.HandleMouse(s.input)
			}
		}
		return
	}

	for _, w := range s.widgets {
		if c, ok := w.(Clickable); ok {
			c.HandleMouse(s.input)
		}
		if kh, ok := w.(KeyboardHandler); ok {
			kh.HandleKeyboard(s.input)
		}
	}
}

func (s *Surface) paint() {
	for _, w := range s.widgets {
		w.Paint(&s.pc)
	}
	if s.popup != nil && s.popup.IsOpen() {
		s.popup.Paint(&s.pc)
	}
}

// render flushes the main layer, then the foreground layer on top.
func (s *Surface) render() error {
	s.pc.DrawList.Finalize()
	s.pc.ForegroundDrawList.Finalize()

	err := s.renderer.Render(s.pc.DrawList)
	if err == nil && len(s.pc.ForegroundDrawList.CmdBuffer) > 0 {
		err = s.renderer.Render(s.pc.ForegroundDrawList)
	}

	ReleaseDrawList(s.pc.DrawList)
	ReleaseDrawList(s.pc.ForegroundDrawList)
	s.pc.DrawList = nil
	s.pc.ForegroundDrawList = nil
	return err
}

// Resize notifies the renderer of a display size change.
func (s *Surface) Resize(width, height int) {
	s.renderer.Resize(width, height)
	s.displaySize = Vec2{X: float32(width), Y: float32(height)}
}

// Destroy releases GPU resources held by the icon cache.
func (s *Surface) Destroy() {
	if s.icons != nil {
		s.icons.Destroy()
	}
}
