package fluent

// FontProvider abstracts font loading and selection so the widget layer
// does not depend on a concrete font implementation. Hosts inject a
// provider; tests inject a mock or none at all (monospace fallback).
type FontProvider interface {
	// ActiveFont returns the currently active font for rendering.
	// Returns nil if no font is loaded or active.
	ActiveFont() Font

	// SetActiveFont sets the active font by name.
	// Returns an error if the font is not found.
	SetActiveFont(name string) error
}

// Font is a single font that can measure and render text. Implementations
// should use pre-generated texture atlases rather than rasterizing at
// render time.
type Font interface {
	// TextureID returns the texture ID for the font atlas.
	TextureID() uint32

	// HasGlyph returns true if the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel dimensions of the text at the scale.
	MeasureText(text string, scale float32) FontVec2

	// GetGlyphQuads generates quads for rendering the given text.
	// The returned slice is valid until the next call.
	GetGlyphQuads(text string, x, y, scale float32) []FontGlyphQuad

	// LineHeight returns the line height at the specified scale.
	LineHeight(scale float32) float32
}

// FontVec2 mirrors a font package's vector type to avoid import cycles.
type FontVec2 struct {
	X, Y float32
}

// FontGlyphQuad is a single character's rendering quad from a font.
type FontGlyphQuad struct {
	// Screen coordinates (top-left and bottom-right)
	X0, Y0 float32
	X1, Y1 float32

	// Texture coordinates (top-left and bottom-right)
	U0, V0 float32
	U1, V1 float32
}
