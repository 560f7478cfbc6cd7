package fluent

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// TextureFactory uploads CPU images as GPU textures. The renderer backend
// implements it; tests use an in-memory fake.
type TextureFactory interface {
	// CreateTexture uploads an RGBA image and returns its texture ID.
	CreateTexture(img *image.RGBA) (uint32, error)

	// DeleteTexture releases a texture created by CreateTexture.
	DeleteTexture(id uint32)
}

// Icon is one selectable glyph. Sources are SVG documents; glyph shapes
// are authored in white so a paint-time tint can recolor them per theme.
type Icon struct {
	Name   string
	Source string
}

// NewIcon creates an icon from an SVG document.
func NewIcon(name, source string) *Icon {
	return &Icon{Name: name, Source: source}
}

// Rasterize renders the SVG at the given pixel size.
func (ic *Icon) Rasterize(w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("icon %s: invalid size %dx%d", ic.Name, w, h)
	}

	svg, err := oksvg.ReadIconStream(strings.NewReader(ic.Source))
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", ic.Name, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	svg.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	svg.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

const defaultIconCacheSize = 32

// IconCache rasterizes icons on demand and keeps their textures in an LRU
// cache keyed by icon name and pixel size.
type IconCache struct {
	factory  TextureFactory
	textures map[string]uint32
	order    []string // insertion order for LRU eviction
	maxSize  int
}

// NewIconCache creates a cache backed by the given texture factory.
func NewIconCache(factory TextureFactory) *IconCache {
	return NewIconCacheWithSize(factory, defaultIconCacheSize)
}

// NewIconCacheWithSize creates a cache with a custom capacity.
func NewIconCacheWithSize(factory TextureFactory, maxSize int) *IconCache {
	return &IconCache{
		factory:  factory,
		textures: make(map[string]uint32),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Texture returns the texture ID for the icon at the given pixel size,
// rasterizing and uploading it on first use.
func (c *IconCache) Texture(ic *Icon, w, h int) (uint32, error) {
	if c.factory == nil {
		return 0, fmt.Errorf("icon cache: no texture factory")
	}

	key := fmt.Sprintf("%s@%dx%d", ic.Name, w, h)
	if tex, ok := c.textures[key]; ok {
		c.moveToEnd(key)
		return tex, nil
	}

	img, err := ic.Rasterize(w, h)
	if err != nil {
		return 0, err
	}
	tex, err := c.factory.CreateTexture(img)
	if err != nil {
		return 0, fmt.Errorf("icon %s: %w", ic.Name, err)
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = tex
	c.order = append(c.order, key)
	return tex, nil
}

// Len returns the number of cached textures.
func (c *IconCache) Len() int {
	return len(c.textures)
}

func (c *IconCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *IconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if tex, ok := c.textures[oldest]; ok {
		c.factory.DeleteTexture(tex)
		delete(c.textures, oldest)
	}
}

// Destroy releases all cached textures.
func (c *IconCache) Destroy() {
	for _, tex := range c.textures {
		c.factory.DeleteTexture(tex)
	}
	c.textures = make(map[string]uint32)
	c.order = c.order[:0]
}

// Built-in glyphs used by the widgets themselves.
var (
	// IconArrowDown is the combo box header chevron.
	IconArrowDown = NewIcon("arrow-down", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 12 12"><path fill="#FFFFFF" d="M1.5 3.9 6 8.4l4.5-4.5-.9-.9L6 6.6 2.4 3z"/></svg>`)

	// IconCheck marks the current item in a drop-down menu.
	IconCheck = NewIcon("check", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 12 12"><path fill="#FFFFFF" d="M4.6 8.1 2.2 5.7l-.9.9 3.3 3.3 6.1-6.1-.9-.9z"/></svg>`)

	// IconChevronRight points at submenus.
	IconChevronRight = NewIcon("chevron-right", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 12 12"><path fill="#FFFFFF" d="M3.9 1.5 8.4 6l-4.5 4.5-.9-.9L6.6 6 3 2.4z"/></svg>`)

	// IconClose is the editable combo box clear button.
	IconClose = NewIcon("close", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 12 12"><path fill="#FFFFFF" d="m6 6.9-3.5 3.5-.9-.9L5.1 6 1.6 2.5l.9-.9L6 5.1l3.5-3.5.9.9L6.9 6l3.5 3.5-.9.9z"/></svg>`)
)
