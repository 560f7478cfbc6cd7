package fluent_test

import (
	"image"
	"testing"

	"github.com/fluent-go/fluent"
)

// memFactory hands out sequential texture IDs and records deletions.
type memFactory struct {
	next    uint32
	deleted []uint32
}

func (f *memFactory) CreateTexture(img *image.RGBA) (uint32, error) {
	f.next++
	return f.next, nil
}

func (f *memFactory) DeleteTexture(id uint32) {
	f.deleted = append(f.deleted, id)
}

func TestIconRasterize(t *testing.T) {
	img, err := fluent.IconArrowDown.Rasterize(16, 16)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", b)
	}

	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			opaque++
		}
	}
	if opaque == 0 {
		t.Error("rasterized glyph has no visible pixels")
	}
}

func TestIconRasterizeRejectsBadSize(t *testing.T) {
	if _, err := fluent.IconCheck.Rasterize(0, 16); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestIconCacheReusesTextures(t *testing.T) {
	factory := &memFactory{}
	cache := fluent.NewIconCache(factory)

	first, err := cache.Texture(fluent.IconArrowDown, 16, 16)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	second, err := cache.Texture(fluent.IconArrowDown, 16, 16)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if first != second {
		t.Errorf("same icon and size produced textures %d and %d", first, second)
	}

	other, err := cache.Texture(fluent.IconArrowDown, 24, 24)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if other == first {
		t.Error("different size should get its own texture")
	}
	if cache.Len() != 2 {
		t.Errorf("cache size = %d, want 2", cache.Len())
	}
}

func TestIconCacheEvictsOldest(t *testing.T) {
	factory := &memFactory{}
	cache := fluent.NewIconCacheWithSize(factory, 2)

	a, _ := cache.Texture(fluent.IconArrowDown, 16, 16)
	cache.Texture(fluent.IconCheck, 16, 16)
	// Touch the first entry so the second becomes the eviction candidate.
	cache.Texture(fluent.IconArrowDown, 16, 16)
	cache.Texture(fluent.IconClose, 16, 16)

	if cache.Len() != 2 {
		t.Errorf("cache size = %d, want 2", cache.Len())
	}
	if len(factory.deleted) != 1 {
		t.Fatalf("deleted %d textures, want 1", len(factory.deleted))
	}
	if factory.deleted[0] == a {
		t.Error("recently used texture was evicted")
	}
}

func TestIconCacheDestroy(t *testing.T) {
	factory := &memFactory{}
	cache := fluent.NewIconCache(factory)

	cache.Texture(fluent.IconArrowDown, 16, 16)
	cache.Texture(fluent.IconCheck, 16, 16)
	cache.Destroy()

	if cache.Len() != 0 {
		t.Errorf("cache size = %d after Destroy, want 0", cache.Len())
	}
	if len(factory.deleted) != 2 {
		t.Errorf("deleted %d textures, want 2", len(factory.deleted))
	}
}

func TestIconCacheWithoutFactory(t *testing.T) {
	cache := fluent.NewIconCache(nil)
	if _, err := cache.Texture(fluent.IconArrowDown, 16, 16); err == nil {
		t.Error("expected error without a texture factory")
	}
}

func TestBuiltinIconsParse(t *testing.T) {
	for _, ic := range []*fluent.Icon{
		fluent.IconArrowDown, fluent.IconCheck, fluent.IconChevronRight, fluent.IconClose,
	} {
		if _, err := ic.Rasterize(12, 12); err != nil {
			t.Errorf("%s: %v", ic.Name, err)
		}
	}
}
