package fluent_test

import (
	"testing"

	"github.com/fluent-go/fluent"
)

func TestDrawListRect(t *testing.T) {
	dl := fluent.AcquireDrawList()
	defer fluent.ReleaseDrawList(dl)

	dl.AddRect(10, 20, 100, 30, fluent.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("vertices = %d, want 4", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Errorf("indices = %d, want 6", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("commands = %d, want 1", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("ElemCount = %d, want 6", dl.CmdBuffer[0].ElemCount)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := fluent.AcquireDrawList()
	defer fluent.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, 0x00FF00FF) // zero alpha
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("vertices = %d, want 0 for transparent fill", len(dl.VtxBuffer))
	}
	if len(dl.CmdBuffer) != 0 {
		t.Errorf("commands = %d, want 0", len(dl.CmdBuffer))
	}
}

func TestDrawListClipStack(t *testing.T) {
	dl := fluent.AcquireDrawList()
	defer fluent.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, fluent.ColorWhite)
	dl.PushClipRect(5, 5, 50, 50)
	dl.AddRect(0, 0, 10, 10, fluent.ColorWhite)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, fluent.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("commands = %d, want 3", len(dl.CmdBuffer))
	}
	if got := dl.CmdBuffer[1].ClipRect; got != [4]float32{5, 5, 50, 50} {
		t.Errorf("clipped command rect = %v", got)
	}
	if got := dl.CmdBuffer[2].ClipRect; got == dl.CmdBuffer[1].ClipRect {
		t.Error("pop did not restore the outer clip rect")
	}
}

func TestDrawListImageSplitsByTexture(t *testing.T) {
	dl := fluent.AcquireDrawList()
	defer fluent.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, fluent.ColorWhite)
	dl.AddImage(7, 20, 20, 16, 16, fluent.ColorWhite)
	dl.AddRect(40, 0, 10, 10, fluent.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("commands = %d, want 3", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 {
		t.Errorf("first command texture = %d, want 0", dl.CmdBuffer[0].TextureID)
	}
	if dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("image command texture = %d, want 7", dl.CmdBuffer[1].TextureID)
	}
	if dl.CmdBuffer[2].TextureID != 0 {
		t.Errorf("last command texture = %d, want 0", dl.CmdBuffer[2].TextureID)
	}
}

func TestDrawListFinalizeDropsEmptyCommands(t *testing.T) {
	dl := fluent.AcquireDrawList()
	defer fluent.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 100, 100)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, fluent.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Errorf("commands = %d, want 1 after dropping empties", len(dl.CmdBuffer))
	}
}

func TestDrawListPoolReuseClears(t *testing.T) {
	dl := fluent.AcquireDrawList()
	dl.AddRect(0, 0, 10, 10, fluent.ColorWhite)
	fluent.ReleaseDrawList(dl)

	reused := fluent.AcquireDrawList()
	defer fluent.ReleaseDrawList(reused)

	if len(reused.VtxBuffer) != 0 || len(reused.CmdBuffer) != 0 {
		t.Error("acquired list was not cleared")
	}
}

func TestDrawListText(t *testing.T) {
	dl := fluent.AcquireDrawList()
	defer fluent.ReleaseDrawList(dl)

	dl.AddText(0, 0, "abc", fluent.ColorWhite, 1, 8, 16)
	dl.Finalize()

	if len(dl.VtxBuffer) != 12 {
		t.Errorf("vertices = %d, want 12 for three glyphs", len(dl.VtxBuffer))
	}
}
