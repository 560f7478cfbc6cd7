package fluent_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fluent-go/fluent"
)

func TestPalettesDiffer(t *testing.T) {
	light := fluent.LightTheme()
	dark := fluent.DarkTheme()

	if light.Dark {
		t.Error("light palette marked dark")
	}
	if !dark.Dark {
		t.Error("dark palette not marked dark")
	}

	// The arrow glyph is mid-gray in light mode and untinted in dark.
	if light.ArrowFill != fluent.RGBA(100, 100, 100, 255) {
		t.Errorf("light ArrowFill = %#x, want #646464", light.ArrowFill)
	}
	if dark.ArrowFill != fluent.ColorWhite {
		t.Errorf("dark ArrowFill = %#x, want white", dark.ArrowFill)
	}
}

func TestStaticThemeProvider(t *testing.T) {
	provider := fluent.StaticTheme(fluent.DarkTheme())

	if got := provider.Theme(); !got.Dark {
		t.Error("StaticTheme returned the wrong palette")
	}
}

func TestThemeManagerToggle(t *testing.T) {
	m := fluent.NewThemeManager(false)

	if m.IsDark() {
		t.Fatal("manager should start light")
	}
	if !m.Toggle() {
		t.Error("Toggle should report the new dark flag")
	}
	if !m.Theme().Dark {
		t.Error("Theme() should return the dark palette after toggle")
	}

	m.SetDark(false)
	if m.Theme().Dark {
		t.Error("Theme() should return the light palette after SetDark(false)")
	}
}

func TestThemeManagerAccent(t *testing.T) {
	m := fluent.NewThemeManager(false)

	m.SetAccent("#FF0000")
	if got := m.Theme().Accent; got != fluent.RGBA(255, 0, 0, 255) {
		t.Errorf("Accent = %#x, want red", got)
	}

	// Invalid accents are ignored.
	m.SetAccent("not-a-color")
	if got := m.Theme().Accent; got != fluent.RGBA(255, 0, 0, 255) {
		t.Errorf("Accent changed on invalid input: %#x", got)
	}
}

func TestHoverAndPressedShades(t *testing.T) {
	light := fluent.LightTheme()
	bg := light.ButtonBackground

	hover := light.HoverShade(bg)
	pressed := light.PressedShade(bg)

	if hover == bg {
		t.Error("HoverShade returned the input unchanged")
	}
	if pressed == hover {
		t.Error("PressedShade should differ from HoverShade")
	}
}

func TestParseTheme(t *testing.T) {
	theme, err := fluent.ParseTheme(`
mode = "dark"
accent = "#FF0000"

[colors]
text = "#AABBCC"
button_background = "#112233"
`)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}

	if !theme.Dark {
		t.Error("theme should use the dark base palette")
	}
	if theme.Accent != fluent.RGBA(255, 0, 0, 255) {
		t.Errorf("Accent = %#x, want red", theme.Accent)
	}
	if theme.Text != fluent.RGBA(0xAA, 0xBB, 0xCC, 255) {
		t.Errorf("Text = %#x, want #AABBCC", theme.Text)
	}
	if theme.ButtonBackground != fluent.RGBA(0x11, 0x22, 0x33, 255) {
		t.Errorf("ButtonBackground = %#x, want #112233", theme.ButtonBackground)
	}
}

func TestParseThemeDefaultsToLight(t *testing.T) {
	theme, err := fluent.ParseTheme(``)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if theme.Dark {
		t.Error("empty theme should default to the light palette")
	}
}

func TestParseThemeRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"bad mode":   `mode = "sepia"`,
		"bad accent": `accent = "red"`,
		"bad color":  "[colors]\ntext = \"nope\"",
		"bad role":   "[colors]\nbackground_of_button = \"#112233\"",
	}
	for name, data := range cases {
		if _, err := fluent.ParseTheme(data); err == nil {
			t.Errorf("%s: ParseTheme accepted %q", name, data)
		}
	}
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	data := "mode = \"dark\"\n\n[colors]\nmenu_background = \"#202020\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := fluent.LoadThemeFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFile: %v", err)
	}
	if theme.MenuBackground != fluent.RGBA(0x20, 0x20, 0x20, 255) {
		t.Errorf("MenuBackground = %#x, want #202020", theme.MenuBackground)
	}

	if _, err := fluent.LoadThemeFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadThemeFile should fail on a missing file")
	}
}
