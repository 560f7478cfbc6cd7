package fluent

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// themeFile is the on-disk TOML shape of a theme override file.
//
//	mode = "dark"
//	accent = "#009FAA"
//
//	[colors]
//	text = "#FFFFFF"
//	button_background = "#353535"
type themeFile struct {
	Mode   string            `toml:"mode"`
	Accent string            `toml:"accent"`
	Colors map[string]string `toml:"colors"`
}

// LoadThemeFile reads a TOML theme file and returns the resulting palette.
// The file picks a base mode ("light" or "dark"), may set the accent, and
// may override individual color roles.
func LoadThemeFile(path string) (Theme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return Theme{}, fmt.Errorf("theme file %s: %w", path, err)
	}
	return tf.build()
}

// ParseTheme parses TOML theme data from a string. Used by tests and by
// hosts that embed their theme.
func ParseTheme(data string) (Theme, error) {
	var tf themeFile
	if _, err := toml.Decode(data, &tf); err != nil {
		return Theme{}, fmt.Errorf("theme data: %w", err)
	}
	return tf.build()
}

func (tf themeFile) build() (Theme, error) {
	var t Theme
	switch tf.Mode {
	case "", "light":
		t = LightTheme()
	case "dark":
		t = DarkTheme()
	default:
		return Theme{}, fmt.Errorf("theme mode %q: want \"light\" or \"dark\"", tf.Mode)
	}

	if tf.Accent != "" {
		if _, err := colorful.Hex(tf.Accent); err != nil {
			return Theme{}, fmt.Errorf("theme accent %q: %w", tf.Accent, err)
		}
		t.applyAccent(tf.Accent)
	}

	for role, hex := range tf.Colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme color %s=%q: %w", role, hex, err)
		}
		packed := packColorful(c, 255)
		if !t.setRole(role, packed) {
			return Theme{}, fmt.Errorf("theme color %q: unknown role", role)
		}
	}
	return t, nil
}

// setRole assigns a named color role. Returns false for unknown names.
func (t *Theme) setRole(role string, c uint32) bool {
	switch role {
	case "text":
		t.Text = c
	case "text_disabled":
		t.TextDisabled = c
	case "placeholder_text":
		t.PlaceholderText = c
	case "button_background":
		t.ButtonBackground = c
	case "button_border":
		t.ButtonBorder = c
	case "button_text":
		t.ButtonText = c
	case "menu_background":
		t.MenuBackground = c
	case "menu_border":
		t.MenuBorder = c
	case "item_hover":
		t.ItemHover = c
	case "item_pressed":
		t.ItemPressed = c
	case "item_text":
		t.ItemText = c
	case "arrow_fill":
		t.ArrowFill = c
	case "input_background":
		t.InputBackground = c
	case "input_border":
		t.InputBorder = c
	default:
		return false
	}
	return true
}
