/*
Package fluent provides a Fluent-styled desktop widget layer: themed
buttons, combo boxes and drop-down menus, painted through a batched
draw-list pipeline.

# Overview

Widgets are retained: the host creates them once, wires callbacks, and
adds them to a Surface. The Surface drives everything once per frame -
it routes input, paints every widget into pooled draw lists, manages
the popup layer and hands the finished geometry to a Renderer. There is
no widget tree and no inheritance; widgets are plain structs composing
WidgetBase, and the Surface discovers what they can do through the
Paintable, Clickable and KeyboardHandler interfaces.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	surface := fluent.NewSurface(renderer,
	    fluent.WithThemeProvider(fluent.NewThemeManager(false)),
	    fluent.WithTextureFactory(renderer),
	)

	combo := fluent.NewComboBox()
	combo.AddItems("Coffee", "Tea", "Milk")
	combo.SetRect(fluent.Rect{X: 40, Y: 40, W: 200, H: 33})
	combo.OnCurrentIndexChanged = func(i int) {
	    log.Println("picked", i)
	}
	surface.Add(combo)

	for !window.ShouldClose() {
	    pollInput(window, surface.Input())
	    surface.Frame(fluent.Vec2{X: 1280, Y: 720}, deltaTime)
	    window.SwapBuffers()
	}

# Widgets

	PushButton          Themed button with optional leading icon and an
	                    OnClicked callback. PrimaryPushButton fills with
	                    the accent color, TransparentPushButton drops the
	                    resting fill, and ToggleButton holds a checked
	                    state flipped by each click.
	ComboBox            Closed drop-down selector. The item list and
	                    selection live in a SelectionModel, reachable
	                    through Model() for operations without a widget
	                    passthrough.
	EditableComboBox    Combo box whose header is a LineEdit; typed text
	                    tracks or extends the item list.
	LineEdit            Single-line text field with cursor editing.
	DropDownMenu        The popup the combo boxes open. Created fresh
	                    per open, released on dismissal.

# Selection Semantics

The SelectionModel keeps an ordered item list plus a current index and
fires OnCurrentTextChanged before OnCurrentIndexChanged whenever the
selection changes observably. Structural edits around the current item
keep the same item selected where possible: inserting at or before the
current index shifts the selection up and notifies, removing before it
shifts it down and notifies, and removing the selected head falls back
to the new first item. SetCurrentIndex is the silent variant for
programmatic selection.

# Drop-Down Placement

A menu opens below its anchor when at least as much height is available
there as above, and above otherwise; ties go below. Available height
comes from a SizingOracle so embedders can account for taskbars or
multi-monitor layouts. The default oracle measures against the display
bounds.

# Keyboard Reference

Open drop-down menu:

	Up / Down        Move the highlighted row
	Home / End       Jump to first / last row
	Enter / Space    Activate the highlighted row
	Escape           Dismiss the menu
	Mouse Wheel      Scroll when rows exceed the visible limit

LineEdit (and the editable combo header):

	Left / Right     Move cursor
	Home / End       Jump to start / end
	Backspace        Delete before cursor
	Delete           Delete after cursor
	Enter            Commit (editable combo: select or append the text)

# Theming

Colors come from a Theme resolved once per frame through the surface's
ThemeProvider. A fixed StaticTheme works for hosts without runtime
switching; ThemeManager adds a goroutine-safe dark/light flag and
accent color for hosts that toggle at runtime. Themes can also be
loaded from TOML files with LoadThemeFile.

# Performance

  - sync.Pool for draw list buffer reuse
  - Batched rendering by texture with a clip-rect stack
  - Per-frame text measurement cache
  - LRU cache for rasterized icon textures
*/
package fluent
