// Example shows a small window with fluent widgets: a combo box, an
// editable combo box and a theme toggle button.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fluent-go/fluent"
	"github.com/fluent-go/fluent/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "fluent example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	themes := fluent.NewThemeManager(false)
	surface := fluent.NewSurface(renderer,
		fluent.WithThemeProvider(themes),
		fluent.WithTextureFactory(renderer),
	)
	defer surface.Destroy()

	inputAdapter := opengl.NewGLFWInputAdapter(window, surface.Input())

	// A plain combo box.
	combo := fluent.NewComboBox()
	combo.AddItems("Coffee", "Tea", "Milk", "Orange Juice", "Water", "Cola", "Lemonade")
	combo.SetMaxVisibleItems(5)
	combo.SetRect(fluent.Rect{X: 40, Y: 60, W: 220, H: 33})
	combo.OnCurrentTextChanged = func(text string) {
		fmt.Println("drink:", text)
	}
	surface.Add(combo)

	// An editable one; Enter on unknown text appends it.
	editable := fluent.NewEditableComboBox()
	editable.AddItems("Small", "Medium", "Large")
	editable.SetPlaceholderText("Pick a size")
	editable.SetRect(fluent.Rect{X: 40, Y: 120, W: 220, H: 33})
	surface.Add(editable)

	darkMode := fluent.NewToggleButton("Dark mode")
	darkMode.SetRect(fluent.Rect{X: 40, Y: 180, W: 220, H: 33})
	darkMode.OnToggled = func(checked bool) {
		themes.SetDark(checked)
	}
	surface.Add(darkMode)

	for !window.ShouldClose() {
		glfw.PollEvents()
		inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		if themes.IsDark() {
			gl.ClearColor(0.13, 0.13, 0.13, 1.0)
		} else {
			gl.ClearColor(0.95, 0.95, 0.96, 1.0)
		}
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := fluent.Vec2{X: float32(w), Y: float32(h)}
		if err := surface.Frame(displaySize, 1.0/60.0); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
