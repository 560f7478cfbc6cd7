package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fluent-go/fluent"
)

// GLFWInputAdapter feeds GLFW window events into a fluent.InputState,
// typically the one owned by the surface.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *fluent.InputState
}

// NewGLFWInputAdapter installs the GLFW callbacks on the window and
// routes them into input.
func NewGLFWInputAdapter(window *glfw.Window, input *fluent.InputState) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  input,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update refreshes the polled state (mouse position, modifiers). Call
// after glfw.PollEvents, before the surface frame.
func (a *GLFWInputAdapter) Update() *fluent.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the input state the adapter writes to.
func (a *GLFWInputAdapter) Input() *fluent.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	mapped := glfwKeyToFluent(key)
	if mapped == fluent.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(mapped, true)
	case glfw.Release:
		a.input.SetKey(mapped, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	mapped := glfwMouseButtonToFluent(button)
	if mapped < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(mapped, true)
	case glfw.Release:
		a.input.SetMouseButton(mapped, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToFluent maps the keys the widget layer handles; everything
// else reaches widgets as text through the char callback.
func glfwKeyToFluent(key glfw.Key) fluent.Key {
	switch key {
	case glfw.KeyTab:
		return fluent.KeyTab
	case glfw.KeyLeft:
		return fluent.KeyLeft
	case glfw.KeyRight:
		return fluent.KeyRight
	case glfw.KeyUp:
		return fluent.KeyUp
	case glfw.KeyDown:
		return fluent.KeyDown
	case glfw.KeyPageUp:
		return fluent.KeyPageUp
	case glfw.KeyPageDown:
		return fluent.KeyPageDown
	case glfw.KeyHome:
		return fluent.KeyHome
	case glfw.KeyEnd:
		return fluent.KeyEnd
	case glfw.KeyDelete:
		return fluent.KeyDelete
	case glfw.KeyBackspace:
		return fluent.KeyBackspace
	case glfw.KeySpace:
		return fluent.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return fluent.KeyEnter
	case glfw.KeyEscape:
		return fluent.KeyEscape
	default:
		return fluent.KeyNone
	}
}

// glfwMouseButtonToFluent maps GLFW mouse buttons, -1 for unmapped.
func glfwMouseButtonToFluent(button glfw.MouseButton) fluent.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return fluent.MouseButtonLeft
	case glfw.MouseButtonRight:
		return fluent.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return fluent.MouseButtonMiddle
	default:
		return -1
	}
}
