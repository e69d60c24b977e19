package util

import (
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/voxel-outline/engine/glhf"
)

// GlApplication owns the window and drives the update/draw loop. All callbacks run on the main
// thread; Run must be called from inside mainthread.Run.
type GlApplication struct {
	Window             *glfw.Window
	TerminateFunc      func()
	UpdateFunc         func(elapsed float64)
	DrawFunc           func(elapsed float64)
	KeyHandler         func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	MousePosHandler    func(xpos float64, ypos float64)
	MouseButtonHandler func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)
	WindowWidth        int
	WindowHeight       int
	Title              string
	ClearColor         [3]float32
	ticks              uint64
	fpsSum             float64
}

func (a *GlApplication) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if a.KeyHandler != nil {
		a.KeyHandler(key, scancode, action, mods)
	}
}

func (a *GlApplication) MousePosCallback(w *glfw.Window, xpos float64, ypos float64) {
	if a.MousePosHandler != nil {
		a.MousePosHandler(xpos, ypos)
	}
}

func (a *GlApplication) MouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if a.MouseButtonHandler != nil {
		a.MouseButtonHandler(button, action, mods)
	}
}

// Attach installs the input callbacks on the window.
func (a *GlApplication) Attach() {
	a.Window.SetKeyCallback(a.KeyCallback)
	a.Window.SetCursorPosCallback(a.MousePosCallback)
	a.Window.SetMouseButtonCallback(a.MouseButtonCallback)
}

// Run drives the frame loop from the calling goroutine and executes every frame on the main
// thread, so GL work queued with mainthread.CallNonBlock runs between frames.
func (a *GlApplication) Run() {
	defer mainthread.Call(a.TerminateFunc)
	var previousTime float64
	mainthread.Call(func() { previousTime = glfw.GetTime() })
	running := true
	for running {
		mainthread.Call(func() {
			previousTime = a.frame(previousTime)
			running = !a.Window.ShouldClose()
		})
	}
}

func (a *GlApplication) frame(previousTime float64) float64 {
	gl.ClearColor(a.ClearColor[0], a.ClearColor[1], a.ClearColor[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	now := glfw.GetTime()
	elapsed := now - previousTime

	a.UpdateFunc(elapsed)
	a.DrawFunc(elapsed)

	if elapsed > 0 {
		a.fpsSum += 1.0 / elapsed
	}
	if a.ticks%60 == 59 {
		a.Window.SetTitle(fmt.Sprintf("%s - FPS: %.0f", a.Title, a.fpsSum/60))
		a.fpsSum = 0
	}

	a.Window.SwapBuffers()
	glfw.PollEvents()
	a.ticks++
	return now
}

// InitOpenGL creates a core profile 3.3 window, makes its context current and sets the default
// pipeline state (depth test on, back face culling).
func InitOpenGL(title string, width, height int) (*glfw.Window, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, err
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, err
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	glhf.Init()

	LogGlInfo("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DEPTH_TEST)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	return win, func() {
		glfw.Terminate()
	}, nil
}
