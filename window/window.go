// Package window wraps a GLFW window and its OpenGL context.
package window

import (
	"fmt"
	"sync/atomic"

	"github.com/achilleasa/trirender/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var logger = log.New("window")

// Default window dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type Options struct {
	Width  int
	Height int
	Title  string

	// Create the window without showing it.
	Hidden bool
}

// An OpenGL 3.3 core-profile window. Apart from RequestClose, methods must be
// called from the thread that opened the window (the main thread, locked
// with runtime.LockOSThread).
type Window struct {
	handle       *glfw.Window
	closeRequest int32
	onResize     func(width, height int)
}

// Initialize glfw, open a window and make its context current.
func Open(opts Options) (*Window, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	handle, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: could not create opengl window: %s", err.Error())
	}
	handle.MakeContextCurrent()

	w := &Window{handle: handle}
	handle.SetFramebufferSizeCallback(w.onFramebufferSize)
	logger.Debugf("opened %dx%d window %q", opts.Width, opts.Height, opts.Title)

	return w, nil
}

// Register a callback for framebuffer size changes.
func (w *Window) OnFramebufferResize(fn func(width, height int)) {
	w.onResize = fn
}

// Returns the current framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.handle.GetFramebufferSize()
}

func (w *Window) onFramebufferSize(_ *glfw.Window, width, height int) {
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// Ask the window to close at the next ProcessInput call. Safe to call from
// any goroutine.
func (w *Window) RequestClose() {
	atomic.StoreInt32(&w.closeRequest, 1)
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

// Close the window if escape is pressed or a close was requested.
func (w *Window) ProcessInput() {
	if w.handle.GetKey(glfw.KeyEscape) == glfw.Press || atomic.LoadInt32(&w.closeRequest) == 1 {
		w.handle.SetShouldClose(true)
	}
}

func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy the window and terminate glfw.
func (w *Window) Close() {
	if w.handle != nil {
		w.handle.Destroy()
		w.handle = nil
		glfw.Terminate()
	}
}
