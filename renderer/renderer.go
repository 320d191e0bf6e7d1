package renderer

type Renderer interface {
	// Run the frame loop until the surface requests close or the frame
	// limit is reached.
	Render() error

	// Run a single frame iteration.
	RenderFrame()

	// Update the viewport to match a new framebuffer size.
	Resize(width, height int)

	// Release the pipeline and geometry owned by the renderer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// Surface is the windowing collaborator that owns the "should continue" flag
// and presents frames.
type Surface interface {
	// Returns true once the window has been asked to close.
	ShouldClose() bool

	// Poll input state and request close if the user asked to quit.
	ProcessInput()

	// Present the rendered frame.
	SwapBuffers()

	// Deliver pending window events.
	PollEvents()
}
