package renderer

import (
	"time"

	"github.com/achilleasa/trirender/color"
	"github.com/achilleasa/trirender/gfx"
	"github.com/achilleasa/trirender/log"
)

var logger = log.New("renderer")

// The frame loop. All methods must be invoked from the thread that owns the
// rendering context.
type frameLoop struct {
	surface  Surface
	device   gfx.Device
	pipeline *gfx.Pipeline
	geometry *gfx.Buffer
	color    *color.State
	options  Options

	closed bool
	stats  FrameStats
}

// Create a frame loop rendering geometry with pipeline on surface. Either
// pipeline or geometry may be nil, or the pipeline may not be drawable, in
// which case frames are cleared but nothing is drawn. The renderer takes
// ownership of pipeline and geometry and releases them on Close.
//
// If source is nil, the color walk is seeded from the wall clock.
func New(surface Surface, dev gfx.Device, pipeline *gfx.Pipeline, geometry *gfx.Buffer, source color.Source, opts Options) (Renderer, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if dev == nil {
		return nil, ErrNoDevice
	}

	switch {
	case pipeline == nil:
		logger.Warning("no shader pipeline; frames will only be cleared")
	case !pipeline.CanDraw():
		for _, kind := range []gfx.StageKind{gfx.VertexStage, gfx.FragmentStage} {
			if !pipeline.HasStage(kind) {
				logger.Warningf("shader pipeline has no %s stage; frames will only be cleared", kind)
			}
		}
	}
	if geometry == nil {
		logger.Warning("no geometry uploaded; frames will only be cleared")
	}

	state := color.New(opts.ClearColor, opts.ColorStep, source)
	if opts.AnimatedColor {
		logger.Infof("animating clear color from %v with step %.3f", state.Color(), state.StepSize())
	}

	return &frameLoop{
		surface:  surface,
		device:   dev,
		pipeline: pipeline,
		geometry: geometry,
		color:    state,
		options:  opts,
	}, nil
}

func (r *frameLoop) Render() error {
	if r.closed {
		return ErrClosed
	}

	for !r.surface.ShouldClose() {
		if r.options.MaxFrames != 0 && r.stats.Frames >= r.options.MaxFrames {
			logger.Infof("frame limit of %d reached", r.options.MaxFrames)
			break
		}
		r.RenderFrame()
	}

	return nil
}

func (r *frameLoop) RenderFrame() {
	tick := time.Now()

	// A close request is observed by Render at the next iteration; the
	// current frame always completes.
	r.surface.ProcessInput()

	if r.options.AnimatedColor {
		r.color.Advance()
	}
	clearColor := r.color.Color()
	r.device.Clear(clearColor.Vec4(1.0))

	if r.draw() {
		r.stats.Draws++
	} else {
		r.stats.SkippedDraws++
	}

	r.surface.SwapBuffers()
	r.surface.PollEvents()

	r.stats.Frames++
	r.stats.RenderTime += time.Since(tick)
	r.stats.ClearColor = clearColor
}

// Issue the triangle draw if a usable pipeline and geometry exist.
func (r *frameLoop) draw() bool {
	if r.closed || !r.pipeline.CanDraw() || r.geometry.VertexCount() == 0 {
		return false
	}
	if !r.pipeline.Use() {
		return false
	}

	count := r.geometry.VertexCount()
	if err := r.geometry.Draw(0, count); err != nil {
		logger.Errorf("draw failed: %s", err.Error())
		return false
	}
	r.stats.Vertices += uint64(count)
	return true
}

func (r *frameLoop) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	logger.Debugf("framebuffer resized to %dx%d", width, height)
	r.device.Viewport(int32(width), int32(height))
}

func (r *frameLoop) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.pipeline.Release()
	r.geometry.Release()
}

func (r *frameLoop) Stats() FrameStats {
	stats := r.stats
	if stats.Frames > 0 {
		stats.AvgFrameTime = stats.RenderTime / time.Duration(stats.Frames)
	}
	if stats.Frames == 0 {
		stats.ClearColor = r.color.Color()
	}
	return stats
}
