package renderer

import "github.com/achilleasa/trirender/types"

type Options struct {
	// Advance the clear color every frame.
	AnimatedColor bool

	// Initial clear color and per-frame random walk step.
	ClearColor types.Vec3
	ColorStep  float32

	// Stop after this many frames; 0 means run until the surface closes.
	MaxFrames uint64
}
