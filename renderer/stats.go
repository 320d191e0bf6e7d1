package renderer

import (
	"time"

	"github.com/achilleasa/trirender/types"
)

type FrameStats struct {
	// Number of presented frames.
	Frames uint64

	// Frames that issued a draw call and frames that only cleared.
	Draws        uint64
	SkippedDraws uint64

	// Vertices submitted across all draws.
	Vertices uint64

	// Total and average time spent per frame.
	RenderTime   time.Duration
	AvgFrameTime time.Duration

	// Clear color of the last frame.
	ClearColor types.Vec3
}
