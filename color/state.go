// Package color evolves a clear color through a bounded random walk.
package color

import (
	"math/rand"
	"time"

	"github.com/achilleasa/trirender/types"
)

// Default per-frame step magnitude.
const DefaultStep float32 = 0.01

// Default starting color.
var DefaultColor = types.XYZ(0.5, 0.5, 0.5)

// A Source draws uniformly distributed values from [min, max].
type Source interface {
	Uniform(min, max float32) float32
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(min, max float32) float32

func (f SourceFunc) Uniform(min, max float32) float32 {
	return f(min, max)
}

// Zero is a zero-magnitude source; advancing with it leaves the color intact.
var Zero Source = SourceFunc(func(_, _ float32) float32 { return 0 })

type randSource struct {
	rng *rand.Rand
}

// Create a source seeded once from the wall clock. Sequences are not
// reproducible across runs.
func NewRandomSource() Source {
	return NewSeededSource(time.Now().UnixNano())
}

// Create a deterministic source for the given seed.
func NewSeededSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Uniform(min, max float32) float32 {
	return min + s.rng.Float32()*(max-min)
}

// State owns a color in [0, 1]^3 and advances it by a bounded random walk.
// It is not safe for concurrent use.
type State struct {
	color  types.Vec3
	step   float32
	source Source
}

// Create a new color state. The initial color is clamped to [0, 1]^3. A
// non-positive step selects DefaultStep and a nil source selects
// NewRandomSource.
func New(initial types.Vec3, step float32, source Source) *State {
	if step <= 0 {
		step = DefaultStep
	}
	if source == nil {
		source = NewRandomSource()
	}
	return &State{
		color:  initial.Clamp01(),
		step:   step,
		source: source,
	}
}

// The current color.
func (s *State) Color() types.Vec3 {
	return s.color
}

// The walk step magnitude.
func (s *State) StepSize() float32 {
	return s.step
}

// Advance each channel independently by a uniform draw from [-step, +step]
// and return the new color.
func (s *State) Advance() types.Vec3 {
	var delta types.Vec3
	for i := range delta {
		delta[i] = s.source.Uniform(-s.step, s.step)
	}
	s.color = Step(s.color, delta)
	return s.color
}

// Apply delta to current and saturate every channel to [0, 1].
func Step(current, delta types.Vec3) types.Vec3 {
	return current.Add(delta).Clamp01()
}
