package gfx

import (
	"errors"
	"fmt"
)

var (
	ErrNoStages          = errors.New("gfx: no shader stages supplied for linking")
	ErrInvalidStage      = errors.New("gfx: nil or released shader stage")
	ErrDuplicateStage    = errors.New("gfx: duplicate shader stage kind")
	ErrEmptySource       = errors.New("gfx: empty shader source")
	ErrUnknownStage      = errors.New("gfx: unknown shader stage kind")
	ErrInvalidVertexData = errors.New("gfx: vertex data length must be a positive multiple of 3")
	ErrBufferAllocation  = errors.New("gfx: could not allocate vertex buffer")
	ErrBufferReleased    = errors.New("gfx: vertex buffer has been released")
	ErrDrawOutOfRange    = errors.New("gfx: draw range exceeds uploaded vertices")
	ErrObjectAllocation  = errors.New("gfx: could not allocate shader object")
)

// Reported when a shader stage fails to compile. Log holds the bounded
// native compiler output.
type CompileError struct {
	Stage StageKind
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gfx: %s shader compilation failed:\n%s", e.Stage, e.Log)
}

// Reported when a program fails to link. Log holds the bounded native linker
// output.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gfx: shader program linking failed:\n%s", e.Log)
}
