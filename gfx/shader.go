package gfx

import (
	"fmt"
	"strings"

	"github.com/achilleasa/trirender/asset"
)

const (
	// Default upper bound, in bytes, for compiler and linker diagnostics.
	DefaultMaxInfoLog = 512

	// Hard upper bound for caller-selected diagnostic lengths.
	MaxInfoLogLimit = 64 * 1024
)

// Shader program text for a single stage. A StageSource can only be obtained
// through NewStageSource or LoadStageSource, so holding one implies that the
// text was successfully read and is not empty.
type StageSource struct {
	kind StageKind
	text string
}

// Create a stage source from text.
func NewStageSource(kind StageKind, text string) (StageSource, error) {
	if kind != VertexStage && kind != FragmentStage {
		return StageSource{}, ErrUnknownStage
	}
	if strings.TrimSpace(text) == "" {
		return StageSource{}, fmt.Errorf("%w (%s stage)", ErrEmptySource, kind)
	}
	return StageSource{kind: kind, text: text}, nil
}

// Load a stage source from a local path or URL. If relTo is not nil, relative
// paths are resolved against its location.
func LoadStageSource(kind StageKind, path string, relTo *asset.Resource) (StageSource, error) {
	text, err := asset.ReadTextRelTo(path, relTo)
	if err != nil {
		return StageSource{}, err
	}
	return NewStageSource(kind, text)
}

// The stage kind.
func (s StageSource) Kind() StageKind {
	return s.kind
}

// The shader text.
func (s StageSource) Text() string {
	return s.text
}

// A successfully compiled shader stage.
type Stage struct {
	device Device
	handle uint32
	kind   StageKind
}

// The stage kind.
func (s *Stage) Kind() StageKind {
	return s.kind
}

// The native shader handle; 0 once released.
func (s *Stage) Handle() uint32 {
	if s == nil {
		return 0
	}
	return s.handle
}

// Free the native shader object. Safe to call multiple times and after the
// stage has been linked into a pipeline.
func (s *Stage) Release() {
	if s != nil && s.handle != 0 {
		s.device.DeleteShader(s.handle)
		s.handle = 0
	}
}

// Compile a single shader stage. On failure a *CompileError carrying at most
// maxLog bytes of the native compiler log is returned and no GPU object is
// retained.
func Compile(dev Device, src StageSource, maxLog int) (*Stage, error) {
	if src.text == "" {
		return nil, ErrEmptySource
	}

	handle := dev.CreateShader(src.kind)
	if handle == 0 {
		return nil, fmt.Errorf("%w (%s stage)", ErrObjectAllocation, src.kind)
	}

	dev.ShaderSource(handle, src.text)
	dev.CompileShader(handle)
	if !dev.ShaderCompiled(handle) {
		infoLog := boundedLog(dev.ShaderInfoLog(handle, LogLimit(maxLog)), maxLog)
		dev.DeleteShader(handle)
		return nil, &CompileError{Stage: src.kind, Log: infoLog}
	}

	return &Stage{
		device: dev,
		handle: handle,
		kind:   src.kind,
	}, nil
}

// Normalize a caller supplied diagnostic bound.
func LogLimit(maxLog int) int {
	if maxLog <= 0 {
		return DefaultMaxInfoLog
	}
	if maxLog > MaxInfoLogLimit {
		return MaxInfoLogLimit
	}
	return maxLog
}

// Truncate a native log to the bound and strip trailing NULs and whitespace.
func boundedLog(infoLog string, maxLog int) string {
	limit := LogLimit(maxLog)
	if len(infoLog) > limit {
		infoLog = infoLog[:limit]
	}
	return strings.TrimRight(infoLog, "\x00 \t\r\n")
}
