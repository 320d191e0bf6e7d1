// Package gfx builds shader pipelines and static geometry on top of a
// minimal Device abstraction of the OpenGL entry points.
package gfx

import "github.com/achilleasa/trirender/types"

// The shader stage kinds supported by a pipeline.
type StageKind uint8

const (
	VertexStage StageKind = iota
	FragmentStage
)

// Implements Stringer.
func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Describes how a vertex attribute is sourced from the bound array buffer.
type Attribute struct {
	Index      uint32
	Components int32
	Stride     int32 // bytes between consecutive vertices
	Offset     int   // byte offset of the first component
	Normalized bool
}

// Device exposes the subset of GPU operations used for building pipelines
// and issuing draws. All methods must be invoked from the thread that owns
// the rendering context. Handles equal to 0 denote allocation failures.
type Device interface {
	CreateShader(kind StageKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32, maxLen int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, maxLen int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	CreateBuffer() uint32
	// Bind buffer as the array buffer and upload data with static-draw usage.
	UploadStaticVertices(buffer uint32, data []float32)
	// Configure and enable a vertex attribute for the bound vertex array.
	EnableAttribute(attr Attribute)
	DeleteBuffer(buffer uint32)

	Viewport(width, height int32)
	Clear(color types.Vec4)
	DrawTriangles(first, count int32)
}
