// Package opengl implements gfx.Device on top of an OpenGL 3.3 core context.
package opengl

import (
	"fmt"
	"strings"

	"github.com/achilleasa/trirender/gfx"
	"github.com/achilleasa/trirender/types"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Size in bytes of a float32.
const float32Size = 4

// A gfx.Device backed by the OpenGL context that is current on the calling
// thread.
type Device struct{}

// Load the OpenGL function pointers for the current context. The context must
// be current on the calling thread.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: could not init opengl: %s", err.Error())
	}
	return &Device{}, nil
}

// Returns the vendor, renderer and version strings of the current context.
func (d *Device) Info() (vendor, renderer, version string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) CreateShader(kind gfx.StageKind) uint32 {
	switch kind {
	case gfx.VertexStage:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case gfx.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (d *Device) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ShaderInfoLog(shader uint32, maxLen int) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	bufLen := clampLogLen(logLen, maxLen)
	if bufLen == 0 {
		return ""
	}

	infoLog := strings.Repeat("\x00", int(bufLen))
	gl.GetShaderInfoLog(shader, bufLen, nil, gl.Str(infoLog))
	return infoLog
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ProgramInfoLog(program uint32, maxLen int) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	bufLen := clampLogLen(logLen, maxLen)
	if bufLen == 0 {
		return ""
	}

	infoLog := strings.Repeat("\x00", int(bufLen))
	gl.GetProgramInfoLog(program, bufLen, nil, gl.Str(infoLog))
	return infoLog
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) CreateBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (d *Device) UploadStaticVertices(buffer uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*float32Size, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) EnableAttribute(attr gfx.Attribute) {
	gl.VertexAttribPointerWithOffset(attr.Index, attr.Components, gl.FLOAT, attr.Normalized, attr.Stride, uintptr(attr.Offset))
	gl.EnableVertexAttribArray(attr.Index)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (d *Device) Clear(color types.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// Size of the buffer for fetching an info log of logLen bytes (including the
// NUL terminator) while respecting the maxLen bound.
func clampLogLen(logLen int32, maxLen int) int32 {
	if logLen <= 0 {
		return 0
	}
	limit := int32(gfx.LogLimit(maxLen)) + 1
	if logLen > limit {
		return limit
	}
	return logLen
}

var _ gfx.Device = (*Device)(nil)
