// Package gfxtest provides an in-memory gfx.Device that records the calls it
// receives. It is meant for tests that need to exercise pipeline and frame
// logic without a rendering context.
package gfxtest

import (
	"strings"

	"github.com/achilleasa/trirender/gfx"
	"github.com/achilleasa/trirender/types"
)

// Default diagnostics emitted by the fake compiler and linker.
const (
	DefaultCompileLog = "0:1(1): error: syntax error, unexpected end of file, expecting '{'"
	DefaultLinkLog    = "error: linking with uncompiled/unspecialized shader"
)

// A recorded draw call.
type Draw struct {
	Program uint32
	VAO     uint32
	First   int32
	Count   int32

	// Number of vertices in the buffer bound to VAO when the draw was issued.
	Available int
}

// Returns true if the draw reads past the uploaded data.
func (d Draw) OutOfRange() bool {
	return d.First < 0 || int(d.First+d.Count) > d.Available
}

type shader struct {
	kind     gfx.StageKind
	source   string
	compiled bool
}

type program struct {
	attached map[uint32]bool
	linked   bool
}

// Device is a deterministic gfx.Device. A shader compiles if its source
// contains "void main". A program links if at least one shader is attached
// and every attached shader compiled.
type Device struct {
	// Failure injection.
	FailAllocations bool
	FailLink        bool
	CompileLog      string
	LinkLog         string

	// Recorded state.
	Calls          []string
	CurrentProgram uint32
	ClearColors    []types.Vec4
	Draws          []Draw
	Viewports      [][2]int32
	Attributes     []gfx.Attribute
	Uploads        int

	next     uint32
	boundVAO uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32]int
	vaos     map[uint32]uint32
}

// Create a new fake device.
func New() *Device {
	return &Device{
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
		buffers:  make(map[uint32]int),
		vaos:     make(map[uint32]uint32),
	}
}

// Number of native objects that were created and not yet deleted.
func (d *Device) LiveObjects() int {
	return len(d.shaders) + len(d.programs) + len(d.buffers) + len(d.vaos)
}

// Number of recorded invocations of the named method.
func (d *Device) CallCount(name string) int {
	count := 0
	for _, call := range d.Calls {
		if call == name {
			count++
		}
	}
	return count
}

// Returns the shader ids attached to a program.
func (d *Device) Attached(prog uint32) []uint32 {
	p, ok := d.programs[prog]
	if !ok {
		return nil
	}
	out := make([]uint32, 0, len(p.attached))
	for id := range p.attached {
		out = append(out, id)
	}
	return out
}

func (d *Device) record(name string) {
	d.Calls = append(d.Calls, name)
}

func (d *Device) alloc() uint32 {
	if d.FailAllocations {
		return 0
	}
	d.next++
	return d.next
}

func (d *Device) CreateShader(kind gfx.StageKind) uint32 {
	d.record("CreateShader")
	id := d.alloc()
	if id != 0 {
		d.shaders[id] = &shader{kind: kind}
	}
	return id
}

func (d *Device) ShaderSource(id uint32, source string) {
	d.record("ShaderSource")
	if s, ok := d.shaders[id]; ok {
		s.source = source
	}
}

func (d *Device) CompileShader(id uint32) {
	d.record("CompileShader")
	if s, ok := d.shaders[id]; ok {
		s.compiled = strings.Contains(s.source, "void main")
	}
}

func (d *Device) ShaderCompiled(id uint32) bool {
	s, ok := d.shaders[id]
	return ok && s.compiled
}

func (d *Device) ShaderInfoLog(id uint32, maxLen int) string {
	if s, ok := d.shaders[id]; !ok || s.compiled {
		return ""
	}
	infoLog := d.CompileLog
	if infoLog == "" {
		infoLog = DefaultCompileLog
	}
	return truncate(infoLog, maxLen)
}

func (d *Device) DeleteShader(id uint32) {
	d.record("DeleteShader")
	delete(d.shaders, id)
}

func (d *Device) CreateProgram() uint32 {
	d.record("CreateProgram")
	id := d.alloc()
	if id != 0 {
		d.programs[id] = &program{attached: make(map[uint32]bool)}
	}
	return id
}

func (d *Device) AttachShader(prog, id uint32) {
	d.record("AttachShader")
	if p, ok := d.programs[prog]; ok {
		p.attached[id] = true
	}
}

func (d *Device) DetachShader(prog, id uint32) {
	d.record("DetachShader")
	if p, ok := d.programs[prog]; ok {
		delete(p.attached, id)
	}
}

func (d *Device) LinkProgram(prog uint32) {
	d.record("LinkProgram")
	p, ok := d.programs[prog]
	if !ok {
		return
	}

	p.linked = !d.FailLink && len(p.attached) > 0
	for id := range p.attached {
		if s, ok := d.shaders[id]; !ok || !s.compiled {
			p.linked = false
		}
	}
}

func (d *Device) ProgramLinked(prog uint32) bool {
	p, ok := d.programs[prog]
	return ok && p.linked
}

func (d *Device) ProgramInfoLog(prog uint32, maxLen int) string {
	if p, ok := d.programs[prog]; !ok || p.linked {
		return ""
	}
	infoLog := d.LinkLog
	if infoLog == "" {
		infoLog = DefaultLinkLog
	}
	return truncate(infoLog, maxLen)
}

func (d *Device) UseProgram(prog uint32) {
	d.record("UseProgram")
	d.CurrentProgram = prog
}

func (d *Device) DeleteProgram(prog uint32) {
	d.record("DeleteProgram")
	delete(d.programs, prog)
	if d.CurrentProgram == prog {
		d.CurrentProgram = 0
	}
}

func (d *Device) CreateVertexArray() uint32 {
	d.record("CreateVertexArray")
	id := d.alloc()
	if id != 0 {
		d.vaos[id] = 0
	}
	return id
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray")
	d.boundVAO = vao
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray")
	delete(d.vaos, vao)
	if d.boundVAO == vao {
		d.boundVAO = 0
	}
}

func (d *Device) CreateBuffer() uint32 {
	d.record("CreateBuffer")
	id := d.alloc()
	if id != 0 {
		d.buffers[id] = 0
	}
	return id
}

func (d *Device) UploadStaticVertices(buffer uint32, data []float32) {
	d.record("UploadStaticVertices")
	d.Uploads++
	if _, ok := d.buffers[buffer]; ok {
		d.buffers[buffer] = len(data)
	}
	if _, ok := d.vaos[d.boundVAO]; ok {
		d.vaos[d.boundVAO] = buffer
	}
}

func (d *Device) EnableAttribute(attr gfx.Attribute) {
	d.record("EnableAttribute")
	d.Attributes = append(d.Attributes, attr)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	d.record("DeleteBuffer")
	delete(d.buffers, buffer)
}

func (d *Device) Viewport(width, height int32) {
	d.record("Viewport")
	d.Viewports = append(d.Viewports, [2]int32{width, height})
}

func (d *Device) Clear(color types.Vec4) {
	d.record("Clear")
	d.ClearColors = append(d.ClearColors, color)
}

func (d *Device) DrawTriangles(first, count int32) {
	d.record("DrawTriangles")

	available := 0
	if vbo, ok := d.vaos[d.boundVAO]; ok {
		// 3 floats per position
		available = d.buffers[vbo] / 3
	}
	d.Draws = append(d.Draws, Draw{
		Program:   d.CurrentProgram,
		VAO:       d.boundVAO,
		First:     first,
		Count:     count,
		Available: available,
	})
}

func truncate(s string, maxLen int) string {
	if maxLen >= 0 && len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

var _ gfx.Device = (*Device)(nil)
