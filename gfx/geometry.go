package gfx

// Size in bytes of a float32 vertex component.
const float32Size = 4

// Components per vertex position.
const positionComponents = 3

// An ordered sequence of 3D positions and the attribute describing them.
type VertexLayout struct {
	positions []float32
	attribute Attribute
}

// Default position attribute: index 0, 3 tightly packed floats.
func PositionAttribute() Attribute {
	return Attribute{
		Index:      0,
		Components: positionComponents,
		Stride:     positionComponents * float32Size,
		Offset:     0,
		Normalized: false,
	}
}

// Create a layout from a copy of the given positions.
func NewVertexLayout(positions []float32) (VertexLayout, error) {
	if len(positions) == 0 || len(positions)%positionComponents != 0 {
		return VertexLayout{}, ErrInvalidVertexData
	}

	data := make([]float32, len(positions))
	copy(data, positions)
	return VertexLayout{
		positions: data,
		attribute: PositionAttribute(),
	}, nil
}

// The single triangle rendered by default.
func TriangleLayout() VertexLayout {
	layout, _ := NewVertexLayout([]float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.5, 0.5, 0.0,
	})
	return layout
}

// Number of vertices in the layout.
func (l VertexLayout) VertexCount() int {
	return len(l.positions) / positionComponents
}

// The attribute descriptor.
func (l VertexLayout) Attribute() Attribute {
	return l.attribute
}

// A copy of the position data.
func (l VertexLayout) Positions() []float32 {
	out := make([]float32, len(l.positions))
	copy(out, l.positions)
	return out
}

// Uploaded, immutable vertex data.
type Buffer struct {
	device      Device
	vao         uint32
	vbo         uint32
	vertexCount int
}

// Upload a vertex layout into a new vertex array and static-draw buffer.
func Upload(dev Device, layout VertexLayout) (*Buffer, error) {
	if layout.VertexCount() == 0 {
		return nil, ErrInvalidVertexData
	}

	b := &Buffer{device: dev, vertexCount: layout.VertexCount()}
	if b.vao = dev.CreateVertexArray(); b.vao == 0 {
		return nil, ErrBufferAllocation
	}
	if b.vbo = dev.CreateBuffer(); b.vbo == 0 {
		b.Release()
		return nil, ErrBufferAllocation
	}

	dev.BindVertexArray(b.vao)
	dev.UploadStaticVertices(b.vbo, layout.positions)
	dev.EnableAttribute(layout.attribute)

	return b, nil
}

// Number of uploaded vertices; 0 once released.
func (b *Buffer) VertexCount() int {
	if b == nil || b.vao == 0 {
		return 0
	}
	return b.vertexCount
}

// Draw count vertices starting at first as triangles.
func (b *Buffer) Draw(first, count int) error {
	if b == nil || b.vao == 0 {
		return ErrBufferReleased
	}
	if first < 0 || count < 0 || first > b.vertexCount || count > b.vertexCount-first {
		return ErrDrawOutOfRange
	}
	if count == 0 {
		return nil
	}

	b.device.BindVertexArray(b.vao)
	b.device.DrawTriangles(int32(first), int32(count))
	return nil
}

// Free the vertex array and buffer objects.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	if b.vbo != 0 {
		b.device.DeleteBuffer(b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		b.device.DeleteVertexArray(b.vao)
		b.vao = 0
	}
}
