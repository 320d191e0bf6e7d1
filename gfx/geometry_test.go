package gfx_test

import (
	"math"
	"testing"

	"github.com/achilleasa/trirender/gfx"
	"github.com/achilleasa/trirender/gfx/gfxtest"
)

func TestNewVertexLayout(t *testing.T) {
	specs := []struct {
		data     []float32
		expError error
		expCount int
	}{
		{nil, gfx.ErrInvalidVertexData, 0},
		{[]float32{1, 2}, gfx.ErrInvalidVertexData, 0},
		{[]float32{1, 2, 3, 4}, gfx.ErrInvalidVertexData, 0},
		{[]float32{1, 2, 3}, nil, 1},
		{make([]float32, 27), nil, 9},
	}

	for idx, s := range specs {
		layout, err := gfx.NewVertexLayout(s.data)
		if err != s.expError {
			t.Fatalf("[spec %d] expected error %v; got %v", idx, s.expError, err)
		}
		if layout.VertexCount() != s.expCount {
			t.Fatalf("[spec %d] expected %d vertices; got %d", idx, s.expCount, layout.VertexCount())
		}
	}
}

func TestVertexLayoutIsImmutable(t *testing.T) {
	data := []float32{1, 2, 3}
	layout, err := gfx.NewVertexLayout(data)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 42
	positions := layout.Positions()
	positions[1] = 42

	if got := layout.Positions(); got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected layout to keep its own copy of the data; got %v", got)
	}
}

func TestTriangleLayout(t *testing.T) {
	layout := gfx.TriangleLayout()
	if layout.VertexCount() != 3 {
		t.Fatalf("expected 3 vertices; got %d", layout.VertexCount())
	}

	expAttr := gfx.Attribute{Index: 0, Components: 3, Stride: 12, Offset: 0, Normalized: false}
	if layout.Attribute() != expAttr {
		t.Fatalf("expected attribute %+v; got %+v", expAttr, layout.Attribute())
	}

	expData := []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0.5, 0.5, 0}
	for i, v := range layout.Positions() {
		if v != expData[i] {
			t.Fatalf("[component %d] expected %f; got %f", i, expData[i], v)
		}
	}
}

func TestUpload(t *testing.T) {
	dev := gfxtest.New()
	buf, err := gfx.Upload(dev, gfx.TriangleLayout())
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Release()

	if buf.VertexCount() != 3 {
		t.Fatalf("expected 3 uploaded vertices; got %d", buf.VertexCount())
	}
	if dev.Uploads != 1 {
		t.Fatalf("expected exactly one upload; got %d", dev.Uploads)
	}
	if len(dev.Attributes) != 1 || dev.Attributes[0] != gfx.PositionAttribute() {
		t.Fatalf("expected position attribute to be enabled; got %+v", dev.Attributes)
	}

	if err = buf.Draw(0, 3); err != nil {
		t.Fatal(err)
	}
	if len(dev.Draws) != 1 || dev.Draws[0].Count != 3 || dev.Draws[0].OutOfRange() {
		t.Fatalf("expected one in-range draw of 3 vertices; got %+v", dev.Draws)
	}
}

func TestUploadRejectsEmptyLayout(t *testing.T) {
	dev := gfxtest.New()
	if _, err := gfx.Upload(dev, gfx.VertexLayout{}); err != gfx.ErrInvalidVertexData {
		t.Fatalf("expected ErrInvalidVertexData; got %v", err)
	}
}

func TestUploadAllocationFailure(t *testing.T) {
	dev := gfxtest.New()
	dev.FailAllocations = true
	if _, err := gfx.Upload(dev, gfx.TriangleLayout()); err != gfx.ErrBufferAllocation {
		t.Fatalf("expected ErrBufferAllocation; got %v", err)
	}
	if dev.LiveObjects() != 0 {
		t.Fatalf("expected no live objects; got %d", dev.LiveObjects())
	}
}

func TestDrawNeverReadsOutsideUploadedRange(t *testing.T) {
	for k := 1; k <= 8; k++ {
		dev := gfxtest.New()
		layout, err := gfx.NewVertexLayout(make([]float32, 3*k))
		if err != nil {
			t.Fatal(err)
		}
		buf, err := gfx.Upload(dev, layout)
		if err != nil {
			t.Fatal(err)
		}

		for first := -1; first <= k+1; first++ {
			for count := -1; count <= k+1; count++ {
				err = buf.Draw(first, count)
				valid := first >= 0 && count >= 0 && first+count <= k
				if valid && err != nil {
					t.Fatalf("[k=%d] expected draw(%d, %d) to succeed; got %v", k, first, count, err)
				}
				if !valid && err != gfx.ErrDrawOutOfRange {
					t.Fatalf("[k=%d] expected draw(%d, %d) to be rejected; got %v", k, first, count, err)
				}
			}
		}

		for _, draw := range dev.Draws {
			if draw.OutOfRange() {
				t.Fatalf("[k=%d] draw %+v reads past %d uploaded vertices", k, draw, draw.Available)
			}
		}
		buf.Release()
	}
}

func TestDrawRejectsOverflowingRanges(t *testing.T) {
	dev := gfxtest.New()
	buf, err := gfx.Upload(dev, gfx.TriangleLayout())
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Release()

	specs := [][2]int{
		{2, math.MaxInt},
		{math.MaxInt, 1},
		{math.MaxInt, math.MaxInt},
		{1, math.MaxInt - 1},
	}
	for idx, s := range specs {
		if err = buf.Draw(s[0], s[1]); err != gfx.ErrDrawOutOfRange {
			t.Fatalf("[spec %d] expected draw(%d, %d) to be rejected; got %v", idx, s[0], s[1], err)
		}
	}
	if len(dev.Draws) != 0 {
		t.Fatalf("expected no draw calls to reach the device; got %+v", dev.Draws)
	}
}

func TestReleasedBuffer(t *testing.T) {
	dev := gfxtest.New()
	buf, err := gfx.Upload(dev, gfx.TriangleLayout())
	if err != nil {
		t.Fatal(err)
	}
	buf.Release()
	buf.Release()

	if dev.LiveObjects() != 0 {
		t.Fatalf("expected vertex array and buffer to be deleted; %d objects live", dev.LiveObjects())
	}
	if err = buf.Draw(0, 3); err != gfx.ErrBufferReleased {
		t.Fatalf("expected ErrBufferReleased; got %v", err)
	}
	if buf.VertexCount() != 0 {
		t.Fatalf("expected released buffer to report 0 vertices; got %d", buf.VertexCount())
	}
}
