package gfx_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/achilleasa/trirender/gfx"
	"github.com/achilleasa/trirender/gfx/gfxtest"
)

func compileStage(t *testing.T, dev gfx.Device, kind gfx.StageKind, text string) *gfx.Stage {
	stage, err := gfx.Compile(dev, mustSource(t, kind, text), 0)
	if err != nil {
		t.Fatal(err)
	}
	return stage
}

func TestLinkSuccess(t *testing.T) {
	dev := gfxtest.New()
	vs := compileStage(t, dev, gfx.VertexStage, passthroughVertex)
	defer vs.Release()
	fs := compileStage(t, dev, gfx.FragmentStage, constantFragment)
	defer fs.Release()

	pipeline, err := gfx.Link(dev, 0, vs, fs)
	if err != nil {
		t.Fatal(err)
	}
	defer pipeline.Release()

	if !pipeline.CanDraw() {
		t.Fatal("expected vertex+fragment pipeline to be drawable")
	}
	if !pipeline.HasStage(gfx.VertexStage) || !pipeline.HasStage(gfx.FragmentStage) {
		t.Fatal("expected pipeline to report both stages")
	}
	if attached := dev.Attached(pipeline.Handle()); len(attached) != 0 {
		t.Fatalf("expected stages to be detached after linking; got %v", attached)
	}
	if !pipeline.Use() || dev.CurrentProgram != pipeline.Handle() {
		t.Fatal("expected Use to bind the linked program")
	}
}

func TestLinkArgumentErrors(t *testing.T) {
	dev := gfxtest.New()
	vs := compileStage(t, dev, gfx.VertexStage, passthroughVertex)
	defer vs.Release()
	vs2 := compileStage(t, dev, gfx.VertexStage, passthroughVertex)
	defer vs2.Release()
	released := compileStage(t, dev, gfx.FragmentStage, constantFragment)
	released.Release()

	specs := []struct {
		stages   []*gfx.Stage
		expError error
	}{
		{nil, gfx.ErrNoStages},
		{[]*gfx.Stage{nil}, gfx.ErrInvalidStage},
		{[]*gfx.Stage{vs, released}, gfx.ErrInvalidStage},
		{[]*gfx.Stage{vs, vs2}, gfx.ErrDuplicateStage},
	}

	for idx, s := range specs {
		pipeline, err := gfx.Link(dev, 0, s.stages...)
		if err != s.expError {
			t.Fatalf("[spec %d] expected error %v; got %v", idx, s.expError, err)
		}
		if pipeline != nil {
			t.Fatalf("[spec %d] expected no pipeline on error", idx)
		}
	}

	if dev.CallCount("CreateProgram") != 0 {
		t.Fatal("expected argument errors to be detected before allocating a program")
	}
}

func TestLinkFailureIsReported(t *testing.T) {
	dev := gfxtest.New()
	dev.FailLink = true
	dev.LinkLog = strings.Repeat("L", 4096)

	vs := compileStage(t, dev, gfx.VertexStage, passthroughVertex)
	defer vs.Release()
	fs := compileStage(t, dev, gfx.FragmentStage, constantFragment)
	defer fs.Release()

	pipeline, err := gfx.Link(dev, 128, vs, fs)
	if pipeline != nil {
		t.Fatal("expected no pipeline on link failure")
	}

	var linkErr *gfx.LinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("expected a LinkError; got %v", err)
	}
	if len(linkErr.Log) != 128 {
		t.Fatalf("expected link log to be capped at 128 bytes; got %d", len(linkErr.Log))
	}

	// Only the two stage objects may remain; the program must be gone
	vs.Release()
	fs.Release()
	if dev.LiveObjects() != 0 {
		t.Fatalf("expected no live objects after releasing stages; got %d", dev.LiveObjects())
	}
}

func TestVertexOnlyPipelineIsNotDrawable(t *testing.T) {
	dev := gfxtest.New()
	vs := compileStage(t, dev, gfx.VertexStage, passthroughVertex)
	defer vs.Release()

	pipeline, err := gfx.Link(dev, 0, vs)
	if err != nil {
		var linkErr *gfx.LinkError
		if !errors.As(err, &linkErr) {
			t.Fatalf("expected either a pipeline or a LinkError; got %v", err)
		}
		return
	}
	defer pipeline.Release()

	if pipeline.CanDraw() {
		t.Fatal("expected vertex-only pipeline not to be drawable")
	}
	if pipeline.HasStage(gfx.FragmentStage) {
		t.Fatal("expected vertex-only pipeline to report no fragment stage")
	}
}

func TestReleasedPipeline(t *testing.T) {
	dev := gfxtest.New()
	vs := compileStage(t, dev, gfx.VertexStage, passthroughVertex)
	defer vs.Release()
	fs := compileStage(t, dev, gfx.FragmentStage, constantFragment)
	defer fs.Release()

	pipeline, err := gfx.Link(dev, 0, vs, fs)
	if err != nil {
		t.Fatal(err)
	}
	pipeline.Release()
	pipeline.Release()

	if dev.CallCount("DeleteProgram") != 1 {
		t.Fatalf("expected exactly one DeleteProgram call; got %d", dev.CallCount("DeleteProgram"))
	}
	if pipeline.CanDraw() {
		t.Fatal("expected released pipeline not to be drawable")
	}
	if pipeline.Use() {
		t.Fatal("expected Use on a released pipeline to be a no-op")
	}
	if dev.CallCount("UseProgram") != 0 {
		t.Fatal("expected no UseProgram call for a released pipeline")
	}

	var nilPipeline *gfx.Pipeline
	if nilPipeline.CanDraw() || nilPipeline.Use() || nilPipeline.Handle() != 0 {
		t.Fatal("expected nil pipeline to behave as an unusable pipeline")
	}
	nilPipeline.Release()
}
