package gfx

// A successfully linked shader program.
type Pipeline struct {
	device  Device
	program uint32
	stages  map[StageKind]bool
}

// Link the supplied stages into a program. Stages are detached after a
// successful link; they remain owned by the caller, who is expected to
// Release them irrespective of the link outcome.
//
// A pipeline without both vertex and fragment stages is valid but CanDraw
// reports false for it.
func Link(dev Device, maxLog int, stages ...*Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}

	kinds := make(map[StageKind]bool, len(stages))
	for _, stage := range stages {
		if stage == nil || stage.handle == 0 {
			return nil, ErrInvalidStage
		}
		if kinds[stage.kind] {
			return nil, ErrDuplicateStage
		}
		kinds[stage.kind] = true
	}

	program := dev.CreateProgram()
	if program == 0 {
		return nil, ErrObjectAllocation
	}

	for _, stage := range stages {
		dev.AttachShader(program, stage.handle)
	}
	dev.LinkProgram(program)

	if !dev.ProgramLinked(program) {
		infoLog := boundedLog(dev.ProgramInfoLog(program, LogLimit(maxLog)), maxLog)
		dev.DeleteProgram(program)
		return nil, &LinkError{Log: infoLog}
	}

	for _, stage := range stages {
		dev.DetachShader(program, stage.handle)
	}

	return &Pipeline{
		device:  dev,
		program: program,
		stages:  kinds,
	}, nil
}

// Returns true if the pipeline links both a vertex and a fragment stage and
// has not been released.
func (p *Pipeline) CanDraw() bool {
	return p != nil && p.program != 0 && p.stages[VertexStage] && p.stages[FragmentStage]
}

// Returns true if the pipeline includes a stage of the given kind.
func (p *Pipeline) HasStage(kind StageKind) bool {
	return p != nil && p.stages[kind]
}

// Bind the program for subsequent draws. Returns false without touching the
// device if the pipeline has been released.
func (p *Pipeline) Use() bool {
	if p == nil || p.program == 0 {
		return false
	}
	p.device.UseProgram(p.program)
	return true
}

// The native program handle; 0 once released.
func (p *Pipeline) Handle() uint32 {
	if p == nil {
		return 0
	}
	return p.program
}

// Free the native program object.
func (p *Pipeline) Release() {
	if p != nil && p.program != 0 {
		p.device.DeleteProgram(p.program)
		p.program = 0
	}
}
