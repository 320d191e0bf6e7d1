package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/achilleasa/trirender/config"
	"github.com/achilleasa/trirender/gfx"
	"github.com/urfave/cli"
)

// Exit codes.
const (
	exitFatal       = -1
	exitCheckFailed = 2
)

// Load the config file selected by the global --config flag, or the defaults.
// A "-" path reads the document from standard input.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	switch path := ctx.GlobalString("config"); path {
	case "":
		return config.Default(), nil
	case "-":
		return config.LoadStream("stdin", os.Stdin)
	default:
		return config.Load(path)
	}
}

// Shader paths given on the command line are relative to the working
// directory, not to the config file.
func commandLinePath(path string) string {
	if path == "" || strings.Contains(path, "://") || filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Apply any explicitly set command flags on top of cfg.
func applyOverrides(ctx *cli.Context, cfg *config.Config) error {
	if ctx.IsSet("vertex") {
		cfg.Shaders.Vertex = commandLinePath(ctx.String("vertex"))
	}
	if ctx.IsSet("fragment") {
		cfg.Shaders.Fragment = commandLinePath(ctx.String("fragment"))
	}
	if ctx.IsSet("animated-color") && ctx.IsSet("static-color") {
		return errors.New("--animated-color and --static-color are mutually exclusive")
	}
	if ctx.IsSet("animated-color") {
		cfg.Color.Animated = ctx.Bool("animated-color")
	}
	if ctx.IsSet("static-color") {
		cfg.Color.Animated = !ctx.Bool("static-color")
	}
	if ctx.IsSet("step") {
		cfg.Color.Step = float32(ctx.Float64("step"))
	}
	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if ctx.IsSet("max-log") {
		cfg.Diagnostics.MaxLogLength = ctx.Int("max-log")
	}
	return cfg.Validate()
}

// Outcome of one pipeline construction step.
type stageReport struct {
	Name       string
	Source     string
	Status     string
	Diagnostic string
}

func (r stageReport) failed() bool {
	return r.Status != "compiled" && r.Status != "linked"
}

// Load, compile and link the configured shaders. Failures are logged and
// reported but never fatal: a nil pipeline is returned instead. Compiled
// stages are always released before returning.
func buildPipeline(dev gfx.Device, cfg *config.Config) (*gfx.Pipeline, []stageReport) {
	maxLog := cfg.Diagnostics.MaxLogLength
	sources := []struct {
		kind gfx.StageKind
		path string
	}{
		{gfx.VertexStage, cfg.Shaders.Vertex},
		{gfx.FragmentStage, cfg.Shaders.Fragment},
	}

	var (
		reports []stageReport
		stages  []*gfx.Stage
		failed  bool
	)
	defer func() {
		for _, stage := range stages {
			stage.Release()
		}
	}()

	for _, s := range sources {
		report := stageReport{Name: s.kind.String(), Source: s.path}

		src, err := gfx.LoadStageSource(s.kind, s.path, cfg.Origin())
		if err != nil {
			logger.Errorf("could not load %s shader: %s", s.kind, err.Error())
			report.Status = "unavailable"
			report.Diagnostic = err.Error()
			reports = append(reports, report)
			failed = true
			continue
		}

		stage, err := gfx.Compile(dev, src, maxLog)
		if err != nil {
			logger.Error(err.Error())
			report.Status = "compile failed"
			report.Diagnostic = err.Error()
			var compileErr *gfx.CompileError
			if errors.As(err, &compileErr) {
				report.Diagnostic = compileErr.Log
			}
			reports = append(reports, report)
			failed = true
			continue
		}

		logger.Debugf("compiled %s shader from %s", s.kind, s.path)
		report.Status = "compiled"
		reports = append(reports, report)
		stages = append(stages, stage)
	}

	program := stageReport{Name: "program"}
	if failed {
		program.Status = "skipped"
		program.Diagnostic = "not linked due to shader errors"
		return nil, append(reports, program)
	}

	pipeline, err := gfx.Link(dev, maxLog, stages...)
	if err != nil {
		logger.Error(err.Error())
		program.Status = "link failed"
		program.Diagnostic = err.Error()
		var linkErr *gfx.LinkError
		if errors.As(err, &linkErr) {
			program.Diagnostic = linkErr.Log
		}
		return nil, append(reports, program)
	}

	logger.Info("shader program linked")
	program.Status = "linked"
	return pipeline, append(reports, program)
}
