package cmd

import (
	"github.com/achilleasa/trirender/gfx/opengl"
	"github.com/achilleasa/trirender/window"
	"github.com/urfave/cli"
)

// Compile and link the configured shaders in a hidden window and report the
// outcome of each step.
func Check(ctx *cli.Context) error {
	cfg, err := prepare(ctx)
	if err != nil {
		return err
	}

	win, err := window.Open(window.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		Hidden: true,
	})
	if err != nil {
		return cli.NewExitError(err.Error(), exitFatal)
	}
	defer win.Close()

	dev, err := opengl.New()
	if err != nil {
		return cli.NewExitError(err.Error(), exitFatal)
	}

	pipeline, reports := buildPipeline(dev, cfg)
	pipeline.Release()

	logger.Noticef("shader check\n%s", stageReportTable(reports))
	for _, r := range reports {
		if r.failed() {
			return cli.NewExitError("shader check failed", exitCheckFailed)
		}
	}
	return nil
}
