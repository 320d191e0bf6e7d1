package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/achilleasa/trirender/config"
	"github.com/achilleasa/trirender/gfx"
	"github.com/achilleasa/trirender/gfx/opengl"
	"github.com/achilleasa/trirender/renderer"
	"github.com/achilleasa/trirender/window"
	"github.com/urfave/cli"
)

// Load configuration and apply command overrides. Errors are fatal.
func prepare(ctx *cli.Context) (*config.Config, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		setupLogging(ctx, nil)
		return nil, cli.NewExitError(err.Error(), exitFatal)
	}
	setupLogging(ctx, cfg)

	if err = applyOverrides(ctx, cfg); err != nil {
		return nil, cli.NewExitError(err.Error(), exitFatal)
	}
	return cfg, nil
}

// Open a window and render the configured triangle until it is closed.
func Run(ctx *cli.Context) error {
	cfg, err := prepare(ctx)
	if err != nil {
		return err
	}

	win, err := window.Open(window.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
	})
	if err != nil {
		return cli.NewExitError(err.Error(), exitFatal)
	}
	defer win.Close()

	dev, err := opengl.New()
	if err != nil {
		return cli.NewExitError(err.Error(), exitFatal)
	}
	vendor, rendererName, version := dev.Info()
	logger.Infof("opengl %s (%s, %s)", version, rendererName, vendor)

	// Shader problems degrade rendering but never abort the loop
	pipeline, _ := buildPipeline(dev, cfg)

	layout, err := cfg.VertexLayout()
	if err != nil {
		pipeline.Release()
		return cli.NewExitError(err.Error(), exitFatal)
	}
	geometry, err := gfx.Upload(dev, layout)
	if err != nil {
		pipeline.Release()
		return cli.NewExitError(err.Error(), exitFatal)
	}

	r, err := renderer.New(win, dev, pipeline, geometry, nil, renderer.Options{
		AnimatedColor: cfg.Color.Animated,
		ClearColor:    cfg.InitialColor(),
		ColorStep:     cfg.Color.Step,
		MaxFrames:     uint64(ctx.Int("frames")),
	})
	if err != nil {
		pipeline.Release()
		geometry.Release()
		return cli.NewExitError(err.Error(), exitFatal)
	}
	defer r.Close()

	r.Resize(win.FramebufferSize())
	win.OnFramebufferResize(r.Resize)

	stopSignals := closeOnSignal(win.RequestClose)
	defer stopSignals()

	logger.Noticef("rendering %d vertices (animated color: %t)", layout.VertexCount(), cfg.Color.Animated)
	if err = r.Render(); err != nil {
		return err
	}

	if ctx.Bool("stats") {
		displayFrameStats(r.Stats())
	}
	return nil
}

// Invoke closer on SIGINT or SIGTERM until the returned stop func is called.
func closeOnSignal(closer func()) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	stopWatch := watchSignals(sigCh, closer)
	return func() {
		signal.Stop(sigCh)
		stopWatch()
	}
}

// Invoke closer once when sigCh delivers. The returned stop func blocks until
// the watcher has exited.
func watchSignals(sigCh <-chan os.Signal, closer func()) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-sigCh:
			logger.Notice("interrupted; closing window")
			closer()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}
