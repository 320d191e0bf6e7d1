package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/achilleasa/trirender/cmd"
	"github.com/urfave/cli"
)

// GLFW and the OpenGL context must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "trirender"
	app.Usage = "render a shaded triangle over an optionally animated background"
	app.Version = "0.0.1"
	// Run flags are also accepted without the run command, which is the
	// default action.
	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a YAML file or URL ('-' reads stdin)",
		},
	}, cmd.RunFlags()...)
	app.Action = cmd.Run
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open a window and render until it is closed",
			Description: `
Load the vertex and fragment shaders, compile and link them into a program and
render a static triangle every frame. Shader load, compile and link errors are
logged but do not stop the render loop; the window is then only cleared.

Press escape or close the window to exit.`,
			Flags:  cmd.RunFlags(),
			Action: cmd.Run,
		},
		{
			Name:  "check",
			Usage: "compile and link the shaders and report diagnostics",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "vertex",
					Usage: "path or URL of the vertex shader source",
				},
				cli.StringFlag{
					Name:  "fragment",
					Usage: "path or URL of the fragment shader source",
				},
				cli.IntFlag{
					Name:  "max-log",
					Value: 512,
					Usage: "max length in bytes of shader compiler and linker diagnostics",
				},
			},
			Action: cmd.Check,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
