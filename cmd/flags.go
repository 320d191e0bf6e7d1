package cmd

import "github.com/urfave/cli"

// Flags accepted by the run command.
func RunFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "vertex",
			Usage: "path or URL of the vertex shader source",
		},
		cli.StringFlag{
			Name:  "fragment",
			Usage: "path or URL of the fragment shader source",
		},
		cli.BoolFlag{
			Name:  "animated-color",
			Usage: "animate the clear color with a bounded random walk",
		},
		cli.BoolFlag{
			Name:  "static-color",
			Usage: "keep the clear color fixed",
		},
		cli.Float64Flag{
			Name:  "step",
			Value: 0.01,
			Usage: "max per-frame change of each color channel",
		},
		cli.IntFlag{
			Name:  "width",
			Value: 800,
			Usage: "window width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 600,
			Usage: "window height",
		},
		cli.IntFlag{
			Name:  "frames",
			Value: 0,
			Usage: "stop after rendering this many frames (0 = until the window closes)",
		},
		cli.IntFlag{
			Name:  "max-log",
			Value: 512,
			Usage: "max length in bytes of shader compiler and linker diagnostics",
		},
		cli.BoolFlag{
			Name:  "stats",
			Usage: "display frame statistics on exit",
		},
	}
}
