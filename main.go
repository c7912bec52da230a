package main

import (
	"os"

	"github.com/achilleasa/lumen/cmd"
	"github.com/achilleasa/lumen/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	frameFlags := []cli.Flag{
		cli.IntFlag{
			Name:   "width",
			Value:  512,
			Usage:  "frame width",
			EnvVar: "LUMEN_WIDTH",
		},
		cli.IntFlag{
			Name:   "height",
			Value:  512,
			Usage:  "frame height",
			EnvVar: "LUMEN_HEIGHT",
		},
		cli.IntFlag{
			Name:   "threads",
			Value:  1,
			Usage:  "number of horizontal bands rendered in parallel",
			EnvVar: "LUMEN_THREADS",
		},
		cli.StringFlag{
			Name:   "background",
			Value:  "resources/img/nature.jpg",
			Usage:  "background image path or http(s) url",
			EnvVar: "LUMEN_BACKGROUND",
		},
	}

	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render sphere scenes using ray casting"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level (debug, info, notice, warning, error)",
			EnvVar: "LUMEN_LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "render",
			Usage:  "render scene",
			Action: nil,
			Subcommands: []cli.Command{
				{
					Name:        "frame",
					Usage:       "render single frame",
					Description: `Render a single frame and save it as a png image.`,
					Flags: append([]cli.Flag{
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame",
						},
					}, frameFlags...),
					Action: cmd.RenderFrame,
				},
				{
					Name:  "interactive",
					Usage: "render interactive view of the scene",
					Description: `
Continuously render the scene into a resizable window. Press SPACE to pause,
+/- to change the number of render threads, TAB to toggle frame stats
logging and ESC to exit.`,
					Flags:  frameFlags,
					Action: cmd.RenderInteractive,
				},
			},
		},
		{
			Name:   "scene",
			Usage:  "display information about the built-in scene",
			Action: cmd.ShowSceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("lumen").Error(err)
		os.Exit(1)
	}
}
