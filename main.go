package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/achilleasa/polaris-cpu/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "polaris-cpu"
	app.Usage = "render scenes using CPU path tracing"
	app.Version = "0.1.0"
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
			EnvVar: "POLARIS_LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a scene using a Monte Carlo path tracer. The samples for each pixel are
split between a pool of workers that each render the whole frame; the partial
frames are then averaged into the final image.

If no scene file is specified, a built-in demo scene is rendered. Scene files
may be text (.scene) or compiled (.zip) scenes and can also be fetched over
http(s). The output format (png or ppm) is selected by the file extension.`,
			ArgsUsage: "[scene_file]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "width",
					Value:  4096,
					Usage:  "frame width",
					EnvVar: "POLARIS_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Value:  2160,
					Usage:  "frame height",
					EnvVar: "POLARIS_HEIGHT",
				},
				cli.Float64Flag{
					Name:   "fov",
					Value:  80,
					Usage:  "horizontal camera field of view in degrees; overrides the scene value",
					EnvVar: "POLARIS_FOV",
				},
				cli.IntFlag{
					Name:   "bounces",
					Value:  12,
					Usage:  "max number of bounces per path",
					EnvVar: "POLARIS_BOUNCES",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  750,
					Usage:  "samples per pixel",
					EnvVar: "POLARIS_SPP",
				},
				cli.Float64Flag{
					Name:   "aa",
					Value:  1.0,
					Usage:  "anti-aliasing jitter strength",
					EnvVar: "POLARIS_AA",
				},
				cli.IntFlag{
					Name:   "workers, w",
					Value:  runtime.NumCPU(),
					Usage:  "number of render workers",
					EnvVar: "POLARIS_WORKERS",
				},
				cli.Float64Flag{
					Name:   "brightness",
					Value:  1.7,
					Usage:  "throughput multiplier applied at each bounce",
					EnvVar: "POLARIS_BRIGHTNESS",
				},
				cli.StringFlag{
					Name:   "sky-horizon",
					Value:  "1,1,1",
					Usage:  "sky color at the horizon (r,g,b); overrides the scene value",
					EnvVar: "POLARIS_SKY_HORIZON",
				},
				cli.StringFlag{
					Name:   "sky-zenith",
					Value:  "0.5,0.7,1",
					Usage:  "sky color at the zenith (r,g,b); overrides the scene value",
					EnvVar: "POLARIS_SKY_ZENITH",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  0,
					Usage:  "base random seed; 0 selects a time-based seed",
					EnvVar: "POLARIS_SEED",
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  "frame.png",
					Usage:  "image filename for the rendered frame",
					EnvVar: "POLARIS_OUT",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "compile",
			Usage: "compile text scene representation into a binary compressed format",
			Description: `
Parse one or more text scene files, validate them and write the scene
definitions to zip archives which can be supplied as an argument to the
render command.`,
			ArgsUsage: "scene_file1.scene scene_file2.scene ...",
			Action:    cmd.CompileScene,
		},
		{
			Name:      "export-default",
			Usage:     "write the built-in demo scene to a compiled zip file",
			ArgsUsage: "scene.zip",
			Action:    cmd.ExportDefaultScene,
		},
		{
			Name:      "info",
			Usage:     "display information about a scene",
			ArgsUsage: "[scene_file]",
			Action:    cmd.ShowSceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
