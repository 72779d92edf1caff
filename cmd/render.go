package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	assetscene "github.com/achilleasa/polaris-cpu/asset/scene"
	"github.com/achilleasa/polaris-cpu/asset/scene/reader"
	"github.com/achilleasa/polaris-cpu/renderer"
	"github.com/achilleasa/polaris-cpu/tracer"
	"github.com/achilleasa/polaris-cpu/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	def, err := loadScene(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet("fov") {
		def.Camera.FOV = ctx.Float64("fov")
	}

	sky, err := skyFromFlags(ctx, def.SkyGradient())
	if err != nil {
		return err
	}

	sc, camera, err := def.Build(float64(opts.FrameW) / float64(opts.FrameH))
	if err != nil {
		return err
	}
	logger.Infof("camera: %s", camera)

	if ctx.Int("bounces") < 0 {
		return fmt.Errorf("invalid bounce count %d", ctx.Int("bounces"))
	}
	tr := tracer.New(uint32(ctx.Int("bounces")), sky, ctx.Float64("brightness"))
	r, err := renderer.New(sc, camera, tr, opts)
	if err != nil {
		return err
	}
	r.OnWorkerDone = func(workerID, done, total int) {
		logger.Noticef("worker %d finished (%d/%d)", workerID, done, total)
	}

	// Abort the render on SIGINT/SIGTERM
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frame, err := r.Render(renderCtx)
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	if err = frame.SaveFile(imgFile); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)

	displayFrameStats(r.Stats())
	return nil
}

// Map render flags to renderer options. Negative values are rejected before
// the conversion to unsigned fields.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	if ctx.Int("width") <= 0 || ctx.Int("height") <= 0 {
		return renderer.Options{}, renderer.ErrInvalidFrameSize
	}
	if ctx.Int("spp") <= 0 {
		return renderer.Options{}, renderer.ErrNoSamples
	}
	if ctx.Int("workers") < 0 {
		return renderer.Options{}, fmt.Errorf("invalid worker count %d", ctx.Int("workers"))
	}

	return renderer.Options{
		FrameW:            uint32(ctx.Int("width")),
		FrameH:            uint32(ctx.Int("height")),
		SamplesPerPixel:   uint32(ctx.Int("spp")),
		Workers:           uint32(ctx.Int("workers")),
		AntialiasStrength: ctx.Float64("aa"),
		Seed:              ctx.Int64("seed"),
	}, nil
}

// Load the scene passed as the first argument or the built-in scene if no
// argument is specified.
func loadScene(ctx *cli.Context) (*assetscene.Definition, error) {
	switch ctx.NArg() {
	case 0:
		logger.Notice("no scene file specified; rendering built-in scene")
		return assetscene.Default(), nil
	case 1:
		return reader.ReadScene(ctx.Args().First())
	}
	return nil, fmt.Errorf("expected at most one scene file argument; got %d", ctx.NArg())
}

// Override the scene sky with any colors specified via command line flags.
func skyFromFlags(ctx *cli.Context, sky tracer.Sky) (tracer.Sky, error) {
	var err error
	if ctx.IsSet("sky-horizon") {
		if sky.Horizon, err = parseColor(ctx.String("sky-horizon")); err != nil {
			return sky, fmt.Errorf("invalid sky-horizon value: %s", err)
		}
	}
	if ctx.IsSet("sky-zenith") {
		if sky.Zenith, err = parseColor(ctx.String("sky-zenith")); err != nil {
			return sky, fmt.Errorf("invalid sky-zenith value: %s", err)
		}
	}
	return sky, nil
}

// Parse a color in "r,g,b" format.
func parseColor(val string) (types.Vec3, error) {
	tokens := strings.Split(val, ",")
	if len(tokens) != 3 {
		return types.Vec3{}, fmt.Errorf(`expected "r,g,b"; got %q`, val)
	}

	var out types.Vec3
	for idx, token := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("could not parse color component %q", token)
		}
		out[idx] = v
	}
	return out, nil
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

func frameStatsTable(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Seed", "Samples", "% of samples", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.Seed),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%02.1f %%", stat.SamplePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
