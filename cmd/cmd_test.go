package cmd

import (
	"flag"
	"strings"
	"testing"
	"time"

	assetscene "github.com/achilleasa/polaris-cpu/asset/scene"
	"github.com/achilleasa/polaris-cpu/renderer"
	"github.com/achilleasa/polaris-cpu/types"
	"github.com/urfave/cli"
)

func TestParseColor(t *testing.T) {
	type spec struct {
		in     string
		expOut types.Vec3
		expErr bool
	}
	specs := []spec{
		{"1,0.5,0", types.RGB(1, 0.5, 0), false},
		{" 0.5 , 0.7 , 1.0 ", types.RGB(0.5, 0.7, 1), false},
		{"1,1", types.Vec3{}, true},
		{"1,1,1,1", types.Vec3{}, true},
		{"1,red,1", types.Vec3{}, true},
	}

	for idx, s := range specs {
		out, err := parseColor(s.in)
		if s.expErr {
			if err == nil {
				t.Fatalf("[spec %d] expected an error", idx)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}
		if out != s.expOut {
			t.Fatalf("[spec %d] expected color %v; got %v", idx, s.expOut, out)
		}
	}
}

func TestFrameStatsTable(t *testing.T) {
	out := frameStatsTable(renderer.FrameStats{
		Workers: []renderer.WorkerStat{
			{Id: "worker-0", Seed: 10, Samples: 3, SamplePercent: 60, RenderTime: time.Second},
			{Id: "worker-1", Seed: 11, Samples: 2, SamplePercent: 40, RenderTime: 2 * time.Second},
		},
		RenderTime: 2 * time.Second,
	})

	for _, exp := range []string{"worker-0", "worker-1", "60.0 %", "40.0 %", "TOTAL", "2s"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, out)
		}
	}
}

func TestSceneInfoTable(t *testing.T) {
	out := sceneInfoTable(assetscene.Default())

	for _, exp := range []string{"sun", "ground", "sphere", "plane", "box", "fov 80", "horizon (1.000, 1.000, 1.000)"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected scene info to contain %q; got:\n%s", exp, out)
		}
	}
}

func renderContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("render", flag.ContinueOnError)
	set.Int("width", 4, "")
	set.Int("height", 3, "")
	set.Int("spp", 8, "")
	set.Int("workers", 0, "")
	set.Float64("aa", 1, "")
	set.Int64("seed", 7, "")
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestRenderOptions(t *testing.T) {
	type spec struct {
		args   []string
		expErr bool
	}
	specs := []spec{
		{nil, false},
		{[]string{"-workers", "3"}, false},
		{[]string{"-width", "-1"}, true},
		{[]string{"-height", "0"}, true},
		{[]string{"-height", "-2160"}, true},
		{[]string{"-spp", "-1"}, true},
		{[]string{"-spp", "0"}, true},
		{[]string{"-workers", "-1"}, true},
	}

	for idx, s := range specs {
		opts, err := renderOptions(renderContext(t, s.args...))
		if s.expErr {
			if err == nil {
				t.Fatalf("[spec %d] expected an error; got options %+v", idx, opts)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}
	}

	opts, err := renderOptions(renderContext(t, "-width", "640", "-workers", "3"))
	if err != nil {
		t.Fatal(err)
	}
	exp := renderer.Options{FrameW: 640, FrameH: 3, SamplesPerPixel: 8, Workers: 3, AntialiasStrength: 1, Seed: 7}
	if opts != exp {
		t.Fatalf("expected options %+v; got %+v", exp, opts)
	}
}
