package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/achilleasa/polaris-cpu/log"
	"github.com/achilleasa/polaris-cpu/scene"
	"github.com/achilleasa/polaris-cpu/tracer"
	"github.com/achilleasa/polaris-cpu/types"
)

// A progress callback invoked each time a worker finishes its samples. It
// is called from the worker goroutines and must be safe for concurrent use.
type ProgressFunc func(workerID, done, total int)

// A CPU renderer that splits the per-pixel sample budget across a pool of
// workers. Each worker renders the full frame with its share of the
// samples; the partial frames are then blended together.
type Renderer struct {
	logger log.Logger

	scene   *scene.Scene
	camera  *scene.Camera
	tracer  *tracer.Tracer
	options Options

	// Optional progress hook.
	OnWorkerDone ProgressFunc

	mutex sync.Mutex
	stats FrameStats
}

// The state of a single render worker.
type worker struct {
	id      int
	samples uint32
	seed    int64
	rng     *rand.Rand

	// Mean radiance per pixel for this worker's samples.
	accumulator []types.Vec3

	renderTime time.Duration
	err        error
}

// Create a new renderer.
func New(sc *scene.Scene, camera *scene.Camera, tr *tracer.Tracer, opts Options) (*Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if tr == nil {
		return nil, ErrTracerNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrameSize
	}
	if opts.SamplesPerPixel == 0 {
		return nil, ErrNoSamples
	}
	if opts.Workers == 0 {
		opts.Workers = uint32(runtime.NumCPU())
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	return &Renderer{
		logger:  log.New("renderer"),
		scene:   sc,
		camera:  camera,
		tracer:  tr,
		options: opts,
	}, nil
}

// Get the options used by this renderer after defaults have been applied.
func (r *Renderer) Options() Options {
	return r.options
}

// Render a frame. The context is checked once per row; if it gets cancelled
// the render is aborted and ErrInterrupted is returned.
func (r *Renderer) Render(ctx context.Context) (*Frame, error) {
	start := time.Now()
	assignment := SplitSamples(r.options.SamplesPerPixel, r.options.Workers)
	pixelCount := int(r.options.FrameW) * int(r.options.FrameH)

	workers := make([]*worker, len(assignment))
	for idx, samples := range assignment {
		seed := r.options.Seed + int64(idx)
		workers[idx] = &worker{
			id:          idx,
			samples:     samples,
			seed:        seed,
			rng:         rand.New(rand.NewSource(seed)),
			accumulator: make([]types.Vec3, pixelCount),
		}
	}

	r.logger.Infof("rendering %dx%d frame with %d spp using %d worker(s)", r.options.FrameW, r.options.FrameH, r.options.SamplesPerPixel, len(workers))

	var done int32
	var wg sync.WaitGroup
	wg.Add(len(workers))
	for _, w := range workers {
		go func(w *worker) {
			defer wg.Done()
			r.logger.Debugf("worker %d: tracing %d samples per pixel (seed %d)", w.id, w.samples, w.seed)
			wStart := time.Now()
			w.err = r.renderSamples(ctx, w)
			w.renderTime = time.Since(wStart)
			if w.err != nil {
				r.logger.Debugf("worker %d: aborted after %s", w.id, w.renderTime)
				return
			}
			r.logger.Debugf("worker %d: completed in %s", w.id, w.renderTime)

			completed := atomic.AddInt32(&done, 1)
			if r.OnWorkerDone != nil {
				r.OnWorkerDone(w.id, int(completed), len(workers))
			}
		}(w)
	}
	wg.Wait()

	for _, w := range workers {
		if w.err != nil {
			return nil, w.err
		}
	}

	frame := NewFrame(r.options.FrameW, r.options.FrameH)
	combine(frame.Pixels, workers)

	r.updateStats(workers, time.Since(start))
	r.logger.Infof("rendered frame in %s", time.Since(start))

	return frame, nil
}

// Trace the worker's share of samples for every pixel.
func (r *Renderer) renderSamples(ctx context.Context, w *worker) error {
	frameW, frameH := int(r.options.FrameW), int(r.options.FrameH)
	aa := r.options.AntialiasStrength

	// Pixel coords are normalized by (dim - 1); a single pixel row or
	// column maps to 0.
	scaleU, scaleV := 0.0, 0.0
	if frameW > 1 {
		scaleU = 1.0 / float64(frameW-1)
	}
	if frameH > 1 {
		scaleV = 1.0 / float64(frameH-1)
	}
	jitterU, jitterV := aa/float64(frameW), aa/float64(frameH)
	invSamples := 1.0 / float64(w.samples)

	for row := 0; row < frameH; row++ {
		select {
		case <-ctx.Done():
			return ErrInterrupted
		default:
		}

		// Rows are emitted top to bottom while v grows upwards
		y := frameH - 1 - row
		offset := row * frameW
		for x := 0; x < frameW; x++ {
			var sum types.Vec3
			for s := uint32(0); s < w.samples; s++ {
				u := float64(x)*scaleU + w.rng.Float64()*jitterU
				v := float64(y)*scaleV + w.rng.Float64()*jitterV
				sum = sum.Add(r.tracer.Trace(r.camera.Ray(u, v), r.scene, w.rng))
			}
			w.accumulator[offset+x] = sum.Mul(invSamples)
		}
	}

	return nil
}

// Blend the per-worker means weighting each one by its sample count.
func combine(out []types.Vec3, workers []*worker) {
	var totalSamples float64
	for _, w := range workers {
		totalSamples += float64(w.samples)
	}

	for idx := range out {
		var sum types.Vec3
		for _, w := range workers {
			sum = sum.Add(w.accumulator[idx].Mul(float64(w.samples)))
		}
		out[idx] = sum.Div(totalSamples)
	}
}

func (r *Renderer) updateStats(workers []*worker, renderTime time.Duration) {
	stats := FrameStats{
		Workers:    make([]WorkerStat, len(workers)),
		RenderTime: renderTime,
	}
	for idx, w := range workers {
		stats.Workers[idx] = WorkerStat{
			Id:            fmt.Sprintf("worker-%d", w.id),
			Samples:       w.samples,
			SamplePercent: 100.0 * float32(w.samples) / float32(r.options.SamplesPerPixel),
			Seed:          w.seed,
			RenderTime:    w.renderTime,
		}
	}

	r.mutex.Lock()
	r.stats = stats
	r.mutex.Unlock()
}

// Get render statistics for the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.stats
}
