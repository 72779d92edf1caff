package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples per pixel. Samples are split between workers.
	SamplesPerPixel uint32

	// Number of render workers. If set to 0, runtime.NumCPU() workers are used.
	Workers uint32

	// Pixel jitter scale for anti-aliasing. A value of 0 disables jitter.
	AntialiasStrength float64

	// Base seed for the per-worker random number generators. Worker i is
	// seeded with Seed+i. If set to 0, a time-based seed is used.
	Seed int64
}
