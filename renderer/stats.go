package renderer

import "time"

type WorkerStat struct {
	// The worker id.
	Id string

	// Number of samples per pixel traced by this worker and the percentage
	// of the total sample budget it represents.
	Samples       uint32
	SamplePercent float32

	// Seed used by the worker's random number generator.
	Seed int64

	// Render time for assigned samples.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total render time for entire frame.
	RenderTime time.Duration
}
