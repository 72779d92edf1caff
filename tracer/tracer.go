package tracer

import (
	"github.com/achilleasa/polaris-cpu/scene"
	"github.com/achilleasa/polaris-cpu/types"
)

var (
	// Default sky colors.
	DefaultHorizonColor = types.RGB(1.0, 1.0, 1.0)
	DefaultZenithColor  = types.RGB(0.5, 0.7, 1.0)
)

// The environment light returned for rays escaping the scene. It is a
// vertical gradient along the Z axis.
type Sky struct {
	Horizon types.Vec3
	Zenith  types.Vec3
}

// Get the default sky gradient.
func DefaultSky() Sky {
	return Sky{
		Horizon: DefaultHorizonColor,
		Zenith:  DefaultZenithColor,
	}
}

// Get the sky radiance along a unit direction.
func (s Sky) At(dir types.Vec3) types.Vec3 {
	t := (dir.Z() + 1) * 0.5
	return s.Horizon.Lerp(s.Zenith, t)
}

// A Monte Carlo path tracer. A Tracer holds no mutable state and can be
// shared by all render workers.
type Tracer struct {
	// Max number of surface interactions per path. Paths still bouncing
	// when the limit is reached are truncated.
	MaxBounces uint32

	Sky Sky

	// Uniform multiplier applied to the throughput at every bounce.
	Brightness float64
}

// Create a new tracer.
func New(maxBounces uint32, sky Sky, brightness float64) *Tracer {
	return &Tracer{
		MaxBounces: maxBounces,
		Sky:        sky,
		Brightness: brightness,
	}
}

// Trace a ray through the scene and return a radiance estimate.
func (tr *Tracer) Trace(ray types.Ray, sc *scene.Scene, rng Sampler) types.Vec3 {
	throughput := types.Splat(1)
	light := types.Vec3{}

	for bounce := uint32(0); bounce < tr.MaxBounces; bounce++ {
		hit, ok := sc.FirstHit(ray)
		if !ok {
			light = light.Add(tr.Sky.At(ray.Dir).MulVec(throughput))
			break
		}

		mat := hit.Material

		// Blend a cosine weighted diffuse bounce with a mirror bounce
		diffuse := RandomUnitVector(rng).Add(hit.Normal)
		specular := ray.Dir.Reflect(hit.Normal)
		dir := diffuse.Lerp(specular, mat.Smoothness)

		light = light.Add(mat.Emitted().MulVec(throughput))
		throughput = throughput.MulVec(mat.Color.Mul(tr.Brightness))

		ray = types.NewRay(hit.Point, dir)
	}

	return light
}
