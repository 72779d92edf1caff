package tracer

import (
	"math"

	"github.com/achilleasa/polaris-cpu/types"
)

// The Sampler interface is implemented by random number sources; it is
// satisfied by *rand.Rand. Samplers are not safe for concurrent use so each
// render worker owns its own instance.
type Sampler interface {
	// Get a uniformly distributed value in [0, 1).
	Float64() float64
}

// Draw a standard normal sample using the Box-Muller transform.
func RandomNormal(rng Sampler) float64 {
	theta := 2 * math.Pi * rng.Float64()
	// 1-u keeps the log argument in (0, 1]
	rho := math.Sqrt(-2 * math.Log(1-rng.Float64()))
	return rho * math.Cos(theta)
}

// Get a uniformly distributed direction on the unit sphere by normalizing a
// vector of independent normal samples.
func RandomUnitVector(rng Sampler) types.Vec3 {
	for {
		v := types.Vec3{RandomNormal(rng), RandomNormal(rng), RandomNormal(rng)}
		if lenSq := v.LenSq(); lenSq > 0 {
			return v.Div(math.Sqrt(lenSq))
		}
	}
}
