package scene

import "github.com/achilleasa/polaris-cpu/types"

// Defines a surface material. Materials are values; every Hit carries its
// own copy.
type Material struct {
	// Base color. Nominally in [0, 1] but not clamped.
	Color types.Vec3

	// Interpolates between a diffuse (0) and a mirror (1) bounce.
	Smoothness float64

	// Emissive color and strength (if material is a light).
	EmissionColor    types.Vec3
	EmissionStrength float64
}

// Create a non-emissive material.
func NewMaterial(color types.Vec3, smoothness float64) Material {
	return Material{
		Color:      color,
		Smoothness: smoothness,
	}
}

// Create an emissive material.
func NewEmissiveMaterial(color types.Vec3, smoothness float64, emissionColor types.Vec3, strength float64) Material {
	return Material{
		Color:            color,
		Smoothness:       smoothness,
		EmissionColor:    emissionColor,
		EmissionStrength: strength,
	}
}

// Get the radiance emitted by the material.
func (m Material) Emitted() types.Vec3 {
	return m.EmissionColor.Mul(m.EmissionStrength)
}

// Returns true if the material emits light.
func (m Material) IsEmissive() bool {
	return m.EmissionStrength > 0 && m.EmissionColor.LenSq() > 0
}

// The result of a successful ray intersection test.
type Hit struct {
	// Distance along the ray; always > 0.
	Distance float64

	Point  types.Vec3
	Normal types.Vec3

	// Set by each primitive according to its facing convention.
	OutsideFace bool

	Material Material
}
