package types

// A ray with a unit length direction. InvDir holds the component-wise
// reciprocal of Dir and may contain infinities for axis aligned rays.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	InvDir Vec3
}

// Create a new ray. The direction is normalized.
func NewRay(origin, dir Vec3) Ray {
	dir = dir.Normalize()
	return Ray{
		Origin: origin,
		Dir:    dir,
		InvDir: Vec3{1 / dir[0], 1 / dir[1], 1 / dir[2]},
	}
}

// Get the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
