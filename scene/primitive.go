package scene

import (
	"math"

	"github.com/achilleasa/polaris-cpu/types"
)

const (
	// Hits closer than this are treated as self-intersections of a ray
	// leaving a sphere surface.
	sphereEpsilon = 1e-9

	// Plane hits at or below this distance are rejected to avoid surface acne.
	planeEpsilon = 120 * epsilon

	// Machine epsilon for float64.
	epsilon = 2.220446049250313e-16
)

type PrimitiveType uint8

const (
	PlanePrimitive PrimitiveType = iota
	SpherePrimitive
	BoxPrimitive
	TransformedPrimitive
)

func (t PrimitiveType) String() string {
	switch t {
	case PlanePrimitive:
		return "plane"
	case SpherePrimitive:
		return "sphere"
	case BoxPrimitive:
		return "box"
	case TransformedPrimitive:
		return "transformed"
	}
	return "unknown"
}

// The Object interface is implemented by all scene primitives.
type Object interface {
	// Get the primitive type.
	Type() PrimitiveType

	// Intersect the ray with the object and return the closest hit in
	// front of the ray origin.
	Intersect(ray types.Ray) (Hit, bool)
}

// A sphere primitive.
type Sphere struct {
	Center   types.Vec3
	Radius   float64
	Material Material
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float64, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

func (s *Sphere) Type() PrimitiveType {
	return SpherePrimitive
}

// Solve |o + t*d - c|^2 = r^2 for t. As d has unit length the quadratic
// coefficient is 1.
func (s *Sphere) Intersect(ray types.Ray) (Hit, bool) {
	oc := ray.Origin.Sub(s.Center)
	halfB := oc.Dot(ray.Dir)
	c := oc.LenSq() - s.Radius*s.Radius

	disc := halfB*halfB - c
	if disc < 0 {
		return Hit{}, false
	}

	sqrtDisc := math.Sqrt(disc)
	distance := -halfB - sqrtDisc
	if distance <= sphereEpsilon {
		// Ray starts inside the sphere
		distance = -halfB + sqrtDisc
		if distance <= sphereEpsilon {
			return Hit{}, false
		}
	}

	point := ray.At(distance)
	normal := point.Sub(s.Center).Div(s.Radius)
	return Hit{
		Distance:    distance,
		Point:       point,
		Normal:      normal,
		OutsideFace: normal.Dot(ray.Dir) <= 0,
		Material:    s.Material,
	}, true
}

// An infinite plane primitive.
type Plane struct {
	Point    types.Vec3
	Normal   types.Vec3
	Material Material
}

// Create new plane primitive. The normal is normalized.
func NewPlane(point, normal types.Vec3, material Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

func (p *Plane) Type() PrimitiveType {
	return PlanePrimitive
}

// Intersect the ray with the plane. The reported normal always faces against
// the ray. When the ray arrives from the side the plane normal points to, the
// normal is reported as-is with OutsideFace unset; otherwise it is flipped
// and OutsideFace is set.
func (p *Plane) Intersect(ray types.Ray) (Hit, bool) {
	denom := p.Normal.Dot(ray.Dir)
	if math.Abs(denom) <= epsilon {
		return Hit{}, false
	}

	distance := p.Normal.Dot(p.Point.Sub(ray.Origin)) / denom
	if distance <= planeEpsilon {
		return Hit{}, false
	}

	normal, outside := p.Normal, false
	if denom > 0 {
		normal, outside = p.Normal.Neg(), true
	}

	return Hit{
		Distance:    distance,
		Point:       ray.At(distance),
		Normal:      normal,
		OutsideFace: outside,
		Material:    p.Material,
	}, true
}
