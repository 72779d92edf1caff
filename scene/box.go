package scene

import (
	"math"

	"github.com/achilleasa/polaris-cpu/types"
)

// The slab test accepts intervals that are empty by at most this amount so
// that rays grazing an edge still reach the per-face test.
const slabSlack = 1e-9

// An axis aligned box modeled as six bounding planes.
type Box struct {
	Center      types.Vec3
	HalfExtents types.Vec3
	Material    Material

	// Precomputed corners for the slab test.
	min types.Vec3
	max types.Vec3

	// Faces ordered +X, -X, +Y, -Y, +Z, -Z.
	faces [6]Plane
}

// Create new box primitive from its center and its full size along each axis.
func NewBox(center, size types.Vec3, material Material) *Box {
	half := size.Mul(0.5)
	b := &Box{
		Center:      center,
		HalfExtents: half,
		Material:    material,
		min:         center.Sub(half),
		max:         center.Add(half),
	}

	for axis := 0; axis < 3; axis++ {
		var offset, normal types.Vec3
		offset[axis] = half[axis]
		normal[axis] = 1

		b.faces[2*axis] = Plane{Point: center.Add(offset), Normal: normal, Material: material}
		b.faces[2*axis+1] = Plane{Point: center.Sub(offset), Normal: normal.Neg(), Material: material}
	}

	return b
}

func (b *Box) Type() PrimitiveType {
	return BoxPrimitive
}

// Get the box min and max corners.
func (b *Box) Bounds() (types.Vec3, types.Vec3) {
	return b.min, b.max
}

// Intersect the ray with the box. The slab test is only used to reject rays
// early; the returned hit always comes from the per-face test.
func (b *Box) Intersect(ray types.Ray) (Hit, bool) {
	if _, _, ok := b.Slab(ray); !ok {
		return Hit{}, false
	}
	return b.IntersectFaces(ray)
}

// Test the ray against all six face planes keeping only hits whose point lies
// within the half extents on the two axes spanned by the face. Faces report
// their hits using the plane facing convention.
func (b *Box) IntersectFaces(ray types.Ray) (Hit, bool) {
	var closest Hit
	found := false

	for faceIndex := range b.faces {
		hit, ok := b.faces[faceIndex].Intersect(ray)
		if !ok || (found && hit.Distance >= closest.Distance) {
			continue
		}

		faceAxis := faceIndex / 2
		local := hit.Point.Sub(b.Center)
		inside := true
		for axis := 0; axis < 3; axis++ {
			if axis != faceAxis && math.Abs(local[axis]) > b.HalfExtents[axis] {
				inside = false
				break
			}
		}

		if inside {
			closest, found = hit, true
		}
	}

	return closest, found
}

// Run the slab test against the box corners returning the entry and exit
// distances along the ray. Components of InvDir that are infinite produce
// NaN or infinite slab distances which the comparisons below skip.
func (b *Box) Slab(ray types.Ray) (tMin, tMax float64, ok bool) {
	tMin, tMax = math.Inf(-1), math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		t1 := (b.min[axis] - ray.Origin[axis]) * ray.InvDir[axis]
		t2 := (b.max[axis] - ray.Origin[axis]) * ray.InvDir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		// A ray parallel to this slab that starts outside of it produces
		// the same sign of infinity for both distances.
		if math.IsInf(t1, 1) || math.IsInf(t2, -1) {
			return tMin, tMax, false
		}

		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
	}

	if tMin-tMax > slabSlack || tMax < 0 {
		return tMin, tMax, false
	}
	return tMin, tMax, true
}
