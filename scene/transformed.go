package scene

import "github.com/achilleasa/polaris-cpu/types"

// Transformed wraps an object defined around the origin and places it in the
// world using a rigid transformation (rotation followed by translation).
// Intersections are computed by moving the ray into the object's local frame.
type Transformed struct {
	Object Object

	Rotation        types.Quat
	RotationInverse types.Quat
	Center          types.Vec3
}

// Wrap obj with the given rotation and world space center.
func NewTransformed(obj Object, rotation types.Quat, center types.Vec3) *Transformed {
	return &Transformed{
		Object:          obj,
		Rotation:        rotation,
		RotationInverse: rotation.Inverse(),
		Center:          center,
	}
}

// Create a box of the given size that is rotated around its center.
func NewRotatedBox(center, size types.Vec3, rotation types.Quat, material Material) *Transformed {
	return NewTransformed(NewBox(types.Vec3{}, size, material), rotation, center)
}

func (t *Transformed) Type() PrimitiveType {
	return TransformedPrimitive
}

// Intersect the ray with the wrapped object. Rigid transforms preserve
// distances so the hit point is evaluated on the original ray.
func (t *Transformed) Intersect(ray types.Ray) (Hit, bool) {
	local := types.NewRay(
		t.RotationInverse.Rotate(ray.Origin.Sub(t.Center)),
		t.RotationInverse.Rotate(ray.Dir),
	)

	hit, ok := t.Object.Intersect(local)
	if !ok {
		return Hit{}, false
	}

	hit.Point = ray.At(hit.Distance)
	hit.Normal = t.Rotation.Rotate(hit.Normal)
	return hit, true
}
