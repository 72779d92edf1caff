package types

import "math"

// A (W, V) quaternion. Quaternions used for rotation are expected to have unit
// length; non-unit values are fine as intermediate results.
type Quat struct {
	V Vec3
	W float64
}

// Create identity quaternion.
func QuatIdent() Quat {
	return Quat{
		V: Vec3{},
		W: 1.0,
	}
}

// Create a quaternion from an axis vector and an angle in degrees. The axis
// does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, degrees float64) Quat {
	halfAngle := degrees * math.Pi / 360.0
	sin, cos := math.Sincos(halfAngle)
	return Quat{
		V: axis.Normalize().Mul(sin),
		W: cos,
	}
}

// Create a quaternion from roll (X axis), pitch (Y axis) and yaw (Z axis)
// Euler angles given in degrees.
func QuatFromEuler(roll, pitch, yaw float64) Quat {
	const halfDeg = math.Pi / 360.0
	sr, cr := math.Sincos(roll * halfDeg)
	sp, cp := math.Sincos(pitch * halfDeg)
	sy, cy := math.Sincos(yaw * halfDeg)

	return Quat{
		V: Vec3{
			sr*cp*cy - cr*sp*sy,
			cr*sp*cy + sr*cp*sy,
			cr*cp*sy - sr*sp*cy,
		},
		W: cr*cp*cy + sr*sp*sy,
	}
}

// Multiplies two quaternions (Hamilton product). The result applies q2 first
// and then q1. Multiplication is NOT commutative.
func (q1 Quat) Mul(q2 Quat) Quat {
	return Quat{
		q1.V.Cross(q2.V).Add(q2.V.Mul(q1.W)).Add(q1.V.Mul(q2.W)),
		q1.W*q2.W - q1.V.Dot(q2.V),
	}
}

// Get the conjugate quaternion.
func (q1 Quat) Conjugate() Quat {
	return Quat{q1.V.Neg(), q1.W}
}

// Get the squared norm.
func (q1 Quat) LenSq() float64 {
	return q1.W*q1.W + q1.V.LenSq()
}

// Returns the Length of the quaternion, also known as its Norm.
func (q1 Quat) Len() float64 {
	return math.Sqrt(q1.LenSq())
}

// Normalizes the quaternion, returning its versor (unit quaternion).
func (q1 Quat) Normalize() Quat {
	length := q1.Len()
	if math.Abs(1-length) < floatCmpEpsilon {
		return q1
	}
	if length == 0 {
		return QuatIdent()
	}
	return Quat{q1.V.Div(length), q1.W / length}
}

// The inverse of a quaternion. The inverse is equivalent
// to the conjugate divided by the square of the length.
func (q1 Quat) Inverse() Quat {
	scaler := 1.0 / q1.LenSq()
	return Quat{
		q1.V.Mul(-scaler),
		q1.W * scaler,
	}
}

// Rotates a vector by the rotation this quaternion represents, computing the
// vector part of q * v * q^-1.
func (q1 Quat) Rotate(v Vec3) Vec3 {
	return q1.Mul(Quat{V: v}).Mul(q1.Inverse()).V
}

// Rotates a vector by the opposite rotation, computing the vector part of
// q^-1 * v * q.
func (q1 Quat) InverseRotate(v Vec3) Vec3 {
	return q1.Inverse().Mul(Quat{V: v}).Mul(q1).V
}

// Check if two quaternions are equal within the given tolerance.
func QuatApproxEqual(q1, q2 Quat, threshold float64) bool {
	return math.Abs(q1.W-q2.W) <= threshold && ApproxEqual(q1.V, q2.V, threshold)
}
