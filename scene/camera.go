package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/polaris-cpu/types"
)

// Camera-local axes before the orientation is applied: the camera looks down
// +X with +Z up, so moving right across the image moves along -Y.
var (
	cameraForward = types.XYZ(1, 0, 0)
	cameraRight   = types.XYZ(0, -1, 0)
	cameraUp      = types.XYZ(0, 0, 1)
)

// A pinhole camera with a viewport at unit focal distance.
type Camera struct {
	Position    types.Vec3
	Orientation types.Quat

	// Horizontal field of view in degrees.
	FOV    float64
	Aspect float64

	// Derived viewport basis in world space.
	Forward      types.Vec3
	LowerLeft    types.Vec3
	WidthVector  types.Vec3
	HeightVector types.Vec3
}

// Create a camera from its position, orientation, horizontal FOV (in
// degrees) and the width/height aspect ratio of the target frame.
func NewCamera(position types.Vec3, orientation types.Quat, fov, aspect float64) *Camera {
	c := &Camera{
		Position:    position,
		Orientation: orientation,
		FOV:         fov,
		Aspect:      aspect,
	}
	c.Update()
	return c
}

// Recalculate the viewport basis after changing the camera settings.
func (c *Camera) Update() {
	viewportW := 2 * math.Tan(c.FOV*math.Pi/360.0)
	viewportH := viewportW / c.Aspect

	c.Forward = c.Orientation.Rotate(cameraForward)
	c.WidthVector = c.Orientation.Rotate(cameraRight.Mul(viewportW))
	c.HeightVector = c.Orientation.Rotate(cameraUp.Mul(viewportH))
	c.LowerLeft = c.Position.
		Add(c.Forward).
		Sub(c.WidthVector.Mul(0.5)).
		Sub(c.HeightVector.Mul(0.5))
}

// Get a primary ray through the viewport. u and v are in [0, 1] with (0, 0)
// at the bottom-left corner.
func (c *Camera) Ray(u, v float64) types.Ray {
	target := c.LowerLeft.Add(c.WidthVector.Mul(u)).Add(c.HeightVector.Mul(v))
	return types.NewRay(c.Position, target.Sub(c.Position))
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nPosition : %v\nForward  : %v\nFOV      : %3.1f\nViewport : LL %v W %v H %v",
		c.Position, c.Forward, c.FOV, c.LowerLeft, c.WidthVector, c.HeightVector,
	)
}
