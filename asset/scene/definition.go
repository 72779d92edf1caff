package scene

import (
	"errors"
	"fmt"

	core "github.com/achilleasa/polaris-cpu/scene"
	"github.com/achilleasa/polaris-cpu/tracer"
	"github.com/achilleasa/polaris-cpu/types"
)

// The horizontal field of view used when a definition does not specify one.
const DefaultFOV = 80.0

var (
	ErrNoObjects       = errors.New("scene: definition contains no objects")
	ErrUnknownMaterial = errors.New("scene: reference to undefined material")
)

// The kind of an object definition.
type ObjectKind uint8

const (
	SphereObject ObjectKind = iota
	PlaneObject
	BoxObject
)

func (k ObjectKind) String() string {
	switch k {
	case SphereObject:
		return "sphere"
	case PlaneObject:
		return "plane"
	case BoxObject:
		return "box"
	}
	return "unknown"
}

// Camera placement. Rotation holds roll, pitch and yaw angles in degrees.
type CameraDef struct {
	Position types.Vec3
	Rotation types.Vec3
	FOV      float64
}

type SkyDef struct {
	Horizon types.Vec3
	Zenith  types.Vec3
}

type MaterialDef struct {
	Name             string
	Color            types.Vec3
	Smoothness       float64
	EmissionColor    types.Vec3
	EmissionStrength float64
}

// An object definition. Only the fields relevant to Kind are populated:
// spheres use Center/Radius, planes use Point/Normal and boxes use
// Center/Size and an optional Rotation (roll, pitch, yaw in degrees).
type ObjectDef struct {
	Kind     ObjectKind
	Material string

	Center types.Vec3
	Radius float64

	Point  types.Vec3
	Normal types.Vec3

	Size     types.Vec3
	Rotation types.Vec3
}

// A serializable scene description. Definitions are produced by the scene
// readers and turned into a renderable scene by Build.
type Definition struct {
	Camera    CameraDef
	Sky       *SkyDef
	Materials []MaterialDef
	Objects   []ObjectDef
}

// Lookup a material definition by name.
func (d *Definition) Material(name string) (MaterialDef, bool) {
	for _, mat := range d.Materials {
		if mat.Name == name {
			return mat, true
		}
	}
	return MaterialDef{}, false
}

// Get the sky gradient for this definition falling back to the default sky.
func (d *Definition) SkyGradient() tracer.Sky {
	if d.Sky == nil {
		return tracer.DefaultSky()
	}
	return tracer.Sky{Horizon: d.Sky.Horizon, Zenith: d.Sky.Zenith}
}

// Build the scene objects and a camera with the given aspect ratio.
func (d *Definition) Build(aspect float64) (*core.Scene, *core.Camera, error) {
	if len(d.Objects) == 0 {
		return nil, nil, ErrNoObjects
	}

	materials := make(map[string]core.Material, len(d.Materials))
	for _, def := range d.Materials {
		materials[def.Name] = def.material()
	}

	objects := make([]core.Object, 0, len(d.Objects))
	for idx, def := range d.Objects {
		mat, ok := materials[def.Material]
		if !ok {
			return nil, nil, fmt.Errorf("%w %q (object %d)", ErrUnknownMaterial, def.Material, idx)
		}

		obj, err := def.object(mat)
		if err != nil {
			return nil, nil, fmt.Errorf("scene: object %d (%s): %s", idx, def.Kind, err)
		}
		objects = append(objects, obj)
	}

	fov := d.Camera.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	rot := d.Camera.Rotation
	camera := core.NewCamera(d.Camera.Position, types.QuatFromEuler(rot[0], rot[1], rot[2]), fov, aspect)

	return core.NewScene(objects...), camera, nil
}

func (def MaterialDef) material() core.Material {
	if def.EmissionStrength > 0 {
		return core.NewEmissiveMaterial(def.Color, def.Smoothness, def.EmissionColor, def.EmissionStrength)
	}
	return core.NewMaterial(def.Color, def.Smoothness)
}

func (def ObjectDef) object(mat core.Material) (core.Object, error) {
	switch def.Kind {
	case SphereObject:
		if def.Radius <= 0 {
			return nil, fmt.Errorf("radius must be positive; got %g", def.Radius)
		}
		return core.NewSphere(def.Center, def.Radius, mat), nil
	case PlaneObject:
		if def.Normal.LenSq() == 0 {
			return nil, errors.New("plane normal must be non-zero")
		}
		return core.NewPlane(def.Point, def.Normal, mat), nil
	case BoxObject:
		if def.Size[0] <= 0 || def.Size[1] <= 0 || def.Size[2] <= 0 {
			return nil, fmt.Errorf("box size must be positive; got %v", def.Size)
		}
		if def.Rotation == (types.Vec3{}) {
			return core.NewBox(def.Center, def.Size, mat), nil
		}
		rot := types.QuatFromEuler(def.Rotation[0], def.Rotation[1], def.Rotation[2])
		return core.NewRotatedBox(def.Center, def.Size, rot, mat), nil
	}
	return nil, fmt.Errorf("unsupported object kind %d", def.Kind)
}
