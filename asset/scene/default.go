package scene

import "github.com/achilleasa/polaris-cpu/types"

// Get the built-in demo scene: a large emissive sphere acting as the sun, a
// rotated box and a small sphere resting above a slightly tilted ground plane.
func Default() *Definition {
	return &Definition{
		Camera: CameraDef{
			Position: types.XYZ(-10, 0, 0),
			FOV:      DefaultFOV,
		},
		Materials: []MaterialDef{
			{
				Name:             "sun",
				Color:            types.RGB(0, 0, 0),
				EmissionColor:    types.RGB(0.93, 0.95, 0.2),
				EmissionStrength: 2.5,
			},
			{Name: "red", Color: types.RGB(0.8, 0.45, 0.45)},
			{Name: "blue", Color: types.RGB(0.45, 0.45, 0.8)},
			{Name: "ground", Color: types.RGB(0.45, 0.8, 0.45)},
		},
		Objects: []ObjectDef{
			{Kind: SphereObject, Material: "sun", Center: types.XYZ(-15, 0, 70), Radius: 45},
			{Kind: BoxObject, Material: "red", Center: types.XYZ(20, -10, 0.5), Size: types.XYZ(7, 7, 7), Rotation: types.XYZ(45, 0, 45)},
			{Kind: SphereObject, Material: "blue", Center: types.XYZ(10, 7, 0.5), Radius: 4},
			{Kind: PlaneObject, Material: "ground", Point: types.XYZ(0, 0, -10), Normal: types.XYZ(-0.12, 0, 1)},
		},
	}
}
