package scene

import (
	"math"
	"testing"

	"github.com/achilleasa/polaris-cpu/types"
)

func TestFirstHit(t *testing.T) {
	near := NewMaterial(types.RGB(1, 0, 0), 0)
	far := NewMaterial(types.RGB(0, 1, 0), 0)

	// Object order must not matter for hits at different distances
	orders := [][]Object{
		{
			NewSphere(types.XYZ(0, 0, 7), 0.5, far),
			NewPlane(types.XYZ(0, 0, 3), types.XYZ(0, 0, 1), near),
		},
		{
			NewPlane(types.XYZ(0, 0, 3), types.XYZ(0, 0, 1), near),
			NewSphere(types.XYZ(0, 0, 7), 0.5, far),
		},
	}

	ray := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	for idx, objects := range orders {
		sc := NewScene(objects...)
		hit, ok := sc.FirstHit(ray)
		if !ok {
			t.Fatalf("[order %d] expected a hit", idx)
		}
		if math.Abs(hit.Distance-3) > 1e-12 {
			t.Fatalf("[order %d] expected closest hit at distance 3; got %f", idx, hit.Distance)
		}
		if hit.Material != near {
			t.Fatalf("[order %d] expected closest hit to carry the near material", idx)
		}
	}
}

func TestFirstHitTiesKeepEarliest(t *testing.T) {
	first := NewMaterial(types.RGB(1, 0, 0), 0)
	second := NewMaterial(types.RGB(0, 0, 1), 0)

	sc := NewScene(
		NewPlane(types.XYZ(0, 0, 3), types.XYZ(0, 0, 1), first),
		NewPlane(types.XYZ(0, 0, 3), types.XYZ(0, 0, -1), second),
	)

	hit, ok := sc.FirstHit(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1)))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Material != first {
		t.Fatal("expected tie to resolve to the first object")
	}
}

func TestFirstHitMiss(t *testing.T) {
	sc := NewScene(NewSphere(types.XYZ(0, 0, 7), 0.5, testMaterial))
	if _, ok := sc.FirstHit(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0))); ok {
		t.Fatal("expected ray to miss every object")
	}

	if _, ok := NewScene().FirstHit(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0))); ok {
		t.Fatal("expected empty scene to produce no hits")
	}
}

func TestSceneIsImmutable(t *testing.T) {
	objects := []Object{NewSphere(types.XYZ(0, 0, 7), 0.5, testMaterial)}
	sc := NewScene(objects...)

	objects[0] = NewSphere(types.XYZ(0, 0, 100), 0.5, testMaterial)
	list := sc.Objects()
	list[0] = nil

	hit, ok := sc.FirstHit(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1)))
	if !ok || math.Abs(hit.Distance-6.5) > 1e-12 {
		t.Fatalf("expected scene to keep its own copy of the object list")
	}
	if sc.Len() != 1 {
		t.Fatalf("expected scene to contain 1 object; got %d", sc.Len())
	}
}

func TestCamera(t *testing.T) {
	type spec struct {
		orientation types.Quat
		expForward  types.Vec3
	}
	specs := []spec{
		{types.QuatIdent(), types.XYZ(1, 0, 0)},
		{types.QuatFromEuler(0, 0, 90), types.XYZ(0, 1, 0)},
		{types.QuatFromEuler(0, -90, 0), types.XYZ(0, 0, 1)},
	}

	for idx, s := range specs {
		cam := NewCamera(types.XYZ(-10, 0, 0), s.orientation, 90, 2)

		center := cam.Ray(0.5, 0.5)
		if center.Origin != cam.Position {
			t.Fatalf("[spec %d] expected ray to start at the camera position", idx)
		}
		if !types.ApproxEqual(center.Dir, s.expForward, 1e-9) {
			t.Fatalf("[spec %d] expected center ray along %v; got %v", idx, s.expForward, center.Dir)
		}
	}

	// With a 90 degree FOV the viewport is 2 units wide and 1 unit high
	// at unit focal distance.
	cam := NewCamera(types.XYZ(0, 0, 0), types.QuatIdent(), 90, 2)
	if !types.ApproxEqual(cam.WidthVector, types.XYZ(0, -2, 0), 1e-9) {
		t.Fatalf("expected width vector (0, -2, 0); got %v", cam.WidthVector)
	}
	if !types.ApproxEqual(cam.HeightVector, types.XYZ(0, 0, 1), 1e-9) {
		t.Fatalf("expected height vector (0, 0, 1); got %v", cam.HeightVector)
	}

	type cornerSpec struct {
		u, v   float64
		expDir types.Vec3
	}
	corners := []cornerSpec{
		{0, 0, types.XYZ(1, 1, -0.5)},
		{1, 0, types.XYZ(1, -1, -0.5)},
		{0, 1, types.XYZ(1, 1, 0.5)},
		{1, 1, types.XYZ(1, -1, 0.5)},
	}
	for idx, s := range corners {
		ray := cam.Ray(s.u, s.v)
		if !types.ApproxEqual(ray.Dir, s.expDir.Normalize(), 1e-9) {
			t.Fatalf("[corner %d] expected ray direction %v; got %v", idx, s.expDir.Normalize(), ray.Dir)
		}
	}
}
