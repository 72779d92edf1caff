package scene

import (
	"math"
	"testing"

	"github.com/achilleasa/polaris-cpu/types"
)

var testMaterial = NewMaterial(types.RGB(0.5, 0.5, 0.5), 0)

func TestSphereIntersection(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, 0), 1, testMaterial)

	hit, ok := sphere.Intersect(types.NewRay(types.XYZ(0, 0, -10), types.XYZ(0, 0, 1)))
	if !ok {
		t.Fatal("expected ray to hit the sphere")
	}
	if math.Abs(hit.Distance-9) > 1e-12 {
		t.Fatalf("expected hit distance to be 9; got %f", hit.Distance)
	}
	if !types.ApproxEqual(hit.Point, types.XYZ(0, 0, -1), 1e-12) {
		t.Fatalf("expected hit point (0, 0, -1); got %v", hit.Point)
	}
	if !types.ApproxEqual(hit.Normal, types.XYZ(0, 0, -1), 1e-12) {
		t.Fatalf("expected hit normal (0, 0, -1); got %v", hit.Normal)
	}
	if !hit.OutsideFace {
		t.Fatal("expected hit to be on the outside face")
	}
	if hit.Material != testMaterial {
		t.Fatalf("expected hit to carry the sphere material")
	}
}

func TestSphereMisses(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, 0), 1, testMaterial)

	specs := []types.Ray{
		// Passes beside the sphere
		types.NewRay(types.XYZ(0, 2, -10), types.XYZ(0, 0, 1)),
		// Sphere is behind the ray
		types.NewRay(types.XYZ(0, 0, 10), types.XYZ(0, 0, 1)),
		// Leaves the sphere surface outwards
		types.NewRay(types.XYZ(0, 0, 1), types.XYZ(0, 0, 1)),
	}

	for idx, ray := range specs {
		if hit, ok := sphere.Intersect(ray); ok {
			t.Fatalf("[spec %d] expected ray to miss; got hit at distance %f", idx, hit.Distance)
		}
	}
}

func TestSphereHitFromInside(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, 0), 2, testMaterial)

	hit, ok := sphere.Intersect(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0)))
	if !ok {
		t.Fatal("expected ray starting inside the sphere to hit it")
	}
	if math.Abs(hit.Distance-2) > 1e-12 {
		t.Fatalf("expected hit distance to be 2; got %f", hit.Distance)
	}
	if hit.OutsideFace {
		t.Fatal("expected hit to be on the inside face")
	}
}

func TestPlaneIntersection(t *testing.T) {
	plane := NewPlane(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), testMaterial)

	hit, ok := plane.Intersect(types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1)))
	if !ok {
		t.Fatal("expected ray to hit the plane")
	}
	if math.Abs(hit.Distance-5) > 1e-12 {
		t.Fatalf("expected hit distance to be 5; got %f", hit.Distance)
	}
	if !types.ApproxEqual(hit.Point, types.XYZ(0, 0, 0), 1e-12) {
		t.Fatalf("expected hit point at the origin; got %v", hit.Point)
	}
	if hit.Normal != types.XYZ(0, 0, 1) || hit.OutsideFace {
		t.Fatalf("expected unflipped normal and OutsideFace unset; got %v, %t", hit.Normal, hit.OutsideFace)
	}

	// Approach from below
	hit, ok = plane.Intersect(types.NewRay(types.XYZ(1, 1, -3), types.XYZ(0, 0, 1)))
	if !ok {
		t.Fatal("expected ray to hit the plane from below")
	}
	if hit.Normal != types.XYZ(0, 0, -1) || !hit.OutsideFace {
		t.Fatalf("expected flipped normal and OutsideFace set; got %v, %t", hit.Normal, hit.OutsideFace)
	}
}

func TestPlaneMisses(t *testing.T) {
	plane := NewPlane(types.XYZ(0, 0, 0), types.XYZ(0, 0, 2), testMaterial)

	specs := []types.Ray{
		// Parallel
		types.NewRay(types.XYZ(0, 0, 1), types.XYZ(1, 0, 0)),
		// Pointing away
		types.NewRay(types.XYZ(0, 0, 1), types.XYZ(0, 0, 1)),
		// Starting on the plane
		types.NewRay(types.XYZ(3, 3, 0), types.XYZ(0, 1, -1)),
	}

	for idx, ray := range specs {
		if hit, ok := plane.Intersect(ray); ok {
			t.Fatalf("[spec %d] expected ray to miss; got hit at distance %g", idx, hit.Distance)
		}
	}
}

func TestBoxSlabAgreement(t *testing.T) {
	box := NewBox(types.XYZ(0, 0, 0), types.XYZ(2, 2, 2), testMaterial)

	type spec struct {
		ray     types.Ray
		expHit  bool
		expDist float64
	}
	specs := []spec{
		// Through the center
		{types.NewRay(types.XYZ(-5, 0, 0), types.XYZ(1, 0, 0)), true, 4},
		// Diagonal entering through the -X face
		{types.NewRay(types.XYZ(-5, -4.5, -4.2), types.XYZ(1, 1, 1)), true, 4 * math.Sqrt(3)},
		// Grazing the edge shared by the +Y and +Z faces
		{types.NewRay(types.XYZ(-5, 1, 1), types.XYZ(1, 0, 0)), true, 4},
		// Missing entirely
		{types.NewRay(types.XYZ(-5, 3, 0), types.XYZ(1, 0, 0)), false, 0},
		{types.NewRay(types.XYZ(-5, 0, 0), types.XYZ(-1, 0, 0)), false, 0},
		{types.NewRay(types.XYZ(-5, -5, 0), types.XYZ(1, 0.2, 0)), false, 0},
	}

	for idx, s := range specs {
		tMin, _, slabOk := box.Slab(s.ray)
		faceHit, faceOk := box.IntersectFaces(s.ray)
		hit, ok := box.Intersect(s.ray)

		if slabOk != s.expHit || faceOk != s.expHit || ok != s.expHit {
			t.Fatalf("[spec %d] expected hit = %t; got slab %t, faces %t, box %t", idx, s.expHit, slabOk, faceOk, ok)
		}
		if !s.expHit {
			continue
		}

		if math.Abs(tMin-s.expDist) > 1e-9 || math.Abs(faceHit.Distance-s.expDist) > 1e-9 {
			t.Fatalf("[spec %d] expected distance %f; got slab %f, faces %f", idx, s.expDist, tMin, faceHit.Distance)
		}
		if hit != faceHit {
			t.Fatalf("[spec %d] expected slab fast-reject to not alter the face hit", idx)
		}
	}
}

func TestBoxHitNormals(t *testing.T) {
	box := NewBox(types.XYZ(10, 0, 0), types.XYZ(2, 4, 6), testMaterial)

	type spec struct {
		ray       types.Ray
		expDist   float64
		expNormal types.Vec3
	}
	specs := []spec{
		{types.NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0)), 9, types.XYZ(-1, 0, 0)},
		{types.NewRay(types.XYZ(10, -10, 0), types.XYZ(0, 1, 0)), 8, types.XYZ(0, -1, 0)},
		{types.NewRay(types.XYZ(10, 0, 10), types.XYZ(0, 0, -1)), 7, types.XYZ(0, 0, 1)},
		// From inside the box
		{types.NewRay(types.XYZ(10, 0, 0), types.XYZ(0, 0, 1)), 3, types.XYZ(0, 0, -1)},
	}

	for idx, s := range specs {
		hit, ok := box.Intersect(s.ray)
		if !ok {
			t.Fatalf("[spec %d] expected ray to hit the box", idx)
		}
		if math.Abs(hit.Distance-s.expDist) > 1e-9 {
			t.Fatalf("[spec %d] expected distance %f; got %f", idx, s.expDist, hit.Distance)
		}

		// Face normals always face against the incoming ray
		if !types.ApproxEqual(hit.Normal, s.expNormal, 1e-12) {
			t.Fatalf("[spec %d] expected normal %v; got %v", idx, s.expNormal, hit.Normal)
		}
	}
}

func TestRotatedBoxIdentity(t *testing.T) {
	center := types.XYZ(1, 2, 3)
	size := types.XYZ(2, 3, 4)
	box := NewBox(center, size, testMaterial)
	rotated := NewRotatedBox(center, size, types.QuatIdent(), testMaterial)

	rays := []types.Ray{
		types.NewRay(types.XYZ(-10, 2, 3), types.XYZ(1, 0, 0)),
		types.NewRay(types.XYZ(-10, -10, -10), types.XYZ(1, 1.1, 1.2)),
		types.NewRay(types.XYZ(1, 2, 3), types.XYZ(0.3, -0.2, 1)),
		types.NewRay(types.XYZ(-10, 20, 3), types.XYZ(1, 0, 0)),
	}

	for idx, ray := range rays {
		expHit, expOk := box.Intersect(ray)
		hit, ok := rotated.Intersect(ray)
		if ok != expOk {
			t.Fatalf("[ray %d] expected hit = %t; got %t", idx, expOk, ok)
		}
		if !ok {
			continue
		}
		if math.Abs(hit.Distance-expHit.Distance) > 1e-9 {
			t.Fatalf("[ray %d] expected distance %f; got %f", idx, expHit.Distance, hit.Distance)
		}
		if !types.ApproxEqual(hit.Point, expHit.Point, 1e-9) || !types.ApproxEqual(hit.Normal, expHit.Normal, 1e-9) {
			t.Fatalf("[ray %d] expected point %v normal %v; got point %v normal %v", idx, expHit.Point, expHit.Normal, hit.Point, hit.Normal)
		}
	}
}

func TestRotatedBox(t *testing.T) {
	// A 2x2x2 cube rotated 45 degrees around Z has a diamond shaped cross
	// section: |x - 10| + |y| <= sqrt(2).
	box := NewRotatedBox(types.XYZ(10, 0, 0), types.XYZ(2, 2, 2), types.QuatFromAxisAngle(types.XYZ(0, 0, 1), 45), testMaterial)

	ray := types.NewRay(types.XYZ(0, 0.3, 0.5), types.XYZ(1, 0, 0))
	hit, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("expected ray to hit the rotated box")
	}

	expDist := 10 - math.Sqrt2 + 0.3
	if math.Abs(hit.Distance-expDist) > 1e-9 {
		t.Fatalf("expected distance %f; got %f", expDist, hit.Distance)
	}
	if !types.ApproxEqual(hit.Point, types.XYZ(expDist, 0.3, 0.5), 1e-9) {
		t.Fatalf("expected hit point on the original ray; got %v", hit.Point)
	}

	s := math.Sqrt2 / 2
	if !types.ApproxEqual(hit.Normal, types.XYZ(-s, s, 0), 1e-9) {
		t.Fatalf("expected rotated face normal (%f, %f, 0); got %v", -s, s, hit.Normal)
	}

	// This ray passes through the corner of the unrotated box only
	miss := types.NewRay(types.XYZ(10.95, 0.95, -10), types.XYZ(0, 0, 1))
	if _, ok := NewBox(types.XYZ(10, 0, 0), types.XYZ(2, 2, 2), testMaterial).Intersect(miss); !ok {
		t.Fatal("expected ray to hit the unrotated box")
	}
	if _, ok := box.Intersect(miss); ok {
		t.Fatal("expected ray to miss the rotated box")
	}
}
