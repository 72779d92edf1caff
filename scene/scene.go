package scene

import "github.com/achilleasa/polaris-cpu/types"

// An ordered, immutable list of objects. A scene is shared read-only by all
// render workers.
type Scene struct {
	objects []Object
}

// Create a scene from the given objects. The object order is preserved and
// decides which object wins when two hits are at the same distance.
func NewScene(objects ...Object) *Scene {
	list := make([]Object, len(objects))
	copy(list, objects)
	return &Scene{objects: list}
}

// Get the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Get a copy of the scene object list.
func (s *Scene) Objects() []Object {
	list := make([]Object, len(s.objects))
	copy(list, s.objects)
	return list
}

// Find the closest hit along the ray by testing every object. Only a hit
// with a strictly smaller distance replaces the current one so ties resolve
// to the earliest object.
func (s *Scene) FirstHit(ray types.Ray) (Hit, bool) {
	var closest Hit
	found := false

	for _, obj := range s.objects {
		hit, ok := obj.Intersect(ray)
		if !ok {
			continue
		}

		if !found || hit.Distance < closest.Distance {
			closest, found = hit, true
		}
	}

	return closest, found
}
