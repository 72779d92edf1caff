package writer

import "github.com/achilleasa/polaris-cpu/asset/scene"

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition
	Write(*scene.Definition) error
}

// Write scene to binary format.
func WriteScene(def *scene.Definition, filename string) error {
	writer := newZipSceneWriter(filename)
	return writer.Write(def)
}
