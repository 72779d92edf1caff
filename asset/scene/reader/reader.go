package reader

import (
	"fmt"

	"github.com/achilleasa/polaris-cpu/asset"
	"github.com/achilleasa/polaris-cpu/asset/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Definition, error)
}

// Read scene from a local file or http(s) URL.
func ReadScene(filename string) (*scene.Definition, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return ReadResource(res)
}

// Read scene from a resource selecting the reader based on its extension.
func ReadResource(res *asset.Resource) (*scene.Definition, error) {
	var reader Reader
	switch res.Ext() {
	case ".scene", ".txt":
		reader = newTextSceneReader()
	case ".zip":
		reader = newZipSceneReader()
	default:
		return nil, fmt.Errorf("readScene: unsupported file format %q", res.Ext())
	}
	return reader.Read(res)
}
