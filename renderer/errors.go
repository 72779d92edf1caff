package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrTracerNotDefined = errors.New("renderer: no tracer defined")
	ErrInvalidFrameSize = errors.New("renderer: frame dimensions must be non-zero")
	ErrNoSamples        = errors.New("renderer: samples per pixel must be non-zero")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
)
