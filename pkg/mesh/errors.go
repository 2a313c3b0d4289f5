package mesh

import "errors"

var (
	// ErrEmptyModel is returned when a scene contains no geometry.
	ErrEmptyModel = errors.New("model is empty: the file contains no geometry")

	// ErrLoader marks files that could not be read, are corrupt, or have an
	// unsupported type.
	ErrLoader = errors.New("failed to load model")

	// ErrFormatConversion is returned when triangle data is missing or
	// references vertices that do not exist.
	ErrFormatConversion = errors.New("invalid triangle data")
)
