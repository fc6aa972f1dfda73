package waveguide

import (
	"errors"
	"fmt"
)

var (
	// ErrLayerCount is returned when a model or view is asked for fewer than one layer.
	ErrLayerCount = errors.New("layer count must be at least 1")

	// ErrBoundaryCount is returned when a boundary sequence does not hold layers+1 values.
	ErrBoundaryCount = errors.New("boundary count does not match layer count")

	// ErrBoundaryEndpoints is returned when a boundary sequence does not start
	// at 0 or does not end at the waveguide width.
	ErrBoundaryEndpoints = errors.New("boundary endpoints must be 0 and the waveguide width")

	// ErrBoundaryOrder is returned when a boundary sequence decreases.
	ErrBoundaryOrder = errors.New("boundaries must be non-decreasing")

	// ErrGeometry is returned for unusable geometry constants.
	ErrGeometry = errors.New("invalid geometry")

	// ErrConfigFormat is returned when a config file extension is not recognized.
	ErrConfigFormat = errors.New("unsupported config format")
)

// ShaderStage identifies which step of program creation failed.
type ShaderStage string

const (
	StageVertex   ShaderStage = "vertex"
	StageFragment ShaderStage = "fragment"
	StageLink     ShaderStage = "link"
)

// ShaderError reports a shader compilation or program link failure.
// It is fatal: a renderer that produced one must not be used.
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == StageLink {
		return fmt.Sprintf("shader program linking failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}
