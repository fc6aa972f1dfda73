package waveguide

import (
	"math"
	"time"
)

// WaveProjection returns the column-major 3x3 matrix that maps logical
// coordinates into normalized device coordinates. viewWidth logical units
// span the full surface width; y is scaled by the surface aspect ratio so
// that one logical unit has the same pixel length on both axes.
func WaveProjection(viewWidth float32, surface Vec2) [9]float32 {
	var sx, sy float32
	if viewWidth != 0 {
		sx = 2 / viewWidth
	}
	if surface.Y != 0 {
		sy = sx * surface.X / surface.Y
	}
	return [9]float32{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 0,
	}
}

// Shade evaluates the realtime fragment shader on the CPU: the red channel
// intensity cos(offset - phase). The result is in [-1, 1]; the GPU clamps
// negative output to black.
func Shade(offset, phase float32) float32 {
	return float32(math.Cos(float64(offset - phase)))
}

// PhaseRate is the phase advance in radians per second.
const PhaseRate = math.Pi

// PhaseClock derives the animation phase from elapsed wall time.
type PhaseClock struct {
	start time.Time
}

// NewPhaseClock starts a clock at start.
func NewPhaseClock(start time.Time) *PhaseClock {
	return &PhaseClock{start: start}
}

// Phase returns the phase at now. It grows monotonically with time and is
// zero at the clock's start.
func (c *PhaseClock) Phase(now time.Time) float32 {
	return PhaseAt(now.Sub(c.start))
}

// PhaseAt converts an elapsed duration to a phase.
func PhaseAt(elapsed time.Duration) float32 {
	if elapsed < 0 {
		return 0
	}
	return float32(elapsed.Seconds() * PhaseRate)
}
