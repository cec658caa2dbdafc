package lights

import (
	"fmt"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/noise"
)

// FractalLight modulates a point source by multi-octave coherent noise
// evaluated at the shaded point. Intensity is blended with a floor so it
// never collapses to zero.
type FractalLight struct {
	position   core.Vec3
	color      core.Vec3
	intensity  float64
	turbulence *noise.Turbulence
	frequency  float64
}

// Noise floor and span: intensity = base * (0.3 + 0.7*noise01)
const (
	fractalFloor = 0.3
	fractalSpan  = 0.7
)

// NewFractalLight creates a fractal noise light. The turbulence generator
// must be non-nil and the spatial frequency positive.
func NewFractalLight(position, color core.Vec3, intensity float64, turbulence *noise.Turbulence, frequency float64) (*FractalLight, error) {
	if intensity < 0 {
		return nil, fmt.Errorf("fractal light: intensity must be non-negative, got %g", intensity)
	}
	if turbulence == nil {
		return nil, fmt.Errorf("fractal light: turbulence generator is required")
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("fractal light: frequency must be positive, got %g", frequency)
	}
	return &FractalLight{
		position:   position,
		color:      clampColor(color),
		intensity:  intensity,
		turbulence: turbulence,
		frequency:  frequency,
	}, nil
}

func (l *FractalLight) Kind() Kind         { return KindFractal }
func (l *FractalLight) Color() core.Vec3   { return l.color }
func (l *FractalLight) Intensity() float64 { return l.intensity }

func (l *FractalLight) Position() (core.Vec3, bool) { return l.position, true }

// DirectionFrom returns the unit direction from point toward the light
func (l *FractalLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.position.Subtract(point).Normalize()
}

// DirectionAt returns the direction the light projects onto point
func (l *FractalLight) DirectionAt(point core.Vec3) core.Vec3 {
	return point.Subtract(l.position).Normalize()
}

// AttenuatedIntensity modulates the base intensity by turbulence at the
// shaded point, floored so it never reaches zero
func (l *FractalLight) AttenuatedIntensity(point core.Vec3) float64 {
	n := l.turbulence.Value01(point.X*l.frequency, point.Y*l.frequency, point.Z*l.frequency)
	return l.intensity * (fractalFloor + fractalSpan*n)
}

// VisibleFrom casts a shadow ray from point toward the light position
func (l *FractalLight) VisibleFrom(point core.Vec3, occ Occluder) bool {
	toLight := l.position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return true
	}
	return unoccluded(point, toLight.Normalize(), distance, occ)
}
