package lights

import (
	"fmt"
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// DirectionalLight emits parallel rays from infinitely far away, like
// sunlight. Intensity is uniform in space.
type DirectionalLight struct {
	direction core.Vec3 // unit direction the light travels
	color     core.Vec3
	intensity float64
}

// NewDirectionalLight creates a directional light. The direction is the
// direction light travels and must have non-zero length.
func NewDirectionalLight(direction, color core.Vec3, intensity float64) (*DirectionalLight, error) {
	if direction.LengthSquared() == 0 {
		return nil, fmt.Errorf("directional light: direction must have non-zero length")
	}
	if intensity < 0 {
		return nil, fmt.Errorf("directional light: intensity must be non-negative, got %g", intensity)
	}
	return &DirectionalLight{
		direction: direction.Normalize(),
		color:     clampColor(color),
		intensity: intensity,
	}, nil
}

// WithIntensity returns a copy of the light with only the intensity changed
func (l *DirectionalLight) WithIntensity(intensity float64) *DirectionalLight {
	copied := *l
	if intensity < 0 {
		intensity = 0
	}
	copied.intensity = intensity
	return &copied
}

func (l *DirectionalLight) Kind() Kind         { return KindDirectional }
func (l *DirectionalLight) Color() core.Vec3   { return l.color }
func (l *DirectionalLight) Intensity() float64 { return l.intensity }

// Position is undefined for infinite lights
func (l *DirectionalLight) Position() (core.Vec3, bool) { return core.Vec3{}, false }

// DirectionFrom points opposite the travel direction, toward the light
func (l *DirectionalLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.direction.Negate()
}

// DirectionAt is the direction the light travels
func (l *DirectionalLight) DirectionAt(point core.Vec3) core.Vec3 {
	return l.direction
}

// AttenuatedIntensity is independent of the sample point
func (l *DirectionalLight) AttenuatedIntensity(point core.Vec3) float64 {
	return l.intensity
}

// VisibleFrom casts a shadow ray to infinity against the travel direction
func (l *DirectionalLight) VisibleFrom(point core.Vec3, occ Occluder) bool {
	return unoccluded(point, l.direction.Negate(), math.Inf(1), occ)
}
