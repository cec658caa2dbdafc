package lights

import (
	"fmt"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// PointLight emits uniformly in all directions from a single position with
// constant/linear/quadratic distance falloff
type PointLight struct {
	position    core.Vec3
	color       core.Vec3
	intensity   float64
	attenuation Attenuation
}

// NewPointLight creates a point light. Intensity and all attenuation
// coefficients must be non-negative.
func NewPointLight(position, color core.Vec3, intensity float64, attenuation Attenuation) (*PointLight, error) {
	if intensity < 0 {
		return nil, fmt.Errorf("point light: intensity must be non-negative, got %g", intensity)
	}
	if attenuation.Constant < 0 || attenuation.Linear < 0 || attenuation.Quadratic < 0 {
		return nil, fmt.Errorf("point light: attenuation coefficients must be non-negative, got %+v", attenuation)
	}
	return &PointLight{
		position:    position,
		color:       clampColor(color),
		intensity:   intensity,
		attenuation: attenuation,
	}, nil
}

// WithIntensity returns a copy of the light with only the intensity changed
func (l *PointLight) WithIntensity(intensity float64) *PointLight {
	copied := *l
	if intensity < 0 {
		intensity = 0
	}
	copied.intensity = intensity
	return &copied
}

// WithColor returns a copy of the light with only the color changed
func (l *PointLight) WithColor(color core.Vec3) *PointLight {
	copied := *l
	copied.color = clampColor(color)
	return &copied
}

func (l *PointLight) Kind() Kind         { return KindPoint }
func (l *PointLight) Color() core.Vec3   { return l.color }
func (l *PointLight) Intensity() float64 { return l.intensity }

func (l *PointLight) Position() (core.Vec3, bool) { return l.position, true }

// DirectionFrom returns the unit direction from point toward the light
func (l *PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.position.Subtract(point).Normalize()
}

// DirectionAt returns the direction the light projects onto point
func (l *PointLight) DirectionAt(point core.Vec3) core.Vec3 {
	return point.Subtract(l.position).Normalize()
}

// AttenuatedIntensity returns the intensity arriving at point after falloff
func (l *PointLight) AttenuatedIntensity(point core.Vec3) float64 {
	distance := l.position.Subtract(point).Length()
	return l.intensity * l.attenuation.falloff(distance)
}

// VisibleFrom casts a shadow ray from point toward the light position
func (l *PointLight) VisibleFrom(point core.Vec3, occ Occluder) bool {
	toLight := l.position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return true
	}
	return unoccluded(point, toLight.Normalize(), distance, occ)
}
