package lights

import (
	"fmt"
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// SpotLight is a point light restricted to a cone around an axis, with a
// linear intensity ramp between the inner and outer cone angles
type SpotLight struct {
	position    core.Vec3
	axis        core.Vec3 // unit direction the cone points
	color       core.Vec3
	intensity   float64
	attenuation Attenuation
	cosInner    float64 // cos(innerAngle/2)
	cosOuter    float64 // cos(outerAngle/2)
}

// NewSpotLight creates a spot light. innerAngle and outerAngle are the full
// cone angles in radians; innerAngle must not exceed outerAngle.
func NewSpotLight(position, axis, color core.Vec3, intensity float64, attenuation Attenuation, innerAngle, outerAngle float64) (*SpotLight, error) {
	if axis.LengthSquared() == 0 {
		return nil, fmt.Errorf("spot light: axis must have non-zero length")
	}
	if intensity < 0 {
		return nil, fmt.Errorf("spot light: intensity must be non-negative, got %g", intensity)
	}
	if attenuation.Constant < 0 || attenuation.Linear < 0 || attenuation.Quadratic < 0 {
		return nil, fmt.Errorf("spot light: attenuation coefficients must be non-negative, got %+v", attenuation)
	}
	if innerAngle < 0 || outerAngle <= 0 || innerAngle > outerAngle {
		return nil, fmt.Errorf("spot light: need 0 <= inner <= outer, got inner=%g outer=%g", innerAngle, outerAngle)
	}
	return &SpotLight{
		position:    position,
		axis:        axis.Normalize(),
		color:       clampColor(color),
		intensity:   intensity,
		attenuation: attenuation,
		cosInner:    math.Cos(innerAngle / 2),
		cosOuter:    math.Cos(outerAngle / 2),
	}, nil
}

func (l *SpotLight) Kind() Kind         { return KindSpot }
func (l *SpotLight) Color() core.Vec3   { return l.color }
func (l *SpotLight) Intensity() float64 { return l.intensity }

func (l *SpotLight) Position() (core.Vec3, bool) { return l.position, true }

// DirectionFrom returns the unit direction from point toward the light
func (l *SpotLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.position.Subtract(point).Normalize()
}

// DirectionAt returns the direction the light projects onto point
func (l *SpotLight) DirectionAt(point core.Vec3) core.Vec3 {
	return point.Subtract(l.position).Normalize()
}

// ConeFactor returns the cone ramp at point: exactly 1 inside the inner
// cone, exactly 0 outside the outer cone, linear in between
func (l *SpotLight) ConeFactor(point core.Vec3) float64 {
	toPoint := point.Subtract(l.position)
	if toPoint.LengthSquared() == 0 {
		return 1.0
	}
	cosAngle := l.axis.Dot(toPoint.Normalize())
	if cosAngle >= l.cosInner {
		return 1.0
	}
	if cosAngle <= l.cosOuter {
		return 0.0
	}
	return (cosAngle - l.cosOuter) / (l.cosInner - l.cosOuter)
}

// AttenuatedIntensity combines point-light falloff with the cone ramp
func (l *SpotLight) AttenuatedIntensity(point core.Vec3) float64 {
	distance := l.position.Subtract(point).Length()
	return l.intensity * l.attenuation.falloff(distance) * l.ConeFactor(point)
}

// VisibleFrom casts a shadow ray from point toward the light position
func (l *SpotLight) VisibleFrom(point core.Vec3, occ Occluder) bool {
	toLight := l.position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return true
	}
	return unoccluded(point, toLight.Normalize(), distance, occ)
}
