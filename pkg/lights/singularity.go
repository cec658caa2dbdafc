package lights

import (
	"fmt"
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// SingularityLight is a stylized "black hole" source: zero intensity at or
// inside its event horizon, asymptotically approaching the base intensity
// far away, with a lensing warp applied to its projected direction. The
// warp is a directional distortion only, not a geometry change.
type SingularityLight struct {
	position      core.Vec3
	color         core.Vec3
	intensity     float64
	horizonRadius float64
	warpFactor    float64
}

// NewSingularityLight creates a singularity light. The event horizon radius
// must be positive.
func NewSingularityLight(position, color core.Vec3, intensity, horizonRadius, warpFactor float64) (*SingularityLight, error) {
	if intensity < 0 {
		return nil, fmt.Errorf("singularity light: intensity must be non-negative, got %g", intensity)
	}
	if horizonRadius <= 0 {
		return nil, fmt.Errorf("singularity light: horizon radius must be positive, got %g", horizonRadius)
	}
	return &SingularityLight{
		position:      position,
		color:         clampColor(color),
		intensity:     intensity,
		horizonRadius: horizonRadius,
		warpFactor:    warpFactor,
	}, nil
}

// HorizonRadius returns the event horizon radius
func (l *SingularityLight) HorizonRadius() float64 { return l.horizonRadius }

func (l *SingularityLight) Kind() Kind         { return KindSingularity }
func (l *SingularityLight) Color() core.Vec3   { return l.color }
func (l *SingularityLight) Intensity() float64 { return l.intensity }

func (l *SingularityLight) Position() (core.Vec3, bool) { return l.position, true }

// DirectionFrom returns the unit direction from point toward the light
func (l *SingularityLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.position.Subtract(point).Normalize()
}

// DirectionAt returns the projected direction scaled by the lensing warp
// k/(1-e^(-d/R)). The zero-distance singular case returns the zero vector.
func (l *SingularityLight) DirectionAt(point core.Vec3) core.Vec3 {
	offset := point.Subtract(l.position)
	distance := offset.Length()
	if distance == 0 {
		return core.Vec3{}
	}
	warp := l.warpFactor / (1.0 - math.Exp(-distance/l.horizonRadius))
	return offset.Normalize().Multiply(warp)
}

// AttenuatedIntensity is exactly 0 at or inside the event horizon and
// scales as base*(1-R/d) beyond it
func (l *SingularityLight) AttenuatedIntensity(point core.Vec3) float64 {
	distance := l.position.Subtract(point).Length()
	if distance <= l.horizonRadius {
		return 0.0
	}
	return l.intensity * (1.0 - l.horizonRadius/distance)
}

// VisibleFrom is false inside the horizon; beyond it the shadow ray is cast
// to infinity
func (l *SingularityLight) VisibleFrom(point core.Vec3, occ Occluder) bool {
	toLight := l.position.Subtract(point)
	if toLight.Length() <= l.horizonRadius {
		return false
	}
	return unoccluded(point, toLight.Normalize(), math.Inf(1), occ)
}
