package lights

import (
	"fmt"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// AmbientLight contributes flat, directionless intensity everywhere
type AmbientLight struct {
	color     core.Vec3
	intensity float64
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(color core.Vec3, intensity float64) (*AmbientLight, error) {
	if intensity < 0 {
		return nil, fmt.Errorf("ambient light: intensity must be non-negative, got %g", intensity)
	}
	return &AmbientLight{color: clampColor(color), intensity: intensity}, nil
}

func (l *AmbientLight) Kind() Kind         { return KindAmbient }
func (l *AmbientLight) Color() core.Vec3   { return l.color }
func (l *AmbientLight) Intensity() float64 { return l.intensity }

// Position is undefined for ambient light
func (l *AmbientLight) Position() (core.Vec3, bool) { return core.Vec3{}, false }

// DirectionFrom is the zero vector: ambient light has no direction
func (l *AmbientLight) DirectionFrom(point core.Vec3) core.Vec3 { return core.Vec3{} }

// DirectionAt is the zero vector: ambient light has no direction
func (l *AmbientLight) DirectionAt(point core.Vec3) core.Vec3 { return core.Vec3{} }

// AttenuatedIntensity is constant everywhere
func (l *AmbientLight) AttenuatedIntensity(point core.Vec3) float64 { return l.intensity }

// VisibleFrom is always true regardless of occluders
func (l *AmbientLight) VisibleFrom(point core.Vec3, occ Occluder) bool { return true }
