package lights

import (
	"fmt"
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// BioClusterLight models a cluster of bioluminescent emitters sharing one
// pulse phase. Direction and intensity at a point resolve against the
// nearest emitter by Euclidean distance, never the centroid.
type BioClusterLight struct {
	emitters    []core.Vec3
	color       core.Vec3
	intensity   float64
	attenuation Attenuation
	pulseSpeed  float64
	pulseAmp    float64

	elapsed float64
}

// NewBioClusterLight creates a bioluminescent cluster light. At least one
// emitter position is required; pulseAmp must be in [0,1].
func NewBioClusterLight(emitters []core.Vec3, color core.Vec3, intensity float64, attenuation Attenuation, pulseSpeed, pulseAmp float64) (*BioClusterLight, error) {
	if len(emitters) == 0 {
		return nil, fmt.Errorf("biocluster light: at least one emitter position is required")
	}
	if intensity < 0 {
		return nil, fmt.Errorf("biocluster light: intensity must be non-negative, got %g", intensity)
	}
	if pulseAmp < 0 || pulseAmp > 1 {
		return nil, fmt.Errorf("biocluster light: pulse amplitude must be in [0,1], got %g", pulseAmp)
	}
	if attenuation.Constant < 0 || attenuation.Linear < 0 || attenuation.Quadratic < 0 {
		return nil, fmt.Errorf("biocluster light: attenuation coefficients must be non-negative, got %+v", attenuation)
	}
	copied := make([]core.Vec3, len(emitters))
	copy(copied, emitters)
	return &BioClusterLight{
		emitters:    copied,
		color:       clampColor(color),
		intensity:   intensity,
		attenuation: attenuation,
		pulseSpeed:  pulseSpeed,
		pulseAmp:    pulseAmp,
	}, nil
}

// Update advances the shared pulse phase. Single writer, once per frame.
func (l *BioClusterLight) Update(dt float64) {
	l.elapsed += dt
}

func (l *BioClusterLight) pulse() float64 {
	return 1.0 + l.pulseAmp*math.Sin(l.elapsed*l.pulseSpeed)
}

// NearestEmitter returns the emitter position closest to point
func (l *BioClusterLight) NearestEmitter(point core.Vec3) core.Vec3 {
	nearest := l.emitters[0]
	best := nearest.Subtract(point).LengthSquared()
	for _, e := range l.emitters[1:] {
		if d := e.Subtract(point).LengthSquared(); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}

func (l *BioClusterLight) Kind() Kind { return KindBioCluster }

// Color returns the base color modulated by the shared pulse
func (l *BioClusterLight) Color() core.Vec3 {
	return clampColor(l.color.Multiply(l.pulse()))
}

func (l *BioClusterLight) Intensity() float64 { return l.intensity }

// Position reports the first emitter; per-point queries resolve against the
// nearest emitter instead
func (l *BioClusterLight) Position() (core.Vec3, bool) { return l.emitters[0], true }

// DirectionFrom returns the unit direction toward the nearest emitter
func (l *BioClusterLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.NearestEmitter(point).Subtract(point).Normalize()
}

// DirectionAt returns the direction the nearest emitter projects onto point
func (l *BioClusterLight) DirectionAt(point core.Vec3) core.Vec3 {
	return point.Subtract(l.NearestEmitter(point)).Normalize()
}

// AttenuatedIntensity applies falloff from the nearest emitter and the pulse
func (l *BioClusterLight) AttenuatedIntensity(point core.Vec3) float64 {
	distance := l.NearestEmitter(point).Subtract(point).Length()
	return l.intensity * l.pulse() * l.attenuation.falloff(distance)
}

// VisibleFrom casts a shadow ray toward the nearest emitter
func (l *BioClusterLight) VisibleFrom(point core.Vec3, occ Occluder) bool {
	toLight := l.NearestEmitter(point).Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return true
	}
	return unoccluded(point, toLight.Normalize(), distance, occ)
}
