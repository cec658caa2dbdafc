package lights

import (
	"fmt"
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// PulsatingPointLight is a point light whose intensity pulses sinusoidally
// and whose position oscillates on each axis at independent phase speeds.
// The elapsed-time accumulator is advanced by Update, once per frame,
// before the parallel shading phase reads the light.
type PulsatingPointLight struct {
	basePosition core.Vec3
	color        core.Vec3
	intensity    float64
	attenuation  Attenuation

	pulseSpeed    float64
	pulseAmp      float64   // fraction of base intensity, in [0,1]
	moveAmplitude core.Vec3 // per-axis oscillation extents
	moveSpeed     core.Vec3 // per-axis phase speeds

	elapsed float64
}

// NewPulsatingPointLight creates a pulsating point light. pulseAmp must be
// in [0,1] so the modulated intensity never goes negative.
func NewPulsatingPointLight(position, color core.Vec3, intensity float64, attenuation Attenuation, pulseSpeed, pulseAmp float64, moveAmplitude, moveSpeed core.Vec3) (*PulsatingPointLight, error) {
	if intensity < 0 {
		return nil, fmt.Errorf("pulsating light: intensity must be non-negative, got %g", intensity)
	}
	if pulseAmp < 0 || pulseAmp > 1 {
		return nil, fmt.Errorf("pulsating light: pulse amplitude must be in [0,1], got %g", pulseAmp)
	}
	if attenuation.Constant < 0 || attenuation.Linear < 0 || attenuation.Quadratic < 0 {
		return nil, fmt.Errorf("pulsating light: attenuation coefficients must be non-negative, got %+v", attenuation)
	}
	return &PulsatingPointLight{
		basePosition:  position,
		color:         clampColor(color),
		intensity:     intensity,
		attenuation:   attenuation,
		pulseSpeed:    pulseSpeed,
		pulseAmp:      pulseAmp,
		moveAmplitude: moveAmplitude,
		moveSpeed:     moveSpeed,
	}, nil
}

// Update advances the elapsed-time accumulator. Single writer: must be
// sequenced strictly before shading reads this light.
func (l *PulsatingPointLight) Update(dt float64) {
	l.elapsed += dt
}

// pulse returns the current modulation factor, always in [1-amp, 1+amp]
func (l *PulsatingPointLight) pulse() float64 {
	return 1.0 + l.pulseAmp*math.Sin(l.elapsed*l.pulseSpeed)
}

// currentPosition applies the per-axis sine/cosine offsets
func (l *PulsatingPointLight) currentPosition() core.Vec3 {
	return l.basePosition.Add(core.NewVec3(
		math.Sin(l.elapsed*l.moveSpeed.X)*l.moveAmplitude.X,
		math.Cos(l.elapsed*l.moveSpeed.Y)*l.moveAmplitude.Y,
		math.Sin(l.elapsed*l.moveSpeed.Z)*l.moveAmplitude.Z,
	))
}

func (l *PulsatingPointLight) Kind() Kind { return KindPulsating }

// Color returns the base color modulated by the current pulse, clamped to
// the display range
func (l *PulsatingPointLight) Color() core.Vec3 {
	return clampColor(l.color.Multiply(l.pulse()))
}

func (l *PulsatingPointLight) Intensity() float64 { return l.intensity }

func (l *PulsatingPointLight) Position() (core.Vec3, bool) { return l.currentPosition(), true }

// DirectionFrom returns the unit direction from point toward the light
func (l *PulsatingPointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.currentPosition().Subtract(point).Normalize()
}

// DirectionAt returns the direction the light projects onto point
func (l *PulsatingPointLight) DirectionAt(point core.Vec3) core.Vec3 {
	return point.Subtract(l.currentPosition()).Normalize()
}

// AttenuatedIntensity applies distance falloff and the current pulse
func (l *PulsatingPointLight) AttenuatedIntensity(point core.Vec3) float64 {
	distance := l.currentPosition().Subtract(point).Length()
	return l.intensity * l.pulse() * l.attenuation.falloff(distance)
}

// VisibleFrom casts a shadow ray toward the current position
func (l *PulsatingPointLight) VisibleFrom(point core.Vec3, occ Occluder) bool {
	toLight := l.currentPosition().Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return true
	}
	return unoccluded(point, toLight.Normalize(), distance, occ)
}
