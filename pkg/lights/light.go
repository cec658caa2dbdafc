package lights

import (
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// Kind identifies a light variant. Dispatch on Kind is a closed switch:
// adding a variant means adding a constant here and an arm in Resolve.
type Kind string

const (
	KindPoint       Kind = "point"
	KindDirectional Kind = "directional"
	KindAmbient     Kind = "ambient"
	KindSpot        Kind = "spot"
	KindPulsating   Kind = "pulsating"
	KindBioCluster  Kind = "biocluster"
	KindSingularity Kind = "singularity"
	KindFractal     Kind = "fractal"
)

// Occluder is the scene-level occlusion oracle consumed by shadow tests.
// IsOccluded reports whether any geometry blocks the ray within
// (epsilon, maxDistance); it never counts the ray's own origin surface,
// which is handled by the shadow bias offset.
type Occluder interface {
	IsOccluded(ray core.Ray, maxDistance float64) bool
}

// Light is the contract every light variant exposes
type Light interface {
	Kind() Kind
	Color() core.Vec3
	Intensity() float64

	// Position returns the light's location; ok is false for infinite lights
	Position() (pos core.Vec3, ok bool)

	// DirectionFrom returns the unit direction from point toward the light
	DirectionFrom(point core.Vec3) core.Vec3

	// DirectionAt returns the direction the light projects onto point.
	// The negation convention is variant-specific; the singularity variant
	// additionally scales the result by its lensing warp.
	DirectionAt(point core.Vec3) core.Vec3

	// AttenuatedIntensity returns the scalar intensity arriving at point
	AttenuatedIntensity(point core.Vec3) float64

	// VisibleFrom reports whether the light reaches point given the occluder
	VisibleFrom(point core.Vec3, occ Occluder) bool
}

// Animated is implemented by lights carrying an elapsed-time accumulator.
// Update must be called at most once per frame, strictly before the
// parallel shading phase reads the light.
type Animated interface {
	Update(dt float64)
}

// shadowBias offsets shadow ray origins along the light direction to avoid
// self-intersection acne at the origin surface
const shadowBias = 1e-3

// attenuationFloor guards degenerate falloff denominators
const attenuationFloor = 1e-6

// unoccluded casts the shared shadow ray: origin offset by the bias along
// the direction to the light, occlusion queried up to distance minus the
// bias (or to infinity for infinite lights).
func unoccluded(point, toLight core.Vec3, distance float64, occ Occluder) bool {
	if occ == nil {
		return true
	}
	origin := point.Add(toLight.Multiply(shadowBias))
	maxDistance := distance
	if !math.IsInf(distance, 1) {
		maxDistance = distance - shadowBias
	}
	return !occ.IsOccluded(core.NewRay(origin, toLight), maxDistance)
}

// clampColor clamps color channels to the valid display range
func clampColor(c core.Vec3) core.Vec3 {
	return c.Clamp(0.0, 1.0)
}

// falloff evaluates the point-light attenuation 1/max(c0+c1*d+c2*d², ε)
func (a Attenuation) falloff(distance float64) float64 {
	denom := a.Constant + a.Linear*distance + a.Quadratic*distance*distance
	return 1.0 / math.Max(denom, attenuationFloor)
}

// Attenuation holds constant/linear/quadratic falloff coefficients
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// NoAttenuation returns coefficients for a light with no distance falloff
func NoAttenuation() Attenuation {
	return Attenuation{Constant: 1, Linear: 0, Quadratic: 0}
}
