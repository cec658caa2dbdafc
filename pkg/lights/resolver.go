package lights

import (
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
)

// Sample is the uniform (direction, color, intensity) triple produced by
// the resolver so simple shaders need not special-case light variants.
// Direction is a unit vector toward the light, or the zero vector when the
// light has no directional contribution.
type Sample struct {
	Direction core.Vec3
	Color     core.Vec3
	Intensity float64
}

// upDirection is the defensive fallback direction for unknown variants
var upDirection = core.NewVec3(0, 1, 0)

// NeutralSample returns the defined fallback sample: zero intensity, the
// default up direction, and a near-black color. Resolution substitutes this
// instead of propagating a failure into the render loop.
func NeutralSample() Sample {
	return Sample{
		Direction: upDirection,
		Color:     core.NewVec3(0.05, 0.05, 0.05),
		Intensity: 0,
	}
}

// Resolve converts any light into a uniform sample at the given point.
// ok is false when the neutral or defensive fallback was substituted:
// a nil light yields the neutral sample, and an unrecognized kind yields
// the up direction with intensity capped at 1 so unknown future variants
// still shade plausibly.
func Resolve(l Light, point core.Vec3) (Sample, bool) {
	if l == nil {
		return NeutralSample(), false
	}

	switch l.Kind() {
	case KindAmbient:
		return Sample{
			Direction: core.Vec3{},
			Color:     l.Color(),
			Intensity: l.Intensity(),
		}, true

	case KindDirectional:
		// Fixed travel direction, negated to point toward the light
		return Sample{
			Direction: l.DirectionFrom(point),
			Color:     l.Color(),
			Intensity: l.AttenuatedIntensity(point),
		}, true

	case KindPoint, KindSpot, KindPulsating, KindBioCluster, KindSingularity, KindFractal:
		// Positional lights: normalized (position - point) at the already
		// attenuated intensity
		return Sample{
			Direction: l.DirectionFrom(point),
			Color:     l.Color(),
			Intensity: l.AttenuatedIntensity(point),
		}, true

	default:
		return Sample{
			Direction: upDirection,
			Color:     l.Color(),
			Intensity: math.Min(l.Intensity(), 1.0),
		}, false
	}
}
