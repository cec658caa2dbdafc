package integrator

import (
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
	"github.com/nocturne-render/nocturne/pkg/material"
)

// Scene is the geometry/light contract the integrator consumes. IsOccluded
// doubles as the lights.Occluder oracle for shadow tests.
type Scene interface {
	NearestHit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)
	IsOccluded(ray core.Ray, maxDistance float64) bool
	Lights() []lights.Light
	BackgroundColors() (top, bottom core.Vec3)
}

const (
	// hitEpsilon is the minimum ray parameter for nearest-hit queries
	hitEpsilon = 1e-3
	// surfaceBias offsets child ray origins off the surface along the normal
	surfaceBias = 1e-3
)

// Config contains integrator settings
type Config struct {
	MaxDepth int // Maximum reflection/refraction bounces
	// MinContribution terminates recursion early once the accumulated
	// attenuation falls below it. Zero disables the optimization.
	MinContribution float64
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:        8,
		MinContribution: 1e-3,
	}
}

// Whitted is a recursive direct-lighting integrator: per hit it accumulates
// shadowed contributions from every scene light, then spawns depth-limited
// reflection and refraction rays and blends them in
type Whitted struct {
	config  Config
	sampler core.Sampler
}

// NewWhitted creates a Whitted integrator. The sampler drives the roughness
// jitter on reflection rays.
func NewWhitted(config Config, sampler core.Sampler) *Whitted {
	return &Whitted{config: config, sampler: sampler}
}

// Trace is the public entry point: computes the color for a ray with the
// given remaining recursion depth
func (w *Whitted) Trace(scn Scene, ray core.Ray, depthRemaining int) core.Vec3 {
	return w.rayColor(scn, ray, depthRemaining, 1.0)
}

// rayColor runs the per-ray state machine: find nearest hit, shade direct
// lighting, recurse on reflection/refraction, combine
func (w *Whitted) rayColor(scn Scene, ray core.Ray, depth int, importance float64) core.Vec3 {
	hit, isHit := scn.NearestHit(ray, hitEpsilon, math.Inf(1))
	if !isHit {
		return w.backgroundGradient(scn, ray)
	}

	color := w.shadeDirect(scn, ray, hit)

	// Depth exhausted: terminal state, direct lighting only
	if depth <= 0 {
		return color
	}

	props := hit.Material.Properties()
	unitDir := ray.Direction.Normalize()
	cosTheta := math.Max(-unitDir.Dot(hit.Normal), 0)

	if props.Reflectivity > 0 {
		// Fresnel-weighted reflectivity: base weight at normal incidence,
		// rising toward full mirror at grazing angles
		weight := material.SchlickFresnel(cosTheta, props.Reflectivity)
		if importance*weight >= w.config.MinContribution {
			reflected := w.traceReflection(scn, unitDir, hit, props, depth, importance*weight)
			tint := core.NewVec3(1, 1, 1).Lerp(props.Albedo, props.Metalness)
			color = color.Add(reflected.MultiplyVec(tint).Multiply(weight))
		}
	}

	if props.Transparency > 0 && importance*props.Transparency >= w.config.MinContribution {
		transmitted := w.traceRefraction(scn, unitDir, hit, props, depth, importance*props.Transparency)
		color = color.Multiply(1.0 - props.Transparency).
			Add(transmitted.MultiplyVec(props.Albedo).Multiply(props.Transparency))
	}

	return color.Clamp(0, 1)
}

// shadeDirect accumulates shadowed contributions from every scene light.
// One shadow test per (light, hit point) pair per recursion level.
func (w *Whitted) shadeDirect(scn Scene, ray core.Ray, hit *material.SurfaceInteraction) core.Vec3 {
	var direct core.Vec3
	for _, light := range scn.Lights() {
		if !light.VisibleFrom(hit.Point, scn) {
			continue
		}
		direct = direct.Add(hit.Material.Shade(hit.Point, hit.Normal, light, ray.Origin))
	}
	return direct.Clamp(0, 1)
}

// traceReflection spawns a roughness-perturbed mirror ray offset along the
// surface normal
func (w *Whitted) traceReflection(scn Scene, unitDir core.Vec3, hit *material.SurfaceInteraction, props material.Properties, depth int, importance float64) core.Vec3 {
	mirror := material.Reflect(unitDir, hit.Normal)
	direction := material.PerturbReflection(mirror, props.Roughness, w.sampler)
	if direction.Dot(hit.Normal) <= 0 {
		// Jitter pushed the ray below the surface: fall back to the ideal
		// mirror direction
		direction = mirror.Normalize()
	}
	origin := hit.Point.Add(hit.Normal.Multiply(surfaceBias))
	return w.rayColor(scn, core.NewRay(origin, direction), depth-1, importance)
}

// traceRefraction spawns a Snell refraction ray, degenerating to pure
// reflection on total internal reflection
func (w *Whitted) traceRefraction(scn Scene, unitDir core.Vec3, hit *material.SurfaceInteraction, props material.Properties, depth int, importance float64) core.Vec3 {
	ratio := props.RefractiveIndex
	if hit.FrontFace {
		ratio = 1.0 / props.RefractiveIndex
	}

	direction, refracted := material.Refract(unitDir, hit.Normal, ratio)
	var origin core.Vec3
	if refracted {
		// Continue through the surface
		origin = hit.Point.Subtract(hit.Normal.Multiply(surfaceBias))
	} else {
		// Total internal reflection
		direction = material.Reflect(unitDir, hit.Normal)
		origin = hit.Point.Add(hit.Normal.Multiply(surfaceBias))
	}

	return w.rayColor(scn, core.NewRay(origin, direction), depth-1, importance)
}

// backgroundGradient returns a gradient color based on ray direction
func (w *Whitted) backgroundGradient(scn Scene, r core.Ray) core.Vec3 {
	topColor, bottomColor := scn.BackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
