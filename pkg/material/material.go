package material

import (
	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
)

// Kind tags a material variant, used to select special-case light handling
type Kind string

const (
	KindMetal       Kind = "metal"
	KindPlastic     Kind = "plastic"
	KindTiled       Kind = "tiled"
	KindGlass       Kind = "glass"
	KindHolographic Kind = "holographic"
	KindProcedural  Kind = "procedural"
)

// Material converts geometric and light data into an outgoing color
// contribution. Implementations are immutable after construction, except
// for the one-time object transform side channel and the single-writer
// time advance on animated variants.
type Material interface {
	Kind() Kind

	// Shade returns the color contribution of one light at a surface point.
	// Channels are clamped to [0,1] at color construction.
	Shade(point, normal core.Vec3, light lights.Light, viewPos core.Vec3) core.Vec3

	// Properties returns the surface parameters the integrator uses to
	// decide reflection/refraction recursion
	Properties() Properties
}

// Transformable materials receive the owning primitive's object-to-world
// transform once at setup, so object-space procedural patterns compute
// correctly regardless of placement
type Transformable interface {
	SetObjectTransform(m core.Matrix4)
}

// Animated materials carry an elapsed-time accumulator advanced by Update,
// at most once per logical frame before shading reads it
type Animated interface {
	Update(dt float64)
}

// Properties holds the common surface parameters. Roughness, metalness and
// transparency are clamped to [0,1] and the refractive index floored at 1
// by NewProperties and every With derivation.
type Properties struct {
	Albedo          core.Vec3
	Roughness       float64
	Metalness       float64
	Reflectivity    float64
	RefractiveIndex float64
	Transparency    float64
}

// NewProperties creates a clamped parameter set
func NewProperties(albedo core.Vec3, roughness, metalness, reflectivity, refractiveIndex, transparency float64) Properties {
	return Properties{
		Albedo:          albedo.Clamp(0, 1),
		Roughness:       clamp01(roughness),
		Metalness:       clamp01(metalness),
		Reflectivity:    clamp01(reflectivity),
		RefractiveIndex: maxFloat(refractiveIndex, 1.0),
		Transparency:    clamp01(transparency),
	}
}

// WithAlbedo returns a copy with only the albedo changed
func (p Properties) WithAlbedo(albedo core.Vec3) Properties {
	p.Albedo = albedo.Clamp(0, 1)
	return p
}

// WithRoughness returns a copy with only the roughness changed
func (p Properties) WithRoughness(roughness float64) Properties {
	p.Roughness = clamp01(roughness)
	return p
}

// WithMetalness returns a copy with only the metalness changed
func (p Properties) WithMetalness(metalness float64) Properties {
	p.Metalness = clamp01(metalness)
	return p
}

// WithReflectivity returns a copy with only the reflectivity changed
func (p Properties) WithReflectivity(reflectivity float64) Properties {
	p.Reflectivity = clamp01(reflectivity)
	return p
}

// WithRefractiveIndex returns a copy with only the refractive index changed
func (p Properties) WithRefractiveIndex(ior float64) Properties {
	p.RefractiveIndex = maxFloat(ior, 1.0)
	return p
}

// WithTransparency returns a copy with only the transparency changed
func (p Properties) WithTransparency(transparency float64) Properties {
	p.Transparency = clamp01(transparency)
	return p
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SurfaceInteraction contains information about a ray-object intersection
type SurfaceInteraction struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (si *SurfaceInteraction) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	si.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if si.FrontFace {
		si.Normal = outwardNormal
	} else {
		si.Normal = outwardNormal.Multiply(-1)
	}
}
