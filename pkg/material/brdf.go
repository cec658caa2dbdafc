package material

import (
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
)

const (
	// minCosine floors view cosines used in divisions
	minCosine = 1e-4
	// specularCeiling caps runaway specular values at grazing angles
	specularCeiling = 16.0
	// ambientResponse is the minimal fixed-fraction response to ambient lights
	ambientResponse = 0.1
	// metalF0 is the fixed high Fresnel base for fully metallic surfaces
	metalF0 = 0.9
)

// F0FromIOR derives the normal-incidence reflectance for a dielectric:
// ((1-ior)/(1+ior))²
func F0FromIOR(ior float64) float64 {
	r0 := (1.0 - ior) / (1.0 + ior)
	return r0 * r0
}

// SchlickFresnel computes F0 + (1-F0)*(1-cosTheta)^5
func SchlickFresnel(cosTheta, f0 float64) float64 {
	c := clamp01(cosTheta)
	return f0 + (1.0-f0)*math.Pow(1.0-c, 5)
}

// GGXDistribution is the Trowbridge-Reitz microfacet distribution with
// alpha = roughness²
func GGXDistribution(nDotH, roughness float64) float64 {
	alpha := roughness * roughness
	alpha2 := alpha * alpha
	denom := nDotH*nDotH*(alpha2-1.0) + 1.0
	return alpha2 / math.Max(math.Pi*denom*denom, 1e-8)
}

// smithG1 is the single-direction Smith shadowing term x/(x(1-k)+k)
func smithG1(x, k float64) float64 {
	return x / math.Max(x*(1.0-k)+k, 1e-8)
}

// SmithGeometry combines shadowing for the light and view directions with
// k = (roughness+1)²/8
func SmithGeometry(nDotL, nDotV, roughness float64) float64 {
	k := (roughness + 1.0) * (roughness + 1.0) / 8.0
	return smithG1(nDotL, k) * smithG1(nDotV, k)
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract calculates the refraction of a unit vector using Snell's law.
// ok is false when the discriminant goes negative: total internal
// reflection, no refraction direction exists.
func Refract(uv, n core.Vec3, etaiOverEtat float64) (core.Vec3, bool) {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	sinTheta2 := 1.0 - cosTheta*cosTheta
	if etaiOverEtat*etaiOverEtat*sinTheta2 > 1.0 {
		return core.Vec3{}, false
	}
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel), true
}

// Reflectance calculates Fresnel reflectance for a refraction ratio using
// Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// PerturbReflection jitters an ideal reflection direction by a random point
// in the unit sphere scaled by roughness², approximating blurry reflections
// without full Monte Carlo sampling
func PerturbReflection(reflected core.Vec3, roughness float64, sampler core.Sampler) core.Vec3 {
	if roughness <= 0 {
		return reflected.Normalize()
	}
	jitter := core.RandomInUnitSphere(sampler).Multiply(roughness * roughness)
	return reflected.Add(jitter).Normalize()
}

// shadeSurface is the shared energy composition: Lambertian diffuse scaled
// by 1-metalness plus a GGX/Smith/Fresnel specular lobe, per resolved light
// sample. Cosines are clamped before any division or exponentiation and
// the result is clamped to the display range.
func shadeSurface(props Properties, point, normal core.Vec3, light lights.Light, viewPos core.Vec3) core.Vec3 {
	if light != nil && light.Kind() == lights.KindAmbient {
		return shadeAmbient(props, light)
	}

	sample, _ := lights.Resolve(light, point)
	if sample.Intensity <= 0 || sample.Direction.LengthSquared() == 0 {
		return core.Vec3{}
	}

	l := sample.Direction
	v := viewPos.Subtract(point).Normalize()
	if v.LengthSquared() == 0 {
		v = normal
	}
	h := l.Add(v).Normalize()

	nDotL := math.Max(normal.Dot(l), 0)
	if nDotL == 0 {
		return core.Vec3{}
	}
	nDotV := math.Max(normal.Dot(v), minCosine)
	nDotH := math.Max(normal.Dot(h), 0)
	hDotV := math.Max(h.Dot(v), 0)

	// Fresnel base: dielectric F0 from the IOR, pulled toward the fixed
	// metal base as metalness rises
	f0 := F0FromIOR(props.RefractiveIndex)
	f0 += (metalF0 - f0) * props.Metalness

	d := GGXDistribution(nDotH, props.Roughness)
	g := SmithGeometry(nDotL, nDotV, props.Roughness)
	f := SchlickFresnel(hDotV, f0)
	specular := math.Min(d*g*f/(4.0*nDotL*nDotV+1e-6), specularCeiling)

	// Metals tint their specular by the albedo; dielectrics reflect white
	specTint := core.NewVec3(1, 1, 1).Lerp(props.Albedo, props.Metalness)

	diffuse := props.Albedo.Multiply((1.0 - props.Metalness) * nDotL)
	color := diffuse.Add(specTint.Multiply(specular * nDotL)).
		MultiplyVec(sample.Color).
		Multiply(sample.Intensity)

	return color.Clamp(0, 1)
}

// shadeAmbient is the minimal fixed-fraction ambient response shared by
// materials that special-case ambient lights
func shadeAmbient(props Properties, light lights.Light) core.Vec3 {
	return props.Albedo.
		MultiplyVec(light.Color()).
		Multiply(ambientResponse * light.Intensity()).
		Clamp(0, 1)
}
