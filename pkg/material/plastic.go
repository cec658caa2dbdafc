package material

import (
	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
)

// Plastic is a dielectric surface: Lambertian diffuse with a white
// Fresnel-weighted specular lobe derived from the index of refraction
type Plastic struct {
	props Properties
}

// NewPlastic creates a dielectric material. A refractive index below 1 is
// floored at 1.
func NewPlastic(albedo core.Vec3, roughness, refractiveIndex float64) *Plastic {
	return &Plastic{
		props: NewProperties(albedo, roughness, 0, 0, refractiveIndex, 0),
	}
}

// WithReflectivity returns a copy that also spawns mirror reflections with
// the given weight
func (p *Plastic) WithReflectivity(reflectivity float64) *Plastic {
	return &Plastic{props: p.props.WithReflectivity(reflectivity)}
}

func (p *Plastic) Kind() Kind             { return KindPlastic }
func (p *Plastic) Properties() Properties { return p.props }

// Shade evaluates the dielectric BRDF for one light
func (p *Plastic) Shade(point, normal core.Vec3, light lights.Light, viewPos core.Vec3) core.Vec3 {
	return shadeSurface(p.props, point, normal, light, viewPos)
}
