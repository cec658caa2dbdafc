package material

import (
	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
)

// Glass is a transparent refractive surface. Direct lighting contributes
// only a thin Fresnel specular highlight; transmission and reflection are
// spawned by the integrator from the transparency and refractive index.
type Glass struct {
	props Properties
}

// NewGlass creates a transparent material. The tint attenuates transmitted
// light; a refractive index below 1 is floored at 1.
func NewGlass(tint core.Vec3, refractiveIndex, transparency float64) *Glass {
	return &Glass{
		// Low roughness keeps the highlight tight; reflectivity covers the
		// Fresnel-weighted mirror component at grazing angles
		props: NewProperties(tint, 0.05, 0, 0.1, refractiveIndex, transparency),
	}
}

// WithTransparency returns a copy with only the transparency changed
func (g *Glass) WithTransparency(transparency float64) *Glass {
	return &Glass{props: g.props.WithTransparency(transparency)}
}

func (g *Glass) Kind() Kind             { return KindGlass }
func (g *Glass) Properties() Properties { return g.props }

// Shade returns the specular highlight for one light. The diffuse term is
// suppressed: transmitted energy is handled by the refraction branch.
func (g *Glass) Shade(point, normal core.Vec3, light lights.Light, viewPos core.Vec3) core.Vec3 {
	// Shade with zero-albedo diffuse so only the specular lobe survives
	specOnly := g.props.WithAlbedo(core.Vec3{})
	return shadeSurface(specOnly, point, normal, light, viewPos)
}
