package material

import (
	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
)

// Metal is a fully metallic surface: albedo-tinted specular, no diffuse
// transmission, reflections blurred by roughness
type Metal struct {
	props Properties
}

// NewMetal creates a metal material
func NewMetal(albedo core.Vec3, roughness, reflectivity float64) *Metal {
	return &Metal{
		props: NewProperties(albedo, roughness, 1.0, reflectivity, 1.0, 0),
	}
}

// WithProperties returns a copy using the given parameter set
func (m *Metal) WithProperties(props Properties) *Metal {
	return &Metal{props: props}
}

func (m *Metal) Kind() Kind             { return KindMetal }
func (m *Metal) Properties() Properties { return m.props }

// Shade evaluates the metallic BRDF for one light
func (m *Metal) Shade(point, normal core.Vec3, light lights.Light, viewPos core.Vec3) core.Vec3 {
	return shadeSurface(m.props, point, normal, light, viewPos)
}
