package material

import (
	"fmt"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
	"github.com/nocturne-render/nocturne/pkg/noise"
)

// ProceduralTextured blends between two albedo colors by fractal turbulence
// evaluated in object space, then shades as a dielectric surface
type ProceduralTextured struct {
	props      Properties
	secondary  core.Vec3
	turbulence *noise.Turbulence
	frequency  float64

	worldToObject core.Matrix4
}

// NewProceduralTextured creates a turbulence-textured material blending
// from primary toward secondary as the noise value rises. The turbulence
// generator must be non-nil; a non-positive frequency defaults to 1.
func NewProceduralTextured(primary, secondary core.Vec3, roughness float64, turbulence *noise.Turbulence, frequency float64) (*ProceduralTextured, error) {
	if turbulence == nil {
		return nil, fmt.Errorf("procedural material: turbulence generator must be non-nil")
	}
	if frequency <= 0 {
		frequency = 1.0
	}
	return &ProceduralTextured{
		props:         NewProperties(primary, roughness, 0, 0, 1.3, 0),
		secondary:     secondary.Clamp(0, 1),
		turbulence:    turbulence,
		frequency:     frequency,
		worldToObject: core.IdentityMatrix(),
	}, nil
}

// SetObjectTransform receives the primitive's placement so the texture is
// evaluated in object space. A singular placement leaves the texture in
// world space.
func (m *ProceduralTextured) SetObjectTransform(t core.Matrix4) {
	if inv, ok := t.Inverse(); ok {
		m.worldToObject = inv
	}
}

func (m *ProceduralTextured) Kind() Kind             { return KindProcedural }
func (m *ProceduralTextured) Properties() Properties { return m.props }

// albedoAt evaluates the noise-blended albedo at a world-space point
func (m *ProceduralTextured) albedoAt(point core.Vec3) core.Vec3 {
	local := m.worldToObject.ApplyPoint(point).Multiply(m.frequency)
	n := m.turbulence.Value01(local.X, local.Y, local.Z)
	return m.props.Albedo.Lerp(m.secondary, n)
}

// Shade evaluates the textured BRDF for one light
func (m *ProceduralTextured) Shade(point, normal core.Vec3, light lights.Light, viewPos core.Vec3) core.Vec3 {
	textured := m.props.WithAlbedo(m.albedoAt(point))
	return shadeSurface(textured, point, normal, light, viewPos)
}
