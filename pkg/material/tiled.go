package material

import (
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
)

// Tiled is a checker-like patterned surface: a 2D tile coordinate computed
// by modular arithmetic in object space selects between two complete
// parameter sets, each with its own roughness and specular response.
type Tiled struct {
	propsA   Properties
	propsB   Properties
	tileSize float64

	// inverse of the placement received from the owning primitive
	worldToObject core.Matrix4
}

// NewTiled creates a tiled material alternating between two parameter sets.
// A non-positive tile size defaults to 1.
func NewTiled(propsA, propsB Properties, tileSize float64) *Tiled {
	if tileSize <= 0 {
		tileSize = 1.0
	}
	return &Tiled{
		propsA:        propsA,
		propsB:        propsB,
		tileSize:      tileSize,
		worldToObject: core.IdentityMatrix(),
	}
}

// SetObjectTransform receives the primitive's placement so the pattern is
// computed in object space. A singular placement leaves the pattern in
// world space.
func (t *Tiled) SetObjectTransform(m core.Matrix4) {
	if inv, ok := m.Inverse(); ok {
		t.worldToObject = inv
	}
}

func (t *Tiled) Kind() Kind { return KindTiled }

// Properties returns the primary parameter set
func (t *Tiled) Properties() Properties { return t.propsA }

// selectProps picks the parameter set for the tile containing point
func (t *Tiled) selectProps(point core.Vec3) Properties {
	local := t.worldToObject.ApplyPoint(point)
	tx := int(math.Floor(local.X / t.tileSize))
	tz := int(math.Floor(local.Z / t.tileSize))
	if (tx+tz)%2 == 0 {
		return t.propsA
	}
	return t.propsB
}

// Shade evaluates the BRDF of whichever tile the point falls in
func (t *Tiled) Shade(point, normal core.Vec3, light lights.Light, viewPos core.Vec3) core.Vec3 {
	return shadeSurface(t.selectProps(point), point, normal, light, viewPos)
}
