package geometry

import (
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Normal vector (normalized at construction)
	Material material.Material
}

// NewPlane creates a new plane and hands its placement to the material
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	attachTransform(mat, core.TranslationMatrix(point))
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// SurfaceMaterial returns the plane's material
func (p *Plane) SurfaceMaterial() material.Material { return p.Material }

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &material.SurfaceInteraction{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}
