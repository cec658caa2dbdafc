package geometry

import (
	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/material"
)

// Shape is the primitive intersection contract consumed by the scene
type Shape interface {
	// Hit tests the ray against the shape within (tMin, tMax) and returns
	// the nearest interaction, or false if there is none
	Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)

	// SurfaceMaterial returns the shape's material, so the scene can
	// register animated materials without enumerating primitive types
	SurfaceMaterial() material.Material
}

// attachTransform hands a primitive's object-to-world placement to its
// material once, for object-space procedural patterns
func attachTransform(mat material.Material, transform core.Matrix4) {
	if t, ok := mat.(material.Transformable); ok {
		t.SetObjectTransform(transform)
	}
}
