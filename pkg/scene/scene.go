package scene

import (
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/geometry"
	"github.com/nocturne-render/nocturne/pkg/lights"
	"github.com/nocturne-render/nocturne/pkg/material"
)

// occlusionBias is the lower ray-parameter bound for occlusion queries so
// the shadow ray never re-hits its own origin surface
const occlusionBias = 1e-3

// Scene holds immutable shapes and lights plus the per-frame animation
// state. All shading-time queries are read-only; Advance is the single
// writer and must complete before a parallel render pass begins.
type Scene struct {
	shapes   []geometry.Shape
	lights   []lights.Light
	animated []animated

	topColor    core.Vec3
	bottomColor core.Vec3
}

// animated unifies lights.Animated and material.Animated
type animated interface {
	Update(dt float64)
}

// NewScene creates an empty scene with the given background gradient
func NewScene(topColor, bottomColor core.Vec3) *Scene {
	return &Scene{
		topColor:    topColor,
		bottomColor: bottomColor,
	}
}

// AddShape adds a primitive, registering its material for frame updates if
// the material is animated
func (s *Scene) AddShape(shape geometry.Shape) {
	s.shapes = append(s.shapes, shape)
	s.registerAnimated(shape.SurfaceMaterial())
}

// AddLight adds a light, registering it for frame updates if animated
func (s *Scene) AddLight(light lights.Light) {
	s.lights = append(s.lights, light)
	s.registerAnimated(light)
}

func (s *Scene) registerAnimated(v interface{}) {
	if a, ok := v.(animated); ok {
		s.animated = append(s.animated, a)
	}
}

// Lights returns the scene's lights
func (s *Scene) Lights() []lights.Light {
	return s.lights
}

// BackgroundColors returns the gradient colors (top, bottom)
func (s *Scene) BackgroundColors() (core.Vec3, core.Vec3) {
	return s.topColor, s.bottomColor
}

// Advance drives every animated light and material exactly once. It is the
// single-writer phase-advance step: call it between render passes, never
// concurrently with shading.
func (s *Scene) Advance(dt float64) {
	for _, a := range s.animated {
		a.Update(dt)
	}
}

// NearestHit returns the closest intersection along the ray, or false
func (s *Scene) NearestHit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	var closest *material.SurfaceInteraction
	closestSoFar := tMax

	for _, shape := range s.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// IsOccluded reports whether any geometry blocks the ray within
// (occlusionBias, maxDistance). The ray's own origin surface is excluded
// by the caller's bias offset, not by this oracle.
func (s *Scene) IsOccluded(ray core.Ray, maxDistance float64) bool {
	if maxDistance <= occlusionBias {
		return false
	}
	limit := maxDistance
	if math.IsInf(limit, 1) {
		limit = math.MaxFloat64
	}
	for _, shape := range s.shapes {
		if _, isHit := shape.Hit(ray, occlusionBias, limit); isHit {
			return true
		}
	}
	return false
}
