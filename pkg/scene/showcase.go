package scene

import (
	"fmt"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/geometry"
	"github.com/nocturne-render/nocturne/pkg/lights"
	"github.com/nocturne-render/nocturne/pkg/material"
)

// NewShowcaseScene builds the default demo scene exercising every light and
// material variant: a tiled ground plane, a ring of spheres, and the full
// set of exotic sources
func NewShowcaseScene(seed int64) (*Scene, error) {
	s := NewScene(core.NewVec3(0.02, 0.02, 0.08), core.NewVec3(0.0, 0.0, 0.02))
	cache := NewNoiseCache()

	// Ground: tiled plane with two parameter sets of differing roughness
	tileA := material.NewProperties(core.NewVec3(0.8, 0.8, 0.85), 0.9, 0, 0, 1.3, 0)
	tileB := material.NewProperties(core.NewVec3(0.12, 0.12, 0.18), 0.3, 0, 0.2, 1.5, 0)
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		material.NewTiled(tileA, tileB, 1.5)))

	// Sphere ring
	s.AddShape(geometry.NewSphere(core.NewVec3(-2.2, 1, -4), 1.0,
		material.NewMetal(core.NewVec3(0.9, 0.7, 0.4), 0.15, 0.85)))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 1, -5), 1.0,
		material.NewGlass(core.NewVec3(0.95, 0.97, 1.0), 1.5, 0.9)))
	s.AddShape(geometry.NewSphere(core.NewVec3(2.2, 1, -4), 1.0,
		material.NewPlastic(core.NewVec3(0.2, 0.5, 0.8), 0.5, 1.5)))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1.1, 0.6, -2.6), 0.6,
		material.NewHolographic(core.NewVec3(0.9, 0.9, 0.9), 0.3)))

	mossy, err := material.NewProceduralTextured(
		core.NewVec3(0.1, 0.4, 0.15), core.NewVec3(0.7, 0.65, 0.5),
		0.7, cache.Turbulence(seed, 4, 0.5), 2.0)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}
	s.AddShape(geometry.NewSphere(core.NewVec3(1.1, 0.6, -2.6), 0.6, mossy))

	// Lights: one of each variant
	point, err := lights.NewPointLight(
		core.NewVec3(0, 6, -3), core.NewVec3(1, 1, 0.95), 8,
		lights.Attenuation{Constant: 1, Linear: 0.05, Quadratic: 0.01})
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	sun, err := lights.NewDirectionalLight(
		core.NewVec3(-0.4, -1, -0.3), core.NewVec3(0.8, 0.85, 1.0), 0.6)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	ambient, err := lights.NewAmbientLight(core.NewVec3(0.4, 0.45, 0.6), 0.3)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	spot, err := lights.NewSpotLight(
		core.NewVec3(3, 5, -2), core.NewVec3(-0.5, -1, -0.4), core.NewVec3(1, 0.9, 0.8), 6,
		lights.Attenuation{Constant: 1, Linear: 0.02, Quadratic: 0.005},
		0.5, 0.9)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	pulse, err := lights.NewPulsatingPointLight(
		core.NewVec3(-3, 2, -3), core.NewVec3(1, 0.4, 0.3), 4,
		lights.Attenuation{Constant: 1, Linear: 0.1, Quadratic: 0.02},
		2.0, 0.5,
		core.NewVec3(0.5, 0.25, 0.5), core.NewVec3(1.3, 0.9, 1.7))
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	bio, err := lights.NewBioClusterLight(
		[]core.Vec3{
			core.NewVec3(1.8, 0.4, -1.8),
			core.NewVec3(2.4, 0.7, -2.2),
			core.NewVec3(2.0, 0.3, -2.6),
		},
		core.NewVec3(0.2, 0.9, 0.6), 3,
		lights.Attenuation{Constant: 1, Linear: 0.3, Quadratic: 0.15},
		1.1, 0.6)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	hole, err := lights.NewSingularityLight(
		core.NewVec3(0, 3.5, -9), core.NewVec3(0.6, 0.4, 1.0), 5, 1.2, 1.0)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	flicker, err := lights.NewFractalLight(
		core.NewVec3(-2, 1.5, -6), core.NewVec3(1.0, 0.6, 0.2), 3,
		cache.Turbulence(seed+1, 3, 0.6), 0.8)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	for _, l := range []lights.Light{point, sun, ambient, spot, pulse, bio, hole, flicker} {
		s.AddLight(l)
	}

	return s, nil
}
