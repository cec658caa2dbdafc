package renderer

import (
	"bytes"
	"testing"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/geometry"
	"github.com/nocturne-render/nocturne/pkg/lights"
	"github.com/nocturne-render/nocturne/pkg/material"
	"github.com/nocturne-render/nocturne/pkg/scene"
)

func newTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.NewScene(core.NewVec3(0.2, 0.2, 0.4), core.NewVec3(0.02, 0.02, 0.05))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -3), 1.0,
		material.NewPlastic(core.NewVec3(0.6, 0.3, 0.3), 0.5, 1.5)))

	light, err := lights.NewPointLight(core.NewVec3(2, 4, 0), core.NewVec3(1, 1, 1), 6,
		lights.Attenuation{Constant: 1, Linear: 0.05, Quadratic: 0.01})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.AddLight(light)

	ambient, err := lights.NewAmbientLight(core.NewVec3(0.4, 0.4, 0.5), 0.3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.AddLight(ambient)
	return s
}

func newTestRaytracer(t *testing.T) *Raytracer {
	t.Helper()
	camera := NewCamera(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -3), core.NewVec3(0, 1, 0),
		60, 16.0/9.0)
	rt := NewRaytracer(newTestScene(t), camera, 32, 18, nil)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 2, MaxDepth: 4})
	return rt
}

func TestRaytracer_WorkerCountInvariance(t *testing.T) {
	rt := newTestRaytracer(t)

	// Per-row deterministic seeding makes output independent of worker
	// count and scheduling
	serial := rt.RenderPass(1)
	parallel := rt.RenderPass(4)

	if !bytes.Equal(serial.Pix, parallel.Pix) {
		t.Error("Worker count changed the rendered output")
	}
}

func TestRaytracer_RepeatedPassesIdentical(t *testing.T) {
	rt := newTestRaytracer(t)

	first := rt.RenderPass(2)
	second := rt.RenderPass(2)

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Identical passes over a static scene diverged")
	}
}

func TestRaytracer_ImageDimensions(t *testing.T) {
	rt := newTestRaytracer(t)
	img := rt.RenderPass(2)

	bounds := img.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 18 {
		t.Errorf("Expected 32x18 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRaytracer_RendersNonBlackImage(t *testing.T) {
	rt := newTestRaytracer(t)
	img := rt.RenderPass(2)

	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			return
		}
	}
	t.Error("Rendered image is entirely black")
}

func TestCamera_CenterRayAimsAtTarget(t *testing.T) {
	lookFrom := core.NewVec3(0, 2, 5)
	lookAt := core.NewVec3(0, 1, -4)
	camera := NewCamera(lookFrom, lookAt, core.NewVec3(0, 1, 0), 55, 16.0/9.0)

	ray := camera.GetRay(0.5, 0.5)
	expected := lookAt.Subtract(lookFrom).Normalize()
	got := ray.Direction.Normalize()

	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Center ray should aim at the look-at point: expected %v, got %v", expected, got)
	}
	if !ray.Origin.Equals(lookFrom) {
		t.Errorf("Ray origin should be the camera position, got %v", ray.Origin)
	}
}
