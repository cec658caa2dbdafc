package material

import (
	"testing"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/noise"
)

func newTestProcedural(t *testing.T) *ProceduralTextured {
	t.Helper()
	mat, err := NewProceduralTextured(
		core.NewVec3(0.1, 0.4, 0.15), core.NewVec3(0.7, 0.65, 0.5),
		0.7, noise.NewTurbulence(42, 4, 0.5), 2.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return mat
}

func TestNewProceduralTextured_Validation(t *testing.T) {
	primary := core.NewVec3(0.1, 0.4, 0.15)
	secondary := core.NewVec3(0.7, 0.65, 0.5)

	if _, err := NewProceduralTextured(primary, secondary, 0.7, nil, 1.0); err == nil {
		t.Error("Expected error for nil turbulence generator")
	}
	if _, err := NewProceduralTextured(primary, secondary, 0.7, noise.NewTurbulence(42, 4, 0.5), 1.0); err != nil {
		t.Errorf("Unexpected error for valid material: %v", err)
	}
}

func TestProceduralTextured_AlbedoBlendsBetweenColors(t *testing.T) {
	mat := newTestProcedural(t)
	primary := core.NewVec3(0.1, 0.4, 0.15)
	secondary := core.NewVec3(0.7, 0.65, 0.5)

	for i := 0; i < 200; i++ {
		p := core.NewVec3(float64(i)*0.17, 0.5, float64(i)*0.31)
		albedo := mat.albedoAt(p)

		// Every channel stays inside the segment between the two colors
		lo := core.NewVec3(
			minF(primary.X, secondary.X), minF(primary.Y, secondary.Y), minF(primary.Z, secondary.Z))
		hi := core.NewVec3(
			maxFloat(primary.X, secondary.X), maxFloat(primary.Y, secondary.Y), maxFloat(primary.Z, secondary.Z))
		if albedo.X < lo.X-1e-9 || albedo.X > hi.X+1e-9 ||
			albedo.Y < lo.Y-1e-9 || albedo.Y > hi.Y+1e-9 ||
			albedo.Z < lo.Z-1e-9 || albedo.Z > hi.Z+1e-9 {
			t.Fatalf("Albedo %v escaped the blend range at %v", albedo, p)
		}
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func TestProceduralTextured_SpatialVariation(t *testing.T) {
	mat := newTestProcedural(t)

	first := mat.albedoAt(core.NewVec3(0.3, 0, 0.3))
	for i := 1; i < 50; i++ {
		p := core.NewVec3(float64(i)*0.37, 0, float64(i)*0.53)
		if !mat.albedoAt(p).Equals(first) {
			return
		}
	}
	t.Error("Albedo was identical at every sampled point")
}

func TestProceduralTextured_Deterministic(t *testing.T) {
	a := newTestProcedural(t)
	b := newTestProcedural(t)

	for i := 0; i < 100; i++ {
		p := core.NewVec3(float64(i)*0.23, 1, float64(i)*0.41)
		if !a.albedoAt(p).Equals(b.albedoAt(p)) {
			t.Fatalf("Same-seed materials diverged at %v", p)
		}
	}
}

func TestProceduralTextured_ObjectSpaceTexture(t *testing.T) {
	mat := newTestProcedural(t)
	world := core.NewVec3(1.3, 0.4, -0.7)

	before := mat.albedoAt(world)

	// Moving the owning primitive shifts the pattern with it: the same
	// world point now samples a different object-space location
	mat.SetObjectTransform(core.TranslationMatrix(core.NewVec3(0.9, 0, 0)))
	after := mat.albedoAt(world)
	if before.Equals(after) {
		t.Error("Texture should follow the primitive's placement")
	}

	// And the translated point reproduces the original sample
	moved := mat.albedoAt(world.Add(core.NewVec3(0.9, 0, 0)))
	if !moved.Equals(before) {
		t.Errorf("Translated sample should match: expected %v, got %v", before, moved)
	}
}

func TestProceduralTextured_ScaledPlacement(t *testing.T) {
	mat := newTestProcedural(t)
	ref := newTestProcedural(t)

	// A uniformly scaled placement maps world points back to object space
	// through the full inverse, not just the translation column
	mat.SetObjectTransform(core.ScaleMatrix(core.NewVec3(2, 2, 2)))

	world := core.NewVec3(1.8, 0.6, -1.2)
	expected := ref.albedoAt(world.Multiply(0.5))
	if !mat.albedoAt(world).Equals(expected) {
		t.Errorf("Scaled placement should sample at the object-space point: expected %v, got %v",
			expected, mat.albedoAt(world))
	}
}

func TestNewProceduralTextured_FrequencyDefaults(t *testing.T) {
	mat, err := NewProceduralTextured(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.9, 0.9, 0.9),
		0.5, noise.NewTurbulence(42, 3, 0.5), -2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mat.frequency != 1.0 {
		t.Errorf("Non-positive frequency should default to 1, got %f", mat.frequency)
	}
}
