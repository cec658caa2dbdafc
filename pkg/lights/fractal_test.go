package lights

import (
	"math/rand"
	"testing"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/noise"
)

func TestNewFractalLight_Validation(t *testing.T) {
	color := core.NewVec3(1, 0.6, 0.2)
	turb := noise.NewTurbulence(42, 3, 0.5)

	if _, err := NewFractalLight(core.Vec3{}, color, 3, nil, 1); err == nil {
		t.Error("Expected error for nil turbulence generator")
	}
	if _, err := NewFractalLight(core.Vec3{}, color, 3, turb, 0); err == nil {
		t.Error("Expected error for zero frequency")
	}
	if _, err := NewFractalLight(core.Vec3{}, color, -1, turb, 1); err == nil {
		t.Error("Expected error for negative intensity")
	}
	if _, err := NewFractalLight(core.Vec3{}, color, 3, turb, 1); err != nil {
		t.Errorf("Unexpected error for valid light: %v", err)
	}
}

func TestFractalLight_IntensityWithinNoiseBand(t *testing.T) {
	light, err := NewFractalLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 0.6, 0.2), 4,
		noise.NewTurbulence(42, 3, 0.5), 0.8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The noise floor keeps intensity in [0.3*base, 1.0*base]
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		p := core.NewVec3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		got := light.AttenuatedIntensity(p)
		if got < 4*0.3-1e-9 || got > 4.0+1e-9 {
			t.Fatalf("Intensity %f escaped [1.2, 4.0] at %v", got, p)
		}
	}
}

func TestFractalLight_Deterministic(t *testing.T) {
	a, err := NewFractalLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 0.6, 0.2), 4,
		noise.NewTurbulence(42, 3, 0.5), 0.8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := NewFractalLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 0.6, 0.2), 4,
		noise.NewTurbulence(42, 3, 0.5), 0.8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < 100; i++ {
		p := core.NewVec3(float64(i)*0.23, 1, float64(i)*0.41)
		if a.AttenuatedIntensity(p) != b.AttenuatedIntensity(p) {
			t.Fatalf("Same-seed lights diverged at %v", p)
		}
	}
}

func TestFractalLight_SpatialVariation(t *testing.T) {
	light, err := NewFractalLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 0.6, 0.2), 4,
		noise.NewTurbulence(42, 3, 0.5), 0.8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Different sample points must see different modulation somewhere
	first := light.AttenuatedIntensity(core.NewVec3(0.3, 0, 0.3))
	for i := 1; i < 50; i++ {
		p := core.NewVec3(float64(i)*0.37, 0, float64(i)*0.53)
		if light.AttenuatedIntensity(p) != first {
			return
		}
	}
	t.Error("Intensity was identical at every sampled point")
}
