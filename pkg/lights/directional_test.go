package lights

import (
	"math"
	"testing"

	"github.com/nocturne-render/nocturne/pkg/core"
)

func TestNewDirectionalLight_Validation(t *testing.T) {
	if _, err := NewDirectionalLight(core.Vec3{}, core.NewVec3(1, 1, 1), 1); err == nil {
		t.Error("Expected error for zero-length direction")
	}
	if _, err := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), -1); err == nil {
		t.Error("Expected error for negative intensity")
	}
}

func TestDirectionalLight_ConstantIntensity(t *testing.T) {
	light, err := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), 0.8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(100, -50, 3),
		core.NewVec3(-1e6, 1e6, 0),
	}
	for _, p := range points {
		if got := light.AttenuatedIntensity(p); got != 0.8 {
			t.Errorf("Expected constant intensity 0.8 at %v, got %f", p, got)
		}
	}
}

func TestDirectionalLight_Directions(t *testing.T) {
	// Travel direction is normalized at construction
	light, err := NewDirectionalLight(core.NewVec3(0, -2, 0), core.NewVec3(1, 1, 1), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	at := light.DirectionAt(core.NewVec3(5, 5, 5))
	if at.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-12 {
		t.Errorf("Expected travel direction (0,-1,0), got %v", at)
	}

	from := light.DirectionFrom(core.NewVec3(5, 5, 5))
	if from.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("DirectionFrom should oppose travel, got %v", from)
	}

	if math.Abs(from.Length()-1.0) > 1e-12 {
		t.Errorf("Direction must be unit length, got %f", from.Length())
	}
}

func TestDirectionalLight_NoPosition(t *testing.T) {
	light, err := NewDirectionalLight(core.NewVec3(1, -1, 0), core.NewVec3(1, 1, 1), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := light.Position(); ok {
		t.Error("Directional light must report no position")
	}
}

func TestDirectionalLight_WithIntensity(t *testing.T) {
	light, err := NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	derived := light.WithIntensity(0.25)
	if derived.Intensity() != 0.25 {
		t.Errorf("Expected derived intensity 0.25, got %f", derived.Intensity())
	}
	if light.Intensity() != 1 {
		t.Errorf("Original intensity must be unchanged, got %f", light.Intensity())
	}
}
