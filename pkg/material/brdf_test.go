package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nocturne-render/nocturne/pkg/core"
)

func TestF0FromIOR(t *testing.T) {
	// Standard glass: ((1-1.5)/(1+1.5))² = 0.04
	got := F0FromIOR(1.5)
	if math.Abs(got-0.04) > 1e-12 {
		t.Errorf("Expected F0 0.04 for IOR 1.5, got %f", got)
	}

	// IOR 1 reflects nothing at normal incidence
	if F0FromIOR(1.0) != 0 {
		t.Errorf("Expected F0 0 for IOR 1, got %f", F0FromIOR(1.0))
	}
}

func TestSchlickFresnel_Endpoints(t *testing.T) {
	// Normal incidence returns the base reflectance
	if got := SchlickFresnel(1.0, 0.04); math.Abs(got-0.04) > 1e-12 {
		t.Errorf("Expected F0 at normal incidence, got %f", got)
	}

	// Grazing incidence approaches total reflection
	if got := SchlickFresnel(0.0, 0.04); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected 1.0 at grazing incidence, got %f", got)
	}

	// Out-of-range cosines are clamped, never amplified
	if got := SchlickFresnel(-0.5, 0.04); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Negative cosine should clamp to grazing, got %f", got)
	}
	if got := SchlickFresnel(2.0, 0.04); math.Abs(got-0.04) > 1e-12 {
		t.Errorf("Cosine above one should clamp to normal incidence, got %f", got)
	}
}

func TestGGXDistribution_PeaksAtAlignment(t *testing.T) {
	roughness := 0.3

	aligned := GGXDistribution(1.0, roughness)
	offAxis := GGXDistribution(0.7, roughness)

	if aligned <= offAxis {
		t.Errorf("Distribution should peak at alignment: D(1)=%f, D(0.7)=%f", aligned, offAxis)
	}
	if aligned <= 0 || offAxis <= 0 {
		t.Error("Distribution must be positive")
	}
}

func TestGGXDistribution_RoughnessWidensLobe(t *testing.T) {
	// A rougher surface has a lower, wider peak
	smoothPeak := GGXDistribution(1.0, 0.1)
	roughPeak := GGXDistribution(1.0, 0.8)
	if roughPeak >= smoothPeak {
		t.Errorf("Rough peak should be lower: smooth=%f, rough=%f", smoothPeak, roughPeak)
	}
}

func TestSmithGeometry_Bounds(t *testing.T) {
	for _, roughness := range []float64{0.0, 0.3, 1.0} {
		for _, nDotL := range []float64{0.1, 0.5, 1.0} {
			g := SmithGeometry(nDotL, 0.8, roughness)
			if g < 0 || g > 1 {
				t.Errorf("Geometry term %f out of [0,1] for roughness %f, nDotL %f", g, roughness, nDotL)
			}
		}
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		incident core.Vec3
		normal   core.Vec3
		expected core.Vec3
	}{
		{
			name:     "45 degree reflection",
			incident: core.NewVec3(1, 0, -1).Normalize(),
			normal:   core.NewVec3(0, 0, 1),
			expected: core.NewVec3(1, 0, 1).Normalize(),
		},
		{
			name:     "Normal incidence",
			incident: core.NewVec3(0, 0, -1),
			normal:   core.NewVec3(0, 0, 1),
			expected: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.incident, tt.normal)
			if result.Subtract(tt.expected).Length() > 1e-10 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	uv := core.NewVec3(0, 0, -1)
	n := core.NewVec3(0, 0, 1)

	refracted, ok := Refract(uv, n, 1.0/1.5)
	if !ok {
		t.Fatal("Normal incidence must refract")
	}
	if refracted.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-10 {
		t.Errorf("Normal incidence should pass straight through, got %v", refracted)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Leaving glass at a grazing angle: sin exceeds the critical angle
	uv := core.NewVec3(0.9, 0, -math.Sqrt(1-0.81)).Normalize()
	n := core.NewVec3(0, 0, 1)

	_, ok := Refract(uv, n, 1.5)
	if ok {
		t.Error("Expected total internal reflection at grazing exit angle")
	}
}

func TestRefract_BendsTowardNormal(t *testing.T) {
	// Entering a denser medium bends the ray toward the normal
	uv := core.NewVec3(1, 0, -1).Normalize()
	n := core.NewVec3(0, 0, 1)

	refracted, ok := Refract(uv, n, 1.0/1.5)
	if !ok {
		t.Fatal("Entry at 45 degrees must refract")
	}

	// Transverse component shrinks by the refraction ratio
	expectedSin := (1.0 / 1.5) * math.Sqrt(0.5)
	if math.Abs(refracted.X-expectedSin) > 1e-10 {
		t.Errorf("Expected transverse component %f, got %f", expectedSin, refracted.X)
	}
	if math.Abs(refracted.Length()-1.0) > 1e-10 {
		t.Errorf("Refracted direction must be unit length, got %f", refracted.Length())
	}
}

func TestPerturbReflection_SmoothIsExactMirror(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	mirror := core.NewVec3(1, 0, 1)

	got := PerturbReflection(mirror, 0, sampler)
	if got.Subtract(mirror.Normalize()).Length() > 1e-12 {
		t.Errorf("Zero roughness must return the exact mirror direction, got %v", got)
	}
}

func TestPerturbReflection_RoughnessVaries(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	mirror := core.NewVec3(0, 0, 1)

	directions := make([]core.Vec3, 10)
	for i := range directions {
		directions[i] = PerturbReflection(mirror, 0.8, sampler)
		if math.Abs(directions[i].Length()-1.0) > 1e-12 {
			t.Fatalf("Perturbed direction must be unit length, got %f", directions[i].Length())
		}
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Rough perturbation should produce varying directions")
	}
}

func TestPerturbReflection_JitterScalesWithRoughnessSquared(t *testing.T) {
	mirror := core.NewVec3(0, 0, 1)

	// Low roughness deviations stay within the roughness² jitter radius
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	maxDeviation := 0.0
	for i := 0; i < 100; i++ {
		d := PerturbReflection(mirror, 0.2, sampler)
		if dev := d.Subtract(mirror).Length(); dev > maxDeviation {
			maxDeviation = dev
		}
	}
	// Jitter radius 0.04 on a unit vector bounds the angular deviation
	if maxDeviation > 0.09 {
		t.Errorf("Low-roughness deviation %f exceeds the jitter bound", maxDeviation)
	}
}
