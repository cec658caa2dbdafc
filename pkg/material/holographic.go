package material

import (
	"math"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/lights"
)

// Tunable appearance constants. These are stylistic, not physically
// derived; calibrate against a reference render if visual parity matters.
const (
	holoBrightness     = 1.2  // overall brightening multiplier
	holoHueSpeed       = 0.5  // hue cycles per time unit
	holoHueScale       = 0.25 // hue cycles per world unit
	holoScanFrequency  = 40.0 // scan-line spatial frequency
	holoScanDepth      = 0.25 // scan-line modulation depth
	holoGlitchChance   = 0.08 // fraction of shading events that glitch
	holoAnisoExponent  = 8.0  // anisotropic highlight tightness
	holoAnisoStrength  = 0.6  // anisotropic highlight weight
	holoDiffuseWeight  = 0.7  // weight of the hue-cycled diffuse term
)

// Holographic is an animated iridescent surface: spectral hue cycling
// driven by position and scene time, sinusoidal scan-line masks on two
// axes, hash-gated glitch perturbation, and an anisotropic specular term
// along a synthetic tangent. All randomness derives from a deterministic
// hash of position and time, so a given frame is reproducible across
// workers and runs.
type Holographic struct {
	props   Properties
	elapsed float64
}

// NewHolographic creates a holographic material
func NewHolographic(baseColor core.Vec3, roughness float64) *Holographic {
	return &Holographic{
		props: NewProperties(baseColor, roughness, 0, 0.3, 1.8, 0),
	}
}

// Update advances the material's time phase. Single writer: must be
// sequenced strictly before the parallel shading phase.
func (h *Holographic) Update(dt float64) {
	h.elapsed += dt
}

func (h *Holographic) Kind() Kind             { return KindHolographic }
func (h *Holographic) Properties() Properties { return h.props }

// Shade evaluates the holographic response for one light
func (h *Holographic) Shade(point, normal core.Vec3, light lights.Light, viewPos core.Vec3) core.Vec3 {
	if light != nil && light.Kind() == lights.KindAmbient {
		return shadeAmbient(h.props, light)
	}

	sample, _ := lights.Resolve(light, point)
	if sample.Intensity <= 0 || sample.Direction.LengthSquared() == 0 {
		return core.Vec3{}
	}

	l := sample.Direction
	v := viewPos.Subtract(point).Normalize()
	if v.LengthSquared() == 0 {
		v = normal
	}
	nDotL := math.Max(normal.Dot(l), 0)
	if nDotL == 0 {
		return core.Vec3{}
	}

	// Spectral hue cycling from position and scene time
	hue := math.Mod((point.X+point.Y+point.Z)*holoHueScale+h.elapsed*holoHueSpeed, 1.0)
	if hue < 0 {
		hue += 1.0
	}
	spectral := hsvToRGB(hue, 1.0, 1.0).MultiplyVec(h.props.Albedo)

	// Sinusoidal scan-line masks on two axes
	scan := 1.0 - holoScanDepth*0.5*(2.0+
		math.Sin(point.Y*holoScanFrequency+h.elapsed*3.0)+
		math.Sin(point.X*holoScanFrequency*0.7-h.elapsed*2.0))

	// Glitch perturbation gated by a deterministic position+time hash
	if hash01(point, h.elapsed) < holoGlitchChance {
		spectral = glitch(spectral, hash01(point.Multiply(1.7), h.elapsed))
	}

	// Anisotropic highlight along a synthetic tangent
	tangent := syntheticTangent(normal)
	halfVec := l.Add(v).Normalize()
	tDotH := tangent.Dot(halfVec)
	aniso := holoAnisoStrength * math.Pow(math.Max(1.0-tDotH*tDotH, 0), holoAnisoExponent)

	color := spectral.Multiply(holoDiffuseWeight * nDotL * scan).
		Add(core.NewVec3(1, 1, 1).Multiply(aniso * nDotL)).
		MultiplyVec(sample.Color).
		Multiply(sample.Intensity * holoBrightness)

	return color.Clamp(0, 1)
}

// syntheticTangent builds a stable tangent perpendicular to the normal
func syntheticTangent(normal core.Vec3) core.Vec3 {
	up := core.NewVec3(0, 1, 0)
	if math.Abs(normal.Y) > 0.99 {
		up = core.NewVec3(1, 0, 0)
	}
	return up.Cross(normal).Normalize()
}

// hash01 is a deterministic hash of position and time in [0,1)
func hash01(p core.Vec3, t float64) float64 {
	s := math.Sin(p.X*12.9898+p.Y*78.233+p.Z*37.719+t*4.375) * 43758.5453
	return s - math.Floor(s)
}

// glitch perturbs a color by channel rotation or inversion, selected by a
// second hash value
func glitch(c core.Vec3, selector float64) core.Vec3 {
	if selector < 0.5 {
		return core.NewVec3(c.Y, c.Z, c.X)
	}
	return core.NewVec3(1.0-c.X, 1.0-c.Y, 1.0-c.Z)
}

// hsvToRGB converts hue/saturation/value (each in [0,1]) to RGB
func hsvToRGB(h, s, v float64) core.Vec3 {
	i := math.Floor(h * 6.0)
	f := h*6.0 - i
	p := v * (1.0 - s)
	q := v * (1.0 - f*s)
	t := v * (1.0 - (1.0-f)*s)

	switch int(i) % 6 {
	case 0:
		return core.NewVec3(v, t, p)
	case 1:
		return core.NewVec3(q, v, p)
	case 2:
		return core.NewVec3(p, v, t)
	case 3:
		return core.NewVec3(p, q, v)
	case 4:
		return core.NewVec3(t, p, v)
	default:
		return core.NewVec3(v, p, q)
	}
}
