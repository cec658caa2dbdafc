package noise

// Turbulence is a fractal sum of gradient noise octaves at doubling
// frequency and geometrically decaying amplitude. The result is normalized
// by the sum of amplitudes used, so output stays bounded regardless of the
// octave count.
type Turbulence struct {
	perlin      *Perlin
	octaves     int
	persistence float64
}

// NewTurbulence creates a fractal noise generator.
// Octaves below 1 are raised to 1; persistence is clamped to [0, 1].
func NewTurbulence(seed int64, octaves int, persistence float64) *Turbulence {
	if octaves < 1 {
		octaves = 1
	}
	if persistence < 0 {
		persistence = 0
	}
	if persistence > 1 {
		persistence = 1
	}
	return &Turbulence{
		perlin:      NewPerlin(seed),
		octaves:     octaves,
		persistence: persistence,
	}
}

// Octaves returns the configured octave count
func (t *Turbulence) Octaves() int { return t.octaves }

// Persistence returns the configured amplitude decay factor
func (t *Turbulence) Persistence() float64 { return t.persistence }

// Value evaluates the fractal sum at (x, y, z), returning a value in [-1, 1]
func (t *Turbulence) Value(x, y, z float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	totalAmplitude := 0.0

	for i := 0; i < t.octaves; i++ {
		sum += t.perlin.Noise(x*frequency, y*frequency, z*frequency) * amplitude
		totalAmplitude += amplitude
		amplitude *= t.persistence
		frequency *= 2.0
	}

	return sum / totalAmplitude
}

// Value01 evaluates the fractal sum remapped to [0, 1]
func (t *Turbulence) Value01(x, y, z float64) float64 {
	return 0.5 * (t.Value(x, y, z) + 1.0)
}
