package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 4,
		MaxDepth:        8,
	}
}

// Raytracer renders a scene through a camera by tracing one recursive ray
// per pixel sample. Pixels are independent; rows are rendered in parallel
// by the worker pool with per-row deterministic RNG seeds.
type Raytracer struct {
	scene    integrator.Scene
	camera   *Camera
	width    int
	height   int
	config   SamplingConfig
	baseSeed int64
	logger   core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene integrator.Scene, camera *Camera, width, height int, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:    scene,
		camera:   camera,
		width:    width,
		height:   height,
		config:   DefaultSamplingConfig(),
		baseSeed: 42, // Deterministic for testing
		logger:   logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// renderRow renders one row of pixels into the shared image. Rows have
// non-overlapping bounds, so concurrent writes are safe.
func (rt *Raytracer) renderRow(img *image.RGBA, j int, rng *rand.Rand) {
	sampler := core.NewRandomSampler(rng)
	tracer := integrator.NewWhitted(integrator.Config{
		MaxDepth:        rt.config.MaxDepth,
		MinContribution: 1e-3,
	}, sampler)

	for i := 0; i < rt.width; i++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Normalized coordinates with jitter
			s := (float64(i) + rng.Float64()) / float64(rt.width)
			t := (float64(j) + rng.Float64()) / float64(rt.height)

			ray := rt.camera.GetRay(s, t)
			colorAccum = colorAccum.Add(tracer.Trace(rt.scene, ray, rt.config.MaxDepth))
		}

		colorVec := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
		img.SetRGBA(i, rt.height-1-j, rt.vec3ToColor(colorVec))
	}
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma correction
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Gamma 2.0, then clamp to the display range
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders a full frame. The caller advances scene animation
// before this; no scene mutation happens during the pass.
func (rt *Raytracer) RenderPass(numWorkers int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	pool := newRowPool(rt, img, numWorkers)
	pool.renderAll()

	if rt.logger != nil {
		rt.logger.Printf("rendered %dx%d frame, %d samples/pixel, depth %d",
			rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)
	}

	return img
}
