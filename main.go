package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nocturne-render/nocturne/internal/logger"
	"github.com/nocturne-render/nocturne/pkg/config"
	"github.com/nocturne-render/nocturne/pkg/core"
	"github.com/nocturne-render/nocturne/pkg/renderer"
	"github.com/nocturne-render/nocturne/pkg/scene"
)

// createScene builds a scene by name
func createScene(name string, seed int64) (*scene.Scene, error) {
	switch name {
	case "showcase":
		return scene.NewShowcaseScene(seed)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (defaults used if empty)")
	sceneName := flag.String("scene", "", "Override scene name from config")
	frames := flag.Int("frames", 0, "Override frame count from config")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Nocturne Raytracer")
		fmt.Println("Usage: nocturne [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  showcase - demo scene exercising every light and material variant")
		fmt.Println()
		fmt.Println("Output is saved to <output.dir>/<scene>/frame_<n>.png")
		return
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *sceneName != "" {
		cfg.Scene.Name = *sceneName
	}
	if *frames > 0 {
		cfg.Scene.Frames = *frames
	}

	var log *logger.Logger
	var err error
	if cfg.Log.File != "" {
		log, err = logger.NewWithFile(cfg.Log.Level, cfg.Log.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
		defer log.Close()
	} else {
		log = logger.New(cfg.Log.Level)
	}

	sc, err := createScene(cfg.Scene.Name, cfg.Scene.Seed)
	if err != nil {
		log.Fatalf("failed to build scene: %v", err)
	}

	outputDir := filepath.Join(cfg.Output.Dir, cfg.Scene.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	aspect := float64(cfg.Render.Width) / float64(cfg.Render.Height)
	camera := renderer.NewCamera(
		core.NewVec3(0, 1.8, 2.5),
		core.NewVec3(0, 1, -4),
		core.NewVec3(0, 1, 0),
		55, aspect)

	rt := renderer.NewRaytracer(sc, camera, cfg.Render.Width, cfg.Render.Height, log)
	rt.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: cfg.Render.SamplesPerPixel,
		MaxDepth:        cfg.Render.MaxDepth,
	})

	log.Infof("rendering %d frame(s) of scene %q at %dx%d",
		cfg.Scene.Frames, cfg.Scene.Name, cfg.Render.Width, cfg.Render.Height)

	for frame := 0; frame < cfg.Scene.Frames; frame++ {
		// Animation advances once per frame, strictly before the parallel pass
		sc.Advance(cfg.Scene.TimeStep)

		start := time.Now()
		img := rt.RenderPass(cfg.Render.NumWorkers)
		log.Infof("frame %d rendered in %v", frame, time.Since(start))

		filename := filepath.Join(outputDir, fmt.Sprintf("frame_%04d.png", frame))
		file, err := os.Create(filename)
		if err != nil {
			log.Fatalf("failed to create output file: %v", err)
		}
		if err := png.Encode(file, img); err != nil {
			file.Close()
			log.Fatalf("failed to encode PNG: %v", err)
		}
		file.Close()
		log.Infof("saved %s", filename)
	}
}
