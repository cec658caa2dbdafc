package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
)

// rowPool renders image rows in parallel. Each row is an independent task
// with its own deterministically seeded RNG, so worker count and scheduling
// order never change the output.
type rowPool struct {
	raytracer  *Raytracer
	img        *image.RGBA
	numWorkers int
	rows       chan int
	wg         sync.WaitGroup
}

// newRowPool creates a pool with the specified number of workers.
// Non-positive counts default to the number of CPUs.
func newRowPool(rt *Raytracer, img *image.RGBA, numWorkers int) *rowPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &rowPool{
		raytracer:  rt,
		img:        img,
		numWorkers: numWorkers,
		rows:       make(chan int, rt.height),
	}
}

// renderAll queues every row, runs the workers, and waits for completion
func (p *rowPool) renderAll() {
	for j := 0; j < p.raytracer.height; j++ {
		p.rows <- j
	}
	close(p.rows)

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	p.wg.Wait()
}

// run is the main worker loop
func (p *rowPool) run() {
	defer p.wg.Done()

	for j := range p.rows {
		// Per-row seed keeps output independent of scheduling
		rng := rand.New(rand.NewSource(p.raytracer.baseSeed + int64(j)))
		p.raytracer.renderRow(p.img, j, rng)
	}
}
