package scene

import (
	"fmt"
	"sync"

	"github.com/nocturne-render/nocturne/pkg/noise"
)

// NoiseCache memoizes turbulence generators by their construction
// parameters, so lights and materials sharing the same noise settings share
// one permutation table. Safe for concurrent lookups with a compute-once
// guarantee per key.
type NoiseCache struct {
	mu      sync.Mutex
	entries map[string]*noiseEntry
}

type noiseEntry struct {
	once  sync.Once
	value *noise.Turbulence
}

// NewNoiseCache creates an empty cache
func NewNoiseCache() *NoiseCache {
	return &NoiseCache{entries: make(map[string]*noiseEntry)}
}

// Turbulence returns the generator for the given parameters, building it at
// most once per distinct parameter set
func (c *NoiseCache) Turbulence(seed int64, octaves int, persistence float64) *noise.Turbulence {
	key := fmt.Sprintf("%d/%d/%g", seed, octaves, persistence)

	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		entry = &noiseEntry{}
		c.entries[key] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.value = noise.NewTurbulence(seed, octaves, persistence)
	})
	return entry.value
}

// Len returns the number of distinct parameter sets built so far
func (c *NoiseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
