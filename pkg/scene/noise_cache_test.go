package scene

import (
	"sync"
	"testing"
)

func TestNoiseCache_SharedInstance(t *testing.T) {
	cache := NewNoiseCache()

	a := cache.Turbulence(42, 4, 0.5)
	b := cache.Turbulence(42, 4, 0.5)
	if a != b {
		t.Error("Identical parameters should share one generator")
	}
	if cache.Len() != 1 {
		t.Errorf("Expected one cached entry, got %d", cache.Len())
	}
}

func TestNoiseCache_DistinctParameters(t *testing.T) {
	cache := NewNoiseCache()

	a := cache.Turbulence(42, 4, 0.5)
	b := cache.Turbulence(43, 4, 0.5)
	c := cache.Turbulence(42, 3, 0.5)
	d := cache.Turbulence(42, 4, 0.6)

	if a == b || a == c || a == d {
		t.Error("Different parameters must build separate generators")
	}
	if cache.Len() != 4 {
		t.Errorf("Expected four cached entries, got %d", cache.Len())
	}
}

func TestNoiseCache_ConcurrentComputeOnce(t *testing.T) {
	cache := NewNoiseCache()

	const goroutines = 32
	results := make([]interface{}, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.Turbulence(42, 4, 0.5)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatalf("Goroutine %d received a different generator", i)
		}
	}
	if cache.Len() != 1 {
		t.Errorf("Expected a single build under contention, got %d", cache.Len())
	}
}
