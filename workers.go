package portfolio

import "runtime"

// Worker count bounds for concurrent section loading.
const (
	// MinWorkers ensures at least one section loads at a time.
	MinWorkers = 1

	// MaxWorkers caps parallel directory scans; loading is disk-bound.
	MaxWorkers = 8
)

// ResolveWorkers determines how many sections load concurrently.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
