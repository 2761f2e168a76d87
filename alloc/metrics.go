package alloc

// Used returns the number of bytes handed out since the last FreeAll.
func (a *Arena) Used() int {
	return a.used
}

// Capacity returns the size of the arena buffer in bytes.
func (a *Arena) Capacity() int {
	return a.capacity
}

// Peak returns the highest Used value seen over the arena's lifetime.
func (a *Arena) Peak() int {
	return a.peak
}

// Grows returns how many buffers the arena has taken from the backing
// allocator, counting the initial reservation.
func (a *Arena) Grows() int {
	return a.grows
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.used) / float64(a.capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Used:        a.used,
		Capacity:    a.capacity,
		Peak:        a.peak,
		Grows:       a.grows,
		Allocs:      a.allocs,
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Used        int     // Bytes currently allocated
	Capacity    int     // Buffer size in bytes
	Peak        int     // High-water mark of Used
	Grows       int     // Backing buffers taken, including the first reservation
	Allocs      int     // Alloc calls over the arena's lifetime
	Utilization float64 // Ratio of used to capacity (0.0-1.0)
}
