package satune

import "sync/atomic"

// SharedCounter is a monotonically increasing u64 shared by reference
// among workers, with atomic increment/get/reset.
//
// Grounded on niceyeti-tabular/atomic_helpers/atomic_float.go's atomic
// cell idiom, applied to integers via the typed sync/atomic API.
type SharedCounter struct {
	v atomic.Uint64
}

// Increment atomically adds one and returns the new value.
func (c *SharedCounter) Increment() uint64 {
	return c.v.Add(1)
}

// Get returns the current value.
func (c *SharedCounter) Get() uint64 {
	return c.v.Load()
}

// Reset sets the counter back to zero.
func (c *SharedCounter) Reset() {
	c.v.Store(0)
}
