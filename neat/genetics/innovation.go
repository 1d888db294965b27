package genetics

import "sync"

// InnovationRegistry issues monotonically increasing innovation numbers
// for new structural mutations (mutateLink, mutateNode, Random). It
// replaces the process-wide mutable counter of the original
// implementation with an owned value threaded explicitly into any
// operation that creates new connection genes, so tests can run with
// independent, reproducible numbering instead of hidden global state.
//
// A single InnovationRegistry is expected to back one Creator/driver;
// the mutex makes it safe to share across goroutines even though the
// engine itself is single-threaded and blocking.
type InnovationRegistry struct {
	mu   sync.Mutex
	next int64
}

// NewInnovationRegistry returns a registry that issues innovation
// numbers starting at 1.
func NewInnovationRegistry() *InnovationRegistry {
	return &InnovationRegistry{next: 0}
}

// Next returns the next unique innovation number.
func (r *InnovationRegistry) Next() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// Peek returns the innovation number that the next call to Next will
// issue, without consuming it. Useful for tests that need to seed an
// expected sequence (see spec fixture S5).
func (r *InnovationRegistry) Peek() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next + 1
}

// Seed resets the registry so the next call to Next returns n+1. Tests
// use this to reproduce fixtures like S5 where the original fixed the
// global counter at a specific value before crossing two genomes.
func (r *InnovationRegistry) Seed(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next = n
}
