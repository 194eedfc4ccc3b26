package chainspec

import (
	"sync/atomic"
)

// Store publishes the process-wide chain specification. The discipline is
// "construct once, read forever": readers on any goroutine call Current
// without locking, and reconfiguration is an atomic swap of the whole
// reference via Publish — never an in-place edit of the published value.
//
// The zero Store is ready to use and holds no specification.
type Store struct {
	v atomic.Value
}

// Publish makes spec the current specification. The caller must only publish
// values that came out of Load (or a preset), i.e. fully validated ones.
func (s *Store) Publish(spec *ChainSpec) {
	s.v.Store(spec)
}

// Current returns the published specification, or nil before the first
// Publish.
func (s *Store) Current() *ChainSpec {
	spec, _ := s.v.Load().(*ChainSpec)
	return spec
}
