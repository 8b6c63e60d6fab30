package view

import "sync"

// Sequencer orders view derivations by logical sequence. A "load more" or
// filter change supersedes any derivation still in flight; Apply discards
// results that carry an earlier stamp than one already applied, so the
// winner is the last issuer, not the last to finish.
type Sequencer struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Next stamps a new derivation and returns its sequence number.
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Apply reports whether the derivation stamped seq may take effect. A stale
// stamp returns false and leaves the applied watermark unchanged.
func (s *Sequencer) Apply(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		return false
	}
	s.applied = seq
	return true
}
