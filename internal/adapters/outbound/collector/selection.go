package collector

import (
	"sync"

	"github.com/designqa/designqa/internal/domain"
)

// Selection holds the editor's currently selected elements. Each Replace
// bumps the version so readers can tell whether an analysis is stale.
type Selection struct {
	mu       sync.RWMutex
	elements []domain.DesignElement
	version  uint64
}

// NewSelection returns an empty selection at version 0.
func NewSelection() *Selection { return &Selection{} }

// Replace swaps in a new selection and returns its version.
func (s *Selection) Replace(elements []domain.DesignElement) uint64 {
	cp := make([]domain.DesignElement, len(elements))
	copy(cp, elements)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = cp
	s.version++
	return s.version
}

// Snapshot returns a copy of the selection and the version it was taken at.
func (s *Selection) Snapshot() ([]domain.DesignElement, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]domain.DesignElement, len(s.elements))
	copy(cp, s.elements)
	return cp, s.version
}

// Clear empties the selection. It counts as a change.
func (s *Selection) Clear() uint64 {
	return s.Replace(nil)
}

// Len reports the number of selected elements.
func (s *Selection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// Version reports the current selection version.
func (s *Selection) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
