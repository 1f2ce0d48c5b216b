// Package state holds the process-wide mutable state shared between the
// select and crop operations.
package state

import "sync"

// Selection is the currently selected source file. The zero value is empty
// and ready to use. It is safe for concurrent use; Get always observes a
// fully written value from the most recent Set.
type Selection struct {
	mu   sync.RWMutex
	path string
	set  bool
}

// NewSelection returns an empty Selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Set replaces the selected path. Last write wins.
func (s *Selection) Set(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	s.set = path != ""
}

// Get returns a copy of the selected path and whether one is set.
func (s *Selection) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path, s.set
}
