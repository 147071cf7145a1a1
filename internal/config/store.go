package config

import "sync/atomic"

// Store hands the current config snapshot to the overlay loop and lets the
// watcher replace it atomically between ticks. Entries already in the display
// buffer are unaffected by a swap; they carry only their classification.
type Store struct {
	path string
	ptr  atomic.Pointer[Config]
}

// NewStore creates a store holding the given snapshot.
func NewStore(path string, cfg *Config) *Store {
	s := &Store{path: path}
	s.ptr.Store(cfg)
	return s
}

// Path returns the file this store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Current returns the live snapshot. The returned value must be treated as
// read-only.
func (s *Store) Current() *Config {
	return s.ptr.Load()
}

// Replace swaps in a new snapshot; the previous one is discarded.
func (s *Store) Replace(cfg *Config) {
	s.ptr.Store(cfg)
}
