package cost

import "sync"

// TableSource provides the coefficient tables used by the model.
type TableSource interface {
	Tables() (*Tables, error)
}

// StaticSource serves a fixed set of tables.
type StaticSource struct {
	T *Tables
}

// Tables returns the wrapped tables after validating them.
func (s StaticSource) Tables() (*Tables, error) {
	if err := s.T.Validate(); err != nil {
		return nil, err
	}
	return s.T, nil
}

// LazySource loads the tables on first use and shares them afterwards.
// A failed load is not remembered; the next call tries again.
type LazySource struct {
	load func() (*Tables, error)

	mu     sync.Mutex
	tables *Tables
}

// NewLazySource wraps a loader function.
func NewLazySource(load func() (*Tables, error)) *LazySource {
	return &LazySource{load: load}
}

// Tables returns the cached tables, loading them if needed.
func (s *LazySource) Tables() (*Tables, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tables != nil {
		return s.tables, nil
	}
	t, err := s.load()
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s.tables = t
	return t, nil
}
