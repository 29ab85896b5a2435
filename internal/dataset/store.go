package dataset

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"vosul/internal/domain"
	"vosul/internal/port"
)

// Store publishes the current Dataset. A published Dataset is never modified;
// a reload prepares a new one and swaps the pointer.
type Store struct {
	source port.RecordSource
	opts   Options
	log    zerolog.Logger

	mu      sync.Mutex // serializes loads
	current atomic.Pointer[domain.Dataset]
}

// NewStore creates a Store that prepares datasets from source.
func NewStore(source port.RecordSource, opts Options, log zerolog.Logger) *Store {
	return &Store{source: source, opts: opts, log: log}
}

// Current returns the published Dataset, or nil before the first load.
func (s *Store) Current() *domain.Dataset {
	return s.current.Load()
}

// Publish replaces the current Dataset.
func (s *Store) Publish(ds *domain.Dataset) {
	s.current.Store(ds)
}

// Load fetches and prepares a new Dataset and publishes it. On failure the
// previously published Dataset stays in place.
func (s *Store) Load(ctx context.Context) (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}

	ds := Prepare(raw, s.opts)
	s.current.Store(ds)

	s.log.Info().
		Int("raw_rows", len(raw)).
		Int("records", ds.Len()).
		Dur("took", time.Since(start)).
		Msg("dataset loaded")
	return ds, nil
}
