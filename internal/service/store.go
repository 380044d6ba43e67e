package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/bzstats/internal/cache/mem"
	"github.com/goserg/bzstats/internal/domain"
	"github.com/goserg/bzstats/internal/ingest"
	"github.com/goserg/bzstats/internal/source"
)

var ErrNotLoaded = errors.New("match data is not loaded")

// Snapshot is one normalized load of the document. It is never modified.
type Snapshot struct {
	ID          uuid.UUID
	LoadedAt    time.Time
	LastUpdated string
	Games       []domain.Game
	Warnings    []ingest.Warning
}

type Loader interface {
	Load(ctx context.Context) ([]byte, error)
	Location() string
}

// Store holds the current snapshot. A reload replaces it wholesale.
type Store struct {
	loader Loader
	log    logrus.FieldLogger
	names  *mem.Cache

	mu       sync.RWMutex
	snapshot *Snapshot
	err      error
}

func NewStore(loader Loader, log logrus.FieldLogger) *Store {
	return &Store{
		loader: loader,
		log:    log.WithField("name", "store"),
		names:  mem.New(),
		err:    ErrNotLoaded,
	}
}

// Load fetches and normalizes the document. On failure the store keeps the
// error and drops the previous snapshot so callers see the failed state.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	log := s.log.WithField("location", s.loader.Location())
	snapshot, err := s.load(ctx, log)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.WithError(err).Error("load failed")
		s.snapshot, s.err = nil, err
		return nil, err
	}
	s.snapshot, s.err = snapshot, nil
	s.names.Update(snapshot.Games)
	log.WithFields(logrus.Fields{
		"snapshot": snapshot.ID,
		"games":    len(snapshot.Games),
		"skipped":  len(snapshot.Warnings),
	}).Info("match data loaded")
	return snapshot, nil
}

func (s *Store) load(ctx context.Context, log logrus.FieldLogger) (*Snapshot, error) {
	data, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	result, err := ingest.Normalize(data, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrLoad, err)
	}
	return &Snapshot{
		ID:          uuid.New(),
		LoadedAt:    time.Now(),
		LastUpdated: result.LastUpdated,
		Games:       result.Games,
		Warnings:    result.Warnings,
	}, nil
}

// Current returns the loaded snapshot or the error of the last load.
func (s *Store) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func (s *Store) Names() *mem.Cache {
	return s.names
}
