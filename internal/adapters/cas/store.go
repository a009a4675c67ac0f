// Package cas remembers the fingerprints of generated outputs.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/prosa/internal/core/domain"
	"go.trai.ch/prosa/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.GenerationStore = (*Store)(nil)
	_ ports.StoreOpener     = (*Opener)(nil)
)

// Store implements ports.GenerationStore using a flat JSON file keyed by output path.
type Store struct {
	path   string
	mu     sync.RWMutex
	saveMu sync.Mutex
	cache  map[string]domain.GenerationRecord
}

// NewStore creates a new GenerationStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.GenerationRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read generation store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal generation store"), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal generation store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for generation store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write generation store"), "path", s.path)
	}

	return nil
}

// Get retrieves the record for an output path.
func (s *Store) Get(path string) (*domain.GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[filepath.Clean(path)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and persists the store.
func (s *Store) Put(record domain.GenerationRecord) error {
	record.Path = filepath.Clean(record.Path)

	s.mu.Lock()
	s.cache[record.Path] = record
	s.mu.Unlock()

	return s.save()
}

// Opener opens one Store per state file and hands out the same instance on repeated opens.
type Opener struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{stores: make(map[string]*Store)}
}

// Open returns the store kept at path.
func (o *Opener) Open(path string) (ports.GenerationStore, error) {
	path = filepath.Clean(path)

	o.mu.Lock()
	defer o.mu.Unlock()

	if s, ok := o.stores[path]; ok {
		return s, nil
	}
	s, err := NewStore(path)
	if err != nil {
		return nil, err
	}
	o.stores[path] = s
	return s, nil
}
