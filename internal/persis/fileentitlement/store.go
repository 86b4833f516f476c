package fileentitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/ringlite/ringlite/internal/entitlement"
)

const (
	stateFile     = "app_data.json"
	lockFile      = stateFile + ".lock"
	dirPerm       = 0700
	filePerm      = 0600
	lockRetryWait = 20 * time.Millisecond
)

var (
	_ entitlement.Store  = (*Store)(nil)
	_ entitlement.Locker = (*Store)(nil)
)

// Store implements entitlement.Store and entitlement.Locker on top of a
// JSON file in a per-user data directory.
type Store struct {
	dir  string
	mu   sync.RWMutex
	lock *flock.Flock
}

// New creates a new file-based entitlement store in dir.
func New(dir string) *Store {
	return &Store{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFile)),
	}
}

// Dir returns the directory holding the state file.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the path of the state file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, stateFile)
}

// Load reads the entitlement record from disk.
// Returns nil, nil when the file does not exist.
func (s *Store) Load() (*entitlement.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path()) //nolint:gosec // path is constructed from trusted config dir
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read entitlement file: %w", err)
	}

	var rec entitlement.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entitlement record: %w", err)
	}

	return &rec, nil
}

// Save writes the whole record to a temporary file and renames it over the
// state file, so a reader sees either the old or the new record.
func (s *Store) Save(rec *entitlement.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entitlement record: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, stateFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary entitlement file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write entitlement file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync entitlement file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close entitlement file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to set entitlement file permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return fmt.Errorf("failed to replace entitlement file: %w", err)
	}

	return nil
}

// Lock takes an advisory file lock on the data directory, waiting until it
// is available or ctx is done.
func (s *Store) Lock(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	locked, err := s.lock.TryLockContext(ctx, lockRetryWait)
	if err != nil {
		return nil, fmt.Errorf("failed to lock entitlement file: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock entitlement file: %s", s.lock.Path())
	}

	return func() {
		_ = s.lock.Unlock()
	}, nil
}
