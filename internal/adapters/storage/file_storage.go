package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/greenwheels/console-api/internal/core/domain"
	"github.com/greenwheels/console-api/internal/core/ports"
)

// FileStorage persists the serialized session as a JSON file, for
// single-node and development deployments that run without Redis.
type FileStorage struct {
	path string
}

var _ ports.SessionStorage = (*FileStorage)(nil)

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load(_ context.Context) (domain.Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		// Missing and unreadable files both mean "no session".
		return domain.EmptySession(), ports.ErrNoSession
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.EmptySession(), ports.ErrNoSession
	}
	return session, nil
}

func (s *FileStorage) Save(_ context.Context, session domain.Session) error {
	blob, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	// Write-then-rename keeps a crash mid-write from leaving a truncated
	// blob in the slot.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
