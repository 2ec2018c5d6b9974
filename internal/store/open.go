package store

import (
	"fmt"
	"io"
	"path/filepath"

	"git.sr.ht/~jakintosh/tasklist/internal/domain"
	"github.com/spf13/afero"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Backend is a Storage that holds resources until closed.
type Backend interface {
	domain.Storage
	io.Closer
}

// Open builds the named backend. dataDir holds the data file(s) for the
// file and sqlite backends and is ignored by memory.
func Open(backend, dataDir string) (Backend, error) {
	switch backend {
	case BackendMemory:
		return NewInMemoryStore(), nil
	case BackendFile:
		return NewFileStore(afero.NewOsFs(), dataDir)
	case BackendSQLite:
		fsys := afero.NewOsFs()
		if err := fsys.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
		}
		return NewSQLiteStore(filepath.Join(dataDir, "tasklist.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
