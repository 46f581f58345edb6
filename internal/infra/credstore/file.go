package credstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"courtbook/internal/pkg/errs"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// FileStore keeps entries in one JSON object on disk. Every Set and Remove
// rewrites the file through a temp file and rename. Write failures are logged;
// the in-memory view stays authoritative for the rest of the process.
type FileStore struct {
	mu      sync.RWMutex
	path    string
	entries map[string]string
	logger  *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if path == "" {
		return nil, errs.New("credential store path is empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &FileStore{path: path, entries: map[string]string{}, logger: logger}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultPath is $XDG_CONFIG_HOME/courtbook/credentials.json or the OS equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errs.Wrap(err, "resolve config dir")
	}
	return filepath.Join(dir, "courtbook", "credentials.json"), nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	s.persist()
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.persist()
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errs.Wrap(err, "read credential store")
	}
	if len(data) == 0 {
		return nil
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("credential store is corrupt, starting empty",
			slog.String("path", s.path),
			slog.Any("error", err))
		return nil
	}
	// a literal null decodes to a nil map
	if entries != nil {
		s.entries = entries
	}
	return nil
}

// persist must be called with mu held.
func (s *FileStore) persist() {
	if err := s.writeFile(); err != nil {
		s.logger.Error("failed to persist credential store",
			slog.String("path", s.path),
			slog.Any("error", err))
	}
}

func (s *FileStore) writeFile() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return errs.Wrap(err, "create credential dir")
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return errs.Wrap(err, "encode credential store")
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*.tmp")
	if err != nil {
		return errs.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return errs.Wrap(err, "chmod temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errs.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(err, "close temp file")
	}
	return errs.Wrap(os.Rename(tmpName, s.path), "rename credential store")
}
