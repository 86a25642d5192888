// Package file keeps the dictionary in memory and persists it to a single file.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"vocabook/internal/domain"
	"vocabook/internal/repository"
)

var (
	_ repository.EntryStore      = (*Store)(nil)
	_ repository.VersionedSource = (*Store)(nil)
)

// Store implements repository.EntryStore on top of a dictionary file
type Store struct {
	entries []domain.Entry
	path    string
	version uint64
}

// NewStore creates an empty store with no persistence path
func NewStore() *Store {
	return &Store{entries: []domain.Entry{}}
}

// Load replaces the collection with the contents of path. A missing file
// yields an empty collection. On success path becomes the default for Persist.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.entries = []domain.Entry{}
		s.path = path
		s.version++
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: failed to read %s: %w", domain.ErrIO, path, err)
	}

	entries, err := CodecFor(path).Decode(data)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	s.entries = entries
	s.path = path
	s.version++
	return nil
}

// Persist writes the collection to path, or to the loaded path when path is
// empty. Missing parent directories are created and the destination is
// replaced atomically.
func (s *Store) Persist(path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return domain.ErrNoPersistencePath
	}

	data, err := CodecFor(path).Encode(s.entries)
	if err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %w", domain.ErrIO, err)
	}

	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", domain.ErrIO, path, err)
	}

	return nil
}

// Add appends a new entry unless the word is already present
func (s *Store) Add(word, translation string) bool {
	for _, e := range s.entries {
		if e.Word == word {
			return false
		}
	}
	s.entries = append(s.entries, domain.Entry{Word: word, Translation: translation})
	s.version++
	return true
}

// Remove deletes every entry with the given word
func (s *Store) Remove(word string) {
	n := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(e domain.Entry) bool {
		return e.Word == word
	})
	if len(s.entries) != n {
		s.version++
	}
}

// Entries returns a copy of the collection in insertion order
func (s *Store) Entries() []domain.Entry {
	return slices.Clone(s.entries)
}

// Path returns the persistence path set by the last successful Load
func (s *Store) Path() string {
	return s.path
}

// Version changes every time the collection does
func (s *Store) Version() uint64 {
	return s.version
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place. The temporary file never outlives a failed call.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, fileMode(path)); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// fileMode keeps the permissions of an existing destination
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0o644
}
