package repository

import (
	"vocabook/internal/domain"
)

// EntrySource exposes a read-only snapshot of the dictionary
type EntrySource interface {
	Entries() []domain.Entry
}

// VersionedSource is an EntrySource whose version changes whenever its
// entries do
type VersionedSource interface {
	EntrySource
	Version() uint64
}

// EntryStore defines dictionary data operations
type EntryStore interface {
	EntrySource
	Load(path string) error
	Persist(path string) error
	Add(word, translation string) bool
	Remove(word string)
	Path() string
	Len() int
}

// EntryArchive defines snapshot storage for a whole dictionary
type EntryArchive interface {
	SaveAll(entries []domain.Entry) error
	LoadAll() ([]domain.Entry, error)
	Close() error
}
