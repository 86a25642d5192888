package testutil

import (
	"vocabook/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test entry
func NewTestEntry(word, translation string) domain.Entry {
	return domain.Entry{
		Word:        word,
		Translation: translation,
	}
}

// StaticSource serves a fixed list of entries
type StaticSource []domain.Entry

// Entries returns the entries as stored; callers must not rely on a copy
func (s StaticSource) Entries() []domain.Entry {
	return s
}
