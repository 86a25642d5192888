package testutil

import (
	"vocabook/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockEntryStore is a mock for EntryStore
type MockEntryStore struct {
	mock.Mock
}

func (m *MockEntryStore) Load(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockEntryStore) Persist(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockEntryStore) Add(word, translation string) bool {
	args := m.Called(word, translation)
	return args.Bool(0)
}

func (m *MockEntryStore) Remove(word string) {
	m.Called(word)
}

func (m *MockEntryStore) Entries() []domain.Entry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Entry)
}

func (m *MockEntryStore) Path() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockEntryStore) Len() int {
	args := m.Called()
	return args.Int(0)
}

// MockEntryArchive is a mock for EntryArchive
type MockEntryArchive struct {
	mock.Mock
}

func (m *MockEntryArchive) SaveAll(entries []domain.Entry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *MockEntryArchive) LoadAll() ([]domain.Entry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryArchive) Close() error {
	args := m.Called()
	return args.Error(0)
}
