package service

import (
	"fmt"
	"path/filepath"
	"testing"

	"vocabook/internal/domain"
	"vocabook/internal/repository/file"
	"vocabook/internal/similarity"
	"vocabook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryService_AddEntry(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		translation   string
		mockAdded     bool
		expectedError error
	}{
		{
			name:        "valid entry",
			word:        "hello",
			translation: "привет",
			mockAdded:   true,
		},
		{
			name:          "duplicate word",
			word:          "hello",
			translation:   "ciao",
			mockAdded:     false,
			expectedError: domain.ErrDuplicateWord,
		},
		{
			name:          "empty word",
			word:          "",
			translation:   "привет",
			expectedError: domain.ErrEmptyField,
		},
		{
			name:          "whitespace translation",
			word:          "hello",
			translation:   " \t",
			expectedError: domain.ErrEmptyField,
		},
		{
			name:          "both empty",
			word:          "",
			translation:   "",
			expectedError: domain.ErrEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockEntryStore)

			// Only set up mock if inputs are valid
			validInput := tt.expectedError != domain.ErrEmptyField
			if validInput {
				mockStore.On("Add", tt.word, tt.translation).Return(tt.mockAdded)
			}

			service := NewDictionaryService(mockStore, similarity.Ratio, testutil.NewTestLogger())

			err := service.AddEntry(tt.word, tt.translation)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockStore.AssertExpectations(t)
		})
	}
}

func TestDictionaryService_RemoveEntry(t *testing.T) {
	mockStore := new(testutil.MockEntryStore)
	mockStore.On("Len").Return(2).Once()
	mockStore.On("Remove", "chico").Return()
	mockStore.On("Len").Return(1).Once()

	service := NewDictionaryService(mockStore, nil, testutil.NewTestLogger())

	service.RemoveEntry("chico")

	mockStore.AssertExpectations(t)
}

func TestDictionaryService_Save(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful save",
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "no path",
			mockError:     domain.ErrNoPersistencePath,
			expectedError: true,
		},
		{
			name:          "disk error",
			mockError:     fmt.Errorf("%w: disk full", domain.ErrIO),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockEntryStore)
			mockStore.On("Persist", "").Return(tt.mockError)
			mockStore.On("Path").Return("dict/dictionary.json")
			mockStore.On("Len").Return(3).Maybe()

			service := NewDictionaryService(mockStore, nil, testutil.NewTestLogger())

			err := service.Save()

			if tt.expectedError {
				assert.ErrorIs(t, err, tt.mockError)
			} else {
				assert.NoError(t, err)
			}

			mockStore.AssertExpectations(t)
		})
	}
}

func TestDictionaryService_Search(t *testing.T) {
	mockStore := new(testutil.MockEntryStore)
	mockStore.On("Entries").Return([]domain.Entry{
		testutil.NewTestEntry("chico", "ragazzo"),
		testutil.NewTestEntry("manzana", "mela"),
	})

	service := NewDictionaryService(mockStore, similarity.Ratio, testutil.NewTestLogger())

	matches := service.Search("manana", 0.6)

	require.Len(t, matches, 1)
	assert.Equal(t, "manzana", matches[0].Word)
	assert.InDelta(t, 12.0/13.0, matches[0].Score, 1e-9)
	mockStore.AssertExpectations(t)
}

func TestDictionaryService_List(t *testing.T) {
	mockStore := new(testutil.MockEntryStore)
	mockStore.On("Entries").Return([]domain.Entry{
		testutil.NewTestEntry("manzana", "mela"),
		testutil.NewTestEntry("chico", "ragazzo"),
	})

	service := NewDictionaryService(mockStore, nil, testutil.NewTestLogger())

	entries, err := service.List(domain.FieldWord, "es", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"chico", "manzana"}, words(entries))

	_, err = service.List(domain.FieldWord, "zz", false)
	assert.ErrorIs(t, err, domain.ErrUnsupportedLocale)
}

func TestDictionaryService_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t", "test.json")

	store := file.NewStore()
	require.NoError(t, store.Load(path))

	service := NewDictionaryService(store, similarity.Ratio, testutil.NewTestLogger())

	require.NoError(t, service.AddEntry("chico", "ragazzo"))
	require.NoError(t, service.AddEntry("manzana", "mela"))
	assert.ErrorIs(t, service.AddEntry("chico", "bambino"), domain.ErrDuplicateWord)
	require.NoError(t, service.Save())

	reloaded := file.NewStore()
	require.NoError(t, reloaded.Load(path))
	assert.Equal(t, store.Entries(), reloaded.Entries())

	assert.Equal(t, 2, service.Count())
	assert.Equal(t, []string{"manzana"}, words(service.Complete("manz")))

	service.RemoveEntry("chico")
	assert.Equal(t, 1, service.Count())
}
