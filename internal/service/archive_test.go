package service

import (
	"fmt"
	"testing"

	"vocabook/internal/domain"
	"vocabook/internal/repository/file"
	"vocabook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveService_Export(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedCount int
		expectedError bool
	}{
		{
			name:          "successful export",
			mockError:     nil,
			expectedCount: 2,
			expectedError: false,
		},
		{
			name:          "archive error",
			mockError:     fmt.Errorf("db error"),
			expectedCount: 0,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []domain.Entry{
				testutil.NewTestEntry("chico", "ragazzo"),
				testutil.NewTestEntry("manzana", "mela"),
			}

			mockStore := new(testutil.MockEntryStore)
			mockStore.On("Entries").Return(entries)

			mockArchive := new(testutil.MockEntryArchive)
			mockArchive.On("SaveAll", entries).Return(tt.mockError)

			service := NewArchiveService(mockStore, testutil.NewTestLogger())

			count, err := service.Export(mockArchive)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCount, count)

			mockStore.AssertExpectations(t)
			mockArchive.AssertExpectations(t)
		})
	}
}

func TestArchiveService_Import(t *testing.T) {
	store := file.NewStore()
	require.True(t, store.Add("chico", "ragazzo"))

	mockArchive := new(testutil.MockEntryArchive)
	mockArchive.On("LoadAll").Return([]domain.Entry{
		testutil.NewTestEntry("chico", "bambino"),
		testutil.NewTestEntry("manzana", "mela"),
		testutil.NewTestEntry("perro", "cane"),
	}, nil)

	service := NewArchiveService(store, testutil.NewTestLogger())

	added, skipped, err := service.Import(mockArchive)

	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, []domain.Entry{
		{Word: "chico", Translation: "ragazzo"},
		{Word: "manzana", Translation: "mela"},
		{Word: "perro", Translation: "cane"},
	}, store.Entries())
	mockArchive.AssertExpectations(t)
}

func TestArchiveService_Import_Error(t *testing.T) {
	mockStore := new(testutil.MockEntryStore)

	mockArchive := new(testutil.MockEntryArchive)
	mockArchive.On("LoadAll").Return(nil, fmt.Errorf("no such table"))

	service := NewArchiveService(mockStore, testutil.NewTestLogger())

	added, skipped, err := service.Import(mockArchive)

	assert.Error(t, err)
	assert.Zero(t, added)
	assert.Zero(t, skipped)
	mockStore.AssertNotCalled(t, "Add")
	mockArchive.AssertExpectations(t)
}
