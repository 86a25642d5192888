package service

import (
	"vocabook/internal/repository"

	"go.uber.org/zap"
)

// ArchiveService copies the dictionary to and from a snapshot archive
type ArchiveService struct {
	store  repository.EntryStore
	logger *zap.Logger
}

// NewArchiveService creates a new archive service
func NewArchiveService(store repository.EntryStore, logger *zap.Logger) *ArchiveService {
	return &ArchiveService{
		store:  store,
		logger: logger,
	}
}

// Export replaces the archive contents with the current dictionary
func (s *ArchiveService) Export(archive repository.EntryArchive) (int, error) {
	entries := s.store.Entries()

	s.logger.Info("Starting archive export", zap.Int("entries", len(entries)))

	if err := archive.SaveAll(entries); err != nil {
		s.logger.Error("Failed to export dictionary", zap.Error(err))
		return 0, err
	}

	s.logger.Info("Archive export completed")
	return len(entries), nil
}

// Import adds archived entries to the dictionary. Words already present are
// skipped, so the dictionary's own translation wins.
func (s *ArchiveService) Import(archive repository.EntryArchive) (added, skipped int, err error) {
	entries, err := archive.LoadAll()
	if err != nil {
		s.logger.Error("Failed to read archive", zap.Error(err))
		return 0, 0, err
	}

	for _, e := range entries {
		if s.store.Add(e.Word, e.Translation) {
			added++
		} else {
			skipped++
		}
	}

	s.logger.Info("Archive import completed",
		zap.Int("added", added),
		zap.Int("skipped", skipped),
	)
	return added, skipped, nil
}
