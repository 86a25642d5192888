package service

import (
	"fmt"
	"strings"

	"vocabook/internal/domain"
	"vocabook/internal/repository"
	"vocabook/internal/similarity"

	"go.uber.org/zap"
)

// DictionaryService handles dictionary business logic for the presentation layer
type DictionaryService struct {
	store  repository.EntryStore
	search *SearchEngine
	sorter *LocaleSorter
	logger *zap.Logger
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(store repository.EntryStore, score similarity.Func, logger *zap.Logger) *DictionaryService {
	return &DictionaryService{
		store:  store,
		search: NewSearchEngine(store, score),
		sorter: NewLocaleSorter(store),
		logger: logger,
	}
}

// AddEntry saves a word-translation pair
func (s *DictionaryService) AddEntry(word, translation string) error {
	if strings.TrimSpace(word) == "" || strings.TrimSpace(translation) == "" {
		return domain.ErrEmptyField
	}

	if !s.store.Add(word, translation) {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateWord, word)
	}

	s.logger.Info("Entry added",
		zap.String("word", word),
		zap.String("translation", translation),
	)
	return nil
}

// RemoveEntry deletes a word; removing an unknown word does nothing
func (s *DictionaryService) RemoveEntry(word string) {
	before := s.store.Len()
	s.store.Remove(word)

	s.logger.Info("Entry removed",
		zap.String("word", word),
		zap.Int("removed", before-s.store.Len()),
	)
}

// Save writes the dictionary back to the file it was loaded from
func (s *DictionaryService) Save() error {
	if err := s.store.Persist(""); err != nil {
		s.logger.Error("Failed to save dictionary",
			zap.String("path", s.store.Path()),
			zap.Error(err),
		)
		return err
	}

	s.logger.Debug("Dictionary saved",
		zap.String("path", s.store.Path()),
		zap.Int("entries", s.store.Len()),
	)
	return nil
}

// Search returns the entries close to keyword, best match first
func (s *DictionaryService) Search(keyword string, threshold float64) []domain.Match {
	return s.search.SearchScored(keyword, threshold)
}

// List returns every entry in alphabetical order for the locale
func (s *DictionaryService) List(field domain.Field, locale string, descending bool) ([]domain.Entry, error) {
	return s.sorter.SortBy(field, locale, descending)
}

// Complete returns the entries whose word or translation starts with prefix
func (s *DictionaryService) Complete(prefix string) []domain.Entry {
	return s.search.Prefix(prefix)
}

// Count returns the number of entries
func (s *DictionaryService) Count() int {
	return s.store.Len()
}
