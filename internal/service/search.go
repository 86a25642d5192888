package service

import (
	"slices"

	"vocabook/internal/domain"
	"vocabook/internal/repository"
	"vocabook/internal/similarity"

	"github.com/tchap/go-patricia/v2/patricia"
)

// SearchEngine ranks dictionary entries by similarity to a keyword
type SearchEngine struct {
	source repository.EntrySource
	score  similarity.Func

	// prefix index, reused while a versioned source is unchanged
	trie        *patricia.Trie
	trieVersion uint64
}

// NewSearchEngine creates a search engine; a nil scorer means similarity.Ratio
func NewSearchEngine(source repository.EntrySource, score similarity.Func) *SearchEngine {
	if score == nil {
		score = similarity.Ratio
	}
	return &SearchEngine{
		source: source,
		score:  score,
	}
}

// Search returns the entries scoring at least threshold, best match first
func (e *SearchEngine) Search(keyword string, threshold float64) []domain.Entry {
	matches := e.SearchScored(keyword, threshold)

	entries := make([]domain.Entry, len(matches))
	for i, m := range matches {
		entries[i] = m.Entry
	}
	return entries
}

// SearchScored is Search with the score of every hit. An entry scores the
// better of its word and its translation; equal scores keep collection order.
func (e *SearchEngine) SearchScored(keyword string, threshold float64) []domain.Match {
	var matches []domain.Match
	for _, entry := range e.source.Entries() {
		score := max(e.score(keyword, entry.Word), e.score(keyword, entry.Translation))
		if score >= threshold {
			matches = append(matches, domain.Match{Entry: entry, Score: score})
		}
	}

	slices.SortStableFunc(matches, func(a, b domain.Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return matches
}

// Prefix returns the entries whose word or translation starts with prefix,
// in collection order
func (e *SearchEngine) Prefix(prefix string) []domain.Entry {
	entries := e.source.Entries()
	if prefix == "" {
		return entries
	}

	trie := e.prefixIndex(entries)

	seen := make(map[int]bool)
	var positions []int
	trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		for _, i := range item.([]int) {
			if !seen[i] {
				seen[i] = true
				positions = append(positions, i)
			}
		}
		return nil
	})
	slices.Sort(positions)

	result := make([]domain.Entry, len(positions))
	for i, pos := range positions {
		result[i] = entries[pos]
	}
	return result
}

// prefixIndex maps every word and translation to the positions of the
// entries holding it. The trie is cached only for sources that report a
// version.
func (e *SearchEngine) prefixIndex(entries []domain.Entry) *patricia.Trie {
	versioned, ok := e.source.(repository.VersionedSource)
	if ok && e.trie != nil && e.trieVersion == versioned.Version() {
		return e.trie
	}

	trie := patricia.NewTrie()
	for i, entry := range entries {
		for _, key := range []string{entry.Word, entry.Translation} {
			if key == "" {
				continue
			}
			p := patricia.Prefix(key)
			if item := trie.Get(p); item != nil {
				trie.Set(p, append(item.([]int), i))
			} else {
				trie.Insert(p, []int{i})
			}
		}
	}

	if ok {
		e.trie = trie
		e.trieVersion = versioned.Version()
	}
	return trie
}
