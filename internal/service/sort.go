package service

import (
	"fmt"
	"slices"
	"strings"

	"vocabook/internal/domain"
	"vocabook/internal/repository"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LocaleSorter orders dictionary entries alphabetically for a locale
type LocaleSorter struct {
	source repository.EntrySource
}

// NewLocaleSorter creates a new locale sorter
func NewLocaleSorter(source repository.EntrySource) *LocaleSorter {
	return &LocaleSorter{source: source}
}

// SortBy returns a sorted copy of the entries ordered by field under the
// collation rules of locale. The sort is stable in both directions.
func (s *LocaleSorter) SortBy(field domain.Field, locale string, descending bool) ([]domain.Entry, error) {
	tag, err := ResolveLocale(locale)
	if err != nil {
		return nil, err
	}

	col := collate.New(tag)
	entries := slices.Clone(s.source.Entries())

	slices.SortStableFunc(entries, func(a, b domain.Entry) int {
		c := col.CompareString(field.Of(a), field.Of(b))
		if descending {
			return -c
		}
		return c
	})

	return entries, nil
}

// ResolveLocale maps a BCP 47 tag or a POSIX locale name (es_ES.UTF-8) to a
// language tag with collation support
func ResolveLocale(id string) (language.Tag, error) {
	name := strings.TrimSpace(id)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", "-")

	if name == "" {
		return language.Und, fmt.Errorf("%w: empty locale identifier", domain.ErrUnsupportedLocale)
	}

	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, id)
	}

	// und and other tags without an explicit language are rejected rather
	// than guessed
	base, conf := tag.Base()
	if conf != language.Exact {
		return language.Und, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, id)
	}

	if !SupportedLanguage(base) {
		return language.Und, fmt.Errorf("%w: no collation rules for %q", domain.ErrUnsupportedLocale, id)
	}

	return tag, nil
}

// rootCollated lists languages whose alphabetical order is the CLDR root
// collation. collate.Supported only reports tailored locales, so these are
// accepted explicitly.
var rootCollated = []language.Base{
	language.MustParseBase("it"),
	language.MustParseBase("pt"),
	language.MustParseBase("nl"),
	language.MustParseBase("id"),
	language.MustParseBase("ms"),
	language.MustParseBase("ga"),
	language.MustParseBase("gd"),
	language.MustParseBase("lb"),
	language.MustParseBase("rm"),
	language.MustParseBase("fy"),
	language.MustParseBase("br"),
	language.MustParseBase("oc"),
	language.MustParseBase("sw"),
	language.MustParseBase("st"),
	language.MustParseBase("xh"),
	language.MustParseBase("zu"),
}

// SupportedLanguage reports whether entries can be sorted for base: either
// CLDR tailors its collation or it uses the root order.
func SupportedLanguage(base language.Base) bool {
	if slices.Contains(rootCollated, base) {
		return true
	}
	for _, supported := range collate.Supported() {
		if b, _ := supported.Base(); b == base {
			return true
		}
	}
	return false
}
