package handler

import (
	"fmt"
	"strings"

	"vocabook/internal/domain"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// handleAdd handles "add <word> <translation>"
func (h *Handler) handleAdd(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: add <word> <translation>")
	}

	word := cleanInput(c.Args().Get(0))
	translation := cleanInput(c.Args().Get(1))

	if err := h.dictionary.AddEntry(word, translation); err != nil {
		h.logger.Warn("Entry rejected",
			zap.String("word", word),
			zap.Error(err),
		)
		return err
	}

	fmt.Fprintf(c.App.Writer, "Added %s: %s\n", word, translation)
	return nil
}

// handleRemove handles "remove <word>"
func (h *Handler) handleRemove(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: remove <word>")
	}

	word := cleanInput(c.Args().First())
	h.dictionary.RemoveEntry(word)

	fmt.Fprintf(c.App.Writer, "Removed %s\n", word)
	return nil
}

// handleSearch handles "search [--threshold t] <keyword>"
func (h *Handler) handleSearch(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: search [--threshold t] <keyword>")
	}

	// Flags after the keyword are not parsed and would end up in it
	for _, arg := range c.Args().Slice() {
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("flags must come before the keyword: search [--threshold t] <keyword>, got %q", arg)
		}
	}

	threshold := c.Float64("threshold")
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("threshold must be between 0 and 1, got %v", threshold)
	}

	keyword := cleanInput(strings.Join(c.Args().Slice(), " "))
	matches := h.dictionary.Search(keyword, threshold)

	h.logger.Debug("Search completed",
		zap.String("keyword", keyword),
		zap.Float64("threshold", threshold),
		zap.Int("matches", len(matches)),
	)

	if len(matches) == 0 {
		fmt.Fprintln(c.App.Writer, "No matches")
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(c.App.Writer, "%s: %s (%.2f)\n", m.Word, m.Translation, m.Score)
	}
	return nil
}

// handleList handles "list [--by field] [--locale id] [--desc]"
func (h *Handler) handleList(c *cli.Context) error {
	field, err := domain.ParseField(c.String("by"))
	if err != nil {
		return err
	}

	entries, err := h.dictionary.List(field, c.String("locale"), c.Bool("desc"))
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.App.Writer, "Dictionary is empty")
		return nil
	}

	fmt.Fprintf(c.App.Writer, "%s: %s (%d)\n", h.settings.WordLabel, h.settings.TranslationLabel, len(entries))
	printEntries(c, entries)
	return nil
}

// handleComplete handles "complete <prefix>"
func (h *Handler) handleComplete(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: complete <prefix>")
	}

	entries := h.dictionary.Complete(c.Args().First())
	printEntries(c, entries)
	return nil
}

func printEntries(c *cli.Context, entries []domain.Entry) {
	for _, e := range entries {
		fmt.Fprintf(c.App.Writer, "%s: %s\n", e.Word, e.Translation)
	}
}
