package handler

import (
	"strings"
	"unicode"

	"vocabook/internal/middleware"
	"vocabook/internal/repository"
	"vocabook/internal/service"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// ArchiveOpener opens the snapshot archive stored at path
type ArchiveOpener func(path string) (repository.EntryArchive, error)

// Settings holds the defaults commands fall back to when a flag is not given
type Settings struct {
	Threshold        float64
	Locale           string
	ArchivePath      string
	WordLabel        string
	TranslationLabel string
}

// Handler turns command-line invocations into dictionary operations
type Handler struct {
	dictionary  *service.DictionaryService
	archive     *service.ArchiveService
	openArchive ArchiveOpener
	settings    Settings
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	dictionary *service.DictionaryService,
	archive *service.ArchiveService,
	openArchive ArchiveOpener,
	settings Settings,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		dictionary:  dictionary,
		archive:     archive,
		openArchive: openArchive,
		settings:    settings,
		logger:      logger,
	}
}

// Commands returns every command of the application. Commands that change
// the dictionary save it once they succeed.
func (h *Handler) Commands() []*cli.Command {
	persist := middleware.Persist(h.dictionary, h.logger)

	return []*cli.Command{
		{
			Name:      "add",
			Usage:     "add a word and its translation",
			ArgsUsage: "<word> <translation>",
			Action:    persist(h.handleAdd),
		},
		{
			Name:      "remove",
			Usage:     "remove a word",
			ArgsUsage: "<word>",
			Action:    persist(h.handleRemove),
		},
		{
			Name:      "search",
			Usage:     "find words or translations close to a keyword (flags go before the keyword)",
			ArgsUsage: "<keyword>",
			Flags: []cli.Flag{
				&cli.Float64Flag{
					Name:    "threshold",
					Aliases: []string{"t"},
					Usage:   "minimum similarity between 0 and 1",
					Value:   h.settings.Threshold,
				},
			},
			Action: h.handleSearch,
		},
		{
			Name:  "list",
			Usage: "show every entry in alphabetical order",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "by",
					Usage: "sort field: word or translation",
					Value: "word",
				},
				&cli.StringFlag{
					Name:  "locale",
					Usage: "collation locale, e.g. es or it_IT.UTF-8",
					Value: h.settings.Locale,
				},
				&cli.BoolFlag{
					Name:  "desc",
					Usage: "reverse alphabetical order",
				},
			},
			Action: h.handleList,
		},
		{
			Name:      "complete",
			Usage:     "show entries starting with a prefix",
			ArgsUsage: "<prefix>",
			Action:    h.handleComplete,
		},
		{
			Name:  "export",
			Usage: "write the dictionary to the SQLite archive",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "db",
					Usage: "archive path",
					Value: h.settings.ArchivePath,
				},
			},
			Action: h.handleExport,
		},
		{
			Name:  "import",
			Usage: "add entries from the SQLite archive, skipping known words",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "db",
					Usage: "archive path",
					Value: h.settings.ArchivePath,
				},
			},
			Action: persist(h.handleImport),
		},
	}
}

// cleanInput removes all non-printable characters from user input
func cleanInput(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(s))
}
