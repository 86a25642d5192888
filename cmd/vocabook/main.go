package main

import (
	"fmt"
	"os"
	"path/filepath"

	"vocabook/internal/config"
	"vocabook/internal/handler"
	"vocabook/internal/repository"
	"vocabook/internal/repository/file"
	"vocabook/internal/repository/sqlite"
	"vocabook/internal/service"
	"vocabook/internal/similarity"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	configPath := os.Getenv("VOCABOOK_CONFIG")
	if configPath == "" {
		configPath = config.DefaultFile
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load dictionary
	store := file.NewStore()
	if err := store.Load(cfg.DictionaryPath); err != nil {
		logger.Fatal("Failed to load dictionary",
			zap.String("path", cfg.DictionaryPath),
			zap.Error(err),
		)
	}

	logger.Debug("Dictionary loaded",
		zap.String("path", store.Path()),
		zap.Int("entries", store.Len()),
	)

	score, err := similarity.ForAlgorithm(cfg.Search.Algorithm)
	if err != nil {
		logger.Fatal("Failed to select similarity algorithm", zap.Error(err))
	}

	// Initialize services
	dictionaryService := service.NewDictionaryService(store, score, logger)
	archiveService := service.NewArchiveService(store, logger)

	// Initialize handler
	h := handler.NewHandler(
		dictionaryService,
		archiveService,
		openArchive,
		handler.Settings{
			Threshold:        cfg.Search.Threshold,
			Locale:           cfg.Locale,
			ArchivePath:      cfg.ArchivePath,
			WordLabel:        cfg.Languages.Word,
			TranslationLabel: cfg.Languages.Translation,
		},
		logger,
	)

	app := &cli.App{
		Name:     "vocabook",
		Usage:    "personal bilingual dictionary with fuzzy search",
		Commands: h.Commands(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

// newLogger builds a production logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

// openArchive opens the SQLite archive, creating its directory if needed
func openArchive(path string) (repository.EntryArchive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	repo, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
