package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"vocabook/internal/similarity"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the configuration file read when none is given
const DefaultFile = "vocabook.toml"

// Config holds all application configuration
type Config struct {
	DictionaryPath string
	ArchivePath    string
	Locale         string
	LogLevel       string
	Languages      LanguageConfig
	Search         SearchConfig
}

// LanguageConfig holds the display names of the two dictionary languages
type LanguageConfig struct {
	Word        string
	Translation string
}

// SearchConfig holds fuzzy search settings
type SearchConfig struct {
	Threshold float64
	Algorithm similarity.Algorithm
}

// fileConfig mirrors the TOML file; every key is optional
type fileConfig struct {
	DictionaryPath string   `toml:"dictionary_path"`
	ArchivePath    string   `toml:"archive_path"`
	Locale         string   `toml:"locale"`
	LogLevel       string   `toml:"log_level"`
	WordLang       string   `toml:"word_lang"`
	TransLang      string   `toml:"trans_lang"`
	Threshold      *float64 `toml:"threshold"`
	Algorithm      string   `toml:"algorithm"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		DictionaryPath: "dict/dictionary.json",
		ArchivePath:    "dict/archive.db",
		Locale:         "en",
		LogLevel:       "warn",
		Languages: LanguageConfig{
			Word:        "word",
			Translation: "translation",
		},
		Search: SearchConfig{
			Threshold: 0.6,
			Algorithm: similarity.RatcliffObershelp,
		},
	}
}

// Load reads configuration from the TOML file at path (if it exists) and then
// from environment variables, which take precedence
func Load(path string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.DictionaryPath = getEnv("VOCABOOK_DICTIONARY", cfg.DictionaryPath)
	cfg.ArchivePath = getEnv("VOCABOOK_ARCHIVE", cfg.ArchivePath)
	cfg.Locale = getEnv("VOCABOOK_LOCALE", cfg.Locale)
	cfg.LogLevel = getEnv("VOCABOOK_LOG_LEVEL", cfg.LogLevel)
	cfg.Languages.Word = getEnv("VOCABOOK_WORD_LANG", cfg.Languages.Word)
	cfg.Languages.Translation = getEnv("VOCABOOK_TRANS_LANG", cfg.Languages.Translation)
	cfg.Search.Algorithm = similarity.Algorithm(getEnv("VOCABOOK_ALGORITHM", string(cfg.Search.Algorithm)))

	if raw := os.Getenv("VOCABOOK_THRESHOLD"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("VOCABOOK_THRESHOLD must be a number: %w", err)
		}
		cfg.Search.Threshold = threshold
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the application cannot use
func (c *Config) Validate() error {
	if c.DictionaryPath == "" {
		return fmt.Errorf("dictionary path is required")
	}
	if c.Search.Threshold < 0 || c.Search.Threshold > 1 {
		return fmt.Errorf("search threshold must be between 0 and 1, got %v", c.Search.Threshold)
	}
	if _, err := similarity.ForAlgorithm(c.Search.Algorithm); err != nil {
		return err
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	override(&c.DictionaryPath, fc.DictionaryPath)
	override(&c.ArchivePath, fc.ArchivePath)
	override(&c.Locale, fc.Locale)
	override(&c.LogLevel, fc.LogLevel)
	override(&c.Languages.Word, fc.WordLang)
	override(&c.Languages.Translation, fc.TransLang)
	if fc.Algorithm != "" {
		c.Search.Algorithm = similarity.Algorithm(fc.Algorithm)
	}
	if fc.Threshold != nil {
		c.Search.Threshold = *fc.Threshold
	}

	return nil
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
