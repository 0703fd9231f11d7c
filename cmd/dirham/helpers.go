package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/dirhamflow/dirhamflow/internal/llm"
	"github.com/dirhamflow/dirhamflow/internal/parse"
	"github.com/dirhamflow/dirhamflow/internal/service"
	"github.com/dirhamflow/dirhamflow/internal/storage"
)

// defaultDBPath returns the default SQLite path under the user's config
// directory.
func defaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dirham", "dirham.db"), nil
}

// openStorage opens the ledger database and brings the schema up to date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		var err error
		dbPath, err = defaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return store, nil
}

// newExtractor builds the configured extraction strategy.
func newExtractor(ctx context.Context) (service.Extractor, error) {
	strategy := viper.GetString("parser.strategy")

	switch strategy {
	case "template", "":
		return parse.NewTemplateExtractor(), nil
	case "generic":
		return parse.NewGenericExtractor(), nil
	case "gemini":
		apiKey := viper.GetString("gemini.api_key")
		if apiKey == "" {
			return nil, fmt.Errorf("gemini.api_key is required for the gemini strategy (set DIRHAM_GEMINI_API_KEY)")
		}

		client, err := llm.NewClient(ctx, llm.Config{
			Provider: "gemini",
			Model:    viper.GetString("gemini.model"),
			APIKey:   apiKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}

		timeout := viper.GetDuration("gemini.timeout")
		return llm.NewExtractor(client, timeout), nil
	default:
		return nil, fmt.Errorf("unknown extraction strategy: %s", strategy)
	}
}

// monthRange parses a YYYY-MM string; an empty value means the current
// month.
func monthRange(value string) (int, time.Month, error) {
	if value == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}

	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return t.Year(), t.Month(), nil
}
