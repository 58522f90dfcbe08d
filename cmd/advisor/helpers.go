package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/openabit/advisor/internal/advisor"
	"github.com/openabit/advisor/internal/catalog"
	"github.com/openabit/advisor/internal/common"
	"github.com/openabit/advisor/internal/config"
	"github.com/openabit/advisor/internal/model"
	"github.com/openabit/advisor/internal/storage"
)

const defaultDBPath = "$HOME/.local/share/advisor/advisor.db"

// initStorage opens the catalog cache with proper path expansion.
func initStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	return storage.NewSQLiteStorage(config.ExpandPath(dbPath))
}

// loadCatalog returns the cached catalog, falling back to the static
// one when the cache is missing or empty. The static fallback keeps
// every command usable before the first fetch.
func loadCatalog(ctx context.Context) []model.Program {
	store, err := initStorage()
	if err != nil {
		common.LogDebug("Catalog cache unavailable, using static catalog", common.Fields{"error": err.Error()})
		return catalog.Static()
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close catalog cache", "error", err)
		}
	}()

	programs, err := store.LoadCatalog(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrEmptyCatalog) {
			common.LogError(err, "Failed to load catalog cache", common.Fields{"fallback": "static"})
		}
		return catalog.Static()
	}

	if fetchedAt, err := store.FetchedAt(ctx); err == nil {
		common.LogDebug("Loaded cached catalog", common.Fields{
			"programs":   len(programs),
			"fetched_at": fetchedAt.Format(time.RFC3339),
		})
	}
	return programs
}

// initAdvisor builds the engine over the current catalog.
func initAdvisor(ctx context.Context) (*advisor.Advisor, error) {
	return advisor.New(loadCatalog(ctx))
}
