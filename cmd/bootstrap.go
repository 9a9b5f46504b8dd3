package cmd

import (
	"context"
	"fmt"

	"teapot-fortune/core/config"
	"teapot-fortune/core/database"
	"teapot-fortune/core/logger"
	"teapot-fortune/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadConfig resolves configuration and builds the logger, then reports every
// configuration fallback through it.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	for _, n := range cfg.Notices {
		fields := []zap.Field{zap.String("kind", string(n.Kind))}
		if n.Env != "" {
			fields = append(fields, zap.String("env", n.Env), zap.String("default", n.Default))
		}
		if n.IsWarning() {
			logg.Warn(n.Message(), append(fields, zap.String("raw", n.Raw))...)
		} else {
			logg.Info(n.Message(), fields...)
		}
	}

	return cfg, logg, nil
}

// resolveDatabase returns the database settings to open, fetching an s3:// snapshot
// into the local cache first when needed.
func resolveDatabase(ctx context.Context, cfg *config.Config, logg *zap.Logger) (database.Config, error) {
	dbCfg := cfg.Database
	if !dbCfg.IsRemote() {
		return dbCfg, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return dbCfg, fmt.Errorf("failed to create storage client: %w", err)
	}

	logg.Info("Fetching database snapshot", zap.String("uri", dbCfg.URL), zap.String("cache_dir", cfg.Storage.CacheDir))
	local, err := storage.FetchSnapshot(ctx, client, dbCfg.URL, cfg.Storage.CacheDir)
	if err != nil {
		return dbCfg, fmt.Errorf("failed to fetch database snapshot: %w", err)
	}

	dbCfg.URL = local
	dbCfg.Driver = database.DriverSQLite
	return dbCfg, nil
}

// openDatabase verifies the database exists and opens it read-only.
// A missing sqlite file terminates the process with exit code 1.
func openDatabase(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*gorm.DB, error) {
	dbCfg, err := resolveDatabase(ctx, cfg, logg)
	if err != nil {
		return nil, err
	}

	if err := dbCfg.Verify(); err != nil {
		logg.Fatal(fmt.Sprintf("Database file %q does not exist. Please create it and try again.", dbCfg.URL), zap.Error(err))
	}

	db, err := database.Connect(dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logg.Info("Connected to fortune database", zap.String("driver", dbCfg.Driver), zap.String("table", dbCfg.Table))
	return db, nil
}
