package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dbsmedya/tablediff/internal/config"
	"github.com/dbsmedya/tablediff/internal/loader"
	"github.com/dbsmedya/tablediff/internal/logger"
	"github.com/dbsmedya/tablediff/internal/table"
)

// loadConfig reads the config file and applies CLI flag overrides. A missing
// file at the default path is not an error, so "tablediff compare --left
// a.csv --right b.csv" works without a config file; an explicitly passed
// --config must exist.
func loadConfig() (*config.Config, error) {
	path := GetConfigFile()
	cfg := config.DefaultConfig()
	if _, statErr := os.Stat(path); statErr == nil || path != defaultConfigFile {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Limit, overrides.Filter, overrides.Mode)
	if overrides.LeftPath != "" {
		cfg.Left = config.SourceConfig{Name: cfg.Left.Name, Path: overrides.LeftPath, Delimiter: cfg.Left.Delimiter}
	}
	if overrides.RightPath != "" {
		cfg.Right = config.SourceConfig{Name: cfg.Right.Name, Path: overrides.RightPath, Delimiter: cfg.Right.Delimiter}
	}
	if overrides.Delimiter != "" {
		cfg.Left.Delimiter = overrides.Delimiter
		cfg.Right.Delimiter = overrides.Delimiter
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSource builds one side's dataset from its configured source.
func loadSource(ctx context.Context, src *config.SourceConfig, log *logger.Logger) (*table.Dataset, error) {
	if src.IsSQL() {
		db, err := loader.OpenMySQL(ctx, src.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s source: %w", src.Name, err)
		}
		defer db.Close()

		ds, err := loader.QuerySQL(ctx, db, src.Query)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s source: %w", src.Name, err)
		}
		log.WithDataset(src.Name).Infow("Loaded dataset from query",
			"rows", ds.RowCount(), "columns", len(ds.Columns()))
		return ds, nil
	}

	ds, err := loader.ReadCSVFile(src.Path, src.DelimiterRune())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s source: %w", src.Name, err)
	}
	log.WithDataset(src.Name).Infow("Loaded dataset from file",
		"path", src.Path, "rows", ds.RowCount(), "columns", len(ds.Columns()))
	return ds, nil
}
