// Package app loads startup data and builds the assistant shared by the
// server and the CLI
package app

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/findosh/finchat/internal/config"
	"github.com/findosh/finchat/internal/services/assistant"
	"github.com/findosh/finchat/internal/services/marketdata"
	"github.com/findosh/finchat/internal/services/suggest"
	"github.com/findosh/finchat/internal/services/transcript"
	"github.com/findosh/finchat/internal/storage"
)

// Data is the read-only state loaded at startup. Prices and Transcripts
// are nil when their sources are not configured or missing.
type Data struct {
	Prices      *marketdata.Snapshot
	Transcripts *transcript.Index
	Catalog     *suggest.Catalog
	DB          *storage.DB
}

// Close releases the database, if one was opened
func (d *Data) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// OpenDB opens and migrates the configured database, or returns nil when
// none is configured
func OpenDB(cfg *config.Config) (*storage.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	db, err := storage.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Load reads the price history, transcript and suggestion catalog
// concurrently. Missing optional files are logged and skipped.
func Load(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Data, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	data := &Data{DB: db}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		prices, err := loadPrices(ctx, cfg, db, logger)
		data.Prices = prices
		return err
	})

	g.Go(func() error {
		if cfg.TranscriptFile == "" {
			return nil
		}
		idx, err := transcript.LoadFile(cfg.TranscriptFile)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("transcript file not found, continuing without it", "path", cfg.TranscriptFile)
			return nil
		}
		if err != nil {
			return err
		}
		logger.Info("loaded transcript", "path", cfg.TranscriptFile, "sections", idx.Len())
		data.Transcripts = idx
		return nil
	})

	g.Go(func() error {
		catalog, err := suggest.Default()
		data.Catalog = catalog
		return err
	})

	if err := g.Wait(); err != nil {
		data.Close()
		return nil, err
	}
	return data, nil
}

func loadPrices(ctx context.Context, cfg *config.Config, db *storage.DB, logger *slog.Logger) (*marketdata.Snapshot, error) {
	if cfg.PriceCSV != "" {
		snap, err := marketdata.LoadFile(cfg.PriceCSV)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("price file not found, continuing without it", "path", cfg.PriceCSV)
		} else if err != nil {
			return nil, err
		} else {
			logger.Info("loaded price history", "path", cfg.PriceCSV, "points", snap.Len())
			return snap, nil
		}
	}

	if db == nil {
		return nil, nil
	}

	points, err := storage.NewPriceRepository(db).List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read stored prices")
	}
	if len(points) == 0 {
		return nil, nil
	}
	logger.Info("loaded price history from database", "points", len(points))
	return marketdata.NewSnapshot(points), nil
}

// NewAssistant builds the assistant from configuration and loaded data
func NewAssistant(cfg *config.Config, data *Data, logger *slog.Logger) (*assistant.Service, error) {
	acfg := assistant.DefaultConfig()
	if cfg.SourceLabel != "" {
		acfg.Source = cfg.SourceLabel
	}
	acfg.FallbackStrategy = cfg.FallbackStrategy
	acfg.FallbackSeed = cfg.FallbackSeed

	opts := []assistant.Option{assistant.WithLogger(logger)}
	if data != nil && data.Prices != nil {
		opts = append(opts, assistant.WithPrices(data.Prices))
	}
	return assistant.NewService(acfg, opts...)
}
