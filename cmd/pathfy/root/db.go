package root

import (
	"context"
	"database/sql"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/analysis"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/engine"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/storage"
)

func (a *app) openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(a.cfg.DB.Path)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug("database opened", "path", path)
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func (a *app) evaluator() engine.Evaluator {
	return engine.Evaluator{UnitAware: a.cfg.Evaluator.UnitAware}
}

func (a *app) openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}

	opts := []engine.Option{
		engine.WithEvaluator(a.evaluator()),
		engine.WithLogger(a.log),
	}
	if a.cfg.Analysis.Enabled() {
		client, err := analysis.NewClient(analysis.Config{
			Endpoint:  a.cfg.Analysis.Endpoint,
			APIKey:    a.cfg.Analysis.APIKey,
			Model:     a.cfg.Analysis.Model,
			Timeout:   a.cfg.Analysis.Timeout,
			CacheSize: a.cfg.Analysis.CacheSize,
		}, analysis.WithLogger(a.log))
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		opts = append(opts, engine.WithAnalyzer(client))
	}
	return engine.NewService(db, opts...), cleanup, nil
}
