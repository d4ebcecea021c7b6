package db

import (
	"context"
	"log/slog"
	"time"

	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

// Connect opens the pool and pings it once so a bad DSN fails at startup
// instead of on the first request.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 15 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(err, "open database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrapf(err, "ping database %s@%s:%s", cfg.DBName, cfg.Host, cfg.Port)
	}

	slog.Info("database connected", "host", cfg.Host, "database", cfg.DBName, "max_conns", poolCfg.MaxConns)
	return pool, nil
}
