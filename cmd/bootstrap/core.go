package bootstrap

import (
	"context"
	"log/slog"

	"rental-backoffice/internal/infra/db"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/errs"
	"rental-backoffice/internal/pkg/jwt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(LoadConfig),
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

// LoadConfig rejects settings that would only fail later at request time.
func LoadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if cfg.JWT.AccessTokenDuration <= 0 || cfg.JWT.RefreshTokenDuration <= cfg.JWT.AccessTokenDuration {
		return config.Config{}, errs.Newf("refresh token lifetime %s must exceed access token lifetime %s",
			cfg.JWT.RefreshTokenDuration, cfg.JWT.AccessTokenDuration)
	}
	return cfg, nil
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func(context.Context) {
		pool.Close()
		slog.Info("database pool closed")
	}))
	return pool, nil
}

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
}
