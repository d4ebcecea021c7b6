//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"rental-backoffice/cmd/bootstrap"
	"rental-backoffice/cmd/bootstrap/components"
	"rental-backoffice/internal/infra/db"
	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "rental"
	pgPassword = "rental"
)

// One Postgres and one Redis per test binary. Each suite gets its own
// database inside the shared Postgres.
var (
	containersOnce sync.Once
	containersErr  error
	pgContainer    testcontainers.Container
	redisContainer testcontainers.Container
)

type endpoint struct {
	host string
	port nat.Port
}

func (e endpoint) addr() string { return e.host + ":" + e.port.Port() }

// SharedSuite boots the full HTTP stack against real containers. Suites embed
// it and get a clean database before every subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg, rd := startContainers(t)
	dbCfg := createSuiteDatabase(t, pg)

	pool, err := db.Connect(dbCfg)
	require.NoError(t, err, "connect suite database")
	t.Cleanup(pool.Close)
	require.NoError(t, applySchema(t.Context(), pool), "apply schema")

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis.URL = "redis://" + rd.addr() + "/0"

	s.DB = pool
	s.Config = cfg
	s.Router, s.Redis = startApp(t, pool, cfg)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
	if s.Redis != nil {
		require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "flush redis")
	}
}

func startContainers(t *testing.T) (endpoint, endpoint) {
	t.Helper()
	containersOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, containersErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
		if containersErr != nil {
			return
		}
		redisContainer, containersErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
				Labels:       map[string]string{"purpose": "rental-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, containersErr, "start test containers")

	pg, err := mappedEndpoint(pgContainer, "5432/tcp")
	require.NoError(t, err)
	rd, err := mappedEndpoint(redisContainer, "6379/tcp")
	require.NoError(t, err)
	return pg, rd
}

// postgresRequest trades durability for speed; the data lives in tmpfs.
func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return adminDSN(endpoint{host: host, port: port})
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "rental-e2e"},
	}
}

func mappedEndpoint(c testcontainers.Container, port nat.Port) (endpoint, error) {
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{host: host, port: mapped}, nil
}

func adminDSN(pg endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.addr())
}

// createSuiteDatabase creates a throwaway database and drops it when the
// suite finishes. CREATE DATABASE can race with template locks when several
// packages start at once, hence the retry.
func createSuiteDatabase(t *testing.T, pg endpoint) config.DBConfig {
	t.Helper()
	name := "rental_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "connect admin database")
	defer admin.Close()

	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "database", name, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create suite database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop suite database", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     pg.host,
		Port:     pg.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// applySchema runs every migrations/*.sql file in name order.
func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, file, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(file), "..", "..", "migrations")
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found in %s", dir)
	}
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// startApp wires the same fx modules as cmd/main with the pool and config
// swapped for the test ones.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, *redis.Client) {
	t.Helper()
	var (
		router *gin.Engine
		rdb    *redis.Client
	)
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		bootstrap.NotificationModule,
		components.IntegrationModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &rdb),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err)
		}
	})
	return router, rdb
}
