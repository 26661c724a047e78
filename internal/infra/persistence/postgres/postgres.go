package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"profilesync/config"
	"profilesync/internal/domain/lifecycle"
	"profilesync/internal/errors"
	"profilesync/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database behind the postgres storage backend. kv_entries is
// migrated on start.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration must be provided for the postgres storage backend")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Every statement is a single-row upsert, read or delete.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, sqlDB.Stats)
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := db.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate kv_entries")
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

const (
	poolMonitorInterval  = 5 * time.Second
	poolWaitWarnDuration = 50 * time.Millisecond
)

// poolMonitor reports connection pool contention between two samples.
type poolMonitor struct {
	logger   *slog.Logger
	stats    func() sql.DBStats
	interval time.Duration
	prev     sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, stats func() sql.DBStats) *poolMonitor {
	return &poolMonitor{logger: logger, stats: stats, interval: poolMonitorInterval}
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.prev = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

// sample logs when callers waited for a connection since the last sample;
// long waits are warnings.
func (m *poolMonitor) sample(ctx context.Context) {
	cur := m.stats()
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnDuration {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
