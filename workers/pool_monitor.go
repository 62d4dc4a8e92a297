// Package workers runs background jobs next to the HTTP server.
package workers

import (
	"database/sql"
	"fmt"
	"time"

	"findly-api/logger"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PoolMonitor periodically logs connection pool statistics. It only reads.
type PoolMonitor struct {
	sched gocron.Scheduler
	pool  *sql.DB
}

func StartPoolMonitor(db *gorm.DB, interval time.Duration) (*PoolMonitor, error) {
	pool, err := db.DB()
	if err != nil {
		return nil, err
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	m := &PoolMonitor{sched: sched, pool: pool}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(m.report),
		gocron.WithName("pool-stats"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("schedule pool stats: %w", err)
	}

	sched.Start()
	logger.L().Info("[workers] pool monitor started", zap.Duration("interval", interval))
	return m, nil
}

func (m *PoolMonitor) report() {
	st := m.pool.Stats()
	logger.L().Info("[workers] db pool",
		zap.Int("open", st.OpenConnections),
		zap.Int("in_use", st.InUse),
		zap.Int("idle", st.Idle),
		zap.Int("max_open", st.MaxOpenConnections),
		zap.Int64("wait_count", st.WaitCount),
		zap.Duration("wait_duration", st.WaitDuration),
	)
}

// Stop waits for a running report to finish.
func (m *PoolMonitor) Stop() error {
	return m.sched.Shutdown()
}
