package workers

import (
	"testing"
	"time"

	"findly-api/config"
	"findly-api/database"
	"findly-api/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPoolMonitorLogsStats(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	t.Cleanup(logger.Replace(zap.New(core)))

	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:", MaxOpenConns: 3})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	m, err := StartPoolMonitor(db, 20*time.Millisecond)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return logs.FilterMessage("[workers] db pool").Len() >= 2
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, m.Stop())

	entry := logs.FilterMessage("[workers] db pool").All()[0]
	assert.Equal(t, int64(3), entry.ContextMap()["max_open"])
}
