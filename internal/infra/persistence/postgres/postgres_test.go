package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	base := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, waited := poolWait(base, base)
		assert.False(t, waited)
		assert.Nil(t, attrs)
	})

	t.Run("short waits stay at debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4}

		level, attrs, waited := poolWait(base, cur)
		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Duration("avgWait", 5*time.Millisecond))
		assert.Contains(t, attrs, slog.Int("inUseConns", 4))
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + dbPoolWarnDurationThreshold}

		level, attrs, waited := poolWait(base, cur)
		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
		assert.Contains(t, attrs, slog.Int64("waits", 1))
	})
}
