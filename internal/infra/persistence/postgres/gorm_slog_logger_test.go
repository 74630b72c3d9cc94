package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "stores"`, 1 }

	tests := []struct {
		name     string
		debug    bool
		begin    time.Time
		err      error
		expected string
	}{
		{name: "failed query", begin: time.Now(), err: errors.New("connection reset"), expected: "Database query failed"},
		{name: "record not found is silent", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "slow query", begin: time.Now().Add(-time.Second), expected: "Slow database query"},
		{name: "fast query hidden outside debug", begin: time.Now()},
		{name: "fast query in debug", debug: true, begin: time.Now(), expected: "Database query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), tt.begin, query, tt.err)

			if tt.expected == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.expected)
			assert.Contains(t, buf.String(), `SELECT * FROM \"stores\"`)
		})
	}
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.LogMode(logger.Info).Info(context.Background(), "shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	assert.Empty(t, buf.String())
}
