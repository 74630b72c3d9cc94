// Package testdb opens throwaway SQLite databases carrying the storefront
// schema, so repository and use case tests run without a PostgreSQL server.
package testdb

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestTimeout bounds individual database calls made from tests.
const TestTimeout = 5 * time.Second

// New returns a GORM handle on a fresh database file under t.TempDir().
// The handle is configured like the production one: translated errors and
// no implicit per-statement transaction.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)",
		filepath.Join(t.TempDir(), "storefront.db"), TestTimeout.Milliseconds())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Discard,
		TranslateError:                           true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "failed to open sqlite database")

	require.NoError(t, db.AutoMigrate(model.All()...), "failed to migrate sqlite schema")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
