// Package migrations embeds the versioned SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"storefront/internal/errors"

	"github.com/pressly/goose/v3"
)

// TableName is the goose bookkeeping table.
const TableName = "schema_migrations"

const dir = "sql"

//go:embed sql/*.sql
var FS embed.FS

// Command is a goose operation supported by Run.
type Command string

const (
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandStatus  Command = "status"
	CommandVersion Command = "version"
)

// Run applies the given goose command against db using the embedded SQL files.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger, command Command) error {
	if err := configure(logger); err != nil {
		return err
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, dir)
	case CommandDown:
		err = goose.DownContext(ctx, db, dir)
	case CommandStatus:
		err = goose.StatusContext(ctx, db, dir)
	case CommandVersion:
		err = goose.VersionContext(ctx, db, dir)
	default:
		return errors.Errorf("unknown migration command %q", command)
	}

	if err != nil {
		return errors.Wrapf(err, "migration %s failed", command)
	}

	return nil
}

// Collect lists the embedded migrations in version order.
func Collect() (goose.Migrations, error) {
	goose.SetBaseFS(FS)

	return goose.CollectMigrations(dir, 0, goose.MaxVersion)
}

func configure(logger *slog.Logger) error {
	goose.SetBaseFS(FS)
	goose.SetTableName(TableName)
	if logger != nil {
		goose.SetLogger(&slogGooseLogger{logger: logger})
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	return nil
}

// slogGooseLogger forwards goose output to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
