// Package migrations схема БД, встроенная в бинарник, и применение ее по порядку
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

// ErrApply возвращается при ошибке применения миграции
var ErrApply = errors.New("migrations: failed to apply")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// List имена файлов миграций в порядке применения
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Up применяет еще не примененные миграции, возвращает число примененных
func Up(ctx context.Context, db dbmetrics.DBExecutor, log Logger) (int, error) {
	names, err := List()
	if err != nil {
		return 0, fmt.Errorf("%w: Up - list files: %v", ErrApply, err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`); err != nil {
		return 0, fmt.Errorf("%w: Up - create schema_migrations: %v", ErrApply, err)
	}

	applied := 0
	for _, name := range names {
		var exists bool
		err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("%w: Up - check %s: %v", ErrApply, name, err)
		}
		if exists {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("%w: Up - read %s: %v", ErrApply, name, err)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("%w: Up - apply %s: %v", ErrApply, name, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			return applied, fmt.Errorf("%w: Up - record %s: %v", ErrApply, name, err)
		}

		if log != nil {
			log.Info("Migrations: applied %s", name)
		}
		applied++
	}

	return applied, nil
}
