package closure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TableAvailability/pkg/ptr"
)

// Repository репозиторий закрытий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForRange получает активные закрытия, пересекающиеся с [from, to),
// а также все повторяющиеся закрытия (их применимость проверяется по каждому слоту)
func (r *Repository) GetForRange(ctx context.Context, from, to time.Time) ([]domain.Closure, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"scope",
		"room_id",
		"table_id",
		"start_at",
		"end_at",
		"recurrence_json",
		"capacity_override_json",
		"note",
	).
		From("closures").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Lt{"start_at": to},
				squirrel.Gt{"end_at": from},
			},
			squirrel.NotEq{"recurrence_json": nil},
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	closures := make([]domain.Closure, 0)
	for rows.Next() {
		var (
			c              domain.Closure
			scope          string
			roomID         sql.NullInt64
			tableID        sql.NullInt64
			recurrenceJSON sql.NullString
			overrideJSON   sql.NullString
			note           sql.NullString
		)

		err := rows.Scan(
			&c.ID,
			&scope,
			&roomID,
			&tableID,
			&c.Start,
			&c.End,
			&recurrenceJSON,
			&overrideJSON,
			&note,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetForRange - scan row: %v", ErrScanRow, err)
		}

		c.Scope = domain.NormalizeClosureScope(scope)
		if roomID.Valid {
			c.RoomID = ptr.Ptr(roomID.Int64)
		}
		if tableID.Valid {
			c.TableID = ptr.Ptr(tableID.Int64)
		}
		c.Recurrence = ParseRecurrence(recurrenceJSON.String)
		c.CapacityOverride = ParseCapacityOverride(overrideJSON.String)
		c.Note = note.String

		closures = append(closures, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForRange - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}
