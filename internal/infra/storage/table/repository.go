package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository репозиторий столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает активные столы активных залов; если roomID задан, только столы этого зала
func (r *Repository) GetActive(ctx context.Context, roomID *int64) ([]domain.Table, error) {
	selectBuilder := psqlbuilder.Select(
		"t.id",
		"t.room_id",
		"t.code",
		"t.seats_min",
		"t.seats_std",
		"t.seats_max",
		"t.join_group",
		"t.is_active",
	).
		From("restaurant_tables t").
		Join("rooms r ON r.id = t.room_id").
		Where(squirrel.Eq{"t.is_active": true, "r.is_active": true})

	if roomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.room_id": *roomID})
	}

	query, args, err := selectBuilder.OrderBy("t.room_id ASC", "t.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]domain.Table, 0)
	for rows.Next() {
		var (
			t         domain.Table
			seatsMin  sql.NullInt64
			seatsStd  sql.NullInt64
			seatsMax  sql.NullInt64
			joinGroup sql.NullString
		)

		err := rows.Scan(
			&t.ID,
			&t.RoomID,
			&t.Code,
			&seatsMin,
			&seatsStd,
			&seatsMax,
			&joinGroup,
			&t.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActive - scan row: %v", ErrScanRow, err)
		}

		t.SeatsMin = int(seatsMin.Int64)
		t.SeatsStd = int(seatsStd.Int64)
		t.SeatsMax = int(seatsMax.Int64)
		t.JoinGroup = joinGroup.String

		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActive - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
