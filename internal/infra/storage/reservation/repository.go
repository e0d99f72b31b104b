package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TableAvailability/pkg/ptr"
)

// Repository репозиторий бронирований (только чтение, бронирования создает внешний сервис)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveOnDate получает бронирования на дату со статусами, занимающими места
// Если roomID задан, возвращает бронирования этого зала и бронирования без зала
// (последние занимают общую вместимость и должны учитываться в любом зале)
func (r *Repository) GetActiveOnDate(ctx context.Context, date time.Time, roomID *int64) ([]*domain.Reservation, error) {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"party",
		"table_id",
		"room_id",
		"reservation_date",
		"reservation_time",
		"status",
	).
		From("reservations").
		Where(squirrel.Eq{"reservation_date": date.Format(domain.DateFormat)}).
		Where("status = ANY(?)", pq.Array(statuses))

	if roomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"room_id": *roomID},
			squirrel.Eq{"room_id": nil},
		})
	}

	query, args, err := selectBuilder.OrderBy("reservation_time ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOnDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOnDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var (
			res     domain.Reservation
			tableID sql.NullInt64
			roomID  sql.NullInt64
			status  string
		)

		err := rows.Scan(
			&res.ID,
			&res.Party,
			&tableID,
			&roomID,
			&res.Date,
			&res.Time,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		if tableID.Valid && tableID.Int64 > 0 {
			res.TableID = ptr.Ptr(tableID.Int64)
		}
		if roomID.Valid && roomID.Int64 > 0 {
			res.RoomID = ptr.Ptr(roomID.Int64)
		}
		res.Status = domain.ReservationStatus(status)

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
