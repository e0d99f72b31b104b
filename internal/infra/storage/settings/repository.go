package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository репозиторий настроек ресторана (таблица ключ/значение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все пары ключ/значение
func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	query, args, err := psqlbuilder.Select("key", "value").
		From("restaurant_settings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return values, nil
}

// Get получает настройки ресторана с подставленными значениями по умолчанию
func (r *Repository) Get(ctx context.Context) (domain.Settings, error) {
	values, err := r.GetAll(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	return domain.SettingsFromMap(values), nil
}
