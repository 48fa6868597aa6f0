package business_hours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/psqlbuilder"
)

const tableName = "business_hours"

var columns = []string{
	"id",
	"professional_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с часами работы мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceForProfessional удаляет все часы работы мастера и вставляет переданный список.
// Должен вызываться внутри транзакции (txmanager.Do), иначе читатель может увидеть пустое расписание.
// Пустой список очищает расписание
func (r *Repository) ReplaceForProfessional(ctx context.Context, professionalID int64, hours []*domain.BusinessHours) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForProfessional - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return []*domain.BusinessHours{}, nil
	}

	builder := psqlbuilder.Insert(tableName).
		Columns("professional_id", "day_of_week", "start_time", "end_time", "is_active")

	for _, h := range hours {
		builder = builder.Values(professionalID, h.DayOfWeek, h.StartTime, h.EndTime, h.IsActive)
	}

	query, args, err = builder.
		Suffix("RETURNING id, professional_id, day_of_week, start_time, end_time, is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForProfessional - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForProfessional - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHours(rows, "ReplaceForProfessional")
}

// GetByProfessional получает всё недельное расписание мастера (включая неактивные окна),
// упорядоченное по дню недели и времени начала
func (r *Repository) GetByProfessional(ctx context.Context, professionalID int64) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHours(rows, "GetByProfessional")
}

// GetActiveByDay получает активные окна мастера на день недели (0 = воскресенье)
func (r *Repository) GetActiveByDay(ctx context.Context, professionalID int64, dayOfWeek int) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHours(rows, "GetActiveByDay")
}

// ListProfessionalIDs возвращает мастеров, у которых есть хотя бы одно активное окно
// Используется фоновой догенерацией слотов
func (r *Repository) ListProfessionalIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT professional_id").
		From(tableName).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("professional_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionalIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionalIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListProfessionalIDs - scan row: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProfessionalIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// scanHours сканирует результаты запроса в слайс окон
func scanHours(rows *sql.Rows, op string) ([]*domain.BusinessHours, error) {
	hours := make([]*domain.BusinessHours, 0)

	for rows.Next() {
		var h domain.BusinessHours
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.ProfessionalID,
			&h.DayOfWeek,
			&h.StartTime,
			&h.EndTime,
			&h.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time

		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return hours, nil
}
