package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/pgerr"
	"github.com/m04kA/SMC-SalonAvailability/pkg/psqlbuilder"
)

const tableName = "available_slots"

var columns = []string{
	"id",
	"professional_id",
	"service_id",
	"slot_date",
	"is_booked",
	"created_at",
}

const returningColumns = "RETURNING id, professional_id, service_id, slot_date, is_booked, created_at"

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет слоты одним запросом.
// Слоты, уже существующие с той же тройкой (мастер, услуга, время), пропускаются (ON CONFLICT DO NOTHING).
// Возвращает только действительно созданные слоты
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.AvailableSlot) ([]*domain.AvailableSlot, error) {
	if len(slots) == 0 {
		return []*domain.AvailableSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(tableName).
		Columns("professional_id", "service_id", "slot_date", "is_booked")

	for _, s := range slots {
		builder = builder.Values(s.ProfessionalID, s.ServiceID, s.SlotDate, s.IsBooked)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (professional_id, service_id, slot_date) DO NOTHING " + returningColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows, "CreateBatch")
}

// Create вставляет один слот. Дубликат возвращается как ErrSlotAlreadyExists
func (r *Repository) Create(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("professional_id", "service_id", "slot_date", "is_booked").
		Values(slot.ProfessionalID, slot.ServiceID, slot.SlotDate, slot.IsBooked).
		Suffix(returningColumns).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if pgerr.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Create - professional %d, service %d at %s", ErrSlotAlreadyExists,
			slot.ProfessionalID, slot.ServiceID, slot.SlotDate.Format(time.RFC3339))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailableSlot, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByKey получает слот по тройке (мастер, услуга, время)
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByKey(ctx context.Context, key domain.SlotKey) (*domain.AvailableSlot, error) {
	return r.getOne(ctx, "GetByKey", squirrel.Eq{
		"professional_id": key.ProfessionalID,
		"service_id":      key.ServiceID,
		"slot_date":       key.SlotDate,
	})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	// Блокировку строки в SERIALIZABLE транзакции отклоняет конкурентная бронь
	if pgerr.IsSerializationFailure(err) {
		return nil, fmt.Errorf("%w: %s - lock slot: %v", ErrSlotAlreadyBooked, op, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, op, err)
	}

	return slot, nil
}

// GetSlotDates возвращает моменты всех слотов пары (мастер, услуга) в интервале [from, to],
// независимо от того, забронированы они или нет
func (r *Repository) GetSlotDates(ctx context.Context, professionalID, serviceID int64, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_date").
		From(tableName).
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: GetSlotDates - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// ListAvailable получает свободные (is_booked = false) слоты по фильтру, по возрастанию времени
func (r *Repository) ListAvailable(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"professional_id": filter.ProfessionalID}).
		Where(squirrel.Eq{"service_id": filter.ServiceID}).
		Where(squirrel.Eq{"is_booked": false})

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"slot_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"slot_date": *filter.To})
	}

	query, args, err := builder.OrderBy("slot_date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows, "ListAvailable")
}

// MarkBooked переводит слот в состояние "забронирован".
// Обновление выполняется только для свободного слота, иначе ErrSlotAlreadyBooked
func (r *Repository) MarkBooked(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("is_booked", true).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_booked": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: MarkBooked - slot %d: %v", ErrSlotAlreadyBooked, id, err)
	}
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotAlreadyBooked
	}

	return nil
}

// Delete удаляет слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.AvailableSlot, error) {
	var (
		slot      domain.AvailableSlot
		createdAt sql.NullTime
	)

	err := row.Scan(
		&slot.ID,
		&slot.ProfessionalID,
		&slot.ServiceID,
		&slot.SlotDate,
		&slot.IsBooked,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows, op string) ([]*domain.AvailableSlot, error) {
	slots := make([]*domain.AvailableSlot, 0)

	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return slots, nil
}
