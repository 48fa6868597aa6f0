package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func bookingRow(id int64, at time.Time, status domain.BookingStatus) *sqlmock.Rows {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(columns).AddRow(
		id, int64(11), int64(1), int64(2), "Anna", "+10000000000", nil,
		at, string(status), 45.5, "pending", "first visit", now, now,
	)
}

func TestCreate(t *testing.T) {
	repo, _, mock := newRepo(t)
	at := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(ptr.Ptr(int64(11)), int64(1), int64(2), "Anna", "+10000000000", nil, at,
			domain.StatusPending, 45.5, domain.PaymentPending, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), created, created))

	booking, err := repo.Create(context.Background(), &domain.Booking{
		SlotID:         ptr.Ptr(int64(11)),
		ProfessionalID: 1,
		ServiceID:      2,
		CustomerName:   "Anna",
		CustomerPhone:  "+10000000000",
		BookingDate:    at,
		Status:         domain.StatusPending,
		TotalAmount:    45.5,
		PaymentStatus:  domain.PaymentPending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), booking.ID)
	assert.Equal(t, created, booking.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Conflict(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
	}{
		{"unique violation", "23505"},
		{"serialization failure", "40001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepo(t)

			mock.ExpectQuery("INSERT INTO bookings").WillReturnError(&pq.Error{Code: tt.code})

			_, err := repo.Create(context.Background(), &domain.Booking{ProfessionalID: 1, BookingDate: time.Now()})
			assert.ErrorIs(t, err, ErrBookingConflict)
		})
	}
}

func TestGetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	at := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1$").
		WithArgs(int64(5)).
		WillReturnRows(bookingRow(5, at, domain.StatusConfirmed))

	booking, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), booking.ID)
	require.NotNil(t, booking.SlotID)
	assert.Equal(t, int64(11), *booking.SlotID)
	assert.Nil(t, booking.CustomerEmail)
	require.NotNil(t, booking.Notes)
	assert.Equal(t, "first visit", *booking.Notes)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, 45.5, booking.TotalAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_LocksInTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	at := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id = \\$1 FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(bookingRow(5, at, domain.StatusPending))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 5)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExistsActiveAt(t *testing.T) {
	repo, _, mock := newRepo(t)
	at := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT EXISTS \\( SELECT 1 FROM bookings WHERE professional_id = \\$1 AND booking_date = \\$2 AND status <> \\$3 \\)").
		WithArgs(int64(1), at, domain.StatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsActiveAt(context.Background(), 1, at)
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByProfessional(t *testing.T) {
	repo, _, mock := newRepo(t)
	status := domain.StatusConfirmed
	later := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	rows := bookingRow(2, later, status)
	rows.AddRow(int64(1), nil, int64(1), int64(2), "Ivan", "+20000000000", "ivan@example.com",
		earlier, string(status), 45.5, "paid", nil, earlier, earlier)

	mock.ExpectQuery("FROM bookings WHERE professional_id = \\$1 AND status = \\$2 ORDER BY booking_date DESC").
		WithArgs(int64(1), status).
		WillReturnRows(rows)

	bookings, err := repo.GetByProfessional(context.Background(), domain.ProfessionalBookingsFilter{
		ProfessionalID: 1,
		Status:         &status,
	})
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, int64(2), bookings[0].ID)
	assert.Nil(t, bookings[1].SlotID)
	require.NotNil(t, bookings[1].CustomerEmail)
	assert.Equal(t, "ivan@example.com", *bookings[1].CustomerEmail)
	assert.Equal(t, domain.PaymentPaid, bookings[1].PaymentStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec("UPDATE bookings SET status = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2").
		WithArgs(domain.StatusConfirmed, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), 5, domain.StatusConfirmed))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 6, domain.StatusConfirmed), ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
