package business_hours

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
	"github.com/m04kA/SMC-SalonAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAvailability/pkg/txmanager"
)

var createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func TestReplaceForProfessional(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM business_hours WHERE professional_id = \\$1").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery("INSERT INTO business_hours .+ VALUES \\(\\$1,\\$2,\\$3,\\$4,\\$5\\),\\(\\$6,\\$7,\\$8,\\$9,\\$10\\) RETURNING").
		WithArgs(int64(1), 1, "09:00", "12:00", true, int64(1), 1, "13:00", "18:00", true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(10), int64(1), 1, "09:00", "12:00", true, createdAt, createdAt).
			AddRow(int64(11), int64(1), 1, "13:00", "18:00", true, createdAt, createdAt))
	mock.ExpectCommit()

	var saved []*domain.BusinessHours
	err := txmanager.New(db).Do(context.Background(), func(ctx context.Context) error {
		var err error
		saved, err = repo.ReplaceForProfessional(ctx, 1, []*domain.BusinessHours{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsActive: true},
			{DayOfWeek: 1, StartTime: "13:00", EndTime: "18:00", IsActive: true},
		})
		return err
	})

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, int64(10), saved[0].ID)
	assert.Equal(t, "13:00", saved[1].StartTime.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceForProfessional_EmptyClears(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM business_hours WHERE professional_id = \\$1").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	saved, err := repo.ReplaceForProfessional(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByProfessional(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("FROM business_hours WHERE professional_id = \\$1 ORDER BY day_of_week ASC, start_time ASC").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(10), int64(1), 0, "10:00", "14:00", false, createdAt, createdAt).
			AddRow(int64(11), int64(1), 1, "09:00", "18:00", true, createdAt, createdAt))

	hours, err := repo.GetByProfessional(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, 0, hours[0].DayOfWeek)
	assert.False(t, hours[0].IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByDay(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("FROM business_hours WHERE professional_id = \\$1 AND day_of_week = \\$2 AND is_active = \\$3 ORDER BY start_time ASC").
		WithArgs(int64(1), 1, true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(11), int64(1), 1, "09:00", "18:00", true, createdAt, createdAt))

	hours, err := repo.GetActiveByDay(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, "18:00", hours[0].EndTime.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListProfessionalIDs(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT DISTINCT professional_id FROM business_hours WHERE is_active = \\$1 ORDER BY professional_id ASC").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"professional_id"}).AddRow(int64(1)).AddRow(int64(4)))

	ids, err := repo.ListProfessionalIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}
