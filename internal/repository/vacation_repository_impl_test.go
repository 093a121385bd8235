package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVacationRepository_ExistsOverlap(t *testing.T) {
	start := time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.November, 6, 0, 0, 0, 0, time.UTC)

	t.Run("scoped to one doctor", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVacationRepository()
		doctorID := 7

		mock.ExpectQuery(`SELECT count\(\*\) FROM "vacations" WHERE .*doctor_id = \$4`).
			WithArgs("CANCELED", "2026-11-06", "2026-11-02", 7).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsOverlap(db, &doctorID, start, end)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clinic wide", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVacationRepository()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "vacations"`).
			WithArgs("CANCELED", "2026-11-06", "2026-11-02").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsOverlap(db, nil, start, end)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVacationRepository_CancelOpenForDoctor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVacationRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "vacations" SET "status"=\$1,"updated_at"=\$2 WHERE doctor_id = \$3 AND status IN \(\$4,\$5\)`).
		WithArgs("CANCELED", sqlmock.AnyArg(), 3, "PLANNED", "IN_PROGRESS").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	affected, err := repo.CancelOpenForDoctor(db, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
