package workschedule_test

import (
	"context"
	"database/sql"
	"testing"

	"hr-yayasan/internal/workschedule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beginMockTx(t *testing.T) (*sql.Tx, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)
	return tx, mock
}

func TestRepoUpsert_RunsInsideTransaction(t *testing.T) {
	tx, mock := beginMockTx(t)
	repo := workschedule.NewRepository(nil).WithTx(tx)

	ws := &workschedule.WorkSchedule{
		ID:        uuid.New(),
		Jabatan:   "tenaga_pendidik",
		Weekday:   1,
		JamMasuk:  "07:30",
		JamPulang: "16:00",
	}

	mock.ExpectExec("ON CONFLICT").
		WithArgs(ws.ID, ws.Jabatan, ws.Weekday, ws.JamMasuk, ws.JamPulang, ws.IsDayOff).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), ws))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoDelete_RunsInsideTransaction(t *testing.T) {
	tx, mock := beginMockTx(t)
	repo := workschedule.NewRepository(nil).WithTx(tx)

	id := uuid.New().String()
	mock.ExpectExec("UPDATE work_schedules SET deleted_at").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
