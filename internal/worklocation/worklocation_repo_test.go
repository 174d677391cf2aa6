package worklocation_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hr-yayasan/internal/worklocation"

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

// Urutan update geofence berjalan seluruhnya di dalam transaksi: baris
// lokasi dikunci dulu, baru cek rujukan presensi, baru UPDATE. Tanpa itu
// commit service hanya menutup transaksi kosong.
func TestRepoUpdateFlow_RunsInsideTransaction(t *testing.T) {
	tx, mock := beginMockTx(t)
	repo := worklocation.NewRepository(nil).WithTx(tx)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "latitude", "longitude", "radius_meters", "created_at", "updated_at",
	}).AddRow(id.String(), "Kampus Utama", -6.2000, 106.8167, 100.0, now, now)

	mock.ExpectQuery("FOR UPDATE").WithArgs(id.String()).WillReturnRows(rows)

	l, err := repo.FindByID(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "Kampus Utama", l.Name)

	mock.ExpectQuery("SELECT count").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	referenced, err := repo.IsReferencedByAttendance(context.Background(), id.String())
	require.NoError(t, err)
	assert.False(t, referenced)

	l.RadiusMeters = 250
	mock.ExpectExec("UPDATE work_locations SET").
		WithArgs(l.ID, l.Name, l.Latitude, l.Longitude, 250.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), l))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoCreateAndDelete_RunInsideTransaction(t *testing.T) {
	tx, mock := beginMockTx(t)
	repo := worklocation.NewRepository(nil).WithTx(tx)

	l := &worklocation.WorkLocation{
		ID:           uuid.New(),
		Name:         "Kampus B",
		Latitude:     -6.2100,
		Longitude:    106.8200,
		RadiusMeters: 150,
	}

	mock.ExpectExec("INSERT INTO work_locations").
		WithArgs(l.ID, l.Name, l.Latitude, l.Longitude, l.RadiusMeters).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(context.Background(), l))

	mock.ExpectExec("UPDATE work_locations SET deleted_at").
		WithArgs(l.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), l.ID.String()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
