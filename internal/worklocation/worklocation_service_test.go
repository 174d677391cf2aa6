package worklocation_test

import (
	"context"
	"database/sql"
	"testing"

	"hr-yayasan/internal/worklocation"
	worklocationerrors "hr-yayasan/internal/worklocation/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeWorkLocationRepo struct {
	createFn     func(l *worklocation.WorkLocation) error
	findByIDFn   func(id string) (*worklocation.WorkLocation, error)
	updateFn     func(l *worklocation.WorkLocation) error
	deleteFn     func(id string) error
	isReferenced bool
}

func (f *fakeWorkLocationRepo) WithTx(tx *sql.Tx) worklocation.Repository { return f }

func (f *fakeWorkLocationRepo) Create(ctx context.Context, l *worklocation.WorkLocation) error {
	if f.createFn != nil {
		return f.createFn(l)
	}
	return nil
}

func (f *fakeWorkLocationRepo) FindByID(ctx context.Context, id string) (*worklocation.WorkLocation, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkLocationRepo) FindAll(ctx context.Context) ([]worklocation.WorkLocation, error) {
	return nil, nil
}

func (f *fakeWorkLocationRepo) Update(ctx context.Context, l *worklocation.WorkLocation) error {
	if f.updateFn != nil {
		return f.updateFn(l)
	}
	return nil
}

func (f *fakeWorkLocationRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}

func (f *fakeWorkLocationRepo) IsReferencedByAttendance(ctx context.Context, id string) (bool, error) {
	return f.isReferenced, nil
}

func kampusUtama() *worklocation.WorkLocation {
	return &worklocation.WorkLocation{
		ID:           uuid.New(),
		Name:         "Kampus Utama",
		Latitude:     -6.2000,
		Longitude:    106.8167,
		RadiusMeters: 100,
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeWorkLocationRepo{
		createFn: func(l *worklocation.WorkLocation) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_work_location_name"}
		},
	}
	svc := worklocation.NewService(db, repo)

	_, err = svc.Create(context.Background(), worklocation.CreateWorkLocationRequest{
		Name:         "Kampus Utama",
		Latitude:     -6.2000,
		Longitude:    106.8167,
		RadiusMeters: 100,
	})
	assert.ErrorIs(t, err, worklocationerrors.ErrWorkLocationNameTaken)
}

func TestUpdate_GeofenceChangeRejectedWhileReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	existing := kampusUtama()
	repo := &fakeWorkLocationRepo{
		findByIDFn:   func(id string) (*worklocation.WorkLocation, error) { return existing, nil },
		isReferenced: true,
	}
	svc := worklocation.NewService(db, repo)

	_, err = svc.Update(context.Background(), existing.ID.String(), worklocation.UpdateWorkLocationRequest{
		Name:         "Kampus Utama",
		Latitude:     existing.Latitude,
		Longitude:    existing.Longitude,
		RadiusMeters: 250, // radius membesar = geofence berubah
	})
	assert.ErrorIs(t, err, worklocationerrors.ErrWorkLocationInUse)
}

func TestUpdate_RenameAllowedWhileReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	existing := kampusUtama()
	repo := &fakeWorkLocationRepo{
		findByIDFn:   func(id string) (*worklocation.WorkLocation, error) { return existing, nil },
		isReferenced: true,
	}
	svc := worklocation.NewService(db, repo)

	resp, err := svc.Update(context.Background(), existing.ID.String(), worklocation.UpdateWorkLocationRequest{
		Name:         "Kampus Utama Lt. 2",
		Latitude:     existing.Latitude,
		Longitude:    existing.Longitude,
		RadiusMeters: existing.RadiusMeters,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kampus Utama Lt. 2", resp.Name)
}

func TestDelete_RejectedWhileReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := worklocation.NewService(db, &fakeWorkLocationRepo{isReferenced: true})
	err = svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, worklocationerrors.ErrWorkLocationInUse)
}

func TestGetByID_InvalidID(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := worklocation.NewService(db, &fakeWorkLocationRepo{})
	_, err = svc.GetByID(context.Background(), "kampus")
	assert.ErrorIs(t, err, worklocationerrors.ErrInvalidWorkLocationID)
}
