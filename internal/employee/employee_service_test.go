package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"hr-yayasan/internal/employee"
	employeeerrors "hr-yayasan/internal/employee/errors"
	"hr-yayasan/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	createFn   func(e *employee.Employee) error
	findByIDFn func(id string) (*employee.Employee, error)
	updateFn   func(e *employee.Employee) error
	deleteFn   func(id string) error
	rows       []employee.Employee
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(e)
	}
	return nil
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.rows, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(e)
	}
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func createReq() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		UserID:         uuid.New().String(),
		EmployeeNumber: "YPI-2026-031",
		FullName:       "Siti Rahmawati",
		Email:          "siti.rahmawati@yayasan.sch.id",
		Jabatan:        "tenaga_pendidik",
		Unit:           "SMP",
	}
}

func TestCreate_PersistsAndWritesOutboxInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeEmployeeRepo{}
	outbox := &fakeOutboxRepo{}
	svc := employee.NewService(db, repo, outbox)

	resp, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	assert.Equal(t, "YPI-2026-031", resp.EmployeeNumber)

	require.Len(t, outbox.events, 1)
	assert.Equal(t, "employee.created", outbox.events[0].EventType)
	assert.Equal(t, resp.ID, outbox.events[0].AggregateID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmployeeNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeEmployeeRepo{
		createFn: func(e *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_number"}
		},
	}
	svc := employee.NewService(db, repo, nil)

	_, err = svc.Create(context.Background(), createReq())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
}

func TestCreate_InvalidJoinedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := employee.NewService(db, &fakeEmployeeRepo{}, nil)
	req := createReq()
	bad := "31-12-2026"
	req.JoinedAt = &bad

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoinedAt)
}

func TestGetByID_NotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := employee.NewService(db, &fakeEmployeeRepo{}, nil)
	_, err = svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := employee.NewService(db, &fakeEmployeeRepo{}, nil)
	_, err = svc.GetByID(context.Background(), "bukan-uuid")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}

func TestUpdate_ClearsWorkLocationWhenOmitted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	locID := uuid.New()
	existing := &employee.Employee{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		EmployeeNumber: "YPI-2026-031",
		FullName:       "Siti Rahmawati",
		Jabatan:        "tenaga_pendidik",
		WorkLocationID: &locID,
	}
	var updated *employee.Employee
	repo := &fakeEmployeeRepo{
		findByIDFn: func(id string) (*employee.Employee, error) { return existing, nil },
		updateFn:   func(e *employee.Employee) error { updated = e; return nil },
	}
	svc := employee.NewService(db, repo, nil)

	resp, err := svc.Update(context.Background(), existing.ID.String(), employee.UpdateEmployeeRequest{
		FullName: "Siti Rahmawati",
		Jabatan:  "staff_hrd",
	})
	require.NoError(t, err)
	assert.Equal(t, "staff_hrd", resp.Jabatan)
	require.NotNil(t, updated)
	assert.Nil(t, updated.WorkLocationID)
}
