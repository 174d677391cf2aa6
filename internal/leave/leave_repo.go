package leave

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lr *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	// FindByIDForUpdate mengunci baris selama transaksi; transisi status
	// yang balapan akan antre, bukan saling menimpa.
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error)
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindAllForReviewer(ctx context.Context, employeeID, pendingStatus string) ([]LeaveRequest, error)
	FindAllByRequester(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	if r.tx != nil {
		query := `
        INSERT INTO leave_requests (
            id, employee_id, start_date, end_date, leave_type, status, reason, file_ref
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
		_, err := r.tx.ExecContext(ctx, query,
			lr.ID, lr.EmployeeID,
			lr.StartDate.Format("2006-01-02"), lr.EndDate.Format("2006-01-02"),
			lr.LeaveType, lr.Status, lr.Reason, lr.FileRef,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lr).Error
	return &lr, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error) {
	if r.tx == nil {
		return nil, errors.New("FindByIDForUpdate requires a transaction")
	}
	query := `
        SELECT id, employee_id, start_date, end_date, leave_type, status,
               reason, file_ref, created_at, updated_at
        FROM leave_requests
        WHERE id = $1
        FOR UPDATE
    `
	var lr LeaveRequest
	err := r.tx.QueryRowContext(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.LeaveType,
		&lr.Status, &lr.Reason, &lr.FileRef, &lr.CreatedAt, &lr.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// FindAllForReviewer: pengajuan milik reviewer sendiri plus semua yang
// sedang menunggu di mejanya.
func (r *repository) FindAllForReviewer(ctx context.Context, employeeID, pendingStatus string) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ? OR status = ?", employeeID, pendingStatus).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByRequester(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE leave_requests SET status = $2, updated_at = now() WHERE id = $1`,
			id, status,
		)
		return err
	}
	return r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
