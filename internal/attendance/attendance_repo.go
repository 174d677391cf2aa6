package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	// Dalam transaksi, insert lewat *sql.Tx supaya atomic dengan activity
	// log dan outbox; unique index uq_attendance_employee_date tetap
	// memutus balapan check-in ganda.
	if r.tx != nil {
		query := `
        INSERT INTO attendances (
            id, employee_id, attendance_date, clock_in, clock_in_lat, clock_in_lon,
            clock_out, clock_out_lat, clock_out_lon, status, note, file_ref
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
		_, err := r.tx.ExecContext(ctx, query,
			a.ID, a.EmployeeID, a.AttendanceDate.Format("2006-01-02"),
			a.ClockIn, a.ClockInLat, a.ClockInLon,
			a.ClockOut, a.ClockOutLat, a.ClockOutLon,
			a.Status, a.Note, a.FileRef,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	// Dalam transaksi baris dikunci; check-out yang balapan antre di sini,
	// bukan sama-sama lolos guard lalu saling menimpa.
	if r.tx != nil {
		query := `
        SELECT id, employee_id, attendance_date, clock_in, clock_in_lat, clock_in_lon,
               clock_out, clock_out_lat, clock_out_lon, status, note, file_ref,
               created_at, updated_at
        FROM attendances
        WHERE employee_id = $1 AND attendance_date = $2 AND deleted_at IS NULL
        FOR UPDATE
    `
		var a Attendance
		err := r.tx.QueryRowContext(ctx, query, employeeID, date.Format("2006-01-02")).Scan(
			&a.ID, &a.EmployeeID, &a.AttendanceDate, &a.ClockIn, &a.ClockInLat, &a.ClockInLon,
			&a.ClockOut, &a.ClockOutLat, &a.ClockOutLon, &a.Status, &a.Note, &a.FileRef,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gorm.ErrRecordNotFound
		}
		if err != nil {
			return nil, err
		}
		return &a, nil
	}

	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Order("attendance_date DESC, clock_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	if r.tx != nil {
		query := `
        UPDATE attendances SET
            clock_in = $2, clock_in_lat = $3, clock_in_lon = $4,
            clock_out = $5, clock_out_lat = $6, clock_out_lon = $7,
            status = $8, note = $9, file_ref = $10, updated_at = now()
        WHERE id = $1
    `
		_, err := r.tx.ExecContext(ctx, query,
			a.ID,
			a.ClockIn, a.ClockInLat, a.ClockInLon,
			a.ClockOut, a.ClockOutLat, a.ClockOutLon,
			a.Status, a.Note, a.FileRef,
		)
		return err
	}
	return r.db.WithContext(ctx).Save(a).Error
}
