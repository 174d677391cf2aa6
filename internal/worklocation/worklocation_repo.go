package worklocation

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=worklocation_repo.go -destination=mock/worklocation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *WorkLocation) error
	FindByID(ctx context.Context, id string) (*WorkLocation, error)
	FindAll(ctx context.Context) ([]WorkLocation, error)
	Update(ctx context.Context, l *WorkLocation) error
	Delete(ctx context.Context, id string) error
	IsReferencedByAttendance(ctx context.Context, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *WorkLocation) error {
	if r.tx != nil {
		query := `
        INSERT INTO work_locations (id, name, latitude, longitude, radius_meters)
        VALUES ($1, $2, $3, $4, $5)
    `
		_, err := r.tx.ExecContext(ctx, query,
			l.ID, l.Name, l.Latitude, l.Longitude, l.RadiusMeters,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*WorkLocation, error) {
	// Dalam transaksi baris dikunci supaya cek geofence-sedang-dirujuk dan
	// update-nya tidak disela pengubah lain.
	if r.tx != nil {
		query := `
        SELECT id, name, latitude, longitude, radius_meters, created_at, updated_at
        FROM work_locations
        WHERE id = $1 AND deleted_at IS NULL
        FOR UPDATE
    `
		var l WorkLocation
		err := r.tx.QueryRowContext(ctx, query, id).Scan(
			&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.RadiusMeters,
			&l.CreatedAt, &l.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gorm.ErrRecordNotFound
		}
		if err != nil {
			return nil, err
		}
		return &l, nil
	}

	var l WorkLocation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context) ([]WorkLocation, error) {
	var rows []WorkLocation
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, l *WorkLocation) error {
	if r.tx != nil {
		query := `
        UPDATE work_locations SET
            name = $2, latitude = $3, longitude = $4, radius_meters = $5,
            updated_at = now()
        WHERE id = $1 AND deleted_at IS NULL
    `
		_, err := r.tx.ExecContext(ctx, query,
			l.ID, l.Name, l.Latitude, l.Longitude, l.RadiusMeters,
		)
		return err
	}
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE work_locations SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`,
			id,
		)
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&WorkLocation{}).Error
}

// IsReferencedByAttendance mengecek apakah ada baris presensi yang tercatat
// terhadap lokasi ini (lewat penugasan pegawai).
func (r *repository) IsReferencedByAttendance(ctx context.Context, id string) (bool, error) {
	if r.tx != nil {
		query := `
        SELECT count(*)
        FROM attendances
        JOIN employees ON employees.id = attendances.employee_id
        WHERE employees.work_location_id = $1
    `
		var count int64
		if err := r.tx.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
			return false, err
		}
		return count > 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Table("attendances").
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("employees.work_location_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
