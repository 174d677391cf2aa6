package workschedule

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=workschedule_repo.go -destination=mock/workschedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, ws *WorkSchedule) error
	FindByJabatanAndWeekday(ctx context.Context, jabatan string, weekday int) (*WorkSchedule, error)
	FindByJabatan(ctx context.Context, jabatan string) ([]WorkSchedule, error)
	FindAll(ctx context.Context) ([]WorkSchedule, error)
	Delete(ctx context.Context, id string) error
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

// Upsert menimpa jadwal (jabatan, weekday) yang sudah ada; constraint unik
// yang memutuskan insert atau update.
func (r *repository) Upsert(ctx context.Context, ws *WorkSchedule) error {
	if r.tx != nil {
		query := `
        INSERT INTO work_schedules (id, jabatan, weekday, jam_masuk, jam_pulang, is_day_off)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (jabatan, weekday) DO UPDATE SET
            jam_masuk = EXCLUDED.jam_masuk,
            jam_pulang = EXCLUDED.jam_pulang,
            is_day_off = EXCLUDED.is_day_off,
            updated_at = now()
    `
		_, err := r.tx.ExecContext(ctx, query,
			ws.ID, ws.Jabatan, ws.Weekday, ws.JamMasuk, ws.JamPulang, ws.IsDayOff,
		)
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "jabatan"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"jam_masuk", "jam_pulang", "is_day_off", "updated_at"}),
		}).
		Create(ws).Error
}

func (r *repository) FindByJabatanAndWeekday(ctx context.Context, jabatan string, weekday int) (*WorkSchedule, error) {
	var ws WorkSchedule
	err := r.db.WithContext(ctx).
		Where("jabatan = ?", jabatan).
		Where("weekday = ?", weekday).
		First(&ws).Error
	return &ws, err
}

func (r *repository) FindByJabatan(ctx context.Context, jabatan string) ([]WorkSchedule, error) {
	var rows []WorkSchedule
	err := r.db.WithContext(ctx).
		Where("jabatan = ?", jabatan).
		Order("weekday ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]WorkSchedule, error) {
	var rows []WorkSchedule
	err := r.db.WithContext(ctx).Order("jabatan ASC, weekday ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE work_schedules SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`,
			id,
		)
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&WorkSchedule{}).Error
}
