package auditlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auditlog_repo.go -destination=mock/auditlog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Append(ctx context.Context, e *Entry) error
	FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]Entry, error)
	LatestComment(ctx context.Context, entityType string, entityID uuid.UUID) (*string, error)
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

func (r *repository) Append(ctx context.Context, e *Entry) error {
	// Dalam transaksi, tulis lewat *sql.Tx supaya log ikut atomic dengan
	// mutasi entitasnya.
	if r.tx != nil {
		query := `
        INSERT INTO activity_logs (
            id, entity_type, entity_id, actor_id, action, old_values, new_values, comment
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
		_, err := r.tx.ExecContext(ctx, query,
			e.ID, e.EntityType, e.EntityID, e.ActorID,
			e.Action, nullableJSON(e.OldValues), nullableJSON(e.NewValues), e.Comment,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func nullableJSON(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

func (r *repository) FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]Entry, error) {
	var rows []Entry
	err := r.db.WithContext(ctx).
		Where("entity_type = ?", entityType).
		Where("entity_id = ?", entityID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// LatestComment mengambil komentar terbaru untuk sebuah entitas.
// "Komentar saat ini" adalah turunan dari log, bukan kolom tersendiri.
func (r *repository) LatestComment(ctx context.Context, entityType string, entityID uuid.UUID) (*string, error) {
	var e Entry
	err := r.db.WithContext(ctx).
		Where("entity_type = ?", entityType).
		Where("entity_id = ?", entityID).
		Where("comment IS NOT NULL").
		Order("created_at DESC").
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return e.Comment, nil
}
