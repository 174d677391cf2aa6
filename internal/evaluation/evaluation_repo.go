package evaluation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=evaluation_repo.go -destination=mock/evaluation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Evaluation) error
	FindByEvaluatedAndTerm(ctx context.Context, evaluatedID, termID string) ([]Evaluation, error)
	FindByEvaluated(ctx context.Context, evaluatedID string) ([]Evaluation, error)
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

func (r *repository) Create(ctx context.Context, e *Evaluation) error {
	if r.tx != nil {
		query := `
        INSERT INTO evaluations (
            id, evaluated_id, evaluator_id, category_id, term_id, score, note
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
		_, err := r.tx.ExecContext(ctx, query,
			e.ID, e.EvaluatedID, e.EvaluatorID, e.CategoryID, e.TermID, e.Score, e.Note,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByEvaluatedAndTerm(ctx context.Context, evaluatedID, termID string) ([]Evaluation, error) {
	var rows []Evaluation
	err := r.db.WithContext(ctx).
		Where("evaluated_id = ?", evaluatedID).
		Where("term_id = ?", termID).
		Order("category_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEvaluated(ctx context.Context, evaluatedID string) ([]Evaluation, error) {
	var rows []Evaluation
	err := r.db.WithContext(ctx).
		Where("evaluated_id = ?", evaluatedID).
		Order("term_id DESC, category_id ASC").
		Find(&rows).Error
	return rows, err
}
