package evaluation

import (
	"context"
	"database/sql"
	"sort"
	"time"

	evaluationerrors "hr-yayasan/internal/evaluation/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=evaluation_service.go -destination=mock/evaluation_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, evaluatorID string, req SubmitEvaluationRequest) (TermSummary, error)
	GetForEmployee(ctx context.Context, evaluatedID, termID string) ([]TermSummary, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, logger: l.Named("evaluation.service")}
}

// Submit menyimpan seluruh kategori dalam satu transaksi. Satu saja nilai
// di luar rentang atau duplikat membatalkan seluruh batch.
func (s *service) Submit(ctx context.Context, evaluatorID string, req SubmitEvaluationRequest) (TermSummary, error) {
	evaluator, err := uuid.Parse(evaluatorID)
	if err != nil {
		return TermSummary{}, evaluationerrors.ErrInvalidEmployeeID
	}
	evaluated, err := uuid.Parse(req.EvaluatedID)
	if err != nil {
		return TermSummary{}, evaluationerrors.ErrInvalidEmployeeID
	}
	if evaluator == evaluated {
		return TermSummary{}, evaluationerrors.ErrSelfEvaluation
	}
	if len(req.Scores) == 0 {
		return TermSummary{}, evaluationerrors.ErrNoScores
	}
	for _, score := range req.Scores {
		if !ValidScore(score) {
			return TermSummary{}, evaluationerrors.ErrScoreOutOfRange
		}
	}

	// Urutan kategori deterministik supaya pelanggaran unik pertama yang
	// dilaporkan tidak berubah-ubah antar percobaan.
	categories := make([]string, 0, len(req.Scores))
	for category := range req.Scores {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("evaluation submit begin tx failed", zap.Error(err))
		return TermSummary{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now()
	summary := TermSummary{TermID: req.TermID}
	for _, category := range categories {
		e := &Evaluation{
			ID:          uuid.New(),
			EvaluatedID: evaluated,
			EvaluatorID: evaluator,
			CategoryID:  category,
			TermID:      req.TermID,
			Score:       req.Scores[category],
			Note:        req.Note,
			CreatedAt:   now,
		}
		if err := qtx.Create(ctx, e); err != nil {
			return TermSummary{}, mapRepositoryError(err)
		}
		summary.Entries = append(summary.Entries, mapToResponse(*e))
		summary.TotalScore += e.Score
		summary.Count++
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("evaluation submit commit failed", zap.Error(err))
		return TermSummary{}, err
	}

	s.logger.Info("evaluation batch submitted",
		zap.String("evaluated_id", req.EvaluatedID),
		zap.String("evaluator_id", evaluatorID),
		zap.String("term_id", req.TermID),
		zap.Int("categories", summary.Count),
	)
	return summary, nil
}

// GetForEmployee mengelompokkan nilai per term; termID kosong berarti
// seluruh term.
func (s *service) GetForEmployee(ctx context.Context, evaluatedID, termID string) ([]TermSummary, error) {
	if _, err := uuid.Parse(evaluatedID); err != nil {
		return nil, evaluationerrors.ErrInvalidEmployeeID
	}

	var (
		rows []Evaluation
		err  error
	)
	if termID != "" {
		rows, err = s.repo.FindByEvaluatedAndTerm(ctx, evaluatedID, termID)
	} else {
		rows, err = s.repo.FindByEvaluated(ctx, evaluatedID)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, evaluationerrors.ErrEvaluationNotFound
	}

	byTerm := map[string]*TermSummary{}
	var order []string
	for _, e := range rows {
		ts, ok := byTerm[e.TermID]
		if !ok {
			ts = &TermSummary{TermID: e.TermID}
			byTerm[e.TermID] = ts
			order = append(order, e.TermID)
		}
		ts.Entries = append(ts.Entries, mapToResponse(e))
		ts.TotalScore += e.Score
		ts.Count++
	}

	summaries := make([]TermSummary, 0, len(order))
	for _, term := range order {
		summaries = append(summaries, *byTerm[term])
	}
	return summaries, nil
}

func mapToResponse(e Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:          e.ID.String(),
		EvaluatedID: e.EvaluatedID.String(),
		EvaluatorID: e.EvaluatorID.String(),
		CategoryID:  e.CategoryID,
		TermID:      e.TermID,
		Score:       e.Score,
		Note:        e.Note,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
