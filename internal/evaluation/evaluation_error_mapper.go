package evaluation

import (
	"errors"
	"strings"

	evaluationerrors "hr-yayasan/internal/evaluation/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_evaluation_natural" {
			return evaluationerrors.ErrDuplicateEvaluation
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_evaluation_natural") {
		return evaluationerrors.ErrDuplicateEvaluation
	}

	return err
}
