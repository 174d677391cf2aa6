package evaluationerrors

import (
	"net/http"

	"hr-yayasan/internal/shared/apperror"
)

var (
	ErrEvaluationNotFound = apperror.New(
		apperror.CodeNotFound,
		"no evaluations found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrNoScores = apperror.New(
		apperror.CodeInvalidInput,
		"at least one category score is required",
		http.StatusBadRequest,
	)
	ErrScoreOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"score must be between 1 and 100",
		http.StatusBadRequest,
	)
	ErrSelfEvaluation = apperror.New(
		apperror.CodeBusinessRule,
		"employees cannot evaluate themselves",
		http.StatusUnprocessableEntity,
	)
	// Satu kombinasi (dinilai, penilai, kategori, term) sudah ada; seluruh
	// batch ditolak, tidak ada baris yang tersimpan sebagian.
	ErrDuplicateEvaluation = apperror.New(
		apperror.CodeConflict,
		"an evaluation for this category and term already exists",
		http.StatusConflict,
	)
)
