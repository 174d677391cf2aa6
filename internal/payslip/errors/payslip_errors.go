package paysliperrors

import (
	"net/http"

	"hr-yayasan/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found for this period",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period must be formatted as YYYY-MM",
		http.StatusBadRequest,
	)
)
