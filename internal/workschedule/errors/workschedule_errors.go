package workscheduleerrors

import (
	"net/http"

	"hr-yayasan/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"work schedule not found",
		http.StatusNotFound,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrJamPulangBeforeJamMasuk = apperror.New(
		apperror.CodeInvalidInput,
		"jam_pulang must be after jam_masuk",
		http.StatusBadRequest,
	)
)
