package worklocationerrors

import (
	"net/http"

	"hr-yayasan/internal/shared/apperror"
)

var (
	ErrWorkLocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"work location not found",
		http.StatusNotFound,
	)
	ErrInvalidWorkLocationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid work location id",
		http.StatusBadRequest,
	)
	ErrWorkLocationNameTaken = apperror.New(
		apperror.CodeConflict,
		"work location name already exists",
		http.StatusConflict,
	)
	ErrWorkLocationInUse = apperror.New(
		apperror.CodeBusinessRule,
		"work location geofence cannot change while attendance records reference it",
		http.StatusUnprocessableEntity,
	)
)
