package attendanceerrors

import (
	"net/http"

	"hr-yayasan/internal/shared/apperror"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"already checked in for today",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeConflict,
		"already checked out for today",
		http.StatusConflict,
	)
	ErrNotCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"no check-in found for today",
		http.StatusUnprocessableEntity,
	)
	ErrOutsideWorkRadius = apperror.New(
		apperror.CodeBusinessRule,
		"reported coordinate is outside the allowed work radius",
		http.StatusUnprocessableEntity,
	)
	ErrNoWorkLocationConfigured = apperror.New(
		apperror.CodeBusinessRule,
		"no work location configured for this employee",
		http.StatusUnprocessableEntity,
	)
	ErrNoWorkScheduleConfigured = apperror.New(
		apperror.CodeBusinessRule,
		"no work schedule configured for this jabatan",
		http.StatusUnprocessableEntity,
	)
	ErrDayOff = apperror.New(
		apperror.CodeBusinessRule,
		"today is not a working day",
		http.StatusUnprocessableEntity,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
)
