package leaveerrors

import (
	"net/http"

	"hr-yayasan/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start date must be on or before end date",
		http.StatusBadRequest,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown leave type",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required for this leave type",
		http.StatusBadRequest,
	)
	// Peran pengaju tidak punya meja tinjauan pertama.
	ErrNoApprovalTrack = apperror.New(
		apperror.CodeBusinessRule,
		"no approval track is defined for this role",
		http.StatusUnprocessableEntity,
	)
	// Reviewer sah secara RBAC tetapi bukan pemilik meja status saat ini.
	ErrNotAuthorizedForThisStage = apperror.New(
		apperror.CodeForbidden,
		"reviewer does not own the current review stage",
		http.StatusForbidden,
	)
	ErrAlreadyTerminal = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already reached a terminal status",
		http.StatusUnprocessableEntity,
	)
	ErrCommentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"comment is required when rejecting",
		http.StatusBadRequest,
	)
)
