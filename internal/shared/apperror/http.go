package apperror

import (
	"errors"
	"net/http"
)

// HTTPError adalah bentuk final sebuah error sebelum ditulis ke response.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP memetakan error apapun ke HTTPError. AppError dipetakan apa adanya,
// error lain dianggap kegagalan infrastruktur dan tidak membocorkan detail
// internal ke caller.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
