package apperr

import "net/http"

// httpStatus maps each error Kind to the HTTP status it translates to
// at the transport boundary.
var httpStatus = map[Kind]int{
	KindNotFound:           http.StatusNotFound,
	KindBadRequest:         http.StatusBadRequest,
	KindValidationError:    http.StatusUnprocessableEntity,
	KindUnauthorized:       http.StatusUnauthorized,
	KindForbidden:          http.StatusForbidden,
	KindConflict:           http.StatusConflict,
	KindServiceUnavailable: http.StatusServiceUnavailable,
	KindConfigurationError: http.StatusInternalServerError,
	KindSerializationError: http.StatusInternalServerError,
	KindNetworkError:       http.StatusGatewayTimeout,
	KindTimeoutError:       http.StatusGatewayTimeout,
	KindInternalError:      http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code for an AppError kind, defaulting
// to 500 for any kind not explicitly enumerated (there should be none).
func HTTPStatus(k Kind) int {
	if code, ok := httpStatus[k]; ok {
		return code
	}

	return http.StatusInternalServerError
}
