package response

import (
	"net/http"

	"mergington-hub/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// ErrorBody is the failure payload. The detail string carries the business
// error message verbatim.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// OkJson writes a 200 response with the given body.
func OkJson(w http.ResponseWriter, data interface{}) {
	httpx.OkJson(w, data)
}

// Fail writes a failure response, mapping the business error code to an
// HTTP status code.
func Fail(w http.ResponseWriter, err error) {
	bizErr := errorx.FromError(err)
	httpx.WriteJson(w, getHttpStatus(bizErr.Code), &ErrorBody{Detail: bizErr.Message})
}

// FailValidation writes a 422 for request-shape errors (missing required
// parameters), rejected before any business logic runs.
func FailValidation(w http.ResponseWriter, message string) {
	httpx.WriteJson(w, http.StatusUnprocessableEntity, &ErrorBody{Detail: message})
}

// Error writes a failure with an explicit HTTP status. Used by middleware
// that has no business error to map.
func Error(w http.ResponseWriter, status int, message string) {
	httpx.WriteJson(w, status, &ErrorBody{Detail: message})
}

// getHttpStatus maps business error codes to HTTP status codes.
func getHttpStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeInvalidInput, errorx.CodeConflict:
		return http.StatusBadRequest
	case errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
