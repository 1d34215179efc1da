package dto

import (
	"net/http"

	"github.com/orderflow/backend/internal/domain/ordering"
)

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "InternalError"
	// ErrCodeInvalidJSON is used when the request body cannot be bound
	ErrCodeInvalidJSON = "InvalidRequestBody"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Every
// PlaceOrderError variant surfaces as 400: the request was understood
// and rejected, whether by a field rule or a collaborator.
var ErrorCodeHTTPStatus = map[string]int{
	ordering.ErrorCodeValidation:    http.StatusBadRequest,
	ordering.ErrorCodePricing:       http.StatusBadRequest,
	ordering.ErrorCodeRemoteService: http.StatusBadRequest,
	ErrCodeInvalidJSON:              http.StatusBadRequest,
	ErrCodeInternal:                 http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromPlaceOrderError converts a workflow failure to its wire form
func FromPlaceOrderError(err ordering.PlaceOrderError) ErrorInfo {
	return ErrorInfo{
		Code:    err.Code(),
		Message: err.Error(),
	}
}
