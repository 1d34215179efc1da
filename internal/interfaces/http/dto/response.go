package dto

// ErrorInfo is the error response body: a stable code plus a
// human-readable message
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorInfo creates an error response body
func NewErrorInfo(code, message string) ErrorInfo {
	return ErrorInfo{
		Code:    code,
		Message: message,
	}
}
