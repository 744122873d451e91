package dto

// ErrorResponse is the body of every non-2xx response.
// Code is the numeric domain code, stable across releases.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}
