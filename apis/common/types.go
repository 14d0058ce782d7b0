package common

// ErrorResponse represents a standardized error response structure.
// It provides consistent error formatting across all API endpoints:
// every failed request is reported with the same three fields.
type ErrorResponse struct {
	// Error is the generic status text for the failure (e.g., "Internal Server Error")
	Error string `json:"error"`

	// Detail contains the error message describing what went wrong
	Detail string `json:"detail"`

	// Timestamp is when the error response was generated
	Timestamp string `json:"timestamp"`
}
