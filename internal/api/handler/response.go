package handler

// ErrorResponse is the canonical error envelope for all API errors.
// Fields carries per-field messages for validation failures.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}
