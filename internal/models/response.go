package models

import "github.com/gridlens/gridlens/internal/source"

// HealthResponse represents health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ErrorResponse represents error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// UploadResponse represents a variable upload response.
type UploadResponse struct {
	RequestID string              `json:"request_id"`
	Variable  source.VariableMeta `json:"variable"`
}

// VariableListResponse represents list variables response.
type VariableListResponse struct {
	Variables []source.VariableMeta `json:"variables"`
	Count     int                   `json:"count"`
}
