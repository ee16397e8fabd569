package dto

import "time"

// APIResponse is the envelope of every successful response.
// Errors carries the failed items of a partly successful batch.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data"`
	Errors    interface{} `json:"errors,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewSuccessResponse creates a standard success response
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// ServiceInfo is served at the API root
type ServiceInfo struct {
	Message         string   `json:"message"`
	Status          string   `json:"status"`
	Version         string   `json:"version"`
	AvailableRoutes []string `json:"available_routes"`
}

// HealthStatus reports service and database health
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
