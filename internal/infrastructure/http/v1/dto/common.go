// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"hardpos/internal/core/id"
)

// --- Pagination ---

// PaginationRequest contains pagination parameters.
type PaginationRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// Defaults sets default pagination values.
func (p *PaginationRequest) Defaults() {
	if p.Limit == 0 {
		p.Limit = 20
	}
}

// --- List Response ---

// ListResponse wraps list results.
type ListResponse struct {
	Items  any `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
