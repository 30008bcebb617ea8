// Package dto defines data transfer objects for API requests and responses.
package dto

// PaginationResponse represents pagination information in list responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}
