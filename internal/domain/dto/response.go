package dto

import (
	"net/http"
	"time"

	"github.com/expedibox/colis-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeCategoryInUse indicates a weight category still referenced by stamps.
	ErrCodeCategoryInUse = "category_in_use"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"poids: must be a positive number"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// MutationResponse reports the row count touched by a write, mirroring the
// changes counter API clients already consume.
// @Description Number of rows changed by the operation
type MutationResponse struct {
	Message string `json:"message,omitempty"`
	Changes int64  `json:"changes" example:"1"`
} // @name MutationResponse

// ImportStampsResponse reports a bulk stamp import outcome. Tracking
// numbers already present are silently skipped and counted as not-inserted.
// @Description Bulk stamp import result
type ImportStampsResponse struct {
	Inserted int `json:"inserted" example:"8"`
	Total    int `json:"total" example:"10"`
} // @name ImportStampsResponse

// ToggleStampResponse reports the stamp state after a toggle.
// @Description Stamp used-flag after toggling
type ToggleStampResponse struct {
	Utilise bool  `json:"utilise"`
	Changes int64 `json:"changes" example:"1"`
} // @name ToggleStampResponse

// ParcelMutationResponse is returned by parcel create/update. It carries
// the advisory list of products whose stock went negative; the write
// itself succeeded.
// @Description Parcel write result with negative-stock warnings
type ParcelMutationResponse struct {
	ID               int64                 `json:"id,omitempty" example:"7"`
	NumeroSuivi      string                `json:"numero_suivi,omitempty"`
	Message          string                `json:"message,omitempty"`
	ProduitsNegatifs []model.NegativeStock `json:"produitsNegatifs"`
} // @name ParcelMutationResponse

// DuplicateLinkResponse reports parcels whose product lines already carry
// a matching link. A match is a soft warning, never a hard block.
// @Description Duplicate-link guard result
type DuplicateLinkResponse struct {
	Duplicate bool           `json:"duplicate"`
	Colis     []model.Parcel `json:"colis"`
} // @name DuplicateLinkResponse
