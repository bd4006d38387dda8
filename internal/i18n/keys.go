package i18n

// Error message keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyCategoryInUse      = "error.category_in_use"
	ErrKeyDuplicateTracking  = "error.duplicate_tracking"
)

// Success message keys.
const (
	MsgKeyStampsImported = "success.stamps_imported"
	MsgKeyParcelCreated  = "success.parcel_created"
	MsgKeyParcelUpdated  = "success.parcel_updated"
	MsgKeyParcelDeleted  = "success.parcel_deleted"
)
