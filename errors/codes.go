package errors

// ErrorCode represents a specific error condition.
// Codes are strings so they read well in logs and serialize naturally.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested resource does not exist.
	// Client lookups return nil for absent resources; this code is used
	// for write operations whose target is missing.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeConflict indicates a resource state conflict that prevents the operation.
	CodeConflict ErrorCode = "CONFLICT"

	// Permission errors.

	// CodeUnauthorized indicates the request lacks valid authentication credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden indicates the authenticated user lacks permission for the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Transport errors.

	// CodeNetwork indicates the network round trip failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its deadline.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeRateLimit indicates the rate limit has been exceeded.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"

	// CodeUnavailable indicates the service is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Response errors.

	// CodeDecodeFailed indicates a response body could not be decoded
	// into the expected shape.
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// Usage errors.

	// CodeUnsupportedOnSummary indicates a detail-only accessor was used on
	// a resource fetched from a list endpoint.
	CodeUnsupportedOnSummary ErrorCode = "UNSUPPORTED_ON_SUMMARY"

	// CodeNotWired indicates a method was invoked on a resource that has no
	// client attached.
	CodeNotWired ErrorCode = "NOT_WIRED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
