package hub

import (
	"fmt"
	"net/http"

	"github.com/jmgilman/go/hub/errors"
)

// Convenience aliases for the error codes the client produces.
const (
	// ErrCodeAuthenticationFailed indicates authentication failure.
	ErrCodeAuthenticationFailed = errors.CodeUnauthorized

	// ErrCodePermissionDenied indicates insufficient permissions.
	ErrCodePermissionDenied = errors.CodeForbidden

	// ErrCodeRateLimited indicates rate limit exceeded.
	ErrCodeRateLimited = errors.CodeRateLimit

	// ErrCodeInvalidInput indicates invalid parameters or a rejected payload.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeNetwork indicates the round trip failed or the server errored.
	ErrCodeNetwork = errors.CodeNetwork

	// ErrCodeDecode indicates a response body of the wrong shape.
	ErrCodeDecode = errors.CodeDecodeFailed

	// ErrCodeUnsupportedOnSummary indicates a detail-only accessor was used on a summary.
	ErrCodeUnsupportedOnSummary = errors.CodeUnsupportedOnSummary

	// ErrCodeNotWired indicates a resource without a client was asked to make a call.
	ErrCodeNotWired = errors.CodeNotWired
)

// WrapHTTPError wraps an error based on the HTTP status code of the response.
func WrapHTTPError(err error, statusCode int, message string) error {
	if err == nil {
		return nil
	}

	var code errors.ErrorCode
	switch statusCode {
	case http.StatusNotFound, http.StatusGone:
		code = errors.CodeNotFound
	case http.StatusUnauthorized:
		code = errors.CodeUnauthorized
	case http.StatusForbidden:
		code = errors.CodeForbidden
	case http.StatusConflict:
		code = errors.CodeConflict
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		code = errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		code = errors.CodeRateLimit
	case http.StatusServiceUnavailable:
		code = errors.CodeUnavailable
	default:
		if statusCode >= 500 {
			code = errors.CodeNetwork
		} else {
			code = errors.CodeInternal
		}
	}

	return errors.WithContext(errors.Wrap(err, code, message), "status_code", statusCode)
}

// IsTransportError reports whether err comes from a failed round trip:
// a network failure, a timeout or a server-side error status.
func IsTransportError(err error) bool {
	return errors.HasCode(err, errors.CodeNetwork, errors.CodeTimeout, errors.CodeUnavailable)
}

// IsDecodeError reports whether err comes from a response body that could
// not be decoded into the expected type.
func IsDecodeError(err error) bool {
	return errors.HasCode(err, errors.CodeDecodeFailed)
}

// IsUnsupportedOnSummary reports whether err comes from a detail-only
// accessor used on a summary resource.
func IsUnsupportedOnSummary(err error) bool {
	return errors.HasCode(err, errors.CodeUnsupportedOnSummary)
}

// IsNotWired reports whether err comes from a resource that was never
// returned by a client call.
func IsNotWired(err error) bool {
	return errors.HasCode(err, errors.CodeNotWired)
}

// StatusCode returns the HTTP status attached to err, if any.
func StatusCode(err error) (int, bool) {
	var platformErr errors.PlatformError
	if !errors.As(err, &platformErr) {
		return 0, false
	}
	status, ok := platformErr.Context()["status_code"].(int)
	return status, ok
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	return errors.WithContextMap(err, map[string]interface{}{
		"field":  field,
		"reason": reason,
	})
}

// newNotWiredError is returned by resource methods called on a value that
// no client call produced.
func newNotWiredError(resourceType, operation string) error {
	err := errors.Newf(
		errors.CodeNotWired,
		"%s has no client attached; obtain it from a Client call before calling %s",
		resourceType, operation,
	)
	return errors.WithContextMap(err, map[string]interface{}{
		"resource_type": resourceType,
		"operation":     operation,
	})
}

// newUnsupportedOnSummaryError is returned by detail-only accessors on
// resources fetched from list endpoints.
func newUnsupportedOnSummaryError(resourceType, accessor, identifier string) error {
	err := errors.Newf(
		errors.CodeUnsupportedOnSummary,
		"%s is not available on a summary %s; fetch %s individually first",
		accessor, resourceType, identifier,
	)
	return errors.WithContextMap(err, map[string]interface{}{
		"resource_type": resourceType,
		"accessor":      accessor,
		"identifier":    identifier,
	})
}
