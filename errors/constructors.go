package errors

import (
	stderrors "errors"
	"fmt"
)

// New creates a PlatformError with the given code and message.
// The classification comes from the code.
//
// Example:
//
//	err := errors.New(errors.CodeNotWired, "repository has no client")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a PlatformError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. If err already is a PlatformError
// its classification is kept, otherwise the code's default applies.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := json.Unmarshal(body, &out); err != nil {
//	    return errors.Wrap(err, errors.CodeDecodeFailed, "failed to decode response")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps err with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
