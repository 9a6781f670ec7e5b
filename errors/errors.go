package errors

import "fmt"

// PlatformError is an error with a code, a retry classification, a message,
// context metadata and an optional cause.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}

// platformError is the only PlatformError implementation; construct it
// through New, Wrap and friends.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error formats as "[CODE] message" or "[CODE] message: cause".
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *platformError) Code() ErrorCode {
	return e.code
}

func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

func (e *platformError) Message() string {
	return e.message
}

func (e *platformError) Context() map[string]interface{} {
	return copyContext(e.context)
}

func (e *platformError) Unwrap() error {
	return e.cause
}

func copyContext(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
