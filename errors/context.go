package errors

import stderrors "errors"

// WithContext returns a copy of err with one more context field.
// Existing fields are preserved; a field with the same key is replaced.
//
// If err is not a PlatformError it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeDecodeFailed, "unexpected response")
//	err = errors.WithContext(err, "path", "/repos/octo/hello")
func WithContext(err error, key string, value interface{}) PlatformError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with the given context fields merged in.
//
// If err is not a PlatformError it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if !stderrors.As(err, &platformErr) {
		platformErr = &platformError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	merged := platformErr.Context()
	if merged == nil {
		merged = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        merged,
		cause:          platformErr.Unwrap(),
	}
}
