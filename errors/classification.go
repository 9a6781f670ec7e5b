package errors

// ErrorClassification indicates whether an error should trigger a retry.
// The client never retries on its own; classification is advice for callers.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeTimeout:     ClassificationRetryable,
	CodeNetwork:     ClassificationRetryable,
	CodeRateLimit:   ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,

	CodeNotFound:             ClassificationPermanent,
	CodeConflict:             ClassificationPermanent,
	CodeUnauthorized:         ClassificationPermanent,
	CodeForbidden:            ClassificationPermanent,
	CodeInvalidInput:         ClassificationPermanent,
	CodeInvalidConfig:        ClassificationPermanent,
	CodeDecodeFailed:         ClassificationPermanent,
	CodeUnsupportedOnSummary: ClassificationPermanent,
	CodeNotWired:             ClassificationPermanent,
	CodeInternal:             ClassificationPermanent,
	CodeUnknown:              ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unknown codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
