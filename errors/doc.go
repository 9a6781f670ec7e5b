// Package errors provides the structured errors returned by the hub client.
//
// Every error carries a code naming the failure, a classification telling
// callers whether a retry could succeed, a message, optional context fields
// and an optional cause. The package stays compatible with the standard
// library (errors.Is, errors.As, errors.Unwrap).
//
// # Codes used by the client
//
//   - CodeNetwork, CodeTimeout: the HTTP round trip itself failed
//   - CodeUnauthorized, CodeForbidden, CodeRateLimit, CodeConflict, ...:
//     the server answered with a non-success status
//   - CodeDecodeFailed: the server answered but the body did not match
//     the expected shape
//   - CodeUnsupportedOnSummary: a detail-only accessor was used on a
//     summary resource
//   - CodeNotWired: a method was called on a resource that was never
//     returned by a client call
//
// A missing resource is not an error; lookups return nil instead.
//
// # Usage
//
//	repo, err := client.GetRepository(ctx, "octo", "hello")
//	if err != nil {
//	    if errors.IsRetryable(err) {
//	        // back off and try again
//	    }
//	    return err
//	}
//
// Adding context:
//
//	err := errors.New(errors.CodeInvalidInput, "title is required")
//	err = errors.WithContext(err, "field", "title")
package errors
