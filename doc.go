// Package hub is a typed client for the GitHub REST API.
//
// Every public method performs at most one HTTP round trip and returns once
// the response is decoded. There is no caching, no retrying and no
// pagination traversal; list methods return the page the server sends (use
// WithPage/WithPerPage to choose it).
//
// # Client and resources
//
// Client holds the base URL, the token and the HTTP machinery. Resources
// (Repository, User, Organization, PullRequest, Issue, Comment, Branch,
// Ref) are read-only views of decoded responses. Every resource returned by
// a call keeps a reference to the Client that made it, and where it has one,
// to its parent (the Repository of a PullRequest, Issue, Branch or Ref), so
// it can make follow-up calls:
//
//	client, err := hub.NewClient(hub.WithToken(os.Getenv("GITHUB_TOKEN")))
//	if err != nil {
//	    return err
//	}
//
//	repo, err := client.GetRepository(ctx, "octo", "hello")
//	if err != nil {
//	    return err
//	}
//	if repo == nil {
//	    return fmt.Errorf("octo/hello not found")
//	}
//
//	pr, err := repo.CreatePullRequest(ctx, hub.CreatePullRequestOptions{
//	    Title: "Fix typo",
//	    Head:  "me:typo",
//	    Base:  "main",
//	})
//
// Resources built any other way (zero values, NewBranch) have no client;
// their methods fail with ErrCodeNotWired.
//
// # Summary and detailed repositories
//
// Client.GetRepository and Repository.Refresh return detailed repositories.
// Every list and search endpoint returns summaries, which the server sends
// without the fork parent. Repository.Parent therefore fails with
// ErrCodeUnsupportedOnSummary on a summary instead of returning nil, which
// would read as "not a fork".
//
// # Absent resources and errors
//
// A 404 response (or an empty body) is not an error: lookups return nil.
// Errors are structured (see package hub/errors):
//
//   - IsTransportError: the round trip failed or the server returned 5xx
//   - IsDecodeError: the body did not match the expected type
//   - IsUnsupportedOnSummary, IsNotWired: programming errors
//   - other statuses carry their mapped code and StatusCode(err)
//
// # Configuration
//
// NewClientFromEnv reads GITHUB_TOKEN, GITHUB_API_URL, HUB_USER_AGENT and
// HUB_HTTP_TIMEOUT. Logging goes through a logr.Logger set with WithLogger;
// requests are logged at V(1).
//
// # Equality
//
// Resources are compared by their identifying fields, never by pointer.
// Key returns a comparable value (owner and name for a repository, login
// for a user) and Equal compares keys.
package hub
