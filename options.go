package hub

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
	"github.com/jmgilman/go/hub/errors"
)

// config holds configuration for NewClient.
type config struct {
	token      string
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
	logger     logr.Logger
}

// Option configures a Client.
type Option func(*config) error

// WithToken sets the bearer token attached to every request.
// Without a token the client only reaches endpoints that allow anonymous access.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			return newInvalidInputError("token", "cannot be empty")
		}
		cfg.token = token
		return nil
	}
}

// WithBaseURL sets the REST API root, e.g. "https://ghe.example.com/api/v3/".
// A trailing slash is added when missing.
func WithBaseURL(rawURL string) Option {
	return func(cfg *config) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			err := errors.Wrap(err, errors.CodeInvalidConfig, "invalid base URL")
			return errors.WithContext(err, "base_url", rawURL)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			err := errors.New(errors.CodeInvalidConfig, "base URL must be an absolute http(s) URL")
			return errors.WithContext(err, "base_url", rawURL)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		cfg.baseURL = u
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for round trips. The client's
// transport is wrapped to attach the token set with WithToken.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return newInvalidInputError("http client", "cannot be nil")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(cfg *config) error {
		if userAgent == "" {
			return newInvalidInputError("user agent", "cannot be empty")
		}
		cfg.userAgent = userAgent
		return nil
	}
}

// WithLogger sets the logger. Requests and responses are logged at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

// ListOption configures pagination of repository lists.
type ListOption func(*ListOptions)

// WithPage selects the page to fetch (1-indexed).
func WithPage(page int) ListOption {
	return func(opts *ListOptions) {
		opts.Page = page
	}
}

// WithPerPage sets the page size.
func WithPerPage(perPage int) ListOption {
	return func(opts *ListOptions) {
		opts.PerPage = perPage
	}
}

func buildListOptions(opts []ListOption) ListOptions {
	var listOpts ListOptions
	for _, opt := range opts {
		opt(&listOpts)
	}
	return listOpts
}

// IssueOption configures issue creation.
type IssueOption func(*CreateIssueOptions)

// WithLabels sets labels for an issue.
func WithLabels(labels ...string) IssueOption {
	return func(opts *CreateIssueOptions) {
		opts.Labels = labels
	}
}

// WithAssignees sets assignees for an issue.
func WithAssignees(assignees ...string) IssueOption {
	return func(opts *CreateIssueOptions) {
		opts.Assignees = assignees
	}
}

// IssueFilterOption configures issue filtering.
type IssueFilterOption func(*ListIssuesOptions)

// WithState filters issues by state ("open", "closed", "all").
func WithState(state string) IssueFilterOption {
	return func(opts *ListIssuesOptions) {
		opts.State = state
	}
}

// WithIssueLabels filters issues by labels (all must match).
func WithIssueLabels(labels ...string) IssueFilterOption {
	return func(opts *ListIssuesOptions) {
		opts.Labels = labels
	}
}

// WithAssignee filters issues by assignee login.
func WithAssignee(assignee string) IssueFilterOption {
	return func(opts *ListIssuesOptions) {
		opts.Assignee = assignee
	}
}

// WithIssuePage selects a page of the issue list.
func WithIssuePage(page, perPage int) IssueFilterOption {
	return func(opts *ListIssuesOptions) {
		opts.Page = page
		opts.PerPage = perPage
	}
}

// PRFilterOption configures pull request filtering.
type PRFilterOption func(*ListPullRequestsOptions)

// WithPRState filters pull requests by state ("open", "closed", "all").
func WithPRState(state string) PRFilterOption {
	return func(opts *ListPullRequestsOptions) {
		opts.State = state
	}
}

// WithHead filters pull requests by head branch ("user:ref-name").
func WithHead(head string) PRFilterOption {
	return func(opts *ListPullRequestsOptions) {
		opts.Head = head
	}
}

// WithBase filters pull requests by base branch.
func WithBase(base string) PRFilterOption {
	return func(opts *ListPullRequestsOptions) {
		opts.Base = base
	}
}

// WithPRPage selects a page of the pull request list.
func WithPRPage(page, perPage int) PRFilterOption {
	return func(opts *ListPullRequestsOptions) {
		opts.Page = page
		opts.PerPage = perPage
	}
}
