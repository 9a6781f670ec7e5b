package hub

import (
	"context"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/go/hub/internal/urltemplate"
)

// Client is the handle every resource uses to talk to the API.
// It is immutable after construction and safe for concurrent use; each
// call is an independent round trip.
//
// Example usage:
//
//	client, err := hub.NewClient(hub.WithToken("ghp_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	repo, err := client.GetRepository(ctx, "octo", "hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if repo == nil {
//	    log.Fatal("no such repository")
//	}
type Client struct {
	dispatcher    *dispatcher
	authenticated bool
}

// NewClient creates a client. Without WithToken the client is anonymous.
//
// Example with a GitHub Enterprise server:
//
//	client, err := hub.NewClient(
//	    hub.WithToken(token),
//	    hub.WithBaseURL("https://ghe.example.com/api/v3/"),
//	)
func NewClient(opts ...Option) (*Client, error) {
	cfg := &config{
		logger: logr.Discard(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	gh := github.NewClient(httpClient)
	if cfg.token != "" {
		gh = gh.WithAuthToken(cfg.token)
	}
	if cfg.baseURL != nil {
		gh.BaseURL = cfg.baseURL
	}
	if cfg.userAgent != "" {
		gh.UserAgent = cfg.userAgent
	}

	return &Client{
		dispatcher:    newDispatcher(gh, cfg.logger),
		authenticated: cfg.token != "",
	}, nil
}

// Authenticated reports whether the client sends a token.
func (c *Client) Authenticated() bool {
	return c.authenticated
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.dispatcher.gh.BaseURL.String()
}

// GetRepository fetches a single repository. The result is detailed: every
// field is populated and Parent is available.
// Returns nil if the repository does not exist or is not visible.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	if owner == "" {
		return nil, newInvalidInputError("owner", "cannot be empty")
	}
	if name == "" {
		return nil, newInvalidInputError("repository name", "cannot be empty")
	}

	data, err := fetch[RepositoryData](ctx, c.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepository,
		values: urltemplate.Values{"owner": owner, "repo": name},
	})
	if err != nil {
		return nil, err
	}
	return newRepository(c, data, true), nil
}

// ListUserRepositories lists the public repositories of a user as summaries.
// Returns nil if the user does not exist.
func (c *Client) ListUserRepositories(ctx context.Context, login string, opts ...ListOption) ([]*Repository, error) {
	if login == "" {
		return nil, newInvalidInputError("login", "cannot be empty")
	}
	return c.listRepositories(ctx, request{
		method: http.MethodGet,
		tmpl:   pathUserRepositories,
		values: urltemplate.Values{"user": login},
		query:  buildListOptions(opts),
	})
}

// ListOrganizationRepositories lists the repositories of an organization as summaries.
// Returns nil if the organization does not exist.
func (c *Client) ListOrganizationRepositories(ctx context.Context, org string, opts ...ListOption) ([]*Repository, error) {
	if org == "" {
		return nil, newInvalidInputError("organization", "cannot be empty")
	}
	return c.listRepositories(ctx, request{
		method: http.MethodGet,
		tmpl:   pathOrganizationRepositories,
		values: urltemplate.Values{"org": org},
		query:  buildListOptions(opts),
	})
}

// ListMyRepositories lists the repositories the authenticated user can
// access as summaries. Requires a token.
func (c *Client) ListMyRepositories(ctx context.Context, opts ...ListOption) ([]*Repository, error) {
	return c.listRepositories(ctx, request{
		method: http.MethodGet,
		tmpl:   pathCurrentUserRepositories,
		query:  buildListOptions(opts),
	})
}

// SearchRepositories returns one page of repository search results as summaries.
func (c *Client) SearchRepositories(ctx context.Context, q string, opts ...ListOption) ([]*Repository, error) {
	if q == "" {
		return nil, newInvalidInputError("query", "cannot be empty")
	}

	result, err := fetch[searchRepositoriesResult](ctx, c.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathSearchRepositories,
		query:  searchRepositoriesOptions{Query: q, ListOptions: buildListOptions(opts)},
	})
	if err != nil || result == nil {
		return nil, err
	}
	return adoptRepositories(c, result.Items), nil
}

func (c *Client) listRepositories(ctx context.Context, req request) ([]*Repository, error) {
	list, err := fetchList[RepositoryData](ctx, c.dispatcher, req)
	if err != nil || list == nil {
		return nil, err
	}
	return adoptRepositories(c, list), nil
}

// GetUser fetches a user by login.
// Returns nil if the user does not exist.
func (c *Client) GetUser(ctx context.Context, login string) (*User, error) {
	if login == "" {
		return nil, newInvalidInputError("login", "cannot be empty")
	}

	data, err := fetch[UserData](ctx, c.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathUser,
		values: urltemplate.Values{"user": login},
	})
	if err != nil {
		return nil, err
	}
	return newUser(c, data), nil
}

// CurrentUser fetches the user the token belongs to. Requires a token.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	data, err := fetch[UserData](ctx, c.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathCurrentUser,
	})
	if err != nil {
		return nil, err
	}
	return newUser(c, data), nil
}

// GetOrganization fetches an organization by login.
// Returns nil if the organization does not exist.
func (c *Client) GetOrganization(ctx context.Context, org string) (*Organization, error) {
	if org == "" {
		return nil, newInvalidInputError("organization", "cannot be empty")
	}

	data, err := fetch[OrganizationData](ctx, c.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathOrganization,
		values: urltemplate.Values{"org": org},
	})
	if err != nil {
		return nil, err
	}
	return newOrganization(c, data), nil
}
