package hub

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmgilman/go/hub/internal/urltemplate"
)

// Repository represents a repository returned by the API.
//
// A Repository is either detailed (from Client.GetRepository or Refresh)
// or a summary (from any list or search endpoint, or from CreateFork).
// Summaries carry the same fields as far as the list endpoint sends them,
// but Parent is only available on detailed repositories:
//
//	repos, err := client.ListUserRepositories(ctx, "octo")
//	for _, summary := range repos {
//	    repo, err := summary.Refresh(ctx) // detailed copy
//	    if err != nil {
//	        return err
//	    }
//	    parent, err := repo.Parent()
//	    ...
//	}
//
// Repositories are immutable; Refresh returns a new value.
type Repository struct {
	client   *Client
	data     *RepositoryData
	detailed bool
}

// RepositoryKey identifies a repository. Keys of repositories describing the
// same remote repository are equal, so they can be used as map keys.
type RepositoryKey struct {
	Owner string
	Name  string
}

// String returns "owner/name".
func (k RepositoryKey) String() string {
	return k.Owner + "/" + k.Name
}

// newRepository adopts decoded repository data. Returns nil for nil data.
func newRepository(c *Client, data *RepositoryData, detailed bool) *Repository {
	if data == nil {
		return nil
	}
	return &Repository{
		client:   c,
		data:     data,
		detailed: detailed,
	}
}

// adoptRepositories adopts the elements of a list endpoint as summaries.
func adoptRepositories(c *Client, list []*RepositoryData) []*Repository {
	repos := make([]*Repository, 0, len(list))
	for _, data := range list {
		if repo := newRepository(c, data, false); repo != nil {
			repos = append(repos, repo)
		}
	}
	return repos
}

var emptyRepositoryData RepositoryData

func (r *Repository) d() *RepositoryData {
	if r == nil || r.data == nil {
		return &emptyRepositoryData
	}
	return r.data
}

// wired returns a NotWired error unless r came from a client call.
func (r *Repository) wired(operation string) error {
	if r == nil || r.client == nil || r.data == nil {
		return newNotWiredError("repository", operation)
	}
	return nil
}

// Client returns the client r was fetched with, or nil.
func (r *Repository) Client() *Client {
	if r == nil {
		return nil
	}
	return r.client
}

// Detailed reports whether r came from the single-repository endpoint.
func (r *Repository) Detailed() bool {
	return r != nil && r.detailed
}

// Name returns the repository name (without owner).
func (r *Repository) Name() string {
	return r.d().Name
}

// OwnerLogin returns the login of the repository owner.
func (r *Repository) OwnerLogin() string {
	data := r.d()
	if data.Owner != nil && data.Owner.Login != "" {
		return data.Owner.Login
	}
	if owner, _, ok := strings.Cut(data.FullName, "/"); ok {
		return owner
	}
	return ""
}

// FullName returns "owner/name".
func (r *Repository) FullName() string {
	if name := r.d().FullName; name != "" {
		return name
	}
	return r.Key().String()
}

// Description returns the repository description.
func (r *Repository) Description() string {
	return r.d().Description
}

// Homepage returns the repository homepage URL.
func (r *Repository) Homepage() string {
	return r.d().Homepage
}

// DefaultBranch returns the default branch name as sent with r.
// Use DefaultBranchName to ask the server.
func (r *Repository) DefaultBranch() string {
	return r.d().DefaultBranch
}

// IsFork returns true if the repository is a fork.
func (r *Repository) IsFork() bool {
	return r.d().Fork
}

// Forks returns the number of forks.
func (r *Repository) Forks() int {
	return r.d().ForksCount
}

// IsPrivate returns true if the repository is private.
func (r *Repository) IsPrivate() bool {
	return r.d().Private
}

// IsArchived returns true if the repository is archived.
func (r *Repository) IsArchived() bool {
	return r.d().Archived
}

// GitURL returns the read-only git:// clone URL.
func (r *Repository) GitURL() string {
	return r.d().GitURL
}

// SSHURL returns the SSH clone URL.
func (r *Repository) SSHURL() string {
	return r.d().SSHURL
}

// CloneURL returns the HTTPS clone URL.
func (r *Repository) CloneURL() string {
	return r.d().CloneURL
}

// HTMLURL returns the URL of the repository web page.
func (r *Repository) HTMLURL() string {
	return r.d().HTMLURL
}

// Owner returns the repository owner, or nil if the response had none.
func (r *Repository) Owner() *User {
	if r == nil {
		return nil
	}
	return newUser(r.client, r.d().Owner)
}

// Organization returns the owning organization, or nil for repositories
// owned by a user.
func (r *Repository) Organization() *Organization {
	if r == nil {
		return nil
	}
	return newOrganization(r.client, r.d().Organization)
}

// Parent returns the repository r was forked from, or nil if r is not a
// fork. It fails with ErrCodeUnsupportedOnSummary on summaries, where the
// server does not send the parent and nil would be ambiguous.
// The parent itself is a summary.
func (r *Repository) Parent() (*Repository, error) {
	if err := r.wired("Parent"); err != nil {
		return nil, err
	}
	if !r.detailed {
		return nil, newUnsupportedOnSummaryError("repository", "Parent", r.FullName())
	}
	return newRepository(r.client, r.data.Parent, false), nil
}

// Data returns a deep copy of the underlying repository data.
func (r *Repository) Data() RepositoryData {
	return *r.d().clone()
}

// Key returns the identifying key of r.
func (r *Repository) Key() RepositoryKey {
	return RepositoryKey{Owner: r.OwnerLogin(), Name: r.Name()}
}

// Equal reports whether r and other describe the same repository.
func (r *Repository) Equal(other *Repository) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Key() == other.Key()
}

// String returns "owner/name".
func (r *Repository) String() string {
	return r.Key().String()
}

func (r *Repository) values() urltemplate.Values {
	return urltemplate.Values{"owner": r.OwnerLogin(), "repo": r.Name()}
}

func (r *Repository) valuesWith(key, value string) urltemplate.Values {
	v := r.values()
	v[key] = value
	return v
}

// Refresh fetches r again from the single-repository endpoint and returns
// a new, detailed Repository. r itself is not modified.
// Returns nil if the repository no longer exists.
func (r *Repository) Refresh(ctx context.Context) (*Repository, error) {
	if err := r.wired("Refresh"); err != nil {
		return nil, err
	}
	return r.client.GetRepository(ctx, r.OwnerLogin(), r.Name())
}

// DefaultBranchName asks the server for the name of the default branch.
// Returns an empty string if the repository does not exist.
func (r *Repository) DefaultBranchName(ctx context.Context) (string, error) {
	repo, err := r.Refresh(ctx)
	if err != nil || repo == nil {
		return "", err
	}
	return repo.DefaultBranch(), nil
}

// CreateFork forks the repository into the authenticated user's account.
// Forking is asynchronous on the server; the returned repository is a
// summary and may not be ready for git operations yet.
func (r *Repository) CreateFork(ctx context.Context) (*Repository, error) {
	if err := r.wired("CreateFork"); err != nil {
		return nil, err
	}

	data, err := fetch[RepositoryData](ctx, r.client.dispatcher, request{
		method: http.MethodPost,
		tmpl:   pathRepositoryForks,
		values: r.values(),
	})
	if err != nil {
		return nil, err
	}
	return newRepository(r.client, data, false), nil
}

// Branches lists the branches of the repository (first page).
func (r *Repository) Branches(ctx context.Context, opts ...ListOption) ([]*Branch, error) {
	if err := r.wired("Branches"); err != nil {
		return nil, err
	}

	list, err := fetchList[BranchData](ctx, r.client.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepositoryBranches,
		values: r.values(),
		query:  buildListOptions(opts),
	})
	if err != nil || list == nil {
		return nil, err
	}

	branches := make([]*Branch, len(list))
	for i, data := range list {
		branches[i] = newBranch(r.client, data, r)
	}
	return branches, nil
}

// PullRequests lists pull requests, open ones by default.
//
// Example:
//
//	prs, err := repo.PullRequests(ctx,
//	    hub.WithPRState(hub.StateAll),
//	    hub.WithBase("main"),
//	)
func (r *Repository) PullRequests(ctx context.Context, opts ...PRFilterOption) ([]*PullRequest, error) {
	if err := r.wired("PullRequests"); err != nil {
		return nil, err
	}

	listOpts := ListPullRequestsOptions{
		State: StateOpen,
	}
	for _, opt := range opts {
		opt(&listOpts)
	}

	list, err := fetchList[PullRequestData](ctx, r.client.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepositoryPulls,
		values: r.values(),
		query:  listOpts,
	})
	if err != nil || list == nil {
		return nil, err
	}

	prs := make([]*PullRequest, len(list))
	for i, data := range list {
		prs[i] = newPullRequest(r.client, data, r)
	}
	return prs, nil
}

// GetPullRequest fetches a pull request by number.
// Returns nil if it does not exist.
func (r *Repository) GetPullRequest(ctx context.Context, number int) (*PullRequest, error) {
	if err := r.wired("GetPullRequest"); err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, newInvalidInputError("pull request number", "must be positive")
	}

	data, err := fetch[PullRequestData](ctx, r.client.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepositoryPull,
		values: r.valuesWith("pull", strconv.Itoa(number)),
	})
	if err != nil {
		return nil, err
	}
	return newPullRequest(r.client, data, r), nil
}

// CreatePullRequest opens a pull request against this repository.
//
// Example:
//
//	pr, err := repo.CreatePullRequest(ctx, hub.CreatePullRequestOptions{
//	    Title: "Add new feature",
//	    Head:  "octo:feature",
//	    Base:  "main",
//	})
func (r *Repository) CreatePullRequest(ctx context.Context, opts CreatePullRequestOptions) (*PullRequest, error) {
	if err := r.wired("CreatePullRequest"); err != nil {
		return nil, err
	}
	switch {
	case opts.Title == "":
		return nil, newInvalidInputError("title", "cannot be empty")
	case opts.Head == "":
		return nil, newInvalidInputError("head", "cannot be empty")
	case opts.Base == "":
		return nil, newInvalidInputError("base", "cannot be empty")
	}

	data, err := fetch[PullRequestData](ctx, r.client.dispatcher, request{
		method: http.MethodPost,
		tmpl:   pathRepositoryPulls,
		values: r.values(),
		body:   opts,
	})
	if err != nil {
		return nil, err
	}
	return newPullRequest(r.client, data, r), nil
}

// GetRef fetches a git reference such as "heads/main" or "tags/v1.0.0".
// A leading "refs/" is accepted. Returns nil if the reference does not exist.
func (r *Repository) GetRef(ctx context.Context, ref string) (*Ref, error) {
	if err := r.wired("GetRef"); err != nil {
		return nil, err
	}
	ref = strings.TrimPrefix(ref, "refs/")
	if ref == "" {
		return nil, newInvalidInputError("ref", "cannot be empty")
	}

	data, err := fetch[RefData](ctx, r.client.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepositoryRef,
		values: r.valuesWith("ref", ref),
	})
	if err != nil {
		return nil, err
	}
	return newRef(r.client, data, r), nil
}

// CreateIssue opens an issue.
//
// Example:
//
//	issue, err := repo.CreateIssue(ctx, "Bug title", "Description",
//	    hub.WithLabels("bug"),
//	)
func (r *Repository) CreateIssue(ctx context.Context, title, body string, opts ...IssueOption) (*Issue, error) {
	if err := r.wired("CreateIssue"); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, newInvalidInputError("title", "cannot be empty")
	}

	createOpts := CreateIssueOptions{
		Title: title,
		Body:  body,
	}
	for _, opt := range opts {
		opt(&createOpts)
	}

	data, err := fetch[IssueData](ctx, r.client.dispatcher, request{
		method: http.MethodPost,
		tmpl:   pathRepositoryIssues,
		values: r.values(),
		body:   createOpts,
	})
	if err != nil {
		return nil, err
	}
	return newIssue(r.client, data, r), nil
}

// GetIssue fetches an issue by number.
// Returns nil if it does not exist.
func (r *Repository) GetIssue(ctx context.Context, number int) (*Issue, error) {
	if err := r.wired("GetIssue"); err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, newInvalidInputError("issue number", "must be positive")
	}

	data, err := fetch[IssueData](ctx, r.client.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepositoryIssue,
		values: r.valuesWith("issue", strconv.Itoa(number)),
	})
	if err != nil {
		return nil, err
	}
	return newIssue(r.client, data, r), nil
}

// Issues lists issues, open ones by default. The API includes pull
// requests in this list.
func (r *Repository) Issues(ctx context.Context, opts ...IssueFilterOption) ([]*Issue, error) {
	if err := r.wired("Issues"); err != nil {
		return nil, err
	}

	listOpts := ListIssuesOptions{
		State: StateOpen,
	}
	for _, opt := range opts {
		opt(&listOpts)
	}

	list, err := fetchList[IssueData](ctx, r.client.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepositoryIssues,
		values: r.values(),
		query:  listOpts,
	})
	if err != nil || list == nil {
		return nil, err
	}

	issues := make([]*Issue, len(list))
	for i, data := range list {
		issues[i] = newIssue(r.client, data, r)
	}
	return issues, nil
}

// issueComments lists the conversation comments of an issue or pull request.
func (r *Repository) issueComments(ctx context.Context, number int) ([]*Comment, error) {
	list, err := fetchList[CommentData](ctx, r.client.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepositoryIssueComments,
		values: r.valuesWith("issue", strconv.Itoa(number)),
	})
	if err != nil || list == nil {
		return nil, err
	}

	comments := make([]*Comment, len(list))
	for i, data := range list {
		comments[i] = newComment(r.client, data, r, number)
	}
	return comments, nil
}

// createIssueComment comments on an issue or pull request.
func (r *Repository) createIssueComment(ctx context.Context, number int, body string) (*Comment, error) {
	if body == "" {
		return nil, newInvalidInputError("comment body", "cannot be empty")
	}

	data, err := fetch[CommentData](ctx, r.client.dispatcher, request{
		method: http.MethodPost,
		tmpl:   pathRepositoryIssueComments,
		values: r.valuesWith("issue", strconv.Itoa(number)),
		body:   createCommentRequest{Body: body},
	})
	if err != nil {
		return nil, err
	}
	return newComment(r.client, data, r, number), nil
}
