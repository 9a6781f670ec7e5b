package hub

import (
	"context"
	"net/http"
	"strconv"
)

// PullRequest represents a pull request.
//
// PullRequest instances come from a Repository:
//
//	pr, err := repo.CreatePullRequest(ctx, hub.CreatePullRequestOptions{
//	    Title: "Add new feature",
//	    Body:  "Description of changes",
//	    Head:  "octo:feature",
//	    Base:  "main",
//	})
//
// Or by retrieving existing pull requests:
//
//	prs, err := repo.PullRequests(ctx, hub.WithPRState("open"))
//	for _, pr := range prs {
//	    fmt.Println(pr.Title())
//	}
type PullRequest struct {
	client     *Client
	data       *PullRequestData
	repository *Repository
}

// PullRequestKey identifies a pull request.
type PullRequestKey struct {
	Repository RepositoryKey
	Number     int
}

func newPullRequest(c *Client, data *PullRequestData, repo *Repository) *PullRequest {
	if data == nil {
		return nil
	}
	return &PullRequest{client: c, data: data, repository: repo}
}

var emptyPullRequestData PullRequestData

func (pr *PullRequest) d() *PullRequestData {
	if pr == nil || pr.data == nil {
		return &emptyPullRequestData
	}
	return pr.data
}

func (pr *PullRequest) wired(operation string) error {
	if pr == nil || pr.client == nil || pr.data == nil || pr.repository == nil {
		return newNotWiredError("pull request", operation)
	}
	return nil
}

// Client returns the client pr was fetched with, or nil.
func (pr *PullRequest) Client() *Client {
	if pr == nil {
		return nil
	}
	return pr.client
}

// Repository returns the repository pr was fetched from.
func (pr *PullRequest) Repository() *Repository {
	if pr == nil {
		return nil
	}
	return pr.repository
}

// Number returns the pull request number.
func (pr *PullRequest) Number() int {
	return pr.d().Number
}

// Title returns the pull request title.
func (pr *PullRequest) Title() string {
	return pr.d().Title
}

// Body returns the pull request description.
func (pr *PullRequest) Body() string {
	return pr.d().Body
}

// State returns the pull request state ("open" or "closed").
func (pr *PullRequest) State() string {
	return pr.d().State
}

// User returns the author of the pull request.
func (pr *PullRequest) User() *User {
	if pr == nil {
		return nil
	}
	return newUser(pr.client, pr.d().User)
}

// Head returns the branch holding the changes.
func (pr *PullRequest) Head() PullRequestBranch {
	return pr.d().Head.clone()
}

// Base returns the branch the changes merge into.
func (pr *PullRequest) Base() PullRequestBranch {
	return pr.d().Base.clone()
}

// IsDraft returns true if the pull request is a draft.
func (pr *PullRequest) IsDraft() bool {
	return pr.d().Draft
}

// IsMerged returns true if the pull request has been merged.
// List endpoints do not send this field; check MergedAt there.
func (pr *PullRequest) IsMerged() bool {
	return pr.d().Merged || pr.d().MergedAt != nil
}

// IsOpen returns true if the pull request is open.
func (pr *PullRequest) IsOpen() bool {
	return pr.d().State == StateOpen
}

// HTMLURL returns the URL of the pull request page.
func (pr *PullRequest) HTMLURL() string {
	return pr.d().HTMLURL
}

// Data returns a deep copy of the underlying pull request data.
func (pr *PullRequest) Data() PullRequestData {
	return *pr.d().clone()
}

// Key returns the identifying key of pr.
func (pr *PullRequest) Key() PullRequestKey {
	return PullRequestKey{Repository: pr.repositoryKey(), Number: pr.Number()}
}

func (pr *PullRequest) repositoryKey() RepositoryKey {
	if pr == nil || pr.repository == nil {
		return RepositoryKey{}
	}
	return pr.repository.Key()
}

// Equal reports whether pr and other are the same pull request.
func (pr *PullRequest) Equal(other *PullRequest) bool {
	if pr == nil || other == nil {
		return pr == other
	}
	return pr.Key() == other.Key()
}

// String returns "owner/name#number".
func (pr *PullRequest) String() string {
	return pr.repositoryKey().String() + "#" + strconv.Itoa(pr.Number())
}

// Issue fetches the issue view of the pull request, which carries labels
// and assignees. Returns nil if it no longer exists.
func (pr *PullRequest) Issue(ctx context.Context) (*Issue, error) {
	if err := pr.wired("Issue"); err != nil {
		return nil, err
	}
	return pr.repository.GetIssue(ctx, pr.Number())
}

// Comments lists the conversation comments of the pull request.
func (pr *PullRequest) Comments(ctx context.Context) ([]*Comment, error) {
	if err := pr.wired("Comments"); err != nil {
		return nil, err
	}
	return pr.repository.issueComments(ctx, pr.Number())
}

// CreateComment adds a conversation comment to the pull request.
func (pr *PullRequest) CreateComment(ctx context.Context, body string) (*Comment, error) {
	if err := pr.wired("CreateComment"); err != nil {
		return nil, err
	}
	return pr.repository.createIssueComment(ctx, pr.Number(), body)
}

// Commits lists the commits of the pull request (first page).
func (pr *PullRequest) Commits(ctx context.Context) ([]*Commit, error) {
	if err := pr.wired("Commits"); err != nil {
		return nil, err
	}

	list, err := fetchList[CommitData](ctx, pr.client.dispatcher, request{
		method: http.MethodGet,
		tmpl:   pathRepositoryPullCommits,
		values: pr.repository.valuesWith("pull", strconv.Itoa(pr.Number())),
	})
	if err != nil || list == nil {
		return nil, err
	}

	commits := make([]*Commit, len(list))
	for i, data := range list {
		commits[i] = newCommit(pr.client, data, pr)
	}
	return commits, nil
}
