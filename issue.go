package hub

import (
	"context"
	"strconv"
)

// Issue represents an issue.
//
// Issue instances come from a Repository:
//
//	issue, err := repo.CreateIssue(ctx, "Bug title", "Description",
//	    hub.WithLabels("bug"),
//	)
type Issue struct {
	client     *Client
	data       *IssueData
	repository *Repository
}

// IssueKey identifies an issue.
type IssueKey struct {
	Repository RepositoryKey
	Number     int
}

func newIssue(c *Client, data *IssueData, repo *Repository) *Issue {
	if data == nil {
		return nil
	}
	return &Issue{client: c, data: data, repository: repo}
}

var emptyIssueData IssueData

func (i *Issue) d() *IssueData {
	if i == nil || i.data == nil {
		return &emptyIssueData
	}
	return i.data
}

func (i *Issue) wired(operation string) error {
	if i == nil || i.client == nil || i.data == nil || i.repository == nil {
		return newNotWiredError("issue", operation)
	}
	return nil
}

// Client returns the client i was fetched with, or nil.
func (i *Issue) Client() *Client {
	if i == nil {
		return nil
	}
	return i.client
}

// Repository returns the repository i was fetched from.
func (i *Issue) Repository() *Repository {
	if i == nil {
		return nil
	}
	return i.repository
}

// Number returns the issue number.
func (i *Issue) Number() int {
	return i.d().Number
}

// Title returns the issue title.
func (i *Issue) Title() string {
	return i.d().Title
}

// Body returns the issue body.
func (i *Issue) Body() string {
	return i.d().Body
}

// State returns the issue state ("open" or "closed").
func (i *Issue) State() string {
	return i.d().State
}

// User returns the author of the issue.
func (i *Issue) User() *User {
	if i == nil {
		return nil
	}
	return newUser(i.client, i.d().User)
}

// Labels returns the label names.
func (i *Issue) Labels() []string {
	labels := make([]string, len(i.d().Labels))
	for n, label := range i.d().Labels {
		labels[n] = label.Name
	}
	return labels
}

// HTMLURL returns the URL of the issue page.
func (i *Issue) HTMLURL() string {
	return i.d().HTMLURL
}

// Data returns a deep copy of the underlying issue data.
func (i *Issue) Data() IssueData {
	return *i.d().clone()
}

// Key returns the identifying key of i.
func (i *Issue) Key() IssueKey {
	var repo RepositoryKey
	if i != nil && i.repository != nil {
		repo = i.repository.Key()
	}
	return IssueKey{Repository: repo, Number: i.Number()}
}

// Equal reports whether i and other are the same issue.
func (i *Issue) Equal(other *Issue) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.Key() == other.Key()
}

// String returns "owner/name#number".
func (i *Issue) String() string {
	return i.Key().Repository.String() + "#" + strconv.Itoa(i.Number())
}

// Comments lists the comments of the issue.
func (i *Issue) Comments(ctx context.Context) ([]*Comment, error) {
	if err := i.wired("Comments"); err != nil {
		return nil, err
	}
	return i.repository.issueComments(ctx, i.Number())
}

// CreateComment adds a comment to the issue.
func (i *Issue) CreateComment(ctx context.Context, body string) (*Comment, error) {
	if err := i.wired("CreateComment"); err != nil {
		return nil, err
	}
	return i.repository.createIssueComment(ctx, i.Number(), body)
}
