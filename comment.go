package hub

import "fmt"

// Comment is a conversation comment on an issue or pull request.
type Comment struct {
	client      *Client
	data        *CommentData
	repository  *Repository
	issueNumber int
}

func newComment(c *Client, data *CommentData, repo *Repository, issueNumber int) *Comment {
	if data == nil {
		return nil
	}
	return &Comment{client: c, data: data, repository: repo, issueNumber: issueNumber}
}

var emptyCommentData CommentData

func (c *Comment) d() *CommentData {
	if c == nil || c.data == nil {
		return &emptyCommentData
	}
	return c.data
}

// Client returns the client c was fetched with, or nil.
func (c *Comment) Client() *Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Repository returns the repository the comment belongs to.
func (c *Comment) Repository() *Repository {
	if c == nil {
		return nil
	}
	return c.repository
}

// IssueNumber returns the number of the issue or pull request commented on.
func (c *Comment) IssueNumber() int {
	if c == nil {
		return 0
	}
	return c.issueNumber
}

// ID returns the comment ID.
func (c *Comment) ID() int64 {
	return c.d().ID
}

// Body returns the comment text.
func (c *Comment) Body() string {
	return c.d().Body
}

// User returns the comment author.
func (c *Comment) User() *User {
	if c == nil {
		return nil
	}
	return newUser(c.client, c.d().User)
}

// HTMLURL returns the URL of the comment.
func (c *Comment) HTMLURL() string {
	return c.d().HTMLURL
}

// Data returns a deep copy of the underlying comment data.
func (c *Comment) Data() CommentData {
	return *c.d().clone()
}

// CommentKey identifies a comment.
type CommentKey struct {
	Repository RepositoryKey
	ID         int64
}

// Key returns the identifying key of c.
func (c *Comment) Key() CommentKey {
	var repo RepositoryKey
	if c != nil && c.repository != nil {
		repo = c.repository.Key()
	}
	return CommentKey{Repository: repo, ID: c.ID()}
}

// Equal reports whether c and other are the same comment.
func (c *Comment) Equal(other *Comment) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Key() == other.Key()
}

// String returns "owner/name#number (comment id)".
func (c *Comment) String() string {
	return fmt.Sprintf("%s#%d (comment %d)", c.Key().Repository, c.IssueNumber(), c.ID())
}
