package hub

// Commit is a commit as listed on a pull request.
type Commit struct {
	client      *Client
	data        *CommitData
	pullRequest *PullRequest
}

// CommitKey identifies a commit within a repository.
type CommitKey struct {
	Repository RepositoryKey
	SHA        string
}

func newCommit(c *Client, data *CommitData, pr *PullRequest) *Commit {
	if data == nil {
		return nil
	}
	return &Commit{client: c, data: data, pullRequest: pr}
}

var emptyCommitData CommitData

func (c *Commit) d() *CommitData {
	if c == nil || c.data == nil {
		return &emptyCommitData
	}
	return c.data
}

// Client returns the client c was fetched with, or nil.
func (c *Commit) Client() *Client {
	if c == nil {
		return nil
	}
	return c.client
}

// PullRequest returns the pull request c was listed on.
func (c *Commit) PullRequest() *PullRequest {
	if c == nil {
		return nil
	}
	return c.pullRequest
}

// SHA returns the commit SHA.
func (c *Commit) SHA() string {
	return c.d().SHA
}

// Message returns the commit message.
func (c *Commit) Message() string {
	return c.d().Commit.Message
}

// GitAuthor returns the git author recorded in the commit.
func (c *Commit) GitAuthor() CommitAuthor {
	return c.d().Commit.Author
}

// Author returns the GitHub account matching the git author, or nil when
// the author email is not linked to an account.
func (c *Commit) Author() *User {
	if c == nil {
		return nil
	}
	return newUser(c.client, c.d().Author)
}

// HTMLURL returns the URL of the commit page.
func (c *Commit) HTMLURL() string {
	return c.d().HTMLURL
}

// Data returns a deep copy of the underlying commit data.
func (c *Commit) Data() CommitData {
	return *c.d().clone()
}

// Key returns the identifying key of c.
func (c *Commit) Key() CommitKey {
	var repo RepositoryKey
	if c != nil && c.pullRequest != nil {
		repo = c.pullRequest.repositoryKey()
	}
	return CommitKey{Repository: repo, SHA: c.SHA()}
}

// Equal reports whether c and other are the same commit.
func (c *Commit) Equal(other *Commit) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Key() == other.Key()
}

// String returns the commit SHA.
func (c *Commit) String() string {
	return c.SHA()
}
