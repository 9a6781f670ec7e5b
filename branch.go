package hub

import "context"

// Branch is a branch as listed by Repository.Branches.
type Branch struct {
	client     *Client
	data       BranchData
	repository *Repository
}

// BranchKey identifies a branch by name and head commit.
type BranchKey struct {
	Name string
	SHA  string
}

// NewBranch returns a detached Branch, useful for comparisons with Equal.
// It has no client, so Ref fails with ErrCodeNotWired.
func NewBranch(name, sha string) *Branch {
	return &Branch{data: BranchData{Name: name, Commit: CommitPointer{SHA: sha}}}
}

func newBranch(c *Client, data *BranchData, repo *Repository) *Branch {
	if data == nil {
		return nil
	}
	return &Branch{client: c, data: *data, repository: repo}
}

// Client returns the client b was fetched with, or nil.
func (b *Branch) Client() *Client {
	if b == nil {
		return nil
	}
	return b.client
}

// Repository returns the repository b belongs to.
func (b *Branch) Repository() *Repository {
	if b == nil {
		return nil
	}
	return b.repository
}

// Name returns the branch name.
func (b *Branch) Name() string {
	if b == nil {
		return ""
	}
	return b.data.Name
}

// CommitSHA returns the SHA of the branch head.
func (b *Branch) CommitSHA() string {
	if b == nil {
		return ""
	}
	return b.data.Commit.SHA
}

// IsProtected returns true if branch protection is enabled.
func (b *Branch) IsProtected() bool {
	return b != nil && b.data.Protected
}

// Data returns a copy of the underlying branch data.
func (b *Branch) Data() BranchData {
	if b == nil {
		return BranchData{}
	}
	return b.data
}

// Key returns the identifying key of b.
func (b *Branch) Key() BranchKey {
	return BranchKey{Name: b.Name(), SHA: b.CommitSHA()}
}

// Equal reports whether b and other have the same name and head commit.
func (b *Branch) Equal(other *Branch) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Key() == other.Key()
}

// String returns the branch name.
func (b *Branch) String() string {
	return b.Name()
}

// Ref fetches the git reference of the branch ("refs/heads/<name>").
func (b *Branch) Ref(ctx context.Context) (*Ref, error) {
	if b == nil || b.client == nil || b.repository == nil {
		return nil, newNotWiredError("branch", "Ref")
	}
	return b.repository.GetRef(ctx, "heads/"+b.Name())
}
