package hub

import "context"

// Ref is a git reference such as "refs/heads/main".
type Ref struct {
	client     *Client
	data       *RefData
	repository *Repository
}

// RefKey identifies a reference.
type RefKey struct {
	Repository RepositoryKey
	Name       string
}

func newRef(c *Client, data *RefData, repo *Repository) *Ref {
	if data == nil {
		return nil
	}
	return &Ref{client: c, data: data, repository: repo}
}

var emptyRefData RefData

func (r *Ref) d() *RefData {
	if r == nil || r.data == nil {
		return &emptyRefData
	}
	return r.data
}

// Client returns the client r was fetched with, or nil.
func (r *Ref) Client() *Client {
	if r == nil {
		return nil
	}
	return r.client
}

// Repository returns the repository r belongs to.
func (r *Ref) Repository() *Repository {
	if r == nil {
		return nil
	}
	return r.repository
}

// Name returns the full reference name, e.g. "refs/heads/main".
func (r *Ref) Name() string {
	return r.d().Ref
}

// URL returns the API URL of the reference.
func (r *Ref) URL() string {
	return r.d().URL
}

// Object returns the object the reference points to.
func (r *Ref) Object() RefObject {
	return r.d().Object
}

// SHA returns the SHA of the object the reference points to.
func (r *Ref) SHA() string {
	return r.d().Object.SHA
}

// Data returns a copy of the underlying reference data.
func (r *Ref) Data() RefData {
	return *r.d()
}

// Key returns the identifying key of r.
func (r *Ref) Key() RefKey {
	var repo RepositoryKey
	if r != nil && r.repository != nil {
		repo = r.repository.Key()
	}
	return RefKey{Repository: repo, Name: r.Name()}
}

// Equal reports whether r and other name the same reference.
func (r *Ref) Equal(other *Ref) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Key() == other.Key()
}

// String returns the full reference name.
func (r *Ref) String() string {
	return r.Name()
}

// Refresh fetches the reference again and returns a new Ref.
// Returns nil if the reference no longer exists.
func (r *Ref) Refresh(ctx context.Context) (*Ref, error) {
	if r == nil || r.client == nil || r.data == nil || r.repository == nil {
		return nil, newNotWiredError("ref", "Refresh")
	}
	return r.repository.GetRef(ctx, r.Name())
}
