package hub

import "time"

// The *Data types mirror the JSON documents returned by the REST API.
// Resource types (Repository, User, ...) wrap them and only expose them
// through read-only accessors.

// UserData contains user account information.
type UserData struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	Type      string `json:"type"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// OrganizationData contains organization information.
type OrganizationData struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
}

// RepositoryData contains repository information.
type RepositoryData struct {
	// Identification
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	FullName string    `json:"full_name"`
	Owner    *UserData `json:"owner"`

	// Only set for repositories owned by an organization.
	Organization *OrganizationData `json:"organization,omitempty"`

	// Metadata
	Description   string `json:"description"`
	Homepage      string `json:"homepage"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	ForksCount    int    `json:"forks_count"`
	Archived      bool   `json:"archived"`

	// URLs
	GitURL   string `json:"git_url"`
	SSHURL   string `json:"ssh_url"`
	CloneURL string `json:"clone_url"`
	HTMLURL  string `json:"html_url"`

	// Only sent by the single-repository endpoint, and only for forks.
	Parent *RepositoryData `json:"parent,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PullRequestBranch describes one side (head or base) of a pull request.
type PullRequestBranch struct {
	Label string          `json:"label"`
	Ref   string          `json:"ref"`
	SHA   string          `json:"sha"`
	Repo  *RepositoryData `json:"repo,omitempty"`
}

// PullRequestData contains pull request information.
type PullRequestData struct {
	// Identification
	ID     int64 `json:"id"`
	Number int   `json:"number"`

	// Content
	Title string `json:"title"`
	Body  string `json:"body"`

	// Branch information
	Head PullRequestBranch `json:"head"`
	Base PullRequestBranch `json:"base"`

	// State and metadata
	State  string    `json:"state"`
	User   *UserData `json:"user"`
	Draft  bool      `json:"draft"`
	Merged bool      `json:"merged"`

	// URL
	HTMLURL string `json:"html_url"`

	// Timestamps
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// LabelData contains label information.
type LabelData struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// IssueData contains issue information.
type IssueData struct {
	// Identification
	ID     int64 `json:"id"`
	Number int   `json:"number"`

	// Content
	Title string `json:"title"`
	Body  string `json:"body"`

	// State and metadata
	State     string      `json:"state"`
	User      *UserData   `json:"user"`
	Labels    []LabelData `json:"labels"`
	Assignees []*UserData `json:"assignees"`

	// URL
	HTMLURL string `json:"html_url"`

	// Timestamps
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// CommentData contains an issue or pull request conversation comment.
type CommentData struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	User      *UserData `json:"user"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommitPointer identifies a commit by SHA.
type CommitPointer struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}

// BranchData contains branch information as returned by the branch list.
type BranchData struct {
	Name      string        `json:"name"`
	Commit    CommitPointer `json:"commit"`
	Protected bool          `json:"protected"`
}

// RefObject is the git object a reference points to.
type RefObject struct {
	SHA  string `json:"sha"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// RefData contains git reference information.
type RefData struct {
	Ref    string    `json:"ref"`
	URL    string    `json:"url"`
	Object RefObject `json:"object"`
}

// CommitAuthor is the git author or committer of a commit.
type CommitAuthor struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// CommitDetail is the git-level part of a commit.
type CommitDetail struct {
	Message   string       `json:"message"`
	Author    CommitAuthor `json:"author"`
	Committer CommitAuthor `json:"committer"`
}

// CommitData contains commit information as listed on a pull request.
type CommitData struct {
	SHA     string       `json:"sha"`
	HTMLURL string       `json:"html_url"`
	Commit  CommitDetail `json:"commit"`
	Author  *UserData    `json:"author"`
}

// searchRepositoriesResult is the envelope of the repository search endpoint.
type searchRepositoriesResult struct {
	TotalCount        int               `json:"total_count"`
	IncompleteResults bool              `json:"incomplete_results"`
	Items             []*RepositoryData `json:"items"`
}

// State constants for issues and pull requests.
const (
	// StateOpen indicates an issue or pull request is open.
	StateOpen = "open"

	// StateClosed indicates an issue or pull request is closed.
	StateClosed = "closed"

	// StateAll is used for filtering to include all states.
	StateAll = "all"
)

// ListOptions selects a single page of a list endpoint.
// Zero values leave the server defaults in place.
type ListOptions struct {
	// Page is the page number (1-indexed)
	Page int `url:"page,omitempty"`

	// PerPage is the number of items per page
	PerPage int `url:"per_page,omitempty"`
}

// ListPullRequestsOptions contains options for listing pull requests.
type ListPullRequestsOptions struct {
	// State filters by pull request state ("open", "closed", "all")
	State string `url:"state,omitempty"`

	// Head filters by head branch (format: "user:ref-name")
	Head string `url:"head,omitempty"`

	// Base filters by base branch
	Base string `url:"base,omitempty"`

	ListOptions
}

// ListIssuesOptions contains options for listing issues.
type ListIssuesOptions struct {
	// State filters by issue state ("open", "closed", "all")
	State string `url:"state,omitempty"`

	// Labels filters by labels (all must match)
	Labels []string `url:"labels,comma,omitempty"`

	// Assignee filters by assignee login
	Assignee string `url:"assignee,omitempty"`

	ListOptions
}

type searchRepositoriesOptions struct {
	Query string `url:"q"`

	ListOptions
}

// CreatePullRequestOptions is the request body for creating a pull request.
type CreatePullRequestOptions struct {
	// Title is the pull request title (required)
	Title string `json:"title"`

	// Body is the pull request description
	Body string `json:"body,omitempty"`

	// Head is the branch holding the changes, e.g. "octo:new-feature" (required)
	Head string `json:"head"`

	// Base is the branch to merge into, e.g. "main" (required)
	Base string `json:"base"`

	// Draft creates the pull request as a draft
	Draft bool `json:"draft,omitempty"`

	// MaintainerCanModify allows maintainers of the base repository to push to head
	MaintainerCanModify bool `json:"maintainer_can_modify,omitempty"`
}

// CreateIssueOptions is the request body for creating an issue.
type CreateIssueOptions struct {
	// Title is the issue title (required)
	Title string `json:"title"`

	// Body is the issue description
	Body string `json:"body,omitempty"`

	// Labels is the list of labels to apply
	Labels []string `json:"labels,omitempty"`

	// Assignees is the list of logins to assign
	Assignees []string `json:"assignees,omitempty"`
}

type createCommentRequest struct {
	Body string `json:"body"`
}

// The clone methods return deep copies so that values handed out by Data
// and similar accessors share no pointers or slices with a resource.

func (d *UserData) clone() *UserData {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func (d *OrganizationData) clone() *OrganizationData {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func (d *RepositoryData) clone() *RepositoryData {
	if d == nil {
		return nil
	}
	c := *d
	c.Owner = d.Owner.clone()
	c.Organization = d.Organization.clone()
	c.Parent = d.Parent.clone()
	return &c
}

func (b PullRequestBranch) clone() PullRequestBranch {
	b.Repo = b.Repo.clone()
	return b
}

func (d *PullRequestData) clone() *PullRequestData {
	if d == nil {
		return nil
	}
	c := *d
	c.User = d.User.clone()
	c.Head = d.Head.clone()
	c.Base = d.Base.clone()
	c.MergedAt = cloneTime(d.MergedAt)
	c.ClosedAt = cloneTime(d.ClosedAt)
	return &c
}

func (d *IssueData) clone() *IssueData {
	if d == nil {
		return nil
	}
	c := *d
	c.User = d.User.clone()
	if d.Labels != nil {
		c.Labels = append([]LabelData(nil), d.Labels...)
	}
	if d.Assignees != nil {
		c.Assignees = make([]*UserData, len(d.Assignees))
		for i, u := range d.Assignees {
			c.Assignees[i] = u.clone()
		}
	}
	c.ClosedAt = cloneTime(d.ClosedAt)
	return &c
}

func (d *CommentData) clone() *CommentData {
	if d == nil {
		return nil
	}
	c := *d
	c.User = d.User.clone()
	return &c
}

func (d *CommitData) clone() *CommitData {
	if d == nil {
		return nil
	}
	c := *d
	c.Author = d.Author.clone()
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
