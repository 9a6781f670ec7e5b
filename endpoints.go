package hub

// Path templates, expanded by internal/urltemplate.
const (
	pathRepository              = "/repos/{owner}/{repo}"
	pathRepositoryBranches      = "/repos/{owner}/{repo}/branches"
	pathRepositoryForks         = "/repos/{owner}/{repo}/forks"
	pathRepositoryPulls         = "/repos/{owner}/{repo}/pulls"
	pathRepositoryPull          = "/repos/{owner}/{repo}/pulls/{pull}"
	pathRepositoryPullCommits   = "/repos/{owner}/{repo}/pulls/{pull}/commits"
	pathRepositoryRef           = "/repos/{owner}/{repo}/git/refs/{ref}"
	pathRepositoryIssues        = "/repos/{owner}/{repo}/issues"
	pathRepositoryIssue         = "/repos/{owner}/{repo}/issues/{issue}"
	pathRepositoryIssueComments = "/repos/{owner}/{repo}/issues/{issue}/comments"

	pathUser                     = "/users/{user}"
	pathUserRepositories         = "/users/{user}/repos"
	pathCurrentUser              = "/user"
	pathCurrentUserRepositories  = "/user/repos"
	pathOrganization             = "/orgs/{org}"
	pathOrganizationRepositories = "/orgs/{org}/repos"
	pathSearchRepositories       = "/search/repositories"
)
