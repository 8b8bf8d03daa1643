package repositories

import "context"

// RepositoryMetadata fetches public metadata about a hosted source code
// repository.
type RepositoryMetadata interface {
	// FetchReadme returns the decoded README body for owner/repo.
	FetchReadme(ctx context.Context, owner, repo string) (string, error)
}
