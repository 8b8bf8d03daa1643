package github

import (
	"context"

	"github.com/castwave/castwave/domain/repositories"
)

// MockRepositoryMetadata serves a canned README for tests.
type MockRepositoryMetadata struct {
	Readme string
	Err    error
	Calls  []string
}

var _ repositories.RepositoryMetadata = (*MockRepositoryMetadata)(nil)

// FetchReadme implements repositories.RepositoryMetadata
func (m *MockRepositoryMetadata) FetchReadme(ctx context.Context, owner, repo string) (string, error) {
	m.Calls = append(m.Calls, owner+"/"+repo)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Readme, nil
}
