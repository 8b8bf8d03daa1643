// Package github fetches repository metadata used to seed script
// generation prompts.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/castwave/castwave/domain/repositories"
)

// Config holds settings for the GitHub REST client. The token is
// optional; unauthenticated requests work within GitHub's rate limits.
type Config struct {
	BaseURL string        `env:"GITHUB_API_BASE_URL" envDefault:"https://api.github.com"`
	Token   string        `env:"GITHUB_TOKEN"`
	Timeout time.Duration `env:"GITHUB_TIMEOUT" envDefault:"15s"`
}

// NewConfigFromEnv creates a Config from environment variables
func NewConfigFromEnv() (Config, error) {
	config, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing github environment: %w", err)
	}
	return config, nil
}

// Client implements the RepositoryMetadata interface against the GitHub
// REST API.
type Client struct {
	config Config
	client *http.Client
	logger *zap.Logger
}

// Ensure Client implements the RepositoryMetadata interface
var _ repositories.RepositoryMetadata = (*Client)(nil)

// NewClient creates a new GitHub metadata client
func NewClient(config Config, logger *zap.Logger) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("github API base URL is required")
	}
	if config.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", config.Timeout)
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}, nil
}

// readmeResponse is the subset of the GitHub readme payload in use.
type readmeResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// FetchReadme returns the decoded README body for owner/repo.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.config.BaseURL, owner, repo)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.config.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("github API returned %d: %s", resp.StatusCode, string(errorBody))
	}

	var readme readmeResponse
	if err := json.NewDecoder(resp.Body).Decode(&readme); err != nil {
		return "", fmt.Errorf("failed to decode readme response: %w", err)
	}

	// GitHub wraps the base64 payload with newlines, which the strict
	// stdlib decoder rejects.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(readme.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("failed to decode readme content: %w", err)
	}

	c.logger.Info("Fetched repository readme",
		zap.String("owner", owner),
		zap.String("repo", repo),
		zap.Int("readme_length", len(decoded)))

	return string(decoded), nil
}
