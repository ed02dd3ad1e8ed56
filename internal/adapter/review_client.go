package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	m "gooze.dev/pkg/goozereport/internal/model"
)

// DefaultGitHubURL is the public GitHub REST endpoint.
const DefaultGitHubURL = "https://api.github.com"

const (
	commentsPerPage = 100
	maxErrorBody    = 512
)

// ReviewClient is the capability the comment reconciler needs from a code
// review system.
type ReviewClient interface {
	Self(ctx context.Context) (m.Identity, error)
	ListComments(ctx context.Context, thread m.Thread) ([]m.RemoteComment, error)
	DeleteComment(ctx context.Context, thread m.Thread, id int64) error
	CreateComment(ctx context.Context, thread m.Thread, body string) (m.RemoteComment, error)
}

// ReviewClientFactory builds a client for a remote target. Clients are only
// created when a unit actually needs to post.
type ReviewClientFactory func(target m.RemoteTarget) (ReviewClient, error)

// RetryPolicy configures retries of failed review API calls.
type RetryPolicy struct {
	MaxAttempts   int // total tries, the first one included
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	RetryOnStatus []int
}

// DefaultRetryPolicy retries rate limiting and transient gateway errors.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   3,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2,
		RetryOnStatus: []int{http.StatusTooManyRequests, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout},
	}
}

// GitHubClient talks to the GitHub issues comments API. Pull request
// conversation comments are issue comments.
type GitHubClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retry      RetryPolicy
}

// NewGitHubClient creates a GitHub client for target. A base URL without a
// scheme is assumed to be https.
func NewGitHubClient(target m.RemoteTarget, timeout time.Duration, retry RetryPolicy) (*GitHubClient, error) {
	base := strings.TrimSpace(target.BaseURL)
	if base == "" {
		base = DefaultGitHubURL
	}

	if !strings.Contains(base, "://") {
		base = "https://" + base
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid review api url %q: %w", target.BaseURL, err)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid review api url %q: missing host", target.BaseURL)
	}

	return &GitHubClient{
		baseURL:    strings.TrimRight(parsed.String(), "/"),
		token:      target.Token,
		httpClient: &http.Client{Timeout: timeout},
		retry:      retry,
	}, nil
}

// NewGitHubClientFactory returns a ReviewClientFactory producing GitHub clients.
func NewGitHubClientFactory(timeout time.Duration, retry RetryPolicy) ReviewClientFactory {
	return func(target m.RemoteTarget) (ReviewClient, error) {
		return NewGitHubClient(target, timeout, retry)
	}
}

type githubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

type githubComment struct {
	ID        int64      `json:"id"`
	Body      string     `json:"body"`
	User      githubUser `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

func (c githubComment) toModel() m.RemoteComment {
	return m.RemoteComment{
		ID:        c.ID,
		Author:    m.Identity{ID: c.User.ID, Login: c.User.Login},
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

// Self returns the identity owning the token.
func (c *GitHubClient) Self(ctx context.Context) (m.Identity, error) {
	var user githubUser
	if err := c.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return m.Identity{}, err
	}

	return m.Identity{ID: user.ID, Login: user.Login}, nil
}

// ListComments returns every comment of the thread, following pagination.
func (c *GitHubClient) ListComments(ctx context.Context, thread m.Thread) ([]m.RemoteComment, error) {
	var comments []m.RemoteComment

	for page := 1; ; page++ {
		path := fmt.Sprintf("%s/issues/%d/comments?per_page=%d&page=%d",
			repoPath(thread.Repo), thread.Number, commentsPerPage, page)

		var batch []githubComment
		if err := c.do(ctx, http.MethodGet, path, nil, &batch); err != nil {
			return nil, err
		}

		for _, comment := range batch {
			comments = append(comments, comment.toModel())
		}

		if len(batch) < commentsPerPage {
			break
		}
	}

	slog.Debug("Listed review comments", "repo", thread.Repo, "number", thread.Number, "count", len(comments))

	return comments, nil
}

// DeleteComment removes a comment by id.
func (c *GitHubClient) DeleteComment(ctx context.Context, thread m.Thread, id int64) error {
	path := fmt.Sprintf("%s/issues/comments/%d", repoPath(thread.Repo), id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// CreateComment posts a new comment to the thread.
func (c *GitHubClient) CreateComment(ctx context.Context, thread m.Thread, body string) (m.RemoteComment, error) {
	path := fmt.Sprintf("%s/issues/%d/comments", repoPath(thread.Repo), thread.Number)

	var created githubComment
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"body": body}, &created); err != nil {
		return m.RemoteComment{}, err
	}

	return created.toModel(), nil
}

func repoPath(repo string) string {
	parts := strings.SplitN(strings.Trim(repo, "/"), "/", 2)
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}

	return "/repos/" + strings.Join(parts, "/")
}

// APIError is a non-success response of the review API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("review api error (status %d): %s", e.StatusCode, e.Body)
}

func (c *GitHubClient) do(ctx context.Context, method, path string, body, result any) error {
	var lastErr error

	attempts := max(c.retry.MaxAttempts, 1)

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt)
			slog.Warn("Retrying review api request", "method", method, "path", path,
				"attempt", attempt+1, "delay", delay)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.doOnce(ctx, method, path, body, result)
		if err == nil {
			return nil
		}

		lastErr = err
		if !c.shouldRetry(err) {
			break
		}
	}

	return lastErr
}

func (c *GitHubClient) doOnce(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *GitHubClient) backoff(attempt int) time.Duration {
	delay := float64(c.retry.InitialDelay)
	for i := 1; i < attempt; i++ {
		delay *= c.retry.BackoffFactor
	}

	if c.retry.MaxDelay > 0 && delay > float64(c.retry.MaxDelay) {
		delay = float64(c.retry.MaxDelay)
	}

	return time.Duration(delay)
}

func (c *GitHubClient) shouldRetry(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	for _, code := range c.retry.RetryOnStatus {
		if apiErr.StatusCode == code {
			return true
		}
	}

	return false
}

// StatusText is a short human readable form of an API error status.
func StatusText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode) + " " + http.StatusText(apiErr.StatusCode)
	}

	return ""
}
