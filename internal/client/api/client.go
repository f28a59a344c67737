package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/mddlabs/mddctl/internal/client/storage"
	"github.com/mddlabs/mddctl/pkg/api"
)

// Client is the HTTP client for the MDD backend. The session travels in a
// cookie set by the server on login; the jar attaches it to every request.
// The client never handles bearer tokens.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// APIError carries the server's error payload so callers can render the
// server message (e.g. a duplicate-email notice) instead of a generic line.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Option configures the client.
type Option func(*clientOptions)

type clientOptions struct {
	sessions storage.SessionStorage
}

// WithSessionStorage persists the session cookies in store and resumes a
// stored session on construction, so the login survives across process runs.
func WithSessionStorage(store storage.SessionStorage) Option {
	return func(o *clientOptions) {
		o.sessions = store
	}
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	var options clientOptions
	for _, opt := range opts {
		opt(&options)
	}

	var jar http.CookieJar
	if options.sessions != nil {
		base, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		jar, err = newPersistentJar(base, options.sessions)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// Login authenticates and lets the server set the session cookie.
// The response body is informational only.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new account. The user still has to log in afterwards.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", req, nil); err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	return nil
}

// Logout clears the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Me probes the session. Responds with the current user when the cookie is
// valid and 401 otherwise; anonymous visitors are expected to fail here.
func (c *Client) Me(ctx context.Context) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// ListArticles fetches articles ordered by creation date.
func (c *Client) ListArticles(ctx context.Context, sort api.ArticleSort) ([]api.ArticleResponse, error) {
	var resp []api.ArticleResponse
	path := "/api/articles?sort=" + url.QueryEscape(string(sort))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list articles request failed: %w", err)
	}
	return resp, nil
}

// GetArticle fetches a single article with its comments.
func (c *Client) GetArticle(ctx context.Context, id string) (*api.ArticleResponse, error) {
	var resp api.ArticleResponse
	path := "/api/articles/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get article request failed: %w", err)
	}
	return &resp, nil
}

// CreateArticle publishes a new article.
func (c *Client) CreateArticle(ctx context.Context, req api.CreateArticleRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/articles", req, nil); err != nil {
		return fmt.Errorf("create article request failed: %w", err)
	}
	return nil
}

// ListTopics fetches all topics.
func (c *Client) ListTopics(ctx context.Context) ([]api.TopicResponse, error) {
	var resp []api.TopicResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/topics", nil, &resp); err != nil {
		return nil, fmt.Errorf("list topics request failed: %w", err)
	}
	return resp, nil
}

// Subscribe subscribes the current user to a topic.
func (c *Client) Subscribe(ctx context.Context, topicID string) error {
	path := "/api/users/" + url.PathEscape(topicID) + "/subscriptions"
	if err := c.doRequest(ctx, http.MethodPost, path, struct{}{}, nil); err != nil {
		return fmt.Errorf("subscribe request failed: %w", err)
	}
	return nil
}

// Unsubscribe removes a topic subscription.
func (c *Client) Unsubscribe(ctx context.Context, topicID string) error {
	path := "/api/users/" + url.PathEscape(topicID) + "/unsubscriptions"
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("unsubscribe request failed: %w", err)
	}
	return nil
}

// GetProfile fetches the current user's profile with subscriptions.
func (c *Client) GetProfile(ctx context.Context) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/users/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile overwrites the non-empty fields of the current user's profile.
func (c *Client) UpdateProfile(ctx context.Context, req api.UserUpdateRequest) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/users/me", req, nil); err != nil {
		return fmt.Errorf("update profile request failed: %w", err)
	}
	return nil
}

// ListComments fetches all comments.
func (c *Client) ListComments(ctx context.Context) ([]api.CommentResponse, error) {
	var resp []api.CommentResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/comments", nil, &resp); err != nil {
		return nil, fmt.Errorf("list comments request failed: %w", err)
	}
	return resp, nil
}

// CreateComment adds a comment to an article.
func (c *Client) CreateComment(ctx context.Context, articleID string, req api.CreateCommentRequest) (*api.CommentResponse, error) {
	var resp api.CommentResponse
	path := "/api/comments?articleId=" + url.QueryEscape(articleID)
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("create comment request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
