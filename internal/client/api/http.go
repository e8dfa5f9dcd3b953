package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/me22abd/campusconnect-client/internal/client/models"
)

// HTTPClient implements Client over the backend's JSON REST API.
//
// The token field is the one piece of state shared across all request flows;
// it is mutated only by the session store (SetToken/ClearToken) and by the
// 401 handler, so access is mutex-guarded.
type HTTPClient struct {
	baseURL string
	hc      *http.Client

	mu    sync.Mutex
	token string

	onUnauthorized func()
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL (e.g.
// "http://localhost:3000/api"). Every request is bounded by the fixed timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// OnUnauthorized registers the hook fired after a 401 clears the in-memory
// token. The session store uses it to tear down the rest of the session.
func (c *HTTPClient) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token reports the currently attached bearer token.
func (c *HTTPClient) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

// doJSON performs one request cycle: marshal body, attach headers and token,
// execute, map failures, decode into out (out may be nil for empty bodies).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		// timeouts and connection failures are transient, not auth failures
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate()
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	if resp.StatusCode >= 400 {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		if er.Error == "" {
			er.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: er.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// invalidate clears the token and fires the registered hook. A 401 means the
// credential is no longer trustworthy for any subsequent call, so this is a
// global side effect, not scoped to the failing request.
func (c *HTTPClient) invalidate() {
	c.ClearToken()
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

type authResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    models.Profile `json:"user"`
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User.ID == "" {
		return nil, fmt.Errorf("register: %w", ErrMalformedResponse)
	}
	return &AuthResult{Token: resp.Token, User: resp.User}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User.ID == "" {
		return nil, fmt.Errorf("login: %w", ErrMalformedResponse)
	}
	return &AuthResult{Token: resp.Token, User: resp.User}, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.Profile, error) {
	var resp struct {
		User models.Profile `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	if resp.User.ID == "" {
		return nil, fmt.Errorf("current user: %w", ErrMalformedResponse)
	}
	return &resp.User, nil
}

func (c *HTTPClient) Discover(ctx context.Context) ([]models.Profile, error) {
	var resp struct {
		Users []models.Profile `json:"users"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/users/discover", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Users == nil {
		resp.Users = []models.Profile{}
	}
	return resp.Users, nil
}

type likeResponse struct {
	Message string        `json:"message"`
	Like    models.Like   `json:"like"`
	Match   *models.Match `json:"match,omitempty"`
}

func (c *HTTPClient) LikeUser(ctx context.Context, userID string) (*LikeResult, error) {
	var resp likeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/likes/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, err
	}
	return &LikeResult{Like: resp.Like, Match: resp.Match}, nil
}

func (c *HTTPClient) UnlikeUser(ctx context.Context, userID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/likes/"+url.PathEscape(userID), nil, nil)
}

func (c *HTTPClient) ReceivedLikes(ctx context.Context) ([]models.ReceivedLike, error) {
	var resp struct {
		Likes []models.ReceivedLike `json:"likes"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/likes/received", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Likes == nil {
		resp.Likes = []models.ReceivedLike{}
	}
	return resp.Likes, nil
}

func (c *HTTPClient) Matches(ctx context.Context) ([]models.Match, error) {
	var resp struct {
		Matches []models.Match `json:"matches"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/matches", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Matches == nil {
		resp.Matches = []models.Match{}
	}
	return resp.Matches, nil
}

func (c *HTTPClient) Messages(ctx context.Context, matchID string) ([]models.Message, error) {
	var resp struct {
		Messages []models.Message `json:"messages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/messages/"+url.PathEscape(matchID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Messages == nil {
		resp.Messages = []models.Message{}
	}
	return resp.Messages, nil
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (c *HTTPClient) SendMessage(ctx context.Context, matchID, content string) (*models.Message, error) {
	var resp struct {
		Message models.Message `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/messages/"+url.PathEscape(matchID), sendMessageRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	if resp.Message.ID == "" {
		return nil, fmt.Errorf("send message: %w", ErrMalformedResponse)
	}
	return &resp.Message, nil
}
