// Package session owns the authenticated-session lifecycle: the status state
// machine, the bearer token, and the current user's profile. Feature code
// never touches the token directly; it goes through this store or through the
// gateway the store configures.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/me22abd/campusconnect-client/internal/client/api"
	"github.com/me22abd/campusconnect-client/internal/client/models"
	"github.com/me22abd/campusconnect-client/internal/client/vault"
	"github.com/me22abd/campusconnect-client/internal/logging"
)

// ErrAlreadyAuthenticated is returned when Login or Register is called on an
// already authenticated store.
var ErrAlreadyAuthenticated = errors.New("already authenticated")

// Store is the session state machine. Invariant: status is
// StatusAuthenticated exactly when both token and user are set.
type Store struct {
	api   api.Client
	vault vault.Repository
	log   logging.Logger

	mu     sync.Mutex
	status Status
	token  string
	user   *models.Profile
}

// New builds a Store in StatusLoading. Initialize must run before dependent
// components start issuing requests.
func New(apiClient api.Client, v vault.Repository, log logging.Logger) *Store {
	return &Store{
		api:    apiClient,
		vault:  v,
		log:    log.With("component", "session"),
		status: StatusLoading,
	}
}

func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// User returns the current profile, or nil when not authenticated.
func (s *Store) User() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current bearer token, or "" when not authenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) setAuthenticated(token string, user *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusAuthenticated
	s.token = token
	s.user = user
}

func (s *Store) setUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusUnauthenticated
	s.token = ""
	s.user = nil
}

// Initialize derives the session from the vault: with a stored, not obviously
// expired token it configures the gateway and fetches the current profile.
// It never returns an error; any failure leaves the store Unauthenticated
// with the vault cleared.
func (s *Store) Initialize(ctx context.Context) {
	raw, err := s.vault.Get(ctx, vault.TokenKey)
	if err != nil {
		// a broken vault read means no token present
		s.log.Warn(ctx, "vault read failed", "error", err)
		raw = nil
	}
	token := string(raw)
	if token == "" {
		s.setUnauthenticated()
		return
	}

	if tokenExpired(token) {
		s.log.Info(ctx, "stored token already expired, discarding")
		s.discard(ctx)
		return
	}

	s.api.SetToken(token)
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "session restore failed", "error", err)
		s.discard(ctx)
		return
	}

	s.setAuthenticated(token, user)
	s.log.Info(ctx, "session restored", "user", user.ID)
}

// Login authenticates with the backend and adopts the returned credentials.
// On any failure the store is left unchanged and the error is returned for
// display; no partial state (token without profile) is ever observable.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if s.Status() == StatusAuthenticated {
		return ErrAlreadyAuthenticated
	}
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adopt(ctx, res)
}

// Register creates an account and adopts the returned credentials, with the
// same all-or-nothing contract as Login.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	if s.Status() == StatusAuthenticated {
		return ErrAlreadyAuthenticated
	}
	res, err := s.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.adopt(ctx, res)
}

func (s *Store) adopt(ctx context.Context, res *api.AuthResult) error {
	if err := s.vault.Set(ctx, vault.TokenKey, []byte(res.Token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.api.SetToken(res.Token)
	user := res.User
	s.setAuthenticated(res.Token, &user)
	return nil
}

// Logout tears the session down locally. Local invalidation always wins:
// a failing vault delete is logged, never surfaced.
func (s *Store) Logout(ctx context.Context) {
	if err := s.vault.Delete(ctx, vault.TokenKey); err != nil {
		s.log.Warn(ctx, "vault delete failed on logout", "error", err)
	}
	s.api.ClearToken()
	s.setUnauthenticated()
}

// Invalidate is the gateway's 401 hook: the credential is no longer
// trustworthy, so the vault and in-memory state are cleared unconditionally.
func (s *Store) Invalidate() {
	ctx := context.Background()
	if err := s.vault.Delete(ctx, vault.TokenKey); err != nil {
		s.log.Warn(ctx, "vault delete failed on invalidation", "error", err)
	}
	s.api.ClearToken()
	s.setUnauthenticated()
}

func (s *Store) discard(ctx context.Context) {
	if err := s.vault.Delete(ctx, vault.TokenKey); err != nil {
		s.log.Warn(ctx, "vault delete failed", "error", err)
	}
	s.api.ClearToken()
	s.setUnauthenticated()
}

// tokenExpired reports whether token is a readable JWT whose exp claim is in
// the past. The signature is not verified; this only avoids a doomed network
// round trip at startup. Unreadable tokens are left for the server to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
