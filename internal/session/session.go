// Package session owns the token lifecycle: it logs in, confirms the
// session against the profile endpoint, and tears the session down. It
// resolves or errors; navigation and display belong to the callers.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/lmscli/internal/httpx"
	"github.com/learnhub/lmscli/internal/tokenstore"
	"github.com/learnhub/lmscli/types"
)

// ErrNoSession is returned by FetchProfile when no token is stored. It
// means "not logged in", not a transient failure.
var ErrNoSession = errors.New("no active session")

// Backend is the slice of the API client the session layer depends on.
type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, token string) (types.User, error)
}

// Manager performs login, profile confirmation, and logout against an
// injected backend and token store.
type Manager struct {
	backend Backend
	tokens  tokenstore.Store
	logger  zerolog.Logger

	// MaxRetries and BaseDelay tune the retry wrapper around the
	// idempotent profile fetch.
	MaxRetries int
	BaseDelay  time.Duration
}

func NewManager(backend Backend, tokens tokenstore.Store, logger zerolog.Logger) *Manager {
	return &Manager{
		backend:    backend,
		tokens:     tokens,
		logger:     logger,
		MaxRetries: httpx.DefaultMaxRetries,
		BaseDelay:  httpx.DefaultBaseDelay,
	}
}

// Login exchanges credentials for a token, persists it, and confirms the
// session by fetching the profile. The login is pending until the profile
// confirms: when the profile fetch fails after a token was obtained, the
// token is cleared and the login reported as failed, so the session never
// ends up logged-in without a user.
func (m *Manager) Login(ctx context.Context, email, password string) (types.User, error) {
	token, err := m.backend.Login(ctx, email, password)
	if err != nil {
		return types.User{}, err
	}

	if err := m.tokens.Save(token); err != nil {
		return types.User{}, fmt.Errorf("persist token: %w", err)
	}

	user, err := m.FetchProfile(ctx)
	if err != nil {
		// FetchProfile already cleared the token on failure.
		return types.User{}, fmt.Errorf("confirm session: %w", err)
	}

	m.logger.Debug().Int("user_id", user.ID).Str("role", user.Role).Msg("login confirmed")
	return user, nil
}

// FetchProfile reads the stored token and fetches the authenticated
// profile, retrying transient failures. Any failure clears the token; the
// result is returned to the caller without being cached here.
func (m *Manager) FetchProfile(ctx context.Context) (types.User, error) {
	token, err := m.tokens.Read()
	if err != nil {
		if errors.Is(err, tokenstore.ErrNoToken) {
			return types.User{}, ErrNoSession
		}
		return types.User{}, fmt.Errorf("read token: %w", err)
	}

	user, err := httpx.WithRetry(ctx, m.MaxRetries, m.BaseDelay, func(ctx context.Context) (types.User, error) {
		return m.backend.Profile(ctx, token)
	})
	if err != nil {
		if clearErr := m.tokens.Clear(); clearErr != nil {
			m.logger.Warn().Err(clearErr).Msg("failed to clear token")
		}
		return types.User{}, err
	}
	return user, nil
}

// Logout discards the stored token. Idempotent.
func (m *Manager) Logout() error {
	return m.tokens.Clear()
}
