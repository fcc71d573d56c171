package sessions

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/courseportal/portal-cli/internal/httputil"
	"github.com/courseportal/portal-cli/internal/log"
	"github.com/courseportal/portal-cli/internal/portal"
)

// Readiness reports whether the session subsystem has finished attempting to
// resolve an identity from the current token.
type Readiness int

// All readiness states.
const (
	// ReadinessResolving means an identity fetch is pending or in flight.
	// Route guards must render a neutral loading state, never redirect.
	ReadinessResolving Readiness = iota
	// ReadinessIdentity means the session resolved with a verified identity.
	ReadinessIdentity
	// ReadinessAnonymous means the session resolved without an identity.
	ReadinessAnonymous
)

// A Navigation is a route-change intent returned by session operations. The
// manager never navigates itself; the hosting shell executes the intent after
// the state mutation it follows has been committed.
type Navigation int

// All navigation intents.
const (
	NavigateNone Navigation = iota
	NavigateRoot
	NavigateLogin
)

// Identity is the slice of the backend API the session manager depends on.
type Identity interface {
	Login(ctx context.Context, req portal.LoginRequest) (*portal.LoginResponse, error)
	CurrentUser(ctx context.Context, token string) (*portal.UserProfile, error)
}

// A Snapshot is an immutable view of the session for guards and views.
type Snapshot struct {
	Token     string
	Claims    *State
	User      *portal.UserProfile
	Readiness Readiness
}

// A Manager is the single source of truth for the current session: the
// bearer token, its decoded claims, the fetched user profile and the
// readiness state. One Manager exists per running client.
type Manager struct {
	store        Store
	identity     Identity
	authorizeURL *url.URL

	mu         sync.Mutex
	token      string
	state      *State
	user       *portal.UserProfile
	readiness  Readiness
	generation uint64
}

// New creates a Manager. The store is read exactly once, here, to seed the
// initial token; call Resolve afterwards to run the token-change reaction.
func New(store Store, identity Identity, authorizeURL *url.URL) *Manager {
	m := &Manager{
		store:        store,
		identity:     identity,
		authorizeURL: authorizeURL,
		readiness:    ReadinessAnonymous,
	}
	raw, err := store.LoadSession()
	switch {
	case err == nil && raw != "":
		m.token = raw
		m.readiness = ReadinessResolving
	case err != nil && !errors.Is(err, ErrNoSessionFound):
		log.Error().Err(err).Msg("sessions: failed to load stored session")
	}
	return m
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Token:     m.token,
		Claims:    m.state,
		User:      m.user,
		Readiness: m.readiness,
	}
}

// AuthorizeURL returns the fixed identity-provider authorization URL the
// browsing context should be sent to for a redirect login.
func (m *Manager) AuthorizeURL() *url.URL {
	u := *m.authorizeURL
	return &u
}

// Login exchanges credentials for a token, persists it and resolves the
// identity. Only the login call's own failure is returned; a failure in the
// subsequent resolve step collapses to a logged-out state without an error.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	res, err := m.identity.Login(ctx, portal.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.setTokenLocked(res.AccessToken)
	m.mu.Unlock()

	m.Resolve(ctx)
	return nil
}

// CompleteCallback finishes a redirect login with the token the identity
// provider appended to the callback URL. An empty token is an incomplete
// flow: the intent is the login view and neither state nor storage is
// touched. Otherwise the token is persisted and resolved, and the intent is
// the application root; if the resolve step fails the session is cleared and
// the guard will bounce the navigation to login.
func (m *Manager) CompleteCallback(ctx context.Context, rawJWT string) Navigation {
	if rawJWT == "" {
		return NavigateLogin
	}

	m.mu.Lock()
	m.setTokenLocked(rawJWT)
	m.mu.Unlock()

	m.Resolve(ctx)
	return NavigateRoot
}

// Logout clears the token, claims, profile and durable storage. It is
// idempotent: logging out without a session is a no-op.
func (m *Manager) Logout() Navigation {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
	return NavigateLogin
}

// Resolve runs the token-change reaction: decode the claims, then fetch the
// profile with the token as bearer credential. A decode failure or a rejected
// identity fetch clears the session entirely; a stale token must never leave
// claims visible. Resolve never returns an error: corruption is recovered
// here, not surfaced.
func (m *Manager) Resolve(ctx context.Context) {
	m.mu.Lock()
	if m.token == "" {
		m.state = nil
		m.user = nil
		m.readiness = ReadinessAnonymous
		m.mu.Unlock()
		return
	}

	state, err := StateFromToken(m.token)
	if err != nil {
		log.Debug(ctx).Msg("sessions: discarding malformed token")
		m.clearLocked()
		m.mu.Unlock()
		return
	}
	m.state = state
	m.readiness = ReadinessResolving
	token := m.token
	generation := m.generation
	m.mu.Unlock()

	// The fetch runs outside the lock so a logout that happens while it is in
	// flight is observed before the result is committed.
	user, err := m.identity.CurrentUser(ctx, token)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != generation {
		// a logout or newer login superseded this fetch; drop the result
		return
	}
	if err != nil {
		if httputil.IsUnauthorized(err) {
			log.Warn(ctx).Msg("sessions: token rejected by backend, clearing session")
		} else {
			log.Warn(ctx).Err(err).Msg("sessions: identity fetch failed, clearing session")
		}
		m.clearLocked()
		return
	}
	m.user = user
	m.readiness = ReadinessIdentity
}

// setTokenLocked installs a new token: it supersedes any in-flight resolve,
// resets the derived state and synchronizes durable storage.
func (m *Manager) setTokenLocked(rawJWT string) {
	m.generation++
	m.token = rawJWT
	m.state = nil
	m.user = nil
	m.readiness = ReadinessResolving
	if err := m.store.SaveSession(rawJWT); err != nil {
		log.Error().Err(err).Msg("sessions: failed to persist session")
	}
}

// clearLocked resets the session to logged out and clears durable storage.
func (m *Manager) clearLocked() {
	m.generation++
	m.token = ""
	m.state = nil
	m.user = nil
	m.readiness = ReadinessAnonymous
	if err := m.store.ClearSession(); err != nil {
		log.Error().Err(err).Msg("sessions: failed to clear stored session")
	}
}
