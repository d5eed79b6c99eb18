// Package session binds an authenticated user to a browser through a signed
// cookie backed by a revocable server-side session row.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ipapMaster/newsSimpleProject/internal/crypto"
	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/repository"
)

// Options configures cookie and lifetime behaviour.
type Options struct {
	Secret      string
	CookieName  string
	Secure      bool
	SessionTTL  time.Duration
	RememberTTL time.Duration
}

// Manager issues, resolves and revokes login sessions.
type Manager struct {
	sessions *repository.SessionRepository
	users    *repository.UserRepository
	opts     Options
	now      func() time.Time
}

// NewManager creates a new Manager.
func NewManager(sessions *repository.SessionRepository, users *repository.UserRepository, opts Options) *Manager {
	return &Manager{
		sessions: sessions,
		users:    users,
		opts:     opts,
		now:      time.Now,
	}
}

// Login binds user to the response. With remember set the cookie outlives
// the browser session; otherwise it is a session cookie.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, user *model.User, remember bool) error {
	now := m.now().UTC()

	ttl := m.opts.SessionTTL
	if remember {
		ttl = m.opts.RememberTTL
	}

	s := model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Remember:  remember,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if removed, err := m.sessions.DeleteExpired(ctx, now); err != nil {
		slog.Warn("purging expired sessions failed", "error", err)
	} else if removed > 0 {
		slog.Debug("purged expired sessions", "count", removed)
	}

	if err := m.sessions.Create(ctx, s); err != nil {
		return err
	}

	token, err := crypto.SignSessionToken(s.ID, user.ID, m.opts.Secret, now, s.ExpiresAt)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		cookie.Expires = s.ExpiresAt
	}
	http.SetCookie(w, cookie)

	slog.Info("user logged in", "user_id", user.ID, "remember", remember)
	return nil
}

// Logout revokes the session referenced by the request cookie, if any, and
// expires the cookie.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer m.clearCookie(w)

	claims, ok := m.claims(r)
	if !ok {
		return nil
	}
	return m.sessions.Delete(ctx, claims.SessionID())
}

// Current returns the user bound to the request, or nil for an anonymous
// request. Missing, forged, expired or revoked sessions are all anonymous;
// only storage failures are returned as errors.
func (m *Manager) Current(ctx context.Context, r *http.Request) (*model.User, error) {
	claims, ok := m.claims(r)
	if !ok {
		return nil, nil
	}

	s, err := m.sessions.GetByID(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if s.UserID != claims.UserID || s.Expired(m.now()) {
		return nil, nil
	}

	user, err := m.users.GetByID(ctx, s.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (m *Manager) claims(r *http.Request) (*crypto.SessionClaims, bool) {
	c, err := r.Cookie(m.opts.CookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}

	claims, err := crypto.ParseSessionToken(c.Value, m.opts.Secret)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func (m *Manager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
