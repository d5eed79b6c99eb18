package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/repository"
	"github.com/ipapMaster/newsSimpleProject/internal/repository/repotest"
)

type fixture struct {
	mgr      *Manager
	users    *repository.UserRepository
	sessions *repository.SessionRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := repotest.NewDB(t)
	users := repository.NewUserRepository(db)
	sessions := repository.NewSessionRepository(db)
	mgr := NewManager(sessions, users, Options{
		Secret:      "test-secret",
		CookieName:  "blog_session",
		SessionTTL:  time.Hour,
		RememberTTL: 24 * time.Hour,
	})
	return fixture{mgr: mgr, users: users, sessions: sessions}
}

func (f fixture) user(t *testing.T) *model.User {
	t.Helper()
	u := &model.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	return u
}

// login performs Login and returns the issued cookie.
func (f fixture) login(t *testing.T, u *model.User, remember bool) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := f.mgr.Login(context.Background(), rec, u, remember); err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Login() set %d cookies, want 1", len(cookies))
	}
	return cookies[0]
}

func requestWith(c *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if c != nil {
		r.AddCookie(c)
	}
	return r
}

func TestCurrentAnonymous(t *testing.T) {
	f := newFixture(t)

	user, err := f.mgr.Current(context.Background(), requestWith(nil))
	if err != nil {
		t.Fatalf("Current() unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("Current() = %+v, want nil", user)
	}
}

func TestLoginThenCurrent(t *testing.T) {
	f := newFixture(t)
	u := f.user(t)
	cookie := f.login(t, u, false)

	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie flags = HttpOnly:%v SameSite:%v", cookie.HttpOnly, cookie.SameSite)
	}
	if !cookie.Expires.IsZero() {
		t.Errorf("non-remembered cookie should be a session cookie, Expires = %v", cookie.Expires)
	}

	got, err := f.mgr.Current(context.Background(), requestWith(cookie))
	if err != nil {
		t.Fatalf("Current() unexpected error: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Errorf("Current() = %+v, want user %d", got, u.ID)
	}
}

func TestLoginRememberSetsExpiry(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t, f.user(t), true)

	if cookie.Expires.IsZero() {
		t.Fatal("remembered cookie should carry an expiry")
	}
	if until := time.Until(cookie.Expires); until < 23*time.Hour {
		t.Errorf("remembered cookie expires in %v, want about 24h", until)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t, f.user(t), false)

	rec := httptest.NewRecorder()
	if err := f.mgr.Logout(context.Background(), rec, requestWith(cookie)); err != nil {
		t.Fatalf("Logout() unexpected error: %v", err)
	}

	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("Logout() cookies = %+v, want one expired cookie", cleared)
	}

	// Replaying the old cookie must not resolve to a user.
	got, err := f.mgr.Current(context.Background(), requestWith(cookie))
	if err != nil {
		t.Fatalf("Current() unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Current() after logout = %+v, want nil", got)
	}
}

func TestCurrentRejectsForgedAndExpired(t *testing.T) {
	f := newFixture(t)
	u := f.user(t)
	cookie := f.login(t, u, false)

	forged := *cookie
	forged.Value = cookie.Value + "x"
	if got, _ := f.mgr.Current(context.Background(), requestWith(&forged)); got != nil {
		t.Errorf("Current() with forged cookie = %+v, want nil", got)
	}

	f.mgr.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if got, _ := f.mgr.Current(context.Background(), requestWith(cookie)); got != nil {
		t.Errorf("Current() with expired session = %+v, want nil", got)
	}
}
