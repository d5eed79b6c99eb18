package model

import "time"

// Session is a server-side login record referenced by the session cookie.
type Session struct {
	ID        string
	UserID    int64
	Remember  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
