package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores server-side login sessions. Timestamps are kept
// as unix seconds so expiry comparisons behave the same on every driver.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session.
func (r *SessionRepository) Create(ctx context.Context, s model.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, remember, created_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Remember, s.CreatedAt.Unix(), s.ExpiresAt.Unix(),
	)
	return err
}

// GetByID retrieves a session by its id.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var (
		s                  model.Session
		created, expiresAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, remember, created_at, expires_at FROM sessions WHERE id = ?`, id,
	).Scan(&s.ID, &s.UserID, &s.Remember, &created, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	s.CreatedAt = time.Unix(created, 0).UTC()
	s.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	return &s, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// DeleteExpired removes every session that expired at or before now and
// returns how many were removed.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
