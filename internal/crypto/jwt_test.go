package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndParseSessionToken(t *testing.T) {
	now := time.Now()
	token, err := SignSessionToken("sess-1", 42, "test-secret", now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}

	claims, err := ParseSessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseSessionToken() unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("ParseSessionToken() UserID = %d, want %d", claims.UserID, 42)
	}
	if claims.SessionID() != "sess-1" {
		t.Errorf("ParseSessionToken() SessionID = %q, want %q", claims.SessionID(), "sess-1")
	}
}

func TestParseSessionTokenRejects(t *testing.T) {
	now := time.Now()
	valid, err := SignSessionToken("sess-1", 42, "correct-secret", now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}
	expired, err := SignSessionToken("sess-1", 42, "correct-secret", now.Add(-2*time.Hour), now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("SignSessionToken() unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "malformed", token: "not-a-valid-token", secret: "correct-secret"},
		{name: "wrong secret", token: valid, secret: "wrong-secret"},
		{name: "expired", token: expired, secret: "correct-secret"},
		{name: "wrong issuer", token: signRaw(t, "other", tokenAudience, "sess-1"), secret: "correct-secret"},
		{name: "wrong audience", token: signRaw(t, tokenIssuer, "other", "sess-1"), secret: "correct-secret"},
		{name: "missing session id", token: signRaw(t, tokenIssuer, tokenAudience, ""), secret: "correct-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tt.token, tt.secret); err != ErrInvalidToken {
				t.Errorf("ParseSessionToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}

func signRaw(t *testing.T, issuer, audience, id string) string {
	t.Helper()

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: 42,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("correct-secret"))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return s
}
