package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the HMAC session tokens handed to the
// browser after session creation.
type TokenService struct {
	hmac []byte
	ttl  time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{hmac: []byte(secret), ttl: ttl}
}

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the session ID.
func (t *TokenService) Issue(sessionID string) (string, error) {
	now := time.Now()
	c := &claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "gradesheet-analyzer",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(t.hmac)
}

// Parse verifies a token and returns the session ID inside it.
func (t *TokenService) Parse(tokenStr string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(*jwt.Token) (interface{}, error) {
		return t.hmac, nil
	})
	if err != nil || !tok.Valid {
		return "", err
	}
	c, _ := tok.Claims.(*claims)
	return c.SessionID, nil
}

type ctxKey string

const ctxKeySession ctxKey = "session_id"

// WithSessionID stores a session ID on a context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeySession, id)
}

// FromContext returns the session ID previously attached by Middleware.
func FromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeySession); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Middleware rejects requests without a valid bearer token and puts the
// token's session ID on the request context.
func Middleware(t *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer", http.StatusUnauthorized)
				return
			}
			sid, err := t.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil || sid == "" {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sid)))
		})
	}
}
