package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	tok, err := ts.Issue("sess-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	sid, err := ts.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sid != "sess-123" {
		t.Errorf("session ID = %q, want sess-123", sid)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	tok, _ := NewTokenService("secret-a", time.Hour).Issue("sess-123")
	if _, err := NewTokenService("secret-b", time.Hour).Parse(tok); err == nil {
		t.Error("expected verification failure across keys")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)
	tok, _ := ts.Issue("sess-123")
	if _, err := ts.Parse(tok); err == nil {
		t.Error("expected expired token to fail")
	}
}

func TestMiddleware(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	tok, _ := ts.Issue("sess-123")

	var gotSID string
	h := Middleware(ts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSID = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/record", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if gotSID != "sess-123" {
		t.Errorf("context session ID = %q, want sess-123", gotSID)
	}
}

func TestMiddlewareRejects(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	h := Middleware(ts)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not run")
	}))

	for _, auth := range []string{"", "Bearer garbage", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/record", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("auth %q: status = %d, want 401", auth, rr.Code)
		}
	}
}
