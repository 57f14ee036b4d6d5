package session

import (
	"net/http"
	"testing"
	"time"
)

func TestNewToken_DefaultTTL(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	tok := NewToken([]*http.Cookie{
		{Name: "JSESSIONID", Value: "abc"},
		{Name: "dtCookie", Value: "xyz"},
	}, now)

	if len(tok.Cookies) != 2 {
		t.Fatalf("got %d cookies, want 2", len(tok.Cookies))
	}
	if want := now.Add(DefaultTTL); !tok.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", tok.ExpiresAt, want)
	}
}

func TestNewToken_EarliestCookieExpiry(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	early := now.Add(30 * time.Minute)
	late := now.Add(48 * time.Hour)

	tok := NewToken([]*http.Cookie{
		{Name: "a", Value: "1", Expires: late},
		{Name: "b", Value: "2", Expires: early},
		{Name: "c", Value: "3"}, // session-scoped
	}, now)

	if !tok.ExpiresAt.Equal(early) {
		t.Errorf("ExpiresAt = %v, want earliest future expiry %v", tok.ExpiresAt, early)
	}
}

func TestNewToken_IgnoresPastExpiry(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	tok := NewToken([]*http.Cookie{
		{Name: "stale", Value: "1", Expires: now.Add(-time.Hour)},
	}, now)

	if want := now.Add(DefaultTTL); !tok.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v (past expiries ignored)", tok.ExpiresAt, want)
	}
}

func TestTokenValid(t *testing.T) {
	now := time.Now()

	var nilTok *Token
	if nilTok.Valid(now) {
		t.Error("nil token reported valid")
	}

	empty := &Token{IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
	if empty.Valid(now) {
		t.Error("token without cookies reported valid")
	}

	expired := &Token{
		Cookies:   []Cookie{{Name: "a", Value: "1"}},
		IssuedAt:  now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	if expired.Valid(now) {
		t.Error("expired token reported valid")
	}

	good := &Token{
		Cookies:   []Cookie{{Name: "a", Value: "1"}},
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
	if !good.Valid(now) {
		t.Error("live token reported invalid")
	}
}

func TestHTTPCookiesRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	in := []*http.Cookie{
		{Name: "JSESSIONID", Value: "abc", Domain: ".telenet.be", Path: "/", Secure: true, HttpOnly: true},
		{Name: "persist", Value: "xyz", Expires: now.Add(time.Hour)},
	}
	out := NewToken(in, now).HTTPCookies()

	if len(out) != len(in) {
		t.Fatalf("got %d cookies, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].Name != in[i].Name || out[i].Value != in[i].Value {
			t.Errorf("cookie %d = %s=%s, want %s=%s",
				i, out[i].Name, out[i].Value, in[i].Name, in[i].Value)
		}
	}
	if !out[0].Secure || !out[0].HttpOnly {
		t.Error("Secure/HttpOnly flags lost in round trip")
	}
}
