package session

import (
	"net/http"
	"time"
)

// DefaultTTL is the assumed lifetime of a portal session when no
// cookie states an explicit expiry.
const DefaultTTL = 4 * time.Hour

// Cookie is the persisted subset of an HTTP cookie. The portal decides
// what goes in; everything here is opaque session state.
type Cookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain,omitempty"`
	Path     string    `json:"path,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"httpOnly,omitempty"`
}

// Token is an authenticated portal session: the cookies that prove it
// plus an estimated validity window. The cache store owns persisted
// tokens; the fetcher only borrows them per request.
type Token struct {
	Cookies   []Cookie
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NewToken bundles cookies issued at now. Validity runs to the
// earliest future cookie expiry, or now + DefaultTTL when every cookie
// is session-scoped.
func NewToken(cookies []*http.Cookie, now time.Time) *Token {
	t := &Token{IssuedAt: now}
	var earliest time.Time
	for _, c := range cookies {
		t.Cookies = append(t.Cookies, Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
		if !c.Expires.IsZero() && c.Expires.After(now) {
			if earliest.IsZero() || c.Expires.Before(earliest) {
				earliest = c.Expires
			}
		}
	}
	if earliest.IsZero() {
		earliest = now.Add(DefaultTTL)
	}
	t.ExpiresAt = earliest
	return t
}

// Valid reports whether the token is inside its validity window and
// carries at least one cookie.
func (t *Token) Valid(now time.Time) bool {
	return t != nil && len(t.Cookies) > 0 && now.Before(t.ExpiresAt)
}

// HTTPCookies converts the stored cookies back into the form a cookie
// jar accepts.
func (t *Token) HTTPCookies() []*http.Cookie {
	cookies := make([]*http.Cookie, 0, len(t.Cookies))
	for _, c := range t.Cookies {
		cookies = append(cookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return cookies
}

func (t *Token) clone() *Token {
	if t == nil {
		return nil
	}
	c := &Token{IssuedAt: t.IssuedAt, ExpiresAt: t.ExpiresAt}
	c.Cookies = append(c.Cookies, t.Cookies...)
	return c
}
