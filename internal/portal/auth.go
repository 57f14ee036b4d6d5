package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KillianMeersman/telemeter/internal/session"
)

// Authenticate performs the portal's browser login handshake and
// returns a fresh session token, saving it to the cache store on the
// way out.
//
// The handshake mirrors what a browser does on mijn.telenet.be: probe
// the userdetails endpoint, request the OpenID authorize URL so the
// login form plants its pre-auth cookies, POST the credentials form,
// then probe again to confirm the session took. A redirect URL
// carrying "authentication_error" is the portal's way of saying the
// password was wrong.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (*session.Token, error) {
	jar, err := newJar()
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	cc := newCookieCollector()

	live, err := c.probeSession(ctx, jar, cc)
	if err != nil {
		return nil, err
	}
	if !live {
		if err := c.openLoginForm(ctx, jar, cc); err != nil {
			return nil, err
		}
		if err := c.submitCredentials(ctx, jar, cc, creds); err != nil {
			return nil, err
		}
		live, err = c.probeSession(ctx, jar, cc)
		if err != nil {
			return nil, err
		}
		if !live {
			return nil, &PortalChangedError{Detail: "session rejected immediately after login"}
		}
	}

	tok := session.NewToken(cc.cookies(), time.Now())
	if len(tok.Cookies) == 0 {
		return nil, &PortalChangedError{Detail: "login issued no session cookies"}
	}
	if err := c.store.Save(creds.Username, tok); err != nil {
		return nil, fmt.Errorf("cache session: %w", err)
	}
	slog.Debug("portal session established",
		"username", creds.Username,
		"cookies", len(tok.Cookies),
		"expires_at", tok.ExpiresAt)
	return tok, nil
}

// probeSession asks the userdetails endpoint whether the jar holds a
// live session. 200 yes, 401/403 no; anything else is unrecognized.
func (c *Client) probeSession(ctx context.Context, jar http.CookieJar, cc *cookieCollector) (bool, error) {
	if err := c.wait(ctx, "session probe"); err != nil {
		return false, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.UserDetailsURL, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-alt-referer", xAltReferer)

	resp, err := c.collectingClient(jar, cc, nil).Do(req)
	if err != nil {
		return false, classifyNetErr("session probe", err, false)
	}
	defer resp.Body.Close()
	cc.collect(resp)

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return false, nil
	case resp.StatusCode >= 500:
		return false, &NetworkError{Op: "session probe", Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	default:
		return false, &PortalChangedError{Detail: fmt.Sprintf("userdetails returned HTTP %d", resp.StatusCode)}
	}
}

// openLoginForm fetches the OpenID authorize URL with a fresh
// state/nonce pair so the portal serves its login form and issues the
// pre-auth cookies the form submission requires.
func (c *Client) openLoginForm(ctx context.Context, jar http.CookieJar, cc *cookieCollector) error {
	if err := c.wait(ctx, "login page"); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u, err := url.Parse(c.AuthorizeURL)
	if err != nil {
		return fmt.Errorf("authorize url: %w", err)
	}
	q := u.Query()
	q.Set("client_id", "ocapi")
	q.Set("response_type", "code")
	q.Set("state", uuid.NewString())
	q.Set("nonce", uuid.NewString())
	q.Set("prompt", "login")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.collectingClient(jar, cc, nil).Do(req)
	if err != nil {
		return classifyNetErr("login page", err, false)
	}
	defer resp.Body.Close()
	cc.collect(resp)

	if resp.StatusCode != http.StatusOK {
		return &PortalChangedError{Detail: fmt.Sprintf("login page returned HTTP %d", resp.StatusCode)}
	}
	return nil
}

// submitCredentials POSTs the login form. The portal answers with a
// redirect chain; "authentication_error" anywhere along it means the
// credentials were rejected.
func (c *Client) submitCredentials(ctx context.Context, jar http.CookieJar, cc *cookieCollector, creds Credentials) error {
	if err := c.wait(ctx, "login"); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{
		"j_username": {creds.Username},
		"j_password": {creds.Password},
		"rememberme": {"true"},
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.LoginFormURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	var sawAuthError bool
	client := c.collectingClient(jar, cc, func(hop *url.URL) {
		if strings.Contains(hop.String(), "authentication_error") {
			sawAuthError = true
		}
	})

	resp, err := client.Do(req)
	if err != nil {
		return classifyNetErr("login", err, false)
	}
	defer resp.Body.Close()
	cc.collect(resp)

	if sawAuthError || strings.Contains(resp.Request.URL.String(), "authentication_error") {
		return &AuthError{Reason: "portal rejected the credentials"}
	}
	switch {
	case resp.StatusCode >= 500:
		return &NetworkError{Op: "login", Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return &PortalChangedError{Detail: fmt.Sprintf("login submission returned HTTP %d", resp.StatusCode)}
	}
	return nil
}

// collectingClient follows redirects while recording every hop's
// Set-Cookie headers (and, optionally, every hop URL). The jar alone
// is not enough: its API hides cookie attributes, expiry included.
func (c *Client) collectingClient(jar http.CookieJar, cc *cookieCollector, onHop func(*url.URL)) *http.Client {
	client := c.httpClient(jar, 0)
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if req.Response != nil {
			cc.collect(req.Response)
		}
		if onHop != nil {
			onHop(req.URL)
		}
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		return nil
	}
	return client
}

// cookieCollector accumulates the cookies a handshake sets, newest
// value per name winning, expired deletions honored.
type cookieCollector struct {
	byName map[string]*http.Cookie
	order  []string
}

func newCookieCollector() *cookieCollector {
	return &cookieCollector{byName: make(map[string]*http.Cookie)}
}

func (cc *cookieCollector) collect(resp *http.Response) {
	for _, ck := range resp.Cookies() {
		if ck.MaxAge < 0 {
			delete(cc.byName, ck.Name)
			continue
		}
		if ck.MaxAge > 0 && ck.Expires.IsZero() {
			ck.Expires = time.Now().Add(time.Duration(ck.MaxAge) * time.Second)
		}
		if ck.Domain == "" && resp.Request != nil {
			ck.Domain = resp.Request.URL.Hostname()
		}
		if _, seen := cc.byName[ck.Name]; !seen {
			cc.order = append(cc.order, ck.Name)
		}
		cc.byName[ck.Name] = ck
	}
}

func (cc *cookieCollector) cookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(cc.byName))
	for _, name := range cc.order {
		if ck, ok := cc.byName[name]; ok {
			out = append(out, ck)
		}
	}
	return out
}
