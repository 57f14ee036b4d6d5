package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KillianMeersman/telemeter/internal/session"
)

// maxPayloadBytes guards against the portal feeding us something huge.
const maxPayloadBytes = 10 << 20

// Fetch retrieves the raw usage document using the session in tok.
// The portal is known to flake on identical requests, so transient
// failures (timeouts, 5xx) are retried up to maxFetchAttempts with the
// per-attempt timeout growing linearly. Session rejection and
// unrecognized responses are never retried here.
func (c *Client) Fetch(ctx context.Context, tok *session.Token) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, &NetworkError{Op: "usage fetch", Err: err}
		}
		payload, err := c.fetchOnce(ctx, tok, time.Duration(attempt)*c.timeout)
		if err == nil {
			return payload, nil
		}
		var te *TransientError
		if !errors.As(err, &te) {
			return nil, err
		}
		lastErr = err
		slog.Warn("transient portal failure", "attempt", attempt, "error", err)
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, tok *session.Token, timeout time.Duration) ([]byte, error) {
	if err := c.wait(ctx, "usage fetch"); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	jar, err := newJar()
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	c.seedJar(jar, tok)

	req, err := http.NewRequestWithContext(ctx, "GET", c.UsageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-alt-referer", xAltReferer)

	// A dead session sometimes bounces to the login host instead of
	// answering 401; stop there and report it as expiry.
	loginHost := hostOf(c.LoginFormURL)
	var bouncedToLogin bool
	client := c.httpClient(jar, 0)
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if loginHost != "" && req.URL.Host == loginHost {
			bouncedToLogin = true
			return http.ErrUseLastResponse
		}
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		return nil
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, classifyNetErr("usage fetch", err, true)
	}
	defer resp.Body.Close()

	if bouncedToLogin {
		return nil, &SessionExpiredError{StatusCode: resp.StatusCode}
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &SessionExpiredError{StatusCode: resp.StatusCode}
	case resp.StatusCode >= 500:
		return nil, &TransientError{StatusCode: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, &PortalChangedError{Detail: fmt.Sprintf("usage endpoint returned HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, classifyNetErr("usage fetch", err, true)
	}

	// Cheap shape check before the parser sees it: the document must
	// at least be JSON carrying the internetusage key.
	var probe struct {
		InternetUsage json.RawMessage `json:"internetusage"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &PortalChangedError{Detail: "usage endpoint did not return JSON"}
	}
	if len(probe.InternetUsage) == 0 {
		return nil, &PortalChangedError{Detail: "usage document missing internetusage"}
	}
	return body, nil
}

// seedJar loads the token's cookies into a fresh jar, grouped by the
// host each cookie belongs to.
func (c *Client) seedJar(jar http.CookieJar, tok *session.Token) {
	base, err := url.Parse(c.UsageURL)
	if err != nil {
		return
	}
	byHost := make(map[string][]*http.Cookie)
	for _, ck := range tok.HTTPCookies() {
		host := base.Host
		if ck.Domain != "" {
			host = strings.TrimPrefix(ck.Domain, ".")
		}
		byHost[host] = append(byHost[host], ck)
	}
	for host, cookies := range byHost {
		jar.SetCookies(&url.URL{Scheme: base.Scheme, Host: host, Path: "/"}, cookies)
	}
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
