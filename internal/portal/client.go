package portal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"github.com/KillianMeersman/telemeter/internal/session"
)

// Production endpoints. Fields on Client so tests can point the whole
// flow at httptest servers.
const (
	DefaultUserDetailsURL = "https://api.prd.telenet.be/ocapi/public/api/oauth/userdetails"
	DefaultAuthorizeURL   = "https://login.prd.telenet.be/openid/oauth/authorize"
	DefaultLoginFormURL   = "https://login.prd.telenet.be/openid/login.do"
	DefaultUsageURL       = "https://api.prd.telenet.be/ocapi/public/?p=internetusage,internetusagereminder"
)

const (
	// The portal blocks obvious bots but tolerates honest scrapers.
	userAgent   = "telemeter/2.0 (+https://github.com/KillianMeersman/telemeter)"
	xAltReferer = "https://www2.telenet.be/residential/nl/mijn-telenet"

	// DefaultTimeout is the first-attempt request timeout; retries
	// stretch it (see Fetch).
	DefaultTimeout = 10 * time.Second

	maxFetchAttempts = 3
)

// Credentials is the username/password pair the portal authenticates.
// Held only for the duration of a login call; never persisted, never
// logged.
type Credentials struct {
	Username string
	Password string
}

// Client speaks the portal's browser protocol: the OpenID login
// handshake and the OCAPI usage document. It is the only package that
// knows portal endpoints and response shapes.
type Client struct {
	UserDetailsURL string
	AuthorizeURL   string
	LoginFormURL   string
	UsageURL       string

	store     session.Store
	transport *http.Transport
	limiter   *rate.Limiter
	timeout   time.Duration
}

// NewClient builds a portal client that saves established sessions to
// store. timeout <= 0 selects DefaultTimeout.
func NewClient(store session.Store, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		UserDetailsURL: DefaultUserDetailsURL,
		AuthorizeURL:   DefaultAuthorizeURL,
		LoginFormURL:   DefaultLoginFormURL,
		UsageURL:       DefaultUsageURL,
		store:          store,
		transport: &http.Transport{
			MaxIdleConns:    5,
			IdleConnTimeout: 30 * time.Second,
		},
		// Polite pacing against a consumer site; a full handshake
		// plus fetch stays inside the burst, sustained traffic is
		// capped at 2 req/s.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 10),
		timeout: timeout,
	}
}

// newJar builds a fresh cookie jar with public-suffix rules, so the
// portal cannot set cookies for sibling domains.
func newJar() (*cookiejar.Jar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

// httpClient pairs the shared transport with a per-operation jar and
// timeout.
func (c *Client) httpClient(jar http.CookieJar, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: c.transport,
		Jar:       jar,
		Timeout:   timeout,
	}
}

func (c *Client) wait(ctx context.Context, op string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	return nil
}

// classifyNetErr maps a transport-level failure. Timeouts count as
// transient when the operation is retryable (fetches); everything else
// is a connectivity failure.
func classifyNetErr(op string, err error, retryable bool) error {
	if retryable {
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return &TransientError{Err: err}
		}
	}
	return &NetworkError{Op: op, Err: err}
}
