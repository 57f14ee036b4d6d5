package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KillianMeersman/telemeter/internal/domain"
	"github.com/KillianMeersman/telemeter/internal/parser"
	"github.com/KillianMeersman/telemeter/internal/portal"
	"github.com/KillianMeersman/telemeter/internal/session"
)

// authenticator and fetcher are the two faces of the portal the facade
// composes. *portal.Client satisfies both; tests substitute fakes.
type authenticator interface {
	Authenticate(ctx context.Context, creds portal.Credentials) (*session.Token, error)
}

type fetcher interface {
	Fetch(ctx context.Context, tok *session.Token) ([]byte, error)
}

// Telemeter composes session cache, authenticator, fetcher and parser
// into the one operation callers use. Concurrent calls for different
// usernames are safe; calls for the same username do not coordinate
// logins and may race each other to the cache.
type Telemeter struct {
	auth  authenticator
	fetch fetcher
	store session.Store
}

// New builds the facade over a portal client and its session store.
func New(pc *portal.Client, store session.Store) *Telemeter {
	return &Telemeter{auth: pc, fetch: pc, store: store}
}

// GetUsage returns the subscriber's current telemeter reading.
//
// Per call: the cached session is tried first; a missing cache logs
// in; a session the portal rejects is invalidated and re-established
// exactly once. A second rejection surfaces as an authentication
// failure, so a portal that rejects fresh sessions cannot loop us —
// total logins per call are bounded at two.
func (t *Telemeter) GetUsage(ctx context.Context, creds portal.Credentials) (domain.UsageRecord, error) {
	tok, err := t.store.Load(creds.Username)
	switch {
	case errors.Is(err, session.ErrNotFound):
		slog.Debug("no cached session, logging in", "username", creds.Username)
		tok, err = t.auth.Authenticate(ctx, creds)
		if err != nil {
			return domain.UsageRecord{}, err
		}
	case err != nil:
		return domain.UsageRecord{}, fmt.Errorf("load cached session: %w", err)
	default:
		slog.Debug("using cached session", "username", creds.Username)
	}

	payload, err := t.fetch.Fetch(ctx, tok)
	var expired *portal.SessionExpiredError
	if errors.As(err, &expired) {
		if err := t.store.Invalidate(creds.Username); err != nil {
			return domain.UsageRecord{}, fmt.Errorf("invalidate session: %w", err)
		}
		slog.Info("cached session rejected, logging in again", "username", creds.Username)

		tok, err = t.auth.Authenticate(ctx, creds)
		if err != nil {
			return domain.UsageRecord{}, err
		}
		payload, err = t.fetch.Fetch(ctx, tok)
		if errors.As(err, &expired) {
			if err := t.store.Invalidate(creds.Username); err != nil {
				return domain.UsageRecord{}, fmt.Errorf("invalidate session: %w", err)
			}
			return domain.UsageRecord{}, &portal.AuthError{
				Reason: "portal rejected a freshly established session",
			}
		}
	}
	if err != nil {
		return domain.UsageRecord{}, err
	}

	return parser.Parse(payload)
}
