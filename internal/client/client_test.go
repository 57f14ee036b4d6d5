package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KillianMeersman/telemeter/internal/parser"
	"github.com/KillianMeersman/telemeter/internal/portal"
	"github.com/KillianMeersman/telemeter/internal/session"
)

const goodPayload = `{"internetusage":[{"availableperiods":[{"usages":[{
	"periodstart":"2026-08-01T00:00:00.0+02:00",
	"periodend":"2026-08-31T00:00:00.0+02:00",
	"totalusage":{"peak":200,"offpeak":100,"units":"GB"},
	"allocatedusage":{"volume":750,"units":"GB"}
}]}]}]}`

func freshToken(value string) *session.Token {
	now := time.Now()
	return &session.Token{
		Cookies:   []session.Cookie{{Name: "TOKENID", Value: value}},
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

// fakeAuth honors the authenticator contract: a successful login saves
// the fresh session to the store before returning it.
type fakeAuth struct {
	store session.Store
	tok   *session.Token
	err   error
	calls int
}

func (a *fakeAuth) Authenticate(ctx context.Context, creds portal.Credentials) (*session.Token, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	if err := a.store.Save(creds.Username, a.tok); err != nil {
		return nil, err
	}
	return a.tok, nil
}

type fetchResult struct {
	payload []byte
	err     error
}

// fakeFetch pops one scripted result per call and records the token
// it was handed.
type fakeFetch struct {
	script []fetchResult
	seen   []*session.Token
}

func (f *fakeFetch) Fetch(ctx context.Context, tok *session.Token) ([]byte, error) {
	f.seen = append(f.seen, tok)
	if len(f.script) == 0 {
		return nil, errors.New("fetch called more often than scripted")
	}
	r := f.script[0]
	f.script = f.script[1:]
	return r.payload, r.err
}

func TestGetUsage_CachedSessionSkipsLogin(t *testing.T) {
	store := session.NewMemoryStore()
	cached := freshToken("cached")
	if err := store.Save("alice", cached); err != nil {
		t.Fatalf("Save: %v", err)
	}

	auth := &fakeAuth{store: store, tok: freshToken("fresh")}
	fetch := &fakeFetch{script: []fetchResult{{payload: []byte(goodPayload)}}}
	tm := &Telemeter{auth: auth, fetch: fetch, store: store}

	record, err := tm.GetUsage(context.Background(), portal.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("GetUsage: %v", err)
	}
	if auth.calls != 0 {
		t.Errorf("login calls = %d, want 0 (cache must short-circuit login)", auth.calls)
	}
	if len(fetch.seen) != 1 || fetch.seen[0].Cookies[0].Value != "cached" {
		t.Error("fetch did not use the cached session")
	}
	if want := int64(300) << 30; record.UsedBytes != want {
		t.Errorf("UsedBytes = %d, want %d", record.UsedBytes, want)
	}
}

func TestGetUsage_EmptyCacheLogsIn(t *testing.T) {
	store := session.NewMemoryStore()
	auth := &fakeAuth{store: store, tok: freshToken("fresh")}
	fetch := &fakeFetch{script: []fetchResult{{payload: []byte(goodPayload)}}}
	tm := &Telemeter{auth: auth, fetch: fetch, store: store}

	_, err := tm.GetUsage(context.Background(), portal.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("GetUsage: %v", err)
	}
	if auth.calls != 1 {
		t.Errorf("login calls = %d, want 1", auth.calls)
	}

	// The login must have left the session in the cache.
	if _, err := store.Load("alice"); err != nil {
		t.Errorf("cache empty after login: %v", err)
	}
}

func TestGetUsage_OneExpiryRetriesOnce(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.Save("alice", freshToken("stale")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	auth := &fakeAuth{store: store, tok: freshToken("fresh")}
	fetch := &fakeFetch{script: []fetchResult{
		{err: &portal.SessionExpiredError{StatusCode: 401}},
		{payload: []byte(goodPayload)},
	}}
	tm := &Telemeter{auth: auth, fetch: fetch, store: store}

	record, err := tm.GetUsage(context.Background(), portal.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("GetUsage: %v", err)
	}
	if auth.calls != 1 {
		t.Errorf("login calls = %d, want exactly 1 re-login", auth.calls)
	}
	if len(fetch.seen) != 2 {
		t.Fatalf("fetch calls = %d, want 2", len(fetch.seen))
	}
	if fetch.seen[1].Cookies[0].Value != "fresh" {
		t.Error("retried fetch did not use the fresh session")
	}
	if record.UsedBytes == 0 {
		t.Error("empty record from successful retry")
	}

	// Cache holds the new session, not the stale one.
	got, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Cookies[0].Value != "fresh" {
		t.Errorf("cached session = %q, want %q", got.Cookies[0].Value, "fresh")
	}
}

func TestGetUsage_SecondExpiryIsAuthError(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.Save("alice", freshToken("stale")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	auth := &fakeAuth{store: store, tok: freshToken("fresh")}
	fetch := &fakeFetch{script: []fetchResult{
		{err: &portal.SessionExpiredError{StatusCode: 401}},
		{err: &portal.SessionExpiredError{StatusCode: 401}},
	}}
	tm := &Telemeter{auth: auth, fetch: fetch, store: store}

	_, err := tm.GetUsage(context.Background(), portal.Credentials{Username: "alice", Password: "pw"})
	var authErr *portal.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want AuthError", err)
	}
	if auth.calls != 1 {
		t.Errorf("login calls = %d, want 1 (no login loop)", auth.calls)
	}
	if len(fetch.seen) != 2 {
		t.Errorf("fetch calls = %d, want 2", len(fetch.seen))
	}

	// The known-bad session must not linger in the cache.
	if _, err := store.Load("alice"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("cache still holds a session: %v", err)
	}
}

func TestGetUsage_BadCredentials(t *testing.T) {
	store := session.NewMemoryStore()
	auth := &fakeAuth{store: store, err: &portal.AuthError{Reason: "portal rejected the credentials"}}
	fetch := &fakeFetch{}
	tm := &Telemeter{auth: auth, fetch: fetch, store: store}

	_, err := tm.GetUsage(context.Background(), portal.Credentials{Username: "alice", Password: "wrong"})
	var authErr *portal.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want AuthError", err)
	}
	if len(fetch.seen) != 0 {
		t.Errorf("fetch called %d times after failed login, want 0", len(fetch.seen))
	}
	if _, err := store.Load("alice"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("failed login left a cache entry: %v", err)
	}
}

func TestGetUsage_TransientSurfaces(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.Save("alice", freshToken("cached")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	auth := &fakeAuth{store: store, tok: freshToken("fresh")}
	fetch := &fakeFetch{script: []fetchResult{
		{err: &portal.TransientError{StatusCode: 503}},
	}}
	tm := &Telemeter{auth: auth, fetch: fetch, store: store}

	_, err := tm.GetUsage(context.Background(), portal.Credentials{Username: "alice", Password: "pw"})
	var te *portal.TransientError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TransientError", err)
	}
	if auth.calls != 0 {
		t.Errorf("login calls = %d, want 0 (transient failures are not re-login triggers)", auth.calls)
	}
	if len(fetch.seen) != 1 {
		t.Errorf("fetch calls = %d, want 1 (fetcher already retried internally)", len(fetch.seen))
	}
}

func TestGetUsage_PortalChangedSurfaces(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.Save("alice", freshToken("cached")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fetch := &fakeFetch{script: []fetchResult{
		{err: &portal.PortalChangedError{Detail: "usage endpoint did not return JSON"}},
	}}
	tm := &Telemeter{auth: &fakeAuth{store: store}, fetch: fetch, store: store}

	_, err := tm.GetUsage(context.Background(), portal.Credentials{Username: "alice", Password: "pw"})
	var pce *portal.PortalChangedError
	if !errors.As(err, &pce) {
		t.Fatalf("err = %v, want PortalChangedError", err)
	}
}

func TestGetUsage_MalformedPayload(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.Save("alice", freshToken("cached")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fetch := &fakeFetch{script: []fetchResult{
		{payload: []byte(`{"internetusage":[]}`)},
	}}
	tm := &Telemeter{auth: &fakeAuth{store: store}, fetch: fetch, store: store}

	_, err := tm.GetUsage(context.Background(), portal.Credentials{Username: "alice", Password: "pw"})
	var mde *parser.MalformedDataError
	if !errors.As(err, &mde) {
		t.Fatalf("err = %v, want MalformedDataError", err)
	}
}
