package portal

import "fmt"

// AuthError means the portal rejected the credentials, or kept
// rejecting freshly issued sessions. Retrying with the same password
// will not help.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// NetworkError means the portal could not be reached at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TransientError means the portal flaked: the identical request may
// succeed on immediate retry. StatusCode is 0 for timeouts.
type TransientError struct {
	StatusCode int
	Err        error
}

func (e *TransientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transient portal failure: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("transient portal failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// SessionExpiredError means the portal no longer accepts the session
// token. The caller re-authenticates; retrying the fetch as-is is
// pointless.
type SessionExpiredError struct {
	StatusCode int
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("session expired: HTTP %d", e.StatusCode)
}

// PortalChangedError means a response matched neither the success
// shape nor any known failure shape. The integration itself needs
// maintenance; no amount of retrying helps.
type PortalChangedError struct {
	Detail string
}

func (e *PortalChangedError) Error() string {
	return "portal response not recognized: " + e.Detail
}
