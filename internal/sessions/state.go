// Package sessions keeps track of who is logged in to the portal and with
// what token.
package sessions

import (
	"encoding/json"
	"errors"
	"time"

	jose "github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"

	"github.com/courseportal/portal-cli/internal/portal"
)

// predefined session errors
var (
	// ErrNoSessionFound is the error for when no session is found.
	ErrNoSessionFound = errors.New("sessions: session is not found")
	// ErrMalformedSession is the error for when a session is found but its
	// token cannot be decoded.
	ErrMalformedSession = errors.New("sessions: session is malformed")
)

// State is the decoded-claims view of a bearer token. It is a read-only
// projection: it is recomputed whenever the token changes and never stored
// durably.
type State struct {
	// Public claim values (as specified in RFC 7519).
	Subject  string           `json:"sub,omitempty"`
	IssuedAt *jwt.NumericDate `json:"iat,omitempty"`
	Expiry   *jwt.NumericDate `json:"exp,omitempty"`

	// Portal claims (not standard claims).
	Email    string      `json:"email,omitempty"`
	Role     portal.Role `json:"role,omitempty"`
	FullName string      `json:"fullName,omitempty"`
}

// StateFromToken decodes the claims of a compact JWS without verifying its
// signature. Verification is the backend's job; locally a token that cannot
// be decoded is indistinguishable from no session at all, so any parse error
// is reported as ErrMalformedSession.
func StateFromToken(rawJWT string) (*State, error) {
	tok, err := jose.ParseSigned(rawJWT)
	if err != nil {
		return nil, ErrMalformedSession
	}
	var s State
	if err := json.Unmarshal(tok.UnsafePayloadWithoutVerification(), &s); err != nil {
		return nil, ErrMalformedSession
	}
	return &s, nil
}

// IsExpired reports whether the token carried an expiry in the past. The
// session layer does not enforce this; it is informational for views.
func (s *State) IsExpired() bool {
	return s.Expiry != nil && s.Expiry.Time().Before(time.Now())
}
