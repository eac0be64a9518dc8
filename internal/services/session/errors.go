package session

import "errors"

// ErrMissingClaim is returned when token issuance is requested without an
// identity claim.
var ErrMissingClaim = errors.New("identity claim is required")

// ErrSignToken is returned when we cannot sign a session token.
var ErrSignToken = errors.New("failed to sign session token")

// ErrInvalidToken is returned for a missing, malformed, tampered, or expired
// session token.
var ErrInvalidToken = errors.New("invalid or expired session token")
