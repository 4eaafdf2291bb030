package service

import "errors"

// Service-level errors exposed to the API boundary.
var (
	// ErrInvalidCredentials is returned by Login for both an unknown
	// email and a wrong password for a known email. The two cases are
	// deliberately indistinguishable so callers cannot probe which
	// emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
