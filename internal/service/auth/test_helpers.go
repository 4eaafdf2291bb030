package auth

import "time"

// NewTestJWTService creates a JWT service with a fixed secret, lifetime,
// and time function for deterministic testing. The secret must still be
// at least 32 characters so tests exercise the same signing path as
// production.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}

	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0, // No leeway in tests so expiry boundaries are exact
	}
}
