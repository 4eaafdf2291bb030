package mocks

import (
	"errors"

	"github.com/taskhub/taskhub-api/internal/service/auth"
)

// ErrPasswordMismatch is the default mismatch error for the mock verifier.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordHasher implements auth.PasswordHasher and
// auth.PasswordVerifier for testing without paying the bcrypt cost.
// The default behavior "hashes" by prefixing, and verifies by checking
// that prefix, which is enough for use-case level tests.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	HashErr    error
	CompareErr error
}

// Ensure MockPasswordHasher implements both credential interfaces
var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

const mockHashPrefix = "hashed:"

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return mockHashPrefix + password, nil
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.CompareErr != nil {
		return m.CompareErr
	}
	if hashedPassword != mockHashPrefix+password {
		return ErrPasswordMismatch
	}
	return nil
}
