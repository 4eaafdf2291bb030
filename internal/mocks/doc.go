// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized mock implementations can be reused across packages.
// Each mock exposes function fields for per-test customization and a
// map-backed default behavior that honors the store sentinel errors.
package mocks
