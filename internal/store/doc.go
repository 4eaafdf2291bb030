// Package store defines the persistence contracts consumed by the
// service layer, along with the sentinel errors all implementations
// return. Concrete implementations live in internal/platform/postgres.
package store
