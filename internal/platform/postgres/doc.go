// Package postgres contains the PostgreSQL implementations of the
// store interfaces, backed by the pgx driver in database/sql mode.
// Database errors are translated into the sentinel errors defined in
// the store package so callers never depend on driver details.
package postgres
