// Package logger provides structured logging setup and context helpers
// for the application. All logging goes through log/slog with a JSON
// handler whose level comes from server configuration.
package logger
