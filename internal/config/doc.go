// Package config defines the application configuration structure and
// its loading logic. Configuration comes from environment variables
// (TASKHUB_ prefix) with an optional config.yaml file; a missing or
// invalid JWT secret is a fatal configuration error.
package config
