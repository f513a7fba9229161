// Package config handles configuration loading, parsing, and validation
// from various sources (command-line flags, environment variables, files).
// It provides type-safe access to the relay's settings while keeping
// configuration details separate from request handling.
package config
