// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (env > flags > JSON file) and the
// final result is validated and filled with defaults before use.
package config
