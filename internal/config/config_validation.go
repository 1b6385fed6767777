// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Defaults applied by validate when a field was not provided by any
// configuration source.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second

	// DefaultMaxPageSkip bounds the row offset a list request may produce.
	// Offsets beyond it are rejected as client errors before reaching the
	// database.
	DefaultMaxPageSkip int64 = 100_000
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in
// defaults for optional fields left empty by every source.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Reports.MaxPageSkip <= 0 {
		c.Reports.MaxPageSkip = DefaultMaxPageSkip
	}

	if c.Storage.DB.DSN == "" {
		return errNoDatabaseDSN
	}

	return nil
}
