// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// errNoDatabaseDSN is returned by validate when no configuration source
// provided a database connection string. The application cannot serve any
// reports without a store, so this is a fatal startup error.
var errNoDatabaseDSN = errors.New("no database DSN is configured")
