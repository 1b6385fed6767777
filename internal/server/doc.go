// Package server owns the lifecycle of the HTTP transport: startup,
// signal-driven graceful shutdown, and timeout wiring from configuration.
package server
