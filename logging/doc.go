// Package logging provides a minimal logging interface and adapters for
// AgentSwarm.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the engine and agent runtime use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - SwarmLogger with delegation/task context and domain helpers
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	eng, err := engine.New(executor, func(o *engine.Options) {
//		o.Logger = logger
//	})
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
