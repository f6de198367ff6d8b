// Package logging provides a minimal logging interface and adapters for
// researchcrew.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the crew and bindings use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - CrewLogger with contextual helpers and domain specific log methods
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	c, err := crew.New(tasks, func(o *crew.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
