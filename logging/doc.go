// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug
// any structured logger. Tree execution is hot-path code, so the default is
// the zero-cost NoOpLogger; the runner and the LLM leaves accept a Logger
// via functional options.
package logging
