// Package llm provides model-backed tree leaves for agent scripting: a
// condition that asks a language model a yes/no question about the shared
// context, and an action that generates text into it. The Model interface
// is deliberately minimal (single-turn completion); the anthropic and openai
// subpackages adapt the official SDK clients, and MockModel serves tests
// and offline examples.
//
// Model calls are synchronous within one tick, so poll loops driving an
// LLM-backed tree should be paced (see runner.WithInterval) and bounded
// (runner.WithMaxTicks). Per the status algebra, a transport or API error
// cannot propagate as a Go error from a tick; it is logged and surfaced as
// failure, which trees typically wrap in a retry decorator.
package llm
