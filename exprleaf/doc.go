// Package exprleaf builds condition leaves from expr-lang expression
// strings, so decision logic can be declared from data (YAML tree
// definitions, CLI flags) instead of Go closures. Expressions are compiled
// once at construction time against the context type and evaluated with the
// shared context as environment on every tick.
package exprleaf
