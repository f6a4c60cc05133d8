// Package testutil provides shared helpers for constructing deterministic
// nodes in tests: scripted stubs with tick/reset accounting and counting
// leaves. It is internal; the public leaf adaptors live in package adapt.
package testutil
