// Package session ties a loaded price table, a ranker, and the result
// cache into one query surface.
//
// A Session is constructed once at startup and passed by reference to
// anything that answers queries; there is no package-level state. Queries
// check the cache first, compute on a miss, and store non-empty rankings.
// An insufficient-history or no-such-date outcome is never cached: both are
// cheap to recompute and carry session-relevant diagnostics of their own.
package session
