// Package cache persists computed rankings keyed by date string.
//
// The backing file is a human-readable JSON object mapping each queried
// date to its ranked entries. An absent file is an empty cache; a corrupt
// file is treated as empty rather than failing startup. Entries are never
// rewritten: a cached date is served verbatim for the rest of the file's
// lifetime.
package cache
