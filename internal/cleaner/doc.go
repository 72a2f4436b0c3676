// Package cleaner validates raw price rows and resolves duplicates.
//
// The cleaner:
//   - Skips blank lines and a header row
//   - Drops rows with a malformed shape, an unparseable date, or a missing,
//     non-numeric, or non-positive price
//   - Resolves duplicate (date, ticker) pairs by keeping the last occurrence
//   - Counts every dropped row by reason in a Report
//
// Cleaning is idempotent: identical input always yields identical rows and
// an identical Report.
package cleaner
