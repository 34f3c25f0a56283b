// Package match scores and filters candidate project names against a query.
//
// Matching is a pure function: no I/O, no state beyond its inputs, and an
// empty result set is a normal outcome, not an error.
//
// # Modes
//
// Prefix mode keeps candidates whose name starts with the query, case
// insensitive, in their original order.
//
// Fuzzy mode keeps candidates containing the query as a case insensitive
// subsequence and ranks them by, in decreasing importance:
//
//   - tighter span between the first and last matched rune
//   - more matched runes that start a path segment (after "/", "-", "_", ".")
//   - a match beginning at the very start of the name
//
// Remaining ties go to the shorter candidate, then to original order. The
// placement scored for each candidate is the best one available, so a query
// rune sitting right after a separator is credited as a segment start
// whenever the subsequence allows it.
//
// An empty query is the identity filter in both modes: every candidate
// matches equally and original order is preserved.
package match
