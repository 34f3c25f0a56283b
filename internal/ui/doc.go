// Package ui provides the interactive project selector.
//
// This package uses the Charm libraries (bubbletea, bubbles, lipgloss)
// for the terminal session and its styling.
//
// # Selection Session
//
// [Pick] runs one selection session: a query line followed by a live
// ranked candidate list. Every keystroke that changes the query re-ranks
// the candidates through the fuzzy matcher and resets the highlight to
// the best match. Enter accepts the highlighted candidate; esc, ctrl+c
// and ctrl+d cancel.
//
// The session is a bubbletea model with a value receiver, so every
// transition is a pure function from (model, message) to model. Tests
// drive the transition table directly with synthetic key messages and
// never need a terminal.
//
// # Output Discipline
//
// The session renders to stderr. Stdout is reserved for the accepted
// value so command substitution works: cd $(gorg find -f).
//
// # Design Notes
//
// Output is designed for terminal display with:
//   - Monospace font assumptions
//   - ANSI color support (degrades via colorprofile detection)
//   - Truncation of candidate rows to the terminal width
package ui
