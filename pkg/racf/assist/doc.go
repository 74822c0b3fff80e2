// File: doc.go
// Title: Package Documentation for assist
// Description: Package documentation for the cursor context resolver
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial documentation

// Package assist resolves what a cursor position in RACF source expects
// next, driving completion candidate selection.
//
// The resolver is deliberately textual: it lexes the prefix of the
// logical statement (continuation-glued physical lines up to the
// cursor) and tracks open parentheses with the word that opened each
// one. This keeps the answer useful on incomplete input that the
// structural parser would reject.
package assist
