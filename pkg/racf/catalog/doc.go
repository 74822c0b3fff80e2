// File: doc.go
// Title: Package Documentation for catalog
// Description: Package documentation for the RACF vocabulary catalog
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial documentation

// Package catalog provides the vocabulary tables that classify RACF
// words into commands, keywords, segment names and flag keywords, plus
// the human-readable descriptions behind hover and completion output.
//
// The parser core performs no hardcoded vocabulary decisions; it asks a
// Catalog through the four classification predicates. Builtin returns a
// catalog preloaded with the ADDUSER/ALTUSER command family from the
// RACF Command Language Reference; New returns an empty catalog for
// callers that supply their own dialect.
package catalog
