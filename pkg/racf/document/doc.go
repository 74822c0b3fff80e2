// File: doc.go
// Title: Package Documentation for document
// Description: Package documentation for the RACF document index
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial documentation

// Package document builds and queries the position-addressable index of
// one RACF source snapshot.
//
// Build runs the lexer once, slices the token stream into per-command
// spans at command-token boundaries, then structurally parses each span
// in isolation. A failed span keeps its line extent with empty
// structured fields and a recorded diagnostic, so position queries stay
// answerable over malformed regions.
//
// A Document is immutable after Build. The whole-document rebuild model
// is deliberate: on every edit the owning service builds a new Document
// and swaps it in atomically, so no incremental reparse state exists
// and snapshots of different sources never share mutable data.
package document
