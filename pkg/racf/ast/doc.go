// File: doc.go
// Title: Package Documentation for ast
// Description: Package documentation for the RACF command AST
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial documentation

// Package ast defines the abstract syntax tree produced by parsing RACF
// administrative commands.
//
// A parsed source unit is a sequence of Command nodes. Each command holds
// its physical line span, positional arguments, flag keywords, valued
// keywords and named segments. Segment bodies can nest further segments
// to arbitrary depth (e.g. KERB containing ENCRYPT).
//
// Keyword values are represented by the tagged Value variant: a keyword
// is either a presence flag, a scalar, an ordered list of scalars, or a
// nested segment. The tag is explicit so consumers switch on Value.Type
// rather than inspecting dynamic content.
//
// All command, keyword, flag and segment names are stored uppercased; the
// language is case-insensitive except inside quoted strings. Positions
// throughout the tree are zero-based in both line and column.
package ast
