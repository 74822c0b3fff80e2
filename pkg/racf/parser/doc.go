// File: doc.go
// Title: Package Documentation for parser
// Description: Package documentation for the RACF lexer and parser
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial documentation

// Package parser implements lexical and structural analysis of RACF
// administrative command source text.
//
// The lexer converts raw source into a flat token sequence. It is
// total: unrecognized characters are skipped, unterminated strings and
// comments consume to end of input, and the sequence always ends with
// an EndOfInput token. Word classification (command vs. keyword vs.
// segment name) is delegated entirely to a caller-supplied Classifier,
// so the same machinery serves any vocabulary subset.
//
// The parser is a recursive-descent pass over the token stream with
// continuation and comment tokens elided. Dispatch needs one token of
// lookahead only: a flag keyword records presence, a keyword followed
// by '(' records a scalar or list value, and a segment name followed by
// '(' opens a nested scope that applies the same dispatch recursively.
// Structural failures are scoped to a single command and reported as
// MalformedCommandError values; the surrounding document continues to
// parse.
//
// Typical usage:
//
//	tokens := parser.Tokenize(source, classify)
//	p := parser.NewParser(tokens, parser.Options{Classify: classify})
//	commands, errs := p.ParseDocument()
package parser
