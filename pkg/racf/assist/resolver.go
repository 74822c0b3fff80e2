// File: resolver.go
// Title: RACF Cursor Context Resolver
// Description: Determines the editing context at a cursor position so
//              completion can offer the right vocabulary: command names
//              at statement start, top-level keywords after a command,
//              segment-specific keywords inside a segment's
//              parenthesized body, or plain values inside other value
//              lists. Works on in-progress, syntactically incomplete
//              input by scanning the textual prefix of the logical
//              statement rather than relying on a complete parse.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial resolver implementation

package assist

import (
	"strings"

	"github.com/msto63/mRACF/pkg/racf/ast"
	"github.com/msto63/mRACF/pkg/racf/document"
	"github.com/msto63/mRACF/pkg/racf/parser"
	"github.com/msto63/mRACF/pkg/utils/stringx"
)

// ContextKind classifies what the cursor position expects next
type ContextKind int

const (
	// ContextCommand expects a command name (start of a logical
	// statement)
	ContextCommand ContextKind = iota

	// ContextKeyword expects a top-level keyword, flag or segment name
	// (after a command on the same logical statement)
	ContextKeyword

	// ContextSegmentBody sits inside a known segment's parenthesized
	// body and expects that segment's keywords
	ContextSegmentBody

	// ContextValueList sits inside a parenthesized list that is not a
	// known segment body and expects plain values
	ContextValueList
)

// String returns the string representation of the context kind
func (ck ContextKind) String() string {
	switch ck {
	case ContextCommand:
		return "command"
	case ContextKeyword:
		return "keyword"
	case ContextSegmentBody:
		return "segment-body"
	case ContextValueList:
		return "value-list"
	default:
		return "unknown"
	}
}

// Context is the resolved editing context at one cursor position
type Context struct {
	Kind       ContextKind
	Segment    string       // Enclosing segment name for ContextSegmentBody
	Command    *ast.Command // Enclosing command from the index, may be nil
	ParenDepth int          // Open parenthesis depth at the cursor
}

// Resolve determines the editing context at the given zero-based cursor
// position. The scan covers the logical statement prefix: physical lines
// glued by trailing continuations plus the current line up to the
// cursor. The result is heuristic by design so it stays useful while the
// user is still typing.
func Resolve(doc *document.Document, line, column int, classify parser.Classifier) Context {
	ctx := Context{Kind: ContextCommand}
	if doc == nil {
		return ctx
	}

	if cmd, ok := doc.CommandAt(line); ok {
		ctx.Command = cmd
	}

	prefix := logicalPrefix(doc, line, column)
	if stringx.IsBlank(prefix) {
		return ctx
	}

	// Lexing the prefix keeps the scan honest about parens inside
	// strings and comments
	tokens := parser.Tokenize(prefix, classify)

	// openWords[i] is the word immediately before the i-th still-open
	// '(' (empty when the paren follows nothing nameable)
	var openWords []string
	sawCommand := false
	prevWord := ""

	for _, tok := range tokens {
		switch tok.Type {
		case parser.TokenLParen:
			openWords = append(openWords, prevWord)
			prevWord = ""
		case parser.TokenRParen:
			if len(openWords) > 0 {
				openWords = openWords[:len(openWords)-1]
			}
			prevWord = ""
		case parser.TokenCommand:
			if len(openWords) == 0 {
				sawCommand = true
			}
			prevWord = tok.Value
		case parser.TokenKeyword, parser.TokenSegmentName, parser.TokenIdentifier, parser.TokenNumber:
			prevWord = tok.Value
		case parser.TokenString, parser.TokenComment, parser.TokenContinuation:
			prevWord = ""
		}
	}

	ctx.ParenDepth = len(openWords)

	if ctx.ParenDepth > 0 {
		// Innermost still-open known segment wins
		for i := len(openWords) - 1; i >= 0; i-- {
			if openWords[i] != "" && classify.IsSegmentName(openWords[i]) {
				ctx.Kind = ContextSegmentBody
				ctx.Segment = openWords[i]
				return ctx
			}
		}
		ctx.Kind = ContextValueList
		return ctx
	}

	if sawCommand {
		ctx.Kind = ContextKeyword
	}
	return ctx
}

// logicalPrefix builds the text of the logical statement up to the
// cursor: preceding physical lines joined by trailing continuations,
// then the current line truncated at the cursor column.
func logicalPrefix(doc *document.Document, line, column int) string {
	current, ok := doc.Line(line)
	if !ok {
		return ""
	}
	if column < 0 {
		column = 0
	}
	if column > len(current) {
		column = len(current)
	}

	var parts []string
	for prev := line - 1; prev >= 0; prev-- {
		text, ok := doc.Line(prev)
		if !ok {
			break
		}
		trimmed := strings.TrimRight(text, " \t")
		if !strings.HasSuffix(trimmed, "-") {
			break
		}
		// Drop the continuation marker when gluing
		parts = append([]string{trimmed[:len(trimmed)-1]}, parts...)
	}

	parts = append(parts, current[:column])
	return strings.Join(parts, " ")
}
