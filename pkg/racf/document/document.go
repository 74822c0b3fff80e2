// File: document.go
// Title: RACF Document Index
// Description: Builds and owns the position-addressable index of one
//              RACF source snapshot: the raw lines, the full token
//              sequence and the parsed command list. Answers tokenAt
//              and commandAt queries for editor features. A document is
//              immutable once built; edits produce a new document.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial document index implementation

package document

import (
	"github.com/google/uuid"

	"github.com/msto63/mRACF/pkg/core/log"
	"github.com/msto63/mRACF/pkg/racf/ast"
	"github.com/msto63/mRACF/pkg/racf/parser"
	"github.com/msto63/mRACF/pkg/utils/stringx"
)

// Diagnostic records one isolated command parse failure. The failure
// never aborts the document build; the affected command keeps its line
// span with empty structured fields.
type Diagnostic struct {
	Message string
	Line    int // 0-based line of the offending token
	Column  int // 0-based column of the offending token
}

// Options configures a document build
type Options struct {
	// Classify answers vocabulary questions. Required.
	Classify parser.Classifier

	// Logger receives build trace output. Optional.
	Logger *log.Logger
}

// Document is the index of one source snapshot. All accessors return
// snapshots safe to hold across edits; the document itself is never
// mutated after Build returns.
type Document struct {
	id          string
	source      string
	lines       []string
	tokens      []parser.Token
	commands    []*ast.Command
	diagnostics []Diagnostic
}

// Build lexes and parses the source text into a fresh document index.
// The build is total: lexical irregularities degrade to skipped input
// and per-command structural failures are recorded as diagnostics while
// the rest of the document parses normally.
func Build(source string, opts Options) *Document {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	doc := &Document{
		id:     uuid.NewString(),
		source: source,
		lines:  stringx.SplitLines(source),
		tokens: parser.Tokenize(source, opts.Classify),
	}

	// Pass one: slice the token stream into command spans purely from
	// command-token boundaries. Spans stay valid even when a command's
	// body later fails to parse structurally.
	spans := commandSpans(doc.tokens)

	// Pass two: structurally parse each span in isolation. The span
	// terminator carries the boundary token's position so failure
	// diagnostics point at the real source location.
	for _, span := range spans {
		spanTokens := make([]parser.Token, 0, span.end-span.start+1)
		spanTokens = append(spanTokens, doc.tokens[span.start:span.end]...)
		if span.end < len(doc.tokens) {
			boundary := doc.tokens[span.end]
			spanTokens = append(spanTokens, parser.Token{
				Type:     parser.TokenEndOfInput,
				Position: boundary.Position,
				Line:     boundary.Line,
				Column:   boundary.Column,
			})
		}
		p := parser.NewParser(spanTokens, parser.Options{
			Classify: opts.Classify,
			Logger:   logger,
		})
		cmd, err := p.ParseCommand()
		if err != nil {
			doc.diagnostics = append(doc.diagnostics, Diagnostic{
				Message: err.Message,
				Line:    err.Line,
				Column:  err.Column,
			})
		}
		// The span scan owns the line extent
		cmd.StartLine = span.startLine
		cmd.EndLine = span.endLine
		doc.commands = append(doc.commands, cmd)
	}

	logger.Debug("document built", log.Fields{
		"build":       doc.id,
		"lines":       len(doc.lines),
		"tokens":      len(doc.tokens),
		"commands":    len(doc.commands),
		"diagnostics": len(doc.diagnostics),
	})

	return doc
}

// span is one command's token range [start, end) with its line extent
type span struct {
	start     int
	end       int
	startLine int
	endLine   int
}

// commandSpans slices the token stream at command-token boundaries. The
// line extent of a span covers every token up to the next command or end
// of input.
func commandSpans(tokens []parser.Token) []span {
	var spans []span
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Type != parser.TokenCommand {
			continue
		}
		s := span{start: i, startLine: tokens[i].Line, endLine: tokens[i].Line}
		j := i + 1
		for j < len(tokens) &&
			tokens[j].Type != parser.TokenCommand &&
			tokens[j].Type != parser.TokenEndOfInput {
			s.endLine = tokens[j].Line
			j++
		}
		s.end = j
		spans = append(spans, s)
		i = j - 1
	}
	return spans
}

// ID returns the unique identifier of this build, used to correlate log
// output across the build and its consumers
func (d *Document) ID() string {
	return d.id
}

// Source returns the raw source text of the snapshot
func (d *Document) Source() string {
	return d.source
}

// Lines returns the raw source lines
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Line returns the raw text of one line
func (d *Document) Line(line int) (string, bool) {
	if line < 0 || line >= len(d.lines) {
		return "", false
	}
	return d.lines[line], true
}

// LineCount returns the number of lines in the snapshot
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Tokens returns the full token sequence including the terminating
// EndOfInput token
func (d *Document) Tokens() []parser.Token {
	out := make([]parser.Token, len(d.tokens))
	copy(out, d.tokens)
	return out
}

// Commands returns all parsed commands in source order
func (d *Document) Commands() []*ast.Command {
	out := make([]*ast.Command, len(d.commands))
	copy(out, d.commands)
	return out
}

// Diagnostics returns the recorded per-command parse failures
func (d *Document) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(d.diagnostics))
	copy(out, d.diagnostics)
	return out
}

// TokenAt returns the token covering the given zero-based position. A
// token covers the columns [Column, EndColumn) on its starting line.
// Whitespace and skipped characters are covered by no token.
func (d *Document) TokenAt(line, column int) (parser.Token, bool) {
	for _, tok := range d.tokens {
		if tok.Type == parser.TokenEndOfInput {
			continue
		}
		if tok.Line == line && tok.Column <= column && column < tok.EndColumn() {
			return tok, true
		}
	}
	return parser.Token{}, false
}

// CommandAt returns the command whose line span contains the given
// zero-based line. Spans never overlap so at most one command matches.
func (d *Document) CommandAt(line int) (*ast.Command, bool) {
	for _, cmd := range d.commands {
		if cmd.ContainsLine(line) {
			return cmd, true
		}
	}
	return nil, false
}
