// File: lexer.go
// Title: RACF Command Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of RACF command
//              parsing. Converts RACF source text into a stream of
//              classified tokens with zero-based position information.
//              Handles comments, quoted strings with doubled-quote
//              escapes and trailing line continuations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenEndOfInput terminates every token stream
	TokenEndOfInput TokenType = iota

	// Classified words
	TokenCommand     // ADDUSER, ALTUSER, AU, ...
	TokenKeyword     // NAME, DFLTGRP, UID, ...
	TokenSegmentName // OMVS, TSO, KERB, ...
	TokenIdentifier  // JSMITH, PAYROLL, ...
	TokenNumber      // 1000, 4096

	// Literals and punctuation
	TokenString // 'John Smith'
	TokenLParen // (
	TokenRParen // )

	// Non-grammatical tokens
	TokenContinuation // trailing -
	TokenComment      // /* ... */
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEndOfInput:
		return "END_OF_INPUT"
	case TokenCommand:
		return "COMMAND"
	case TokenKeyword:
		return "KEYWORD"
	case TokenSegmentName:
		return "SEGMENT_NAME"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenLParen:
		return "LEFT_PAREN"
	case TokenRParen:
		return "RIGHT_PAREN"
	case TokenContinuation:
		return "CONTINUATION"
	case TokenComment:
		return "COMMENT"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information. Line and
// Column are zero-based. For string tokens Value holds the decoded
// content with doubled quotes collapsed; the original case of string
// content is preserved while all classified words are uppercased.
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text (decoded for strings)
	Position int       // Byte position in input
	Line     int       // Line number (0-based)
	Column   int       // Column number (0-based)
}

// EndColumn returns the exclusive end column of the token on its starting
// line. Multi-line strings and comments report positions of their starting
// line only.
func (t Token) EndColumn() int {
	return t.Column + len(t.Value)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEndOfInput {
		return "END_OF_INPUT"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
}

// Classifier answers vocabulary membership questions for the lexer and
// parser. All classification of domain words is delegated to the caller;
// the lexer itself only knows character classes.
type Classifier interface {
	// IsCommand reports whether the uppercased word is a command name
	// (including accepted abbreviations)
	IsCommand(word string) bool

	// IsKeyword reports whether the uppercased word is a known keyword
	IsKeyword(word string) bool

	// IsSegmentName reports whether the uppercased word names a segment
	IsSegmentName(word string) bool

	// IsFlagKeyword reports whether the uppercased word is a pure
	// boolean flag keyword that never takes a value
	IsFlagKeyword(word string) bool
}

// Lexer performs lexical analysis of RACF command source text
type Lexer struct {
	input    string     // Input string
	classify Classifier // Vocabulary oracle
	position int        // Current position in input (points to current char)
	readPos  int        // Current reading position (after current char)
	ch       byte       // Current char under examination
	line     int        // Current line number (0-based)
	column   int        // Current column number (0-based)
}

// NewLexer creates a new lexer for the given input and classification
// table
func NewLexer(input string, classify Classifier) *Lexer {
	l := &Lexer{
		input:    input,
		classify: classify,
		line:     0,
		column:   -1,
	}
	l.readChar() // Initialize first character
	return l
}

// Tokenize runs the lexer over the whole input and returns the complete
// token sequence, always terminated by an EndOfInput token. Tokenize
// never fails: unterminated strings and comments consume to end of input
// and unrecognized characters are skipped silently.
func Tokenize(input string, classify Classifier) []Token {
	l := NewLexer(input, classify)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEndOfInput {
			return tokens
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		pos := l.position
		line := l.line
		column := l.column

		switch {
		case l.ch == 0:
			return Token{Type: TokenEndOfInput, Position: pos, Line: line, Column: column}

		case l.ch == '\n':
			l.readChar()
			continue

		case l.ch == '/' && l.peekChar() == '*':
			return Token{
				Type:     TokenComment,
				Value:    l.readComment(),
				Position: pos,
				Line:     line,
				Column:   column,
			}

		case l.ch == '-':
			if l.atLineContinuation() {
				l.readChar()
				return Token{Type: TokenContinuation, Value: "-", Position: pos, Line: line, Column: column}
			}
			// A dash anywhere else carries no meaning and is dropped
			l.readChar()
			continue

		case l.ch == '(':
			l.readChar()
			return Token{Type: TokenLParen, Value: "(", Position: pos, Line: line, Column: column}

		case l.ch == ')':
			l.readChar()
			return Token{Type: TokenRParen, Value: ")", Position: pos, Line: line, Column: column}

		case l.ch == '\'':
			return Token{
				Type:     TokenString,
				Value:    l.readString(),
				Position: pos,
				Line:     line,
				Column:   column,
			}

		case isWordStart(l.ch):
			word := l.readWord()
			return l.classifyWord(word, pos, line, column)

		default:
			// Unknown characters degrade gracefully: skip, no token
			l.readChar()
			continue
		}
	}
}

// classifyWord maps a raw word onto its token type using the
// classification table. Commands win over segment names, segment names
// over keywords; an all-digit word that matches nothing is a number and
// everything else an identifier.
func (l *Lexer) classifyWord(word string, pos, line, column int) Token {
	upper := strings.ToUpper(word)

	tok := Token{Value: upper, Position: pos, Line: line, Column: column}

	switch {
	case l.classify != nil && l.classify.IsCommand(upper):
		tok.Type = TokenCommand
	case l.classify != nil && l.classify.IsSegmentName(upper):
		tok.Type = TokenSegmentName
	case l.classify != nil && l.classify.IsKeyword(upper):
		tok.Type = TokenKeyword
	case isAllDigits(word):
		tok.Type = TokenNumber
		tok.Value = word
	default:
		tok.Type = TokenIdentifier
	}

	return tok
}

// atLineContinuation reports whether the current '-' is a trailing
// continuation marker: only horizontal whitespace may follow before the
// next newline or end of input.
func (l *Lexer) atLineContinuation() bool {
	for i := l.readPos; i < len(l.input); i++ {
		switch l.input[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

// readChar advances to the next character in the input
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = -1
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
	l.column++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// skipWhitespace skips horizontal whitespace. Newlines are not skipped
// here because they matter for continuation handling.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// readComment reads a /* ... */ comment including its delimiters. An
// unterminated comment consumes to end of input without error.
func (l *Lexer) readComment() string {
	var sb strings.Builder
	sb.WriteString("/*")
	l.readChar() // /
	l.readChar() // *
	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			sb.WriteString("*/")
			l.readChar()
			l.readChar()
			break
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	return sb.String()
}

// readString reads a 'quoted string' and returns its decoded content.
// A doubled quote '' decodes to a single literal quote. An unterminated
// string consumes to end of input without error.
func (l *Lexer) readString() string {
	var sb strings.Builder
	l.readChar() // opening quote
	for l.ch != 0 {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				sb.WriteByte('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // closing quote
			break
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	return sb.String()
}

// readWord reads a maximal run of word characters
func (l *Lexer) readWord() string {
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// isWordStart reports whether ch can begin a word. The national
// characters @, # and $ are valid in RACF names.
func isWordStart(ch byte) bool {
	return isAlnum(ch) || ch == '@' || ch == '#' || ch == '$' || ch == '_'
}

// isWordChar reports whether ch can continue a word. Dots are allowed so
// dataset-style dotted names lex as one word.
func isWordChar(ch byte) bool {
	return isWordStart(ch) || ch == '.'
}

func isAlnum(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
