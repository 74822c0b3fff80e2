// File: parser.go
// Title: RACF Command Recursive-Descent Parser
// Description: Implements the structural parsing phase of RACF command
//              processing. Consumes the token stream produced by the
//              lexer (continuations elided) and builds one Command AST
//              per recognized command, dispatching keywords into flags,
//              values and recursively nested segments.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	"github.com/msto63/mRACF/pkg/core/log"
	"github.com/msto63/mRACF/pkg/racf/ast"
)

// MalformedCommandError reports a hard structural failure while parsing a
// single command's body, typically a missing '(' or ')'. The failure is
// scoped to one command; callers continue with the next command.
type MalformedCommandError struct {
	Message string
	Line    int // 0-based line of the offending token
	Column  int // 0-based column of the offending token
	Token   Token
}

// Error implements the error interface
func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("malformed command at line %d, column %d: %s",
		e.Line+1, e.Column+1, e.Message)
}

// Options configures a Parser
type Options struct {
	// Classify answers vocabulary questions during parsing. Required.
	Classify Classifier

	// Logger receives trace output during parsing. Optional.
	Logger *log.Logger
}

// Parser builds Command AST nodes from a token stream
type Parser struct {
	tokens   []Token
	pos      int
	classify Classifier
	logger   *log.Logger
}

// NewParser creates a parser over the given token sequence. Continuation
// and comment tokens carry no grammatical meaning and are filtered out
// up front.
func NewParser(tokens []Token, opts Options) *Parser {
	filtered := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == TokenContinuation || tok.Type == TokenComment {
			continue
		}
		filtered = append(filtered, tok)
	}
	// The stream always ends with EndOfInput so current() stays total
	if len(filtered) == 0 || filtered[len(filtered)-1].Type != TokenEndOfInput {
		filtered = append(filtered, Token{Type: TokenEndOfInput})
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	return &Parser{
		tokens:   filtered,
		classify: opts.Classify,
		logger:   logger,
	}
}

// ParseDocument parses all commands in the token stream. Each command's
// structural parse failure is isolated: the failed command is returned
// with empty structured fields alongside its error, and parsing resumes
// at the next command token.
func (p *Parser) ParseDocument() ([]*ast.Command, []*MalformedCommandError) {
	var commands []*ast.Command
	var errs []*MalformedCommandError

	for p.current().Type != TokenEndOfInput {
		if p.current().Type != TokenCommand {
			p.advance()
			continue
		}

		cmd, err := p.ParseCommand()
		if err != nil {
			errs = append(errs, err)
			p.logger.Debug("command parse failed",
				log.Fields{"command": cmd.Name, "line": err.Line, "error": err.Message})
		}
		commands = append(commands, cmd)
	}

	return commands, errs
}

// ParseCommand parses one command starting at the current Command token.
// On structural failure the returned command still carries its name and
// line span while keywords, flags and segments are left empty, and the
// parser position advances past the failed command's tokens up to the
// next command boundary.
func (p *Parser) ParseCommand() (*ast.Command, *MalformedCommandError) {
	start := p.current()
	cmd := ast.NewCommand(start.Value, start.Line)
	p.advance()

	// A bare parenthesized list right after the command token is the
	// positional argument list (e.g. the userid list)
	if p.current().Type == TokenLParen {
		args, err := p.parseValueList()
		if err != nil {
			return p.failCommand(cmd, err)
		}
		cmd.Arguments = args
	}

	for {
		tok := p.current()
		switch tok.Type {
		case TokenEndOfInput, TokenCommand:
			// Next command starts; this one ends implicitly
			cmd.EndLine = p.prevLine(cmd.StartLine)
			return cmd, nil

		case TokenSegmentName:
			cmd.EndLine = tok.Line
			seg, err := p.parseSegment(tok)
			if err != nil {
				return p.failCommand(cmd, err)
			}
			cmd.Segments[seg.Name] = seg

		case TokenKeyword:
			cmd.EndLine = tok.Line
			p.advance()
			if p.classify.IsFlagKeyword(tok.Value) {
				cmd.Flags[tok.Value] = true
				continue
			}
			if p.current().Type == TokenLParen {
				value, err := p.parseValue()
				if err != nil {
					return p.failCommand(cmd, err)
				}
				cmd.Keywords[tok.Value] = value
			}
			// A non-flag keyword without a value contributes nothing

		default:
			// Stray tokens are skipped without error
			cmd.EndLine = tok.Line
			p.advance()
		}
	}
}

// failCommand records the failure span, empties the structured fields and
// skips ahead to the next command boundary so the caller can continue.
func (p *Parser) failCommand(cmd *ast.Command, err *MalformedCommandError) (*ast.Command, *MalformedCommandError) {
	for p.current().Type != TokenEndOfInput && p.current().Type != TokenCommand {
		cmd.EndLine = p.current().Line
		p.advance()
	}
	cmd.Keywords = make(map[string]ast.Value)
	cmd.Flags = make(map[string]bool)
	cmd.Segments = make(map[string]*ast.Segment)
	cmd.Arguments = nil
	return cmd, err
}

// parseSegment parses a segment invocation NAME( body ). The body applies
// the same flag/value/nested-segment dispatch as the command level, so
// segments nest to arbitrary depth.
func (p *Parser) parseSegment(nameTok Token) (*ast.Segment, *MalformedCommandError) {
	seg := ast.NewSegment(nameTok.Value)
	seg.Pos = ast.Position{Line: nameTok.Line, Column: nameTok.Column, Offset: nameTok.Position}
	p.advance() // segment name

	if err := p.expect(TokenLParen); err != nil {
		return nil, err
	}

	for {
		tok := p.current()
		switch tok.Type {
		case TokenRParen:
			p.advance()
			return seg, nil

		case TokenEndOfInput, TokenCommand:
			// An unclosed segment body is a structural failure; a
			// command word inside it terminates rather than nesting
			return nil, p.errorf(tok, "expected ')' to close segment %s", seg.Name)

		case TokenSegmentName:
			nested, err := p.parseSegment(tok)
			if err != nil {
				return nil, err
			}
			seg.Keywords[nested.Name] = ast.SegmentValue(nested)

		case TokenKeyword:
			p.advance()
			if p.classify.IsFlagKeyword(tok.Value) {
				seg.Keywords[tok.Value] = ast.FlagValue()
				continue
			}
			if p.current().Type == TokenLParen {
				value, err := p.parseValue()
				if err != nil {
					return nil, err
				}
				seg.Keywords[tok.Value] = value
			}

		default:
			p.advance()
		}
	}
}

// parseValue parses a parenthesized value, collapsing a one-element list
// to a scalar
func (p *Parser) parseValue() (ast.Value, *MalformedCommandError) {
	values, err := p.parseValueList()
	if err != nil {
		return ast.Value{}, err
	}
	if len(values) == 1 {
		return ast.ScalarValue(values[0]), nil
	}
	return ast.ListValue(values), nil
}

// parseValueList parses ( scalar* ) preserving order. Identifiers,
// strings, numbers and keyword-shaped words are all accepted as scalars.
func (p *Parser) parseValueList() ([]string, *MalformedCommandError) {
	if err := p.expect(TokenLParen); err != nil {
		return nil, err
	}

	var values []string
	for {
		tok := p.current()
		switch tok.Type {
		case TokenIdentifier, TokenString, TokenNumber, TokenKeyword, TokenSegmentName:
			values = append(values, tok.Value)
			p.advance()
		case TokenRParen:
			p.advance()
			return values, nil
		default:
			return nil, p.errorf(tok, "expected ')' to close value list")
		}
	}
}

// prevLine returns the line of the last consumed token, or the fallback
// when nothing has been consumed yet
func (p *Parser) prevLine(fallback int) int {
	if p.pos > 0 {
		return p.tokens[p.pos-1].Line
	}
	return fallback
}

// current returns the token at the parser position; past the end it keeps
// returning the final EndOfInput token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token
func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it has the wanted type, or fails
func (p *Parser) expect(want TokenType) *MalformedCommandError {
	tok := p.current()
	if tok.Type != want {
		return p.errorf(tok, "expected %s, got %s", want, tok.Type)
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(tok Token, format string, args ...interface{}) *MalformedCommandError {
	return &MalformedCommandError{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
		Token:   tok,
	}
}
