// File: nodes.go
// Title: RACF Command AST Node Definitions
// Description: Defines the AST node types for parsed RACF commands:
//              commands, segments and the tagged value variant used for
//              keyword values. Provides string representations and basic
//              validation methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/mRACF/pkg/utils/stringx"
)

// Position represents a position in the source text. Line and Column are
// zero-based, matching the editor protocol convention used end-to-end.
type Position struct {
	Line   int // Line number (0-based)
	Column int // Column number (0-based)
	Offset int // Byte offset (0-based)
}

// ValueType discriminates the Value variant
type ValueType int

const (
	// ValueTypeFlag marks a boolean-present flag keyword (no value)
	ValueTypeFlag ValueType = iota

	// ValueTypeScalar marks a single scalar string or number value
	ValueTypeScalar

	// ValueTypeList marks an ordered list of scalar values
	ValueTypeList

	// ValueTypeSegment marks a nested segment value
	ValueTypeSegment
)

// String returns the string representation of the value type
func (vt ValueType) String() string {
	switch vt {
	case ValueTypeFlag:
		return "flag"
	case ValueTypeScalar:
		return "scalar"
	case ValueTypeList:
		return "list"
	case ValueTypeSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// Value is the tagged variant stored for every keyword. Callers switch on
// Type instead of duck-typing: exactly one of Scalar, List or Segment is
// meaningful, depending on the tag.
type Value struct {
	Type    ValueType
	Scalar  string
	List    []string
	Segment *Segment
}

// FlagValue creates a flag-presence value
func FlagValue() Value {
	return Value{Type: ValueTypeFlag}
}

// ScalarValue creates a single scalar value
func ScalarValue(s string) Value {
	return Value{Type: ValueTypeScalar, Scalar: s}
}

// ListValue creates an ordered list value
func ListValue(items []string) Value {
	return Value{Type: ValueTypeList, List: items}
}

// SegmentValue creates a nested segment value
func SegmentValue(seg *Segment) Value {
	return Value{Type: ValueTypeSegment, Segment: seg}
}

// IsFlag returns true for flag-presence values
func (v Value) IsFlag() bool {
	return v.Type == ValueTypeFlag
}

// AsScalar returns the scalar value. A one-element list also reads as a
// scalar so callers are insulated from arity collapse decisions.
func (v Value) AsScalar() (string, bool) {
	switch v.Type {
	case ValueTypeScalar:
		return v.Scalar, true
	case ValueTypeList:
		if len(v.List) == 1 {
			return v.List[0], true
		}
	}
	return "", false
}

// AsList returns the value as an ordered list. Scalars read as a
// one-element list.
func (v Value) AsList() ([]string, bool) {
	switch v.Type {
	case ValueTypeScalar:
		return []string{v.Scalar}, true
	case ValueTypeList:
		return v.List, true
	}
	return nil, false
}

// AsSegment returns the nested segment for segment values
func (v Value) AsSegment() (*Segment, bool) {
	if v.Type == ValueTypeSegment {
		return v.Segment, true
	}
	return nil, false
}

// String returns the source-like rendering of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeFlag:
		return ""
	case ValueTypeScalar:
		return fmt.Sprintf("(%s)", quoteIfNeeded(v.Scalar))
	case ValueTypeList:
		quoted := make([]string, len(v.List))
		for i, item := range v.List {
			quoted[i] = quoteIfNeeded(item)
		}
		return fmt.Sprintf("(%s)", strings.Join(quoted, " "))
	case ValueTypeSegment:
		if v.Segment != nil {
			return v.Segment.Body()
		}
		return "()"
	default:
		return ""
	}
}

// Segment represents a named, parenthesized sub-scope within a command
// (or within another segment), e.g. OMVS(UID(1000) HOME('/u/jsmith')).
// Flags inside a segment are stored as ValueTypeFlag entries in Keywords.
type Segment struct {
	Name     string           // Segment name, uppercased (e.g. "OMVS")
	Keywords map[string]Value // Keyword name (uppercased) to value
	Pos      Position         // Position of the segment name token
}

// NewSegment creates an empty segment with the given name
func NewSegment(name string) *Segment {
	return &Segment{
		Name:     strings.ToUpper(name),
		Keywords: make(map[string]Value),
	}
}

// Keyword returns the value recorded for a keyword inside the segment
func (s *Segment) Keyword(name string) (Value, bool) {
	v, ok := s.Keywords[strings.ToUpper(name)]
	return v, ok
}

// HasFlag returns true if the keyword was recorded as a flag
func (s *Segment) HasFlag(name string) bool {
	v, ok := s.Keywords[strings.ToUpper(name)]
	return ok && v.IsFlag()
}

// NestedSegment returns a nested segment recorded under the given keyword
func (s *Segment) NestedSegment(name string) (*Segment, bool) {
	v, ok := s.Keywords[strings.ToUpper(name)]
	if !ok {
		return nil, false
	}
	return v.AsSegment()
}

// Body returns the parenthesized source-like rendering of the segment body
func (s *Segment) Body() string {
	keys := make([]string, 0, len(s.Keywords))
	for k := range s.Keywords {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, k+s.Keywords[k].String())
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// String returns the source-like rendering of the full segment invocation
func (s *Segment) String() string {
	return s.Name + s.Body()
}

// Validate performs basic validation of the segment
func (s *Segment) Validate() error {
	if stringx.IsBlank(s.Name) {
		return fmt.Errorf("segment name is required")
	}
	for name, v := range s.Keywords {
		if stringx.IsBlank(name) {
			return fmt.Errorf("segment %s: keyword name cannot be empty", s.Name)
		}
		if seg, ok := v.AsSegment(); ok {
			if err := seg.Validate(); err != nil {
				return fmt.Errorf("segment %s: %w", s.Name, err)
			}
		}
	}
	return nil
}

// Command represents one parsed RACF administrative command, e.g. an
// ADDUSER directive with its userid list, keywords, flags and segments.
type Command struct {
	Name      string              // Command name, uppercased (e.g. "ADDUSER")
	StartLine int                 // First physical line of the command (0-based)
	EndLine   int                 // Last physical line of the command (0-based)
	Arguments []string            // Positional argument list, e.g. userids
	Keywords  map[string]Value    // Valued keywords (uppercased name to value)
	Flags     map[string]bool     // Flag keywords present on the command
	Segments  map[string]*Segment // Top-level segments by uppercased name
}

// NewCommand creates an empty command starting at the given line
func NewCommand(name string, line int) *Command {
	return &Command{
		Name:      strings.ToUpper(name),
		StartLine: line,
		EndLine:   line,
		Keywords:  make(map[string]Value),
		Flags:     make(map[string]bool),
		Segments:  make(map[string]*Segment),
	}
}

// HasFlag returns true if the flag keyword is present on the command
func (c *Command) HasFlag(name string) bool {
	return c.Flags[strings.ToUpper(name)]
}

// Keyword returns the value recorded for a top-level keyword
func (c *Command) Keyword(name string) (Value, bool) {
	v, ok := c.Keywords[strings.ToUpper(name)]
	return v, ok
}

// Segment returns the top-level segment with the given name
func (c *Command) Segment(name string) (*Segment, bool) {
	s, ok := c.Segments[strings.ToUpper(name)]
	return s, ok
}

// ContainsLine returns true if the physical line lies within the
// command's span
func (c *Command) ContainsLine(line int) bool {
	return c.StartLine <= line && line <= c.EndLine
}

// FlagNames returns the sorted list of present flags
func (c *Command) FlagNames() []string {
	names := make([]string, 0, len(c.Flags))
	for name := range c.Flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SegmentNames returns the sorted list of top-level segment names
func (c *Command) SegmentNames() []string {
	names := make([]string, 0, len(c.Segments))
	for name := range c.Segments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a canonical source-like rendering of the command.
// Keywords, flags and segments print in sorted order since insertion
// order is not semantically significant.
func (c *Command) String() string {
	parts := []string{c.Name}

	if len(c.Arguments) > 0 {
		quoted := make([]string, len(c.Arguments))
		for i, arg := range c.Arguments {
			quoted[i] = quoteIfNeeded(arg)
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(quoted, " ")))
	}

	parts = append(parts, c.FlagNames()...)

	keys := make([]string, 0, len(c.Keywords))
	for k := range c.Keywords {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+c.Keywords[k].String())
	}

	for _, name := range c.SegmentNames() {
		parts = append(parts, c.Segments[name].String())
	}

	return strings.Join(parts, " ")
}

// Validate performs basic validation of the command
func (c *Command) Validate() error {
	if stringx.IsBlank(c.Name) {
		return fmt.Errorf("command name is required")
	}
	if c.StartLine > c.EndLine {
		return fmt.Errorf("command %s: start line %d after end line %d",
			c.Name, c.StartLine, c.EndLine)
	}
	for _, seg := range c.Segments {
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("command %s: %w", c.Name, err)
		}
	}
	return nil
}

// quoteIfNeeded re-quotes scalars that contain characters which would not
// survive re-lexing as a bare identifier
func quoteIfNeeded(s string) string {
	if s == "" {
		return "''"
	}
	for _, r := range s {
		if r == ' ' || r == '\'' || r == '(' || r == ')' || r == '/' {
			return "'" + strings.ReplaceAll(s, "'", "''") + "'"
		}
	}
	return s
}
