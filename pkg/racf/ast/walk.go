// File: walk.go
// Title: RACF Command AST Traversal
// Description: Implements visitor-based traversal over parsed commands
//              and their (possibly nested) segment trees.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial traversal implementation

package ast

import "sort"

// Visitor receives nodes during a Walk. VisitSegment is called for every
// segment in the tree, including segments nested inside other segments.
type Visitor interface {
	VisitCommand(cmd *Command)
	VisitSegment(cmd *Command, seg *Segment, depth int)
}

// Walk traverses the command and all segments depth-first. Segments on
// each level are visited in sorted name order for determinism.
func Walk(cmd *Command, v Visitor) {
	if cmd == nil {
		return
	}
	v.VisitCommand(cmd)
	for _, name := range cmd.SegmentNames() {
		walkSegment(cmd, cmd.Segments[name], 0, v)
	}
}

func walkSegment(cmd *Command, seg *Segment, depth int, v Visitor) {
	v.VisitSegment(cmd, seg, depth)

	names := make([]string, 0, len(seg.Keywords))
	for name := range seg.Keywords {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if nested, ok := seg.Keywords[name].AsSegment(); ok {
			walkSegment(cmd, nested, depth+1, v)
		}
	}
}

// SegmentVisitorFunc adapts a function to the Visitor interface when only
// segments are of interest
type SegmentVisitorFunc func(cmd *Command, seg *Segment, depth int)

// VisitCommand implements Visitor
func (f SegmentVisitorFunc) VisitCommand(cmd *Command) {}

// VisitSegment implements Visitor
func (f SegmentVisitorFunc) VisitSegment(cmd *Command, seg *Segment, depth int) {
	f(cmd, seg, depth)
}
