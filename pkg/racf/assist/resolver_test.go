// File: resolver_test.go
// Title: Tests for RACF Cursor Context Resolver
// Description: Tests context resolution across command starts, keyword
//              positions, segment bodies, nested segments and
//              continuation-glued statements, including syntactically
//              incomplete input.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial resolver tests

package assist

import (
	"strings"
	"testing"

	"github.com/msto63/mRACF/pkg/racf/catalog"
	"github.com/msto63/mRACF/pkg/racf/document"
)

// cursorAt builds a document from the source with the cursor marker "|"
// removed, returning the document and the cursor position
func cursorAt(t *testing.T, source string) (*document.Document, int, int, *catalog.Catalog) {
	t.Helper()
	idx := strings.Index(source, "|")
	if idx < 0 {
		t.Fatal("no cursor marker in source")
	}
	before := source[:idx]
	line := strings.Count(before, "\n")
	column := len(before)
	if nl := strings.LastIndex(before, "\n"); nl >= 0 {
		column = len(before) - nl - 1
	}
	clean := strings.Replace(source, "|", "", 1)
	c := catalog.Builtin(catalog.DefaultOptions())
	return document.Build(clean, document.Options{Classify: c}), line, column, c
}

func TestResolve_Contexts(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		wantKind    ContextKind
		wantSegment string
		wantDepth   int
	}{
		{
			name:     "empty line expects command",
			source:   "|",
			wantKind: ContextCommand,
		},
		{
			name:     "blank prefix expects command",
			source:   "   |",
			wantKind: ContextCommand,
		},
		{
			name:     "second line after complete command expects command",
			source:   "ADDUSER (JSMITH)\n|",
			wantKind: ContextCommand,
		},
		{
			name:     "after command expects top-level keyword",
			source:   "ADDUSER (JSMITH) |",
			wantKind: ContextKeyword,
		},
		{
			name:     "after abbreviation expects top-level keyword",
			source:   "AU (JSMITH) |",
			wantKind: ContextKeyword,
		},
		{
			name:      "inside argument list is a value list",
			source:    "ADDUSER (JSM|",
			wantKind:  ContextValueList,
			wantDepth: 1,
		},
		{
			name:      "inside keyword value is a value list",
			source:    "ADDUSER (JSMITH) UACC(|",
			wantKind:  ContextValueList,
			wantDepth: 1,
		},
		{
			name:        "inside segment body",
			source:      "ADDUSER (JSMITH) OMVS(|",
			wantKind:    ContextSegmentBody,
			wantSegment: "OMVS",
			wantDepth:   1,
		},
		{
			name:        "inside segment body after keywords",
			source:      "ADDUSER (JSMITH) OMVS(AUTOUID |",
			wantKind:    ContextSegmentBody,
			wantSegment: "OMVS",
			wantDepth:   1,
		},
		{
			name:        "segment keyword value keeps segment context",
			source:      "ADDUSER (JSMITH) OMVS(UID(|",
			wantKind:    ContextSegmentBody,
			wantSegment: "OMVS",
			wantDepth:   2,
		},
		{
			name:        "innermost nested segment wins",
			source:      "ALTUSER (JSMITH) KERB(ENCRYPT(|",
			wantKind:    ContextSegmentBody,
			wantSegment: "ENCRYPT",
			wantDepth:   2,
		},
		{
			name:     "closed segment returns to keyword context",
			source:   "ADDUSER (JSMITH) OMVS(UID(1000)) |",
			wantKind: ContextKeyword,
		},
		{
			name:        "continuation glues the logical statement",
			source:      "ADDUSER (JSMITH) -\n  OMVS(|",
			wantKind:    ContextSegmentBody,
			wantSegment: "OMVS",
			wantDepth:   1,
		},
		{
			name:     "continuation line at depth zero expects keyword",
			source:   "ADDUSER (JSMITH) -\n  |",
			wantKind: ContextKeyword,
		},
		{
			name:      "paren inside string does not open a scope",
			source:    "ADDUSER (JSMITH) NAME('a (strange) name') DATA('x|",
			wantKind:  ContextValueList,
			wantDepth: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, line, column, c := cursorAt(t, tt.source)
			ctx := Resolve(doc, line, column, c)

			if ctx.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", ctx.Kind, tt.wantKind)
			}
			if ctx.Segment != tt.wantSegment {
				t.Errorf("Segment = %q, want %q", ctx.Segment, tt.wantSegment)
			}
			if tt.wantDepth != 0 && ctx.ParenDepth != tt.wantDepth {
				t.Errorf("ParenDepth = %d, want %d", ctx.ParenDepth, tt.wantDepth)
			}
		})
	}
}

func TestResolve_EnclosingCommand(t *testing.T) {
	doc, line, column, c := cursorAt(t, "ADDUSER (JSMITH) -\n  OMVS(|")
	ctx := Resolve(doc, line, column, c)

	if ctx.Command == nil {
		t.Fatal("enclosing command not resolved")
	}
	if ctx.Command.Name != "ADDUSER" {
		t.Errorf("enclosing command = %s, want ADDUSER", ctx.Command.Name)
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	c := catalog.Builtin(catalog.DefaultOptions())
	doc := document.Build("ADDUSER (JSMITH)", document.Options{Classify: c})

	ctx := Resolve(doc, 10, 0, c)
	if ctx.Kind != ContextCommand {
		t.Errorf("Kind = %s for out-of-range line, want command", ctx.Kind)
	}

	ctx = Resolve(doc, 0, 9999, c)
	if ctx.Kind != ContextKeyword {
		t.Errorf("Kind = %s for clamped column, want keyword", ctx.Kind)
	}

	ctx = Resolve(nil, 0, 0, c)
	if ctx.Kind != ContextCommand {
		t.Errorf("Kind = %s for nil document, want command", ctx.Kind)
	}
}
