// File: parser_test.go
// Title: Tests for RACF Command Parser
// Description: Tests structural parsing of RACF commands including
//              argument lists, flags, valued keywords, nested segments,
//              continuation folding and malformed-command isolation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial parser tests

package parser

import (
	"testing"

	"github.com/msto63/mRACF/pkg/racf/ast"
)

func parseOne(t *testing.T, source string) *ast.Command {
	t.Helper()
	classify := newTestClassifier()
	p := NewParser(Tokenize(source, classify), Options{Classify: classify})
	commands, errs := p.ParseDocument()
	if len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	if len(commands) != 1 {
		t.Fatalf("got %d commands, want 1", len(commands))
	}
	return commands[0]
}

func TestParser_BasicCommand(t *testing.T) {
	cmd := parseOne(t, "ADDUSER (JSMITH) NAME('John Smith') DFLTGRP(PAYROLL)")

	if cmd.Name != "ADDUSER" {
		t.Errorf("Name = %q, want ADDUSER", cmd.Name)
	}
	if len(cmd.Arguments) != 1 || cmd.Arguments[0] != "JSMITH" {
		t.Errorf("Arguments = %v, want [JSMITH]", cmd.Arguments)
	}
	if name, _ := cmd.Keywords["NAME"].AsScalar(); name != "John Smith" {
		t.Errorf("NAME = %q, want 'John Smith'", name)
	}
	if grp, _ := cmd.Keywords["DFLTGRP"].AsScalar(); grp != "PAYROLL" {
		t.Errorf("DFLTGRP = %q, want PAYROLL", grp)
	}
	if len(cmd.Flags) != 0 {
		t.Errorf("Flags = %v, want empty", cmd.Flags)
	}
	if len(cmd.Segments) != 0 {
		t.Errorf("Segments = %v, want empty", cmd.Segments)
	}
}

func TestParser_Flags(t *testing.T) {
	cmd := parseOne(t, "ADDUSER (SECADMIN) SPECIAL AUDITOR OPERATIONS")

	if len(cmd.Flags) != 3 {
		t.Fatalf("Flags = %v, want 3 entries", cmd.Flags)
	}
	for _, flag := range []string{"SPECIAL", "AUDITOR", "OPERATIONS"} {
		if !cmd.HasFlag(flag) {
			t.Errorf("HasFlag(%s) = false, want true", flag)
		}
	}
	if len(cmd.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty", cmd.Keywords)
	}
	if len(cmd.Segments) != 0 {
		t.Errorf("Segments = %v, want empty", cmd.Segments)
	}
}

func TestParser_FlagValueDisjointness(t *testing.T) {
	cmd := parseOne(t, "ADDUSER (JSMITH) SPECIAL NAME('John Smith')")

	if !cmd.HasFlag("SPECIAL") {
		t.Error("SPECIAL missing from flags")
	}
	if _, ok := cmd.Keywords["SPECIAL"]; ok {
		t.Error("flag keyword SPECIAL leaked into value mapping")
	}
	if _, ok := cmd.Keywords["NAME"]; !ok {
		t.Error("valued keyword NAME missing from value mapping")
	}
	if cmd.HasFlag("NAME") {
		t.Error("valued keyword NAME leaked into flags")
	}
}

func TestParser_SegmentAcrossContinuation(t *testing.T) {
	cmd := parseOne(t, "ADDUSER (JSMITH) -\n  OMVS(UID(1000) HOME('/u/jsmith'))")

	if cmd.StartLine != 0 || cmd.EndLine != 1 {
		t.Errorf("span = [%d, %d], want [0, 1]", cmd.StartLine, cmd.EndLine)
	}

	omvs, ok := cmd.Segment("OMVS")
	if !ok {
		t.Fatalf("Segments = %v, missing OMVS", cmd.SegmentNames())
	}
	if uid, _ := omvs.Keywords["UID"].AsScalar(); uid != "1000" {
		t.Errorf("OMVS UID = %q, want 1000", uid)
	}
	if home, _ := omvs.Keywords["HOME"].AsScalar(); home != "/u/jsmith" {
		t.Errorf("OMVS HOME = %q, want /u/jsmith", home)
	}
}

func TestParser_ContinuationFoldingIdentity(t *testing.T) {
	folded := parseOne(t, "ADDUSER (JSMITH) NAME('John Smith') -\n  SPECIAL -\n  OMVS(AUTOUID HOME('/u/jsmith'))")
	oneLine := parseOne(t, "ADDUSER (JSMITH) NAME('John Smith') SPECIAL OMVS(AUTOUID HOME('/u/jsmith'))")

	if folded.String() != oneLine.String() {
		t.Errorf("folded AST %q differs from one-line AST %q",
			folded.String(), oneLine.String())
	}
	if folded.StartLine != 0 || folded.EndLine != 2 {
		t.Errorf("folded span = [%d, %d], want [0, 2]", folded.StartLine, folded.EndLine)
	}
	if oneLine.StartLine != 0 || oneLine.EndLine != 0 {
		t.Errorf("one-line span = [%d, %d], want [0, 0]", oneLine.StartLine, oneLine.EndLine)
	}
}

func TestParser_MultipleArguments(t *testing.T) {
	cmd := parseOne(t, "ADDUSER (USER1 USER2 USER3) DFLTGRP(BATCH)")

	want := []string{"USER1", "USER2", "USER3"}
	if len(cmd.Arguments) != len(want) {
		t.Fatalf("Arguments = %v, want %v", cmd.Arguments, want)
	}
	for i, w := range want {
		if cmd.Arguments[i] != w {
			t.Errorf("Arguments[%d] = %q, want %q", i, cmd.Arguments[i], w)
		}
	}
}

func TestParser_MultiValueKeyword(t *testing.T) {
	cmd := parseOne(t, "ALTUSER (JSMITH) OWNER(SYS1 SYS2)")

	v, ok := cmd.Keyword("OWNER")
	if !ok {
		t.Fatal("OWNER keyword missing")
	}
	list, ok := v.AsList()
	if !ok || len(list) != 2 || list[0] != "SYS1" || list[1] != "SYS2" {
		t.Errorf("OWNER = %v, want [SYS1 SYS2]", list)
	}
}

func TestParser_NestedSegments(t *testing.T) {
	cmd := parseOne(t, "ALTUSER (JSMITH) A(B(C(X(1))))")

	a, ok := cmd.Segment("A")
	if !ok {
		t.Fatal("segment A missing")
	}
	b, ok := a.NestedSegment("B")
	if !ok {
		t.Fatal("segment B not nested in A")
	}
	c, ok := b.NestedSegment("C")
	if !ok {
		t.Fatal("segment C not nested in B")
	}
	if x, _ := c.Keywords["X"].AsScalar(); x != "1" {
		t.Errorf("C keyword X = %q, want 1", x)
	}
}

func TestParser_SegmentFlags(t *testing.T) {
	cmd := parseOne(t, "ADDUSER (JSMITH) OMVS(AUTOUID HOME('/u/jsmith'))")

	omvs, ok := cmd.Segment("OMVS")
	if !ok {
		t.Fatal("OMVS segment missing")
	}
	if !omvs.HasFlag("AUTOUID") {
		t.Error("AUTOUID not recorded as flag in segment")
	}
	if home, _ := omvs.Keyword("HOME"); !home.IsFlag() {
		if s, _ := home.AsScalar(); s != "/u/jsmith" {
			t.Errorf("HOME = %q, want /u/jsmith", s)
		}
	}
}

func TestParser_MalformedIsolation(t *testing.T) {
	classify := newTestClassifier()
	source := "ADDUSER (JSMITH) OMVS(UID(1000)\nALTUSER (SECADMIN) SPECIAL"
	p := NewParser(Tokenize(source, classify), Options{Classify: classify})
	commands, errs := p.ParseDocument()

	if len(commands) != 2 {
		t.Fatalf("got %d commands, want 2", len(commands))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}

	first := commands[0]
	if first.Name != "ADDUSER" || first.StartLine != 0 {
		t.Errorf("first command = %s at line %d, want ADDUSER at 0", first.Name, first.StartLine)
	}
	if len(first.Keywords) != 0 || len(first.Flags) != 0 || len(first.Segments) != 0 {
		t.Errorf("malformed command kept structured fields: kw=%v flags=%v segs=%v",
			first.Keywords, first.Flags, first.Segments)
	}

	second := commands[1]
	if second.Name != "ALTUSER" || !second.HasFlag("SPECIAL") {
		t.Errorf("second command = %s flags=%v, want ALTUSER with SPECIAL", second.Name, second.Flags)
	}
	if len(second.Arguments) != 1 || second.Arguments[0] != "SECADMIN" {
		t.Errorf("second command arguments = %v, want [SECADMIN]", second.Arguments)
	}
}

func TestParser_MalformedErrorPosition(t *testing.T) {
	classify := newTestClassifier()
	source := "ADDUSER (JSMITH) OMVS(UID(1000)"
	p := NewParser(Tokenize(source, classify), Options{Classify: classify})
	_, errs := p.ParseDocument()

	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Line != 0 {
		t.Errorf("error line = %d, want 0", errs[0].Line)
	}
	if errs[0].Error() == "" {
		t.Error("error message is empty")
	}
}

func TestParser_SkipsStrayTokens(t *testing.T) {
	// Tokens that fit no rule inside a body are skipped without error
	cmd := parseOne(t, "ADDUSER (JSMITH) STRAYWORD 42 NAME('John Smith')")

	if _, ok := cmd.Keyword("NAME"); !ok {
		t.Error("NAME keyword lost after stray tokens")
	}
}

func TestParser_CommentsIgnored(t *testing.T) {
	cmd := parseOne(t, "/* payroll onboarding */ ADDUSER (JSMITH) /* temp */ DFLTGRP(PAYROLL)")

	if grp, _ := cmd.Keywords["DFLTGRP"].AsScalar(); grp != "PAYROLL" {
		t.Errorf("DFLTGRP = %q, want PAYROLL", grp)
	}
}

func TestParser_CommandWithoutArguments(t *testing.T) {
	cmd := parseOne(t, "ADDUSER SPECIAL")

	if len(cmd.Arguments) != 0 {
		t.Errorf("Arguments = %v, want empty", cmd.Arguments)
	}
	if !cmd.HasFlag("SPECIAL") {
		t.Error("SPECIAL flag missing")
	}
}

func TestParser_EmptyDocument(t *testing.T) {
	classify := newTestClassifier()
	p := NewParser(Tokenize("   \n  /* nothing here */\n", classify), Options{Classify: classify})
	commands, errs := p.ParseDocument()

	if len(commands) != 0 || len(errs) != 0 {
		t.Errorf("commands = %v, errs = %v, want both empty", commands, errs)
	}
}
