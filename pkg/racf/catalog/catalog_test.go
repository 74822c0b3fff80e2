// File: catalog_test.go
// Title: Tests for RACF Vocabulary Catalog
// Description: Tests vocabulary registration, classification predicates,
//              abbreviation handling and the built-in RACF vocabulary.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial catalog tests

package catalog

import (
	"testing"
)

func TestCatalog_Registration(t *testing.T) {
	c := New(DefaultOptions())

	if err := c.RegisterCommand("ADDUSER", "AU", "Create a new user profile"); err != nil {
		t.Fatalf("RegisterCommand() error = %v", err)
	}
	if err := c.RegisterCommand("ADDUSER", "AU", "duplicate"); err == nil {
		t.Error("duplicate RegisterCommand() did not fail")
	}
	if err := c.RegisterCommand("", "", ""); err == nil {
		t.Error("empty RegisterCommand() did not fail")
	}

	if err := c.RegisterKeyword("name", "User name"); err != nil {
		t.Fatalf("RegisterKeyword() error = %v", err)
	}
	if err := c.RegisterFlag("special", "SPECIAL authority"); err != nil {
		t.Fatalf("RegisterFlag() error = %v", err)
	}
	if err := c.RegisterSegment("omvs", "z/OS UNIX settings", map[string]string{
		"uid": "User identifier",
	}); err != nil {
		t.Fatalf("RegisterSegment() error = %v", err)
	}

	if !c.IsCommand("adduser") {
		t.Error("IsCommand(adduser) = false")
	}
	if !c.IsCommand("au") {
		t.Error("IsCommand(au) = false with abbreviations enabled")
	}
	if !c.IsKeyword("NAME") {
		t.Error("IsKeyword(NAME) = false")
	}
	if !c.IsKeyword("SPECIAL") || !c.IsFlagKeyword("SPECIAL") {
		t.Error("flag SPECIAL not classified as keyword and flag")
	}
	if c.IsFlagKeyword("NAME") {
		t.Error("IsFlagKeyword(NAME) = true for a valued keyword")
	}
	if !c.IsSegmentName("OMVS") {
		t.Error("IsSegmentName(OMVS) = false")
	}
	if !c.IsKeyword("UID") {
		t.Error("segment keyword UID not registered globally")
	}
}

func TestCatalog_AbbreviationsDisabled(t *testing.T) {
	c := New(Options{EnableAbbreviations: false})
	if err := c.RegisterCommand("ADDUSER", "AU", ""); err != nil {
		t.Fatalf("RegisterCommand() error = %v", err)
	}

	if !c.IsCommand("ADDUSER") {
		t.Error("IsCommand(ADDUSER) = false")
	}
	if c.IsCommand("AU") {
		t.Error("IsCommand(AU) = true with abbreviations disabled")
	}
}

func TestCatalog_ExpandAbbreviation(t *testing.T) {
	c := Builtin(DefaultOptions())

	tests := []struct {
		word string
		want string
		ok   bool
	}{
		{"AU", "ADDUSER", true},
		{"alu", "ALTUSER", true},
		{"ADDUSER", "ADDUSER", true},
		{"XYZ", "", false},
	}

	for _, tt := range tests {
		got, ok := c.ExpandAbbreviation(tt.word)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExpandAbbreviation(%s) = (%q, %v), want (%q, %v)",
				tt.word, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuiltin_Vocabulary(t *testing.T) {
	c := Builtin(DefaultOptions())

	for _, cmd := range []string{"ADDUSER", "ALTUSER", "PERMIT", "SETROPTS", "RACDCERT"} {
		if !c.IsCommand(cmd) {
			t.Errorf("IsCommand(%s) = false", cmd)
		}
	}
	for _, seg := range []string{"OMVS", "TSO", "KERB", "ENCRYPT", "CICS", "WORKATTR"} {
		if !c.IsSegmentName(seg) {
			t.Errorf("IsSegmentName(%s) = false", seg)
		}
	}
	for _, flag := range []string{"SPECIAL", "NOSPECIAL", "AUTOUID", "AES256SHA2"} {
		if !c.IsFlagKeyword(flag) {
			t.Errorf("IsFlagKeyword(%s) = false", flag)
		}
	}
	for _, kw := range []string{"NAME", "DFLTGRP", "UACC", "UID", "HOME", "ACCTNUM", "SUPGROUP"} {
		if !c.IsKeyword(kw) {
			t.Errorf("IsKeyword(%s) = false", kw)
		}
	}

	// Valued keywords are not flags
	for _, kw := range []string{"NAME", "UID", "KERBNAME"} {
		if c.IsFlagKeyword(kw) {
			t.Errorf("IsFlagKeyword(%s) = true for a valued keyword", kw)
		}
	}
}

func TestBuiltin_Describe(t *testing.T) {
	c := Builtin(DefaultOptions())

	tests := []struct {
		word string
		want string
	}{
		{"ADDUSER", "Create a new user profile"},
		{"AU", "Create a new user profile"},
		{"OMVS", "OMVS segment - z/OS UNIX settings"},
		{"SPECIAL", "SPECIAL authority (full admin)"},
		{"UID", "User identifier (0-2147483647)"},
	}

	for _, tt := range tests {
		got, ok := c.Describe(tt.word)
		if !ok {
			t.Errorf("Describe(%s) not found", tt.word)
			continue
		}
		if got != tt.want {
			t.Errorf("Describe(%s) = %q, want %q", tt.word, got, tt.want)
		}
	}

	if _, ok := c.Describe("NOSUCHWORD"); ok {
		t.Error("Describe(NOSUCHWORD) found")
	}
}

func TestBuiltin_SegmentKeywords(t *testing.T) {
	c := Builtin(DefaultOptions())

	omvs := c.SegmentKeywords("OMVS")
	if len(omvs) == 0 {
		t.Fatal("SegmentKeywords(OMVS) is empty")
	}
	for _, kw := range []string{"UID", "HOME", "PROGRAM", "AUTOUID"} {
		if _, ok := omvs[kw]; !ok {
			t.Errorf("OMVS keyword %s missing", kw)
		}
	}

	if kws := c.SegmentKeywords("NOSUCHSEG"); kws != nil {
		t.Errorf("SegmentKeywords(NOSUCHSEG) = %v, want nil", kws)
	}
}

func TestBuiltin_CommandsSorted(t *testing.T) {
	c := Builtin(DefaultOptions())

	cmds := c.Commands()
	if len(cmds) < 20 {
		t.Fatalf("Commands() returned %d entries, want at least 20", len(cmds))
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i-1].Name >= cmds[i].Name {
			t.Errorf("Commands() not sorted: %s before %s", cmds[i-1].Name, cmds[i].Name)
		}
	}
}
