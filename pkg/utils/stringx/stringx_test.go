// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for the string utility functions in the stringx
//              package covering blank detection, line splitting and default
//              fallbacks.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial test implementation

package stringx

import (
	"reflect"
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"tab and spaces", " \t ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error("IsEmpty(\"\") = false; want true")
	}
	if IsEmpty(" ") {
		t.Error("IsEmpty(\" \") = true; want false")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty input", "", []string{""}},
		{"single line", "ADDUSER (JSMITH)", []string{"ADDUSER (JSMITH)"}},
		{"two lines", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitLines(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("SplitLines(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFromDefault(t *testing.T) {
	if got := FromDefault("", "fallback"); got != "fallback" {
		t.Errorf("FromDefault(\"\", \"fallback\") = %q; want \"fallback\"", got)
	}
	if got := FromDefault("value", "fallback"); got != "value" {
		t.Errorf("FromDefault(\"value\", \"fallback\") = %q; want \"value\"", got)
	}
	if got := FromBlankDefault("  ", "fallback"); got != "fallback" {
		t.Errorf("FromBlankDefault(\"  \", \"fallback\") = %q; want \"fallback\"", got)
	}
}
