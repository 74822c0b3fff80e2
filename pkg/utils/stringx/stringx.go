// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the small set of string operations shared by the
//              mRACF packages: blank checks, line splitting and default
//              fallbacks. Extends the Go standard library where validation
//              and document handling need it.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one
// non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// SplitLines splits a string into lines on '\n'. An empty input yields a
// single empty line so that line indexes stay valid for empty documents.
func SplitLines(s string) []string {
	return strings.Split(s, "\n")
}

// FromDefault returns s, or defaultValue when s is empty.
func FromDefault(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// FromBlankDefault returns s, or defaultValue when s is blank.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}
