// ============================================================================
// mRACF - RACF Command Language Workbench
// ============================================================================
//
// Package:     version
// Description: Central version management for the racfls tool
// Author:      msto63 with Claude
// Created:     2026-08-30
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Build information, overridable via -ldflags at build time
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info returns a human-readable multi-line version description
func Info() string {
	return fmt.Sprintf("mRACF racfls v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns the bare semantic version string
func Short() string {
	return Version
}
