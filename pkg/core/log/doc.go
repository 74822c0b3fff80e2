// File: doc.go
// Title: Log Package Documentation
// Description: Structured logging for the mRACF services and tools.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30

/*
Package log provides structured, leveled logging for mRACF.

Loggers carry contextual fields that are attached to every entry and
support JSON and text output formats. The default output is stderr:
the racfls server speaks its protocol on stdout, so log output must
never be written there.

	logger := log.GetDefault().WithName("racf-parser")
	logger.Info("document parsed", log.Fields{"commands": 3})
*/
package log
