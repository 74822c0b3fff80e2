// File: doc.go
// Title: Package Documentation for server
// Description: Package documentation for the RACF language server
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial documentation

// Package server implements the RACF language server: a JSON-RPC 2.0
// message loop speaking a subset of the Language Server Protocol over
// stdio or websocket transports.
//
// Text synchronization is whole-document: every didOpen/didChange
// rebuilds the document index from scratch and swaps it into the store
// atomically, then publishes the build's diagnostics. Completion,
// hover and documentSymbol requests answer from the latest snapshot
// through the context resolver and the vocabulary catalog.
package server
