// File: store.go
// Title: Open Document Store
// Description: Tracks the open documents of one editor session. Each
//              open URI maps to the latest built index snapshot; edits
//              replace the snapshot wholesale under a short lock, so
//              readers always see a complete, consistent build.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial document store

package server

import (
	"sync"

	"github.com/msto63/mRACF/pkg/racf/document"
)

// Snapshot pairs one built document index with its client version
type Snapshot struct {
	Doc     *document.Document
	Version int
}

// Store holds the open documents keyed by URI. Snapshots are immutable;
// the store only swaps pointers, so holding a snapshot across an edit is
// safe.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Snapshot
}

// NewStore creates an empty document store
func NewStore() *Store {
	return &Store{docs: make(map[string]*Snapshot)}
}

// Get returns the current snapshot for a URI
func (s *Store) Get(uri string) (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.docs[uri]
	return snap, ok
}

// Put replaces the snapshot for a URI atomically
func (s *Store) Put(uri string, doc *document.Document, version int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &Snapshot{Doc: doc, Version: version}
}

// Delete removes a closed document
func (s *Store) Delete(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Len returns the number of open documents
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
