// File: handlers.go
// Title: Language Server Feature Handlers
// Description: Implements completion, hover and document symbol
//              requests on top of the document index, the cursor
//              context resolver and the vocabulary catalog.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial feature handlers

package server

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/msto63/mRACF/pkg/core/log"
	"github.com/msto63/mRACF/pkg/racf/assist"
)

// handleCompletion suggests vocabulary for the resolved cursor context:
// command names at statement start, keywords/flags/segments after a
// command, segment keywords inside a known segment body and access
// authorities inside other value lists
func (s *Server) handleCompletion(params json.RawMessage) (interface{}, *ResponseError) {
	var p TextDocumentPositionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &ResponseError{Code: codeInvalidParams, Message: err.Error()}
	}

	snap, ok := s.store.Get(p.TextDocument.URI)
	if !ok {
		return []CompletionItem{}, nil
	}

	ctx := assist.Resolve(snap.Doc, p.Position.Line, p.Position.Character, s.catalog)
	s.logger.Trace("completion", log.Fields{
		"uri":     p.TextDocument.URI,
		"line":    p.Position.Line,
		"context": ctx.Kind.String(),
		"segment": ctx.Segment,
	})

	items := []CompletionItem{}

	switch ctx.Kind {
	case assist.ContextCommand:
		for _, cmd := range s.catalog.Commands() {
			detail := cmd.Description
			if cmd.Abbreviation != "" {
				detail = fmt.Sprintf("(%s) %s", cmd.Abbreviation, cmd.Description)
			}
			items = append(items, CompletionItem{
				Label:         cmd.Name,
				Kind:          completionKindKeyword,
				Detail:        detail,
				Documentation: cmd.Description,
			})
		}

	case assist.ContextSegmentBody:
		kws := s.catalog.SegmentKeywords(ctx.Segment)
		for _, kw := range sortedKeys(kws) {
			items = append(items, CompletionItem{
				Label:         kw,
				Kind:          completionKindKeyword,
				Detail:        kws[kw],
				Documentation: fmt.Sprintf("%s segment: %s", ctx.Segment, kws[kw]),
			})
		}

	case assist.ContextValueList:
		// Inside a plain value list the most useful constants are the
		// access authorities
		for _, level := range []string{"NONE", "READ", "UPDATE", "CONTROL", "ALTER"} {
			desc, _ := s.catalog.Describe(level)
			items = append(items, CompletionItem{
				Label:  level,
				Kind:   completionKindConstant,
				Detail: desc,
			})
		}

	case assist.ContextKeyword:
		kws := s.catalog.Keywords()
		segments := make(map[string]bool)
		for _, name := range s.catalog.SegmentNames() {
			segments[name] = true
		}
		for _, kw := range sortedKeys(kws) {
			if segments[kw] {
				continue
			}
			items = append(items, CompletionItem{
				Label:  kw,
				Kind:   completionKindKeyword,
				Detail: kws[kw],
			})
		}
		for _, name := range s.catalog.SegmentNames() {
			info, _ := s.catalog.Segment(name)
			items = append(items, CompletionItem{
				Label:            name,
				Kind:             completionKindClass,
				Detail:           info.Description,
				InsertText:       name + "($0)",
				InsertTextFormat: 2, // snippet
			})
		}
	}

	return items, nil
}

// handleHover describes the token under the cursor from the catalog
func (s *Server) handleHover(params json.RawMessage) (interface{}, *ResponseError) {
	var p TextDocumentPositionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &ResponseError{Code: codeInvalidParams, Message: err.Error()}
	}

	snap, ok := s.store.Get(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	tok, ok := snap.Doc.TokenAt(p.Position.Line, p.Position.Character)
	if !ok {
		return nil, nil
	}

	word := tok.Value
	desc, ok := s.catalog.Describe(word)
	if !ok {
		return nil, nil
	}

	header := fmt.Sprintf("**%s**", word)
	if info, isCmd := s.catalog.Command(word); isCmd {
		if info.Name != word {
			header = fmt.Sprintf("**%s** (full: %s)", word, info.Name)
		} else if info.Abbreviation != "" {
			header = fmt.Sprintf("**%s** (abbreviation: %s)", word, info.Abbreviation)
		}
	}

	hoverRange := Range{
		Start: Position{Line: tok.Line, Character: tok.Column},
		End:   Position{Line: tok.Line, Character: tok.EndColumn()},
	}
	return Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: fmt.Sprintf("%s\n\n%s", header, desc),
		},
		Range: &hoverRange,
	}, nil
}

// handleDocumentSymbol lists the commands of the document as outline
// symbols, one per command span
func (s *Server) handleDocumentSymbol(params json.RawMessage) (interface{}, *ResponseError) {
	var p DocumentSymbolParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &ResponseError{Code: codeInvalidParams, Message: err.Error()}
	}

	snap, ok := s.store.Get(p.TextDocument.URI)
	if !ok {
		return []DocumentSymbol{}, nil
	}

	doc := snap.Doc
	symbols := make([]DocumentSymbol, 0, len(doc.Commands()))
	for _, cmd := range doc.Commands() {
		detail := ""
		if len(cmd.Arguments) > 0 {
			detail = cmd.Arguments[0]
		}

		endChar := 0
		if line, ok := doc.Line(cmd.EndLine); ok {
			endChar = len(line)
		}

		symbols = append(symbols, DocumentSymbol{
			Name:   cmd.Name,
			Detail: detail,
			Kind:   symbolKindFunction,
			Range: Range{
				Start: Position{Line: cmd.StartLine, Character: 0},
				End:   Position{Line: cmd.EndLine, Character: endChar},
			},
			SelectionRange: Range{
				Start: Position{Line: cmd.StartLine, Character: 0},
				End:   Position{Line: cmd.StartLine, Character: len(cmd.Name)},
			},
		})
	}

	return symbols, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
