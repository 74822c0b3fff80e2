// File: server.go
// Title: RACF Language Server
// Description: Implements the language server's message loop and
//              lifecycle. Dispatches JSON-RPC requests and
//              notifications to the feature handlers, maintains the
//              open document store and publishes diagnostics after
//              every rebuild.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial server implementation

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gorilla/websocket"

	"github.com/msto63/mRACF/pkg/core/log"
	"github.com/msto63/mRACF/pkg/core/version"
	"github.com/msto63/mRACF/pkg/racf/catalog"
	"github.com/msto63/mRACF/pkg/racf/document"
)

// serverName identifies this server to clients
const serverName = "RACF Language Server"

// Options configures a Server
type Options struct {
	// Catalog supplies the vocabulary. Required; Builtin is the usual
	// choice.
	Catalog *catalog.Catalog

	// Logger receives server trace output. Optional.
	Logger *log.Logger
}

// Server is one language server session over one transport
type Server struct {
	catalog *catalog.Catalog
	logger  *log.Logger
	store   *Store

	shutdownSeen bool
}

// New creates a server with an empty document store
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Server{
		catalog: opts.Catalog,
		logger:  logger.WithName("server"),
		store:   NewStore(),
	}
}

// Run serves one session: it reads messages until the transport fails,
// the client sends exit, or the reader reaches end of input. The exit
// notification after shutdown ends the session cleanly.
func (s *Server) Run(t Transport) error {
	s.logger.Info("session started", nil)

	for {
		payload, err := t.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("client closed the stream", nil)
				return nil
			}
			return fmt.Errorf("transport read: %w", err)
		}

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Warn("undecodable message", log.Err(err))
			nullID := json.RawMessage("null")
			s.respond(t, &nullID, nil, &ResponseError{
				Code:    codeParseError,
				Message: "message is not valid JSON",
			})
			continue
		}

		if msg.Method == "exit" {
			if !s.shutdownSeen {
				s.logger.Warn("exit without preceding shutdown", nil)
			}
			s.logger.Info("session ended by exit notification", nil)
			return nil
		}

		s.dispatch(t, &msg)
	}
}

// dispatch routes one message to its handler and sends the response for
// requests. Notifications produce no response.
func (s *Server) dispatch(t Transport, msg *Message) {
	s.logger.Trace("dispatch", log.Fields{"method": msg.Method})

	var result interface{}
	var respErr *ResponseError

	switch msg.Method {
	case "initialize":
		result = s.handleInitialize()
	case "initialized":
		return
	case "shutdown":
		s.shutdownSeen = true
		result = nil
	case "textDocument/didOpen":
		s.handleDidOpen(t, msg.Params)
		return
	case "textDocument/didChange":
		s.handleDidChange(t, msg.Params)
		return
	case "textDocument/didClose":
		s.handleDidClose(msg.Params)
		return
	case "textDocument/didSave":
		return
	case "textDocument/completion":
		result, respErr = s.handleCompletion(msg.Params)
	case "textDocument/hover":
		result, respErr = s.handleHover(msg.Params)
	case "textDocument/documentSymbol":
		result, respErr = s.handleDocumentSymbol(msg.Params)
	case "$/cancelRequest":
		return
	default:
		if msg.ID == nil {
			// Unknown notifications are ignored per protocol
			return
		}
		respErr = &ResponseError{
			Code:    codeMethodNotFound,
			Message: fmt.Sprintf("method not supported: %s", msg.Method),
		}
	}

	if msg.ID == nil {
		return
	}
	s.respond(t, msg.ID, result, respErr)
}

// respond sends a response envelope for a request ID. A success response
// always carries a result member on the wire, null when the handler has
// nothing to return; pre-marshalling keeps empty slices as [] instead of
// losing them to omitempty.
func (s *Server) respond(t Transport, id *json.RawMessage, result interface{}, respErr *ResponseError) {
	resp := Message{JSONRPC: "2.0", ID: id, Error: respErr}
	if respErr == nil {
		raw, err := json.Marshal(result)
		if err != nil {
			s.logger.ErrorWithErr("result marshal failed", err, nil)
			resp.Error = &ResponseError{
				Code:    codeInternalError,
				Message: "result is not serializable",
			}
		} else {
			resp.Result = json.RawMessage(raw)
		}
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		s.logger.ErrorWithErr("response marshal failed", err, nil)
		return
	}
	if err := t.WriteMessage(payload); err != nil {
		s.logger.ErrorWithErr("response write failed", err, nil)
	}
}

// notify sends a server-initiated notification
func (s *Server) notify(t Transport, method string, params interface{}) {
	raw, err := json.Marshal(params)
	if err != nil {
		s.logger.ErrorWithErr("notification marshal failed", err, log.Fields{"method": method})
		return
	}
	msg := Message{JSONRPC: "2.0", Method: method, Params: raw}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.ErrorWithErr("notification marshal failed", err, log.Fields{"method": method})
		return
	}
	if err := t.WriteMessage(payload); err != nil {
		s.logger.ErrorWithErr("notification write failed", err, log.Fields{"method": method})
	}
}

// handleInitialize advertises the server's capabilities: full-document
// sync, completion, hover and document symbols
func (s *Server) handleInitialize() InitializeResult {
	return InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: TextDocumentSyncOptions{
				OpenClose: true,
				Change:    1, // full sync
				Save:      &SaveOptions{IncludeText: true},
			},
			CompletionProvider: CompletionOptions{
				TriggerCharacters: []string{"(", " "},
				ResolveProvider:   false,
			},
			HoverProvider:          true,
			DocumentSymbolProvider: true,
		},
		ServerInfo: ServerInfo{
			Name:    serverName,
			Version: version.Version,
		},
	}
}

// handleDidOpen builds the first snapshot for a newly opened document
func (s *Server) handleDidOpen(t Transport, params json.RawMessage) {
	var p DidOpenTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Warn("didOpen with bad params", log.Err(err))
		return
	}
	s.rebuild(t, p.TextDocument.URI, p.TextDocument.Text, p.TextDocument.Version)
}

// handleDidChange rebuilds the snapshot from the full new text. The
// server advertises full sync, so the last content change carries the
// complete document.
func (s *Server) handleDidChange(t Transport, params json.RawMessage) {
	var p DidChangeTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Warn("didChange with bad params", log.Err(err))
		return
	}
	if len(p.ContentChanges) == 0 {
		return
	}
	text := p.ContentChanges[len(p.ContentChanges)-1].Text
	s.rebuild(t, p.TextDocument.URI, text, p.TextDocument.Version)
}

// handleDidClose drops the document's snapshot and clears its
// diagnostics
func (s *Server) handleDidClose(params json.RawMessage) {
	var p DidCloseTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Warn("didClose with bad params", log.Err(err))
		return
	}
	s.store.Delete(p.TextDocument.URI)
	s.logger.Debug("document closed", log.Fields{"uri": p.TextDocument.URI})
}

// rebuild builds a fresh index for the source text, swaps it in and
// publishes the resulting diagnostics
func (s *Server) rebuild(t Transport, uri, text string, ver int) {
	doc := document.Build(text, document.Options{
		Classify: s.catalog,
		Logger:   s.logger,
	})
	s.store.Put(uri, doc, ver)

	s.logger.Debug("document rebuilt", log.Fields{
		"uri":      uri,
		"version":  ver,
		"build":    doc.ID(),
		"commands": len(doc.Commands()),
	})

	diags := make([]Diagnostic, 0, len(doc.Diagnostics()))
	for _, d := range doc.Diagnostics() {
		diags = append(diags, Diagnostic{
			Range: Range{
				Start: Position{Line: d.Line, Character: d.Column},
				End:   Position{Line: d.Line, Character: d.Column + 1},
			},
			Severity: severityError,
			Message:  d.Message,
			Source:   "racf",
		})
	}
	s.notify(t, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

// ListenWebSocket serves language server sessions over websocket
// connections, one independent session per connection
func ListenWebSocket(addr string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	logger = logger.WithName("ws")

	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/lsp", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.ErrorWithErr("websocket upgrade failed", err, log.Field("remote", r.RemoteAddr))
			return
		}
		logger.Info("client connected", log.Field("remote", conn.RemoteAddr().String()))

		go func() {
			t := NewWebSocketTransport(conn)
			defer t.Close()
			srv := New(opts)
			if err := srv.Run(t); err != nil {
				logger.WarnWithErr("session ended with error", err, log.Field("remote", conn.RemoteAddr().String()))
			}
		}()
	})

	logger.Info("listening", log.Fields{"addr": addr, "path": "/lsp"})
	return http.ListenAndServe(addr, mux)
}

// RunStdio serves one session over standard input and output. Log
// output goes to stderr so the protocol stream stays clean.
func RunStdio(opts Options) error {
	t := NewStreamTransport(os.Stdin, os.Stdout, nil)
	return New(opts).Run(t)
}
