// File: transport.go
// Title: Language Server Transports
// Description: Implements the message transports the server speaks
//              over: Content-Length framed JSON-RPC on a byte stream
//              (stdio) and one-message-per-frame delivery over a
//              websocket connection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial transport implementations

package server

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// Transport delivers and accepts raw JSON-RPC message payloads. Reads
// are driven by a single loop; writes may come from multiple handler
// goroutines and must be safe for concurrent use.
type Transport interface {
	// ReadMessage blocks until the next complete message payload
	ReadMessage() ([]byte, error)

	// WriteMessage sends one complete message payload
	WriteMessage(payload []byte) error

	// Close releases the underlying connection
	Close() error
}

// streamTransport frames messages with Content-Length headers over a
// byte stream, the standard LSP stdio framing
type streamTransport struct {
	reader *bufio.Reader
	writer io.Writer
	closer io.Closer
	mu     sync.Mutex
}

// NewStreamTransport creates a Content-Length framed transport over the
// given reader/writer pair. closer may be nil.
func NewStreamTransport(r io.Reader, w io.Writer, closer io.Closer) Transport {
	return &streamTransport{
		reader: bufio.NewReader(r),
		writer: w,
		closer: closer,
	}
}

// ReadMessage reads headers until the blank separator line, then the
// announced number of body bytes
func (t *streamTransport) ReadMessage() ([]byte, error) {
	contentLength := -1

	for {
		line, err := t.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if strings.HasPrefix(strings.ToLower(line), "content-length:") {
			val := strings.TrimSpace(line[len("content-length:"):])
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length %q: %w", val, err)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(t.reader, body); err != nil {
		return nil, err
	}
	return body, nil
}

// WriteMessage writes the Content-Length header and the payload as one
// atomic frame
func (t *streamTransport) WriteMessage(payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(payload))
	if _, err := io.WriteString(t.writer, header); err != nil {
		return err
	}
	if _, err := t.writer.Write(payload); err != nil {
		return err
	}
	if f, ok := t.writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close closes the underlying stream when closable
func (t *streamTransport) Close() error {
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

// websocketTransport delivers one JSON-RPC message per websocket text
// frame; no Content-Length framing is needed on a message-oriented
// connection
type websocketTransport struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewWebSocketTransport wraps an established websocket connection
func NewWebSocketTransport(conn *websocket.Conn) Transport {
	return &websocketTransport{conn: conn}
}

// ReadMessage reads the next text frame
func (t *websocketTransport) ReadMessage() ([]byte, error) {
	for {
		msgType, payload, err := t.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if msgType == websocket.TextMessage || msgType == websocket.BinaryMessage {
			return payload, nil
		}
	}
}

// WriteMessage sends the payload as one text frame
func (t *websocketTransport) WriteMessage(payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn.WriteMessage(websocket.TextMessage, payload)
}

// Close closes the websocket connection
func (t *websocketTransport) Close() error {
	return t.conn.Close()
}
