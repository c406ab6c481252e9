// Package lsp wires ferrolsp's indexing, inlay-hint, hover, and
// diagnostics packages into a jrpc2 Assigner speaking the Language Server
// Protocol over stdio.
package lsp

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/karlding/ferrolsp/pkg/docstore"
	"github.com/karlding/ferrolsp/pkg/uri"
	"github.com/pkg/errors"
)

// Handler is ferrolsp's jrpc2 method dispatcher. It owns the document
// store, the client-supplied config, and the workspace root, and gates
// on-save diagnostics runs behind a single busy flag.
type Handler struct {
	server *jrpc2.Server

	docs        *docstore.Store
	cfg         Config
	root        string
	diagRunning atomic.Bool
}

// NewHandler constructs a Handler with default config and an empty
// document store. SetServer must be called once the owning jrpc2.Server
// exists, since the handler needs it to push publishDiagnostics
// notifications.
func NewHandler() *Handler {
	return &Handler{
		docs: docstore.New(),
		cfg:  DefaultConfig(),
	}
}

// SetServer stores a back-reference to the jrpc2 server so notification
// handlers can push server-initiated notifications (publishDiagnostics).
func (h *Handler) SetServer(srv *jrpc2.Server) {
	h.server = srv
}

// SetCheckOnSave overrides the default check-on-save behavior before the
// first didChangeConfiguration arrives, letting the CLI's flag win over
// the built-in default without waiting on client settings.
func (h *Handler) SetCheckOnSave(v bool) {
	h.cfg.CheckOnSave = v
}

// Assigner builds the jrpc2.Assigner that dispatches every method
// ferrolsp honors.
func (h *Handler) Assigner() jrpc2.Assigner {
	return handler.Map{
		"initialize":                        handler.New(h.handleInitialize),
		"initialized":                       handler.New(h.handleInitialized),
		"shutdown":                          handler.New(h.handleShutdown),
		"exit":                              handler.New(h.handleExit),
		"textDocument/didOpen":              handler.New(h.handleDidOpen),
		"textDocument/didChange":            handler.New(h.handleDidChange),
		"textDocument/didClose":             handler.New(h.handleDidClose),
		"textDocument/didSave":              handler.New(h.handleDidSave),
		"textDocument/hover":                handler.New(h.handleHover),
		"textDocument/inlayHint":            handler.New(h.handleInlayHint),
		"workspace/didChangeConfiguration":  handler.New(h.handleDidChangeConfiguration),
		"workspace/didChangeWorkspaceFolders": handler.New(h.handleDidChangeWorkspaceFolders),
	}
}

func (h *Handler) rootFromURI(rawURI string) (string, bool) {
	path, ok := uri.ToPath(rawURI)
	if !ok {
		return "", false
	}
	return filepath.Clean(path), true
}

func (h *Handler) logf(ctx context.Context, msg string, args ...any) {
	slog.Log(ctx, h.cfg.LogLevel, msg, args...)
}

// checkerRoot returns the workspace root, or an errors.New error if no
// root is known yet, so every caller doesn't repeat that message.
func (h *Handler) checkerRoot() (string, error) {
	if h.root == "" {
		return "", errors.New("no workspace root set")
	}
	return h.root, nil
}
