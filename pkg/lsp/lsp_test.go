package lsp

import (
	"context"
	"testing"

	"github.com/karlding/ferrolsp/pkg/protocol"
	"github.com/stretchr/testify/require"
)

func TestHandleInitializeExtractsRootFromURI(t *testing.T) {
	h := NewHandler()
	rootURI := "file:///workspace/project"
	result, err := h.handleInitialize(context.Background(), protocol.InitializeParams{RootURI: &rootURI})
	require.NoError(t, err)
	require.True(t, result.Capabilities.HoverProvider)
	require.True(t, result.Capabilities.InlayHintProvider)
	require.Equal(t, "/workspace/project", h.root)
}

func TestHandleDidOpenThenHover(t *testing.T) {
	h := NewHandler()
	_, err := h.handleDidOpen(context.Background(), protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  "file:///a.rs",
			Text: "fn add(a: i32, b: i32) -> i32 { add_inner(a, b) }",
		},
	})
	require.NoError(t, err)

	resp, err := h.handleHover(context.Background(), protocol.TextDocumentPositionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.rs"},
		Position:     protocol.Position{Line: 0, Character: 4},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Contains(t, resp.Contents.Value, "fn add")
}

func TestHandleInlayHintOnOpenDocument(t *testing.T) {
	h := NewHandler()
	src := "fn main() { let count = 5; }"
	_, err := h.handleDidOpen(context.Background(), protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///a.rs", Text: src},
	})
	require.NoError(t, err)

	hints, err := h.handleInlayHint(context.Background(), protocol.InlayHintParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.rs"},
		Range:        protocol.Range{End: protocol.Position{Line: 1000, Character: 0}},
	})
	require.NoError(t, err)

	var found bool
	for _, hint := range hints {
		if hint.Label == ": i32" {
			found = true
		}
	}
	require.True(t, found)
}

func TestHandleDidSaveDropsConcurrentCheck(t *testing.T) {
	h := NewHandler()
	h.root = "/tmp"
	h.diagRunning.Store(true)

	_, err := h.handleDidSave(context.Background(), protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.rs"},
	})
	require.NoError(t, err)
	require.True(t, h.diagRunning.Load())
}

func TestConfigUpdateFromNestedSettings(t *testing.T) {
	h := NewHandler()
	_, err := h.handleDidChangeConfiguration(context.Background(), protocol.DidChangeConfigurationParams{
		Settings: map[string]any{
			"ferrolsp": map[string]any{
				"checkOnSave": false,
				"logLevel":    "debug",
			},
		},
	})
	require.NoError(t, err)
	require.False(t, h.cfg.CheckOnSave)
}
