package lsp

import (
	"context"

	"github.com/karlding/ferrolsp/pkg/protocol"
)

func (h *Handler) handleInitialize(ctx context.Context, params protocol.InitializeParams) (protocol.InitializeResult, error) {
	h.root = h.extractRoot(params)
	h.logf(ctx, "initializing", "root", h.root)

	return protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync:  protocol.TextSyncKindFull,
			HoverProvider:     true,
			InlayHintProvider: true,
			Workspace: &protocol.WorkspaceCapability{
				WorkspaceFolders: protocol.WorkspaceFoldersCapability{
					Supported:           true,
					ChangeNotifications: true,
				},
			},
		},
	}, nil
}

func (h *Handler) extractRoot(params protocol.InitializeParams) string {
	if params.RootURI != nil {
		if path, ok := h.rootFromURI(*params.RootURI); ok {
			return path
		}
	}
	if params.RootPath != nil {
		return *params.RootPath
	}
	for _, folder := range params.WorkspaceFolders {
		if path, ok := h.rootFromURI(folder.URI); ok {
			return path
		}
	}
	return ""
}

func (h *Handler) handleInitialized(ctx context.Context, _ map[string]any) (any, error) {
	h.logf(ctx, "client reported initialized")
	return nil, nil
}
