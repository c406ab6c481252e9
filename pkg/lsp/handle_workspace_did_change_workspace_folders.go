package lsp

import "context"

// WorkspaceFoldersChangeEvent mirrors the `event` field of a
// workspace/didChangeWorkspaceFolders notification.
type WorkspaceFoldersChangeEvent struct {
	Added []struct {
		URI string `json:"uri"`
	} `json:"added"`
}

type didChangeWorkspaceFoldersParams struct {
	Event WorkspaceFoldersChangeEvent `json:"event"`
}

// handleDidChangeWorkspaceFolders re-roots the workspace at the first
// newly added folder. ferrolsp only ever tracks a single root, matching
// the open-files-only workspace mode: multi-root support isn't built.
func (h *Handler) handleDidChangeWorkspaceFolders(ctx context.Context, params didChangeWorkspaceFoldersParams) (any, error) {
	for _, folder := range params.Event.Added {
		if path, ok := h.rootFromURI(folder.URI); ok {
			h.root = path
			h.logf(ctx, "workspace root changed", "root", h.root)
			return nil, nil
		}
	}
	return nil, nil
}
