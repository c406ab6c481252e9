package lsp

import (
	"context"

	"github.com/karlding/ferrolsp/pkg/protocol"
)

// handleDidChange applies only the last entry of contentChanges: ferrolsp
// advertises full-document sync, so every change event is the document's
// complete new text and only the final one in the batch matters.
func (h *Handler) handleDidChange(ctx context.Context, params protocol.DidChangeTextDocumentParams) (any, error) {
	if len(params.ContentChanges) == 0 {
		return nil, nil
	}
	last := params.ContentChanges[len(params.ContentChanges)-1]
	h.docs.ChangeFull(params.TextDocument.URI, last.Text, params.TextDocument.Version)
	return nil, nil
}
