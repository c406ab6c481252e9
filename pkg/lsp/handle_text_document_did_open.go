package lsp

import (
	"context"

	"github.com/karlding/ferrolsp/pkg/protocol"
)

func (h *Handler) handleDidOpen(ctx context.Context, params protocol.DidOpenTextDocumentParams) (any, error) {
	doc := params.TextDocument
	h.docs.Open(doc.URI, doc.Text, doc.Version)
	h.logf(ctx, "document opened", "uri", doc.URI)
	return nil, nil
}
