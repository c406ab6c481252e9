package lsp

import (
	"context"

	"github.com/karlding/ferrolsp/pkg/protocol"
)

func (h *Handler) handleDidClose(ctx context.Context, params protocol.DidCloseTextDocumentParams) (any, error) {
	h.docs.Close(params.TextDocument.URI)
	return nil, nil
}
