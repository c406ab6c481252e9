package lsp

import (
	"context"

	"github.com/karlding/ferrolsp/pkg/hover"
	"github.com/karlding/ferrolsp/pkg/position"
	"github.com/karlding/ferrolsp/pkg/protocol"
)

func (h *Handler) handleHover(ctx context.Context, params protocol.TextDocumentPositionParams) (*protocol.Hover, error) {
	pos := position.Position{Line: params.Position.Line, Character: params.Position.Character}
	content, ok := hover.Resolve(h.docs, params.TextDocument.URI, pos)
	if !ok {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: "markdown", Value: content},
	}, nil
}
