package lsp

import (
	"context"

	"github.com/karlding/ferrolsp/pkg/index"
	"github.com/karlding/ferrolsp/pkg/inlay"
	"github.com/karlding/ferrolsp/pkg/position"
	"github.com/karlding/ferrolsp/pkg/protocol"
	"github.com/karlding/ferrolsp/pkg/uri"
)

// handleInlayHint runs the full Idle → Indexing → Lexing-Target →
// four-passes → Filter-Sort pipeline for one document/range request. A
// document that isn't open short-circuits to an empty result rather than
// an error.
func (h *Handler) handleInlayHint(ctx context.Context, params protocol.InlayHintParams) ([]protocol.InlayHint, error) {
	doc, ok := h.docs.Get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	idx, err := index.Build(h.indexDocuments(), h.workspaceRootForIndexing())
	if err != nil {
		h.logf(ctx, "workspace index build had errors", "error", err)
	}

	rng := inlay.Range{
		Start: position.Position{Line: params.Range.Start.Line, Character: params.Range.Start.Character},
		End:   position.Position{Line: params.Range.End.Line, Character: params.Range.End.Character},
	}

	hints := inlay.Compute(doc.Text, idx, rng)
	return toProtocolHints(hints), nil
}

// workspaceRootForIndexing honors the open-files-only workspace mode: the
// only mode implemented walks no further than the open document set.
func (h *Handler) workspaceRootForIndexing() string {
	if h.cfg.WorkspaceMode == WorkspaceModeOpenFilesOnly {
		return ""
	}
	return h.root
}

func (h *Handler) indexDocuments() []index.Document {
	openDocs := h.docs.All()
	docs := make([]index.Document, 0, len(openDocs))
	for _, d := range openDocs {
		path, ok := uri.ToPath(d.URI)
		if !ok {
			path = d.URI
		}
		docs = append(docs, index.Document{Path: path, Text: d.Text})
	}
	return docs
}

func toProtocolHints(hints []inlay.Hint) []protocol.InlayHint {
	out := make([]protocol.InlayHint, 0, len(hints))
	for _, h := range hints {
		kind := protocol.InlayHintKindType
		if h.Kind == inlay.ArgName || h.Kind == inlay.ConstGenericName {
			kind = protocol.InlayHintKindParameter
		}
		out = append(out, protocol.InlayHint{
			Position: protocol.Position{Line: h.Position.Line, Character: h.Position.Character},
			Label:    h.Label,
			Kind:     kind,
		})
	}
	return out
}
