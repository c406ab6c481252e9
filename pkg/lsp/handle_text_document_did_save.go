package lsp

import (
	"context"
	"log/slog"

	"github.com/karlding/ferrolsp/pkg/diagnostics"
	"github.com/karlding/ferrolsp/pkg/protocol"
)

// handleDidSave kicks off an on-save check, gated by a single busy flag: a
// save that arrives while a check is already running is dropped, not
// queued, matching the synchronous-core / async-diagnostics-only
// concurrency model.
func (h *Handler) handleDidSave(ctx context.Context, _ protocol.DidSaveTextDocumentParams) (any, error) {
	if !h.cfg.CheckOnSave {
		return nil, nil
	}
	root, err := h.checkerRoot()
	if err != nil {
		h.logf(ctx, "skipping check on save", "error", err)
		return nil, nil
	}

	if !h.diagRunning.CompareAndSwap(false, true) {
		h.logf(ctx, "check already running, dropping save")
		return nil, nil
	}

	openURIs := h.docs.OpenURIs()
	checkCommand := h.cfg.CheckCommand

	go func() {
		defer h.diagRunning.Store(false)

		result, err := diagnostics.Run(context.Background(), root, checkCommand)
		if err != nil {
			// A failed spawn still publishes (empty) diagnostics so stale
			// markers from a previous run are cleared.
			h.logf(ctx, "check command failed", "error", err)
		}
		h.publishDiagnostics(openURIs, result)
	}()

	return nil, nil
}

// publishDiagnostics sends a publishDiagnostics notification for every
// currently-open document, including an empty array for documents the
// check run found nothing wrong with — that's what clears a previous
// run's stale markers.
func (h *Handler) publishDiagnostics(openURIs []string, byURI map[string][]diagnostics.Diagnostic) {
	if h.server == nil {
		return
	}
	for _, docURI := range openURIs {
		diags := toProtocolDiagnostics(byURI[docURI])
		params := protocol.PublishDiagnosticsParams{URI: docURI, Diagnostics: diags}
		if err := h.server.Notify(context.Background(), "textDocument/publishDiagnostics", params); err != nil {
			slog.Error("failed to publish diagnostics", "uri", docURI, "error", err)
		}
	}
}

func toProtocolDiagnostics(diags []diagnostics.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: d.Range.Start.Line, Character: d.Range.Start.Character},
				End:   protocol.Position{Line: d.Range.End.Line, Character: d.Range.End.Character},
			},
			Severity: int(d.Severity),
			Source:   d.Source,
			Message:  d.Message,
		})
	}
	return out
}
