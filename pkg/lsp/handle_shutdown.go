package lsp

import "context"

func (h *Handler) handleShutdown(ctx context.Context, _ map[string]any) (any, error) {
	h.logf(ctx, "shutting down")
	return nil, nil
}
