package lsp

import (
	"context"

	"github.com/karlding/ferrolsp/pkg/protocol"
)

func (h *Handler) handleDidChangeConfiguration(ctx context.Context, params protocol.DidChangeConfigurationParams) (any, error) {
	h.cfg.UpdateFromSettings(params.Settings)
	h.logf(ctx, "configuration updated", "checkOnSave", h.cfg.CheckOnSave, "checkCommand", h.cfg.CheckCommand)
	return nil, nil
}
