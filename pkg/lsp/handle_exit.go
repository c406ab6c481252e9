package lsp

import "context"

// handleExit stops the server in response to the `exit` notification,
// matching the original run loop's `return true` from handle_message.
func (h *Handler) handleExit(ctx context.Context, _ map[string]any) (any, error) {
	h.logf(ctx, "exit requested")
	if h.server != nil {
		h.server.Stop()
	}
	return nil, nil
}
