package lsp

import "log/slog"

// WorkspaceMode controls how the workspace index is built. OpenFilesOnly
// is the only mode implemented: broader modes (index-whole-crate,
// index-workspace-members) are plausible future additions, not yet built.
type WorkspaceMode int

const (
	WorkspaceModeOpenFilesOnly WorkspaceMode = iota
)

// Config is ferrolsp's client-configurable behavior, read from
// initialize/didChangeConfiguration settings.
type Config struct {
	WorkspaceMode WorkspaceMode
	CheckOnSave   bool
	CheckCommand  []string
	LogLevel      slog.Level
}

// DefaultConfig matches the server's behavior before any settings arrive.
func DefaultConfig() Config {
	return Config{
		WorkspaceMode: WorkspaceModeOpenFilesOnly,
		CheckOnSave:   true,
		CheckCommand:  []string{"cargo", "check", "-q", "--message-format=json"},
		LogLevel:      slog.LevelWarn,
	}
}

// UpdateFromSettings merges a raw `settings` JSON object (as delivered by
// initializationOptions or didChangeConfiguration) into cfg. Settings may
// be nested under a `"ferrolsp"` key, matching how most LSP clients
// namespace per-server configuration; if that key is absent, settings is
// read directly as the server's own config object.
func (cfg *Config) UpdateFromSettings(settings map[string]any) {
	if nested, ok := settings["ferrolsp"].(map[string]any); ok {
		settings = nested
	}

	if mode, ok := settings["workspaceMode"].(string); ok {
		if mode == "openFilesOnly" || mode == "openfilesonly" {
			cfg.WorkspaceMode = WorkspaceModeOpenFilesOnly
		}
	}

	if check, ok := settings["checkOnSave"].(bool); ok {
		cfg.CheckOnSave = check
	}

	if rawCmd, ok := settings["checkCommand"].([]any); ok && len(rawCmd) > 0 {
		cmd := make([]string, 0, len(rawCmd))
		for _, v := range rawCmd {
			if s, ok := v.(string); ok {
				cmd = append(cmd, s)
			}
		}
		if len(cmd) > 0 {
			cfg.CheckCommand = cmd
		}
	}

	if level, ok := settings["logLevel"].(string); ok {
		switch level {
		case "error":
			cfg.LogLevel = slog.LevelError
		case "info":
			cfg.LogLevel = slog.LevelInfo
		case "debug":
			cfg.LogLevel = slog.LevelDebug
		default:
			cfg.LogLevel = slog.LevelWarn
		}
	}
}
