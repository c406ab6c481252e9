// Package diagnostics runs an external checker (by default `cargo check`)
// and turns its `--message-format=json` output into LSP diagnostics,
// bucketed by file URI.
package diagnostics

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/karlding/ferrolsp/pkg/position"
	"github.com/karlding/ferrolsp/pkg/uri"
	"github.com/pkg/errors"
)

// Severity mirrors the LSP DiagnosticSeverity enum.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// Diagnostic is one finding, already converted to 0-based LSP ranges.
type Diagnostic struct {
	Range    Range
	Severity Severity
	Source   string
	Message  string
}

// Range is a start/end LSP position pair.
type Range struct {
	Start, End position.Position
}

// DefaultCheckCommand is what a bare Config defaults to.
var DefaultCheckCommand = []string{"cargo", "check", "-q", "--message-format=json"}

// Run spawns command (falling back to DefaultCheckCommand if empty) with
// its working directory set to root, and parses its stdout as a stream of
// cargo JSON messages. A subprocess spawn failure is returned as an error;
// anything after that (unparseable lines, missing spans) is silently
// skipped — a partial diagnostics run is still useful.
func Run(ctx context.Context, root string, command []string) (map[string][]Diagnostic, error) {
	if len(command) == 0 {
		command = DefaultCheckCommand
	}
	args := append([]string{}, command[1:]...)
	if !hasMessageFormat(command) {
		args = append(args, "--message-format=json")
	}

	cmd := exec.CommandContext(ctx, command[0], args...)
	cmd.Dir = root

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.Wrapf(err, "running %s", strings.Join(command, " "))
		}
		// A nonzero exit from `cargo check` just means it found problems:
		// its stdout is still the diagnostics payload we want.
	}

	result := make(map[string][]Diagnostic)
	scanner := bufio.NewScanner(&stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		diag, fileURI, ok := parseLine(root, scanner.Bytes())
		if !ok {
			continue
		}
		result[fileURI] = append(result[fileURI], diag)
	}
	return result, nil
}

func hasMessageFormat(command []string) bool {
	for _, arg := range command {
		if strings.Contains(arg, "--message-format") {
			return true
		}
	}
	return false
}

type cargoMessage struct {
	Reason  string `json:"reason"`
	Message struct {
		Level   string `json:"level"`
		Message string `json:"message"`
		Spans   []struct {
			FileName    string `json:"file_name"`
			IsPrimary   bool   `json:"is_primary"`
			LineStart   uint32 `json:"line_start"`
			LineEnd     uint32 `json:"line_end"`
			ColumnStart uint32 `json:"column_start"`
			ColumnEnd   uint32 `json:"column_end"`
		} `json:"spans"`
	} `json:"message"`
}

func parseLine(root string, line []byte) (Diagnostic, string, bool) {
	var msg cargoMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		return Diagnostic{}, "", false
	}
	if msg.Reason != "compiler-message" {
		return Diagnostic{}, "", false
	}
	if len(msg.Message.Spans) == 0 {
		return Diagnostic{}, "", false
	}

	span := msg.Message.Spans[0]
	for _, s := range msg.Message.Spans {
		if s.IsPrimary {
			span = s
			break
		}
	}
	if span.FileName == "" {
		return Diagnostic{}, "", false
	}

	fileURI := resolveURI(root, span.FileName)
	diag := Diagnostic{
		Range: Range{
			Start: position.FromSpan(span.LineStart, span.ColumnStart),
			End:   position.FromSpan(span.LineEnd, span.ColumnEnd),
		},
		Severity: mapSeverity(msg.Message.Level),
		Source:   "cargo",
		Message:  msg.Message.Message,
	}
	return diag, fileURI, true
}

func mapSeverity(level string) Severity {
	switch level {
	case "error":
		return SeverityError
	case "warning":
		return SeverityWarning
	case "note":
		return SeverityHint
	case "help":
		return SeverityInformation
	default:
		return SeverityInformation
	}
}

func resolveURI(root, fileName string) string {
	path := fileName
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return uri.FromPath(path)
}
