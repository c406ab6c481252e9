package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLineExtractsPrimarySpan(t *testing.T) {
	line := []byte(`{
		"reason": "compiler-message",
		"message": {
			"level": "error",
			"message": "mismatched types",
			"spans": [
				{"file_name": "src/other.rs", "is_primary": false, "line_start": 1, "column_start": 1, "line_end": 1, "column_end": 2},
				{"file_name": "src/lib.rs", "is_primary": true, "line_start": 3, "column_start": 5, "line_end": 3, "column_end": 9}
			]
		}
	}`)

	diag, fileURI, ok := parseLine("/repo", line)
	require.True(t, ok)
	require.Equal(t, SeverityError, diag.Severity)
	require.Equal(t, "cargo", diag.Source)
	require.Equal(t, uint32(2), diag.Range.Start.Line)
	require.Equal(t, uint32(4), diag.Range.Start.Character)
	require.Contains(t, fileURI, "src/lib.rs")
}

func TestParseLineSkipsNonCompilerMessage(t *testing.T) {
	_, _, ok := parseLine("/repo", []byte(`{"reason": "build-finished"}`))
	require.False(t, ok)
}

func TestParseLineSkipsMalformedJSON(t *testing.T) {
	_, _, ok := parseLine("/repo", []byte(`not json`))
	require.False(t, ok)
}

func TestMapSeverity(t *testing.T) {
	require.Equal(t, SeverityError, mapSeverity("error"))
	require.Equal(t, SeverityWarning, mapSeverity("warning"))
	require.Equal(t, SeverityHint, mapSeverity("note"))
	require.Equal(t, SeverityInformation, mapSeverity("help"))
	require.Equal(t, SeverityInformation, mapSeverity("unknown"))
}

func TestHasMessageFormat(t *testing.T) {
	require.True(t, hasMessageFormat([]string{"cargo", "check", "--message-format=json"}))
	require.False(t, hasMessageFormat([]string{"cargo", "check"}))
}
