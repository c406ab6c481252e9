package position

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffsetRoundTrip(t *testing.T) {
	text := "fn add(a: i32) -> i32 {\n    a\n}\n"
	pos, ok := FromOffset(text, 7)
	require.True(t, ok)
	require.Equal(t, Position{Line: 0, Character: 7}, pos)

	offset, ok := ToOffset(text, pos)
	require.True(t, ok)
	require.Equal(t, 7, offset)
}

func TestFromOffsetSecondLine(t *testing.T) {
	text := "let x = 1;\nlet y = 2;\n"
	pos, ok := FromOffset(text, 15)
	require.True(t, ok)
	require.Equal(t, uint32(1), pos.Line)
	require.Equal(t, uint32(4), pos.Character)
}

func TestFromOffsetBeyondText(t *testing.T) {
	_, ok := FromOffset("abc", 10)
	require.False(t, ok)
}

func TestToOffsetBeyondLastLine(t *testing.T) {
	_, ok := ToOffset("one line", Position{Line: 5})
	require.False(t, ok)
}

func TestFromSpanSaturatesAtZero(t *testing.T) {
	require.Equal(t, Position{Line: 0, Character: 0}, FromSpan(0, 0))
	require.Equal(t, Position{Line: 4, Character: 9}, FromSpan(5, 10))
}

func TestUTF16SupplementaryPlane(t *testing.T) {
	// A single emoji outside the BMP counts as two UTF-16 units.
	text := "\U0001F600x"
	pos, ok := FromOffset(text, len("\U0001F600"))
	require.True(t, ok)
	require.Equal(t, uint32(2), pos.Character)
}
