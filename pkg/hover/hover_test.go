package hover

import (
	"testing"

	"github.com/karlding/ferrolsp/pkg/docstore"
	"github.com/karlding/ferrolsp/pkg/position"
	"github.com/stretchr/testify/require"
)

func TestResolveFindsDefinitionInSameFile(t *testing.T) {
	store := docstore.New()
	text := "fn add(a: i32, b: i32) -> i32 {\n    add_inner(a, b)\n}\n"
	store.Open("file:///a.rs", text, 1)

	// Cursor on "add" on the first line.
	result, ok := Resolve(store, "file:///a.rs", position.Position{Line: 0, Character: 4})
	require.True(t, ok)
	require.Contains(t, result, "fn add(a: i32, b: i32) -> i32 {")
}

func TestResolveSkipsPubPrefix(t *testing.T) {
	store := docstore.New()
	store.Open("file:///a.rs", "pub struct Point { x: i32 }\n", 1)

	result, ok := Resolve(store, "file:///a.rs", position.Position{Line: 0, Character: 12})
	require.True(t, ok)
	require.Contains(t, result, "pub struct Point { x: i32 }")
}

func TestResolveReturnsFalseWhenNotFound(t *testing.T) {
	store := docstore.New()
	store.Open("file:///a.rs", "fn main() { nope(); }\n", 1)

	_, ok := Resolve(store, "file:///a.rs", position.Position{Line: 0, Character: 13})
	require.False(t, ok)
}
