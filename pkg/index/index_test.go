package index

import (
	"fmt"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestUniqueLookupDiscipline(t *testing.T) {
	idx, err := Build([]Document{
		{Path: "a.rs", Text: "fn add(a: i32, b: i32) -> i32 { a + b }"},
		{Path: "b.rs", Text: "struct Point { x: i32, y: i32 }"},
	}, "")
	require.NoError(t, err)

	got, ok := idx.UniqueFn("add")
	require.True(t, ok)
	require.Equal(t, "add", got.Name)

	require.True(t, idx.IsUniqueType("Point"))
	require.False(t, idx.IsUniqueType("Nonexistent"))
}

func TestAmbiguousNameSuppressesLookup(t *testing.T) {
	idx, err := Build([]Document{
		{Path: "a.rs", Text: "fn run() {}"},
		{Path: "b.rs", Text: "fn run(x: i32) {}"},
	}, "")
	require.NoError(t, err)

	_, ok := idx.UniqueFn("run")
	require.False(t, ok)
}

func TestMethodDefsStripSelf(t *testing.T) {
	idx, err := Build([]Document{
		{Path: "a.rs", Text: "impl Stack { fn push(&mut self, value: T) {} }"},
	}, "")
	require.NoError(t, err)

	got, ok := idx.UniqueMethod("push")
	require.True(t, ok, "expected exactly one push method, MethodDefs: %s", fmt.Sprint(pretty.Formatter(idx.MethodDefs["push"])))
	require.Equal(t, []string{"value"}, got.Params)

	fn, ok := idx.UniqueFn("push")
	require.True(t, ok, "expected exactly one push function, FnDefs: %s", fmt.Sprint(pretty.Formatter(idx.FnDefs["push"])))
	require.Equal(t, []string{"self", "value"}, fn.Params)
}

func TestTypeDeclGenericsAreIndexed(t *testing.T) {
	idx, err := Build([]Document{
		{Path: "a.rs", Text: "struct Buf<const N: usize> { data: [u8; N] }"},
	}, "")
	require.NoError(t, err)

	generics, ok := idx.UniqueGenerics("Buf")
	require.True(t, ok, "expected Buf's generics to be indexed, Generics: %s", fmt.Sprint(pretty.Formatter(idx.Generics["Buf"])))
	require.Len(t, generics, 1)
	require.Equal(t, "N", generics[0].Name)
}
