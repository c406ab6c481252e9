package inlay

import (
	"testing"

	"github.com/karlding/ferrolsp/pkg/index"
	"github.com/karlding/ferrolsp/pkg/position"
	"github.com/stretchr/testify/require"
)

func buildIndex(t *testing.T, sources ...string) *index.Index {
	t.Helper()
	var docs []index.Document
	for i, src := range sources {
		docs = append(docs, index.Document{Path: string(rune('a' + i)), Text: src})
	}
	idx, err := index.Build(docs, "")
	require.NoError(t, err)
	return idx
}

func labelsOf(hints []Hint) []string {
	var out []string
	for _, h := range hints {
		out = append(out, h.Label)
	}
	return out
}

func TestLocalVarTypeLiteral(t *testing.T) {
	src := "fn main() { let count = 5; }"
	idx := buildIndex(t, src)
	hints := Compute(src, idx, Range{End: farEnd()})
	require.Contains(t, labelsOf(hints), ": i32")
}

func TestLocalVarTypeStructLit(t *testing.T) {
	src := "struct Point { x: i32, y: i32 } fn main() { let p = Point { x: 1, y: 2 }; }"
	idx := buildIndex(t, src)
	hints := Compute(src, idx, Range{End: farEnd()})
	require.Contains(t, labelsOf(hints), ": Point")
}

func TestArgNameHintsSimpleCall(t *testing.T) {
	src := "fn add(left: i32, right: i32) -> i32 { left + right } fn main() { add(1, 2); }"
	idx := buildIndex(t, src)
	hints := Compute(src, idx, Range{End: farEnd()})
	labels := labelsOf(hints)
	require.Contains(t, labels, "left:")
	require.Contains(t, labels, "right:")
}

func TestConstGenericHintsSmoke(t *testing.T) {
	src := "fn make<T, const N: usize>(x: T) -> T { x } fn main() { make::<i32, 4>(0); }"
	idx := buildIndex(t, src)
	hints := Compute(src, idx, Range{End: farEnd()})
	labels := labelsOf(hints)
	require.NotContains(t, labels, "T:")
	require.Contains(t, labels, "N:")
}

func TestChainedCallTypeHints(t *testing.T) {
	src := "fn parse_input(s: &str) -> Vec<i32> { vec![] } fn main() { parse_input(\"1,2\").len(); }"
	idx := buildIndex(t, src)
	hints := Compute(src, idx, Range{End: farEnd()})
	require.Contains(t, labelsOf(hints), ": Vec<i32>")
}

func TestChainedMethodCallAlwaysQualifies(t *testing.T) {
	// A method call is always a chain segment, even when nothing follows
	// its closing paren: foo().bar(); must hint both the intermediate
	// foo() result and the terminal bar() result.
	src := "struct Foo; struct Bar; " +
		"fn foo() -> Foo { Foo } " +
		"impl Foo { fn bar(&self) -> Bar { Bar } } " +
		"fn main() { foo().bar(); }"
	idx := buildIndex(t, src)
	hints := Compute(src, idx, Range{End: farEnd()})
	labels := labelsOf(hints)
	require.Contains(t, labels, ": Foo")
	require.Contains(t, labels, ": Bar")
}

func TestAmbiguousNameYieldsNoHint(t *testing.T) {
	src1 := "fn run() {}"
	src2 := "fn run(x: i32) {}"
	src3 := "fn main() { run(); }"
	idx := buildIndex(t, src1, src2, src3)
	hints := Compute(src3, idx, Range{End: farEnd()})
	require.Empty(t, hints)
}

func TestHintsAreSortedByPosition(t *testing.T) {
	src := "fn f(a: i32, b: i32) {} fn main() { let x = 1; f(x, 2); }"
	idx := buildIndex(t, src)
	hints := Compute(src, idx, Range{End: farEnd()})
	for i := 1; i < len(hints); i++ {
		require.False(t, positionLess(hints[i].Position, hints[i-1].Position))
	}
}

func farEnd() position.Position {
	return position.Position{Line: 1 << 20, Character: 1 << 20}
}
