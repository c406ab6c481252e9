package expr

import (
	"testing"

	"github.com/karlding/ferrolsp/pkg/token"
	"github.com/stretchr/testify/require"
)

func TestInferLiteralCharFromSourceText(t *testing.T) {
	// Character literals emit no token, so InferLiteral must recognize
	// them from the source text at the expression's start offset rather
	// than from the token stream.
	src := "'x'"
	toks := token.Lex(src)
	require.Empty(t, toks, "char literal should not produce a token")

	ty, ok := InferLiteral(src, 0, toks, 0)
	require.True(t, ok)
	require.Equal(t, "char", ty)
}

func TestInferLiteralNumberSuffix(t *testing.T) {
	src := "42u8"
	toks := token.Lex(src)
	ty, ok := InferLiteral(src, 0, toks, 0)
	require.True(t, ok)
	require.Equal(t, "u8", ty)
}

func TestInferLiteralString(t *testing.T) {
	src := `"hi"`
	toks := token.Lex(src)
	ty, ok := InferLiteral(src, 0, toks, 0)
	require.True(t, ok)
	require.Equal(t, "&str", ty)
}
