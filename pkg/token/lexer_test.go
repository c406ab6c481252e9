package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexSkipsComments(t *testing.T) {
	toks := Lex("// leading\nfn /* inline */ add() {}")
	require.Len(t, toks, 6)
	require.Equal(t, "fn", toks[0].Text)
	require.Equal(t, "add", toks[1].Text)
}

func TestLexDoubleColonAndArrow(t *testing.T) {
	toks := Lex("Vec::<T> -> bool")
	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Contains(t, kinds, DoubleColon)
	require.Contains(t, kinds, Arrow)
}

func TestLexLifetimeVsCharLiteral(t *testing.T) {
	// 'a is a lifetime and emits a Lifetime token; 'x' is a character
	// literal and emits no token at all.
	toks := Lex("&'a str, 'x' end")
	var lifetimes int
	for _, tok := range toks {
		if tok.Kind == Lifetime {
			lifetimes++
			require.Equal(t, "a", tok.Text)
		}
	}
	require.Equal(t, 1, lifetimes)
	require.Equal(t, "end", toks[len(toks)-1].Text)
}

func TestLexCharLiteralEmitsNoToken(t *testing.T) {
	toks := Lex("'x' fn")
	require.Len(t, toks, 1)
	require.Equal(t, "fn", toks[0].Text)
}

func TestLexStringVariants(t *testing.T) {
	toks := Lex(`"plain" r"raw\slash" b"bytes" fn`)
	var quotes int
	for _, tok := range toks {
		if tok.Kind == Punct && tok.Byte == '"' {
			quotes++
		}
	}
	require.Equal(t, 3, quotes)
	require.Equal(t, "fn", toks[len(toks)-1].Text)
}

func TestLexNumberSuffix(t *testing.T) {
	toks := Lex("1u32 3.14f64 0xFFu8")
	require.Len(t, toks, 3)
	for _, tok := range toks {
		require.Equal(t, Number, tok.Kind)
	}
}

func TestLexNumberConsumesRangeDots(t *testing.T) {
	// Dots are consumed unconditionally, so `0..10` lexes as a single
	// Number token rather than splitting at the range operator.
	toks := Lex("0..10")
	require.Len(t, toks, 1)
	require.Equal(t, Number, toks[0].Kind)
	require.Equal(t, "0..10", toks[0].Text)
}

func TestLexBlockCommentsNotNested(t *testing.T) {
	// The comment closes at the first "*/", so "still_comment" and the
	// trailing "*/" are lexed as ordinary code, not swallowed as a nested
	// comment.
	toks := Lex("/* outer /* inner */ still_comment */ fn")
	require.Len(t, toks, 4)
	require.Equal(t, "still_comment", toks[0].Text)
	require.Equal(t, "fn", toks[3].Text)
}
