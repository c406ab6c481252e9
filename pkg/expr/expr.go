// Package expr recognizes small syntactic shapes in a token stream —
// literals, struct literals, and call sites — that the inlay-hint passes
// need without a full expression grammar.
package expr

import (
	"strings"

	"github.com/karlding/ferrolsp/pkg/index"
	"github.com/karlding/ferrolsp/pkg/token"
)

// InferLiteral classifies the literal expression beginning at byte offset
// start in text, if any, returning its inferred type spelling. Strings
// infer as `&str` (`&[u8]` for `b"..."`), bools as `bool`, and numbers,
// optionally negated, by their suffix (defaulting to i32 for integers, f64
// for a `.` or an exponent); a range like `0..10` is not a literal.
// Character literals emit no token
// (the lexer drops them entirely), so they're recognized directly from the
// source text at start rather than from toks[pos].
func InferLiteral(text string, start int, toks []token.Token, pos int) (string, bool) {
	if ty, ok := inferCharLiteral(text, start); ok {
		return ty, true
	}
	if pos >= len(toks) {
		return "", false
	}
	t := toks[pos]

	switch {
	case t.Kind == token.Ident && (t.Text == "true" || t.Text == "false"):
		return "bool", true
	case t.Kind == token.Punct && t.Byte == '"':
		if text[t.Start] == 'b' {
			return "&[u8]", true
		}
		return "&str", true
	case t.Kind == token.Number && !strings.Contains(t.Text, ".."):
		return inferNumberLiteral(t.Text), true
	case t.Kind == token.Punct && t.Byte == '-' && pos+1 < len(toks) &&
		toks[pos+1].Kind == token.Number && !strings.Contains(toks[pos+1].Text, ".."):
		return inferNumberLiteral(toks[pos+1].Text), true
	default:
		return "", false
	}
}

// inferCharLiteral reports whether text starting at start (after skipping
// leading spaces/tabs) is a `'x'`-shaped character literal, honoring one
// level of backslash escape.
func inferCharLiteral(text string, start int) (string, bool) {
	i := start
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) || text[i] != '\'' {
		return "", false
	}
	i++
	if i < len(text) && text[i] == '\\' {
		i += 2
	} else if i < len(text) {
		i++
	}
	if i < len(text) && text[i] == '\'' {
		return "char", true
	}
	return "", false
}

var numberSuffixes = map[string]string{
	"u8": "u8", "u16": "u16", "u32": "u32", "u64": "u64", "u128": "u128", "usize": "usize",
	"i8": "i8", "i16": "i16", "i32": "i32", "i64": "i64", "i128": "i128", "isize": "isize",
	"f32": "f32", "f64": "f64",
}

func inferNumberLiteral(text string) string {
	for suffix, ty := range numberSuffixes {
		if strings.HasSuffix(text, suffix) {
			return ty
		}
	}
	isHex := strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
	if strings.Contains(text, ".") || (!isHex && strings.ContainsAny(text, "eE")) {
		return "f64"
	}
	return "i32"
}

// InferStructLiteral recognizes `Name { ... }` / `path::Name { ... }` /
// `Name(...)` tuple-struct construction starting at toks[pos], returning
// the last `::` segment as the type name if it resolves uniquely in idx.
func InferStructLiteral(toks []token.Token, pos int, idx *index.Index) (string, bool) {
	if pos >= len(toks) || toks[pos].Kind != token.Ident {
		return "", false
	}
	end := pos
	name := toks[pos].Text
	end++
	for end+1 < len(toks) && toks[end].Kind == token.DoubleColon && toks[end+1].Kind == token.Ident {
		name = toks[end+1].Text
		end += 2
	}

	if end >= len(toks) {
		return "", false
	}
	next := toks[end]
	if next.Kind != token.Punct || (next.Byte != '{' && next.Byte != '(') {
		return "", false
	}

	if !idx.IsUniqueType(name) {
		return "", false
	}
	return name, true
}

// CallKind distinguishes a plain function call from a method call
// (preceded by `.`).
type CallKind int

const (
	FunctionCall CallKind = iota
	MethodCall
)

// Call describes one call site recognized in a token stream.
type Call struct {
	Name       string
	Kind       CallKind
	ArgStarts  []int
	CloseParen int
}

var keywords = map[string]bool{
	"fn": true, "let": true, "if": true, "else": true, "match": true, "for": true,
	"while": true, "loop": true, "return": true, "struct": true, "enum": true,
	"trait": true, "impl": true, "mod": true, "use": true, "pub": true, "const": true,
	"static": true, "type": true, "where": true, "self": true, "Self": true,
	"mut": true, "ref": true, "as": true, "in": true, "break": true, "continue": true,
}

// CollectCalls scans toks for call sites: an identifier (optionally
// preceded by `.` for a method call, optionally followed by a turbofish
// `::<...>`) immediately followed by `(`.
func CollectCalls(toks []token.Token) []Call {
	var calls []Call
	for i, t := range toks {
		if t.Kind != token.Ident || keywords[t.Text] {
			continue
		}
		// A macro invocation (`name!(...)`) is not a call.
		if i+1 < len(toks) && toks[i+1].Kind == token.Punct && toks[i+1].Byte == '!' {
			continue
		}
		// Skip a declaration context: `fn NAME(` is the declaration itself.
		if i > 0 && toks[i-1].Kind == token.Ident && toks[i-1].Text == "fn" {
			continue
		}

		parenIdx := i + 1
		if parenIdx < len(toks) && toks[parenIdx].Kind == token.DoubleColon {
			// Turbofish before the call parens: `name::<...>(`.
			if parenIdx+1 < len(toks) && toks[parenIdx+1].Kind == token.Punct && toks[parenIdx+1].Byte == '<' {
				if close, ok := findMatchingAngle(toks, parenIdx+1); ok {
					parenIdx = close + 1
				}
			}
		}
		if parenIdx >= len(toks) || toks[parenIdx].Kind != token.Punct || toks[parenIdx].Byte != '(' {
			continue
		}
		closeParen, ok := findMatchingParen(toks, parenIdx)
		if !ok {
			continue
		}

		kind := FunctionCall
		if i > 0 && toks[i-1].Kind == token.Punct && toks[i-1].Byte == '.' {
			kind = MethodCall
		}

		calls = append(calls, Call{
			Name:       t.Text,
			Kind:       kind,
			ArgStarts:  parseArgStarts(toks, parenIdx, closeParen),
			CloseParen: toks[closeParen].End,
		})
	}
	return calls
}

// parseArgStarts returns the token index of the first token of each
// top-level, comma-separated argument between (open, close).
func parseArgStarts(toks []token.Token, open, close int) []int {
	var starts []int
	pos := open + 1
	argStart := -1
	depth := 0
	for pos < close {
		t := toks[pos]
		if argStart == -1 {
			argStart = pos
		}
		if t.Kind == token.Punct {
			switch t.Byte {
			case '(', '[', '{', '<':
				depth++
			case ')', ']', '}', '>':
				depth--
			case ',':
				if depth == 0 {
					starts = append(starts, argStart)
					argStart = -1
				}
			}
		}
		pos++
	}
	if argStart != -1 {
		starts = append(starts, argStart)
	}
	return starts
}

// IsChainedCall reports whether the token immediately following close
// (a byte offset, per Call.CloseParen) is `.` or the start of `?.`-style
// postfix chaining.
func IsChainedCall(toks []token.Token, closeParenOffset int) (int, bool) {
	for i, t := range toks {
		if t.Start < closeParenOffset {
			continue
		}
		if t.Kind == token.Punct && t.Byte == '?' {
			continue
		}
		if t.Kind == token.Punct && t.Byte == '.' {
			return i, true
		}
		return 0, false
	}
	return 0, false
}

func findMatchingParen(toks []token.Token, open int) (int, bool) {
	return findMatching(toks, open, '(', ')')
}

func findMatchingAngle(toks []token.Token, open int) (int, bool) {
	return findMatching(toks, open, '<', '>')
}

func findMatching(toks []token.Token, open int, openByte, closeByte byte) (int, bool) {
	depth := 0
	for i := open; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.Punct {
			continue
		}
		switch t.Byte {
		case openByte:
			depth++
		case closeByte:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
