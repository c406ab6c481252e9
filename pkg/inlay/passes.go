package inlay

import (
	"github.com/karlding/ferrolsp/pkg/expr"
	"github.com/karlding/ferrolsp/pkg/index"
	"github.com/karlding/ferrolsp/pkg/sig"
	"github.com/karlding/ferrolsp/pkg/token"
)

// localVarTypeHints finds `let NAME = EXPR` bindings with no explicit type
// annotation and, when the classifier chain (literal → struct literal →
// call return type) resolves a type, attaches it right after NAME.
func localVarTypeHints(text string, toks []token.Token, idx *index.Index) []Hint {
	var hints []Hint
	for i := 0; i < len(toks); i++ {
		if toks[i].Kind != token.Ident || toks[i].Text != "let" {
			continue
		}
		pos := i + 1
		if pos < len(toks) && toks[pos].Kind == token.Ident && toks[pos].Text == "mut" {
			pos++
		}
		if pos >= len(toks) || toks[pos].Kind != token.Ident || toks[pos].Text == "_" {
			continue
		}
		nameTok := toks[pos]
		pos++

		if pos < len(toks) && toks[pos].Kind == token.Punct && toks[pos].Byte == ':' {
			continue // already annotated
		}
		if pos >= len(toks) || toks[pos].Kind != token.Punct || toks[pos].Byte != '=' {
			continue
		}
		exprStart := toks[pos].End
		pos++ // past `=`
		if pos >= len(toks) {
			continue
		}

		ty, ok := classifyExprType(text, exprStart, toks, pos, idx)
		if !ok {
			continue
		}

		h, ok := offsetHint(text, nameTok.End, ": "+ty, LocalVarType)
		if ok {
			hints = append(hints, h)
		}
	}
	return hints
}

// classifyExprType runs the literal → struct-literal → call-return-type
// chain against the expression starting at byte offset exprStart / toks[pos].
func classifyExprType(text string, exprStart int, toks []token.Token, pos int, idx *index.Index) (string, bool) {
	if ty, ok := expr.InferLiteral(text, exprStart, toks, pos); ok {
		return ty, true
	}
	if ty, ok := expr.InferStructLiteral(toks, pos, idx); ok {
		return ty, true
	}
	if ty, ok := callReturnTypeAt(toks, pos, idx); ok {
		return ty, true
	}
	return "", false
}

// callReturnTypeAt checks whether toks[pos] begins a direct function call
// (not a method call, not a turbofish) and, if the callee resolves
// uniquely, returns its declared return type.
func callReturnTypeAt(toks []token.Token, pos int, idx *index.Index) (string, bool) {
	if pos >= len(toks) || toks[pos].Kind != token.Ident {
		return "", false
	}
	name := toks[pos].Text
	next := pos + 1
	if next >= len(toks) || toks[next].Kind != token.Punct || toks[next].Byte != '(' {
		return "", false
	}
	fn, ok := idx.UniqueFn(name)
	if !ok || !fn.HasReturn {
		return "", false
	}
	return fn.ReturnType, true
}

// argNameHints attaches the declared parameter name to each positional
// call argument, for calls whose callee resolves uniquely in idx.
func argNameHints(text string, toks []token.Token, idx *index.Index) []Hint {
	var hints []Hint
	for _, call := range expr.CollectCalls(toks) {
		var sigParams []string
		if call.Kind == expr.MethodCall {
			fn, ok := idx.UniqueMethod(call.Name)
			if !ok {
				continue
			}
			sigParams = fn.Params
		} else {
			fn, ok := idx.UniqueFn(call.Name)
			if !ok || fn.HasSelf {
				continue
			}
			sigParams = fn.Params
		}

		for i, argStart := range call.ArgStarts {
			if i >= len(sigParams) {
				break
			}
			name := sigParams[i]
			if name == "" || name == "_" {
				continue
			}
			if argStart >= len(toks) {
				continue
			}
			h, ok := offsetHint(text, toks[argStart].Start, name+":", ArgName)
			if ok {
				hints = append(hints, h)
			}
		}
	}
	return hints
}

// constGenericHints attaches const-generic parameter names to turbofish
// `::<...>` call-site arguments, e.g. `foo::<3, u8>()` on
// `fn foo<const N: usize, T>()` → the `3` argument is labeled `N:`; type
// and lifetime arguments get no label.
func constGenericHints(text string, toks []token.Token, idx *index.Index) []Hint {
	var hints []Hint
	for i := 0; i < len(toks); i++ {
		if toks[i].Kind != token.Ident {
			continue
		}
		name := toks[i].Text
		dc := i + 1
		if dc >= len(toks) || toks[dc].Kind != token.DoubleColon {
			continue
		}
		open := dc + 1
		if open >= len(toks) || toks[open].Kind != token.Punct || toks[open].Byte != '<' {
			continue
		}
		close, ok := findMatchingAngle(toks, open)
		if !ok {
			continue
		}

		generics, ok := idx.UniqueGenerics(name)
		if !ok {
			continue
		}
		starts := parseGenericArgStarts(toks, open, close)

		for argIdx, argStart := range starts {
			if argIdx >= len(generics) {
				break
			}
			label := generics[argIdx].Name
			if label == "" || generics[argIdx].Kind != sig.GenericConst {
				continue
			}
			h, ok := offsetHint(text, toks[argStart].Start, label+":", ConstGenericName)
			if ok {
				hints = append(hints, h)
			}
		}
	}
	return hints
}

func parseGenericArgStarts(toks []token.Token, open, close int) []int {
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

func findMatchingAngle(toks []token.Token, open int) (int, bool) {
	depth := 0
	for i := open; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.Punct {
			continue
		}
		switch t.Byte {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// chainedExprTypeHints labels the result of a call that feeds into another
// expression. A method call is always part of a chain (`foo().bar()`
// reads left to right regardless of what follows `bar()`), so it always
// qualifies; a bare function call only qualifies when it's immediately
// followed by `.` or `?.` postfix chaining, e.g. `parse_input(s).len()`
// gets the return type of parse_input attached right after its `)`.
func chainedExprTypeHints(text string, toks []token.Token, idx *index.Index) []Hint {
	var hints []Hint
	for _, call := range expr.CollectCalls(toks) {
		var ty string
		var ok bool
		if call.Kind == expr.MethodCall {
			fn, found := idx.UniqueMethod(call.Name)
			ty, ok = fn.ReturnType, found && fn.HasReturn
		} else {
			if _, chained := expr.IsChainedCall(toks, call.CloseParen); !chained {
				continue
			}
			fn, found := idx.UniqueFn(call.Name)
			ty, ok = fn.ReturnType, found && fn.HasReturn
		}
		if !ok {
			continue
		}

		h, ok := offsetHint(text, call.CloseParen, ": "+ty, ChainedExprType)
		if ok {
			hints = append(hints, h)
		}
	}
	return hints
}
