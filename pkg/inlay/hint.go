// Package inlay implements the four inlay-hint inference passes: local
// variable types, call argument names, const-generic argument names, and
// chained-expression result types.
package inlay

import (
	"sort"

	"github.com/karlding/ferrolsp/pkg/expr"
	"github.com/karlding/ferrolsp/pkg/index"
	"github.com/karlding/ferrolsp/pkg/position"
	"github.com/karlding/ferrolsp/pkg/token"
)

// Kind distinguishes the four hint passes for clients that want to
// style them differently.
type Kind int

const (
	LocalVarType Kind = iota
	ArgName
	ConstGenericName
	ChainedExprType
)

// Hint is one rendered inlay hint: where it attaches, and its label.
type Hint struct {
	Position position.Position
	Label    string
	Kind     Kind
}

// Range is an inclusive-both-ends LSP range used to filter hints down to
// what the client actually asked about.
type Range struct {
	Start, End position.Position
}

// Compute runs all four passes over text against idx and returns every
// hint whose position falls within rng (inclusive on both ends), sorted
// by position.
func Compute(text string, idx *index.Index, rng Range) []Hint {
	toks := token.Lex(text)

	var hints []Hint
	hints = append(hints, localVarTypeHints(text, toks, idx)...)
	hints = append(hints, argNameHints(text, toks, idx)...)
	hints = append(hints, constGenericHints(text, toks, idx)...)
	hints = append(hints, chainedExprTypeHints(text, toks, idx)...)

	filtered := hints[:0]
	for _, h := range hints {
		if positionGE(h.Position, rng.Start) && positionLE(h.Position, rng.End) {
			filtered = append(filtered, h)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return positionLess(filtered[i].Position, filtered[j].Position)
	})
	return filtered
}

func positionLess(a, b position.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Character < b.Character
}

func positionGE(a, b position.Position) bool {
	return !positionLess(a, b)
}

func positionLE(a, b position.Position) bool {
	return !positionLess(b, a)
}

func offsetHint(text string, offset int, label string, kind Kind) (Hint, bool) {
	pos, ok := position.FromOffset(text, offset)
	if !ok {
		return Hint{}, false
	}
	return Hint{Position: pos, Label: label, Kind: kind}, true
}
