// Package sig walks a token stream and extracts function signatures and
// type declarations without building a full AST or resolving names.
package sig

import "github.com/karlding/ferrolsp/pkg/token"

// GenericParamKind classifies a single entry in a generic parameter list.
type GenericParamKind int

const (
	GenericType GenericParamKind = iota
	GenericConst
	GenericLifetime
)

// GenericParam is one entry of a `<...>` generic parameter list.
type GenericParam struct {
	Name string
	Kind GenericParamKind
}

// FunctionSig is everything the inlay-hint passes need to know about one
// `fn` declaration: its parameter names (in order; unnamed/destructured
// params are the empty string), its return-type spelling (verbatim, not
// reparsed), its generic parameters, and whether its first parameter was
// a `self` receiver.
type FunctionSig struct {
	Name       string
	Params     []string
	ReturnType string
	HasReturn  bool
	Generics   []GenericParam
	HasSelf    bool
}

// TypeDecl is a `struct`/`enum`/`trait`/`type` declaration: just its name
// and generics, enough to answer "is NAME a known type".
type TypeDecl struct {
	Name     string
	Generics []GenericParam
}

// ParseError describes a parse failure at a byte offset. ParseFile never
// returns one: constructs it cannot parse are skipped silently, so
// indexing never aborts.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string { return e.Msg }

// File is everything ParseFile extracts from one source file's token
// stream: every function/method signature and every type declaration.
type File struct {
	Functions []FunctionSig
	Types     []TypeDecl
}

// ParseFile walks toks once, linearly, collecting every `fn` and type
// declaration it can recognize. Anything it cannot parse (a malformed
// generic list, an unmatched bracket) is simply skipped rather than
// aborting the rest of the file — a dropped construct, never a dropped
// file.
func ParseFile(src string, toks []token.Token) File {
	p := &parser{toks: toks, src: src}
	var f File
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		switch {
		case isKeyword(tok, "fn"):
			if sig, ok := p.parseFnDef(); ok {
				f.Functions = append(f.Functions, sig)
				continue
			}
		case isKeyword(tok, "struct") || isKeyword(tok, "enum") ||
			isKeyword(tok, "trait") || isKeyword(tok, "type"):
			if decl, ok := p.parseTypeDef(); ok {
				f.Types = append(f.Types, decl)
				continue
			}
		}
		p.pos++
	}
	return f
}

type parser struct {
	toks []token.Token
	src  string
	pos  int
}

func isKeyword(tok token.Token, kw string) bool {
	return tok.Kind == token.Ident && tok.Text == kw
}

func (p *parser) at(offset int) (token.Token, bool) {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[idx], true
}

// parseFnDef expects p.pos to be on the `fn` keyword.
func (p *parser) parseFnDef() (FunctionSig, bool) {
	start := p.pos
	p.pos++ // consume `fn`

	nameTok, ok := p.at(0)
	if !ok || nameTok.Kind != token.Ident {
		p.pos = start
		return FunctionSig{}, false
	}
	sig := FunctionSig{Name: nameTok.Text}
	p.pos++

	if t, ok := p.at(0); ok && t.Kind == token.Punct && t.Byte == '<' {
		generics, ok := p.parseGenerics()
		if !ok {
			p.pos = start
			return FunctionSig{}, false
		}
		sig.Generics = generics
	}

	if t, ok := p.at(0); !ok || t.Kind != token.Punct || t.Byte != '(' {
		p.pos = start
		return FunctionSig{}, false
	}
	params, hasSelf, ok := p.parseParams()
	if !ok {
		p.pos = start
		return FunctionSig{}, false
	}
	sig.Params = params
	sig.HasSelf = hasSelf

	if t, ok := p.at(0); ok && t.Kind == token.Arrow {
		p.pos++
		retStart := p.pos
		end := p.scanToTerminator()
		if end > retStart {
			sig.ReturnType = p.spellRange(retStart, end)
			sig.HasReturn = true
		}
		p.pos = end
	}

	return sig, true
}

// parseParams consumes a `(...)` parameter list and returns the ordered
// parameter names (empty string for anonymous/destructured params) plus
// whether the first parameter was a `self` receiver.
func (p *parser) parseParams() ([]string, bool, bool) {
	if t, ok := p.at(0); !ok || t.Byte != '(' {
		return nil, false, false
	}
	close, ok := p.findMatchingParen(p.pos)
	if !ok {
		return nil, false, false
	}
	p.pos++ // past `(`

	var names []string
	hasSelf := false
	first := true
	for p.pos < close {
		name, _ := p.parseParamName()
		if first && name == "self" {
			hasSelf = true
		}
		names = append(names, name)
		first = false
		// Skip to the next top-level comma or the closing paren. An
		// unconsumed pattern is scanned from its opening bracket so its
		// inner commas stay below depth zero.
		depth := 0
		for p.pos < close {
			t := p.toks[p.pos]
			if t.Kind == token.Punct {
				switch t.Byte {
				case '(', '[', '{', '<':
					depth++
				case ')', ']', '}', '>':
					depth--
				case ',':
					if depth == 0 {
						p.pos++
						goto nextParam
					}
				}
			}
			p.pos++
		}
	nextParam:
	}
	p.pos = close + 1
	return names, hasSelf, true
}

// parseParamName extracts a parameter's declared name: skips leading `&`,
// `mut`, `ref`, `const`, and lifetimes to find the first binding
// identifier; a `self` receiver yields the name "self". Skipping past the
// `: Type` annotation is handled by the caller's comma-scan.
// Anonymous/destructured params (tuple patterns, `_`) yield the empty
// string.
func (p *parser) parseParamName() (string, bool) {
	for {
		t, ok := p.at(0)
		if !ok {
			return "", false
		}
		switch {
		case t.Kind == token.Punct && t.Byte == '&':
			p.pos++
		case t.Kind == token.Lifetime:
			p.pos++
		case t.Kind == token.Ident && (t.Text == "mut" || t.Text == "ref" || t.Text == "const"):
			p.pos++
		case t.Kind == token.Ident && t.Text == "self":
			p.pos++
			return "self", true
		case t.Kind == token.Ident && t.Text == "_":
			p.pos++
			return "", true
		case t.Kind == token.Ident:
			name := t.Text
			p.pos++
			return name, true
		default:
			// Tuple/struct destructuring pattern: not a simple name.
			return "", false
		}
	}
}

// parseGenerics expects p.pos to be on the opening `<`.
func (p *parser) parseGenerics() ([]GenericParam, bool) {
	close, ok := p.findMatchingAngle(p.pos)
	if !ok {
		return nil, false
	}
	p.pos++ // past `<`

	var params []GenericParam
	for p.pos < close {
		param, ok := p.parseGenericParam(close)
		if ok {
			params = append(params, param)
		}
		depth := 0
		for p.pos < close {
			t := p.toks[p.pos]
			if t.Kind == token.Punct {
				switch t.Byte {
				case '(', '[', '{', '<':
					depth++
				case ')', ']', '}', '>':
					depth--
				case ',':
					if depth == 0 {
						p.pos++
						goto nextParam
					}
				}
			}
			p.pos++
		}
	nextParam:
	}
	p.pos = close + 1
	return params, true
}

func (p *parser) parseGenericParam(limit int) (GenericParam, bool) {
	t, ok := p.at(0)
	if !ok {
		return GenericParam{}, false
	}
	switch {
	case t.Kind == token.Lifetime:
		p.pos++
		return GenericParam{Name: t.Text, Kind: GenericLifetime}, true
	case t.Kind == token.Ident && t.Text == "const":
		p.pos++
		nameTok, ok := p.at(0)
		if !ok || nameTok.Kind != token.Ident {
			return GenericParam{}, false
		}
		p.pos++
		return GenericParam{Name: nameTok.Text, Kind: GenericConst}, true
	case t.Kind == token.Ident:
		p.pos++
		return GenericParam{Name: t.Text, Kind: GenericType}, true
	default:
		return GenericParam{}, false
	}
}

// parseTypeDef expects p.pos to be on `struct`/`enum`/`trait`/`type`.
func (p *parser) parseTypeDef() (TypeDecl, bool) {
	start := p.pos
	p.pos++

	nameTok, ok := p.at(0)
	if !ok || nameTok.Kind != token.Ident {
		p.pos = start
		return TypeDecl{}, false
	}
	decl := TypeDecl{Name: nameTok.Text}
	p.pos++

	if t, ok := p.at(0); ok && t.Kind == token.Punct && t.Byte == '<' {
		generics, ok := p.parseGenerics()
		if ok {
			decl.Generics = generics
		}
	}

	return decl, true
}

// scanToTerminator advances past a return-type spelling, honoring bracket
// depth so a return type like `Result<Foo, Bar>` or `fn(i32) -> bool`
// doesn't trip on the `{`/`;` inside it, stopping at the first depth-zero
// `{`, `;`, or `where`.
func (p *parser) scanToTerminator() int {
	depth := 0
	i := p.pos
	for i < len(p.toks) {
		t := p.toks[i]
		if t.Kind == token.Punct {
			switch t.Byte {
			case '(', '[', '<':
				depth++
			case ')', ']', '>':
				depth--
			case '{', ';':
				if depth == 0 {
					return i
				}
			}
		}
		if t.Kind == token.Ident && t.Text == "where" && depth == 0 {
			return i
		}
		i++
	}
	return i
}

func (p *parser) findMatchingParen(open int) (int, bool) {
	return findMatching(p.toks, open, '(', ')')
}

// findMatchingAngle matches the `<` at open, ignoring `<`/`>` that sit
// inside a deeper `()`/`[]`/`{}`.
func (p *parser) findMatchingAngle(open int) (int, bool) {
	angle, nested := 0, 0
	for i := open; i < len(p.toks); i++ {
		t := p.toks[i]
		if t.Kind != token.Punct {
			continue
		}
		switch {
		case t.Byte == '(' || t.Byte == '[' || t.Byte == '{':
			nested++
		case t.Byte == ')' || t.Byte == ']' || t.Byte == '}':
			nested--
		case t.Byte == '<' && nested == 0:
			angle++
		case t.Byte == '>' && nested == 0:
			angle--
			if angle == 0 {
				return i, true
			}
		}
	}
	return 0, false
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

// spellRange returns the verbatim source text spanning tokens
// [from, to), trimmed of surrounding whitespace.
func (p *parser) spellRange(from, to int) string {
	if from >= to || to > len(p.toks) {
		return ""
	}
	start := p.toks[from].Start
	end := p.toks[to-1].End
	return trimSpace(p.src[start:end])
}

func trimSpace(s string) string {
	start := 0
	for start < len(s) && isBlank(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isBlank(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
