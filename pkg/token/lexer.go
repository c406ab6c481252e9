package token

// Lex tokenizes src and returns every token in source order. It never
// returns an error: anything it cannot classify falls out as a single-byte
// Punct token, so a parser downstream can always make forward progress one
// token at a time. Comments and whitespace are consumed but not emitted.
//
// Block comments are not nested, matching the reference lexer this is
// ported from: a `/*` inside a `/* ... */` run does not increase depth, the
// comment simply ends at the first `*/`.
func Lex(src string) []Token {
	l := &lexer{src: src, n: len(src)}
	var toks []Token
	for {
		l.skipWhitespaceAndComments()
		if l.pos >= l.n {
			break
		}
		if tok, ok := l.next(); ok {
			toks = append(toks, tok)
		}
	}
	return toks
}

type lexer struct {
	src string
	pos int
	n   int
}

func (l *lexer) skipWhitespaceAndComments() {
	for l.pos < l.n {
		c := l.src[l.pos]
		switch {
		case isSpace(c):
			l.pos++
		case c == '/' && l.peek(1) == '/':
			l.pos += 2
			for l.pos < l.n && l.src[l.pos] != '\n' {
				l.pos++
			}
		case c == '/' && l.peek(1) == '*':
			l.pos += 2
			for l.pos < l.n {
				if l.src[l.pos] == '*' && l.peek(1) == '/' {
					l.pos += 2
					break
				}
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) peek(offset int) byte {
	if l.pos+offset >= l.n {
		return 0
	}
	return l.src[l.pos+offset]
}

// next consumes and returns the next token starting at l.pos. The second
// return value is false only for a character literal, which is consumed
// but emits no token.
func (l *lexer) next() (Token, bool) {
	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '"':
		l.skipNormalString()
		return Token{Kind: Punct, Start: start, End: l.pos, Byte: '"'}, true
	case c == 'r' && (l.peek(1) == '"' || l.peek(1) == '#'):
		if l.tryRawString() {
			return Token{Kind: Punct, Start: start, End: l.pos, Byte: '"'}, true
		}
		return l.lexIdentOrNumber(start), true
	case c == 'b' && l.peek(1) == '"':
		l.pos++
		l.skipNormalString()
		return Token{Kind: Punct, Start: start, End: l.pos, Byte: '"'}, true
	case c == '\'':
		return l.lexLifetimeOrChar(start)
	case c == ':' && l.peek(1) == ':':
		l.pos += 2
		return Token{Kind: DoubleColon, Start: start, End: l.pos}, true
	case c == '-' && l.peek(1) == '>':
		l.pos += 2
		return Token{Kind: Arrow, Start: start, End: l.pos}, true
	case isIdentStart(c):
		return l.lexIdentOrNumber(start), true
	case isDigit(c):
		return l.lexNumber(start), true
	default:
		l.pos++
		return Token{Kind: Punct, Start: start, End: l.pos, Byte: c}, true
	}
}

// skipNormalString consumes a `"..."` literal (the opening quote must
// already be under l.pos), honoring backslash escapes. An unterminated
// string simply runs to end of input; the lexer never errors.
func (l *lexer) skipNormalString() {
	l.pos++ // opening quote
	for l.pos < l.n {
		c := l.src[l.pos]
		if c == '\\' {
			l.pos += 2
			continue
		}
		l.pos++
		if c == '"' {
			return
		}
	}
}

// tryRawString attempts to consume a raw string literal `r"..."` or
// `r#"..."#` (any number of `#` delimiters). Returns false, leaving pos
// unchanged, if this isn't actually a raw string (e.g. an identifier that
// happens to start with `r`, such as `result`).
func (l *lexer) tryRawString() bool {
	start := l.pos
	p := l.pos + 1
	hashes := 0
	for p < l.n && l.src[p] == '#' {
		hashes++
		p++
	}
	if p >= l.n || l.src[p] != '"' {
		return false
	}
	p++
	closing := "\"" + repeat('#', hashes)
	idx := indexFrom(l.src, p, closing)
	if idx < 0 {
		l.pos = l.n
	} else {
		l.pos = idx + len(closing)
	}
	_ = start
	return true
}

func repeat(b byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return string(out)
}

func indexFrom(s string, from int, sub string) int {
	if from > len(s) {
		return -1
	}
	rest := s[from:]
	for i := 0; i+len(sub) <= len(rest); i++ {
		if rest[i:i+len(sub)] == sub {
			return from + i
		}
	}
	return -1
}

// lexLifetimeOrChar disambiguates `'a` (a lifetime) from `'a'` (a char
// literal). A lifetime is an identifier immediately following `'` that is
// NOT itself closed by another `'` — `'static` vs `'x'`. Character literals
// emit no token: they're consumed as source bytes but carry no signature
// or call-site meaning the downstream passes need.
func (l *lexer) lexLifetimeOrChar(start int) (Token, bool) {
	l.pos++ // opening quote
	identStart := l.pos
	for l.pos < l.n && isIdentContinue(l.src[l.pos]) {
		l.pos++
	}
	if l.pos > identStart && (l.pos >= l.n || l.src[l.pos] != '\'') {
		// Consumed an identifier and it isn't immediately closed: lifetime.
		name := l.src[identStart:l.pos]
		return Token{Kind: Lifetime, Start: start, End: l.pos, Text: name}, true
	}

	// Otherwise this is a char literal: reset and consume up to and
	// including the closing quote, honoring one level of backslash escape.
	l.pos = identStart
	if l.pos < l.n && l.src[l.pos] == '\\' {
		l.pos += 2
	} else if l.pos < l.n {
		l.pos++
	}
	if l.pos < l.n && l.src[l.pos] == '\'' {
		l.pos++
	}
	return Token{}, false
}

func (l *lexer) lexIdentOrNumber(start int) Token {
	for l.pos < l.n && isIdentContinue(l.src[l.pos]) {
		l.pos++
	}
	return Token{Kind: Ident, Start: start, End: l.pos, Text: l.src[start:l.pos]}
}

// lexNumber consumes a numeric literal along with any trailing suffix
// (`1u32`, `3.14f64`, `0xFFu8`) without validating the suffix: the parser
// only cares that a Number token spans the whole literal, suffix included.
// Dots are consumed unconditionally, matching the reference lexer: `0..10`
// lexes as a single Number token, not `0`, `.`, `.`, `10`.
func (l *lexer) lexNumber(start int) Token {
	for l.pos < l.n && (isIdentContinue(l.src[l.pos]) || l.src[l.pos] == '.') {
		l.pos++
	}
	return Token{Kind: Number, Start: start, End: l.pos, Text: l.src[start:l.pos]}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
