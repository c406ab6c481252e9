// Package token implements the byte-oriented lexer that every other
// indexing package in ferrolsp builds on.
package token

// Kind classifies a Token. The set is closed and small by design: the
// lexer never needs a dynamic type registry, just enough shape to drive
// the signature parser and the inlay-hint passes downstream.
type Kind int

const (
	Ident Kind = iota
	Lifetime
	Number
	DoubleColon
	Arrow
	Punct
)

// Token is a lexed unit with byte offsets into the original source text.
// Start and End follow Go's half-open slicing convention: text[Start:End]
// recovers the token's exact spelling.
type Token struct {
	Kind  Kind
	Start int
	End   int
	// Text holds the token's spelling for Ident and Number tokens, and the
	// name without its leading `'` for Lifetime tokens. Punct tokens carry
	// their single byte in Byte instead.
	Text string
	Byte byte
}
