// Package hover resolves a hover request: given a cursor position in one
// open document, it finds the identifier under the cursor and searches
// every open document for a line that looks like that identifier's
// declaration.
package hover

import (
	"strings"

	"github.com/karlding/ferrolsp/pkg/docstore"
	"github.com/karlding/ferrolsp/pkg/position"
)

var declKeywords = []string{"fn", "struct", "enum", "type", "const", "mod", "trait", "impl"}

// Resolve returns Markdown hover content for the identifier at pos in the
// document at uri, or false if there's no identifier there or no
// definition line can be found for it.
func Resolve(store *docstore.Store, uri string, pos position.Position) (string, bool) {
	doc, ok := store.Get(uri)
	if !ok {
		return "", false
	}
	offset, ok := position.ToOffset(doc.Text, pos)
	if !ok {
		return "", false
	}
	ident, ok := identAtOffset(doc.Text, offset)
	if !ok {
		return "", false
	}

	for _, other := range store.All() {
		if line, ok := findDefinition(other.Text, ident); ok {
			return "```rust\n" + line + "\n```", true
		}
	}
	return "", false
}

// identAtOffset expands left and right from offset over identifier bytes
// (ASCII alnum and `_`) to recover the whole word under the cursor.
func identAtOffset(text string, offset int) (string, bool) {
	if offset > len(text) {
		return "", false
	}
	start, end := offset, offset
	for start > 0 && isIdentByte(text[start-1]) {
		start--
	}
	for end < len(text) && isIdentByte(text[end]) {
		end++
	}
	if start == end {
		return "", false
	}
	return text[start:end], true
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// findDefinition scans text line by line for the first line that declares
// ident: an optional `pub`/`pub(...)` prefix, then one of declKeywords,
// whitespace, then ident itself.
func findDefinition(text, ident string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		rest := stripPubPrefix(trimmed)
		for _, kw := range declKeywords {
			after, ok := strings.CutPrefix(rest, kw)
			if !ok {
				continue
			}
			if len(after) == 0 || !isBlank(after[0]) {
				continue
			}
			after = strings.TrimLeft(after, " \t")
			if name, ok := takeIdent(after); ok && name == ident {
				return trimmed, true
			}
		}
	}
	return "", false
}

// stripPubPrefix removes a leading `pub` or `pub(crate)`/`pub(in ...)`
// qualifier, if present.
func stripPubPrefix(s string) string {
	after, ok := strings.CutPrefix(s, "pub")
	if !ok {
		return s
	}
	if len(after) > 0 && after[0] == '(' {
		if idx := strings.IndexByte(after, ')'); idx >= 0 {
			after = after[idx+1:]
		}
	}
	return strings.TrimLeft(after, " \t")
}

func takeIdent(s string) (string, bool) {
	end := 0
	for end < len(s) && isIdentByte(s[end]) {
		end++
	}
	if end == 0 {
		return "", false
	}
	return s[:end], true
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
