// Package uri converts between file:// LSP document URIs and filesystem
// paths, using a small hand-rolled percent-codec rather than net/url so the
// encoding rules match exactly what editors send (and what cargo's
// diagnostics file names need to become).
package uri

import (
	"runtime"
	"strings"
)

// ToPath converts a file:// URI to a filesystem path. It returns false for
// any URI that isn't a file:// URI, or that fails to percent-decode.
func ToPath(raw string) (string, bool) {
	rest, ok := strings.CutPrefix(raw, "file://")
	if !ok {
		return "", false
	}
	if strings.HasPrefix(rest, "localhost/") {
		rest = rest[len("localhost"):]
	}

	decoded, ok := percentDecode(rest)
	if !ok {
		return "", false
	}
	path := decoded

	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") {
		if len(path) > 2 && path[2] == ':' {
			path = path[1:]
		}
	}

	return path, true
}

// FromPath converts a filesystem path to a file:// URI.
func FromPath(path string) string {
	normalized := strings.ReplaceAll(path, "\\", "/")
	if runtime.GOOS == "windows" && !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	return "file://" + percentEncode(normalized)
}

func percentDecode(input string) (string, bool) {
	var out []byte
	for i := 0; i < len(input); i++ {
		b := input[i]
		if b == '%' {
			if i+2 >= len(input) {
				return "", false
			}
			hi, ok1 := fromHex(input[i+1])
			lo, ok2 := fromHex(input[i+2])
			if !ok1 || !ok2 {
				return "", false
			}
			out = append(out, (hi<<4)|lo)
			i += 2
			continue
		}
		out = append(out, b)
	}
	return string(out), true
}

func percentEncode(input string) string {
	var b strings.Builder
	for i := 0; i < len(input); i++ {
		c := input[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(toHex((c >> 4) & 0x0f))
			b.WriteByte(toHex(c & 0x0f))
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func toHex(v byte) byte {
	switch {
	case v <= 9:
		return '0' + v
	case v <= 15:
		return 'A' + (v - 10)
	default:
		return '0'
	}
}

func fromHex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
