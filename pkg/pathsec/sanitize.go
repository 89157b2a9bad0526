package pathsec

import (
	"strings"
	"unicode/utf8"
)

const maxSegmentLen = 255

// Sanitize rewrites a path segment into a safe form. It is a total function:
// it never fails, and always returns something usable as a filename.
//
// Traversal sequences are removed, each Windows-illegal character and each
// control character is replaced with an underscore, and the result is
// truncated to 255 bytes. Separators are not segment content and are also
// replaced.
func Sanitize(segment string) string {
	s := strings.ReplaceAll(segment, "../", "")
	s = strings.ReplaceAll(s, `..\`, "")

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r < 0x20 || r == 0x7F:
			b.WriteByte('_')
		case strings.ContainsRune(dangerousChars, r):
			b.WriteByte('_')
		case r == '/' || r == '\\':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len(out) > maxSegmentLen {
		out = out[:maxSegmentLen]
		// Do not cut a multi-byte rune in half.
		for len(out) > 0 && !utf8.ValidString(out) {
			out = out[:len(out)-1]
		}
	}

	return out
}
