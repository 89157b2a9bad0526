package pathenc

import (
	"unicode/utf8"
)

// Windows-1252 leaves five byte values unassigned.
var cp1252Unassigned = map[byte]bool{
	0x81: true,
	0x8D: true,
	0x8F: true,
	0x90: true,
	0x9D: true,
}

// Detect classifies raw path bytes as one of the supported encodings.
//
// Heuristics are applied in a fixed priority order, first match wins:
//  1. A UTF-16LE BOM, or a run of alternating NUL bytes consistent with
//     ASCII-range UTF-16LE text.
//  2. Strict UTF-8 validation.
//  3. All bytes within the Windows-1252 printable/extended range.
//
// Anything else is [UnknownEncoding]. Short inputs are inherently ambiguous;
// ties are resolved by the priority order above rather than by additional
// heuristics.
func Detect(b []byte) Encoding {
	if len(b) == 0 {
		return UTF8Encoding
	}

	if hasUTF16LEBOM(b) || looksLikeUTF16LE(b) {
		return UTF16LEEncoding
	}

	if utf8.Valid(b) {
		return UTF8Encoding
	}

	if inWindows1252Range(b) {
		return Windows1252Encoding
	}

	return UnknownEncoding
}

func hasUTF16LEBOM(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE
}

// looksLikeUTF16LE reports whether the bytes form an alternating
// char/NUL pattern, i.e. ASCII-range text encoded as UTF-16LE without a BOM.
func looksLikeUTF16LE(b []byte) bool {
	if len(b) < 4 || len(b)%2 != 0 {
		return false
	}

	nulHigh := 0
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0x00 {
			// NUL in the low byte ends the string in any path context.
			return false
		}
		if b[i+1] == 0x00 {
			nulHigh++
		}
	}

	// Require the pattern to hold for at least three quarters of the code
	// units, so that binary junk with a stray NUL does not match.
	units := len(b) / 2

	return nulHigh*4 >= units*3
}

func inWindows1252Range(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c == 0x7F || cp1252Unassigned[c] {
			return false
		}
	}

	return true
}
