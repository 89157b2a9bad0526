package pathenc

import (
	"strings"
)

type Encoding string

const (
	UnknownEncoding     Encoding = "UNKNOWN"
	UTF8Encoding        Encoding = "UTF-8"
	UTF16LEEncoding     Encoding = "UTF-16LE"
	Windows1252Encoding Encoding = "WINDOWS-1252"
)

// EncodingEnum lists all known encodings, for JSON Schema generation.
var EncodingEnum = []any{
	UTF8Encoding,
	UTF16LEEncoding,
	Windows1252Encoding,
	UnknownEncoding,
}

// GetEncoding returns the [Encoding] matching the given name, or
// [UnknownEncoding] if the name is not recognized.
func GetEncoding(name string) Encoding {
	switch strings.TrimSpace(strings.ToUpper(name)) {
	case string(UTF8Encoding), "UTF8":
		return UTF8Encoding
	case string(UTF16LEEncoding), "UTF16LE":
		return UTF16LEEncoding
	case string(Windows1252Encoding), "WINDOWS1252", "CP1252":
		return Windows1252Encoding
	default:
		return UnknownEncoding
	}
}

// Name returns the human-readable name of the encoding.
func (e Encoding) Name() string {
	return string(e)
}
