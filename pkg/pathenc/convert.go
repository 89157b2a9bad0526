package pathenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	ErrUndecodable   = errors.New("bytes are not decodable with any supported encoding")
	ErrUnencodable   = errors.New("text cannot be encoded with the target encoding")
	ErrOddUTF16Input = errors.New("UTF-16LE input has an odd byte length")
)

// ToUTF8 converts raw path bytes to canonical UTF-8 text, detecting the
// source encoding first. It fails with [ErrUndecodable] when the bytes do not
// match any supported encoding.
func ToUTF8(b []byte) (string, error) {
	return decode(b, Detect(b))
}

// ToUTF8Lossy is the preserve-mode variant of [ToUTF8]. Bytes that cannot be
// decoded are replaced with U+FFFD instead of failing. The returned bool
// reports whether any replacement occurred.
func ToUTF8Lossy(b []byte) (string, bool) {
	text, err := decode(b, Detect(b))
	if err == nil {
		return text, false
	}

	return strings.ToValidUTF8(string(b), "�"), true
}

// FromUTF8 encodes canonical UTF-8 text into the target encoding.
func FromUTF8(text string, target Encoding) ([]byte, error) {
	switch target {
	case UTF8Encoding:
		return []byte(text), nil

	case UTF16LEEncoding:
		b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).
			NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnencodable, err)
		}

		return b, nil

	case Windows1252Encoding:
		b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnencodable, err)
		}

		return b, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnencodable, target.Name())
	}
}

func decode(b []byte, enc Encoding) (string, error) {
	switch enc {
	case UTF8Encoding:
		return string(b), nil

	case UTF16LEEncoding:
		if len(b)%2 != 0 {
			return "", ErrOddUTF16Input
		}

		text, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).
			NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUndecodable, err)
		}

		return string(text), nil

	case Windows1252Encoding:
		text, err := charmap.Windows1252.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUndecodable, err)
		}

		return string(text), nil

	default:
		return "", ErrUndecodable
	}
}
