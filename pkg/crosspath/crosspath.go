package crosspath

import (
	"fmt"

	"github.com/MacroPower/crosspath/pkg/pathconv"
	"github.com/MacroPower/crosspath/pkg/pathenc"
	"github.com/MacroPower/crosspath/pkg/pathsec"
)

// CrossPath is an immutable, encoding-normalized, security-checked path.
// All conversions are pure read operations; instances are safe for
// concurrent use.
type CrossPath struct {
	converter *pathconv.Converter
	checker   *pathsec.Checker
	original  string
	text      string
	encoding  pathenc.Encoding
	style     pathconv.Style
	config    Config
	lossy     bool
}

// New builds a [CrossPath] from a path string with [DefaultConfig].
func New(path string) (*CrossPath, error) {
	return NewWithConfig(path, DefaultConfig())
}

// NewWithConfig builds a [CrossPath] from a path string. Construction fails
// on the first pipeline error: malformed configuration, undecodable input, or
// (when [Config.SecurityCheck] is set) a security violation.
func NewWithConfig(path string, config Config) (*CrossPath, error) {
	return FromBytesWithConfig([]byte(path), config)
}

// FromBytes builds a [CrossPath] from raw path bytes with [DefaultConfig].
func FromBytes(b []byte) (*CrossPath, error) {
	return FromBytesWithConfig(b, DefaultConfig())
}

// FromBytesWithConfig builds a [CrossPath] from raw path bytes, running
// encoding detection first. No raw byte ambiguity survives construction: the
// stored canonical text is always valid UTF-8.
func FromBytesWithConfig(b []byte, config Config) (*CrossPath, error) {
	if err := config.Style.Validate(); err != nil {
		return nil, err
	}

	converter, err := config.converter()
	if err != nil {
		return nil, err
	}

	encoding := pathenc.Detect(b)

	var (
		text  string
		lossy bool
	)
	if config.PreserveEncoding {
		text, lossy = pathenc.ToUTF8Lossy(b)
	} else {
		text, err = pathenc.ToUTF8(b)
		if err != nil {
			return nil, fmt.Errorf("failed to decode path bytes: %w", err)
		}
	}

	checker := config.checker()
	if config.SecurityCheck {
		if err := checker.Check(text); err != nil {
			return nil, err
		}
	}

	return &CrossPath{
		converter: converter,
		checker:   checker,
		original:  string(b),
		text:      text,
		encoding:  encoding,
		style:     pathconv.DetectStyle(text),
		config:    config,
		lossy:     lossy,
	}, nil
}

// ToUnix converts the path to Unix style.
func (c *CrossPath) ToUnix() (string, error) {
	return c.converter.Convert(c.text, pathconv.UnixStyle)
}

// ToWindows converts the path to Windows style.
func (c *CrossPath) ToWindows() (string, error) {
	return c.converter.Convert(c.text, pathconv.WindowsStyle)
}

// ToStyle converts the path to the given style. [pathconv.AutoStyle] selects
// the opposite of the detected source style.
func (c *CrossPath) ToStyle(style pathconv.Style) (string, error) {
	return c.converter.Convert(c.text, style)
}

// ToPlatform converts the path to the style configured in [Config.Style],
// with [pathconv.AutoStyle] resolving to the running platform's style.
func (c *CrossPath) ToPlatform() (string, error) {
	target := c.config.Style
	if target == pathconv.AutoStyle {
		target = pathconv.CurrentStyle()
	}

	return c.converter.Convert(c.text, target)
}

// String returns the canonical text of the path.
func (c *CrossPath) String() string {
	return c.text
}

// Original returns the raw input the path was constructed from.
func (c *CrossPath) Original() string {
	return c.original
}

// Style returns the structurally detected source style.
func (c *CrossPath) Style() pathconv.Style {
	return c.style
}

// Encoding returns the encoding detected in the raw input.
func (c *CrossPath) Encoding() pathenc.Encoding {
	return c.encoding
}

// LossyDecoded reports whether undecodable bytes were replaced during
// construction. It can only be true when [Config.PreserveEncoding] is set.
func (c *CrossPath) LossyDecoded() bool {
	return c.lossy
}

// Config returns a copy of the active configuration.
func (c *CrossPath) Config() Config {
	return c.config
}

// IsSafe runs the security checks on the canonical text, regardless of
// [Config.SecurityCheck]. A nil result means the path passed every check;
// otherwise the returned error is a [*pathsec.Violation].
func (c *CrossPath) IsSafe() error {
	return c.checker.Check(c.text)
}

// ToUnixPath converts a path string to Unix style using [DefaultConfig].
func ToUnixPath(path string) (string, error) {
	cp, err := New(path)
	if err != nil {
		return "", err
	}

	return cp.ToUnix()
}

// ToWindowsPath converts a path string to Windows style using
// [DefaultConfig].
func ToWindowsPath(path string) (string, error) {
	cp, err := New(path)
	if err != nil {
		return "", err
	}

	return cp.ToWindows()
}
