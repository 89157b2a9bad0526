package pathconv

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var ErrUnknownStyle = errors.New("unknown path style")

type Style string

const (
	AutoStyle    Style = "AUTO"
	WindowsStyle Style = "WINDOWS"
	UnixStyle    Style = "UNIX"
)

// StyleEnum lists all path styles, for JSON Schema generation.
var StyleEnum = []any{
	WindowsStyle,
	UnixStyle,
	AutoStyle,
}

// GetStyle returns the [Style] matching the given name, or [AutoStyle] if the
// name is not recognized.
func GetStyle(name string) Style {
	switch strings.TrimSpace(strings.ToUpper(name)) {
	case string(WindowsStyle):
		return WindowsStyle
	case string(UnixStyle):
		return UnixStyle
	default:
		return AutoStyle
	}
}

// Validate fails with [ErrUnknownStyle] when the value is not a member of
// the enum. Style values deserialized from configuration are not checked at
// decode time, so callers holding external input must validate.
func (s Style) Validate() error {
	switch s {
	case AutoStyle, WindowsStyle, UnixStyle:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStyle, string(s))
	}
}

// CurrentStyle returns the path style of the running platform.
func CurrentStyle() Style {
	if runtime.GOOS == "windows" {
		return WindowsStyle
	}

	return UnixStyle
}

// Other returns the opposite concrete style. [AutoStyle] has no opposite and
// is returned unchanged.
func (s Style) Other() Style {
	switch s {
	case WindowsStyle:
		return UnixStyle
	case UnixStyle:
		return WindowsStyle
	default:
		return AutoStyle
	}
}

// DetectStyle structurally sniffs the style of a path:
//
//   - A drive-letter or UNC prefix means [WindowsStyle].
//   - A leading slash with no drive letter means [UnixStyle].
//   - A relative path using only one separator kind follows that separator.
//
// Anything else is ambiguous, and reported as [AutoStyle].
func DetectStyle(path string) Style {
	if isUNCPath(path) || hasDrivePrefix(path) {
		return WindowsStyle
	}

	if strings.HasPrefix(path, "/") {
		return UnixStyle
	}

	hasBack := strings.Contains(path, `\`)
	hasFwd := strings.Contains(path, "/")

	switch {
	case hasBack && !hasFwd:
		return WindowsStyle
	case hasFwd && !hasBack:
		return UnixStyle
	default:
		return AutoStyle
	}
}

// hasDrivePrefix reports whether the path starts with a drive-letter token
// ("X:"), followed by a separator or nothing.
func hasDrivePrefix(path string) bool {
	if len(path) < 2 || path[1] != ':' || !isDriveLetter(path[0]) {
		return false
	}

	return len(path) == 2 || path[2] == '\\' || path[2] == '/'
}

func isUNCPath(path string) bool {
	return strings.HasPrefix(path, `\\`)
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
