package pathconv

import (
	"errors"
	"fmt"
	"strings"
)

var ErrAmbiguousStyle = errors.New("cannot determine path style")

// DefaultDrive is the drive that unmapped absolute Unix paths are rooted
// under when converting to Windows.
const DefaultDrive = "C:"

// Converter rewrites paths between Windows and Unix styles using a fixed
// drive-mapping table. It is immutable and safe for concurrent use.
type Converter struct {
	mappings     *Mappings
	defaultDrive string
	normalize    bool
}

// NewConverter builds a [Converter]. A nil mappings table selects
// [DefaultMappings], and an empty defaultDrive selects [DefaultDrive].
func NewConverter(mappings *Mappings, defaultDrive string, normalize bool) (*Converter, error) {
	if mappings == nil {
		mappings = DefaultMappings()
	}

	if defaultDrive == "" {
		defaultDrive = DefaultDrive
	}
	if len(defaultDrive) != 2 || defaultDrive[1] != ':' || !isDriveLetter(defaultDrive[0]) {
		return nil, fmt.Errorf("%w: default drive %q must be a letter followed by a colon",
			ErrInvalidDriveMapping, defaultDrive)
	}

	return &Converter{
		mappings:     mappings,
		defaultDrive: strings.ToUpper(defaultDrive),
		normalize:    normalize,
	}, nil
}

// Convert rewrites the path into the target style. [AutoStyle] converts to
// the opposite of the structurally detected source style; a path whose style
// cannot be sniffed and which contains separators fails with
// [ErrAmbiguousStyle]. An empty path converts to itself.
func (c *Converter) Convert(path string, target Style) (string, error) {
	if path == "" {
		return "", nil
	}

	if target == AutoStyle {
		source := DetectStyle(path)
		if source == AutoStyle {
			if !strings.ContainsAny(path, `/\`) {
				// A bare name has nothing to translate.
				return path, nil
			}

			return "", fmt.Errorf("%w: %q", ErrAmbiguousStyle, path)
		}

		target = source.Other()
	}

	var (
		out string
		err error
	)

	switch target {
	case UnixStyle:
		out, err = c.toUnix(path)
	case WindowsStyle:
		out, err = c.toWindows(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, string(target))
	}

	if err != nil {
		return "", err
	}

	if c.normalize {
		out = Normalize(out, target)
	}

	return out, nil
}

func (c *Converter) toUnix(path string) (string, error) {
	if isUNCPath(path) {
		parsed, err := Parse(path)
		if err != nil {
			return "", err
		}

		out := "//" + parsed.Server + "/" + parsed.Share
		if len(parsed.Components) > 0 {
			out += "/" + strings.Join(parsed.Components, "/")
		}

		return out, nil
	}

	if hasDrivePrefix(path) {
		mount, ok := c.mappings.MountFor(path[:2])
		if !ok {
			// Default WSL-style scheme for unmapped drives.
			mount = "/mnt/" + strings.ToLower(path[:1])
		}

		rest := strings.ReplaceAll(path[2:], `\`, "/")
		if rest == "" || rest == "/" {
			return mount, nil
		}

		return mount + rest, nil
	}

	return strings.ReplaceAll(path, `\`, "/"), nil
}

func (c *Converter) toWindows(path string) (string, error) {
	if hasDrivePrefix(path) || isUNCPath(path) {
		// Already Windows, only the separators may need fixing.
		return strings.ReplaceAll(path, "/", `\`), nil
	}

	p := strings.ReplaceAll(path, `\`, "/")

	if strings.HasPrefix(p, "//") {
		parsed, err := Parse(p)
		if err != nil {
			return "", err
		}

		out := `\\` + parsed.Server + `\` + parsed.Share
		if len(parsed.Components) > 0 {
			out += `\` + strings.Join(parsed.Components, `\`)
		}

		return out, nil
	}

	if drive, rest, ok := c.mappings.DriveFor(p); ok {
		if rest == "" {
			return drive + `\`, nil
		}

		return drive + strings.ReplaceAll(rest, "/", `\`), nil
	}

	if strings.HasPrefix(p, "/") {
		// Lossy fallback: root unmapped absolute paths under the default
		// drive. Not a true inverse of toUnix.
		return c.defaultDrive + strings.ReplaceAll(p, "/", `\`), nil
	}

	return strings.ReplaceAll(p, "/", `\`), nil
}
