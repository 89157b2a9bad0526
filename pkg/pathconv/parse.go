package pathconv

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidUNCPath = errors.New("invalid UNC path")

// ParsedPath is the structural breakdown of a path string.
type ParsedPath struct {
	// Original is the unmodified input.
	Original string
	// Components are the path segments, excluding any root prefix.
	Components []string
	// Drive is the drive-letter token ("C:") when present, uppercased.
	Drive string
	// Server and Share are set for UNC paths.
	Server string
	Share  string
	// Absolute reports whether the path is rooted.
	Absolute bool
	// UNC reports whether the path is a UNC network path.
	UNC bool
}

// Parse breaks a path of either style into its structural components.
// UNC paths must name at least a server and a share.
func Parse(path string) (ParsedPath, error) {
	parsed := ParsedPath{Original: path}

	if isUNCPath(path) || strings.HasPrefix(path, "//") {
		parts := splitSegments(path)
		if len(parts) < 2 {
			return ParsedPath{}, fmt.Errorf("%w: %s", ErrInvalidUNCPath, path)
		}

		parsed.UNC = true
		parsed.Absolute = true
		parsed.Server = parts[0]
		parsed.Share = parts[1]
		parsed.Components = parts[2:]

		return parsed, nil
	}

	if hasDrivePrefix(path) {
		parsed.Absolute = true
		parsed.Drive = strings.ToUpper(path[:2])
		parsed.Components = splitSegments(path[2:])

		return parsed, nil
	}

	if strings.HasPrefix(path, "/") {
		parsed.Absolute = true
		parsed.Components = splitSegments(path)

		return parsed, nil
	}

	parsed.Components = splitSegments(path)

	return parsed, nil
}

// splitSegments splits on both separator kinds and drops empty segments.
func splitSegments(path string) []string {
	var segments []string
	for seg := range strings.SplitSeq(strings.ReplaceAll(path, `\`, "/"), "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	return segments
}
