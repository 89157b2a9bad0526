package pathconv

import (
	"strings"
)

// Normalize lexically cleans a path in the given style: separator runs
// collapse to one, `.` segments drop, and `..` segments pop the preceding
// segment without ever crossing the root. No filesystem access is involved.
//
// Normalize is idempotent. [AutoStyle] detects the style structurally and
// falls back to [CurrentStyle] for ambiguous input.
func Normalize(path string, style Style) string {
	if style == AutoStyle {
		style = DetectStyle(path)
		if style == AutoStyle {
			style = CurrentStyle()
		}
	}

	sep := "/"
	if style == WindowsStyle {
		sep = `\`
	}

	unified := strings.ReplaceAll(path, `\`, "/")

	var (
		drive      string
		doubleLead bool
		rooted     bool
	)

	switch {
	case hasDrivePrefix(path):
		drive = path[:2]
		unified = unified[2:]
		rooted = true
	case strings.HasPrefix(unified, "//"):
		doubleLead = true
		rooted = true
	case strings.HasPrefix(unified, "/"):
		rooted = true
	}

	segments := resolveDots(splitSegments(unified), rooted)
	joined := strings.Join(segments, sep)

	switch {
	case drive != "":
		return drive + sep + joined
	case doubleLead:
		if joined == "" {
			return sep + sep
		}

		return sep + sep + joined
	case rooted:
		return sep + joined
	case joined == "":
		return "."
	default:
		return joined
	}
}

func resolveDots(segments []string, rooted bool) []string {
	out := make([]string, 0, len(segments))

	for _, seg := range segments {
		switch seg {
		case ".":
		case "..":
			switch {
			case len(out) > 0 && out[len(out)-1] != "..":
				out = out[:len(out)-1]
			case rooted:
				// Never cross the root.
			default:
				out = append(out, "..")
			}
		default:
			out = append(out, seg)
		}
	}

	return out
}
