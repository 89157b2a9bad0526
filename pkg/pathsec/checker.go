package pathsec

import (
	"strings"
)

// Windows-illegal filename characters.
const dangerousChars = `<>:"|?*`

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// DefaultSystemDirs returns the default denylist of sensitive directory
// prefixes, covering both Unix and Windows conventions.
func DefaultSystemDirs() []string {
	return []string{
		"/bin", "/sbin", "/usr/bin", "/usr/sbin", "/etc", "/root", "/var",
		"/lib", "/boot", "/dev", "/proc", "/sys",
		`C:\Windows`, `C:\System32`, `C:\Program Files`, `C:\ProgramData`,
	}
}

// Checker validates canonical path text against dangerous constructs. The
// zero value is not usable; construct with [NewChecker] or
// [NewCheckerWithDenylist].
type Checker struct {
	systemDirs []string
}

// NewChecker returns a [Checker] using [DefaultSystemDirs].
func NewChecker() *Checker {
	return NewCheckerWithDenylist(DefaultSystemDirs())
}

// NewCheckerWithDenylist returns a [Checker] with a custom system-directory
// denylist. An empty denylist disables the system-directory check.
func NewCheckerWithDenylist(systemDirs []string) *Checker {
	dirs := make([]string, len(systemDirs))
	copy(dirs, systemDirs)

	return &Checker{systemDirs: dirs}
}

// Check runs all security checks on the given path, in order: traversal,
// dangerous characters, reserved names, system-directory access. The first
// failing check is returned as a [*Violation]; a nil result means the path
// passed every check.
func (c *Checker) Check(path string) error {
	prefix, segments, absolute := splitPath(path)

	if v := checkTraversal(segments, absolute); v != nil {
		return v
	}

	for _, seg := range segments {
		if v := checkSegmentChars(seg); v != nil {
			return v
		}
	}

	for _, seg := range segments {
		if v := checkReservedName(seg); v != nil {
			return v
		}
	}

	if v := c.checkSystemDirs(prefix, segments); v != nil {
		return v
	}

	return nil
}

// splitPath breaks a path of either style into a root prefix and its
// segments. Segments keep "." and ".." entries so traversal resolution can
// see them.
func splitPath(path string) (prefix string, segments []string, absolute bool) {
	p := strings.ReplaceAll(path, `\`, "/")

	switch {
	case strings.HasPrefix(p, "//"):
		// UNC or POSIX double-slash root.
		prefix, absolute = "//", true
		p = p[2:]
	case len(p) >= 2 && p[1] == ':' && isDriveLetter(p[0]):
		prefix, absolute = p[:2], true
		p = p[2:]
	case strings.HasPrefix(p, "/"):
		prefix, absolute = "/", true
		p = p[1:]
	}

	for seg := range strings.SplitSeq(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	return prefix, segments, absolute
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// checkTraversal flags `..` escapes. Relative paths may not use `..` at all;
// absolute paths may use it as long as lexical resolution never climbs above
// the root.
func checkTraversal(segments []string, absolute bool) *Violation {
	if !absolute {
		for _, seg := range segments {
			if seg == ".." {
				return &Violation{Kind: TraversalAttempt, Fragment: ".."}
			}
		}

		return nil
	}

	depth := 0
	for _, seg := range segments {
		switch seg {
		case ".":
		case "..":
			depth--
			if depth < 0 {
				return &Violation{Kind: TraversalAttempt, Fragment: ".."}
			}
		default:
			depth++
		}
	}

	return nil
}

func checkSegmentChars(seg string) *Violation {
	if seg == "." || seg == ".." {
		return nil
	}

	for _, r := range seg {
		if r < 0x20 || r == 0x7F || strings.ContainsRune(dangerousChars, r) {
			return &Violation{Kind: DangerousCharacter, Fragment: seg}
		}
	}

	return nil
}

func checkReservedName(seg string) *Violation {
	base, _, _ := strings.Cut(seg, ".")
	if reservedNames[strings.ToUpper(base)] {
		return &Violation{Kind: ReservedName, Fragment: seg}
	}

	return nil
}

func (c *Checker) checkSystemDirs(prefix string, segments []string) *Violation {
	if prefix == "" || len(c.systemDirs) == 0 {
		return nil
	}

	normalized := prefix
	if prefix != "/" && prefix != "//" {
		normalized += "/"
	}
	normalized += strings.Join(resolveSegments(segments), "/")

	for _, dir := range c.systemDirs {
		if matchesDirPrefix(normalized, dir) {
			return &Violation{Kind: SystemDirectoryAccess, Fragment: dir}
		}
	}

	return nil
}

// resolveSegments applies lexical `.`/`..` resolution so that forms like
// /tmp/../etc still match the denylist.
func resolveSegments(segments []string) []string {
	resolved := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case ".":
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, seg)
		}
	}

	return resolved
}

// matchesDirPrefix reports whether path falls under the denylist entry.
// Windows entries (drive-letter rooted) compare case-insensitively, Unix
// entries case-sensitively. The match must end on a segment boundary.
func matchesDirPrefix(path, entry string) bool {
	e := strings.TrimSuffix(strings.ReplaceAll(entry, `\`, "/"), "/")
	if e == "" || len(path) < len(e) {
		return false
	}

	head := path[:len(e)]

	windows := len(e) >= 2 && e[1] == ':'
	if windows {
		if !strings.EqualFold(head, e) {
			return false
		}
	} else if head != e {
		return false
	}

	return len(path) == len(e) || path[len(e)] == '/'
}
