package pathconv

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidDriveMapping = errors.New("invalid drive mapping")

// DriveMapping pairs a Windows drive-letter prefix with a Unix mount-point
// prefix, e.g. "C:" -> "/mnt/c".
type DriveMapping struct {
	Drive string `json:"drive" yaml:"drive"`
	Mount string `json:"mount" yaml:"mount"`
}

// DefaultDriveMappings returns the default WSL-style mapping table.
func DefaultDriveMappings() []DriveMapping {
	return []DriveMapping{
		{Drive: "C:", Mount: "/mnt/c"},
		{Drive: "D:", Mount: "/mnt/d"},
		{Drive: "E:", Mount: "/mnt/e"},
	}
}

// Mappings is a bidirectional drive-mapping table, built once from
// configuration. Forward lookup (drive to mount) is first-match-wins in
// configuration order; reverse lookup (mount to drive) is longest-prefix
// first.
type Mappings struct {
	forward []DriveMapping
	reverse []DriveMapping
}

// NewMappings validates the given mappings and builds the lookup table.
// A drive must be a single ASCII letter followed by a colon, and a mount must
// be an absolute Unix path.
func NewMappings(mappings []DriveMapping) (*Mappings, error) {
	forward := make([]DriveMapping, len(mappings))
	copy(forward, mappings)

	for _, m := range forward {
		if len(m.Drive) != 2 || m.Drive[1] != ':' || !isDriveLetter(m.Drive[0]) {
			return nil, fmt.Errorf("%w: drive %q must be a letter followed by a colon",
				ErrInvalidDriveMapping, m.Drive)
		}
		if !strings.HasPrefix(m.Mount, "/") || m.Mount == "/" {
			return nil, fmt.Errorf("%w: mount %q must be an absolute Unix path",
				ErrInvalidDriveMapping, m.Mount)
		}
	}

	reverse := make([]DriveMapping, len(forward))
	copy(reverse, forward)
	sort.SliceStable(reverse, func(i, j int) bool {
		return len(reverse[i].Mount) > len(reverse[j].Mount)
	})

	return &Mappings{forward: forward, reverse: reverse}, nil
}

// DefaultMappings returns the mapping table for [DefaultDriveMappings].
func DefaultMappings() *Mappings {
	m, err := NewMappings(DefaultDriveMappings())
	if err != nil {
		panic(err)
	}

	return m
}

// MountFor returns the mount point mapped to the given drive token ("X:").
// Drive letters compare case-insensitively; the first configured match wins.
func (m *Mappings) MountFor(drive string) (string, bool) {
	for _, e := range m.forward {
		if strings.EqualFold(e.Drive, drive) {
			return e.Mount, true
		}
	}

	return "", false
}

// DriveFor splits a Unix path into a mapped drive token and the remaining
// subpath. The longest configured mount prefix wins, and the match must end
// on a segment boundary.
func (m *Mappings) DriveFor(path string) (drive, rest string, ok bool) {
	for _, e := range m.reverse {
		if path == e.Mount {
			return e.Drive, "", true
		}
		if strings.HasPrefix(path, e.Mount+"/") {
			return e.Drive, path[len(e.Mount):], true
		}
	}

	return "", "", false
}
