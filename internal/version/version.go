package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the release version, overridden at build time via ldflags.
var Version = "dev"

// Revision is the VCS revision the binary was built from.
var Revision = revision()

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return "unknown"
}

// GetVersionString returns a human-readable version string.
func GetVersionString() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}
