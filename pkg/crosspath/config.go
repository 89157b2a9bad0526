package crosspath

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/crosspath/pkg/pathconv"
	"github.com/MacroPower/crosspath/pkg/pathsec"
)

// Config controls the conversion pipeline. It is a value type, copied into
// every [CrossPath]; instances never share mutable state.
type Config struct {
	// Target path style for [CrossPath.ToPlatform].
	Style pathconv.Style `json:"style" yaml:"style"`
	// Preserve non-UTF-8 byte sequences via lossy best-effort decoding
	// instead of failing construction.
	PreserveEncoding bool `json:"preserve_encoding" yaml:"preserve_encoding"`
	// Fail construction when a security violation is detected.
	SecurityCheck bool `json:"security_check" yaml:"security_check"`
	// Drive letter mappings, first match wins.
	DriveMappings []pathconv.DriveMapping `json:"drive_mappings" yaml:"drive_mappings"`
	// Collapse redundant separators and resolve dot segments lexically.
	Normalize bool `json:"normalize" yaml:"normalize"`
	// Drive that unmapped absolute Unix paths are rooted under when
	// converting to Windows. Defaults to "C:".
	DefaultDrive string `json:"default_drive,omitempty" yaml:"default_drive,omitempty"`
	// Overrides the system-directory denylist. A nil value selects the
	// default denylist; an empty non-nil value disables the check.
	SystemDirs []string `json:"system_dirs,omitempty" yaml:"system_dirs,omitempty"`
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Style:            pathconv.AutoStyle,
		PreserveEncoding: true,
		SecurityCheck:    true,
		DriveMappings:    pathconv.DefaultDriveMappings(),
		Normalize:        true,
		DefaultDrive:     pathconv.DefaultDrive,
	}
}

// Validate reports every problem with the configuration at once. A valid
// zero-ish configuration is possible; malformed drive mappings and default
// drives are not deferred to first use.
func (c Config) Validate() error {
	var merr error

	if err := c.Style.Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}

	if _, err := pathconv.NewMappings(c.DriveMappings); err != nil {
		merr = multierror.Append(merr, err)
	}

	if _, err := pathconv.NewConverter(nil, c.DefaultDrive, c.Normalize); err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return fmt.Errorf("invalid config: %w", merr)
	}

	return nil
}

// converter builds the style converter for this configuration.
func (c Config) converter() (*pathconv.Converter, error) {
	mappings, err := pathconv.NewMappings(c.DriveMappings)
	if err != nil {
		return nil, err
	}

	return pathconv.NewConverter(mappings, c.DefaultDrive, c.Normalize)
}

// checker builds the security checker for this configuration.
func (c Config) checker() *pathsec.Checker {
	if c.SystemDirs == nil {
		return pathsec.NewChecker()
	}

	return pathsec.NewCheckerWithDenylist(c.SystemDirs)
}
