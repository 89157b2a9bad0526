package pathsec

import (
	"errors"
	"fmt"
	"strings"
)

type ViolationKind string

const (
	TraversalAttempt      ViolationKind = "TRAVERSAL-ATTEMPT"
	ReservedName          ViolationKind = "RESERVED-NAME"
	DangerousCharacter    ViolationKind = "DANGEROUS-CHARACTER"
	SystemDirectoryAccess ViolationKind = "SYSTEM-DIRECTORY-ACCESS"
)

// ViolationKindEnum lists all violation kinds, for JSON Schema generation.
var ViolationKindEnum = []any{
	TraversalAttempt,
	ReservedName,
	DangerousCharacter,
	SystemDirectoryAccess,
}

// GetViolationKind returns the [ViolationKind] matching the given name, or an
// empty kind if the name is not recognized.
func GetViolationKind(name string) ViolationKind {
	switch strings.TrimSpace(strings.ToUpper(name)) {
	case string(TraversalAttempt):
		return TraversalAttempt
	case string(ReservedName):
		return ReservedName
	case string(DangerousCharacter):
		return DangerousCharacter
	case string(SystemDirectoryAccess):
		return SystemDirectoryAccess
	default:
		return ViolationKind("")
	}
}

// ErrUnsafePath is wrapped by every [Violation], so callers can match any
// security failure with [errors.Is].
var ErrUnsafePath = errors.New("unsafe path")

// Violation describes a failed security check. It carries the offending path
// fragment so callers can report precisely what was rejected.
type Violation struct {
	Kind     ViolationKind `json:"kind"     yaml:"kind"`
	Fragment string        `json:"fragment" yaml:"fragment"`
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrUnsafePath.Error(),
		strings.ToLower(string(v.Kind)), v.Fragment)
}

func (v *Violation) Unwrap() error {
	return ErrUnsafePath
}
