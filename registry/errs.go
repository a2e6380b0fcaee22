package registry

import (
	"fmt"
	"strings"
)

// ResolutionError reports that a type reference could not be resolved:
// either its package path is not registered at all, or the package exists
// but does not export the named component.
type ResolutionError struct {
	Ref          TypeReference
	PackageKnown bool
	Registered   []string // names in the package, when PackageKnown
}

func (e *ResolutionError) Error() string {
	if !e.PackageKnown {
		return fmt.Sprintf("component '%s' cannot be resolved: package '%s' is not registered",
			e.Ref.Name, e.Ref.Package)
	}
	msg := fmt.Sprintf("component '%s' does not exist in package '%s'", e.Ref.Name, e.Ref.Package)
	if len(e.Registered) > 0 {
		msg += fmt.Sprintf(" (registered: %s)", strings.Join(e.Registered, ", "))
	}
	return msg
}
