package registry

import (
	"fmt"
	"strings"
)

// TypeReference identifies a constructible component: a package path and a
// component name within that package.
type TypeReference struct {
	Package string
	Name    string
}

func (t TypeReference) String() string {
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// ParseTypeReference derives a TypeReference from the reserved "type" and
// "package" configuration values.
//
// When packageValue is non-empty it is taken verbatim as the package path
// and typeValue verbatim as the component name, with no splitting.
// Otherwise typeValue must be a dotted path: everything before the last
// dot is the package, the final segment is the name. A bare typeValue with
// no dot and no explicit package is a configuration error.
func ParseTypeReference(typeValue, packageValue string) (TypeReference, error) {
	if typeValue == "" {
		return TypeReference{}, fmt.Errorf("reserved key %q must not be empty", "type")
	}
	if packageValue != "" {
		return TypeReference{Package: packageValue, Name: typeValue}, nil
	}
	i := strings.LastIndex(typeValue, ".")
	if i < 0 {
		return TypeReference{}, fmt.Errorf(
			"type %q has no package qualifier: use a dotted path or set the %q key", typeValue, "package")
	}
	return TypeReference{Package: typeValue[:i], Name: typeValue[i+1:]}, nil
}
