package builder

import (
	"fmt"
	"sort"
	"strings"
)

// ConstructionError reports that a component's factory rejected the bound
// arguments, or that binding them onto the argument struct failed. It
// carries the attempted type name and the literal argument mapping so a
// misconfigured file can be diagnosed without extra instrumentation.
type ConstructionError struct {
	Type string
	Args map[string]any
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("arguments for type '%s' do not match: %s: %v", e.Type, formatArgs(e.Args), e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func formatArgs(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %v", k, args[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
