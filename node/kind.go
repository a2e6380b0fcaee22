package node

import "fmt"

// Kind identifies which variant of the configuration union a Node holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Sequence
	Mapping
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Null:     "Null",
		Bool:     "Bool",
		Number:   "Number",
		String:   "String",
		Sequence: "Sequence",
		Mapping:  "Mapping",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown kind %d>", int(k))
}

// IsScalar reports whether the kind is a leaf value rather than a container.
func (k Kind) IsScalar() bool {
	switch k {
	case Sequence, Mapping:
		return false
	default:
		return true
	}
}
