// Package node defines the format-agnostic configuration value model that
// the rest of the engine operates on: an immutable tagged union over
// scalars, ordered sequences, and string-keyed mappings.
//
// Loaders (YAML, HCL) translate their parsed documents into node.Node; the
// builder walks node.Node without ever touching a format-specific parser
// type. This keeps dynamic type inspection out of the resolution path: each
// traversal switches on Kind instead of sniffing Go runtime types.
package node
