// Package builder turns a configuration tree into a live object graph.
//
// Resolution walks a node.Node leaf-first: scalars pass through unchanged,
// sequences and plain mappings are rebuilt with every element resolved,
// and mappings carrying the reserved "type" key are constructed into
// runtime objects through the registry, with their sibling keys bound as
// named constructor arguments. Because children resolve before the node
// containing them, a nested typed node arrives at its parent constructor
// as an already-built object, never as raw configuration.
//
// The builder itself has no side effects on its input; whatever the
// invoked factories do (opening files, seeding generators) is theirs.
package builder
