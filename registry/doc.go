// Package registry provides the central "glue" between declarative
// configuration and compiled Go code.
//
// The Registry stores mappings from the string identifiers used in
// configuration files (a package path plus a component name, e.g.
// "optimizers.cmaes" / "CMAESOptimizer") to the Go factories that build
// the corresponding runtime objects. It is populated once at process
// startup through Module registration, which replaces any kind of runtime
// package introspection: if a name is not registered, it does not exist.
package registry
