// Package app wires the command-line inspector together: it expands the
// requested paths into configuration files, loads each one through the
// format-appropriate loader, prints the configuration tree, and checks
// that every typed node carries a well-formed type reference.
//
// The inspector deliberately stops short of construction: it ships with
// no registered components, so it validates shape and references, not
// factories. Programs embed the library and call reify.Load for the real
// thing.
package app
