// Package conf defines the format-agnostic loading boundary of the
// engine: the Loader interface that concrete formats (YAML, HCL)
// implement, and explicit configuration-file path resolution.
//
// Path resolution is deliberately parameter-driven. The CONF_PATH
// environment variable is consulted only by the top-level entry points,
// which pass the result down as an explicit argument; nothing in this
// package or below it reads the process environment.
package conf
