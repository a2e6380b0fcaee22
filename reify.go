// Package reify assembles live object graphs from declarative
// configuration files.
//
// A configuration is a nested value of scalars, sequences, and mappings.
// Any mapping carrying the reserved "type" key names a component
// registered in a registry.Registry and is constructed into a runtime
// object, with its sibling keys bound as named constructor arguments.
// Construction is leaf-first, so nested typed mappings become live objects
// before their parent's constructor runs.
//
// The top level of a pipeline configuration is conventionally a mapping of
// named subtrees such as "Optimizer", "BehaviorSearch", and "Environment";
// Load resolves the whole file and Graph gives access to each entry.
package reify

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/reifylab/reify/builder"
	"github.com/reifylab/reify/conf"
	"github.com/reifylab/reify/internal/ctxlog"
	"github.com/reifylab/reify/node"
	"github.com/reifylab/reify/registry"
	"github.com/reifylab/reify/yamlconf"
)

// Options controls how Load locates, parses, and resolves a configuration
// file. The zero value loads "learning_config.yml" as YAML from the
// CONF_PATH directory (or the current directory when CONF_PATH is unset)
// against an empty registry.
type Options struct {
	// Filename of the configuration file. Defaults to
	// yamlconf.DefaultFilename.
	Filename string

	// ConfPath is the directory searched for Filename. When empty, the
	// CONF_PATH environment variable is consulted once, here at the entry
	// point; an empty result means Filename is taken relative to the
	// current working directory.
	ConfPath string

	// Loader parses the located file. Defaults to the YAML loader.
	Loader conf.Loader

	// Registry holds the constructible components. Defaults to a fresh
	// empty registry, which Modules are registered into.
	Registry *registry.Registry

	// Modules are registered into the registry before resolution.
	Modules []registry.Module

	// Logger, when set, is threaded through the load and resolution path.
	Logger *slog.Logger
}

// Load locates and parses a configuration file, then resolves it into a
// Graph. It fails with *conf.NotFoundError when the file is absent, with
// *registry.ResolutionError when a typed node names an unknown component,
// and with *builder.ConstructionError when a factory rejects its
// arguments. No partially constructed graph is ever returned.
func Load(ctx context.Context, opts Options) (*Graph, error) {
	if opts.Logger != nil {
		ctx = ctxlog.WithLogger(ctx, opts.Logger)
	}

	filename := opts.Filename
	if filename == "" {
		filename = yamlconf.DefaultFilename
	}
	confPath := opts.ConfPath
	if confPath == "" {
		confPath = os.Getenv(conf.EnvConfPath)
	}

	path, err := conf.Locate(filename, confPath)
	if err != nil {
		return nil, err
	}

	loader := opts.Loader
	if loader == nil {
		loader = yamlconf.NewLoader()
	}
	root, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	reg := opts.Registry
	if reg == nil {
		reg = registry.New()
	}
	for _, m := range opts.Modules {
		m.Register(reg)
	}

	return Resolve(ctx, reg, root)
}

// Resolve builds the object graph for an already-loaded configuration
// tree. The root must resolve to a mapping of named subtrees.
func Resolve(ctx context.Context, reg *registry.Registry, root node.Node) (*Graph, error) {
	resolved, err := builder.New(reg).Resolve(ctx, root)
	if err != nil {
		return nil, err
	}
	entries, ok := resolved.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level configuration must resolve to a mapping, got %T", resolved)
	}
	return &Graph{entries: entries}, nil
}

// OptimizerFromFile loads filename and returns its "Optimizer" entry.
// An empty filename means yamlconf.DefaultFilename; an empty confPath
// falls back to the CONF_PATH environment variable.
func OptimizerFromFile(ctx context.Context, filename, confPath string, modules ...registry.Module) (any, error) {
	return entryFromFile(ctx, filename, confPath, modules, KeyOptimizer)
}

// BehaviorSearchFromFile loads filename and returns its "BehaviorSearch"
// entry.
func BehaviorSearchFromFile(ctx context.Context, filename, confPath string, modules ...registry.Module) (any, error) {
	return entryFromFile(ctx, filename, confPath, modules, KeyBehaviorSearch)
}

// EnvironmentFromFile loads filename and returns its "Environment" entry.
func EnvironmentFromFile(ctx context.Context, filename, confPath string, modules ...registry.Module) (any, error) {
	return entryFromFile(ctx, filename, confPath, modules, KeyEnvironment)
}

func entryFromFile(ctx context.Context, filename, confPath string, modules []registry.Module, key string) (any, error) {
	g, err := Load(ctx, Options{Filename: filename, ConfPath: confPath, Modules: modules})
	if err != nil {
		return nil, err
	}
	return g.Lookup(key)
}
