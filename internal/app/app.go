package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/reifylab/reify/conf"
	"github.com/reifylab/reify/hclconf"
	"github.com/reifylab/reify/internal/cli"
	"github.com/reifylab/reify/internal/ctxlog"
	"github.com/reifylab/reify/internal/fsutil"
	"github.com/reifylab/reify/node"
	"github.com/reifylab/reify/yamlconf"
)

// configExtensions are the file suffixes treated as configuration files
// when a directory is inspected.
var configExtensions = []string{".yml", ".yaml", ".hcl"}

// App encapsulates the inspector's dependencies and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	printer *printer
}

// NewApp constructs the inspector with its own isolated logger.
func NewApp(outW io.Writer, cfg *cli.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return &App{
		outW:    outW,
		logger:  logger,
		printer: newPrinter(outW, !cfg.NoColor),
	}
}

// Run inspects every requested path. It returns the first error
// encountered; inspection of one file stops at its first problem, which
// matches the fail-fast contract of the loader itself.
func (a *App) Run(ctx context.Context, cfg *cli.Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	confPath := cfg.ConfPath
	if confPath == "" {
		confPath = os.Getenv(conf.EnvConfPath)
	}

	var files []string
	for _, p := range cfg.Paths {
		expanded, err := expandPath(p, confPath)
		if err != nil {
			return err
		}
		files = append(files, expanded...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no configuration files found under %s", strings.Join(cfg.Paths, ", "))
	}

	for _, file := range files {
		if err := a.inspectFile(ctx, file, cfg.Entry); err != nil {
			return err
		}
	}
	return nil
}

// expandPath turns one CLI argument into concrete file paths. Existing
// directories expand to the config files beneath them; existing files are
// taken as-is; anything else is treated as a bare filename resolved
// against confPath.
func expandPath(p, confPath string) ([]string, error) {
	if info, err := os.Stat(p); err == nil {
		if info.IsDir() {
			return fsutil.FindConfigFiles(p, configExtensions...)
		}
		return []string{p}, nil
	}
	located, err := conf.Locate(p, confPath)
	if err != nil {
		return nil, err
	}
	return []string{located}, nil
}

// loaderFor picks the loader matching a file's extension.
func loaderFor(path string) conf.Loader {
	if strings.HasSuffix(path, ".hcl") {
		return hclconf.NewLoader()
	}
	return yamlconf.NewLoader()
}

// entryOf narrows the root to one named top-level subtree when requested.
func entryOf(root node.Node, entry string) (node.Node, error) {
	if entry == "" {
		return root, nil
	}
	child, ok := root.Get(entry)
	if !ok {
		return node.Node{}, fmt.Errorf("no entry '%s' in configuration (available: %s)",
			entry, strings.Join(root.Keys(), ", "))
	}
	return child, nil
}
