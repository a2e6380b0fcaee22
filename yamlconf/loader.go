// Package yamlconf loads YAML configuration files into the node model.
package yamlconf

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/reifylab/reify/internal/ctxlog"
	"github.com/reifylab/reify/node"
)

// DefaultFilename is the conventional name of the pipeline configuration
// file.
const DefaultFilename = "learning_config.yml"

// Loader reads a single YAML document into a node.Node.
type Loader struct{}

// NewLoader creates a YAML Loader.
func NewLoader() *Loader { return &Loader{} }

// Load implements conf.Loader.
func (l *Loader) Load(ctx context.Context, path string) (node.Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML configuration.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return node.Node{}, fmt.Errorf("read %s: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return node.Node{}, fmt.Errorf("parse YAML %s: %w", path, err)
	}

	n, err := node.FromGo(raw)
	if err != nil {
		return node.Node{}, fmt.Errorf("translate %s: %w", path, err)
	}
	logger.Debug("YAML configuration loaded.", "path", path, "kind", n.Kind().String())
	return n, nil
}
