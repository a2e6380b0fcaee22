package conf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reifylab/reify/node"
)

// EnvConfPath is the environment variable naming the directory searched
// for configuration files. It is read only by top-level entry points.
const EnvConfPath = "CONF_PATH"

// Loader is the interface for a format-specific configuration loader. It
// reads the file at path and translates it into the format-agnostic node
// model.
type Loader interface {
	Load(ctx context.Context, path string) (node.Node, error)
}

// NotFoundError reports that the resolved configuration file path does
// not exist on disk.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file '%s' does not exist", e.Path)
}

// Locate resolves the path of a configuration file. When confPath is
// non-empty the single candidate is confPath joined with filename;
// otherwise it is filename itself, relative to the current working
// directory. There is no fallback between the two: if the candidate does
// not exist, Locate fails with a *NotFoundError naming it.
func Locate(filename, confPath string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("configuration filename must not be empty")
	}
	candidate := filename
	if confPath != "" {
		candidate = filepath.Join(confPath, filename)
	}
	if _, err := os.Stat(candidate); err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Path: candidate}
		}
		return "", fmt.Errorf("stat %s: %w", candidate, err)
	}
	return candidate, nil
}
