// Package output writes generated source units to disk.
package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/koskimas/openapi2beans/internal/gen"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write writes every unit below dir. With force the directory is removed
// first, so files of beans that no longer exist do not linger. Without it
// existing files are overwritten in place.
func Write(logger *slog.Logger, dir string, units []*gen.SourceUnit, force bool) error {
	if force {
		logger.Info("clearing output directory", "dir", dir)

		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf(`failed to clear output directory "%s": %w`, dir, err)
		}
	}

	for _, u := range units {
		path := filepath.Join(dir, filepath.FromSlash(u.Path))

		if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return fmt.Errorf(`failed to create directory for "%s": %w`, path, err)
		}

		if err := os.WriteFile(path, u.Content, filePerm); err != nil {
			return fmt.Errorf(`failed to write file "%s": %w`, path, err)
		}

		logger.Debug("wrote file", "path", path, "bytes", len(u.Content))
	}

	logger.Info("generated beans", "dir", dir, "files", len(units))
	return nil
}
