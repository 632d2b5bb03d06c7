package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/koskimas/openapi2beans/internal/gen"
	"gopkg.in/yaml.v3"
)

type Manifest struct {
	Target string          `yaml:"target"`
	Files  []ManifestEntry `yaml:"files"`
}

type ManifestEntry struct {
	File   string       `yaml:"file"`
	Schema string       `yaml:"schema"`
	Kind   gen.UnitKind `yaml:"kind"`
}

func NewManifest(target string, units []*gen.SourceUnit) *Manifest {
	m := &Manifest{
		Target: target,
		Files:  make([]ManifestEntry, len(units)),
	}

	for i, u := range units {
		m.Files[i] = ManifestEntry{
			File:   u.Path,
			Schema: u.Schema,
			Kind:   u.Kind,
		}
	}

	return m
}

// WriteManifest writes m as YAML to path.
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf(`failed to create directory for manifest "%s": %w`, path, err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf(`failed to write manifest "%s": %w`, path, err)
	}

	return nil
}

func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read manifest "%s": %w`, path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal manifest "%s": %w`, path, err)
	}

	return &m, nil
}
