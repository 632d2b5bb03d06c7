package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v10"
	"github.com/koskimas/openapi2beans/internal/names"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in the working directory when no
	// config file is given explicitly.
	FileName  = "openapi2beans.yaml"
	EnvPrefix = "OPENAPI2BEANS_"
)

type Config struct {
	Target    string `yaml:"target" env:"TARGET"`
	Schema    string `yaml:"schema" env:"SCHEMA"`
	Output    string `yaml:"output" env:"OUTPUT"`
	Package   string `yaml:"package" env:"PACKAGE"`
	Accessors string `yaml:"accessors" env:"ACCESSORS"`
	Force     bool   `yaml:"force" env:"FORCE"`
	Manifest  string `yaml:"manifest" env:"MANIFEST"`
	Log       string `yaml:"log" env:"LOG"`
	LogLevel  string `yaml:"logLevel" env:"LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" env:"LOG_FORMAT"`
}

func Default() *Config {
	return &Config{
		Target:    "go",
		Accessors: string(names.AccessorsPascal),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Read reads a config file on top of the defaults.
func Read(configPath string) (*Config, error) {
	config := Default()
	if err := readInto(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load layers the defaults, a config file and the environment. An empty
// configPath means the optional FileName in workingDir.
func Load(workingDir string, configPath string, environment map[string]string) (*Config, error) {
	config := Default()

	if configPath != "" {
		if err := readInto(resolvePath(workingDir, configPath), config); err != nil {
			return nil, err
		}
	} else {
		err := readInto(filepath.Join(workingDir, FileName), config)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(config, env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	return config, nil
}

func readInto(configPath string, config *Config) error {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	if err := yaml.Unmarshal(fileData, config); err != nil {
		return fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	return nil
}

// Validate checks that the config describes a runnable generation.
func (c *Config) Validate(targets []string) error {
	if c.Schema == "" {
		return fmt.Errorf("no schema file given: use --yaml or the schema config option")
	}

	if c.Output == "" {
		return fmt.Errorf("no output directory given: use --output or the output config option")
	}

	if !slices.Contains(targets, c.Target) {
		return fmt.Errorf(`unknown target "%s" (available: %v)`, c.Target, targets)
	}

	if _, err := names.ParseAccessorStyle(c.Accessors); err != nil {
		return err
	}

	return nil
}

// ResolvePaths makes every relative path in the config relative to
// workingDir.
func (c *Config) ResolvePaths(workingDir string) {
	c.Schema = resolvePath(workingDir, c.Schema)
	c.Output = resolvePath(workingDir, c.Output)
	c.Manifest = resolvePath(workingDir, c.Manifest)
	c.Log = resolvePath(workingDir, c.Log)
}

func resolvePath(workingDir string, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workingDir, path)
}
