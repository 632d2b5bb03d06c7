package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/koskimas/openapi2beans/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `openapi: 3.0.3
components:
  schemas:
    MyBeanName:
      type: object
      description: A bean
      properties:
        a_name: {type: string}
`

type result struct {
	err    error
	stdout string
	stderr string
}

func run(t *testing.T, wd string, env map[string]string, args ...string) result {
	var stdout, stderr bytes.Buffer

	if env == nil {
		env = map[string]string{}
	}

	err := Run(context.Background(), Settings{
		WorkingDir:  wd,
		Args:        args,
		Stdout:      &stdout,
		Stderr:      &stderr,
		Environment: env,
	})

	return result{err: err, stdout: stdout.String(), stderr: stderr.String()}
}

func writeSchema(t *testing.T, dir string) {
	require.NoError(t, os.WriteFile(filepath.Join(dir, "api.yaml"), []byte(testSchema), 0o644))
}

func TestGenerateHelp(t *testing.T) {
	// When...
	res := run(t, t.TempDir(), nil, "generate", "--help")

	// Then...
	assert.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Usage:")
	assert.Contains(t, res.stdout, "--yaml")
	assert.Empty(t, res.stderr)
}

func TestGenerateGo(t *testing.T) {
	// Given...
	wd := t.TempDir()
	writeSchema(t, wd)

	// When...
	res := run(t, wd, nil, "generate", "--yaml", "api.yaml", "--output", "internal/mybeans", "--manifest", "manifest.yaml")

	// Then...
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "generated 1 files in ")

	data, err := os.ReadFile(filepath.Join(wd, "internal", "mybeans", "my_bean_name_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package mybeans")
	assert.Contains(t, string(data), "func (b *MyBeanName) GetAName() string {")

	m, err := output.ReadManifest(filepath.Join(wd, "manifest.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "go", m.Target)
	assert.Equal(t, "my_bean_name_gen.go", m.Files[0].File)
	assert.Equal(t, "MyBeanName", m.Files[0].Schema)

	// Logs go to stderr.
	assert.Contains(t, res.stderr, "generated beans")
}

func TestGenerateJava(t *testing.T) {
	wd := t.TempDir()
	writeSchema(t, wd)

	res := run(t, wd, nil,
		"generate", "--yaml", "api.yaml", "--output", "src", "--target", "java",
		"--package", "dev.galasa.beans", "--accessors", "camel", "--log-level", "error",
	)

	require.NoError(t, res.err, res.stderr)
	assert.Empty(t, res.stderr)

	data, err := os.ReadFile(filepath.Join(wd, "src", "dev", "galasa", "beans", "MyBeanName.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package dev.galasa.beans;")
	assert.Contains(t, string(data), `@SerializedName("a_name")`)
	assert.Contains(t, string(data), "public String getAName() {")
}

func TestGenerateFromConfigAndEnvironment(t *testing.T) {
	// Given...
	wd := t.TempDir()
	writeSchema(t, wd)
	require.NoError(t, os.WriteFile(filepath.Join(wd, "openapi2beans.yaml"), []byte(`
schema: api.yaml
output: out
target: java
package: from.config
`), 0o644))

	// When...
	res := run(t, wd, map[string]string{"OPENAPI2BEANS_PACKAGE": "from.env"}, "generate", "--target", "java")

	// Then...
	require.NoError(t, res.err, res.stderr)
	assert.FileExists(t, filepath.Join(wd, "out", "from", "env", "MyBeanName.java"))
}

func TestGenerateFlagsOverrideConfig(t *testing.T) {
	wd := t.TempDir()
	writeSchema(t, wd)
	require.NoError(t, os.WriteFile(filepath.Join(wd, "openapi2beans.yaml"), []byte(`
schema: api.yaml
output: out
target: java
`), 0o644))

	res := run(t, wd, map[string]string{"OPENAPI2BEANS_TARGET": "java"}, "generate", "--target", "go", "--package", "beans")

	require.NoError(t, res.err, res.stderr)
	assert.FileExists(t, filepath.Join(wd, "out", "my_bean_name_gen.go"))
}

func TestGenerateLogFile(t *testing.T) {
	wd := t.TempDir()
	writeSchema(t, wd)

	res := run(t, wd, nil, "generate", "--yaml", "api.yaml", "--output", "out", "--log", "run.log", "--log-format", "json")

	require.NoError(t, res.err)
	assert.Empty(t, res.stderr)

	data, err := os.ReadFile(filepath.Join(wd, "run.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"generated beans"`)
}

func TestGenerateForce(t *testing.T) {
	wd := t.TempDir()
	writeSchema(t, wd)

	stale := filepath.Join(wd, "out", "stale_gen.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("package out\n"), 0o644))

	res := run(t, wd, nil, "generate", "--yaml", "api.yaml", "--output", "out")
	require.NoError(t, res.err)
	assert.FileExists(t, stale)

	res = run(t, wd, nil, "generate", "--yaml", "api.yaml", "--output", "out", "--force")
	require.NoError(t, res.err)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(wd, "out", "my_bean_name_gen.go"))
}

func TestGenerateMissingYaml(t *testing.T) {
	res := run(t, t.TempDir(), nil, "generate", "--output", "out")

	assert.ErrorContains(t, res.err, "no schema file given")
	assert.Contains(t, res.stderr, "Error: no schema file given")
}

func TestGenerateMissingOutput(t *testing.T) {
	res := run(t, t.TempDir(), nil, "generate", "--yaml", "api.yaml")

	assert.ErrorContains(t, res.err, "no output directory given")
}

func TestGenerateUnknownTarget(t *testing.T) {
	res := run(t, t.TempDir(), nil, "generate", "--yaml", "api.yaml", "--output", "out", "--target", "rust")

	assert.ErrorContains(t, res.err, `unknown target "rust"`)
}

func TestGenerateSchemaErrorWritesNothing(t *testing.T) {
	// Given...
	wd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wd, "api.yaml"), []byte(`
components:
  schemas:
    Good:
      type: object
    Bad:
      type: object
      properties:
        other: {$ref: '#/components/schemas/Missing'}
`), 0o644))

	// When...
	res := run(t, wd, nil, "generate", "--yaml", "api.yaml", "--output", "out")

	// Then...
	assert.ErrorContains(t, res.err, `unresolved reference in Bad.other: no schema named "Missing"`)
	assert.NoDirExists(t, filepath.Join(wd, "out"))
}

func TestGenerateMissingSchemaFile(t *testing.T) {
	res := run(t, t.TempDir(), nil, "generate", "--yaml", "api.yaml", "--output", "out")

	assert.ErrorContains(t, res.err, "failed to read schema file")
}
