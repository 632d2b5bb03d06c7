package test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/koskimas/openapi2beans/internal/output"
	assert "github.com/stretchr/testify/require"
)

// The checked-in beans package has the shape the go target generates for
// fixtures/beans.yaml. Its own tests check the JSON behavior of that shape.
func TestGenerateMatchesBeansFixture(t *testing.T) {
	out := t.TempDir()

	generate(t, "--yaml", "fixtures/beans.yaml", "--output", out, "--package", "beans")

	fixture := getWd(t, "fixtures/beans")
	assert.Equal(t, goFiles(t, fixture), goFiles(t, out))
	assert.Equal(t, declarations(t, fixture), declarations(t, out))
}

func TestGenerateFixtures(t *testing.T) {
	fixtures := []string{
		"fixtures/beans.yaml",
		"fixtures/petstore.yaml",
		"fixtures/swagger2.json",
	}

	for _, fixture := range fixtures {
		t.Run(fixture, func(t *testing.T) {
			out := t.TempDir()
			manifestPath := filepath.Join(out, "manifest.yaml")

			generate(t, "--yaml", fixture, "--output", filepath.Join(out, "go"), "--package", "beans", "--manifest", manifestPath)

			m, err := output.ReadManifest(manifestPath)
			assert.NoError(t, err)
			assert.NotEmpty(t, m.Files)

			fset := token.NewFileSet()
			for _, f := range m.Files {
				_, err := parser.ParseFile(fset, filepath.Join(out, "go", f.File), nil, parser.ParseComments)
				assert.NoError(t, err, f.File)
			}

			generate(t, "--yaml", fixture, "--output", filepath.Join(out, "java"), "--target", "java", "--package", "dev.galasa.beans", "--manifest", manifestPath)

			m, err = output.ReadManifest(manifestPath)
			assert.NoError(t, err)

			for _, f := range m.Files {
				data, err := os.ReadFile(filepath.Join(out, "java", f.File))
				assert.NoError(t, err)
				assert.True(t, strings.HasPrefix(string(data), "package dev.galasa.beans;\n"), f.File)
			}
		})
	}
}

func TestGeneratePetstore(t *testing.T) {
	out := t.TempDir()

	generate(t, "--yaml", "fixtures/petstore.yaml", "--output", out, "--package", "petstore")

	assert.Equal(t, []string{
		"category_gen.go",
		"person_gen.go",
		"pet_dimensions_gen.go",
		"pet_gen.go",
		"tag_gen.go",
	}, goFiles(t, out))

	decls := declarations(t, out)
	assert.Contains(t, decls, "func NewPet")
	assert.Contains(t, decls, "type PetStatus")
	assert.Contains(t, decls, "const PetStatusAvailable")
	assert.Contains(t, decls, "const Category2HeadedSnake")
	assert.Contains(t, decls, "method *Person.GetType")
	assert.Contains(t, decls, "method *Pet.GetDimensions")
	assert.Contains(t, decls, "method Pet.MarshalJSON")

	data, err := os.ReadFile(filepath.Join(out, "pet_gen.go"))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "func NewPet(id int64, name string) *Pet {")
	assert.Contains(t, string(data), "// A pet for sale.\n// Pets are listed in the store until sold.\ntype Pet struct {")
}
