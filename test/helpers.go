package test

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/koskimas/openapi2beans/internal/cmd"
	assert "github.com/stretchr/testify/require"
)

func getWd(t *testing.T, folder string) string {
	wd, err := os.Getwd()
	assert.NoError(t, err, "failed to get working directory")
	return filepath.Join(wd, folder)
}

func generate(t *testing.T, args ...string) {
	var stderr strings.Builder

	err := cmd.Run(context.Background(), cmd.Settings{
		WorkingDir:  getWd(t, "."),
		Args:        append([]string{"generate", "--log-level", "warn"}, args...),
		Stdout:      &strings.Builder{},
		Stderr:      &stderr,
		Environment: map[string]string{},
	})

	assert.NoError(t, err, stderr.String())
}

// goFiles returns the names of the non-test Go files in dir.
func goFiles(t *testing.T, dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	assert.NoError(t, err)

	var files []string
	for _, m := range matches {
		if !strings.HasSuffix(m, "_test.go") {
			files = append(files, filepath.Base(m))
		}
	}

	sort.Strings(files)
	return files
}

// declarations lists the top-level declarations of the Go files in dir,
// e.g. "type Bean", "func NewBean" and "method *Bean.GetName".
func declarations(t *testing.T, dir string) []string {
	var decls []string
	fset := token.NewFileSet()

	for _, name := range goFiles(t, dir) {
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, 0)
		assert.NoError(t, err)

		for _, d := range file.Decls {
			switch d := d.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil {
					decls = append(decls, "func "+d.Name.Name)
				} else {
					decls = append(decls, fmt.Sprintf("method %s.%s", receiver(d.Recv.List[0].Type), d.Name.Name))
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch s := spec.(type) {
					case *ast.TypeSpec:
						decls = append(decls, "type "+s.Name.Name)
					case *ast.ValueSpec:
						for _, n := range s.Names {
							decls = append(decls, d.Tok.String()+" "+n.Name)
						}
					}
				}
			}
		}
	}

	sort.Strings(decls)
	return decls
}

func receiver(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		return "*" + receiver(star.X)
	}

	return expr.(*ast.Ident).Name
}
