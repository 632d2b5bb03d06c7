package cmd

import (
	"context"
	"io"
	"os"

	"github.com/koskimas/openapi2beans/internal/gen"
	"github.com/koskimas/openapi2beans/internal/gen/golang"
	"github.com/koskimas/openapi2beans/internal/gen/java"
	"github.com/spf13/cobra"
)

type Settings struct {
	WorkingDir string
	Args       []string
	Stdout     io.Writer
	Stderr     io.Writer
	// Environment holds the environment variables config is read from. Nil
	// means the process environment.
	Environment map[string]string
	// Targets defaults to DefaultTargets.
	Targets gen.Targets
}

func DefaultTargets() gen.Targets {
	return gen.Targets{
		"go":   golang.New(),
		"java": java.New(),
	}
}

func Run(ctx context.Context, s Settings) error {
	if s.Stdout == nil {
		s.Stdout = os.Stdout
	}

	if s.Stderr == nil {
		s.Stderr = os.Stderr
	}

	if s.Targets == nil {
		s.Targets = DefaultTargets()
	}

	root := newRootCommand(s)
	root.SetArgs(s.Args)
	root.SetOut(s.Stdout)
	root.SetErr(s.Stderr)

	return root.ExecuteContext(ctx)
}

func newRootCommand(s Settings) *cobra.Command {
	root := &cobra.Command{
		Use:   "openapi2beans",
		Short: "Generates beans from OpenAPI schemas",
		Long: `openapi2beans reads the schemas of an OpenAPI document and generates
strongly typed data holder types with accessors and enums.`,
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCommand(s))
	return root
}
