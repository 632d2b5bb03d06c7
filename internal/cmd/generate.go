package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/koskimas/openapi2beans/internal/config"
	"github.com/koskimas/openapi2beans/internal/gen"
	"github.com/koskimas/openapi2beans/internal/logging"
	"github.com/koskimas/openapi2beans/internal/model/openapi"
	"github.com/koskimas/openapi2beans/internal/names"
	"github.com/koskimas/openapi2beans/internal/output"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"
)

type generateFlags struct {
	config string
	values config.Config
}

func newGenerateCommand(s Settings) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates beans from an OpenAPI schema file",
		Long: `Generates one source file per schema object and shared enum.

Options are read from openapi2beans.yaml in the working directory (or the
file given with --config), then from OPENAPI2BEANS_* environment variables
and finally from flags.

Examples:
  # Generate a Go package
  openapi2beans generate --yaml api.yaml --output internal/beans

  # Generate Java classes with camel case accessors
  openapi2beans generate --yaml api.yaml --output src/main/java --target java \
    --package dev.galasa.beans --accessors camel`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, s, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.config, "config", "", "config file (default ./"+config.FileName+" if present)")
	f.StringVar(&flags.values.Schema, "yaml", "", "schema file to read, YAML or JSON")
	f.StringVar(&flags.values.Output, "output", "", "directory to write generated files to")
	f.StringVar(&flags.values.Target, "target", "", fmt.Sprintf("target language %v (default \"go\")", s.Targets.Available()))
	f.StringVar(&flags.values.Package, "package", "", "package of the generated files (default derived from the output directory for go, \"generated\" for java)")
	f.StringVar(&flags.values.Accessors, "accessors", "", "accessor style: pascal (GetName) or camel (getName)")
	f.BoolVar(&flags.values.Force, "force", false, "remove the output directory before writing")
	f.StringVar(&flags.values.Manifest, "manifest", "", "write a YAML manifest of generated files to this path")
	f.StringVar(&flags.values.Log, "log", "", "write logs to this file instead of stderr")
	f.StringVar(&flags.values.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&flags.values.LogFormat, "log-format", "", "log format: text or json")

	return cmd
}

func runGenerate(cmd *cobra.Command, s Settings, flags *generateFlags) error {
	cfg, err := config.Load(s.WorkingDir, flags.config, s.Environment)
	if err != nil {
		return err
	}

	applyFlags(cmd.Flags(), &flags.values, cfg)
	cfg.ResolvePaths(s.WorkingDir)

	if err := cfg.Validate(s.Targets.Available()); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	target, err := s.Targets.Get(cfg.Target)
	if err != nil {
		return err
	}

	accessors, err := names.ParseAccessorStyle(cfg.Accessors)
	if err != nil {
		return err
	}

	opts := gen.Options{
		Package:   cfg.Package,
		Accessors: accessors,
	}
	if opts.Package == "" {
		opts.Package = target.DefaultPackage(cfg.Output)
	}

	logger.Info("reading schema", "path", cfg.Schema, "target", target.Name(), "package", opts.Package)

	doc, err := openapi.ReadFile(cfg.Schema)
	if err != nil {
		return err
	}

	result, err := gen.Generate(cmd.Context(), logger, doc, target, opts)
	if err != nil {
		return err
	}

	if err := output.Write(logger, cfg.Output, result.Units, cfg.Force); err != nil {
		return err
	}

	if cfg.Manifest != "" {
		if err := output.WriteManifest(cfg.Manifest, output.NewManifest(target.Name(), result.Units)); err != nil {
			return err
		}

		logger.Info("wrote manifest", "path", cfg.Manifest)
	}

	printSummary(cmd.OutOrStdout(), len(result.Units), cfg.Output)
	return nil
}

// printSummary prints the one line result of a run. Colors are only used
// when w is a terminal.
func printSummary(w io.Writer, files int, dir string) {
	out := termenv.NewOutput(w)
	count := out.String(fmt.Sprintf("%d files", files)).Bold().Foreground(out.Color("2"))

	fmt.Fprintf(w, "generated %s in %s\n", count, dir)
}

// applyFlags copies the explicitly set flags over cfg.
func applyFlags(fs *pflag.FlagSet, values *config.Config, cfg *config.Config) {
	set := map[string]func(){
		"yaml":       func() { cfg.Schema = values.Schema },
		"output":     func() { cfg.Output = values.Output },
		"target":     func() { cfg.Target = values.Target },
		"package":    func() { cfg.Package = values.Package },
		"accessors":  func() { cfg.Accessors = values.Accessors },
		"force":      func() { cfg.Force = values.Force },
		"manifest":   func() { cfg.Manifest = values.Manifest },
		"log":        func() { cfg.Log = values.Log },
		"log-level":  func() { cfg.LogLevel = values.LogLevel },
		"log-format": func() { cfg.LogFormat = values.LogFormat },
	}

	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := set[f.Name]; ok {
			apply()
		}
	})
}

func newLogger(stderr io.Writer, cfg *config.Config) (*slog.Logger, func(), error) {
	w := stderr
	closeLog := func() {}

	if cfg.Log != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.Log,
			MaxSize:    10, // MB
			MaxBackups: 3,
		}

		w = lj
		closeLog = func() { lj.Close() }
	}

	logger, err := logging.New(w, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	return logger, closeLog, nil
}
