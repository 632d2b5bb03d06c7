package gen

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"github.com/koskimas/openapi2beans/internal/model"
	"github.com/koskimas/openapi2beans/internal/names"
	"github.com/koskimas/openapi2beans/internal/resolve"
	"golang.org/x/sync/errgroup"
)

type UnitKind string

const (
	UnitKindBean UnitKind = "bean"
	UnitKindEnum UnitKind = "enum"
)

// SourceUnit is one generated source file.
type SourceUnit struct {
	// Path is relative to the output directory and uses forward slashes.
	Path string
	// Schema is the name of the schema object or shared enum the unit was
	// generated from.
	Schema  string
	Kind    UnitKind
	Content []byte
}

type Options struct {
	Package   string
	Accessors names.AccessorStyle
}

// Target emits source code for one target language.
type Target interface {
	Name() string
	DefaultPackage(outputDir string) string
	Naming(opts Options) (resolve.Naming, error)
	EmitBean(obj *model.Object, schema *model.Schema, opts Options) (*SourceUnit, error)
	EmitEnum(enum *model.Enum, opts Options) (*SourceUnit, error)
}

// SchemaChecker is implemented by targets that declare identifiers beyond
// the resolved names, such as helper functions. Check runs once after
// resolution and before any unit is emitted.
type SchemaChecker interface {
	Check(schema *model.Schema) error
}

type Targets map[string]Target

func (t Targets) Get(name string) (Target, error) {
	target, ok := t[name]
	if !ok {
		return nil, fmt.Errorf(`unknown target "%s" (available: %v)`, name, t.Available())
	}

	return target, nil
}

func (t Targets) Available() []string {
	available := make([]string, 0, len(t))
	for name := range t {
		available = append(available, name)
	}

	sort.Strings(available)
	return available
}

type Result struct {
	Schema *model.Schema
	// Units are ordered like the declarations in the schema document: beans
	// first, then shared enums.
	Units []*SourceUnit
}

// Generate resolves doc and emits every source unit for target. Either all
// units are returned or none are.
func Generate(
	ctx context.Context,
	logger *slog.Logger,
	doc *model.Document,
	target Target,
	opts Options,
) (*Result, error) {
	naming, err := target.Naming(opts)
	if err != nil {
		return nil, err
	}

	schema, err := resolve.Resolve(doc, naming)
	if err != nil {
		return nil, err
	}

	logger.Debug("resolved schema", "objects", len(schema.Objects), "enums", len(schema.Enums))

	if checker, ok := target.(SchemaChecker); ok {
		if err := checker.Check(schema); err != nil {
			return nil, err
		}
	}

	units, err := emitUnits(ctx, logger, schema, target, opts)
	if err != nil {
		return nil, err
	}

	if err := checkPaths(units); err != nil {
		return nil, err
	}

	return &Result{
		Schema: schema,
		Units:  units,
	}, nil
}

// emitUnits emits all units in parallel. Each emitter reads only the
// resolved schema, which is not modified after resolution.
func emitUnits(
	ctx context.Context,
	logger *slog.Logger,
	schema *model.Schema,
	target Target,
	opts Options,
) ([]*SourceUnit, error) {
	units := make([]*SourceUnit, len(schema.Objects)+len(schema.Enums))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, obj := range schema.Objects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			unit, err := target.EmitBean(obj, schema, opts)
			if err != nil {
				return fmt.Errorf(`failed to generate bean for "%s": %w`, obj.Name, err)
			}

			logger.Debug("generated bean", "schema", obj.Name, "path", unit.Path)
			units[i] = unit
			return nil
		})
	}

	offset := len(schema.Objects)
	for i, enum := range schema.Enums {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			unit, err := target.EmitEnum(enum, opts)
			if err != nil {
				return fmt.Errorf(`failed to generate enum for "%s": %w`, enum.Name, err)
			}

			logger.Debug("generated enum", "schema", enum.Name, "path", unit.Path)
			units[offset+i] = unit
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}

func checkPaths(units []*SourceUnit) error {
	paths := names.NewCollisions("output")

	for _, u := range units {
		if err := paths.Add(u.Path, u.Schema); err != nil {
			return err
		}
	}

	return nil
}

// Paths returns the unit paths in order.
func (r *Result) Paths() []string {
	paths := make([]string, len(r.Units))
	for i, u := range r.Units {
		paths[i] = u.Path
	}

	return paths
}
