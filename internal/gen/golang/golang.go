// Package golang emits beans as Go source. Fields are unexported; JSON
// encoding goes through generated MarshalJSON and UnmarshalJSON methods and a
// private wire struct per bean, so no reflection over unexported state is
// needed.
package golang

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/koskimas/openapi2beans/internal/gen"
	"github.com/koskimas/openapi2beans/internal/model"
	"github.com/koskimas/openapi2beans/internal/names"
	"github.com/koskimas/openapi2beans/internal/resolve"
)

const (
	headerComment = "Code generated by openapi2beans. DO NOT EDIT."
	fileSuffix    = "_gen.go"

	idRecvBean  = "b"
	idRecvEnum  = "e"
	idParamData = "data"
	idParamV    = "v"
	idVarWire   = "v"
	idVarLit    = "literal"
	idVarOk     = "ok"

	pkgJson = "encoding/json"
	pkgFmt  = "fmt"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "go"
}

func (t *Target) DefaultPackage(outputDir string) string {
	return packageName(outputDir)
}

func (t *Target) Naming(opts gen.Options) (resolve.Naming, error) {
	if err := validatePackage(opts.Package); err != nil {
		return nil, err
	}

	if opts.Accessors == names.AccessorsCamel {
		return nil, fmt.Errorf(`accessor style "%s" is not supported by the go target: accessors must be exported`, opts.Accessors)
	}

	return &naming{accessors: names.AccessorsPascal}, nil
}

func (t *Target) EmitBean(obj *model.Object, schema *model.Schema, opts gen.Options) (*gen.SourceUnit, error) {
	f := newFile(opts.Package)

	if err := genBean(f, obj, schema); err != nil {
		return nil, err
	}

	for _, e := range obj.Enums {
		genEnum(f, e)
	}

	return render(f, obj.TypeName, obj.Name, gen.UnitKindBean)
}

func (t *Target) EmitEnum(enum *model.Enum, opts gen.Options) (*gen.SourceUnit, error) {
	f := newFile(opts.Package)
	genEnum(f, enum)

	return render(f, enum.TypeName, enum.Name, gen.UnitKindEnum)
}

func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(headerComment)
	return f
}

func render(f *jen.File, typeName string, schemaName string, kind gen.UnitKind) (*gen.SourceUnit, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", typeName, err)
	}

	return &gen.SourceUnit{
		Path:    names.Snake(typeName) + fileSuffix,
		Schema:  schemaName,
		Kind:    kind,
		Content: buf.Bytes(),
	}, nil
}

// genComment adds a description as line comments. Comments with newlines
// would otherwise be rendered in block style.
func genComment(g *jen.Group, description string) {
	if description == "" {
		return
	}

	for _, line := range strings.Split(strings.TrimRight(description, "\n"), "\n") {
		g.Comment(strings.TrimRight(line, " \t"))
	}
}

func genFileComment(f *jen.File, description string) {
	if description == "" {
		return
	}

	for _, line := range strings.Split(strings.TrimRight(description, "\n"), "\n") {
		f.Comment(strings.TrimRight(line, " \t"))
	}
}

// goType returns the Go type of a property. References to beans are pointers
// at the top level so that unset references are absent and mutually
// referencing beans stay finite; array elements are held by value.
func goType(schema *model.Schema, t *model.Type, top bool) jen.Code {
	switch t.Kind {
	case model.KindBoolean:
		return jen.Bool()
	case model.KindInteger:
		return jen.Int64()
	case model.KindNumber:
		return jen.Float64()
	case model.KindString:
		return jen.String()
	case model.KindArray:
		return jen.Index().Add(goType(schema, t.Items, false))
	case model.KindEnum:
		return jen.Id(t.Enum.TypeName)
	case model.KindReference:
		ref, _ := schema.Object(t.Ref)
		if top {
			return jen.Op("*").Id(ref.TypeName)
		}

		return jen.Id(ref.TypeName)
	}

	return jen.Interface()
}
