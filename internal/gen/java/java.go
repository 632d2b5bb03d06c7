// Package java emits beans as Java classes for Gson. Every bean is one
// public class; enums scoped to a property are nested in their owner and
// shared enums get a file of their own.
package java

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/cbroglie/mustache"
	"github.com/koskimas/openapi2beans/internal/gen"
	"github.com/koskimas/openapi2beans/internal/model"
	"github.com/koskimas/openapi2beans/internal/names"
	"github.com/koskimas/openapi2beans/internal/resolve"
)

const (
	defaultPackage = "generated"
	fileSuffix     = ".java"
	indent         = "    "

	classTemplatePath = "templates/JavaClassTemplate.mustache"
	enumTemplatePath  = "templates/JavaEnumTemplate.mustache"
)

//go:embed templates/*
var templateFS embed.FS

type templates struct {
	class *mustache.Template
	enum  *mustache.Template
}

type Target struct {
	once      sync.Once
	templates *templates
	err       error
}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "java"
}

func (t *Target) DefaultPackage(outputDir string) string {
	return defaultPackage
}

func (t *Target) Naming(opts gen.Options) (resolve.Naming, error) {
	if err := validatePackage(opts.Package); err != nil {
		return nil, err
	}

	style := opts.Accessors
	if style == "" {
		style = names.AccessorsPascal
	}

	return &naming{accessors: style}, nil
}

func (t *Target) EmitBean(obj *model.Object, schema *model.Schema, opts gen.Options) (*gen.SourceUnit, error) {
	tmpl, err := t.loadTemplates()
	if err != nil {
		return nil, err
	}

	data := classData{
		Package:    opts.Package,
		Comment:    commentLines(obj.Description),
		Name:       obj.TypeName,
		HasImports: len(obj.Enums) > 0,
	}

	var params []string
	for _, p := range obj.Properties {
		typ := javaType(schema, p.Type)

		field := fieldData{
			Comment: commentLines(p.Description),
			Type:    typ,
			Name:    p.FieldName,
			Getter:  p.Getter,
			Setter:  p.Setter,
		}

		if p.FieldName != p.Name {
			field.HasSerializedName = true
			field.SerializedName = escape(p.Name)
			data.HasImports = true
		}

		data.Fields = append(data.Fields, field)

		if p.Required {
			data.Required = append(data.Required, field)
			params = append(params, typ+" "+p.FieldName)
		}
	}
	data.ConstructorParams = strings.Join(params, ", ")

	for _, e := range obj.Enums {
		nested, err := renderEnum(tmpl.enum, e, "")
		if err != nil {
			return nil, err
		}

		data.Enums = append(data.Enums, indentLines(nested))
	}

	content, err := tmpl.class.Render(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render class %s: %w", obj.TypeName, err)
	}

	return &gen.SourceUnit{
		Path:    unitPath(opts.Package, obj.TypeName),
		Schema:  obj.Name,
		Kind:    gen.UnitKindBean,
		Content: []byte(content),
	}, nil
}

func (t *Target) EmitEnum(enum *model.Enum, opts gen.Options) (*gen.SourceUnit, error) {
	tmpl, err := t.loadTemplates()
	if err != nil {
		return nil, err
	}

	content, err := renderEnum(tmpl.enum, enum, opts.Package)
	if err != nil {
		return nil, err
	}

	return &gen.SourceUnit{
		Path:    unitPath(opts.Package, enum.TypeName),
		Schema:  enum.Name,
		Kind:    gen.UnitKindEnum,
		Content: []byte(content),
	}, nil
}

// loadTemplates parses the embedded templates once. Emitters run in
// parallel and share the parsed templates.
func (t *Target) loadTemplates() (*templates, error) {
	t.once.Do(func() {
		class, err := parseTemplate(classTemplatePath)
		if err != nil {
			t.err = err
			return
		}

		enum, err := parseTemplate(enumTemplatePath)
		if err != nil {
			t.err = err
			return
		}

		t.templates = &templates{class: class, enum: enum}
	})

	return t.templates, t.err
}

func parseTemplate(name string) (*mustache.Template, error) {
	data, err := templateFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := mustache.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	return tmpl, nil
}

// renderEnum renders an enum declaration. With an empty package the
// declaration is rendered without package and import lines, for nesting.
func renderEnum(tmpl *mustache.Template, e *model.Enum, pkg string) (string, error) {
	data := enumData{
		Standalone: pkg != "",
		Package:    pkg,
		Comment:    commentLines(e.Description),
		Name:       e.TypeName,
	}

	for i, v := range e.Values {
		sep := ","
		if i == len(e.Values)-1 {
			sep = ""
		}

		data.Values = append(data.Values, enumValueData{
			Literal:    escape(v.Literal),
			Identifier: v.Identifier,
			Separator:  sep,
		})
	}

	content, err := tmpl.Render(data)
	if err != nil {
		return "", fmt.Errorf("failed to render enum %s: %w", e.TypeName, err)
	}

	return content, nil
}

func unitPath(pkg string, typeName string) string {
	return path.Join(strings.ReplaceAll(pkg, ".", "/"), typeName+fileSuffix)
}

func javaType(schema *model.Schema, t *model.Type) string {
	elem, dims := t.Elem()
	return elemType(schema, elem) + strings.Repeat("[]", dims)
}

func elemType(schema *model.Schema, t *model.Type) string {
	switch t.Kind {
	case model.KindBoolean:
		return "boolean"
	case model.KindInteger:
		return "int"
	case model.KindNumber:
		return "double"
	case model.KindString:
		return "String"
	case model.KindEnum:
		return t.Enum.TypeName
	case model.KindReference:
		ref, _ := schema.Object(t.Ref)
		return ref.TypeName
	}

	return "Object"
}

func commentLines(description string) []string {
	if description == "" {
		return nil
	}

	lines := strings.Split(strings.TrimRight(description, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return lines
}

func indentLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}

	return strings.Join(lines, "\n")
}

// escape quotes s for use inside a Java string literal.
func escape(s string) string {
	var sb strings.Builder

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}

	return sb.String()
}

type classData struct {
	Package           string
	HasImports        bool
	Comment           []string
	Name              string
	Fields            []fieldData
	ConstructorParams string
	Required          []fieldData
	Enums             []string
}

type fieldData struct {
	Comment           []string
	HasSerializedName bool
	SerializedName    string
	Type              string
	Name              string
	Getter            string
	Setter            string
}

type enumData struct {
	Standalone bool
	Package    string
	Comment    []string
	Name       string
	Values     []enumValueData
}

type enumValueData struct {
	Literal    string
	Identifier string
	Separator  string
}
