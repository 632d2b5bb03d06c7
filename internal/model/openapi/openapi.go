package openapi

import (
	"fmt"
	"os"
	"strings"

	"github.com/koskimas/openapi2beans/internal/model"
	"github.com/koskimas/openapi2beans/internal/names"
	"gopkg.in/yaml.v3"
)

const (
	refPathComponents  = "#/components/schemas/"
	refPathDefinitions = "#/definitions/"
)

type File struct {
	Components  Components `yaml:"components"`
	Definitions *Schemas   `yaml:"definitions"`
}

type Components struct {
	Schemas *Schemas `yaml:"schemas"`
}

type Schema struct {
	Type        string      `yaml:"type"`
	Description string      `yaml:"description"`
	Ref         *string     `yaml:"$ref"`
	Properties  *Schemas    `yaml:"properties"`
	Items       *Schema     `yaml:"items"`
	Required    []string    `yaml:"required"`
	Enum        []yaml.Node `yaml:"enum"`
	AllOf       []yaml.Node `yaml:"allOf"`
	OneOf       []yaml.Node `yaml:"oneOf"`
	AnyOf       []yaml.Node `yaml:"anyOf"`
}

type NamedSchema struct {
	Name   string
	Schema Schema
}

// Schemas is a mapping from names to schemas that keeps the order in which
// the names were declared.
type Schemas struct {
	Entries []NamedSchema
}

func (s *Schemas) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of schemas", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]

		var schema Schema
		if err := value.Content[i+1].Decode(&schema); err != nil {
			return fmt.Errorf(`schema "%s": %w`, key.Value, err)
		}

		s.Entries = append(s.Entries, NamedSchema{
			Name:   key.Value,
			Schema: schema,
		})
	}

	return nil
}

// ReadFile reads and parses a schema document from disk.
func ReadFile(filePath string) (*model.Document, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read schema file "%s": %w`, filePath, err)
	}

	doc, err := Parse(fileData)
	if err != nil {
		return nil, fmt.Errorf(`failed to parse schema file "%s": %w`, filePath, err)
	}

	return doc, nil
}

// Parse parses a YAML or JSON schema document. Object and property order
// is kept as declared.
func Parse(data []byte) (*model.Document, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema document: %w", err)
	}

	schemas := file.Components.Schemas
	if schemas == nil {
		schemas = file.Definitions
	}

	if schemas == nil {
		return nil, model.SchemaErrorf("", "document has neither components.schemas nor definitions")
	}

	p := &parser{
		doc: &model.Document{},
	}

	for _, s := range schemas.Entries {
		if err := p.parseRoot(s.Name, s.Schema); err != nil {
			return nil, err
		}
	}

	return p.doc, nil
}

type parser struct {
	doc *model.Document
}

func (p *parser) parseRoot(name string, schema Schema) error {
	if err := checkSupported(name, schema); err != nil {
		return err
	}

	if schema.Ref != nil {
		return model.SchemaErrorf(name, "top-level schemas cannot be references")
	}

	if isObject(schema) {
		_, err := p.parseObject(name, schema)
		return err
	}

	if schema.Type == "string" && schema.Enum != nil {
		values, err := parseEnumValues(name, schema)
		if err != nil {
			return err
		}

		p.doc.Enums = append(p.doc.Enums, &model.Enum{
			Name:        name,
			Description: schema.Description,
			Values:      values,
		})

		return nil
	}

	return model.SchemaErrorf(name, `top-level schema must be an object or a string enum, got type "%s"`, schema.Type)
}

func (p *parser) parseObject(name string, schema Schema) (*model.Object, error) {
	obj := &model.Object{
		Name:        name,
		Description: schema.Description,
	}

	// Append before parsing properties so that inline objects follow their
	// owner in the output.
	p.doc.Objects = append(p.doc.Objects, obj)

	seen := make(map[string]bool)

	if schema.Properties != nil {
		for _, ps := range schema.Properties.Entries {
			if seen[ps.Name] {
				return nil, model.SchemaErrorf(model.Path(name, ps.Name), "duplicate property")
			}
			seen[ps.Name] = true

			t, err := p.parseType(name, ps.Name, ps.Schema)
			if err != nil {
				return nil, err
			}

			obj.Properties = append(obj.Properties, &model.Property{
				Name:        ps.Name,
				Description: ps.Schema.Description,
				Type:        t,
			})
		}
	}

	for _, r := range schema.Required {
		if !seen[r] {
			return nil, model.SchemaErrorf(name, `required property "%s" is not defined`, r)
		}

		for _, prop := range obj.Properties {
			if prop.Name == r {
				prop.Required = true
			}
		}
	}

	return obj, nil
}

func (p *parser) parseType(object string, property string, schema Schema) (*model.Type, error) {
	path := model.Path(object, property)

	if err := checkSupported(path, schema); err != nil {
		return nil, err
	}

	if schema.Ref != nil {
		name, err := parseRef(path, *schema.Ref)
		if err != nil {
			return nil, err
		}

		return &model.Type{Kind: model.KindReference, Ref: name}, nil
	}

	if schema.Enum != nil && schema.Type != "string" {
		return nil, model.SchemaErrorf(path, `enum is only supported on string properties, got type "%s"`, schema.Type)
	}

	switch schema.Type {
	case "boolean":
		return &model.Type{Kind: model.KindBoolean}, nil
	case "integer":
		return &model.Type{Kind: model.KindInteger}, nil
	case "number":
		return &model.Type{Kind: model.KindNumber}, nil
	case "string":
		if schema.Enum == nil {
			return &model.Type{Kind: model.KindString}, nil
		}

		values, err := parseEnumValues(path, schema)
		if err != nil {
			return nil, err
		}

		return &model.Type{
			Kind: model.KindEnum,
			Enum: &model.Enum{
				Owner:       object,
				Property:    property,
				Description: schema.Description,
				Values:      values,
			},
		}, nil
	case "array":
		if schema.Items == nil {
			return nil, model.SchemaErrorf(path, "array property has no items")
		}

		items, err := p.parseType(object, property, *schema.Items)
		if err != nil {
			return nil, err
		}

		return &model.Type{Kind: model.KindArray, Items: items}, nil
	}

	if isObject(schema) {
		// Inline objects become beans of their own, named after the owner
		// and the property.
		obj, err := p.parseObject(object+names.Pascal(property), schema)
		if err != nil {
			return nil, err
		}

		return &model.Type{Kind: model.KindReference, Ref: obj.Name}, nil
	}

	if schema.Type == "" {
		return nil, model.SchemaErrorf(path, "property has no type")
	}

	return nil, model.SchemaErrorf(path, `unsupported type "%s"`, schema.Type)
}

func checkSupported(path string, schema Schema) error {
	switch {
	case schema.AllOf != nil:
		return model.SchemaErrorf(path, "allOf composition is not supported")
	case schema.OneOf != nil:
		return model.SchemaErrorf(path, "oneOf composition is not supported")
	case schema.AnyOf != nil:
		return model.SchemaErrorf(path, "anyOf composition is not supported")
	}

	return nil
}

func isObject(schema Schema) bool {
	return schema.Type == "object" || (schema.Type == "" && schema.Ref == nil && schema.Properties != nil)
}

func parseEnumValues(path string, schema Schema) ([]model.EnumValue, error) {
	if len(schema.Enum) == 0 {
		return nil, model.SchemaErrorf(path, "enum has no values")
	}

	values := make([]model.EnumValue, 0, len(schema.Enum))

	for _, n := range schema.Enum {
		if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
			return nil, model.SchemaErrorf(path, `enum value "%s" on line %d is not a string`, n.Value, n.Line)
		}

		values = append(values, model.EnumValue{Literal: n.Value})
	}

	return values, nil
}

func parseRef(path string, ref string) (string, error) {
	var name string

	switch {
	case strings.HasPrefix(ref, refPathComponents):
		name = strings.TrimPrefix(ref, refPathComponents)
	case strings.HasPrefix(ref, refPathDefinitions):
		name = strings.TrimPrefix(ref, refPathDefinitions)
	default:
		return "", model.SchemaErrorf(path, `couldn't parse reference "%s": only local references to %s or %s are supported`, ref, refPathComponents, refPathDefinitions)
	}

	if name == "" || strings.Contains(name, "/") {
		return "", model.SchemaErrorf(path, `couldn't parse reference "%s"`, ref)
	}

	return name, nil
}
