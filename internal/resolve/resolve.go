// Package resolve turns a parsed schema document into a resolved schema:
// references are checked against the full set of declared names, enums are
// synthesized per property and every declaration gets its target-language
// identifiers.
package resolve

import (
	"fmt"

	"github.com/koskimas/openapi2beans/internal/model"
	"github.com/koskimas/openapi2beans/internal/names"
)

// Naming is the identifier convention of a target language, fixed for a
// whole generation run.
type Naming interface {
	TypeName(schemaName string) string
	FieldName(propertyName string) string
	// ScopedEnumTypeName names the enum synthesized for a property.
	ScopedEnumTypeName(ownerTypeName string, propertyName string) string
	// EnumConstant names an enum constant. It returns an empty string when
	// the literal yields no identifier.
	EnumConstant(enumTypeName string, literal string) string
	Accessors(fieldName string) (getter string, setter string)
	IsReserved(identifier string) bool
	// FlatNamespace reports whether scoped enums and enum constants share the
	// package namespace with top-level types, as opposed to being nested in
	// their owner.
	FlatNamespace() bool
}

type resolver struct {
	doc    *model.Document
	naming Naming

	objects map[string]*model.Object
	enums   map[string]*model.Enum
	types   *names.Collisions
}

// Resolve resolves all references and names in doc. It runs in two passes:
// the first collects every declared name so that references may point
// forwards, the second resolves each property.
func Resolve(doc *model.Document, naming Naming) (*model.Schema, error) {
	r := &resolver{
		doc:     doc,
		naming:  naming,
		objects: make(map[string]*model.Object, len(doc.Objects)),
		enums:   make(map[string]*model.Enum, len(doc.Enums)),
		types:   names.NewCollisions("package"),
	}

	objects, enums, err := r.collect()
	if err != nil {
		return nil, err
	}

	for _, e := range enums {
		if err := r.resolveEnumValues(e, r.types); err != nil {
			return nil, err
		}
	}

	for _, o := range objects {
		if err := r.resolveObject(o); err != nil {
			return nil, err
		}
	}

	return model.NewSchema(objects, enums), nil
}

func (r *resolver) collect() ([]*model.Object, []*model.Enum, error) {
	declared := names.NewCollisions("schema")

	objects := make([]*model.Object, 0, len(r.doc.Objects))
	for _, o := range r.doc.Objects {
		if err := declared.Add(o.Name, o.Name); err != nil {
			return nil, nil, err
		}

		typeName, err := r.typeName(o.Name, o.Name)
		if err != nil {
			return nil, nil, err
		}

		obj := &model.Object{
			Name:        o.Name,
			Description: o.Description,
			TypeName:    typeName,
			Properties:  make([]*model.Property, len(o.Properties)),
		}
		// Properties are resolved in the second pass.
		for i, p := range o.Properties {
			obj.Properties[i] = &model.Property{
				Name:        p.Name,
				Description: p.Description,
				Required:    p.Required,
				Type:        p.Type,
			}
		}

		r.objects[o.Name] = obj
		objects = append(objects, obj)
	}

	enums := make([]*model.Enum, 0, len(r.doc.Enums))
	for _, e := range r.doc.Enums {
		if err := declared.Add(e.Name, e.Name); err != nil {
			return nil, nil, err
		}

		typeName, err := r.typeName(e.Name, e.Name)
		if err != nil {
			return nil, nil, err
		}

		enum := &model.Enum{
			Name:        e.Name,
			Description: e.Description,
			TypeName:    typeName,
			Values:      e.Values,
		}

		r.enums[e.Name] = enum
		enums = append(enums, enum)
	}

	return objects, enums, nil
}

func (r *resolver) typeName(schemaName string, source string) (string, error) {
	typeName := r.naming.TypeName(schemaName)

	if typeName == "" {
		return "", model.SchemaErrorf(source, `name "%s" does not yield an identifier`, schemaName)
	}

	if r.naming.IsReserved(typeName) {
		return "", model.SchemaErrorf(source, `name "%s" collides with reserved word "%s"`, schemaName, typeName)
	}

	if err := r.types.Add(typeName, source); err != nil {
		return "", err
	}

	return typeName, nil
}

func (r *resolver) resolveObject(obj *model.Object) error {
	fields := names.NewCollisions(obj.Name)
	accessors := names.NewCollisions(obj.Name)

	nested := names.NewCollisions(obj.Name)
	if err := nested.Add(obj.TypeName, obj.Name); err != nil {
		return err
	}

	if err := r.addReferenced(obj, nested); err != nil {
		return err
	}

	for _, p := range obj.Properties {
		path := model.Path(obj.Name, p.Name)

		field := r.naming.FieldName(p.Name)
		if field == "" {
			return model.SchemaErrorf(path, `property name "%s" does not yield an identifier`, p.Name)
		}

		if r.naming.IsReserved(field) {
			field += "_"
		}

		if err := fields.Add(field, p.Name); err != nil {
			return err
		}

		getter, setter := r.naming.Accessors(field)
		if err := accessors.Add(getter, p.Name); err != nil {
			return err
		}

		resolved, err := r.resolveType(obj, p, p.Type, nested)
		if err != nil {
			return err
		}

		p.FieldName = field
		p.Getter = getter
		p.Setter = setter
		p.Type = resolved
	}

	return nil
}

// addReferenced registers the top-level types referenced by obj in its
// nested scope. A nested enum of the same name would shadow them.
func (r *resolver) addReferenced(obj *model.Object, nested *names.Collisions) error {
	seen := map[string]bool{obj.Name: true}

	for _, p := range obj.Properties {
		t := p.Type
		for t != nil && t.Kind == model.KindArray {
			t = t.Items
		}

		if t == nil || t.Kind != model.KindReference || seen[t.Ref] {
			continue
		}
		seen[t.Ref] = true

		var typeName string
		if o, ok := r.objects[t.Ref]; ok {
			typeName = o.TypeName
		} else if e, ok := r.enums[t.Ref]; ok {
			typeName = e.TypeName
		} else {
			continue
		}

		if err := nested.Add(typeName, t.Ref); err != nil {
			return err
		}
	}

	return nil
}

func (r *resolver) resolveType(obj *model.Object, p *model.Property, t *model.Type, nested *names.Collisions) (*model.Type, error) {
	path := model.Path(obj.Name, p.Name)

	switch t.Kind {
	case model.KindBoolean, model.KindInteger, model.KindNumber, model.KindString:
		return &model.Type{Kind: t.Kind}, nil

	case model.KindArray:
		items, err := r.resolveType(obj, p, t.Items, nested)
		if err != nil {
			return nil, err
		}

		return &model.Type{Kind: model.KindArray, Items: items}, nil

	case model.KindEnum:
		enum, err := r.resolveScopedEnum(obj, p, t.Enum, nested)
		if err != nil {
			return nil, err
		}

		return &model.Type{Kind: model.KindEnum, Enum: enum}, nil

	case model.KindReference:
		if _, ok := r.objects[t.Ref]; ok {
			return &model.Type{Kind: model.KindReference, Ref: t.Ref}, nil
		}

		if e, ok := r.enums[t.Ref]; ok {
			return &model.Type{Kind: model.KindEnum, Enum: e}, nil
		}

		return nil, &model.UnresolvedReferenceError{Path: path, Ref: t.Ref}
	}

	return nil, model.SchemaErrorf(path, `unknown type kind "%s"`, t.Kind)
}

func (r *resolver) resolveScopedEnum(obj *model.Object, p *model.Property, e *model.Enum, nested *names.Collisions) (*model.Enum, error) {
	path := model.Path(obj.Name, p.Name)

	typeName := r.naming.ScopedEnumTypeName(obj.TypeName, p.Name)
	if typeName == "" {
		return nil, model.SchemaErrorf(path, `property name "%s" does not yield an enum identifier`, p.Name)
	}

	if r.naming.IsReserved(typeName) {
		return nil, model.SchemaErrorf(path, `enum name "%s" collides with reserved word`, typeName)
	}

	scope := nested
	if r.naming.FlatNamespace() {
		scope = r.types
	}

	if err := scope.Add(typeName, path); err != nil {
		return nil, err
	}

	enum := &model.Enum{
		Owner:       obj.Name,
		Property:    p.Name,
		Description: e.Description,
		TypeName:    typeName,
		Values:      e.Values,
	}

	if err := r.resolveEnumValues(enum, r.types); err != nil {
		return nil, err
	}

	obj.Enums = append(obj.Enums, enum)
	return enum, nil
}

// resolveEnumValues derives the constant identifiers of an enum. The
// literals are kept verbatim.
func (r *resolver) resolveEnumValues(e *model.Enum, pkg *names.Collisions) error {
	path := e.Name
	if !e.IsShared() {
		path = model.Path(e.Owner, e.Property)
	}

	constants := names.NewCollisions(path)
	values := make([]model.EnumValue, len(e.Values))

	for i, v := range e.Values {
		ident := r.naming.EnumConstant(e.TypeName, v.Literal)
		if ident == "" {
			return model.SchemaErrorf(path, `enum value "%s" does not yield an identifier`, v.Literal)
		}

		if err := constants.Add(ident, fmt.Sprintf(`enum value "%s"`, v.Literal)); err != nil {
			return err
		}

		if r.naming.FlatNamespace() {
			if err := pkg.Add(ident, path); err != nil {
				return err
			}
		}

		values[i] = model.EnumValue{Identifier: ident, Literal: v.Literal}
	}

	e.Values = values
	return nil
}
