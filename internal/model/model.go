package model

type Kind string

const (
	KindBoolean   Kind = "boolean"
	KindInteger   Kind = "integer"
	KindNumber    Kind = "number"
	KindString    Kind = "string"
	KindArray     Kind = "array"
	KindEnum      Kind = "enum"
	KindReference Kind = "reference"
)

// Type describes the type of a property. Exactly one of Items, Enum and Ref is
// set for the array, enum and reference kinds respectively.
type Type struct {
	Kind  Kind
	Items *Type
	Enum  *Enum
	// Ref is the schema name of the referenced object. Before resolution it
	// may also name a shared enum.
	Ref string
}

func (t *Type) IsPrimitive() bool {
	switch t.Kind {
	case KindBoolean, KindInteger, KindNumber, KindString:
		return true
	}

	return false
}

// Elem returns the innermost non-array type and the number of array
// dimensions wrapped around it.
func (t *Type) Elem() (*Type, int) {
	dims := 0
	for t.Kind == KindArray {
		t = t.Items
		dims++
	}

	return t, dims
}

type Object struct {
	// Name is the schema-level name.
	Name        string
	Description string
	Properties  []*Property

	// Filled in by the resolver.
	TypeName string
	Enums    []*Enum
}

// RequiredProperties returns the required properties in declaration order.
func (o *Object) RequiredProperties() []*Property {
	required := make([]*Property, 0, len(o.Properties))

	for _, p := range o.Properties {
		if p.Required {
			required = append(required, p)
		}
	}

	return required
}

type Property struct {
	Name        string
	Description string
	Required    bool
	Type        *Type

	// Filled in by the resolver.
	FieldName string
	Getter    string
	Setter    string
}

// Enum is a named set of string literals. Scoped enums belong to a single
// property of a single object; shared enums are declared at the top level of
// the schema and have no owner.
type Enum struct {
	Name        string
	Owner       string
	Property    string
	Description string
	Values      []EnumValue

	// Filled in by the resolver.
	TypeName string
}

func (e *Enum) IsShared() bool {
	return e.Owner == ""
}

// EnumValue pairs the identifier of an enum constant with the literal it
// serializes to.
type EnumValue struct {
	Identifier string
	Literal    string
}

// Document is the parsed, unresolved content of a schema file in
// declaration order.
type Document struct {
	Objects []*Object
	Enums   []*Enum
}

// Schema is the resolved set of objects and shared enums. It is read-only
// once returned by the resolver.
type Schema struct {
	Objects []*Object
	Enums   []*Enum

	objects map[string]*Object
	enums   map[string]*Enum
}

func NewSchema(objects []*Object, enums []*Enum) *Schema {
	s := &Schema{
		Objects: objects,
		Enums:   enums,
		objects: make(map[string]*Object, len(objects)),
		enums:   make(map[string]*Enum, len(enums)),
	}

	for _, o := range objects {
		s.objects[o.Name] = o
	}

	for _, e := range enums {
		s.enums[e.Name] = e
	}

	return s
}

func (s *Schema) Object(name string) (*Object, bool) {
	o, ok := s.objects[name]
	return o, ok
}

func (s *Schema) Enum(name string) (*Enum, bool) {
	e, ok := s.enums[name]
	return e, ok
}
