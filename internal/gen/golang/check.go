package golang

import (
	"github.com/koskimas/openapi2beans/internal/model"
	"github.com/koskimas/openapi2beans/internal/names"
)

// Check registers every package-level identifier the emitted files declare
// and fails on the first duplicate, e.g. a bean "Pet" whose constructor
// NewPet collides with a schema named "NewPet".
func (t *Target) Check(schema *model.Schema) error {
	pkg := names.NewCollisions("package")

	addEnum := func(e *model.Enum, source string) error {
		if err := pkg.Add(e.TypeName, source); err != nil {
			return err
		}

		for _, v := range e.Values {
			if err := pkg.Add(v.Identifier, source); err != nil {
				return err
			}
		}

		if err := pkg.Add(literalsName(e), source); err != nil {
			return err
		}

		return pkg.Add(parseName(e), source)
	}

	for _, obj := range schema.Objects {
		for _, ident := range []string{obj.TypeName, wireName(obj), constructorName(obj)} {
			if err := pkg.Add(ident, obj.Name); err != nil {
				return err
			}
		}

		wire := names.NewCollisions(wireName(obj))
		for _, p := range obj.Properties {
			if err := wire.Add(wireField(p), p.Name); err != nil {
				return err
			}
		}

		for _, e := range obj.Enums {
			if err := addEnum(e, model.Path(e.Owner, e.Property)); err != nil {
				return err
			}
		}
	}

	for _, e := range schema.Enums {
		if err := addEnum(e, e.Name); err != nil {
			return err
		}
	}

	return nil
}
