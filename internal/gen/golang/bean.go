package golang

import (
	"go/token"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/koskimas/openapi2beans/internal/model"
	"github.com/koskimas/openapi2beans/internal/names"
)

func genBean(f *jen.File, obj *model.Object, schema *model.Schema) error {
	for _, p := range obj.Properties {
		if strings.ContainsAny(p.Name, ",\"`") {
			return model.SchemaErrorf(model.Path(obj.Name, p.Name), "property name cannot be used as a JSON key in a Go struct tag")
		}
	}

	genBeanStruct(f, obj, schema)
	genWireStruct(f, obj, schema)
	genConstructor(f, obj, schema)
	genAccessors(f, obj, schema)
	genMarshal(f, obj)
	genUnmarshal(f, obj)

	return nil
}

func genBeanStruct(f *jen.File, obj *model.Object, schema *model.Schema) {
	genFileComment(f, obj.Description)
	f.Type().Id(obj.TypeName).StructFunc(func(g *jen.Group) {
		for _, p := range obj.Properties {
			genComment(g, p.Description)
			g.Id(p.FieldName).Add(goType(schema, p.Type, true))
		}
	})
	f.Empty()
}

// genWireStruct generates the exported mirror of the bean that
// encoding/json marshals. Its fields are in declaration order so encoded
// keys are too.
func genWireStruct(f *jen.File, obj *model.Object, schema *model.Schema) {
	f.Type().Id(wireName(obj)).StructFunc(func(g *jen.Group) {
		for _, p := range obj.Properties {
			g.Id(wireField(p)).Add(goType(schema, p.Type, true)).Tag(map[string]string{
				"json": jsonTag(p),
			})
		}
	})
	f.Empty()
}

func genConstructor(f *jen.File, obj *model.Object, schema *model.Schema) {
	required := obj.RequiredProperties()

	f.Func().Id(constructorName(obj)).ParamsFunc(func(g *jen.Group) {
		for _, p := range required {
			g.Id(p.FieldName).Add(goType(schema, p.Type, true))
		}
	}).Op("*").Id(obj.TypeName).Block(
		jen.Return(
			jen.Op("&").Id(obj.TypeName).Values(jen.DictFunc(func(d jen.Dict) {
				for _, p := range required {
					d[jen.Id(p.FieldName)] = jen.Id(p.FieldName)
				}
			})),
		),
	)
	f.Empty()
}

func genAccessors(f *jen.File, obj *model.Object, schema *model.Schema) {
	for _, p := range obj.Properties {
		f.Func().Params(
			jen.Id(idRecvBean).Op("*").Id(obj.TypeName),
		).Id(p.Getter).Params().Add(goType(schema, p.Type, true)).Block(
			jen.Return(jen.Id(idRecvBean).Dot(p.FieldName)),
		)
		f.Empty()
	}

	for _, p := range obj.Properties {
		f.Func().Params(
			jen.Id(idRecvBean).Op("*").Id(obj.TypeName),
		).Id(p.Setter).Params(
			jen.Id(idParamV).Add(goType(schema, p.Type, true)),
		).Block(
			jen.Id(idRecvBean).Dot(p.FieldName).Op("=").Id(idParamV),
		)
		f.Empty()
	}
}

func genMarshal(f *jen.File, obj *model.Object) {
	f.Func().Params(
		jen.Id(idRecvBean).Id(obj.TypeName),
	).Id("MarshalJSON").Params().Params(
		jen.Index().Byte(),
		jen.Error(),
	).Block(
		jen.Return(jen.Qual(pkgJson, "Marshal").Call(
			jen.Id(wireName(obj)).Values(jen.DictFunc(func(d jen.Dict) {
				for _, p := range obj.Properties {
					d[jen.Id(wireField(p))] = jen.Id(idRecvBean).Dot(p.FieldName)
				}
			})),
		)),
	)
	f.Empty()
}

func genUnmarshal(f *jen.File, obj *model.Object) {
	f.Func().Params(
		jen.Id(idRecvBean).Op("*").Id(obj.TypeName),
	).Id("UnmarshalJSON").Params(
		jen.Id(idParamData).Index().Byte(),
	).Error().BlockFunc(func(g *jen.Group) {
		g.Var().Id(idVarWire).Id(wireName(obj))
		g.If(
			jen.Err().Op(":=").Qual(pkgJson, "Unmarshal").Call(jen.Id(idParamData), jen.Op("&").Id(idVarWire)),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Err()),
		)
		g.Empty()

		for _, p := range obj.Properties {
			g.Id(idRecvBean).Dot(p.FieldName).Op("=").Id(idVarWire).Dot(wireField(p))
		}

		g.Return(jen.Nil())
	})
}

func constructorName(obj *model.Object) string {
	return "New" + obj.TypeName
}

func wireName(obj *model.Object) string {
	return names.FirstLower(obj.TypeName) + "JSON"
}

// wireField exports a field name. Names that stay unexported after
// upper-casing, such as "_1st" or "名字", get an X prefix.
func wireField(p *model.Property) string {
	name := names.FirstUpper(p.FieldName)
	if !token.IsExported(name) {
		return "X" + p.FieldName
	}

	return name
}

// jsonTag keeps primitives in the encoding even when they hold the zero
// value. Unset references, arrays and enums are left out, required or not.
func jsonTag(p *model.Property) string {
	if p.Type.IsPrimitive() {
		return p.Name
	}

	return p.Name + ",omitempty"
}
