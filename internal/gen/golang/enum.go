package golang

import (
	"github.com/dave/jennifer/jen"
	"github.com/koskimas/openapi2beans/internal/model"
	"github.com/koskimas/openapi2beans/internal/names"
)

// genEnum generates an integer enum type whose constants start at one, so
// the zero value means unset. The literal table maps each constant to the
// string it encodes to.
func genEnum(f *jen.File, e *model.Enum) {
	literals := literalsName(e)

	genFileComment(f, e.Description)
	f.Type().Id(e.TypeName).Int()
	f.Empty()

	f.Const().DefsFunc(func(g *jen.Group) {
		for i, v := range e.Values {
			if i == 0 {
				g.Id(v.Identifier).Id(e.TypeName).Op("=").Iota().Op("+").Lit(1)
			} else {
				g.Id(v.Identifier)
			}
		}
	})
	f.Empty()

	f.Var().Id(literals).Op("=").Map(jen.Id(e.TypeName)).String().Values(jen.DictFunc(func(d jen.Dict) {
		for _, v := range e.Values {
			d[jen.Id(v.Identifier)] = jen.Lit(v.Literal)
		}
	}))
	f.Empty()

	genEnumParse(f, e)
	genEnumString(f, e)
	genEnumMarshal(f, e)
	genEnumUnmarshal(f, e)
}

func genEnumParse(f *jen.File, e *model.Enum) {
	f.Func().Id(parseName(e)).Params(
		jen.Id(idVarLit).String(),
	).Params(
		jen.Id(e.TypeName),
		jen.Error(),
	).Block(
		jen.For(
			jen.List(jen.Id("c"), jen.Id("l")).Op(":=").Range().Id(literalsName(e)),
		).Block(
			jen.If(jen.Id("l").Op("==").Id(idVarLit)).Block(
				jen.Return(jen.Id("c"), jen.Nil()),
			),
		),
		jen.Empty(),
		jen.Return(
			jen.Lit(0),
			jen.Qual(pkgFmt, "Errorf").Call(jen.Lit("invalid "+e.TypeName+" literal %q"), jen.Id(idVarLit)),
		),
	)
	f.Empty()
}

func genEnumString(f *jen.File, e *model.Enum) {
	f.Func().Params(
		jen.Id(idRecvEnum).Id(e.TypeName),
	).Id("String").Params().String().Block(
		jen.Return(jen.Id(literalsName(e)).Index(jen.Id(idRecvEnum))),
	)
	f.Empty()
}

func genEnumMarshal(f *jen.File, e *model.Enum) {
	f.Func().Params(
		jen.Id(idRecvEnum).Id(e.TypeName),
	).Id("MarshalJSON").Params().Params(
		jen.Index().Byte(),
		jen.Error(),
	).Block(
		jen.If(jen.Id(idRecvEnum).Op("==").Lit(0)).Block(
			jen.Return(jen.Index().Byte().Call(jen.Lit("null")), jen.Nil()),
		),
		jen.Empty(),
		jen.List(jen.Id(idVarLit), jen.Id(idVarOk)).Op(":=").Id(literalsName(e)).Index(jen.Id(idRecvEnum)),
		jen.If(jen.Op("!").Id(idVarOk)).Block(
			jen.Return(
				jen.Nil(),
				jen.Qual(pkgFmt, "Errorf").Call(jen.Lit("invalid "+e.TypeName+" value %d"), jen.Int().Call(jen.Id(idRecvEnum))),
			),
		),
		jen.Empty(),
		jen.Return(jen.Qual(pkgJson, "Marshal").Call(jen.Id(idVarLit))),
	)
	f.Empty()
}

func genEnumUnmarshal(f *jen.File, e *model.Enum) {
	f.Func().Params(
		jen.Id(idRecvEnum).Op("*").Id(e.TypeName),
	).Id("UnmarshalJSON").Params(
		jen.Id(idParamData).Index().Byte(),
	).Error().Block(
		jen.If(jen.String().Call(jen.Id(idParamData)).Op("==").Lit("null")).Block(
			jen.Op("*").Id(idRecvEnum).Op("=").Lit(0),
			jen.Return(jen.Nil()),
		),
		jen.Empty(),
		jen.Var().Id(idVarLit).String(),
		jen.If(
			jen.Err().Op(":=").Qual(pkgJson, "Unmarshal").Call(jen.Id(idParamData), jen.Op("&").Id(idVarLit)),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Err()),
		),
		jen.Empty(),
		jen.List(jen.Id(idVarWire), jen.Err()).Op(":=").Id(parseName(e)).Call(jen.Id(idVarLit)),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		),
		jen.Empty(),
		jen.Op("*").Id(idRecvEnum).Op("=").Id(idVarWire),
		jen.Return(jen.Nil()),
	)
	f.Empty()
}

func literalsName(e *model.Enum) string {
	return names.FirstLower(e.TypeName) + "Literals"
}

func parseName(e *model.Enum) string {
	return "Parse" + e.TypeName
}
