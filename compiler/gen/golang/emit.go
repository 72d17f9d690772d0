package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/sysprop/compiler/gen"
	"github.com/syssam/sysprop/schema"
)

var goScalars = map[schema.Type]string{
	schema.Boolean: "bool",
	schema.Integer: "int32",
	schema.UInt:    "uint32",
	schema.Long:    "int64",
	schema.ULong:   "uint64",
	schema.Double:  "float64",
	schema.String:  "string",
}

// enumName returns the Go type name for an enum property.
func enumName(p *gen.Property) string {
	return gen.Pascal(p.Identifier()) + "Values"
}

// goType returns the Go type of a property.
func goType(p *gen.Property) jen.Code {
	var elem jen.Code
	if scalar, ok := goScalars[p.Type.Element()]; ok {
		elem = jen.Id(scalar)
	} else {
		elem = jen.Id(enumName(p))
	}
	if p.Type.IsList() {
		return jen.Index().Add(elem)
	}
	return elem
}

// zeroValue returns the expression a getter returns when the property is
// unset or malformed.
func zeroValue(p *gen.Property) jen.Code {
	if p.Type.IsList() {
		return jen.Nil()
	}
	switch p.Type {
	case schema.Boolean:
		return jen.False()
	case schema.String, schema.Enum:
		return jen.Lit("")
	}
	return jen.Lit(0)
}

// parserName returns the helper parsing one element of a property.
func parserName(p *gen.Property) string {
	switch p.Type.Element() {
	case schema.Boolean:
		return "parseBool"
	case schema.Integer:
		return "parseInt32"
	case schema.UInt:
		return "parseUInt32"
	case schema.Long:
		return "parseInt64"
	case schema.ULong:
		return "parseUInt64"
	case schema.Double:
		return "parseFloat64"
	case schema.String:
		return "parseString"
	}
	return "parse" + enumName(p)
}

// formatterName returns the helper formatting one numeric element, or ""
// when the element needs no named helper.
func formatterName(t schema.Type) string {
	switch t {
	case schema.Integer:
		return "formatInt32"
	case schema.UInt:
		return "formatUInt32"
	case schema.Long:
		return "formatInt64"
	case schema.ULong:
		return "formatUInt64"
	case schema.Double:
		return "formatFloat64"
	}
	return ""
}

type usage struct {
	set        bool
	parseList  bool
	formatList bool
	boolAsInt  bool
	parsers    map[schema.Type]bool
	formatters map[schema.Type]bool
}

func collectUsage(ps *gen.PropertySet) usage {
	u := usage{
		parsers:    map[schema.Type]bool{},
		formatters: map[schema.Type]bool{},
	}
	for _, p := range ps.Visible() {
		elem := p.Type.Element()
		if elem != schema.Enum && (elem != schema.String || p.Type.IsList()) {
			u.parsers[elem] = true
		}
		if p.Type.IsList() {
			u.parseList = true
		}
		if !p.Writable() {
			continue
		}
		u.set = true
		if p.Type.IsList() && elem != schema.String {
			u.formatList = true
		}
		if formatterName(elem) != "" {
			u.formatters[elem] = true
		}
		if elem == schema.Boolean && p.IntegerAsBool {
			u.boolAsInt = true
		}
	}
	return u
}

// genRuntime emits the property plumbing shared by all accessors:
// getprop/setprop wrappers and the parse/format helpers the visible
// properties actually need.
func genRuntime(f *jen.File, ps *gen.PropertySet) {
	u := collectUsage(ps)

	f.Comment("getProp reads a property. Unset properties read as the empty string.")
	f.Func().Id("getProp").Params(jen.Id("key").String()).Params(jen.String(), jen.Bool()).Block(
		jen.List(jen.Id("out"), jen.Err()).Op(":=").Qual("os/exec", "Command").Call(jen.Lit("getprop"), jen.Id("key")).Dot("Output").Call(),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Lit(""), jen.False()),
		),
		jen.Id("s").Op(":=").Qual("strings", "TrimSuffix").Call(jen.String().Call(jen.Id("out")), jen.Lit("\n")),
		jen.If(jen.Id("s").Op("==").Lit("")).Block(
			jen.Return(jen.Lit(""), jen.False()),
		),
		jen.Return(jen.Id("s"), jen.True()),
	)

	if u.set {
		f.Func().Id("setProp").Params(jen.Id("key"), jen.Id("value").String()).Error().Block(
			jen.Return(jen.Qual("os/exec", "Command").Call(jen.Lit("setprop"), jen.Id("key"), jen.Id("value")).Dot("Run").Call()),
		)
	}

	if u.parsers[schema.Boolean] {
		f.Func().Id("parseBool").Params(jen.Id("s").String()).Params(jen.Bool(), jen.Bool()).Block(
			jen.List(jen.Id("v"), jen.Err()).Op(":=").Qual("strconv", "ParseBool").Call(jen.Id("s")),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.False(), jen.False()),
			),
			jen.Return(jen.Id("v"), jen.True()),
		)
	}
	if u.parsers[schema.Integer] {
		genParseInt(f, "parseInt32", "int32", "ParseInt", 32)
	}
	if u.parsers[schema.UInt] {
		genParseInt(f, "parseUInt32", "uint32", "ParseUint", 32)
	}
	if u.parsers[schema.Long] {
		genParseInt(f, "parseInt64", "int64", "ParseInt", 64)
	}
	if u.parsers[schema.ULong] {
		genParseInt(f, "parseUInt64", "uint64", "ParseUint", 64)
	}
	if u.parsers[schema.Double] {
		f.Func().Id("parseFloat64").Params(jen.Id("s").String()).Params(jen.Float64(), jen.Bool()).Block(
			jen.List(jen.Id("v"), jen.Err()).Op(":=").Qual("strconv", "ParseFloat").Call(jen.Id("s"), jen.Lit(64)),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Lit(0), jen.False()),
			),
			jen.Return(jen.Id("v"), jen.True()),
		)
	}
	if u.parsers[schema.String] {
		f.Func().Id("parseString").Params(jen.Id("s").String()).Params(jen.String(), jen.Bool()).Block(
			jen.Return(jen.Id("s"), jen.True()),
		)
	}

	if u.parseList {
		f.Func().Id("parseList").Types(jen.Id("T").Any()).Params(
			jen.Id("s").String(),
			jen.Id("parse").Func().Params(jen.String()).Params(jen.Id("T"), jen.Bool()),
		).Params(jen.Index().Id("T"), jen.Bool()).Block(
			jen.Id("elements").Op(":=").Qual("strings", "Split").Call(jen.Id("s"), jen.Lit(",")),
			jen.Id("ret").Op(":=").Make(jen.Index().Id("T"), jen.Lit(0), jen.Len(jen.Id("elements"))),
			jen.For(jen.List(jen.Id("_"), jen.Id("element")).Op(":=").Range().Id("elements")).Block(
				jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id("parse").Call(jen.Id("element")),
				jen.If(jen.Op("!").Id("ok")).Block(
					jen.Return(jen.Nil(), jen.False()),
				),
				jen.Id("ret").Op("=").Append(jen.Id("ret"), jen.Id("v")),
			),
			jen.Return(jen.Id("ret"), jen.True()),
		)
	}

	if u.formatList {
		f.Func().Id("formatList").Types(jen.Id("T").Any()).Params(
			jen.Id("vs").Index().Id("T"),
			jen.Id("format").Func().Params(jen.Id("T")).String(),
		).String().Block(
			jen.Id("parts").Op(":=").Make(jen.Index().String(), jen.Lit(0), jen.Len(jen.Id("vs"))),
			jen.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Id("vs")).Block(
				jen.Id("parts").Op("=").Append(jen.Id("parts"), jen.Id("format").Call(jen.Id("v"))),
			),
			jen.Return(jen.Qual("strings", "Join").Call(jen.Id("parts"), jen.Lit(","))),
		)
	}

	if u.boolAsInt {
		f.Func().Id("formatBoolAsInt").Params(jen.Id("v").Bool()).String().Block(
			jen.If(jen.Id("v")).Block(
				jen.Return(jen.Lit("1")),
			),
			jen.Return(jen.Lit("0")),
		)
	}
	if u.formatters[schema.Integer] {
		genFormatInt(f, "formatInt32", "int32", "FormatInt", "int64")
	}
	if u.formatters[schema.UInt] {
		genFormatInt(f, "formatUInt32", "uint32", "FormatUint", "uint64")
	}
	if u.formatters[schema.Long] {
		genFormatInt(f, "formatInt64", "int64", "FormatInt", "int64")
	}
	if u.formatters[schema.ULong] {
		genFormatInt(f, "formatUInt64", "uint64", "FormatUint", "uint64")
	}
	if u.formatters[schema.Double] {
		f.Func().Id("formatFloat64").Params(jen.Id("v").Float64()).String().Block(
			jen.Return(jen.Qual("strconv", "FormatFloat").Call(jen.Id("v"), jen.LitRune('g'), jen.Lit(-1), jen.Lit(64))),
		)
	}
}

func genParseInt(f *jen.File, name, typ, fn string, bits int) {
	f.Func().Id(name).Params(jen.Id("s").String()).Params(jen.Id(typ), jen.Bool()).Block(
		jen.List(jen.Id("v"), jen.Err()).Op(":=").Qual("strconv", fn).Call(jen.Id("s"), jen.Lit(10), jen.Lit(bits)),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Lit(0), jen.False()),
		),
		jen.Return(jen.Id(typ).Call(jen.Id("v")), jen.True()),
	)
}

func genFormatInt(f *jen.File, name, typ, fn, conv string) {
	f.Func().Id(name).Params(jen.Id("v").Id(typ)).String().Block(
		jen.Return(jen.Qual("strconv", fn).Call(jen.Id(conv).Call(jen.Id("v")), jen.Lit(10))),
	)
}

// genEnum emits the enum type, its value constants and its parser.
func genEnum(f *jen.File, p *gen.Property) {
	name := enumName(p)
	values := p.EnumValues()

	f.Commentf("%s enumerates the values of %q.", name, p.Key())
	f.Type().Id(name).String()

	f.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range values {
			g.Id(name + gen.Pascal(v)).Id(name).Op("=").Lit(v)
		}
	})

	f.Func().Id("parse"+name).Params(jen.Id("s").String()).Params(jen.Id(name), jen.Bool()).Block(
		jen.Switch(jen.Id(name).Call(jen.Id("s"))).Block(
			jen.CaseFunc(func(g *jen.Group) {
				for _, v := range values {
					g.Id(name + gen.Pascal(v))
				}
			}).Block(
				jen.Return(jen.Id(name).Call(jen.Id("s")), jen.True()),
			),
		),
		jen.Return(jen.Lit(""), jen.False()),
	)
}

// genGetter emits the typed read accessor for a property.
func genGetter(f *jen.File, p *gen.Property) {
	name := gen.Pascal(p.Identifier())
	if p.Deprecated {
		f.Commentf("Deprecated: %s reads %q, which is deprecated.", name, p.Key())
	} else {
		f.Commentf("%s returns the value of %q if it is set and well formed.", name, p.Key())
	}

	stmts := []jen.Code{
		jen.List(jen.Id("s"), jen.Id("ok")).Op(":=").Id("getProp").Call(jen.Lit(p.Key())),
	}
	if p.LegacyName != "" {
		stmts = append(stmts, jen.If(jen.Op("!").Id("ok")).Block(
			jen.List(jen.Id("s"), jen.Id("ok")).Op("=").Id("getProp").Call(jen.Lit(p.LegacyName)),
		))
	}
	stmts = append(stmts,
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(zeroValue(p), jen.False()),
		),
		parseReturn(p),
	)

	f.Func().Id(name).Params().Params(goType(p), jen.Bool()).Block(stmts...)
}

// parseReturn returns the getter's final statement converting the raw
// string into the property type.
func parseReturn(p *gen.Property) jen.Code {
	if p.Type.IsList() {
		return jen.Return(jen.Id("parseList").Call(jen.Id("s"), jen.Id(parserName(p))))
	}
	if p.Type == schema.String {
		return jen.Return(jen.Id("s"), jen.True())
	}
	return jen.Return(jen.Id(parserName(p)).Call(jen.Id("s")))
}

// genSetter emits the write accessor for a writable property.
func genSetter(f *jen.File, p *gen.Property) {
	name := gen.Pascal(p.Identifier())
	if p.Deprecated {
		f.Commentf("Deprecated: Set%s writes %q, which is deprecated.", name, p.Key())
	} else {
		f.Commentf("Set%s writes %q.", name, p.Key())
	}
	f.Func().Id("Set" + name).Params(jen.Id("v").Add(goType(p))).Error().Block(
		jen.Return(jen.Id("setProp").Call(jen.Lit(p.Key()), valueExpr(p))),
	)
}

// valueExpr returns the expression formatting a setter's value.
func valueExpr(p *gen.Property) jen.Code {
	elem := p.Type.Element()

	if p.Type.IsList() {
		switch elem {
		case schema.String:
			return jen.Qual("strings", "Join").Call(jen.Id("v"), jen.Lit(","))
		case schema.Boolean:
			if p.IntegerAsBool {
				return jen.Id("formatList").Call(jen.Id("v"), jen.Id("formatBoolAsInt"))
			}
			return jen.Id("formatList").Call(jen.Id("v"), jen.Qual("strconv", "FormatBool"))
		case schema.Enum:
			return jen.Id("formatList").Call(jen.Id("v"), jen.Func().Params(jen.Id("e").Id(enumName(p))).String().Block(
				jen.Return(jen.String().Call(jen.Id("e"))),
			))
		}
		return jen.Id("formatList").Call(jen.Id("v"), jen.Id(formatterName(elem)))
	}

	switch p.Type {
	case schema.String:
		return jen.Id("v")
	case schema.Enum:
		return jen.String().Call(jen.Id("v"))
	case schema.Boolean:
		if p.IntegerAsBool {
			return jen.Id("formatBoolAsInt").Call(jen.Id("v"))
		}
		return jen.Qual("strconv", "FormatBool").Call(jen.Id("v"))
	}
	return jen.Id(formatterName(p.Type)).Call(jen.Id("v"))
}
