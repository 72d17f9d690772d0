// Package java emits the Java binding for a validated property set: a
// final accessor class backed by per-property native methods, and the
// JNI library implementing those natives over the libc property bridge.
package java

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/syssam/sysprop/compiler/gen"
	"github.com/syssam/sysprop/schema"
)

// Config holds the Java emitter settings.
type Config struct {
	// JavaDir receives the generated class, under its package directories.
	JavaDir string
	// JNIDir receives the generated JNI source.
	JNIDir string
}

// Generate renders and writes the class/JNI pair.
func Generate(ctx context.Context, ps *gen.PropertySet, cfg Config) error {
	files, err := Files(ps, cfg)
	if err != nil {
		return err
	}
	return gen.NewWriter().Write(ctx, files...)
}

// Files renders the class/JNI pair without writing them. The class lands
// in <JavaDir>/<package dirs>/<ClassName>.java, the JNI source in
// <JNIDir>/<ClassName>_jni.cpp.
func Files(ps *gen.PropertySet, cfg Config) ([]gen.File, error) {
	data := &templateData{PropertySet: ps}

	class, err := render("class", classTemplate, data)
	if err != nil {
		return nil, err
	}
	jni, err := render("jni", jniTemplate, data)
	if err != nil {
		return nil, err
	}

	pkgDir := filepath.Join(strings.Split(ps.Package(), ".")...)
	return []gen.File{
		{Path: filepath.Join(cfg.JavaDir, pkgDir, ps.Name()+".java"), Content: class},
		{Path: filepath.Join(cfg.JNIDir, ps.Name()+"_jni.cpp"), Content: jni},
	}, nil
}

type templateData struct {
	*gen.PropertySet
}

// Header returns the generated-file comment block.
func (d *templateData) Header() string {
	return d.HeaderComment("//")
}

// ClassPath returns the JNI-form class name, with slashes for dots.
func (d *templateData) ClassPath() string {
	return strings.ReplaceAll(d.Module, ".", "/")
}

func render(name, text string, data *templateData) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, gen.NewGenerationError("java", name, "parse template", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, gen.NewGenerationError("java", name, "execute template", err)
	}
	return buf.Bytes(), nil
}

var funcs = template.FuncMap{
	"javaType":   javaType,
	"enumName":   enumName,
	"annotation": annotation,
	"parseExpr":  parseExpr,
	"setExpr":    setExpr,
}

// enumName returns the Java enum type name for an enum property.
func enumName(p *gen.Property) string {
	return p.Identifier() + "_values"
}

var javaScalars = map[schema.Type]string{
	schema.Boolean: "Boolean",
	schema.Integer: "Integer",
	schema.UInt:    "Integer",
	schema.Long:    "Long",
	schema.ULong:   "Long",
	schema.Double:  "Double",
	schema.String:  "String",
}

// javaType returns the boxed Java type of a property.
func javaType(p *gen.Property) string {
	scalar, ok := javaScalars[p.Type.Element()]
	if !ok {
		scalar = enumName(p)
	}
	if p.Type.IsList() {
		return "List<" + scalar + ">"
	}
	return scalar
}

// annotation returns the API-surface annotation for a property, or "".
// System-scoped properties surface through the system API; internal ones
// are hidden from the SDK.
func annotation(p *gen.Property) string {
	switch p.Scope {
	case schema.System:
		return "@SystemApi"
	case schema.Internal:
		return "/** @hide */"
	}
	return ""
}

var javaParsers = map[schema.Type]string{
	schema.Boolean: "tryParseBoolean",
	schema.Integer: "tryParseInteger",
	schema.UInt:    "tryParseUInt",
	schema.Long:    "tryParseLong",
	schema.ULong:   "tryParseULong",
	schema.Double:  "tryParseDouble",
	schema.String:  "tryParseString",
}

// parseExpr returns the expression converting a property's raw native
// value into its Java type.
func parseExpr(p *gen.Property) string {
	native := "native_" + p.Identifier() + "_get()"
	if p.Type.IsEnum() {
		fn := "tryParseEnum"
		if p.Type.IsList() {
			fn = "tryParseEnumList"
		}
		return fn + "(" + enumName(p) + ".class, " + native + ")"
	}
	parser := javaParsers[p.Type.Element()]
	if p.Type.IsList() {
		return "tryParseList(v -> " + parser + "(v), " + native + ")"
	}
	return parser + "(" + native + ")"
}

// setExpr returns the expression formatting a property value for the
// native setter.
func setExpr(p *gen.Property) string {
	if p.Type.IsList() {
		switch p.Type.Element() {
		case schema.UInt:
			return "formatUIntList(value)"
		case schema.ULong:
			return "formatULongList(value)"
		}
		return "formatList(value)"
	}
	switch p.Type {
	case schema.UInt:
		return "Integer.toUnsignedString(value)"
	case schema.ULong:
		return "Long.toUnsignedString(value)"
	}
	return "value.toString()"
}
