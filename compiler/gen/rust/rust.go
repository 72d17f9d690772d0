// Package rust emits the Rust binding for a validated property set: one
// module with a key constant, typed getter and setter per property, built
// on rustutils::system_properties.
package rust

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/syssam/sysprop/compiler/gen"
	"github.com/syssam/sysprop/schema"
)

// Config holds the Rust emitter settings.
type Config struct {
	// Dir receives the generated mod.rs.
	Dir string
}

// Generate renders and writes the Rust module.
func Generate(ctx context.Context, ps *gen.PropertySet, cfg Config) error {
	files, err := Files(ps, cfg)
	if err != nil {
		return err
	}
	return gen.NewWriter().Write(ctx, files...)
}

// Files renders the Rust module without writing it.
func Files(ps *gen.PropertySet, cfg Config) ([]gen.File, error) {
	data := &templateData{PropertySet: ps}
	src, err := render("module", moduleTemplate, data)
	if err != nil {
		return nil, err
	}
	return []gen.File{
		{Path: filepath.Join(cfg.Dir, "mod.rs"), Content: src},
	}, nil
}

type templateData struct {
	*gen.PropertySet
}

// Header returns the generated-file comment block.
func (d *templateData) Header() string {
	return d.HeaderComment("//")
}

func render(name, text string, data *templateData) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, gen.NewGenerationError("rust", name, "parse template", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, gen.NewGenerationError("rust", name, "execute template", err)
	}
	return buf.Bytes(), nil
}

var funcs = template.FuncMap{
	"returnType": returnType,
	"acceptType": acceptType,
	"enumType":   enumType,
	"variant":    gen.Pascal,
	"constName":  constName,
	"rustID":     rustID,
	"parser":     parser,
	"formatter":  formatter,
	"setDirect":  setDirect,
}

// setDirect reports whether a setter passes its value through without a
// formatter. Only string properties write the borrowed value as is.
func setDirect(p *gen.Property) bool {
	return p.Type == schema.String
}

// enumType returns the Rust enum type name for an enum property.
func enumType(p *gen.Property) string {
	return gen.Pascal(p.Identifier()) + "Values"
}

// constName returns the name of the key constant for a property.
func constName(p *gen.Property) string {
	return strings.ToUpper(p.Identifier()) + "_PROP"
}

// rustID returns the getter name, raw-escaped when it collides with a
// keyword.
func rustID(p *gen.Property) string {
	id := p.Identifier()
	if id == "type" {
		return "r#" + id
	}
	return id
}

var rustScalars = map[schema.Type]string{
	schema.Boolean: "bool",
	schema.Integer: "i32",
	schema.UInt:    "u32",
	schema.Long:    "i64",
	schema.ULong:   "u64",
	schema.Double:  "f64",
	schema.String:  "String",
}

// returnType returns the owned Rust type a getter yields.
func returnType(p *gen.Property) string {
	scalar, ok := rustScalars[p.Type.Element()]
	if !ok {
		scalar = enumType(p)
	}
	if p.Type.IsList() {
		return "Vec<" + scalar + ">"
	}
	return scalar
}

// acceptType returns the borrowed Rust type a setter accepts.
func acceptType(p *gen.Property) string {
	scalar, ok := rustScalars[p.Type.Element()]
	if !ok {
		scalar = enumType(p)
	}
	if p.Type.IsList() {
		return "&[" + scalar + "]"
	}
	if p.Type == schema.String {
		return "&str"
	}
	return scalar
}

// parser returns the parsers_formatters function for a property type.
func parser(p *gen.Property) string {
	switch {
	case p.Type == schema.Boolean:
		return "parsers_formatters::parse_bool"
	case p.Type == schema.BooleanList:
		return "parsers_formatters::parse_bool_list"
	case p.Type.IsList():
		return "parsers_formatters::parse_list"
	}
	return "parsers_formatters::parse"
}

// formatter returns the parsers_formatters function a setter uses.
func formatter(p *gen.Property) string {
	switch p.Type {
	case schema.Boolean:
		if p.IntegerAsBool {
			return "parsers_formatters::format_bool_as_int"
		}
		return "parsers_formatters::format_bool"
	case schema.BooleanList:
		if p.IntegerAsBool {
			return "parsers_formatters::format_bool_list_as_int"
		}
		return "parsers_formatters::format_bool_list"
	}
	if p.Type.IsList() {
		return "parsers_formatters::format_list"
	}
	return "parsers_formatters::format"
}
