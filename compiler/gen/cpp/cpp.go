// Package cpp emits the native C++ binding for a validated property set:
// a header declaring one strongly-typed getter (and setter, for writable
// properties) per property, and a source file implementing them over the
// dlopen-based libc property bridge.
package cpp

import (
	"bytes"
	"context"
	"path/filepath"
	"text/template"

	"github.com/syssam/sysprop/compiler/gen"
	"github.com/syssam/sysprop/schema"
)

// Config holds the C++ emitter settings.
type Config struct {
	// HeaderDir receives the generated header.
	HeaderDir string
	// SourceDir receives the generated source.
	SourceDir string
	// IncludeName is the include path the source uses for the header.
	// Defaults to Basename + ".h".
	IncludeName string
	// Basename names the output pair (<Basename>.h, <Basename>.cpp).
	// Conventionally the schema file name.
	Basename string
}

// Generate renders and writes the header/source pair.
func Generate(ctx context.Context, ps *gen.PropertySet, cfg Config) error {
	files, err := Files(ps, cfg)
	if err != nil {
		return err
	}
	return gen.NewWriter().Write(ctx, files...)
}

// Files renders the header/source pair without writing them.
func Files(ps *gen.PropertySet, cfg Config) ([]gen.File, error) {
	if cfg.IncludeName == "" {
		cfg.IncludeName = cfg.Basename + ".h"
	}
	data := &templateData{
		PropertySet: ps,
		IncludeName: cfg.IncludeName,
	}

	header, err := render("header", headerTemplate, data)
	if err != nil {
		return nil, err
	}
	source, err := render("source", sourceTemplate, data)
	if err != nil {
		return nil, err
	}

	return []gen.File{
		{Path: filepath.Join(cfg.HeaderDir, cfg.Basename+".h"), Content: header},
		{Path: filepath.Join(cfg.SourceDir, cfg.Basename+".cpp"), Content: source},
	}, nil
}

type templateData struct {
	*gen.PropertySet
	IncludeName string
}

// Guard returns the header include guard name.
func (d *templateData) Guard() string {
	return "SYSPROPGEN_" + d.Identifier() + "_H_"
}

// Header returns the generated-file comment block.
func (d *templateData) Header() string {
	return d.HeaderComment("//")
}

func render(name, text string, data *templateData) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, gen.NewGenerationError("cpp", name, "parse template", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, gen.NewGenerationError("cpp", name, "execute template", err)
	}
	return buf.Bytes(), nil
}

var funcs = template.FuncMap{
	"cppType":  cppType,
	"enumName": enumName,
}

// enumName returns the C++ enum class name for an enum property.
func enumName(p *gen.Property) string {
	return p.Identifier() + "_values"
}

// cppType returns the C++ value type of a property.
func cppType(p *gen.Property) string {
	scalar := map[schema.Type]string{
		schema.Boolean: "bool",
		schema.Integer: "std::int32_t",
		schema.UInt:    "std::uint32_t",
		schema.Long:    "std::int64_t",
		schema.ULong:   "std::uint64_t",
		schema.Double:  "double",
		schema.String:  "std::string",
		schema.Enum:    enumName(p),
	}[p.Type.Element()]
	if p.Type.IsList() {
		return "std::vector<" + scalar + ">"
	}
	return scalar
}
