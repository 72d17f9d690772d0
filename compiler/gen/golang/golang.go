// Package golang emits a Go binding for a validated property set: one
// package whose typed accessors shell out to the getprop/setprop tools,
// so the generated code needs no cgo.
package golang

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/sysprop/compiler/gen"
)

// Config holds the Go emitter settings.
type Config struct {
	// Dir receives the generated source file.
	Dir string
	// Package names the generated package. Defaults to the lowercased
	// property set name.
	Package string
}

// Generate renders and writes the Go binding.
func Generate(ctx context.Context, ps *gen.PropertySet, cfg Config) error {
	files, err := Files(ps, cfg)
	if err != nil {
		return err
	}
	return gen.NewWriter().Write(ctx, files...)
}

// Files renders the Go binding without writing it. The output file is
// named after the property set and formatted by the writer.
func Files(ps *gen.PropertySet, cfg Config) ([]gen.File, error) {
	if cfg.Package == "" {
		cfg.Package = strings.ToLower(ps.Name())
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment(ps.Header)

	genRuntime(f, ps)
	for _, p := range ps.Visible() {
		if p.Type.IsEnum() {
			genEnum(f, p)
		}
		genGetter(f, p)
		if p.Writable() {
			genSetter(f, p)
		}
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, gen.NewGenerationError("go", ps.Name(), "render", err)
	}

	return []gen.File{{
		Path:    filepath.Join(cfg.Dir, gen.Snake(ps.Name())+".go"),
		Content: buf.Bytes(),
		Format:  true,
	}}, nil
}
