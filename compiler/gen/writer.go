package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// File is a single rendered output file.
type File struct {
	// Path is the output location. Parent directories are created as
	// needed.
	Path string
	// Content is the rendered source text.
	Content []byte
	// Format runs the content through goimports before writing. Set for
	// Go outputs only; other languages are written as rendered.
	Format bool
}

// Writer persists rendered files to disk with parallel execution.
type Writer struct {
	workers int

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks write performance.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the write metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Write persists all files. Each file is written once; a failure aborts
// the remaining writes and is returned as a *GenerationError.
func (w *Writer) Write(ctx context.Context, files ...File) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)

	for _, f := range files {
		f := f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}

	return eg.Wait()
}

// writeFile writes a single file, formatting Go output first.
func (w *Writer) writeFile(f File) error {
	content := f.Content
	if f.Format {
		formatted, err := imports.Process(f.Path, content, nil)
		if err != nil {
			return NewGenerationError("go", f.Path, "format", err)
		}
		content = formatted
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return NewGenerationError("", f.Path, fmt.Sprintf("Creating directory to %s failed", filepath.Dir(f.Path)), err)
	}

	if err := os.WriteFile(f.Path, content, 0o644); err != nil {
		return NewGenerationError("", f.Path, fmt.Sprintf("Writing generated file to %s failed", f.Path), err)
	}

	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(content))
	w.mu.Unlock()

	return nil
}
