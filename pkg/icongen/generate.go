// Package icongen renders one source SVG into a batch of square PNG
// icons.
//
// The batch is strictly sequential: each target is rasterized, encoded,
// re-encoded with best compression, and written before the next target
// starts. A failing target is recorded in the report and never aborts
// the rest of the batch. Only setup problems (missing source,
// unwritable output directory) fail the whole run, before any target is
// attempted.
package icongen

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/icongen/raster"
)

// Result records the outcome of one target. Path is set only on
// success; Err is set only on failure.
type Result struct {
	Target Target
	Path   string
	Err    error
}

// OK reports whether the target was generated and written.
func (r Result) OK() bool { return r.Err == nil }

// Report collects per-target results for one generation run, in target
// order.
type Report struct {
	Source  string
	Results []Result
}

// Succeeded returns the number of targets that were written.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of targets that errored.
func (r *Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// Generator runs icon generation batches.
//
// The Generator is stateless apart from its logger and hook - every run
// reads the source and regenerates all targets from scratch. OnResult,
// if set, is called with each result as it is produced; the CLI uses it
// for per-target status lines.
type Generator struct {
	Logger   *log.Logger
	OnResult func(Result)
}

// New creates a generator. If logger is nil, log.Default() is used.
func New(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{Logger: logger}
}

// Generate renders sourcePath at every target size and writes the PNGs
// into outDir, overwriting existing files.
//
// The returned report holds one result per target in order. A non-nil
// error is returned only for setup failures (source missing or
// unreadable, output directory not creatable) or context cancellation;
// per-target failures are recorded in the report instead.
func (g *Generator) Generate(ctx context.Context, sourcePath string, targets []Target, outDir string) (*Report, error) {
	svg, err := os.ReadFile(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "source not found: %s", sourcePath)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read source %s", sourcePath)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWrite, err, "create output directory %s", outDir)
	}

	g.Logger.Debug("starting batch", "source", sourcePath, "targets", len(targets), "out", outDir)

	report := &Report{Source: sourcePath, Results: make([]Result, 0, len(targets))}
	for _, tgt := range targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := g.generateOne(svg, tgt, outDir)
		report.Results = append(report.Results, res)

		if res.OK() {
			g.Logger.Debug("generated icon", "file", res.Path, "size", tgt.Size)
		} else {
			g.Logger.Error("icon failed", "file", tgt.Filename, "size", tgt.Size, "err", res.Err)
		}
		if g.OnResult != nil {
			g.OnResult(res)
		}
	}

	g.Logger.Info("batch complete", "succeeded", report.Succeeded(), "failed", report.Failed())
	return report, nil
}

// generateOne produces a single icon: rasterize, encode, optimize,
// write. Any error is returned in the result, leaving no partial file
// behind.
func (g *Generator) generateOne(svg []byte, tgt Target, outDir string) Result {
	res := Result{Target: tgt}

	if err := tgt.Validate(); err != nil {
		res.Err = err
		return res
	}

	img, err := raster.Rasterize(svg, tgt.Size)
	if err != nil {
		res.Err = err
		return res
	}

	data, err := raster.EncodePNG(img)
	if err != nil {
		res.Err = err
		return res
	}

	optimized, err := raster.ReencodePNG(data)
	if err != nil {
		res.Err = err
		return res
	}

	path := filepath.Join(outDir, tgt.Filename)
	if err := writeAtomic(path, optimized); err != nil {
		res.Err = err
		return res
	}

	res.Path = path
	return res
}

// writeAtomic writes data to path via a temp file and rename, so a
// failed write never leaves a truncated icon behind.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "create temp file for %s", path)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeWrite, err, "close %s", path)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeWrite, err, "rename into %s", path)
	}
	return nil
}
