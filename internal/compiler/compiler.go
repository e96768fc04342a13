// Package compiler runs the front half of the pipeline: it parses source
// files into one program and verifies its directives.
package compiler

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/HicaroD/razen/internal/ast"
	"github.com/HicaroD/razen/internal/config"
	"github.com/HicaroD/razen/internal/diagnostics"
	"github.com/HicaroD/razen/internal/host"
	"github.com/HicaroD/razen/internal/logger"
	"github.com/HicaroD/razen/internal/parser"
	"github.com/HicaroD/razen/internal/verifier"
)

const SOURCE_EXT = ".as"

type Result struct {
	Program   *ast.Program
	Host      *host.Host
	Verifier  *verifier.Verifier
	Collector *diagnostics.Collector
}

type Compiler struct {
	options *config.CompilerOptions
	log     *zap.Logger
	metrics *verifier.Metrics
}

type Option func(*Compiler)

// WithLogger overrides the logger carried by the context passed to the
// compile methods.
func WithLogger(log *zap.Logger) Option {
	return func(c *Compiler) { c.log = log }
}

func WithMetrics(metrics *verifier.Metrics) Option {
	return func(c *Compiler) { c.metrics = metrics }
}

func New(options *config.CompilerOptions, opts ...Option) *Compiler {
	if options == nil {
		options = config.NewCompilerOptions()
	}
	c := &Compiler{options: options}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SourceFiles expands directories into the source files below them, in
// lexical order. Plain files are kept whatever their extension.
func SourceFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		var found []string
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p == path && !d.IsDir() {
				found = append(found, p)
				return nil
			}
			if !d.IsDir() && strings.HasSuffix(p, SOURCE_EXT) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "listing %s", path)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// CompileFiles parses every file into one program and verifies it. Every
// file is parsed even after a failure so that all syntax errors are
// reported; the returned error combines them. The result is returned
// together with the error so callers can print the diagnostics gathered so
// far.
func (c *Compiler) CompileFiles(ctx context.Context, paths []string) (*Result, error) {
	log := c.logger(ctx)
	result := &Result{
		Program:   ast.NewProgram(),
		Collector: diagnostics.NewWithLogger(log),
	}

	files, err := SourceFiles(paths)
	if err != nil {
		return result, err
	}

	var parseErrs error
	for _, file := range files {
		if _, err := parser.ParseFile(result.Program, file, result.Collector); err != nil {
			parseErrs = multierr.Append(parseErrs, errors.Wrapf(err, "parsing %s", file))
		}
	}
	if parseErrs != nil {
		return result, parseErrs
	}
	return result, c.verify(ctx, log, result)
}

// CompileSource is CompileFiles for in-memory sources, keyed by file name.
func (c *Compiler) CompileSource(ctx context.Context, name string, src []byte) (*Result, error) {
	log := c.logger(ctx)
	result := &Result{
		Program:   ast.NewProgram(),
		Collector: diagnostics.NewWithLogger(log),
	}
	if _, err := parser.ParseSource(result.Program, &ast.Loc{Name: name}, src, result.Collector); err != nil {
		return result, errors.Wrapf(err, "parsing %s", name)
	}
	return result, c.verify(ctx, log, result)
}

func (c *Compiler) logger(ctx context.Context) *zap.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.FromContext(ctx)
}

func (c *Compiler) verify(ctx context.Context, log *zap.Logger, result *Result) error {
	h, err := host.New(c.options, result.Collector, log)
	if err != nil {
		return errors.Wrap(err, "creating host")
	}
	result.Host = h
	result.Verifier = verifier.New(h, verifier.WithMetrics(c.metrics))

	log.Debug("verifying program", zap.Int("units", len(result.Program.Units)))
	if err := result.Verifier.Verify(ctx, result.Program); err != nil {
		return err
	}
	if result.Collector.HasErrors() {
		return diagnostics.COMPILER_ERROR_FOUND
	}
	return nil
}
