// Command hwdepth prints the combinational depth of HDL circuit descriptions.
//
// Usage:
//
//	hwdepth [flags] [source ...]
//
// Sources are file paths or any URL supported by github.com/viant/afs. Without
// sources, a built-in 4 bit ripple carry adder is analyzed.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/db47h/hwdepth"
	"github.com/db47h/hwdepth/hwlib"
	"github.com/pkg/errors"
	"github.com/viant/afs"
)

//go:embed ripple_carry_adder.v
var example string

// exitError carries the process exit code for an error.
type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string { return e.err.Error() }

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		code := 1
		if e, ok := err.(*exitError); ok {
			code = e.code
		}
		fmt.Fprintln(os.Stderr, "hwdepth:", err)
		os.Exit(code)
	}
}

type config struct {
	cells   string
	std     bool
	path    bool
	verbose bool
	sources []string
}

func parseFlags(args []string, errW io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("hwdepth", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.StringVar(&cfg.cells, "cells", "", "load cell models from a YAML `file`")
	fs.BoolVar(&cfg.std, "std", false, "use the standard cell library (gates, adders, mux, dff)")
	fs.BoolVar(&cfg.path, "path", false, "print the critical path")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(errW, "Usage: hwdepth [flags] [source ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.sources = fs.Args()
	return &cfg, nil
}

func (c *config) library(ctx context.Context) (*hwdepth.Library, error) {
	if c.cells != "" {
		return hwlib.Load(ctx, c.cells)
	}
	if c.std {
		return hwlib.Standard(), nil
	}
	return hwdepth.DefaultLibrary(), nil
}

func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, err := parseFlags(args, errW)
	if err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &exitError{err, 2}
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: level}))

	lib, err := cfg.library(ctx)
	if err != nil {
		return err
	}
	logger.Debug("cell library", "cells", strings.Join(lib.Names(), " "))

	type source struct{ name, text string }
	var srcs []source
	if len(cfg.sources) == 0 {
		srcs = append(srcs, source{"example", example})
	}
	fs := afs.New()
	for _, name := range cfg.sources {
		data, err := fs.DownloadWithURL(ctx, name)
		if err != nil {
			return errors.Wrap(err, "read "+name)
		}
		srcs = append(srcs, source{name, string(data)})
	}

	for _, s := range srcs {
		r := hwdepth.Analyze(s.text, hwdepth.WithLibrary(lib), hwdepth.WithLogger(logger.With("source", s.name)))
		logger.Debug("analyzed", "source", s.name, "digest", fmt.Sprintf("%016x", r.Digest), "nodes", r.Nodes, "edges", r.Edges)
		if r.Cyclic {
			logger.Warn("combinational cycle, depth is undefined", "source", s.name, "cycle", strings.Join(r.Cycle, " -> "))
		}
		prefix := ""
		if len(srcs) > 1 {
			prefix = s.name + ": "
		}
		fmt.Fprintf(outW, "%sPredicted Combinational Depth: %d\n", prefix, r.Depth)
		if cfg.path && len(r.CriticalPath) > 0 {
			fmt.Fprintf(outW, "%sCritical Path: %s\n", prefix, strings.Join(r.CriticalPath, " -> "))
		}
	}
	return nil
}
