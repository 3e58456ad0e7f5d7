// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwdepth

import (
	"log/slog"

	"github.com/minio/highwayhash"
	"github.com/pkg/errors"
)

// Report is the result of the analysis of a circuit description.
//
type Report struct {
	Digest       uint64   // HighwayHash-64 of the source text
	Nodes        int      // signals with at least one consumer
	Edges        int      // unique dependency edges
	Depth        int      // combinational depth, 0 if Cyclic
	Cyclic       bool     // a dependency cycle was found
	Cycle        []string // one of the cycles, if Cyclic
	CriticalPath []string // one of the longest chains, nil if Cyclic
}

// An Option configures Analyze.
//
type Option func(*Extractor)

// WithLibrary sets the cell library used for extraction. The default is
// DefaultLibrary().
//
func WithLibrary(l *Library) Option {
	return func(x *Extractor) { x.Cells = l }
}

// WithFallback sets the FallbackFunc used for unknown cell types.
//
func WithFallback(f FallbackFunc) Option {
	return func(x *Extractor) { x.Fallback = f }
}

// WithLogger sets the logger.
//
func WithLogger(l *slog.Logger) Option {
	return func(x *Extractor) { x.Logger = l }
}

var hashKey = []byte("hwdepth/source-digest/0123456789")

// Digest returns the HighwayHash-64 of text.
//
func Digest(text string) uint64 {
	return highwayhash.Sum64([]byte(text), hashKey)
}

// Analyze extracts the dependency graph of text and computes its
// combinational depth.
//
func Analyze(text string, opts ...Option) Report {
	x := NewExtractor(DefaultLibrary())
	for _, o := range opts {
		o(x)
	}
	g := Build(x.Extract(text))
	r := Report{
		Digest: Digest(text),
		Nodes:  g.Len(),
		Edges:  g.EdgeCount(),
	}
	path, err := g.CriticalPath()
	var ce *CycleError
	if errors.As(err, &ce) {
		r.Cyclic = true
		r.Cycle = ce.Path
		x.logger().Debug("combinational cycle", "cycle", ce.Path)
		return r
	}
	r.CriticalPath = path
	if len(path) > 0 {
		r.Depth = len(path) - 1
	}
	return r
}
