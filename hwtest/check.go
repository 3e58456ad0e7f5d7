// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing depth estimation.
//
package hwtest

import (
	"strings"
	"testing"

	"github.com/db47h/hwdepth"
)

// CheckDepth extracts the dependency graph of src with x and checks that its
// combinational depth is want. A nil x uses hwdepth.DefaultLibrary.
//
// Depth is computed twice on the same graph to catch state leaking from one
// computation to the next.
//
func CheckDepth(t testing.TB, x *hwdepth.Extractor, src string, want int) {
	t.Helper()
	if x == nil {
		x = hwdepth.NewExtractor(hwdepth.DefaultLibrary())
	}
	g := hwdepth.Build(x.Extract(src))
	for i := 0; i < 2; i++ {
		got, err := g.Depth()
		if err != nil {
			t.Fatalf("run #%d: %v", i, err)
		}
		if got != want {
			t.Fatalf("run #%d: depth = %d, expected %d", i, got, want)
		}
	}
}

// CompareDepth checks that two descriptions of the same circuit have the same
// combinational depth and critical path length.
//
func CompareDepth(t testing.TB, x *hwdepth.Extractor, src1, src2 string) {
	t.Helper()
	if x == nil {
		x = hwdepth.NewExtractor(hwdepth.DefaultLibrary())
	}
	g1, g2 := hwdepth.Build(x.Extract(src1)), hwdepth.Build(x.Extract(src2))
	p1, err := g1.CriticalPath()
	if err != nil {
		t.Fatal(err)
	}
	p2, err := g2.CriticalPath()
	if err != nil {
		t.Fatal(err)
	}
	if len(p1) != len(p2) {
		t.Fatalf("critical paths differ:\n%s\n%s", strings.Join(p1, " -> "), strings.Join(p2, " -> "))
	}
	t.Logf("depth %d: %s", len(p1)-1, strings.Join(p1, " -> "))
}
