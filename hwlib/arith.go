// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwdepth"

// HalfAdder returns a half adder.
//
//	Ports: a, b, s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder() *hwdepth.CellModel {
	return &hwdepth.CellModel{
		Name:  "half_adder",
		Ports: []string{pA, pB, "s", "c"},
		Arcs:  arcs([]string{pA, pB}, []string{"s", "c"}),
	}
}

// FullAdder returns a full adder. This is the same model as the one found in
// hwdepth.DefaultLibrary.
//
//	Ports: A, B, Cin, Sum, Cout
//	Function: Sum = lsb(A + B + Cin)
//	          Cout = msb(A + B + Cin)
//
func FullAdder() *hwdepth.CellModel {
	return hwdepth.FullAdder()
}
