// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwdepth"

// Mux returns a multiplexer.
//
//	Ports: a, b, sel, out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux() *hwdepth.CellModel {
	return &hwdepth.CellModel{
		Name:  "mux",
		Ports: []string{pA, pB, pSel, pOut},
		Arcs:  arcs([]string{pA, pB, pSel}, []string{pOut}),
	}
}

// DMux returns a demultiplexer.
//
//	Ports: in, sel, a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux() *hwdepth.CellModel {
	return &hwdepth.CellModel{
		Name:  "dmux",
		Ports: []string{pIn, pSel, pA, pB},
		Arcs:  arcs([]string{pIn, pSel}, []string{pA, pB}),
	}
}
