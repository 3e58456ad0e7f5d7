// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwdepth"

// DFF returns a clocked data flip flop.
//
//	Ports: clk, d, q
//	Function: q(t) = d(t-1) // where t is the current clock cycle.
//
// A flip flop has no combinational arcs: its output starts a new path.
//
func DFF() *hwdepth.CellModel {
	return &hwdepth.CellModel{Name: "dff", Ports: []string{"clk", "d", "q"}}
}
