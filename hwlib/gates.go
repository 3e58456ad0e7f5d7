// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of cell models for hwdepth.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	"strconv"

	"github.com/db47h/hwdepth"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

// make a list of numbered pin names
func pins(n int, name string) []string {
	b := make([]string, n)
	for i := range b {
		b[i] = name + strconv.Itoa(i)
	}
	return b
}

// arcs returns arcs from every input to every output.
func arcs(ins, outs []string) []hwdepth.Arc {
	a := make([]hwdepth.Arc, 0, len(ins)*len(outs))
	for _, o := range outs {
		for _, i := range ins {
			a = append(a, hwdepth.Arc{From: i, To: o})
		}
	}
	return a
}

// Gate returns the model of a Verilog style logic gate primitive with the
// given number of inputs.
//
//	Ports: out, in0, in1, ..., in<inputs-1>
//	Arcs: in* -> out
//
func Gate(name string, inputs int) *hwdepth.CellModel {
	ins := pins(inputs, pIn)
	return &hwdepth.CellModel{
		Name:  name,
		Ports: append([]string{pOut}, ins...),
		Arcs:  arcs(ins, []string{pOut}),
	}
}

// MaxGateInputs is the largest gate input count registered by Standard.
//
const MaxGateInputs = 8

// And returns a 2 input AND gate.
//
//	Ports: out, in0, in1
//
func And() *hwdepth.CellModel { return Gate("and", 2) }

// Nand returns a 2 input NAND gate.
//
//	Ports: out, in0, in1
//
func Nand() *hwdepth.CellModel { return Gate("nand", 2) }

// Or returns a 2 input OR gate.
//
//	Ports: out, in0, in1
//
func Or() *hwdepth.CellModel { return Gate("or", 2) }

// Nor returns a 2 input NOR gate.
//
//	Ports: out, in0, in1
//
func Nor() *hwdepth.CellModel { return Gate("nor", 2) }

// Xor returns a 2 input XOR gate.
//
//	Ports: out, in0, in1
//
func Xor() *hwdepth.CellModel { return Gate("xor", 2) }

// Xnor returns a 2 input XNOR gate.
//
//	Ports: out, in0, in1
//
func Xnor() *hwdepth.CellModel { return Gate("xnor", 2) }

// Not returns a NOT gate.
//
//	Ports: out, in
//
func Not() *hwdepth.CellModel {
	return &hwdepth.CellModel{Name: "not", Ports: []string{pOut, pIn}, Arcs: []hwdepth.Arc{{From: pIn, To: pOut}}}
}

// Buf returns a buffer.
//
//	Ports: out, in
//
func Buf() *hwdepth.CellModel {
	return &hwdepth.CellModel{Name: "buf", Ports: []string{pOut, pIn}, Arcs: []hwdepth.Arc{{From: pIn, To: pOut}}}
}

var gateNames = []string{"and", "nand", "or", "nor", "xor", "xnor"}
