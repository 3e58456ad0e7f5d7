// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"fmt"
	"strings"
)

// carry returns the name of the carry signal between stage i-1 and stage i of
// an n bits ripple carry adder.
func carry(i, n int) string {
	switch i {
	case 0:
		return "Cin"
	case n:
		return "Cout"
	}
	return fmt.Sprintf("c%d", i)
}

// RippleCarryAdder returns the structural description of a bits wide ripple
// carry adder built from full_adder instances. Its combinational depth is
// bits.
//
func RippleCarryAdder(bits int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module ripple_carry_adder(\n")
	fmt.Fprintf(&b, "    input [%d:0] A, B,\n    input Cin,\n", bits-1)
	fmt.Fprintf(&b, "    output [%d:0] Sum,\n    output Cout\n);\n", bits-1)
	if bits > 1 {
		ws := make([]string, bits-1)
		for i := range ws {
			ws[i] = carry(i+1, bits)
		}
		fmt.Fprintf(&b, "    wire %s;\n\n", strings.Join(ws, ", "))
	}
	for i := 0; i < bits; i++ {
		fmt.Fprintf(&b, "    full_adder FA%d(A[%d], B[%d], %s, Sum[%d], %s);\n",
			i, i, i, carry(i, bits), i, carry(i+1, bits))
	}
	b.WriteString("endmodule\n")
	return b.String()
}

// RippleCarryAdderAssign returns a bits wide ripple carry adder described with
// continuous assignments only. Each carry is a single assignment, so the
// combinational depth is bits.
//
func RippleCarryAdderAssign(bits int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module ripple_carry_adder_flat(input [%d:0] a, b, input Cin, output [%d:0] s, output Cout);\n", bits-1, bits-1)
	for i := 0; i < bits; i++ {
		a, bb, ci, co := fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i), carry(i, bits), carry(i+1, bits)
		fmt.Fprintf(&b, "    assign s%d = %s ^ %s ^ %s;\n", i, a, bb, ci)
		fmt.Fprintf(&b, "    assign %s = (%s & %s) | (%s & %s) | (%s & %s);\n", co, a, bb, bb, ci, a, ci)
	}
	b.WriteString("endmodule\n")
	return b.String()
}
