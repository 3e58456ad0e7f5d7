package hwdepth_test

import (
	"bytes"
	"log/slog"
	"testing"

	hd "github.com/db47h/hwdepth"
	"github.com/db47h/hwdepth/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rippleCarryAdder = `
module ripple_carry_adder(
    input [3:0] A, B,
    input Cin,
    output [3:0] Sum,
    output Cout
);
    wire c1, c2, c3;

    full_adder FA0(A[0], B[0], Cin, Sum[0], c1);
    full_adder FA1(A[1], B[1], c1, Sum[1], c2);
    full_adder FA2(A[2], B[2], c2, Sum[2], c3);
    full_adder FA3(A[3], B[3], c3, Sum[3], Cout);

endmodule

module full_adder(
    input A, B, Cin,
    output Sum, Cout
);
    assign Sum = A ^ B ^ Cin;
    assign Cout = (A & B) | (B & Cin) | (A & Cin);
endmodule
`

func TestExtract(t *testing.T) {
	data := []struct {
		name  string
		src   string
		edges []hd.Edge
	}{
		{"assign", "assign d = a & b; assign e = d | c; assign f = e ^ b;",
			edges("a", "d", "b", "d", "d", "e", "c", "e", "e", "f", "b", "f")},
		{"assign_lines", "assign d = a & b;\n  assign e = d | c;\nassign f = e ^ b;\n",
			edges("a", "d", "b", "d", "d", "e", "c", "e", "e", "f", "b", "f")},
		{"assign_self", "assign q = q ^ t;", edges("t", "q")},
		{"assign_duplicates", "assign y = a & a | a;", edges("a", "y")},
		{"assign_literals", "assign y = 4'b1010 & x | 'hff ^ 8'sd3 + 12;", edges("x", "y")},
		{"assign_select", "assign y[3] = a[0] & b;", edges("a", "y", "b", "y")},
		{"assign_delay", "assign #5 y = a;", edges("a", "y")},
		{"full_adder", "full_adder fa(a, b, ci, s, co);",
			edges("a", "s", "b", "s", "ci", "s", "ci", "co", "a", "co", "b", "co")},
		{"full_adder_named", "full_adder fa(.Cout(co), .Sum(s), .A(a), .B(b), .Cin(ci));",
			edges("a", "s", "b", "s", "ci", "s", "ci", "co", "a", "co", "b", "co")},
		{"full_adder_unknown_names", "full_adder fa(.p(a), .q(b), .r(ci), .s(s), .t(co));",
			edges("a", "s", "b", "s", "ci", "s", "ci", "co", "a", "co", "b", "co")},
		{"full_adder_unconnected", "full_adder fa(.A(a), .B(), .Cin(ci), .Sum(s), .Cout(co));",
			edges("a", "s", "ci", "s", "ci", "co", "a", "co")},
		{"full_adder_bad_arity", "full_adder fa(a, b, c, d);", edges("a", "b", "b", "c", "c", "d")},
		{"generic", "nand g1(y, a, b);", edges("y", "a", "a", "b")},
		{"generic_params", "my_cell #(.W(4)) u0 (x, y);", edges("x", "y")},
		{"generic_empty_port", "foo u1(a, , b);", nil},
		{"generic_no_ports", "foo u1();", nil},
		{"comments", "// full_adder fa(a, b, c, d, e);\n/* assign x = y;\nassign z = w; */ assign q = r; // assign s = t;", edges("r", "q")},
		{"ignored", "module m(input a, output b);\nwire c1, c2;\nalways @(posedge clk) q <= d;\nendmodule\n", nil},
		{"unterminated", "assign y = a & b\nfull_adder FA0(a, b,\n  c, s, co);", nil},
		{"garbage", "this is ( not ; verilog = at all;;; ) ;", nil},
		{"empty", "", nil},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			assert.Equal(t, d.edges, hd.Extract(d.src))
		})
	}
}

func TestExtract_rippleCarryAdder(t *testing.T) {
	es := hd.Extract(rippleCarryAdder)
	require.True(t, len(es) > 6)
	assert.Equal(t, edges(
		"A[0]", "Sum[0]", "B[0]", "Sum[0]", "Cin", "Sum[0]",
		"Cin", "c1", "A[0]", "c1", "B[0]", "c1"), es[:6])

	hwtest.CheckDepth(t, nil, rippleCarryAdder, 4)
	assert.Equal(t, 4, hd.ComputeDepth(hd.Build(es)))
}

func TestExtract_adders(t *testing.T) {
	for _, bits := range []int{1, 2, 4, 8, 32} {
		hwtest.CheckDepth(t, nil, hwtest.RippleCarryAdder(bits), bits)
		hwtest.CheckDepth(t, nil, hwtest.RippleCarryAdderAssign(bits), bits)
	}
	hwtest.CompareDepth(t, nil, hwtest.RippleCarryAdder(16), hwtest.RippleCarryAdderAssign(16))
}

func TestExtractor_Fallback(t *testing.T) {
	src := "full_adder fa(a, b, ci, s, co); nand g1(y, a, b);"

	// no library: everything goes through the fallback
	x := hd.NewExtractor(nil)
	assert.Equal(t, edges("a", "b", "b", "ci", "ci", "s", "s", "co", "y", "a"), x.Extract(src))

	x = hd.NewExtractor(hd.DefaultLibrary())
	var types []string
	x.Fallback = func(typ string, signals []string) []hd.Edge {
		types = append(types, typ)
		return nil
	}
	assert.Len(t, x.Extract(src), 6)
	assert.Equal(t, []string{"nand"}, types)
}

func TestExtractor_Logger(t *testing.T) {
	var buf bytes.Buffer
	x := hd.NewExtractor(hd.DefaultLibrary())
	x.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	x.Extract("wire a;\nassign b = a;")
	assert.Contains(t, buf.String(), "statement skipped")
	assert.Contains(t, buf.String(), "line=1")
	assert.Contains(t, buf.String(), "assignments=1")
}
