/*
Package hwdepth estimates the combinational depth of a digital circuit, that is
the number of hops along its longest chain of dependent signals, straight from
its HDL text and without simulation or synthesis.

The analysis runs in three steps:

	edges := hwdepth.Extract(src)   // signal dependencies found in src
	g := hwdepth.Build(edges)       // producer -> consumers graph
	depth, err := g.Depth()         // longest forward path over all signals

Extraction is pattern based and only understands two kinds of statements: cell
instances and continuous assignments. Known cell types, like the full adder,
are described by a CellModel in a Library. Anything else is skipped.

Circuits with a dependency cycle have no defined depth: Graph.Depth returns a
*CycleError while ComputeDepth and Analyze report a depth of 0.
*/
package hwdepth
