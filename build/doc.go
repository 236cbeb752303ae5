/*
Package build helps producers to construct parse trees bottom-up.

A Builder mirrors the actions of a shift-reduce parser: every token the parser
shifts becomes a leaf, every reduction of a grammar rule becomes an interior
node, adopting the topmost nodes of the builder's stack as its children.

	b := build.NewBuilder("input.txt", ids, symtab)
	b.Shift(tokenA)
	b.Shift(tokenB)
	b.Reduce(ruleSym, 2)   // pops both leaves and pushes an interior node
	t, err := b.Tree()

Reductions of empty rules (n = 0) receive a single epsilon leaf, thus a builder
never creates interior nodes without children.

Function Lines is a simple producer which does not need a grammar: it arranges
the tokens of an input by source line.

Configuration

If the global configuration flag `panic-on-malformed-tree` is set, a builder
will panic instead of returning an error. This is intended for debugging
producers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package build

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ptree.build'.
func tracer() tracing.Trace {
	return tracing.Select("ptree.build")
}
