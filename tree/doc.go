/*
Package tree implements parse trees built by external parsers.

A parse tree consists of two kinds of nodes: interior nodes, which represent
grammar productions and own an ordered list of children, and leaves, which
represent scanned tokens and carry the lexeme and its line number. Parsers
construct trees bottom-up, creating nodes and attaching children to interior
nodes. Attaching a child wires a back-reference from the child to its parent,
which is used for upward navigation only.

After construction, a root node is wrapped into a Tree:

    ids := tree.NewIDAllocator()
    stmt := tree.NewInterior(ids, Stmt, "Stmt", "input.php")
    stmt.AppendChild(tree.NewLeaf(ids, IF, "IF", "input.php", "if", 3))
    …
    t := tree.New(stmt)
    for _, leaf := range t.Leaves() {
        fmt.Println(leaf.Lexeme())
    }

Trees are considered immutable after being wrapped. Traversals do not lock
and may run concurrently.

Node IDs

Every node receives a unique ID at construction time. IDs are handed out by
an IDAllocator, which is safe for concurrent use. Producers building trees for
several input files in parallel should share one allocator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ptree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("ptree.tree")
}
