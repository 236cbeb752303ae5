package build

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/ptree"
	"github.com/npillmayer/ptree/symbols"
	"github.com/npillmayer/ptree/tree"
	"github.com/npillmayer/schuko/gconf"
)

// Errors returned by a Builder.
var (
	ErrStackUnderflow = errors.New("reduction exceeds builder stack")
	ErrIncomplete     = errors.New("tree is incomplete")
)

// Epsilon is the symbol code of epsilon leaves, i.e. leaves standing for an
// empty match.
const Epsilon ptree.Symbol = 0

// EpsilonName is the symbol name of epsilon leaves.
const EpsilonName = "ε"

// Builder is a helper for constructing a parse tree bottom-up. It holds a stack
// of sub-trees not yet adopted by a parent node.
//
// A Builder is not safe for concurrent use. However, builders for different input
// files may share an IDAllocator and a symbol table.
type Builder struct {
	sourceFile string
	ids        *tree.IDAllocator
	syms       *symbols.Table
	stack      *arraystack.Stack
}

// NewBuilder creates a builder for an input file. Nodes will be numbered by ids.
// Symbol names are looked up in syms; if syms is nil, an empty table is used.
func NewBuilder(sourceFile string, ids *tree.IDAllocator, syms *symbols.Table) *Builder {
	if syms == nil {
		syms = symbols.NewTable()
	}
	return &Builder{
		sourceFile: sourceFile,
		ids:        ids,
		syms:       syms,
		stack:      arraystack.New(),
	}
}

// SourceFile returns the name of the input file nodes are attributed to.
func (b *Builder) SourceFile() string {
	return b.sourceFile
}

// Symbols returns the symbol table of the builder.
func (b *Builder) Symbols() *symbols.Table {
	return b.syms
}

// Depth returns the number of sub-trees on the builder's stack.
func (b *Builder) Depth() int {
	return b.stack.Size()
}

// Shift creates a leaf for a token and pushes it onto the stack.
func (b *Builder) Shift(tok ptree.Token) *tree.Leaf {
	leaf := tree.NewLeaf(b.ids, tok.TokType(), b.syms.Name(tok.TokType()),
		b.sourceFile, tok.Lexeme(), tok.Line())
	tracer().Debugf("shift %v from %v", leaf, tok.Span())
	b.stack.Push(leaf)
	return leaf
}

// Reduce pops n sub-trees from the stack and creates an interior node for
// symbol sym, adopting them as children in their original order. The new node
// is pushed onto the stack.
//
// For n = 0, an epsilon leaf will be created as the single child of the node.
// If the stack holds less than n sub-trees, ErrStackUnderflow is returned and
// the stack remains unchanged.
func (b *Builder) Reduce(sym ptree.Symbol, n int) (*tree.Interior, error) {
	if n < 0 || n > b.stack.Size() {
		return nil, b.malformed(fmt.Errorf("reduce %s with %d children, stack holds %d: %w",
			b.syms.Name(sym), n, b.stack.Size(), ErrStackUnderflow))
	}
	node := tree.NewInterior(b.ids, sym, b.syms.Name(sym), b.sourceFile)
	if n == 0 {
		eps := tree.NewLeaf(b.ids, Epsilon, EpsilonName, b.sourceFile, "", ptree.EpsilonLine)
		if _, err := node.AppendChild(eps); err != nil {
			return nil, b.malformed(err)
		}
	} else {
		rhs := make([]tree.Node, n)
		for i := n - 1; i >= 0; i-- {
			top, _ := b.stack.Pop()
			rhs[i] = top.(tree.Node)
		}
		for _, ch := range rhs {
			if _, err := node.AppendChild(ch); err != nil {
				return nil, b.malformed(err)
			}
		}
	}
	tracer().Debugf("reduce %v", node)
	b.stack.Push(node)
	return node, nil
}

// Tree returns the completed parse tree. The stack has to contain exactly one
// sub-tree, which will become the root of the tree. Otherwise ErrIncomplete is
// returned.
//
// Calling Tree does not alter the builder's stack.
func (b *Builder) Tree() (*tree.Tree, error) {
	if b.stack.Size() != 1 {
		return nil, b.malformed(fmt.Errorf("%d sub-trees left on stack: %w",
			b.stack.Size(), ErrIncomplete))
	}
	root, _ := b.stack.Peek()
	return tree.New(root.(tree.Node)), nil
}

func (b *Builder) malformed(err error) error {
	tracer().Errorf("%s: %v", b.sourceFile, err)
	if gconf.GetBool("panic-on-malformed-tree") {
		panic(`Tree builder failed.

Configuration flag panic-on-malformed-tree is set to true. It is aimed at helping
to debug a producer and do a post-mortem of why it created a malformed tree.
However, if this is a production environment and you did not expect this to panic,
please unset panic-on-malformed-tree to its default (false).

` + err.Error())
	}
	return err
}
