package tree

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/ptree"
)

// Tree is a parse tree, constructed by a parser. It holds the root node of the
// tree and provides traversals over the nodes.
//
// A tree is treated as immutable once constructed. No validation of the
// tree's structure is performed; it is up to the producer to hand over a
// well-formed tree.
type Tree struct {
	root Node
}

// New wraps a completely built root node into a tree.
func New(root Node) *Tree {
	if isNil(root) {
		root = nil
	}
	return &Tree{root: root}
}

// Root returns the root node of the tree. It will return nil for an empty tree.
func (t *Tree) Root() Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Walk visits the nodes of the tree depth-first and pre-order, children from left
// to right. If visit returns false, the walk is aborted.
//
// Walk uses an explicit stack instead of recursion, thus tree height is not
// limited by the call stack.
func (t *Tree) Walk(visit func(Node) bool) {
	if t == nil || t.root == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(t.root)
	for !stack.Empty() {
		top, _ := stack.Pop()
		node := top.(Node)
		if !visit(node) {
			return
		}
		if inner, ok := node.(*Interior); ok {
			for i := len(inner.children) - 1; i >= 0; i-- {
				stack.Push(inner.children[i])
			}
		}
	}
}

// EachLeaf calls f for every leaf of the tree, in document order (left to right).
// If f returns false, iteration stops.
func (t *Tree) EachLeaf(f func(*Leaf) bool) {
	t.Walk(func(n Node) bool {
		if leaf, ok := n.(*Leaf); ok {
			return f(leaf)
		}
		return true
	})
}

// Leaves returns the leaves of the tree in document order. Interior nodes are
// never included.
//
// Every call performs a fresh traversal of the tree.
func (t *Tree) Leaves() []*Leaf {
	leaves := make([]*Leaf, 0, 64)
	t.EachLeaf(func(l *Leaf) bool {
		leaves = append(leaves, l)
		return true
	})
	tracer().Debugf("tree has %d leaves", len(leaves))
	return leaves
}

// Lexemes returns the lexemes of all the leaves of the tree, in document order.
// This is the token sequence of the original input.
func (t *Tree) Lexemes() []string {
	var lexemes []string
	t.EachLeaf(func(l *Leaf) bool {
		lexemes = append(lexemes, l.lexeme)
		return true
	})
	return lexemes
}

// Size returns the number of interior nodes and leaves of the tree.
func (t *Tree) Size() (interior int, leaves int) {
	t.Walk(func(n Node) bool {
		if n.IsToken() {
			leaves++
		} else {
			interior++
		}
		return true
	})
	return
}

// Symbols returns the distinct symbols occuring in the tree, in ascending order.
func (t *Tree) Symbols() []ptree.Symbol {
	set := treeset.NewWithIntComparator()
	t.Walk(func(n Node) bool {
		set.Add(int(n.Symbol()))
		return true
	})
	syms := make([]ptree.Symbol, 0, set.Size())
	for _, s := range set.Values() {
		syms = append(syms, ptree.Symbol(s.(int)))
	}
	return syms
}

// Fingerprint returns a hash over the structure of the tree and its tokens.
// Two trees with identical shape, symbols and tokens will have the same fingerprint,
// independent of node IDs and source file names.
func (t *Tree) Fingerprint() (string, error) {
	var shape treeShape
	t.Walk(func(n Node) bool {
		ns := nodeShape{
			Symbol:   int(n.Symbol()),
			Name:     n.Name(),
			Token:    n.IsToken(),
			Children: n.ChildCount(),
		}
		if leaf, ok := n.(*Leaf); ok {
			ns.Lexeme = leaf.lexeme
			ns.Line = leaf.line
		}
		shape.Nodes = append(shape.Nodes, ns)
		return true
	})
	return structhash.Hash(shape, fingerprintVersion)
}

const fingerprintVersion = 1

// treeShape is the pre-order serialization of a tree, used for fingerprinting.
type treeShape struct {
	Nodes []nodeShape `hash:"name:nodes"`
}

type nodeShape struct {
	Symbol   int    `hash:"name:sym"`
	Name     string `hash:"name:name"`
	Token    bool   `hash:"name:tok"`
	Children int    `hash:"name:cnt"`
	Lexeme   string `hash:"name:lex"`
	Line     int    `hash:"name:line"`
}
