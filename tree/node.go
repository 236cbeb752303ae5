package tree

import (
	"fmt"

	"github.com/npillmayer/ptree"
	"golang.org/x/exp/slices"
)

// Node is a node of a parse tree. It is either an interior node (*Interior),
// representing a grammar production, or a leaf (*Leaf), representing a token.
// There are no other implementations of Node.
//
// Operations which make sense for one kind of node only are methods of the
// concrete types. Clients holding a Node may use the kind-checked functions
// AppendChild, ChildAt, LexemeOf and LineOf instead.
type Node interface {
	Symbol() ptree.Symbol // symbol code of the terminal or production
	Name() string         // human readable symbol name
	SourceFile() string   // name of the file this node originated from
	ID() uint64           // unique ID assigned at construction time
	IsToken() bool        // is this node a leaf?
	Parent() *Interior    // enclosing interior node, nil for the root
	ChildCount() int      // number of children, 0 for leaves
	String() string
	attrs() *nodeAttrs // seals the interface
}

// nodeAttrs holds the attributes common to both kinds of nodes.
type nodeAttrs struct {
	symbol     ptree.Symbol
	name       string
	sourceFile string
	id         uint64
	parent     *Interior // non-owning back-reference
}

func (a *nodeAttrs) attrs() *nodeAttrs {
	return a
}

// Symbol returns the grammar symbol code of a node.
func (a *nodeAttrs) Symbol() ptree.Symbol {
	return a.symbol
}

// Name returns the symbol's name of a node.
func (a *nodeAttrs) Name() string {
	return a.name
}

// SourceFile returns the name of the file a node originated from.
func (a *nodeAttrs) SourceFile() string {
	return a.sourceFile
}

// ID returns the unique ID of a node.
func (a *nodeAttrs) ID() uint64 {
	return a.id
}

// Parent returns the parent node, or nil for the root node.
func (a *nodeAttrs) Parent() *Interior {
	return a.parent
}

// --- Interior nodes --------------------------------------------------------

// Interior is a node representing a grammar production. It owns an ordered list of
// children, in order of the left-to-right derivation.
type Interior struct {
	nodeAttrs
	children []Node
}

var _ Node = (*Interior)(nil)

// NewInterior creates an interior node without children and without a parent.
// The node's ID is taken from ids.
func NewInterior(ids *IDAllocator, sym ptree.Symbol, name, sourceFile string) *Interior {
	return &Interior{
		nodeAttrs: nodeAttrs{
			symbol:     sym,
			name:       name,
			sourceFile: sourceFile,
			id:         ids.Next(),
		},
	}
}

// IsToken is false for interior nodes.
func (n *Interior) IsToken() bool {
	return false
}

// ChildCount returns the number of children.
func (n *Interior) ChildCount() int {
	return len(n.children)
}

// Children returns the children of n, from left to right. The slice is a copy.
func (n *Interior) Children() []Node {
	return slices.Clone(n.children)
}

// ChildAt returns the child at position i.
// It returns an ErrIndexOutOfRange error if i is not within [0, ChildCount).
func (n *Interior) ChildAt(i int) (Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("index %d for %v with %d children: %w",
			i, n, len(n.children), ErrIndexOutOfRange)
	}
	return n.children[i], nil
}

// AppendChild appends a rightmost child and makes n its parent.
// Returns the child (for chaining).
//
// A child may be attached to one parent only. Appending a child which already
// has a parent, appending n to itself or to one of its descendants, results in
// an ErrInvalidOperation error.
func (n *Interior) AppendChild(child Node) (Node, error) {
	if isNil(child) {
		return nil, fmt.Errorf("cannot append nil child to %v: %w", n, ErrInvalidOperation)
	}
	if p := child.Parent(); p != nil {
		return nil, fmt.Errorf("node %v already is a child of %v: %w", child, p, ErrInvalidOperation)
	}
	// child has no parent, so a cycle is possible only if n lies within child's sub-tree
	if ch, ok := child.(*Interior); ok && (ch == n || len(ch.children) > 0) {
		for anc := n; anc != nil; anc = anc.parent {
			if anc == ch {
				return nil, fmt.Errorf("appending %v to %v would create a cycle: %w",
					child, n, ErrInvalidOperation)
			}
		}
	}
	n.children = append(n.children, child)
	child.attrs().parent = n
	tracer().Debugf("append child #%d: %v ⟵ %v", len(n.children)-1, n, child)
	return child, nil
}

func (n *Interior) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%s #%d |%d|)", n.name, n.id, len(n.children))
}

// --- Leaves ----------------------------------------------------------------

// Leaf is a node representing a single scanned token. It carries the token's
// lexeme and its 1-based line number. Leaves for empty (epsilon) matches have
// line number ptree.EpsilonLine.
type Leaf struct {
	nodeAttrs
	lexeme string
	line   int
}

var _ Node = (*Leaf)(nil)

// NewLeaf creates a token node. The node's ID is taken from ids.
func NewLeaf(ids *IDAllocator, sym ptree.Symbol, name, sourceFile string, lexeme string, line int) *Leaf {
	return &Leaf{
		nodeAttrs: nodeAttrs{
			symbol:     sym,
			name:       name,
			sourceFile: sourceFile,
			id:         ids.Next(),
		},
		lexeme: lexeme,
		line:   line,
	}
}

// IsToken is true for leaves.
func (l *Leaf) IsToken() bool {
	return true
}

// ChildCount is always 0 for leaves.
func (l *Leaf) ChildCount() int {
	return 0
}

// Lexeme returns the literal source text matched by the token.
func (l *Leaf) Lexeme() string {
	return l.lexeme
}

// Line returns the line number of the token, or ptree.EpsilonLine for
// epsilon leaves.
func (l *Leaf) Line() int {
	return l.line
}

// IsEpsilon is a predicate: does this leaf represent an empty match?
func (l *Leaf) IsEpsilon() bool {
	return l.line == ptree.EpsilonLine
}

func (l *Leaf) String() string {
	if l == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s #%d %q@%d", l.name, l.id, l.lexeme, l.line)
}

// ---------------------------------------------------------------------------

// isNil checks for nil nodes, including typed nil pointers wrapped in a Node.
func isNil(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *Interior:
		return x == nil
	case *Leaf:
		return x == nil
	}
	return false
}
