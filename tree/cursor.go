package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

/*
Leaves() covers the most frequent use of a parse tree: recovering the token
sequence. Clients which need to inspect the structure of the tree, e.g. for
creating an AST, either navigate with a Cursor or let a Cursor walk a sub-tree
top-down, calling a Listener for every node encountered.

Listeners may compute values for nodes. Values of children are handed to the
listener when the parent node is exited, which makes it easy to synthesize
attributes bottom-up.
*/

// RuleNode represents a node occuring during a tree walk, together with a
// value computed by a Listener.
type RuleNode struct {
	Node  Node
	Value interface{} // user-defined value of a node
}

// A Cursor is a movable mark within a parse tree, intended for navigating over
// nodes.
type Cursor struct {
	tree      *Tree
	current   Node
	startNode Node
	stack     []childIterator
}

// SetCursor sets up a cursor at a given node of the tree.
// If n is nil, the cursor will be set up at the root node of the tree.
// SetCursor returns nil for an empty tree.
func (t *Tree) SetCursor(n Node) *Cursor {
	if isNil(n) {
		if n = t.Root(); n == nil {
			return nil
		}
	}
	return &Cursor{
		tree:      t,
		current:   n,
		startNode: n,
		stack:     make([]childIterator, 0, 64),
	}
}

// Current returns the node the cursor is positioned at.
func (c *Cursor) Current() Node {
	return c.current
}

type childIterator func() (Node, childIterator)

func nullChildIterator() (Node, childIterator) {
	return nil, nullChildIterator
}

// children iterates over the children of n, starting at position i and moving
// in direction dir.
func children(n *Interior, i int, dir Direction) childIterator {
	var iterator childIterator
	iterator = func() (Node, childIterator) {
		if i >= 0 && i < len(n.children) {
			child := n.children[i]
			i += int(dir)
			return child, iterator
		}
		return nil, nullChildIterator
	}
	return iterator
}

// Up moves the cursor up to the parent node of the current node, if any.
func (c *Cursor) Up() (Node, bool) {
	parent := c.current.Parent()
	if parent == nil {
		return c.current, false
	}
	c.current = parent
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	tracer().Debugf("UP Cursor @ %v", c.current)
	return c.current, true
}

// Down moves the cursor down to the first child of the curent node, if any.
// dir lets clients start at either the leftmost child (default) or the rightmost
// child.
func (c *Cursor) Down(dir Direction) (Node, bool) {
	inner, ok := c.current.(*Interior)
	if !ok || len(inner.children) == 0 {
		return c.current, false
	}
	start := 0
	if dir == RtoL {
		start = len(inner.children) - 1
	}
	iter := children(inner, start, dir)
	var child Node
	child, iter = iter()
	c.stack = append(c.stack, iter)
	c.current = child
	tracer().Debugf("DOWN Cursor @ %v", c.current)
	return c.current, true
}

// Sibling moves the cursor to the next sibling of the current node, if any.
// The direction is the one of the last call to Down. If the cursor has not
// moved down before, siblings are visited from left to right.
func (c *Cursor) Sibling() (Node, bool) {
	if len(c.stack) == 0 {
		parent := c.current.Parent()
		if parent == nil {
			return c.current, false
		}
		c.stack = append(c.stack, children(parent, indexOf(parent, c.current)+1, LtoR))
	}
	iter := c.stack[len(c.stack)-1]
	sibling, next := iter()
	if sibling == nil {
		return c.current, false
	}
	c.stack[len(c.stack)-1] = next
	c.current = sibling
	tracer().Debugf("SIBLING Cursor @ %v", c.current)
	return c.current, true
}

func indexOf(parent *Interior, n Node) int {
	for i, ch := range parent.children {
		if ch == n {
			return i
		}
	}
	return -1
}

// TopDown traverses a sub-tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func (c *Cursor) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	c.startNode = c.current
	tracer().Debugf("TopDown starting at node %v", c.current)
	value := c.traverseTopDown(listener, dir, breakmode, 0)
	return value
}

func (c *Cursor) traverseTopDown(listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	if leaf, ok := c.current.(*Leaf); ok {
		ctxt := makeCtxt(level, nil)
		return listener.Terminal(leaf, ctxt)
	}
	inner := c.current.(*Interior)
	tracer().Debugf(">>> %s", inner)
	rhsNodes := make([]*RuleNode, len(inner.children))
	for i, ch := range inner.children {
		rhsNodes[i] = &RuleNode{Node: ch}
	}
	localAttributes := listener.MakeAttrs(inner)
	ctxt := makeCtxt(level, localAttributes)
	doContinue := listener.EnterRule(inner, rhsNodes, ctxt)
	if doContinue || breakmode == Continue { // listener signalled us to traverse children nodes
		i := 0
		if dir == RtoL {
			i = len(rhsNodes) - 1
		}
		if _, ok := c.Down(dir); ok {
			for ; ok; _, ok = c.Sibling() {
				chvalue := c.traverseTopDown(listener, dir, breakmode, level+1)
				tracer().Debugf("child value[%d] = %v", i, chvalue)
				rhsNodes[i].Value = chvalue
				i += int(dir)
			}
			c.Up()
		}
	}
	value := listener.ExitRule(inner, rhsNodes, ctxt)
	tracer().Debugf("<<< %s", inner)
	return value
}

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// Arguments are:
//
//     - *Interior:   the interior node at the current position
//     - []*RuleNode: the children of the node
//     - RuleCtxt:    contextual information for the node
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule and Terminal may return user-defined values
// to be propagated upwards of the tree.
type Listener interface {
	EnterRule(*Interior, []*RuleNode, RuleCtxt) bool
	ExitRule(*Interior, []*RuleNode, RuleCtxt) interface{}
	Terminal(*Leaf, RuleCtxt) interface{}
	MakeAttrs(*Interior) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Level int         // nesting level, relative to the start node of a walk
	Attrs interface{} // client-defined attributes local to node
}

func makeCtxt(level int, attrs interface{}) RuleCtxt {
	return RuleCtxt{
		Level: level,
		Attrs: attrs,
	}
}

// ---------------------------------------------------------------------------
