package tree

import "fmt"

// Kind-checked operations for clients holding a Node of unknown kind.

// AppendChild appends child as the rightmost child of parent and returns the child.
// If parent is a leaf, an ErrInvalidOperation error is returned.
func AppendChild(parent Node, child Node) (Node, error) {
	p, ok := parent.(*Interior)
	if !ok || p == nil {
		return nil, fmt.Errorf("append child to %v: %w", parent, ErrInvalidOperation)
	}
	return p.AppendChild(child)
}

// ChildAt returns the child at position i of node n.
// If n is a leaf, an ErrInvalidOperation error is returned. If i is not a valid
// child index, an ErrIndexOutOfRange error is returned.
func ChildAt(n Node, i int) (Node, error) {
	p, ok := n.(*Interior)
	if !ok || p == nil {
		return nil, fmt.Errorf("child access for %v: %w", n, ErrInvalidOperation)
	}
	return p.ChildAt(i)
}

// LexemeOf returns the lexeme of a leaf.
// If n is an interior node, an ErrInvalidOperation error is returned.
func LexemeOf(n Node) (string, error) {
	l, ok := n.(*Leaf)
	if !ok || l == nil {
		return "", fmt.Errorf("lexeme of %v: %w", n, ErrInvalidOperation)
	}
	return l.lexeme, nil
}

// LineOf returns the line number of a leaf.
// If n is an interior node, an ErrInvalidOperation error is returned.
func LineOf(n Node) (int, error) {
	l, ok := n.(*Leaf)
	if !ok || l == nil {
		return 0, fmt.Errorf("line of %v: %w", n, ErrInvalidOperation)
	}
	return l.line, nil
}

// LeftmostLine returns the line number of n if n is a leaf, and the line number
// of the leftmost leaf reachable from n otherwise. Note that epsilon leaves have
// line number ptree.EpsilonLine.
//
// Producers should never create interior nodes without children. If LeftmostLine
// runs into one, it returns an ErrIndexOutOfRange error.
func LeftmostLine(n Node) (int, error) {
	for {
		switch x := n.(type) {
		case *Leaf:
			if x == nil {
				return 0, fmt.Errorf("leftmost line of nil leaf: %w", ErrInvalidOperation)
			}
			return x.line, nil
		case *Interior:
			if x == nil {
				return 0, fmt.Errorf("leftmost line of nil node: %w", ErrInvalidOperation)
			}
			if len(x.children) == 0 {
				tracer().Errorf("interior node %v without children", x)
				return 0, fmt.Errorf("leftmost line below %v: %w", x, ErrIndexOutOfRange)
			}
			n = x.children[0]
		default:
			return 0, fmt.Errorf("leftmost line of %v: %w", n, ErrInvalidOperation)
		}
	}
}
