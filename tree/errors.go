package tree

import "errors"

// ErrInvalidOperation is flagged whenever a leaf-only operation is called for an
// interior node, or an interior-only operation is called for a leaf. Attaching a
// child which already has a parent (or which would create a cycle) is an invalid
// operation as well.
var ErrInvalidOperation = errors.New("invalid operation for node")

// ErrIndexOutOfRange is flagged when a child index is not within [0, ChildCount).
var ErrIndexOutOfRange = errors.New("child index out of range")
