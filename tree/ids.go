package tree

import "sync/atomic"

// IDAllocator hands out unique node IDs. IDs start at 0 and are never re-used.
// An IDAllocator is safe for concurrent use; trees built by concurrent producers
// will receive distinct IDs as long as they share an allocator.
type IDAllocator struct {
	next atomic.Uint64
}

// NewIDAllocator creates an ID allocator starting at 0.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns a fresh ID.
func (ids *IDAllocator) Next() uint64 {
	if ids == nil {
		panic("attempt to allocate node ID from nil allocator")
	}
	return ids.next.Add(1) - 1
}

// Issued returns the number of IDs handed out so far.
func (ids *IDAllocator) Issued() uint64 {
	return ids.next.Load()
}
