package list

import (
	"fmt"
	"sync/atomic"
)

// Node is one element of a List. A node created by NewNode is detached and
// may later be attached with AppendNode, PrependNode or the InsertNode
// variants.
type Node[T any] struct {
	Value T
	pprev *Node[T]
	nnext *Node[T]
	l     atomic.Pointer[List[T]]
}

func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the following node, or nil at the tail or when detached.
func (n *Node[T]) Next() *Node[T] {
	if nil == n.l.Load() {
		return nil
	}
	return n.nnext
}

// Prev returns the preceding node, or nil at the head or when detached.
func (n *Node[T]) Prev() *Node[T] {
	if nil == n.l.Load() {
		return nil
	}
	return n.pprev
}

// List returns the owner marker. After Clear the marker still names the
// cleared list.
func (n *Node[T]) List() *List[T] {
	return n.l.Load()
}

func (n *Node[T]) String() string {
	return fmt.Sprint(n.Value)
}
