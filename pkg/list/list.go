// Package list implements a generic doubly linked list whose nodes keep their
// identity across mutations elsewhere in the list.
//
// Every mutating method holds an internal guard until its notifications have
// been dispatched, so mutations are serialized against each other. Readers
// are not guarded: a goroutine that needs reads to be isolated from
// mutations must hold SyncRoot() around both. The list never takes SyncRoot
// itself.
package list

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
)

type List[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	size  int
	equal func(a, b T) bool
	mu    sync.Mutex
	root  atomic.Pointer[sync.Mutex]
	subs  subscribers[T]
}

// New returns an empty list comparing values with ==.
func New[T comparable]() *List[T] {
	return NewFunc(func(a, b T) bool {
		return a == b
	})
}

// NewFunc returns an empty list comparing values with eq. A nil eq falls
// back to reflect.DeepEqual, which is also what a zero List uses.
func NewFunc[T any](eq func(a, b T) bool) *List[T] {
	return &List[T]{equal: eq}
}

// From builds a list comparing with == from source. A nil source yields
// ErrNullArgument.
func From[T comparable](source iter.Seq[T]) (*List[T], error) {
	return FromFunc(source, func(a, b T) bool {
		return a == b
	})
}

// FromFunc is From with a caller supplied equality. A nil source yields
// ErrNullArgument.
func FromFunc[T any](source iter.Seq[T], eq func(a, b T) bool) (*List[T], error) {
	if nil == source {
		return nil, fmt.Errorf("%w: source", ErrNullArgument)
	}
	l := NewFunc(eq)
	for v := range source {
		l.pushBack(&Node[T]{Value: v})
	}
	return l, nil
}

func FromSlice[T comparable](values ...T) *List[T] {
	l, _ := From(slices.Values(values))
	return l
}

func (l *List[T]) eq(a, b T) bool {
	if nil != l.equal {
		return l.equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// SyncRoot returns the lock handle offered to callers for wrapping
// multi-step sequences. It is created on first use; every caller gets the
// same mutex.
func (l *List[T]) SyncRoot() *sync.Mutex {
	if mtx := l.root.Load(); nil != mtx {
		return mtx
	}
	l.root.CompareAndSwap(nil, new(sync.Mutex))
	return l.root.Load()
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) Front() *Node[T] {
	return l.head
}

func (l *List[T]) Back() *Node[T] {
	return l.tail
}

func (l *List[T]) First() (v T, err error) {
	if nil == l.head {
		err = ErrEmptyCollection
		return
	}
	return l.head.Value, nil
}

func (l *List[T]) Last() (v T, err error) {
	if nil == l.tail {
		err = ErrEmptyCollection
		return
	}
	return l.tail.Value, nil
}

func (l *List[T]) pushBack(n *Node[T]) {
	n.l.Store(l)
	n.nnext = nil
	n.pprev = l.tail
	if nil == l.tail {
		l.head = n
	} else {
		l.tail.nnext = n
	}
	l.tail = n
	l.size++
}

func (l *List[T]) pushFront(n *Node[T]) {
	n.l.Store(l)
	n.pprev = nil
	n.nnext = l.head
	if nil == l.head {
		l.tail = n
	} else {
		l.head.pprev = n
	}
	l.head = n
	l.size++
}

func (l *List[T]) linkAfter(at, n *Node[T]) {
	n.l.Store(l)
	n.pprev = at
	n.nnext = at.nnext
	if nil == at.nnext {
		l.tail = n
	} else {
		at.nnext.pprev = n
	}
	at.nnext = n
	l.size++
}

func (l *List[T]) linkBefore(at, n *Node[T]) {
	n.l.Store(l)
	n.nnext = at
	n.pprev = at.pprev
	if nil == at.pprev {
		l.head = n
	} else {
		at.pprev.nnext = n
	}
	at.pprev = n
	l.size++
}

func (l *List[T]) unlink(n *Node[T]) {
	if nil == n.pprev {
		l.head = n.nnext
	} else {
		n.pprev.nnext = n.nnext
	}
	if nil == n.nnext {
		l.tail = n.pprev
	} else {
		n.nnext.pprev = n.pprev
	}
	n.pprev = nil
	n.nnext = nil
	n.l.Store(nil)
	l.size--
}

// member walks from head comparing identities. The owner marker alone is
// not enough because Clear leaves it set on the dropped nodes.
func (l *List[T]) member(n *Node[T]) bool {
	for cur := l.head; nil != cur; cur = cur.nnext {
		if cur == n {
			return true
		}
	}
	return false
}

// claim makes l the owner of a detached payload node. Two lists attaching
// the same node each hold only their own guard, so the owner marker is
// swapped atomically and exactly one of them wins.
func (l *List[T]) claim(n *Node[T]) error {
	if nil == n {
		return fmt.Errorf("%w: node", ErrNullArgument)
	}
	if !n.l.CompareAndSwap(nil, l) {
		return fmt.Errorf("%w: node", ErrAlreadyAttached)
	}
	return nil
}

func (l *List[T]) Append(v T) *Node[T] {
	n := &Node[T]{Value: v}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pushBack(n)
	l.subs.emitAdded(n)
	return n
}

func (l *List[T]) Prepend(v T) *Node[T] {
	n := &Node[T]{Value: v}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pushFront(n)
	l.subs.emitAdded(n)
	return n
}

func (l *List[T]) AppendNode(n *Node[T]) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.claim(n); nil != err {
		return err
	}
	l.pushBack(n)
	l.subs.emitAdded(n)
	return nil
}

func (l *List[T]) PrependNode(n *Node[T]) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.claim(n); nil != err {
		return err
	}
	l.pushFront(n)
	l.subs.emitAdded(n)
	return nil
}

func (l *List[T]) insert(anchor, n *Node[T], after bool) error {
	if nil == anchor {
		return fmt.Errorf("%w: anchor", ErrNullArgument)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.claim(n); nil != err {
		return err
	}
	if !l.member(anchor) {
		n.l.Store(nil)
		return ErrAnchorNotFound
	}
	if after {
		l.linkAfter(anchor, n)
	} else {
		l.linkBefore(anchor, n)
	}
	l.subs.emitAdded(n)
	return nil
}

// InsertAfter links a new node holding v right after anchor. anchor is
// located by identity with a scan from head.
func (l *List[T]) InsertAfter(anchor *Node[T], v T) (*Node[T], error) {
	n := &Node[T]{Value: v}
	if err := l.insert(anchor, n, true); nil != err {
		return nil, err
	}
	return n, nil
}

func (l *List[T]) InsertBefore(anchor *Node[T], v T) (*Node[T], error) {
	n := &Node[T]{Value: v}
	if err := l.insert(anchor, n, false); nil != err {
		return nil, err
	}
	return n, nil
}

func (l *List[T]) InsertNodeAfter(anchor, n *Node[T]) error {
	return l.insert(anchor, n, true)
}

func (l *List[T]) InsertNodeBefore(anchor, n *Node[T]) error {
	return l.insert(anchor, n, false)
}

// RemoveFirst detaches the head node. It reports false on an empty list.
func (l *List[T]) RemoveFirst() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.head
	if nil == n {
		return false
	}
	l.unlink(n)
	l.subs.emitRemoved(n)
	return true
}

func (l *List[T]) RemoveLast() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.tail
	if nil == n {
		return false
	}
	l.unlink(n)
	l.subs.emitRemoved(n)
	return true
}

// RemoveValue detaches the first node whose value equals v.
func (l *List[T]) RemoveValue(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for cur := l.head; nil != cur; cur = cur.nnext {
		if l.eq(cur.Value, v) {
			l.unlink(cur)
			l.subs.emitRemoved(cur)
			return true
		}
	}
	return false
}

func (l *List[T]) RemoveNode(n *Node[T]) error {
	if nil == n {
		return fmt.Errorf("%w: node", ErrNullArgument)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.member(n) {
		return ErrAnchorNotFound
	}
	l.unlink(n)
	l.subs.emitRemoved(n)
	return nil
}

// Clear drops every node in O(1). The dropped nodes keep their owner marker
// and links; they can no longer be found by identity scans, and they cannot
// be attached again.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.head = nil
	l.tail = nil
	l.size = 0
	l.subs.emitCleared()
}

func (l *List[T]) Contains(v T) bool {
	return nil != l.Find(v)
}

func (l *List[T]) Find(v T) *Node[T] {
	for cur := l.head; nil != cur; cur = cur.nnext {
		if l.eq(cur.Value, v) {
			return cur
		}
	}
	return nil
}

func (l *List[T]) FindLast(v T) *Node[T] {
	for cur := l.tail; nil != cur; cur = cur.pprev {
		if l.eq(cur.Value, v) {
			return cur
		}
	}
	return nil
}

func (l *List[T]) Get(index int) (*Node[T], error) {
	if index < 0 || index >= l.size {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, index, l.size)
	}
	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.nnext
	}
	return cur, nil
}

// At is the indexer: the value at index.
func (l *List[T]) At(index int) (v T, err error) {
	var n *Node[T]
	if n, err = l.Get(index); nil != err {
		return
	}
	return n.Value, nil
}

// CopyTo writes the values into buf starting at offset, in list order.
func (l *List[T]) CopyTo(buf []T, offset int) error {
	if nil == buf {
		return fmt.Errorf("%w: buf", ErrNullArgument)
	}
	if nil == l.head {
		return ErrEmptyCollection
	}
	if offset < 0 || len(buf)-offset < l.size {
		return fmt.Errorf("%w: need %d from offset %d, have %d", ErrRangeError, l.size, offset, len(buf))
	}
	for cur := l.head; nil != cur; cur = cur.nnext {
		buf[offset] = cur.Value
		offset++
	}
	return nil
}

// Values yields the values front to back by following live links. Each call
// starts a new pass. Mutating the list during the pass is not detected.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; nil != cur; cur = cur.nnext {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.tail; nil != cur; cur = cur.pprev {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Nodes yields the nodes front to back. The successor is read before each
// yield, so the yielded node may be removed from inside the loop.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		cur := l.head
		for nil != cur {
			nnext := cur.nnext
			if !yield(cur) {
				return
			}
			cur = nnext
		}
	}
}

func (l *List[T]) ToSlice() []T {
	res := make([]T, 0, l.size)
	for v := range l.Values() {
		res = append(res, v)
	}
	return res
}
