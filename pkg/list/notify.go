package list

import (
	"sync"
)

type event int

const (
	eventAdded = event(iota)
	eventRemoved
	eventCleared
)

// Handle identifies one subscription and is passed back to Unsubscribe.
type Handle *handle

type handle struct {
	ev event
}

type slot[F any] struct {
	h  *handle
	fn F
}

// subscribers keeps one slice per channel. Slices are replaced, never
// modified in place, so emit can iterate a snapshot without holding the lock
// and callbacks may subscribe or unsubscribe while being dispatched.
type subscribers[T any] struct {
	sync.Mutex
	added   []slot[func(*Node[T])]
	removed []slot[func(*Node[T])]
	cleared []slot[func()]
}

func register[F any](mtx *sync.Mutex, s *[]slot[F], ev event, fn F) Handle {
	h := &handle{ev: ev}
	mtx.Lock()
	defer mtx.Unlock()
	l := make([]slot[F], 0, len(*s)+1)
	l = append(l, *s...)
	*s = append(l, slot[F]{h: h, fn: fn})
	return Handle(h)
}

func unregister[F any](mtx *sync.Mutex, s *[]slot[F], h *handle) bool {
	mtx.Lock()
	defer mtx.Unlock()
	for i, v := range *s {
		if v.h == h {
			l := make([]slot[F], 0, len(*s)-1)
			l = append(l, (*s)[:i]...)
			*s = append(l, (*s)[i+1:]...)
			return true
		}
	}
	return false
}

func snapshot[F any](mtx *sync.Mutex, s *[]slot[F]) []slot[F] {
	mtx.Lock()
	defer mtx.Unlock()
	return *s
}

func (s *subscribers[T]) emitAdded(n *Node[T]) {
	for _, v := range snapshot(&s.Mutex, &s.added) {
		v.fn(n)
	}
}

func (s *subscribers[T]) emitRemoved(n *Node[T]) {
	for _, v := range snapshot(&s.Mutex, &s.removed) {
		v.fn(n)
	}
}

func (s *subscribers[T]) emitCleared() {
	for _, v := range snapshot(&s.Mutex, &s.cleared) {
		v.fn()
	}
}

// OnAdded subscribes fn to every insertion. fn runs on the mutating
// goroutine after the node is linked, with the list's mutation guard held,
// so it must not mutate the same list. A nil fn is ignored and yields a nil
// Handle.
func (l *List[T]) OnAdded(fn func(*Node[T])) Handle {
	if nil == fn {
		return nil
	}
	return register(&l.subs.Mutex, &l.subs.added, eventAdded, fn)
}

// OnRemoved subscribes fn to every single-node removal. The node passed to
// fn is already detached.
func (l *List[T]) OnRemoved(fn func(*Node[T])) Handle {
	if nil == fn {
		return nil
	}
	return register(&l.subs.Mutex, &l.subs.removed, eventRemoved, fn)
}

func (l *List[T]) OnCleared(fn func()) Handle {
	if nil == fn {
		return nil
	}
	return register(&l.subs.Mutex, &l.subs.cleared, eventCleared, fn)
}

// Unsubscribe removes the subscription behind h. It reports false when h is
// nil or was not registered on this list.
func (l *List[T]) Unsubscribe(h Handle) bool {
	hh := (*handle)(h)
	if nil == hh {
		return false
	}
	switch hh.ev {
	case eventAdded:
		return unregister(&l.subs.Mutex, &l.subs.added, hh)
	case eventRemoved:
		return unregister(&l.subs.Mutex, &l.subs.removed, hh)
	case eventCleared:
		return unregister(&l.subs.Mutex, &l.subs.cleared, hh)
	default:
		return false
	}
}
