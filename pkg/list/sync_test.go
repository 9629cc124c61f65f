package list

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncRoot(t *testing.T) {
	l := New[int]()

	var wait sync.WaitGroup
	roots := make([]*sync.Mutex, 16)
	wait.Add(len(roots))
	for i := range roots {
		go func(i int) {
			defer wait.Done()
			roots[i] = l.SyncRoot()
		}(i)
	}
	wait.Wait()

	for _, r := range roots {
		assert.Same(t, roots[0], r)
	}
	assert.Same(t, roots[0], l.SyncRoot())
	assert.NotSame(t, roots[0], New[int]().SyncRoot())

	// the list never takes the handle itself
	l.SyncRoot().Lock()
	l.Append(1)
	assert.True(t, l.RemoveFirst())
	l.Clear()
	l.SyncRoot().Unlock()
}

func TestConcurrentMutations(t *testing.T) {
	l := New[int]()
	added := 0
	l.OnAdded(func(*Node[int]) {
		// runs under the mutation guard
		added++
	})

	var wait sync.WaitGroup
	for g := 0; g < 8; g++ {
		wait.Add(1)
		go func(g int) {
			defer wait.Done()
			for i := 0; i < 200; i++ {
				if i%2 == 0 {
					l.Append(g*1000 + i)
				} else {
					l.Prepend(g*1000 + i)
				}
			}
			for i := 0; i < 50; i++ {
				l.RemoveLast()
			}
		}(g)
	}
	wait.Wait()

	assert.Equal(t, 8*200, added)
	assert.Equal(t, 8*150, l.Len())
	checkChain(t, l)
}

func TestSyncRootIsolatesReaders(t *testing.T) {
	l := FromSlice(4, 2, 43, 12, 43, 1, 2, 43)
	root := l.SyncRoot()

	var wait sync.WaitGroup
	sums := make([]int, 0, 10)
	for g := 0; g < 10; g++ {
		wait.Add(1)
		go func() {
			defer wait.Done()
			root.Lock()
			defer root.Unlock()
			sum := 0
			for v := range l.Values() {
				sum += v
			}
			sums = append(sums, sum)
			l.Append(1)
		}()
	}
	wait.Wait()

	assert.Equal(t, 10, len(sums))
	assert.Equal(t, 18, l.Len())
	base := 4 + 2 + 43 + 12 + 43 + 1 + 2 + 43
	seen := map[int]bool{}
	for _, s := range sums {
		seen[s] = true
	}
	for i := 0; i < 10; i++ {
		assert.True(t, seen[base+i])
	}
}

func TestAttachRace(t *testing.T) {
	a := New[int]()
	b := New[int]()
	for i := 0; i < 2000; i++ {
		n := NewNode(i)
		errs := make([]error, 2)
		var wait sync.WaitGroup
		wait.Add(2)
		go func() {
			defer wait.Done()
			errs[0] = a.AppendNode(n)
		}()
		go func() {
			defer wait.Done()
			errs[1] = b.PrependNode(n)
		}()
		wait.Wait()

		if nil == errs[0] {
			assert.True(t, errors.Is(errs[1], ErrAlreadyAttached))
			assert.Same(t, a, n.List())
		} else {
			assert.Nil(t, errs[1])
			assert.True(t, errors.Is(errs[0], ErrAlreadyAttached))
			assert.Same(t, b, n.List())
		}
	}
	assert.Equal(t, 2000, a.Len()+b.Len())
	checkChain(t, a)
	checkChain(t, b)

	// a failed anchor lookup hands the node back
	n := NewNode(-1)
	var wait sync.WaitGroup
	wait.Add(2)
	go func() {
		defer wait.Done()
		a.InsertNodeAfter(NewNode(0), n)
	}()
	go func() {
		defer wait.Done()
		b.InsertNodeBefore(NewNode(0), n)
	}()
	wait.Wait()
	assert.Nil(t, n.List())
	assert.Nil(t, a.AppendNode(n))
	assert.Same(t, a, n.List())
}
