package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/sniperHW/flylist/pkg/list"
)

func join[T any](l *list.List[T]) string {
	s := make([]string, 0, l.Len())
	for n := range l.Nodes() {
		s = append(s, n.String())
	}
	return strings.Join(s, " ")
}

// watch logs every notification raised by l at debug level.
func watch(name string, l *list.List[int]) {
	l.OnAdded(func(n *list.Node[int]) {
		GetSugar().Debugf("%s: added %v, count %d", name, n, l.Len())
	})
	l.OnRemoved(func(n *list.Node[int]) {
		GetSugar().Debugf("%s: removed %v, count %d", name, n, l.Len())
	})
	l.OnCleared(func() {
		GetSugar().Debugf("%s: cleared", name)
	})
}

// RunScenario replays the console walkthrough on values and prints each
// stage to w. The anchors it looks up (28 and the last 11) must be present
// in values.
func RunScenario(w io.Writer, values []int) error {
	l := list.FromSlice(values...)
	watch("scenario", l)

	l.Append(19)
	l.Prepend(10)
	l.Append(9)

	node := l.Find(28)
	if _, err := l.InsertAfter(node, 16); nil != err {
		return fmt.Errorf("insert 16 after 28: %w", err)
	}
	if _, err := l.InsertBefore(node, 17); nil != err {
		return fmt.Errorf("insert 17 before 28: %w", err)
	}

	first, err := l.At(0)
	if nil != err {
		return err
	}
	if err = l.InsertNodeBefore(l.FindLast(11), list.NewNode(first)); nil != err {
		return fmt.Errorf("insert %d before last 11: %w", first, err)
	}

	at, err := l.Get(2)
	if nil != err {
		return err
	}
	if err = l.InsertNodeAfter(at, list.NewNode(33)); nil != err {
		return fmt.Errorf("insert 33 after index 2: %w", err)
	}

	last, _ := l.Last()
	fmt.Fprintln(w, join(l))
	fmt.Fprintf(w, "Count: %d\n", l.Len())
	fmt.Fprintf(w, "First: %d\n", first)
	fmt.Fprintf(w, "Last: %d\n", last)

	l.RemoveLast()
	l.RemoveFirst()
	l.RemoveValue(28)
	fmt.Fprintln(w, join(l))
	fmt.Fprintf(w, "contains 19: %v\n", l.Contains(19))
	fmt.Fprintf(w, "contains 88: %v\n", l.Contains(88))

	buf := make([]int, l.Len()+1)
	if err = l.CopyTo(buf, 1); nil != err {
		return err
	}
	fmt.Fprintf(w, "copy: %s\n", join(list.FromSlice(buf...)))

	l.Clear()
	fmt.Fprintf(w, "Count: %d\n", l.Len())
	return nil
}
