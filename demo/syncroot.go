package demo

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sniperHW/flylist/pkg/gopool"
	"github.com/sniperHW/flylist/pkg/list"
)

// RunSync starts workers tasks on a gopool. Each task holds the list's
// SyncRoot while it walks the list, so every printed line reflects one whole
// round: the values scaled by the number of rounds before it.
func RunSync(w io.Writer, values []int, workers int, poolSize int) error {
	l := list.FromSlice(values...)
	pool := gopool.New(gopool.Option{
		MaxRoutineCount: poolSize,
		Mode:            gopool.QueueMode,
	})
	defer pool.Close()

	var wait sync.WaitGroup
	x := 0
	for i := 0; i < workers; i++ {
		wait.Add(1)
		err := pool.Go(func() {
			defer wait.Done()
			root := l.SyncRoot()
			root.Lock()
			defer root.Unlock()
			s := make([]string, 0, l.Len())
			for v := range l.Values() {
				s = append(s, fmt.Sprint(v*x))
			}
			x++
			fmt.Fprintf(w, "%s - round %d\n", strings.Join(s, " "), x)
		})
		if nil != err {
			wait.Done()
			wait.Wait()
			return fmt.Errorf("start worker %d: %w", i, err)
		}
	}
	wait.Wait()
	GetSugar().Debugf("sync demo: %d rounds over %d values", x, l.Len())
	return nil
}

func Run(w io.Writer, c *Config) error {
	GetSugar().Infof("scenario start, values %v", c.Scenario.Values)
	if err := RunScenario(w, c.Scenario.Values); nil != err {
		GetSugar().Errorf("scenario: %v", err)
		return err
	}

	fmt.Fprintln(w, "Sync Root:")
	GetSugar().Infof("sync demo start, workers %d pool %d", c.Sync.Workers, c.Sync.PoolSize)
	if err := RunSync(w, c.Scenario.SyncValues, c.Sync.Workers, c.Sync.PoolSize); nil != err {
		GetSugar().Errorf("sync demo: %v", err)
		return err
	}
	return nil
}
