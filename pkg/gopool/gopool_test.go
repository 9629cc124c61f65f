package gopool

//go test -covermode=count -v -coverprofile=coverage.out -run=.
//go test -v -run=^$ -bench Benchmark -count 10
//go tool cover -html=coverage.out
import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGo(t *testing.T) {
	{
		pool := New(Option{
			MaxRoutineCount: 10,
			Mode:            QueueMode,
		})

		var wait sync.WaitGroup
		var count int32

		for _, n := range []int{20, 20, 120} {
			wait.Add(n)
			for i := 0; i < n; i++ {
				assert.Nil(t, pool.Go(func() {
					time.Sleep(time.Millisecond * 5)
					atomic.AddInt32(&count, 1)
					wait.Done()
				}))
			}
			wait.Wait()
		}

		assert.Equal(t, int32(160), atomic.LoadInt32(&count))
		pool.Lock()
		assert.LessOrEqual(t, pool.routineCount, 10)
		pool.Unlock()
		assert.Equal(t, 0, pool.QueueLen())

		pool.Close()
	}

	{
		pool := New(Option{
			MaxRoutineCount: 10,
			Mode:            GoMode,
		})

		var wait sync.WaitGroup

		wait.Add(20)

		for i := 0; i < 20; i++ {
			assert.Nil(t, pool.Go(func() {
				time.Sleep(time.Millisecond * 5)
				wait.Done()
			}))
		}

		wait.Wait()
		pool.Close()
	}
}

func TestQueueFullAndClose(t *testing.T) {
	pool := New(Option{
		MaxRoutineCount: 1,
		MaxQueueSize:    1,
		Mode:            QueueMode,
	})

	release := make(chan struct{})
	done := make(chan struct{})

	assert.Nil(t, pool.Go(func() {
		<-release
	}))
	assert.Nil(t, pool.Go(func() {
		close(done)
	}))
	assert.Equal(t, 1, pool.QueueLen())
	assert.Equal(t, ErrPoolFull, pool.Go(func() {}))

	close(release)
	<-done

	pool.Close()
	assert.Equal(t, ErrPoolClosed, pool.Go(func() {}))
	assert.Equal(t, 0, pool.QueueLen())
}

func TestCloseReturnsQueued(t *testing.T) {
	pool := New(Option{
		MaxRoutineCount: 1,
		Mode:            QueueMode,
	})

	release := make(chan struct{})
	var ran int32
	var wait sync.WaitGroup

	wait.Add(3)
	assert.Nil(t, pool.Go(func() {
		defer wait.Done()
		<-release
	}))
	for i := 0; i < 2; i++ {
		assert.Nil(t, pool.Go(func() {
			defer wait.Done()
			atomic.AddInt32(&ran, 1)
		}))
	}
	assert.Equal(t, 2, pool.QueueLen())

	dropped := pool.Close()
	assert.Equal(t, 2, len(dropped))
	assert.Equal(t, 0, pool.QueueLen())
	assert.Nil(t, pool.Close())

	close(release)
	time.Sleep(time.Millisecond * 20)
	// the pool never started them
	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))

	for _, task := range dropped {
		task()
	}
	wait.Wait()
	assert.Equal(t, int32(2), atomic.LoadInt32(&ran))
}

func TestInvalidMode(t *testing.T) {
	assert.Nil(t, New(Option{Mode: Mode(5)}))
}

func TestDefaultPool(t *testing.T) {
	var wait sync.WaitGroup
	wait.Add(1)
	assert.Nil(t, Go(func() {
		wait.Done()
	}))
	wait.Wait()
}

func BenchmarkGoroutine(b *testing.B) {
	pool := New(Option{
		MaxRoutineCount: 1024,
		Mode:            QueueMode,
	})

	var wait sync.WaitGroup
	for i := 0; i < b.N; i++ {
		wait.Add(1)
		pool.Go(func() {
			wait.Done()
		})
	}
	wait.Wait()

	pool.Close()
}

func BenchmarkRoutine(b *testing.B) {
	var wait sync.WaitGroup
	for i := 0; i < b.N; i++ {
		wait.Add(1)
		go func() {
			wait.Done()
		}()
	}
	wait.Wait()
}
