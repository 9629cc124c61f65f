package gopool

import (
	"errors"
	"sync"

	"github.com/sniperHW/flylist/pkg/list"
)

var (
	ErrPoolClosed = errors.New("gopool: closed")
	ErrPoolFull   = errors.New("gopool: exceed MaxQueueSize")
)

type routine struct {
	taskCh chan func()
}

func (r *routine) run(p *Pool) {
	var ok bool
	for task := range r.taskCh {
		task()
		for {
			ok, task = p.putRoutine(r)
			if !ok {
				return
			} else if nil != task {
				task()
			} else {
				break
			}
		}
	}
}

type Mode int

const (
	QueueMode = Mode(0) //达到goroutine上限且没有空闲goroutine时,任务进入队列
	GoMode    = Mode(1) //达到goroutine上限且没有空闲goroutine时,开启单独的goroutine执行
)

type Option struct {
	MaxRoutineCount int //最大goroutine数量
	MaxQueueSize    int //最大排队任务数量,0表示不限
	Mode            Mode
}

var defaultPool *Pool = New(Option{
	MaxRoutineCount: 1024,
	Mode:            GoMode,
})

// Pool runs tasks on a bounded set of goroutines. Pending tasks and idle
// routines are both kept in lists guarded by the pool's own mutex.
type Pool struct {
	sync.Mutex
	die          bool
	routineCount int
	o            Option
	freeRoutines *list.List[*routine]
	taskQueue    *list.List[func()]
}

func New(o Option) *Pool {
	switch o.Mode {
	case QueueMode, GoMode:
	default:
		return nil
	}

	if o.MaxRoutineCount == 0 {
		o.MaxRoutineCount = 8
	}

	return &Pool{
		o:            o,
		freeRoutines: list.NewFunc[*routine](nil),
		taskQueue:    list.NewFunc[func()](nil),
	}
}

func popFront[T any](l *list.List[T]) (v T, ok bool) {
	if front := l.Front(); nil != front {
		v, ok = front.Value, l.RemoveFirst()
	}
	return
}

func (p *Pool) putRoutine(r *routine) (bool, func()) {
	p.Lock()
	defer p.Unlock()
	if p.die {
		return false, nil
	}
	if task, ok := popFront(p.taskQueue); ok {
		return true, task
	}
	//最近空闲的routine放在头部,优先复用
	p.freeRoutines.Prepend(r)
	return true, nil
}

func (p *Pool) getRoutine() *routine {
	r, _ := popFront(p.freeRoutines)
	return r
}

func (p *Pool) Go(task func()) (err error) {
	p.Lock()
	if p.die {
		p.Unlock()
		err = ErrPoolClosed
	} else if r := p.getRoutine(); nil != r {
		p.Unlock()
		r.taskCh <- task
	} else {
		if p.routineCount == p.o.MaxRoutineCount {
			switch p.o.Mode {
			case GoMode:
				p.Unlock()
				go task()
			case QueueMode:
				if p.o.MaxQueueSize > 0 && p.taskQueue.Len() >= p.o.MaxQueueSize {
					err = ErrPoolFull
				} else {
					p.taskQueue.Append(task)
				}
				p.Unlock()
			}
		} else {
			p.routineCount++
			r := &routine{taskCh: make(chan func())}
			p.Unlock()
			go r.run(p)
			r.taskCh <- task
		}
	}
	return
}

// QueueLen reports how many tasks are waiting for a free routine.
func (p *Pool) QueueLen() int {
	p.Lock()
	defer p.Unlock()
	return p.taskQueue.Len()
}

// Close stops idle routines. Busy routines exit after their current task.
// Queued tasks that have not started are never run by the pool; they are
// returned so a caller that counted them (e.g. with a WaitGroup) can run or
// release them.
func (p *Pool) Close() (dropped []func()) {
	p.Lock()
	defer p.Unlock()
	if !p.die {
		p.die = true
		for r := p.getRoutine(); nil != r; r = p.getRoutine() {
			close(r.taskCh)
		}
		dropped = p.taskQueue.ToSlice()
		p.taskQueue.Clear()
	}
	return
}

func Go(f func()) error {
	return defaultPool.Go(f)
}
