package FIFOqueue

import (
	"errors"
	"sync/atomic"

	"github.com/antigloss/go/concurrent/container/queue"
)

var ErrEmpty = errors.New("queue is empty")

// FIFOQueue is an unbounded goroutine safe queue.
// Ready fires at least once after every Push so a consumer can sleep while the queue is empty.
type FIFOQueue struct {
	queue *queue.LockfreeQueue
	size  int64
	ready chan struct{}
}

func New() *FIFOQueue {
	return &FIFOQueue{
		queue: queue.NewLockfreeQueue(),
		size:  0,
		ready: make(chan struct{}, 1),
	}
}

func (q *FIFOQueue) Push(v interface{}) error {
	if v == nil {
		return errors.New("cannot push nil")
	}
	atomic.AddInt64(&q.size, 1)
	q.queue.Push(v)

	select {
	case q.ready <- struct{}{}:
	default:
		// a wake up is already pending
	}
	return nil
}

// Pop returns ErrEmpty when there is nothing to take.
func (q *FIFOQueue) Pop() (interface{}, error) {
	v := q.queue.Pop()
	if v == nil {
		return nil, ErrEmpty
	}
	atomic.AddInt64(&q.size, -1)
	return v, nil
}

func (q *FIFOQueue) Len() int {
	return int(atomic.LoadInt64(&q.size))
}

func (q *FIFOQueue) Ready() <-chan struct{} {
	return q.ready
}
