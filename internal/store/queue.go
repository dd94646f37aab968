// Package store provides the write-behind queue that serializes database
// writes behind the UI loop. State changes apply in memory immediately; the
// matching writes land on disk in the order they were produced.
package store

import (
	"context"
	"sync"
)

// Op is a single queued write. The context is the queue's lifetime context.
type Op func(ctx context.Context)

// Queue runs ops on a single worker goroutine in enqueue order. Enqueue
// blocks when the buffer is full rather than dropping or reordering writes.
type Queue struct {
	ops    chan Op
	done   chan struct{}
	cancel context.CancelFunc
	once   sync.Once
}

// NewQueue starts the worker. depth is the channel buffer size; non-positive
// values get a buffer of 1.
func NewQueue(depth int) *Queue {
	if depth <= 0 {
		depth = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		ops:    make(chan Op, depth),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go q.run(ctx)
	return q
}

func (q *Queue) run(ctx context.Context) {
	defer close(q.done)
	for op := range q.ops {
		op(ctx)
	}
}

// Enqueue hands an op to the worker. Blocks while the buffer is full so that
// write order always matches state-change order. Panics if called after
// Close, which is a programming error.
func (q *Queue) Enqueue(op Op) {
	q.ops <- op
}

// Close stops accepting ops, drains everything already queued, and returns
// once the last write has run. Safe to call more than once.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.ops)
		<-q.done
		q.cancel()
	})
}
