// Package ingest feeds device-scanned barcodes into the resolver: one
// producer per hardware stream, one unbounded FIFO queue, one serialized
// consumer. Barcodes are resolved strictly in arrival order.
package ingest

import "sync"

// Queue is an unbounded FIFO for barcode tokens. Push never blocks, so the
// device producer can keep draining the hardware buffer while the consumer
// waits on slow network lookups.
type Queue struct {
	mu     sync.Mutex
	items  []string
	notify chan struct{} // 1-buffered wakeup signal
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		notify: make(chan struct{}, 1),
	}
}

// Push appends a token. Pushing to a closed queue is a no-op.
func (q *Queue) Push(token string) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, token)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Wait returns a channel that signals when tokens may be available.
func (q *Queue) Wait() <-chan struct{} {
	return q.notify
}

// Pop removes and returns the oldest token. Returns false when the queue is
// empty or closed and drained.
func (q *Queue) Pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return "", false
	}
	token := q.items[0]
	q.items = q.items[1:]
	return token, true
}

// Len returns the number of queued tokens.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops accepting tokens and wakes the consumer. Queued tokens remain
// poppable.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Closed reports whether the queue stopped accepting tokens.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
