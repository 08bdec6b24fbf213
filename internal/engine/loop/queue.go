package loop

import "sync"

// Queue is a Scheduler the host drains once per display refresh.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// RequestFrame implements Scheduler.
func (q *Queue) RequestFrame(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// RunPending runs the callbacks requested before the call and returns how
// many ran. Callbacks requested while running wait for the next call.
func (q *Queue) RunPending() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of waiting callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
