package browse

import (
	"context"
	"sync"
)

// Handle identifies one running task.
type Handle uint64

// Tasks tracks cancellable background work owned by a screen. The zero value
// is ready to use.
type Tasks struct {
	mu      sync.Mutex
	next    Handle
	cancels map[Handle]context.CancelFunc
}

// Go derives a cancellable context from parent and registers it.
func (t *Tasks) Go(parent context.Context) (context.Context, Handle) {
	ctx, cancel := context.WithCancel(parent)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancels == nil {
		t.cancels = make(map[Handle]context.CancelFunc)
	}
	t.next++
	t.cancels[t.next] = cancel
	return ctx, t.next
}

// Done releases a finished task.
func (t *Tasks) Done(h Handle) {
	t.mu.Lock()
	cancel, ok := t.cancels[h]
	delete(t.cancels, h)
	t.mu.Unlock()
	if ok {
		cancel()
	}
}

// Cancel aborts one task. Unknown handles are ignored.
func (t *Tasks) Cancel(h Handle) {
	t.Done(h)
}

// CancelAll aborts every pending task.
func (t *Tasks) CancelAll() {
	t.mu.Lock()
	cancels := t.cancels
	t.cancels = nil
	t.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// Pending returns the number of registered tasks.
func (t *Tasks) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cancels)
}
