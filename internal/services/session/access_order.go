package session

import "sync"

// accessOrder runs access changes in the order their state changes were
// committed. A turn is taken while the session lock is held and the change
// runs once every earlier turn has finished. Every turn taken must be run.
type accessOrder struct {
	mu      sync.Mutex
	cond    *sync.Cond
	next    uint64
	serving uint64
}

func newAccessOrder() *accessOrder {
	o := &accessOrder{}
	o.cond = sync.NewCond(&o.mu)
	return o
}

// take reserves the next turn. Callers must hold the session lock.
func (o *accessOrder) take() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	turn := o.next
	o.next++
	return turn
}

// run waits for turn, calls fn and hands over to the next turn
func (o *accessOrder) run(turn uint64, fn func()) {
	o.mu.Lock()
	for o.serving != turn {
		o.cond.Wait()
	}
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.serving++
		o.cond.Broadcast()
		o.mu.Unlock()
	}()

	fn()
}
