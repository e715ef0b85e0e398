package commands

import "sync"

// idLocks serializes mutations per reservation id. A second confirm/cancel
// for the same id queues behind the first instead of racing it; reads never
// take these locks.
type idLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newIDLocks() *idLocks {
	return &idLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *idLocks) lock(id int64) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
