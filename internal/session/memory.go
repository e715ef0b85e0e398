package session

import (
	"context"
	"sync"
)

// MemoryBackend keeps the record in process memory. Test use only; it does
// not survive a restart.
type MemoryBackend struct {
	mu  sync.Mutex
	rec *Record
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(_ context.Context) (*Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.rec == nil {
		return nil, nil
	}
	rec := *b.rec
	return &rec, nil
}

func (b *MemoryBackend) Save(_ context.Context, rec Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rec = &rec
	return nil
}

func (b *MemoryBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rec = nil
	return nil
}
