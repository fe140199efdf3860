package booking

import (
	"context"
	"fmt"
	"sync"
)

// Local is a Locker for a single process.
type Local struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

func NewLocal() *Local {
	return &Local{held: map[string]chan struct{}{}}
}

func (l *Local) acquire(ctx context.Context, key string) error {
	for {
		l.mu.Lock()
		wait, busy := l.held[key]
		if !busy {
			l.held[key] = make(chan struct{})
			l.mu.Unlock()
			return nil
		}
		l.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return fmt.Errorf("%w for %s: %w", ErrBusy, key, ctx.Err())
		}
	}
}

func (l *Local) release(key string) {
	l.mu.Lock()
	ch, ok := l.held[key]
	delete(l.held, key)
	l.mu.Unlock()
	if ok {
		close(ch)
	}
}

func (l *Local) Lock(ctx context.Context, keys []string) (func(), error) {
	for i, key := range keys {
		if err := l.acquire(ctx, key); err != nil {
			for _, k := range keys[:i] {
				l.release(k)
			}
			return nil, err
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(keys) - 1; i >= 0; i-- {
				l.release(keys[i])
			}
		})
	}, nil
}
