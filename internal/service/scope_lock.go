package service

import "sync"

// scopeLocks grants exclusive ownership of a generation scope to one run at a time.
type scopeLocks struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newScopeLocks() *scopeLocks {
	return &scopeLocks{active: make(map[string]struct{})}
}

// TryAcquire claims scope and reports false when another run already holds it.
func (l *scopeLocks) TryAcquire(scope string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, held := l.active[scope]; held {
		return false
	}
	l.active[scope] = struct{}{}
	return true
}

// Release hands scope back.
func (l *scopeLocks) Release(scope string) {
	l.mu.Lock()
	delete(l.active, scope)
	l.mu.Unlock()
}
