package appointment

import (
	"sync"

	"github.com/google/uuid"
)

// practitionerLocks serializes bookings per practitioner so the overlap
// check and the insert commit as one unit. Bookings for different
// practitioners never contend.
type practitionerLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newPractitionerLocks() *practitionerLocks {
	return &practitionerLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *practitionerLocks) lockFor(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}
