package usecase

import "sync"

// RepairLocker serializes mutations per repair id.
//
// Repairs are persisted as whole documents (replace-on-save), so two
// concurrent mutations of the same aggregate would race last-write-wins and
// drop history entries. The lock is held across load-mutate-save inside each
// use case operation; distinct repairs never contend.
type RepairLocker struct {
	mu    sync.Mutex
	locks map[string]*repairLock
}

type repairLock struct {
	mu   sync.Mutex
	refs int
}

func NewRepairLocker() *RepairLocker {
	return &RepairLocker{locks: map[string]*repairLock{}}
}

// Lock acquires the lock for the given repair id and returns its release
// function. Entries are reference counted and removed once unused so the map
// does not grow with every repair ever touched.
func (l *RepairLocker) Lock(id string) (unlock func()) {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &repairLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
