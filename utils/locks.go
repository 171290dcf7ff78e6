package utils

import "sync"

// AppLocks serializes mutating operations per application so a review racing
// a stage-completion check always observes a consistent submission set.
// Different applications proceed in parallel. Lock entries are never reaped;
// the per-application footprint is one mutex.
type AppLocks struct {
	locks sync.Map
}

func NewAppLocks() *AppLocks {
	return &AppLocks{}
}

func (l *AppLocks) Lock(applicationID uint) func() {
	v, _ := l.locks.LoadOrStore(applicationID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
