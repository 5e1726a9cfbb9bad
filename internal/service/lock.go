package service

import (
	"sync"

	"bank-payment-service/internal/core/domain"
)

// accountLocks serializes payments per account. The daily-limit check and
// the debit/credit mutation form a check-then-act sequence; two payments
// touching the same account must not interleave between them.
//
// The map keeps one mutex per account id seen and never prunes; memory
// grows with the number of distinct accounts a process has transacted
// on. TODO: switch to an evicting structure if account cardinality ever
// outgrows that.
type accountLocks struct {
	mu    sync.Mutex
	locks map[domain.AccountID]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[domain.AccountID]*sync.Mutex)}
}

func (l *accountLocks) get(id domain.AccountID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// lock acquires both account locks in id order so two transfers in
// opposite directions cannot deadlock. The returned func releases both.
func (l *accountLocks) lock(a, b domain.AccountID) func() {
	first, second := a, b
	if second.String() < first.String() {
		first, second = second, first
	}

	fm := l.get(first)
	fm.Lock()
	if first == second {
		return fm.Unlock
	}

	sm := l.get(second)
	sm.Lock()
	return func() {
		sm.Unlock()
		fm.Unlock()
	}
}
