package entitlement

import (
	"context"
	"sync"

	"github.com/ringlite/ringlite/internal/cmn/logger"
	"github.com/ringlite/ringlite/internal/cmn/logger/tag"
)

// Manager implements the trial quota and activation policy on top of a Store.
//
// Every operation re-reads the record, so the store stays the single source
// of truth. Read failures fall back to the initial record; write failures are
// logged and never change the returned result.
type Manager struct {
	store      Store
	verifier   Verifier
	locker     Locker
	onDegraded func(error)
	mu         sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithLocker sets the cross-process lock. By default the store is used when
// it implements Locker.
func WithLocker(l Locker) Option {
	return func(m *Manager) {
		m.locker = l
	}
}

// WithPersistenceObserver registers fn to be called whenever a record could
// not be persisted.
func WithPersistenceObserver(fn func(error)) Option {
	return func(m *Manager) {
		m.onDegraded = fn
	}
}

// NewManager creates a Manager backed by store, activating keys with verifier.
func NewManager(store Store, verifier Verifier, opts ...Option) *Manager {
	m := &Manager{store: store, verifier: verifier}
	if l, ok := store.(Locker); ok {
		m.locker = l
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Status returns the current license state without modifying it.
func (m *Manager) Status(ctx context.Context) Status {
	defer m.acquire(ctx)()
	return m.load(ctx).status()
}

// RecordUse counts one billable action while unlicensed and returns the
// resulting state. It is a no-op once licensed.
func (m *Manager) RecordUse(ctx context.Context) Status {
	defer m.acquire(ctx)()

	rec := m.load(ctx)
	if rec.recordUse() {
		m.save(ctx, rec)
		logger.Debug(ctx, "Use recorded", tag.UseCount(rec.UseCount))
	}
	return rec.status()
}

// Activate verifies rawKey and, on success, marks the installation licensed
// and returns the email the key was issued to. Verification errors are
// returned unchanged and leave the record untouched.
func (m *Manager) Activate(ctx context.Context, rawKey string) (string, error) {
	email, err := m.verifier.Verify(rawKey)
	if err != nil {
		return "", err
	}

	defer m.acquire(ctx)()

	rec := m.load(ctx)
	rec.activate(rawKey)
	m.save(ctx, rec)

	logger.Info(ctx, "License activated", tag.Email(email))
	return email, nil
}

// ShouldNag reports whether the user has used up the free quota without
// activating a license.
func (m *Manager) ShouldNag(ctx context.Context) bool {
	defer m.acquire(ctx)()
	return m.load(ctx).shouldNag()
}

// acquire takes the in-process mutex and, when configured, the cross-process
// lock. If the latter is unavailable the operation continues without it.
func (m *Manager) acquire(ctx context.Context) func() {
	m.mu.Lock()
	if m.locker == nil {
		return m.mu.Unlock
	}
	unlock, err := m.locker.Lock(ctx)
	if err != nil {
		logger.Warn(ctx, "Entitlement lock unavailable, continuing unguarded", tag.Error(err))
		return m.mu.Unlock
	}
	return func() {
		unlock()
		m.mu.Unlock()
	}
}

func (m *Manager) load(ctx context.Context) *Record {
	rec, err := m.store.Load()
	if err != nil {
		logger.Warn(ctx, "Discarding unreadable entitlement record", tag.Error(err))
		return NewRecord()
	}
	if rec == nil {
		return NewRecord()
	}
	if err := rec.Validate(); err != nil {
		logger.Warn(ctx, "Discarding inconsistent entitlement record", tag.Error(err))
		return NewRecord()
	}
	return rec
}

func (m *Manager) save(ctx context.Context, rec *Record) {
	if err := m.store.Save(rec); err != nil {
		logger.Warn(ctx, "Entitlement persistence degraded", tag.Error(err))
		if m.onDegraded != nil {
			m.onDegraded(err)
		}
	}
}
