package entitlement

import (
	"context"
	"errors"
	"math"
)

// MaxFreeUses is the number of billable actions allowed before the user is
// asked to activate a license.
const MaxFreeUses uint32 = 10

// ErrInconsistentRecord is reported for a record marked licensed without a key.
var ErrInconsistentRecord = errors.New("entitlement record is licensed but has no license key")

// Record is the persisted entitlement state of one installation.
type Record struct {
	UseCount   uint32  `json:"use_count"`
	LicenseKey *string `json:"license_key"`
	IsLicensed bool    `json:"is_licensed"`
}

// NewRecord returns the initial record of a fresh installation.
func NewRecord() *Record {
	return &Record{}
}

// Validate checks the record invariants.
func (r *Record) Validate() error {
	if r.IsLicensed && r.LicenseKey == nil {
		return ErrInconsistentRecord
	}
	return nil
}

// recordUse counts one billable action and reports whether the record changed.
// Licensed records are frozen.
func (r *Record) recordUse() bool {
	if r.IsLicensed || r.UseCount == math.MaxUint32 {
		return false
	}
	r.UseCount++
	return true
}

func (r *Record) activate(rawKey string) {
	r.LicenseKey = &rawKey
	r.IsLicensed = true
}

func (r *Record) shouldNag() bool {
	return !r.IsLicensed && r.UseCount >= MaxFreeUses
}

func (r *Record) status() Status {
	return Status{
		IsLicensed:  r.IsLicensed,
		UseCount:    r.UseCount,
		MaxFreeUses: MaxFreeUses,
	}
}

// Status is the license state reported to the host application.
type Status struct {
	IsLicensed  bool   `json:"is_licensed"`
	UseCount    uint32 `json:"use_count"`
	MaxFreeUses uint32 `json:"max_free_uses"`
}

// RemainingFreeUses returns how many free uses are left, zero once the
// quota is exhausted or irrelevant.
func (s Status) RemainingFreeUses() uint32 {
	if s.IsLicensed || s.UseCount >= s.MaxFreeUses {
		return 0
	}
	return s.MaxFreeUses - s.UseCount
}

// Store persists the entitlement record.
type Store interface {
	// Load returns the stored record, or nil, nil when none exists yet.
	Load() (*Record, error)
	// Save replaces the stored record as a whole.
	Save(rec *Record) error
}

// Locker guards a load-modify-save sequence across processes.
type Locker interface {
	// Lock blocks until the lock is held or ctx is done. The returned
	// function releases the lock.
	Lock(ctx context.Context) (unlock func(), err error)
}

// Verifier validates a license key and returns the email it was issued to.
type Verifier interface {
	Verify(rawKey string) (string, error)
}
