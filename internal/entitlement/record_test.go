package entitlement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	key := "k"
	tests := []struct {
		name    string
		rec     Record
		wantErr error
	}{
		{name: "initial", rec: Record{}},
		{name: "unlicensed with stale key", rec: Record{LicenseKey: &key}},
		{name: "licensed with key", rec: Record{IsLicensed: true, LicenseKey: &key}},
		{name: "licensed without key", rec: Record{IsLicensed: true}, wantErr: ErrInconsistentRecord},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.rec.Validate()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRecord_RecordUse(t *testing.T) {
	t.Parallel()

	t.Run("unlicensed increments", func(t *testing.T) {
		t.Parallel()
		rec := NewRecord()
		assert.True(t, rec.recordUse())
		assert.Equal(t, uint32(1), rec.UseCount)
	})

	t.Run("licensed is frozen", func(t *testing.T) {
		t.Parallel()
		rec := NewRecord()
		rec.UseCount = 4
		rec.activate("key")
		assert.False(t, rec.recordUse())
		assert.Equal(t, uint32(4), rec.UseCount)
	})

	t.Run("saturates instead of wrapping", func(t *testing.T) {
		t.Parallel()
		rec := &Record{UseCount: math.MaxUint32}
		assert.False(t, rec.recordUse())
		assert.Equal(t, uint32(math.MaxUint32), rec.UseCount)
	})
}

func TestRecord_ShouldNag(t *testing.T) {
	t.Parallel()

	rec := NewRecord()
	for rec.UseCount < MaxFreeUses {
		assert.False(t, rec.shouldNag(), "use_count=%d", rec.UseCount)
		rec.recordUse()
	}
	assert.True(t, rec.shouldNag())

	rec.activate("key")
	assert.False(t, rec.shouldNag())
}

func TestStatus_RemainingFreeUses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(10), Status{MaxFreeUses: 10}.RemainingFreeUses())
	assert.Equal(t, uint32(3), Status{UseCount: 7, MaxFreeUses: 10}.RemainingFreeUses())
	assert.Equal(t, uint32(0), Status{UseCount: 12, MaxFreeUses: 10}.RemainingFreeUses())
	assert.Equal(t, uint32(0), Status{IsLicensed: true, UseCount: 2, MaxFreeUses: 10}.RemainingFreeUses())
}
