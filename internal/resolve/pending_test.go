package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingRegistry_PutTake(t *testing.T) {
	reg := newPendingRegistry(30 * time.Minute)

	set := &CandidateSet{Barcode: "111", CleanTitle: "The Matrix"}
	reg.put("111", set)

	got, err := reg.take("111")
	require.NoError(t, err)
	assert.Same(t, set, got)

	// take consumes the entry.
	_, err = reg.take("111")
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestPendingRegistry_PutReplaces(t *testing.T) {
	reg := newPendingRegistry(30 * time.Minute)

	reg.put("111", &CandidateSet{CleanTitle: "first"})
	second := &CandidateSet{CleanTitle: "second"}
	reg.put("111", second)

	got, err := reg.take("111")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestPendingRegistry_Expiry(t *testing.T) {
	reg := newPendingRegistry(30 * time.Minute)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return current }

	reg.put("111", &CandidateSet{})
	current = current.Add(31 * time.Minute)

	_, err := reg.take("111")
	assert.ErrorIs(t, err, ErrPendingExpired)

	// The expired entry is gone, not retryable.
	_, err = reg.take("111")
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestPendingRegistry_Sweep(t *testing.T) {
	reg := newPendingRegistry(30 * time.Minute)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return current }

	reg.put("old", &CandidateSet{})
	current = current.Add(45 * time.Minute)
	reg.put("fresh", &CandidateSet{})

	assert.Equal(t, 1, reg.sweep())

	_, err := reg.take("fresh")
	assert.NoError(t, err)
	_, err = reg.take("old")
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestPendingRegistry_ZeroTTLNeverExpires(t *testing.T) {
	reg := newPendingRegistry(0)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return current }

	reg.put("111", &CandidateSet{})
	current = current.Add(24 * time.Hour)

	assert.Equal(t, 0, reg.sweep())
	_, err := reg.take("111")
	assert.NoError(t, err)
}
