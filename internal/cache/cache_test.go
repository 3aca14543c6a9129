package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTiers() (*Shared, *Scratch) {
	shared := NewShared(time.Minute, time.Minute)
	return shared, NewScratch(shared)
}

// TestScratch_SetDoesNotTouchShared verifies that a buffered write is not
// visible in the shared tier before Flush.
func TestScratch_SetDoesNotTouchShared(t *testing.T) {
	shared, scratch := newTestTiers()

	scratch.Set("k", "v", 0)

	_, ok := shared.TryGet("k")
	assert.False(t, ok, "buffered write must not be visible in shared tier")
}

// TestScratch_TryGetPrefersBuffer verifies that the buffer shadows the
// shared tier for the same key.
func TestScratch_TryGetPrefersBuffer(t *testing.T) {
	shared, scratch := newTestTiers()
	shared.backing.Set("k", "shared-value", time.Minute)

	scratch.Set("k", "buffered-value", 0)

	value, ok := scratch.TryGet("k")
	require.True(t, ok)
	assert.Equal(t, "buffered-value", value)
}

// TestScratch_TryGetFallsThrough verifies that a key absent from the buffer
// is read from the shared tier.
func TestScratch_TryGetFallsThrough(t *testing.T) {
	shared, scratch := newTestTiers()
	shared.backing.Set("k", "shared-value", time.Minute)

	value, ok := scratch.TryGet("k")
	require.True(t, ok)
	assert.Equal(t, "shared-value", value)
}

// TestScratch_GetReturnsNilWhenAbsent verifies the nil-on-miss contract.
func TestScratch_GetReturnsNilWhenAbsent(t *testing.T) {
	_, scratch := newTestTiers()
	assert.Nil(t, scratch.Get("missing"))
}

// TestScratch_FlushPublishesBuffer verifies that after Flush every buffered
// entry is readable from the shared tier.
func TestScratch_FlushPublishesBuffer(t *testing.T) {
	shared, scratch := newTestTiers()

	scratch.Set("a", 1, 0)
	scratch.Set("b", 2, time.Hour)
	scratch.Flush()

	valueA, okA := shared.TryGet("a")
	valueB, okB := shared.TryGet("b")
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, 1, valueA)
	assert.Equal(t, 2, valueB)
}

// TestScratch_FlushEmptiesBuffer verifies that Flush leaves the buffer empty
// so a later Clear cannot discard already-published entries.
func TestScratch_FlushEmptiesBuffer(t *testing.T) {
	shared, scratch := newTestTiers()

	scratch.Set("a", 1, 0)
	scratch.Flush()
	scratch.Clear()

	_, ok := shared.TryGet("a")
	assert.True(t, ok, "Clear after Flush must not remove published entries")
}

// TestScratch_ClearDiscardsBuffer verifies that cleared writes never become
// visible, matching rollback semantics.
func TestScratch_ClearDiscardsBuffer(t *testing.T) {
	shared, scratch := newTestTiers()

	scratch.Set("k", "v", 0)
	scratch.Clear()
	scratch.Flush()

	_, ok := shared.TryGet("k")
	assert.False(t, ok, "cleared write must not be published by a later Flush")

	_, ok = scratch.TryGet("k")
	assert.False(t, ok)
}

// TestScratch_BuffersAreIndependent verifies that two scratch instances over
// the same shared tier do not observe each other's unflushed writes.
func TestScratch_BuffersAreIndependent(t *testing.T) {
	shared := NewShared(time.Minute, time.Minute)
	first := NewScratch(shared)
	second := NewScratch(shared)

	first.Set("k", "from-first", 0)

	_, ok := second.TryGet("k")
	assert.False(t, ok, "unflushed writes must stay private to their event")

	first.Flush()

	value, ok := second.TryGet("k")
	require.True(t, ok)
	assert.Equal(t, "from-first", value)
}

// TestScratch_FlushAppliesTTL verifies that an explicit TTL is honored by
// the shared tier.
func TestScratch_FlushAppliesTTL(t *testing.T) {
	shared := NewShared(time.Minute, time.Minute)
	scratch := NewScratch(shared)

	scratch.Set("short", "v", 15*time.Millisecond)
	scratch.Flush()

	_, ok := shared.TryGet("short")
	require.True(t, ok)

	time.Sleep(30 * time.Millisecond)

	_, ok = shared.TryGet("short")
	assert.False(t, ok, "entry should have expired")
}
