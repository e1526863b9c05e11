package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseops/debate-signup/pkg/core/model"
)

func TestDayKey_ISOFormat(t *testing.T) {
	key, err := DayKey("2025-09-26 10:10")
	require.NoError(t, err)
	assert.Equal(t, "Sep 26", key)
}

func TestDayKey_ISOFormat_DateOnly(t *testing.T) {
	key, err := DayKey("2025-09-20")
	require.NoError(t, err)
	assert.Equal(t, "Sep 20", key)
}

func TestDayKey_TextualFallback(t *testing.T) {
	key, err := DayKey("Sep 26 10:10")
	require.NoError(t, err)
	assert.Equal(t, "Sep 26", key)
}

func TestDayKey_ZeroPadsDay(t *testing.T) {
	// Keys must come out zero-padded so they match config entries like "Nov 07"
	key, err := DayKey("2025-11-07 14:00")
	require.NoError(t, err)
	assert.Equal(t, "Nov 07", key)

	key, err = DayKey("Nov 7 14:00")
	require.NoError(t, err)
	assert.Equal(t, "Nov 07", key)
}

func TestDayKey_Unparseable(t *testing.T) {
	for _, dateTime := range []string{"", "   ", "next tuesday", "26/09/2025 10:10", "September"} {
		_, err := DayKey(dateTime)
		assert.Error(t, err, "expected error for %q", dateTime)
	}
}

func testPolicy(t *testing.T) *Policy {
	t.Helper()
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	return NewPolicy(Schedule{
		"Sep 26": time.Date(2025, 9, 24, 0, 0, 0, 0, loc),
		"Oct 10": time.Date(2025, 10, 8, 0, 0, 0, 0, loc),
	})
}

func TestInstant_KnownDay(t *testing.T) {
	policy := testPolicy(t)

	rec := model.DebateRecord{ID: 1, DateTime: "2025-09-26 10:10"}
	instant, ok := policy.Instant(rec)
	require.True(t, ok)
	assert.Equal(t, time.September, instant.Month())
	assert.Equal(t, 24, instant.Day())
}

func TestInstant_UnknownDay(t *testing.T) {
	policy := testPolicy(t)

	_, ok := policy.Instant(model.DebateRecord{ID: 2, DateTime: "2025-12-31 10:00"})
	assert.False(t, ok)
}

func TestInstant_UnparseableDate(t *testing.T) {
	policy := testPolicy(t)

	_, ok := policy.Instant(model.DebateRecord{ID: 3, DateTime: "whenever"})
	assert.False(t, ok)
}

func TestInstant_Pure(t *testing.T) {
	policy := testPolicy(t)
	rec := model.DebateRecord{ID: 1, DateTime: "2025-09-26 10:10"}

	first, ok1 := policy.Instant(rec)
	// Interleave unrelated lookups; the result must not depend on call order
	policy.Instant(model.DebateRecord{ID: 9, DateTime: "2025-12-31"})
	policy.InstantForDate("garbage")
	second, ok2 := policy.Instant(rec)

	assert.Equal(t, ok1, ok2)
	assert.True(t, first.Equal(second))
}

func TestKeys_ChronologicalOrder(t *testing.T) {
	policy := testPolicy(t)
	assert.Equal(t, []string{"Sep 26", "Oct 10"}, policy.Keys())
}
