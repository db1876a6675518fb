package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseWorkDay(t *testing.T) {
	wd, err := ParseWorkDay("09:00", "17:00", 30)
	require.NoError(t, err)
	require.Equal(t, 9*60, wd.StartMinutes)
	require.Equal(t, 17*60, wd.EndMinutes)
	require.Equal(t, 30*time.Minute, wd.SlotDuration)

	_, err = ParseWorkDay("17:00", "09:00", 30)
	require.Error(t, err)

	_, err = ParseWorkDay("09:00", "17:00", 0)
	require.Error(t, err)

	_, err = ParseWorkDay("9am", "17:00", 30)
	require.Error(t, err)
}

func TestSlotsFullGrid(t *testing.T) {
	wd, err := ParseWorkDay("09:00", "17:00", 30)
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	// Day in the future relative to now: everything available.
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	slots := wd.Slots(day, nil, now)
	require.Len(t, slots, 16)

	require.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), slots[0].Start)
	require.Equal(t, time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC), slots[15].Start)
	require.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), slots[15].End)
	require.Equal(t, "09:00 - 09:30", slots[0].Label)

	for i, s := range slots {
		require.True(t, s.Available, "slot %d should be available", i)
		if i > 0 {
			require.True(t, slots[i-1].Start.Before(s.Start), "slots must ascend")
		}
	}
}

func TestSlotsDropsPartialTrailingPeriod(t *testing.T) {
	// 09:00-17:15 with 30m slots: the 17:00-17:30 slot does not fit and
	// the 15-minute remainder is dropped, not emitted short.
	wd, err := ParseWorkDay("09:00", "17:15", 30)
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	slots := wd.Slots(day, nil, now)
	require.Len(t, slots, 16)
	require.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), slots[15].End)
}

func TestSlotsMasksBusyIntervals(t *testing.T) {
	wd, err := ParseWorkDay("09:00", "17:00", 30)
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	busy := []Interval{
		// Exactly the 10:00 slot.
		{Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)},
		// Straddles two slots: 11:15-11:45 knocks out 11:00 and 11:30.
		{Start: time.Date(2026, 3, 2, 11, 15, 0, 0, time.UTC), End: time.Date(2026, 3, 2, 11, 45, 0, 0, time.UTC)},
	}

	slots := wd.Slots(day, busy, now)
	require.Len(t, slots, 16)

	byLabel := map[string]bool{}
	for _, s := range slots {
		byLabel[s.Label] = s.Available
	}

	require.False(t, byLabel["10:00 - 10:30"])
	require.False(t, byLabel["11:00 - 11:30"])
	require.False(t, byLabel["11:30 - 12:00"])

	// A busy interval ending exactly at a slot start does not mask it.
	require.True(t, byLabel["10:30 - 11:00"])
	require.True(t, byLabel["09:30 - 10:00"])
	require.True(t, byLabel["12:00 - 12:30"])
}

func TestSlotsPastSlotsUnavailable(t *testing.T) {
	wd, err := ParseWorkDay("09:00", "17:00", 30)
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	// Mid-day: 10:15. Slots starting at or before now are gone.
	now := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)

	slots := wd.Slots(day, nil, now)
	require.Len(t, slots, 16)

	for _, s := range slots {
		if !s.Start.After(now) {
			require.False(t, s.Available, "slot %s starts in the past", s.Label)
		} else {
			require.True(t, s.Available, "slot %s is in the future", s.Label)
		}
	}

	// 10:00 started, 10:30 has not.
	require.False(t, slots[2].Available)
	require.True(t, slots[3].Available)
}
