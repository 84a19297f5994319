package expiry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestEvaluateFreshItem(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	item := Item{
		Name:        "carrot",
		Remains:     1.0,
		AddedAt:     now.AddDate(0, 0, -3),
		StorageDays: intPtr(10),
	}

	u := Evaluate(item, now)

	require.True(t, u.Known)
	assert.Equal(t, 7, u.RemainingDays)
	assert.InDelta(t, 0.7, u.Ratio, 1e-9)
	assert.Equal(t, "green-300", u.Color)
	assert.Equal(t, "D-7", u.Status)
}

func TestEvaluateExpiredItem(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	item := Item{
		Name:        "spinach",
		Remains:     0.5,
		AddedAt:     now.AddDate(0, 0, -8),
		StorageDays: intPtr(7),
	}

	u := Evaluate(item, now)

	require.True(t, u.Known)
	assert.Equal(t, -1, u.RemainingDays)
	assert.InDelta(t, -1.0/7.0, u.Ratio, 1e-9)
	assert.Equal(t, ColorExpired, u.Color)
	assert.Equal(t, "D+1", u.Status)
}

func TestEvaluateExpiredBandIsTerminal(t *testing.T) {
	// The expired band never varies with how overdue an item is.
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	for _, daysOver := range []int{0, 1, 30, 365} {
		item := Item{
			AddedAt:     now.AddDate(0, 0, -(5 + daysOver)),
			StorageDays: intPtr(5),
		}
		u := Evaluate(item, now)
		assert.Equal(t, ColorExpired, u.Color, "overdue by %d days", daysOver)
		assert.Equal(t, fmt.Sprintf("D+%d", daysOver), u.Status)
		assert.LessOrEqual(t, u.Ratio, 0.0)
	}
}

func TestEvaluateColorBands(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		remaining int
		color     string
	}{
		{10, "green-500"},
		{9, "green-500"},
		{8, "green-400"},
		{7, "green-300"},
		{6, "yellow-400"},
		{5, "yellow-500"},
		{4, "orange-400"},
		{3, "orange-500"},
		{2, "red-400"},
		{1, "red-500"},
	}

	for _, tc := range cases {
		item := Item{
			AddedAt:     now.AddDate(0, 0, tc.remaining-10),
			StorageDays: intPtr(10),
		}
		u := Evaluate(item, now)
		require.Equal(t, tc.remaining, u.RemainingDays)
		assert.Equal(t, tc.color, u.Color, "remaining=%d", tc.remaining)
	}
}

func TestEvaluateBottomBand(t *testing.T) {
	// Ratio below 0.1 but still positive lands in the last fresh band.
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	item := Item{
		AddedAt:     now.AddDate(0, 0, -19),
		StorageDays: intPtr(20),
	}
	u := Evaluate(item, now)
	require.Equal(t, 1, u.RemainingDays)
	assert.Equal(t, "red-600", u.Color)
}

func TestEvaluateDegradesToUnknown(t *testing.T) {
	now := time.Now()

	cases := map[string]Item{
		"missing storage days": {AddedAt: now.AddDate(0, 0, -1)},
		"zero storage days":    {AddedAt: now.AddDate(0, 0, -1), StorageDays: intPtr(0)},
		"missing added date":   {StorageDays: intPtr(7)},
	}

	for name, item := range cases {
		t.Run(name, func(t *testing.T) {
			u := Evaluate(item, now)
			assert.False(t, u.Known)
			assert.Zero(t, u.Ratio)
			assert.Equal(t, ColorUnknown, u.Color)
			assert.Equal(t, StatusUnknown, u.Status)
		})
	}
}

func TestEvaluateTruncatesToWholeDays(t *testing.T) {
	// 2 days and 20 hours elapsed counts as 2 days.
	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	item := Item{
		AddedAt:     time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		StorageDays: intPtr(10),
	}

	u := Evaluate(item, now)
	assert.Equal(t, 8, u.RemainingDays)
}
