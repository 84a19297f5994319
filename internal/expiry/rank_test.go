package expiry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkeep/backend/internal/model"
)

func rankItem(name string, remaining, storageDays int, now time.Time) Item {
	return Item{
		Name:        name,
		Remains:     1.0,
		AddedAt:     now.AddDate(0, 0, remaining-storageDays),
		StorageDays: intPtr(storageDays),
		Category:    model.CategoryVegetable,
	}
}

func TestRankForDisplayOrdersByUrgency(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	items := []Item{
		rankItem("lettuce", 9, 10, now),
		rankItem("spinach", 1, 10, now),
		rankItem("potato", 20, 30, now),
	}

	list := RankForDisplay(items, now, 10)

	require.Len(t, list.Items, 3)
	assert.Equal(t, []string{"spinach", "potato", "lettuce"}, list.DisplayNames)
	assert.Equal(t, 3, list.TotalCount)
}

func TestRankForDisplayExcludesFruitAndConsumed(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	apple := rankItem("apple", 1, 21, now) // most urgent, but fruit
	apple.Category = model.CategoryFruit
	eaten := rankItem("tofu", 3, 7, now)
	eaten.Remains = 0

	items := []Item{apple, eaten, rankItem("onion", 40, 60, now)}

	list := RankForDisplay(items, now, 10)

	require.Equal(t, []string{"onion"}, list.DisplayNames)
	assert.Equal(t, 1, list.TotalCount)
}

func TestRankForDisplayFrozenComeLast(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// The frozen item is far more urgent than the fresh ones but still
	// sorts after them; freezing does not stop its shelf clock either,
	// so among frozen items the most overdue ranks first.
	frozenOld := rankItem("pork", -5, 5, now)
	frozenOld.Frozen = true
	frozenNew := rankItem("beef", 2, 5, now)
	frozenNew.Frozen = true

	items := []Item{frozenNew, rankItem("cabbage", 10, 21, now), frozenOld}

	list := RankForDisplay(items, now, 10)

	assert.Equal(t, []string{"cabbage", "pork", "beef"}, list.DisplayNames)
}

func TestRankForDisplayDedupKeepsMostUrgent(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	items := []Item{
		rankItem("mushroom", 6, 7, now),
		rankItem("mushroom", 1, 7, now),
	}

	list := RankForDisplay(items, now, 10)

	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Items[0].Urgency.RemainingDays)
	assert.Equal(t, 1, list.TotalCount)
}

func TestRankForDisplayBoundAndTotalCount(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	var items []Item
	for i := 0; i < 15; i++ {
		items = append(items, rankItem(fmt.Sprintf("item-%02d", i), i+1, 30, now))
	}

	list := RankForDisplay(items, now, 10)

	assert.Len(t, list.Items, 10)
	assert.Len(t, list.DisplayNames, 10)
	// Truncation must not hide eligible names from the total.
	assert.Equal(t, 15, list.TotalCount)

	seen := map[string]bool{}
	for _, name := range list.DisplayNames {
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestRankForDisplayZeroBoundReturnsNothing(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	items := []Item{rankItem("lettuce", 3, 10, now)}

	list := RankForDisplay(items, now, 0)

	assert.Empty(t, list.Items)
	assert.Empty(t, list.DisplayNames)
	assert.Equal(t, 1, list.TotalCount)
}

func TestRankForDisplayUnknownUrgencySortsByZeroRatio(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	unknown := Item{Name: "mystery", Remains: 1.0, Category: model.CategoryOther}
	items := []Item{rankItem("leek", 12, 14, now), unknown, rankItem("radish", -2, 14, now)}

	list := RankForDisplay(items, now, 10)

	// Expired (negative ratio) first, unknown (zero) next, fresh last.
	assert.Equal(t, []string{"radish", "mystery", "leek"}, list.DisplayNames)
}
