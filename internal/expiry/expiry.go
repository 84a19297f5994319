// Package expiry is the expiry and consumption engine: it turns an item's
// add date and expected shelf life into a normalized urgency signal, ranks
// and deduplicates items for the cooking page, classifies ingredients into
// AI prompt priority tiers and constructs consumption-ledger records.
//
// Every function takes the current time as an explicit parameter and does
// no I/O; persistence is the inventory store's job.
package expiry

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freshkeep/backend/internal/model"
)

// Color bands for the freshness display, most fresh first.
const (
	ColorExpired = "red-700"
	ColorUnknown = "gray-400"
)

// StatusUnknown is the display status for items whose urgency cannot be
// computed. Corrupt or missing metadata must never break a listing.
const StatusUnknown = "D-?"

var colorBands = []struct {
	threshold float64
	color     string
}{
	{0.9, "green-500"},
	{0.8, "green-400"},
	{0.7, "green-300"},
	{0.6, "yellow-400"},
	{0.5, "yellow-500"},
	{0.4, "orange-400"},
	{0.3, "orange-500"},
	{0.2, "red-400"},
	{0.1, "red-500"},
}

// Item is the engine's read-only view of an inventory item, joined with the
// registry category the store fetched for it.
type Item struct {
	ID          uuid.UUID
	Name        string
	Quantity    int
	Remains     float64
	AddedAt     time.Time
	StorageDays *int
	Frozen      bool
	Category    string
}

// FromModel builds the engine view of a stored item. Category may be empty
// when the item has no registry entry.
func FromModel(f model.FoodItem, category string) Item {
	return Item{
		ID:          f.ID,
		Name:        f.Name,
		Quantity:    f.Quantity,
		Remains:     f.Remains,
		AddedAt:     f.AddedAt,
		StorageDays: f.StorageDays,
		Frozen:      f.Frozen,
		Category:    category,
	}
}

// Urgency is the computed freshness signal for a single item. When Known is
// false the item's metadata was missing or unusable and the remaining
// fields hold the unknown sentinels.
type Urgency struct {
	Known         bool    `json:"-"`
	RemainingDays int     `json:"-"`
	Ratio         float64 `json:"urgencyRatio"`
	Color         string  `json:"expiryColor"`
	Status        string  `json:"expiryStatus"`
}

// Evaluate computes the urgency signal for an item at the given time.
//
// Elapsed time is truncated to whole days. The ratio remainingDays over
// storageDays is deliberately unclamped: far-overdue items get a larger
// negative ratio, which is what pushes them to the front of an ascending
// sort. Items past their shelf life always get the terminal expired band
// regardless of how overdue they are.
func Evaluate(item Item, now time.Time) Urgency {
	if item.StorageDays == nil || *item.StorageDays <= 0 || item.AddedAt.IsZero() {
		return Urgency{Color: ColorUnknown, Status: StatusUnknown}
	}

	daysPassed := int(now.Sub(item.AddedAt).Hours() / 24)
	remaining := *item.StorageDays - daysPassed
	ratio := float64(remaining) / float64(*item.StorageDays)

	u := Urgency{
		Known:         true,
		RemainingDays: remaining,
		Ratio:         ratio,
	}

	if remaining > 0 {
		u.Color = bandFor(ratio)
		u.Status = fmt.Sprintf("D-%d", remaining)
	} else {
		u.Color = ColorExpired
		u.Status = fmt.Sprintf("D+%d", -remaining)
	}

	return u
}

func bandFor(ratio float64) string {
	for _, band := range colorBands {
		if ratio >= band.threshold {
			return band.color
		}
	}
	return "red-600"
}
