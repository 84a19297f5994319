package api

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/model"
)

// InventoryItemView is a stored item decorated with its freshness signal
// for the fridge and cooking pages.
type InventoryItemView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	Remains       float64   `json:"remains"`
	AddedAt       time.Time `json:"addedAt"`
	Image         string    `json:"image,omitempty"`
	StorageDays   *int      `json:"storageDays"`
	Frozen        bool      `json:"frozen"`
	RemainingDays *int      `json:"remainingDays"`
	UrgencyRatio  float64   `json:"urgencyRatio"`
	ExpiryColor   string    `json:"expiryColor"`
	ExpiryStatus  string    `json:"expiryStatus"`
}

func newItemView(item model.FoodItem, now time.Time) InventoryItemView {
	u := expiry.Evaluate(expiry.FromModel(item, ""), now)

	view := InventoryItemView{
		ID:           item.ID,
		Name:         item.Name,
		Quantity:     item.Quantity,
		Remains:      item.Remains,
		AddedAt:      item.AddedAt,
		Image:        normalizeImage(item.Image),
		StorageDays:  item.StorageDays,
		Frozen:       item.Frozen,
		UrgencyRatio: u.Ratio,
		ExpiryColor:  u.Color,
		ExpiryStatus: u.Status,
	}
	if u.Known {
		days := u.RemainingDays
		view.RemainingDays = &days
	}
	return view
}

func newRankedView(r expiry.Ranked) InventoryItemView {
	view := InventoryItemView{
		ID:           r.ID,
		Name:         r.Name,
		Quantity:     r.Quantity,
		Remains:      r.Remains,
		AddedAt:      r.AddedAt,
		StorageDays:  r.StorageDays,
		Frozen:       r.Frozen,
		UrgencyRatio: r.Urgency.Ratio,
		ExpiryColor:  r.Urgency.Color,
		ExpiryStatus: r.Urgency.Status,
	}
	if r.Urgency.Known {
		days := r.Urgency.RemainingDays
		view.RemainingDays = &days
	}
	return view
}

// normalizeImage makes sure a stored thumbnail is served as a data URL.
// Old rows may hold a bare base64 payload.
func normalizeImage(image string) string {
	if image == "" || strings.HasPrefix(image, "data:") {
		return image
	}
	return "data:image/jpeg;base64," + image
}
