package expiry

import (
	"errors"
	"time"

	"github.com/freshkeep/backend/internal/model"
)

// ErrRemainsOutOfRange is returned when a consumption update falls outside
// the [0,1] fraction range.
var ErrRemainsOutOfRange = errors.New("remains must be between 0 and 1")

// NewConsumptionRecord builds the ledger row for a remains transition. The
// store must commit the returned record and the item update in the same
// transaction so the ledger invariant holds.
func NewConsumptionRecord(item model.FoodItem, newRemains float64, waste bool, now time.Time) (model.HistoryRecord, error) {
	if newRemains < 0 || newRemains > 1 {
		return model.HistoryRecord{}, ErrRemainsOutOfRange
	}

	return model.HistoryRecord{
		FoodItemID:   item.ID,
		UpdateDate:   now,
		RemainBefore: item.Remains,
		RemainAfter:  newRemains,
		Waste:        waste,
	}, nil
}

// NewFreezeRecord builds the ledger row marking a freeze event. Remains is
// unchanged and the row carries the frozen marker. Freezing twice appends
// two rows; that is accepted ledger noise, not an error.
func NewFreezeRecord(item model.FoodItem, now time.Time) model.HistoryRecord {
	return model.HistoryRecord{
		FoodItemID:   item.ID,
		UpdateDate:   now,
		RemainBefore: item.Remains,
		RemainAfter:  item.Remains,
		Frozen:       true,
	}
}
