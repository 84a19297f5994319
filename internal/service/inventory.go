package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/model"
)

// ErrItemNotFound is returned when an inventory operation references an id
// that does not exist.
var ErrItemNotFound = errors.New("inventory item not found")

// InventoryService owns the food item table and its consumption ledger.
// Every mutation that changes Remains writes the item update and the
// matching history row in one transaction.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// Insert persists a new item. AddedAt defaults to now and Remains to a full
// portion when the caller leaves them unset.
func (s *InventoryService) Insert(item *model.FoodItem) error {
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	if item.Remains == 0 {
		item.Remains = 1
	}
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return nil
}

func (s *InventoryService) Get(id uuid.UUID) (*model.FoodItem, error) {
	var item model.FoodItem
	err := s.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item and reports whether a row existed. History rows
// for the item are kept; the ledger outlives its item.
func (s *InventoryService) Delete(id uuid.UUID) (bool, error) {
	result := s.db.Delete(&model.FoodItem{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete inventory item: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// UpdateRemains records a consumption event: the item's remaining fraction
// moves to newRemains and a ledger row capturing the transition is
// appended, both inside one transaction. The waste flag marks whether the
// consumed portion was thrown away rather than eaten.
func (s *InventoryService) UpdateRemains(id uuid.UUID, newRemains float64, waste bool, now time.Time) (*model.FoodItem, error) {
	var updated model.FoodItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item model.FoodItem
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		record, err := expiry.NewConsumptionRecord(item, newRemains, waste, now)
		if err != nil {
			return err
		}

		if err := tx.Model(&item).Update("remains", newRemains).Error; err != nil {
			return err
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		item.Remains = newRemains
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Freeze marks an item frozen and appends the freeze marker to the ledger
// in the same transaction. Freezing an already-frozen item appends another
// marker row.
func (s *InventoryService) Freeze(id uuid.UUID, now time.Time) (*model.FoodItem, error) {
	var updated model.FoodItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item model.FoodItem
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		record := expiry.NewFreezeRecord(item, now)

		if err := tx.Model(&item).Update("frozen", true).Error; err != nil {
			return err
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		item.Frozen = true
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListActive returns unconsumed items in one of the two fridge views,
// newest first.
func (s *InventoryService) ListActive(frozen bool) ([]model.FoodItem, error) {
	var items []model.FoodItem
	err := s.db.
		Where("remains > 0 AND frozen = ?", frozen).
		Order("added_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// ListAll returns every item regardless of remains or frozen state, newest
// first.
func (s *InventoryService) ListAll() ([]model.FoodItem, error) {
	var items []model.FoodItem
	if err := s.db.Order("added_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// ListEngineItems loads every unconsumed item joined with its registry
// category as the read-only view the expiry engine works on. Items without
// a registry entry get an empty category.
func (s *InventoryService) ListEngineItems() ([]expiry.Item, error) {
	var items []model.FoodItem
	if err := s.db.Where("remains > 0").Order("added_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.StorageID != nil {
			ids = append(ids, *item.StorageID)
		}
	}

	categories := make(map[uuid.UUID]string, len(ids))
	if len(ids) > 0 {
		var infos []model.StorageInfo
		if err := s.db.Where("id IN ?", ids).Find(&infos).Error; err != nil {
			return nil, fmt.Errorf("failed to load storage categories: %w", err)
		}
		for _, info := range infos {
			categories[info.ID] = info.Category
		}
	}

	out := make([]expiry.Item, 0, len(items))
	for _, item := range items {
		category := ""
		if item.StorageID != nil {
			category = categories[*item.StorageID]
		}
		out = append(out, expiry.FromModel(item, category))
	}
	return out, nil
}

// ItemHistory is one item's ledger view: the item's own metadata, its care
// instructions when a registry entry exists, and every ledger row newest
// first.
type ItemHistory struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	AddedAt       time.Time             `json:"addedAt"`
	Remains       float64               `json:"remains"`
	Frozen        bool                  `json:"frozen"`
	StorageDesc   string                `json:"storageDesc,omitempty"`
	StorageMethod string                `json:"storageMethod,omitempty"`
	History       []model.HistoryRecord `json:"history"`
}

// ListHistory returns the full ledger for one item.
func (s *InventoryService) ListHistory(id uuid.UUID) (*ItemHistory, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	out := &ItemHistory{
		ID:      item.ID,
		Name:    item.Name,
		AddedAt: item.AddedAt,
		Remains: item.Remains,
		Frozen:  item.Frozen,
	}

	if item.StorageID != nil {
		var info model.StorageInfo
		if err := s.db.First(&info, "id = ?", *item.StorageID).Error; err == nil {
			out.StorageDesc = info.StorageDesc
			out.StorageMethod = info.StorageMethod
		}
	}

	if err := s.db.
		Where("food_item_id = ?", id).
		Order("update_date DESC").
		Find(&out.History).Error; err != nil {
		return nil, fmt.Errorf("failed to load item history: %w", err)
	}
	return out, nil
}

// ConsumedItem is one fully used-up item in the consumption summary, with
// the eaten and wasted fractions totalled from its ledger.
type ConsumedItem struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	AddedAt     time.Time  `json:"addedAt"`
	ConsumedAt  *time.Time `json:"consumedAt"`
	TotalUsed   float64    `json:"totalUsed"`
	TotalWasted float64    `json:"totalWasted"`
}

// ListConsumed returns every item whose remains reached zero, most recently
// finished first. Eaten and wasted totals are summed over the item's
// consumption rows; freeze markers do not contribute.
func (s *InventoryService) ListConsumed() ([]ConsumedItem, error) {
	var items []model.FoodItem
	if err := s.db.Where("remains = 0").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list consumed items: %w", err)
	}
	if len(items) == 0 {
		return []ConsumedItem{}, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	var records []model.HistoryRecord
	if err := s.db.
		Where("food_item_id IN ?", ids).
		Order("update_date ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load consumption records: %w", err)
	}

	byItem := make(map[uuid.UUID][]model.HistoryRecord, len(items))
	for _, record := range records {
		byItem[record.FoodItemID] = append(byItem[record.FoodItemID], record)
	}

	out := make([]ConsumedItem, 0, len(items))
	for _, item := range items {
		c := ConsumedItem{
			ID:      item.ID,
			Name:    item.Name,
			AddedAt: item.AddedAt,
		}
		for _, record := range byItem[item.ID] {
			if record.Frozen {
				continue
			}
			delta := record.RemainBefore - record.RemainAfter
			if delta <= 0 {
				continue
			}
			if record.Waste {
				c.TotalWasted += delta
			} else {
				c.TotalUsed += delta
			}
			when := record.UpdateDate
			c.ConsumedAt = &when
		}
		out = append(out, c)
	}

	// Most recently finished first; items with no ledger rows sink to
	// the end.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ConsumedAt == nil {
			return false
		}
		if out[j].ConsumedAt == nil {
			return true
		}
		return out[i].ConsumedAt.After(*out[j].ConsumedAt)
	})
	return out, nil
}
