package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Storage categories used by the registry. Ranking on the cooking page
// excludes CategoryFruit; the AI priority context does not.
const (
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryOther     = "other"
)

// FoodItem is a perishable item in the household inventory. Remains tracks
// the unused fraction in [0,1]; an item with Remains == 0 is consumed and
// only shows up in the history views.
type FoodItem struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Image       string     `gorm:"type:text" json:"image,omitempty"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	Remains     float64    `gorm:"not null;default:1" json:"remains"`
	AddedAt     time.Time  `gorm:"not null;index" json:"addedAt"`
	StorageID   *uuid.UUID `gorm:"type:varchar(36)" json:"storageId"`
	StorageDays *int       `json:"storageDays"`
	Frozen      bool       `gorm:"not null;default:false" json:"frozen"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// StorageInfo is a registry entry mapping an ingredient name to its
// expected shelf life and care instructions. Name is the unique lookup key.
type StorageInfo struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Category      string    `gorm:"size:50;not null" json:"category"`
	Name          string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	StorageDays   int       `gorm:"not null" json:"storageDays"`
	StorageDesc   string    `gorm:"size:255;not null" json:"storageDesc"`
	StorageMethod string    `gorm:"type:text;not null" json:"storageMethod"`
}

func (s *StorageInfo) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// HistoryRecord is one row of the append-only consumption ledger. A freeze
// event is marked with Frozen=true and RemainBefore == RemainAfter. History
// rows are intentionally not cascade-deleted with their item.
type HistoryRecord struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	FoodItemID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"foodItemId"`
	UpdateDate   time.Time `gorm:"not null" json:"updateDate"`
	RemainBefore float64   `gorm:"not null" json:"remainBefore"`
	RemainAfter  float64   `gorm:"not null" json:"remainAfter"`
	Waste        bool      `gorm:"not null" json:"waste"`
	Frozen       bool      `gorm:"not null;default:false" json:"frozen"`
}

func (h *HistoryRecord) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
