package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingItem is one line of the shopping list. Todo=true means the item
// still needs to be bought; Memo usually holds the recipe it came from.
type ShoppingItem struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	InsertDate time.Time `gorm:"not null" json:"insertDate"`
	UpdateDate time.Time `gorm:"not null;index" json:"updateDate"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Todo       bool      `gorm:"not null;default:true" json:"todo"`
	Memo       *string   `gorm:"size:255" json:"memo"`
}

func (s *ShoppingItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
