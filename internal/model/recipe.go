package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a cookbook entry saved from an AI recommendation. The pair
// (Title, SearchQuery) identifies a recipe: saving the same pair again
// updates the bookmark/cart flags instead of inserting a duplicate.
type Recipe struct {
	ID          uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time        `json:"insertDate"`
	UpdatedAt   time.Time        `json:"-"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Ingredients JSONBStringArray `gorm:"type:text;not null;default:'[]'" json:"ingredients"`
	Difficulty  string           `gorm:"size:50;not null" json:"difficulty"`
	Time        string           `gorm:"size:50;not null" json:"time"`
	SearchQuery string           `gorm:"size:255;not null" json:"searchQuery"`
	Bookmark    bool             `gorm:"not null;default:false" json:"bookmark"`
	Cart        bool             `gorm:"not null;default:false" json:"cart"`
	Embedding   pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
