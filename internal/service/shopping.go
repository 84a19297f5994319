package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshkeep/backend/internal/model"
)

// Shopping list errors surfaced as client failures.
var (
	ErrShoppingItemNotFound  = errors.New("shopping item not found")
	ErrDuplicateShoppingItem = errors.New("ingredient is already on the shopping list")
)

// ShoppingService owns the shopping list. Items carry a todo flag instead
// of being deleted when bought, so the list doubles as a purchase history.
type ShoppingService struct {
	db *gorm.DB
}

func NewShoppingService(db *gorm.DB) *ShoppingService {
	return &ShoppingService{db: db}
}

// List returns every shopping item, most recently touched first.
func (s *ShoppingService) List() ([]model.ShoppingItem, error) {
	var items []model.ShoppingItem
	if err := s.db.Order("update_date DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	return items, nil
}

// MergeFromRecipe adds a recipe's ingredient names to the list. Names that
// already have an open item get their memo and timestamp refreshed; new
// names are inserted as open items with the recipe title as memo. A
// leading checkmark marker on an ingredient is stripped.
func (s *ShoppingService) MergeFromRecipe(ingredients []string, recipeTitle string, now time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var open []model.ShoppingItem
		if err := tx.Where("todo = ?", true).Find(&open).Error; err != nil {
			return err
		}
		active := make(map[string]bool, len(open))
		for _, item := range open {
			active[item.Name] = true
		}

		memo := recipeTitle
		for _, raw := range ingredients {
			name := strings.TrimSpace(strings.ReplaceAll(raw, "✓ ", ""))
			if name == "" {
				continue
			}

			if active[name] {
				err := tx.Model(&model.ShoppingItem{}).
					Where("name = ? AND todo = ?", name, true).
					Updates(map[string]interface{}{
						"update_date": now,
						"memo":        memo,
					}).Error
				if err != nil {
					return err
				}
				continue
			}

			item := model.ShoppingItem{
				InsertDate: now,
				UpdateDate: now,
				Name:       name,
				Todo:       true,
				Memo:       &memo,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			active[name] = true
		}
		return nil
	})
}

// DetailedEntry is one row of a bulk shopping-list edit.
type DetailedEntry struct {
	Name string  `json:"name" binding:"required"`
	Todo bool    `json:"todo"`
	Memo *string `json:"memo"`
}

// UpdateDetailed upserts entries by name with explicit todo state and memo.
func (s *ShoppingService) UpdateDetailed(entries []DetailedEntry, now time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			var existing model.ShoppingItem
			err := tx.Where("name = ?", entry.Name).First(&existing).Error
			switch {
			case err == nil:
				err = tx.Model(&existing).Updates(map[string]interface{}{
					"update_date": now,
					"todo":        entry.Todo,
					"memo":        entry.Memo,
				}).Error
				if err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				item := model.ShoppingItem{
					InsertDate: now,
					UpdateDate: now,
					Name:       entry.Name,
					Todo:       entry.Todo,
					Memo:       entry.Memo,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}

// Toggle sets an item's todo flag.
func (s *ShoppingService) Toggle(id uuid.UUID, todo bool, now time.Time) error {
	result := s.db.Model(&model.ShoppingItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"update_date": now,
			"todo":        todo,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to toggle shopping item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrShoppingItemNotFound
	}
	return nil
}

// UpdateItem edits an item's name and/or memo. Nil fields are left
// unchanged; at least one must be set.
func (s *ShoppingService) UpdateItem(id uuid.UUID, name *string, memo *string, now time.Time) error {
	updates := map[string]interface{}{"update_date": now}
	if name != nil {
		updates["name"] = *name
	}
	if memo != nil {
		updates["memo"] = *memo
	}

	result := s.db.Model(&model.ShoppingItem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update shopping item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrShoppingItemNotFound
	}
	return nil
}

// Delete removes an item outright.
func (s *ShoppingService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&model.ShoppingItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete shopping item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrShoppingItemNotFound
	}
	return nil
}

// Add inserts a single open item by name. A name that already has an open
// item is rejected with ErrDuplicateShoppingItem; a bought item with the
// same name does not block re-adding.
func (s *ShoppingService) Add(name string, now time.Time) (*model.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	var count int64
	err := s.db.Model(&model.ShoppingItem{}).
		Where("name = ? AND todo = ?", name, true).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check shopping list: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateShoppingItem
	}

	item := model.ShoppingItem{
		InsertDate: now,
		UpdateDate: now,
		Name:       name,
		Todo:       true,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add shopping item: %w", err)
	}
	return &item, nil
}

// CountOpen returns how many items still need to be bought.
func (s *ShoppingService) CountOpen() (int64, error) {
	var count int64
	err := s.db.Model(&model.ShoppingItem{}).
		Where("todo = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count shopping items: %w", err)
	}
	return count, nil
}
