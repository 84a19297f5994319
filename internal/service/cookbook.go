package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freshkeep/backend/internal/model"
)

// ErrRecipeNotFound is returned when a cookbook operation references an
// unknown recipe id.
var ErrRecipeNotFound = errors.New("recipe not found")

// CookbookService stores AI-recommended recipes the household chose to
// keep. A recipe is identified by its (title, search query) pair; saving
// the same pair twice updates the flags on the existing row.
type CookbookService struct {
	db *gorm.DB
}

func NewCookbookService(db *gorm.DB) *CookbookService {
	return &CookbookService{db: db}
}

// Save persists a recommendation into the cookbook. Bookmark and Cart are
// the flags the save request carried; the embedding is regenerated from
// title and search query on every save.
func (s *CookbookService) Save(recipe *model.Recipe) error {
	recipe.Embedding = GenerateEmbedding(recipe.Title + " " + recipe.SearchQuery)

	var existing model.Recipe
	err := s.db.
		Where("title = ? AND search_query = ?", recipe.Title, recipe.SearchQuery).
		First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"bookmark":  recipe.Bookmark,
			"cart":      recipe.Cart,
			"embedding": recipe.Embedding,
		}
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		recipe.ID = existing.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up recipe: %w", err)
	}

	if err := s.db.Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// ToggleBookmark flips the bookmark flag on the recipe identified by its
// (title, search query) pair and returns the new value.
func (s *CookbookService) ToggleBookmark(title, searchQuery string) (bool, error) {
	return s.toggleFlag(title, searchQuery, "bookmark")
}

// ToggleCart flips the shopping-cart flag and returns the new value.
func (s *CookbookService) ToggleCart(title, searchQuery string) (bool, error) {
	return s.toggleFlag(title, searchQuery, "cart")
}

func (s *CookbookService) toggleFlag(title, searchQuery, column string) (bool, error) {
	var recipe model.Recipe
	err := s.db.Where("title = ? AND search_query = ?", title, searchQuery).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrRecipeNotFound
	}
	if err != nil {
		return false, err
	}

	current := recipe.Bookmark
	if column == "cart" {
		current = recipe.Cart
	}
	next := !current

	if err := s.db.Model(&recipe).Update(column, next).Error; err != nil {
		return false, fmt.Errorf("failed to toggle %s: %w", column, err)
	}
	return next, nil
}

// Get returns one cookbook recipe by id.
func (s *CookbookService) Get(id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns cookbook recipes, newest first. A non-empty search ranks by
// embedding distance on Postgres; other dialects fall back to a substring
// match on title and search query.
func (s *CookbookService) List(search string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	query := s.db

	if search != "" {
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(search)
			query = query.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		} else {
			like := "%" + strings.ToLower(search) + "%"
			query = query.
				Where("LOWER(title) LIKE ? OR LOWER(search_query) LIKE ?", like, like).
				Order("created_at DESC")
		}
	} else {
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list cookbook: %w", err)
	}
	return recipes, nil
}
