package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshkeep/backend/internal/service"
)

// ShoppingHandler serves the shopping list.
type ShoppingHandler struct {
	shopping *service.ShoppingService
}

func NewShoppingHandler(shopping *service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/shopping-list", h.List)
	router.POST("/shopping-list", h.MergeFromRecipe)
	router.POST("/shopping-list/update", h.UpdateDetailed)
	router.POST("/shopping-list/toggle", h.Toggle)
	router.POST("/shopping-list/update-item", h.UpdateItem)
	router.POST("/shopping-list/add", h.Add)
	router.GET("/shopping-list/count", h.Count)
	router.DELETE("/shopping-list/:id", h.Delete)
}

// List returns the whole shopping list, most recently touched first.
func (h *ShoppingHandler) List(c *gin.Context) {
	items, err := h.shopping.List()
	if err != nil {
		log.Printf("[ShoppingHandler] Failed to list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shopping list"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type mergeFromRecipeRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	RecipeTitle string   `json:"recipeTitle" binding:"required"`
}

// MergeFromRecipe adds a recipe's ingredients to the list in one shot.
func (h *ShoppingHandler) MergeFromRecipe(c *gin.Context) {
	var req mergeFromRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := h.shopping.MergeFromRecipe(req.Ingredients, req.RecipeTitle, time.Now()); err != nil {
		log.Printf("[ShoppingHandler] Merge failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shopping list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Shopping list updated successfully"})
}

type updateDetailedRequest struct {
	Ingredients []service.DetailedEntry `json:"ingredients" binding:"required"`
	RecipeTitle string                  `json:"recipeTitle" binding:"required"`
}

// UpdateDetailed upserts entries with explicit todo state and memo.
func (h *ShoppingHandler) UpdateDetailed(c *gin.Context) {
	var req updateDetailedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := h.shopping.UpdateDetailed(req.Ingredients, time.Now()); err != nil {
		log.Printf("[ShoppingHandler] Detailed update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shopping list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Shopping list updated successfully"})
}

type toggleShoppingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Todo   *bool     `json:"todo" binding:"required"`
}

// Toggle sets one item's todo flag.
func (h *ShoppingHandler) Toggle(c *gin.Context) {
	var req toggleShoppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := h.shopping.Toggle(req.ItemID, *req.Todo, time.Now())
	switch {
	case errors.Is(err, service.ErrShoppingItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case err != nil:
		log.Printf("[ShoppingHandler] Toggle failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shopping item"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Shopping item updated successfully"})
	}
}

type updateShoppingItemRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Name   *string   `json:"name"`
	Memo   *string   `json:"memo"`
}

// UpdateItem edits one item's name and/or memo.
func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	var req updateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing itemId field"})
		return
	}
	if req.Name == nil && req.Memo == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field (name or memo) must be provided"})
		return
	}

	err := h.shopping.UpdateItem(req.ItemID, req.Name, req.Memo, time.Now())
	switch {
	case errors.Is(err, service.ErrShoppingItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case err != nil:
		log.Printf("[ShoppingHandler] Update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shopping item"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Shopping item updated successfully"})
	}
}

type addShoppingItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// Add inserts one open item by name. Duplicate open names get 409.
func (h *ShoppingHandler) Add(c *gin.Context) {
	var req addShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name field"})
		return
	}

	_, err := h.shopping.Add(req.Name, time.Now())
	switch {
	case errors.Is(err, service.ErrDuplicateShoppingItem):
		c.JSON(http.StatusConflict, gin.H{"error": "Ingredient is already on the shopping list"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Shopping item added successfully"})
	}
}

// Count returns how many items still need buying, for the nav badge.
func (h *ShoppingHandler) Count(c *gin.Context) {
	count, err := h.shopping.CountOpen()
	if err != nil {
		log.Printf("[ShoppingHandler] Count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shopping list count"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// Delete removes one item.
func (h *ShoppingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	err = h.shopping.Delete(id)
	switch {
	case errors.Is(err, service.ErrShoppingItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case err != nil:
		log.Printf("[ShoppingHandler] Delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shopping item"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Shopping item deleted successfully"})
	}
}
