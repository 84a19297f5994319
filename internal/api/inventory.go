package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/model"
	"github.com/freshkeep/backend/internal/service"
)

// InventoryHandler serves the fridge views and the consumption ledger.
type InventoryHandler struct {
	inventory *service.InventoryService
	storage   *service.StorageService
}

func NewInventoryHandler(inventory *service.InventoryService, storage *service.StorageService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, storage: storage}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/inventory", h.ListInventory)
	router.GET("/frozen", h.ListFrozen)
	router.GET("/all-inventory", h.ListAllInventory)
	router.POST("/save-items", h.SaveItems)
	router.GET("/inventory/history", h.ListConsumed)
	router.DELETE("/inventory/:id", h.DeleteItem)
	router.POST("/inventory/:id/update-remains", h.UpdateRemains)
	router.POST("/inventory/:id/freeze", h.FreezeItem)
	router.GET("/inventory/:id/history", h.ItemHistory)
}

// ListInventory returns active, non-frozen items with their freshness
// signal, newest first.
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	h.listActive(c, false)
}

// ListFrozen returns active frozen items. The shelf clock keeps running on
// frozen items; the view just separates them.
func (h *InventoryHandler) ListFrozen(c *gin.Context) {
	h.listActive(c, true)
}

func (h *InventoryHandler) listActive(c *gin.Context, frozen bool) {
	items, err := h.inventory.ListActive(frozen)
	if err != nil {
		log.Printf("[InventoryHandler] Failed to list inventory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get inventory"})
		return
	}

	now := time.Now()
	views := make([]InventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item, now))
	}
	c.JSON(http.StatusOK, views)
}

// ListAllInventory returns every item, consumed and frozen included.
func (h *InventoryHandler) ListAllInventory(c *gin.Context) {
	items, err := h.inventory.ListAll()
	if err != nil {
		log.Printf("[InventoryHandler] Failed to list all inventory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get all inventory"})
		return
	}

	now := time.Now()
	views := make([]InventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item, now))
	}
	c.JSON(http.StatusOK, views)
}

// SaveItemRequest is one item of a save batch, usually coming straight
// from an analyzed photo.
type SaveItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Quantity    int        `json:"quantity" binding:"required,min=1"`
	Image       string     `json:"image" binding:"required"`
	StorageID   *uuid.UUID `json:"storageId"`
	StorageDays *int       `json:"storageDays"`
}

type saveItemsRequest struct {
	Items []SaveItemRequest `json:"items" binding:"required,min=1"`
}

// SaveItems persists a batch of new items. Items without registry info get
// it resolved by name, synthesizing a new registry entry when needed; an
// unresolvable name is still saved with unknown storage duration.
func (h *InventoryHandler) SaveItems(c *gin.Context) {
	var req saveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No items to save."})
		return
	}

	now := time.Now()
	saved := 0
	for _, entry := range req.Items {
		storageID, storageDays := entry.StorageID, entry.StorageDays
		if storageID == nil {
			storageID, storageDays = h.storage.ResolveOrCreate(c.Request.Context(), entry.Name)
		}

		item := model.FoodItem{
			Name:        entry.Name,
			Image:       entry.Image,
			Quantity:    entry.Quantity,
			Remains:     1,
			AddedAt:     now,
			StorageID:   storageID,
			StorageDays: storageDays,
		}
		if err := h.inventory.Insert(&item); err != nil {
			log.Printf("[InventoryHandler] Failed to save item %q: %v", entry.Name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save items"})
			return
		}
		saved++
	}

	c.JSON(http.StatusOK, gin.H{"message": "Items saved successfully!", "saved": saved})
}

// DeleteItem removes one item. Its ledger rows stay.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	deleted, err := h.inventory.Delete(id)
	if err != nil {
		log.Printf("[InventoryHandler] Failed to delete item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item."})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully!"})
}

type updateRemainsRequest struct {
	Remains *float64 `json:"remains" binding:"required"`
	Waste   bool     `json:"waste"`
}

// UpdateRemains records a consumption event on one item.
func (h *InventoryHandler) UpdateRemains(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req updateRemainsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid remains value. Must be between 0 and 1."})
		return
	}

	_, err = h.inventory.UpdateRemains(id, *req.Remains, req.Waste, time.Now())
	switch {
	case errors.Is(err, expiry.ErrRemainsOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid remains value. Must be between 0 and 1."})
	case errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found."})
	case err != nil:
		log.Printf("[InventoryHandler] Failed to update remains: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update remains."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Remains updated successfully!"})
	}
}

// FreezeItem marks an item frozen and notes the event in the ledger.
func (h *InventoryHandler) FreezeItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	_, err = h.inventory.Freeze(id, time.Now())
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found."})
	case err != nil:
		log.Printf("[InventoryHandler] Failed to freeze item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to freeze item."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Item frozen successfully!"})
	}
}

// ItemHistory returns one item's ledger, newest row first, with its add
// date and care instructions.
func (h *InventoryHandler) ItemHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	history, err := h.inventory.ListHistory(id)
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found."})
	case err != nil:
		log.Printf("[InventoryHandler] Failed to fetch history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history."})
	default:
		c.JSON(http.StatusOK, gin.H{
			"history":       history.History,
			"addedAt":       history.AddedAt,
			"storageDesc":   history.StorageDesc,
			"storageMethod": history.StorageMethod,
		})
	}
}

// ListConsumed returns every fully used-up item with its eaten and wasted
// totals.
func (h *InventoryHandler) ListConsumed(c *gin.Context) {
	consumed, err := h.inventory.ListConsumed()
	if err != nil {
		log.Printf("[InventoryHandler] Failed to fetch consumed items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history."})
		return
	}
	c.JSON(http.StatusOK, consumed)
}
