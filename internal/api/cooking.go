package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/middleware"
	"github.com/freshkeep/backend/internal/service"
)

// maxCookingItems bounds the cooking page ingredient preview.
const maxCookingItems = 10

// CookingHandler serves the cooking-assistant page: the urgency-ranked
// ingredient preview and the AI recipe recommendation.
type CookingHandler struct {
	inventory *service.InventoryService
	ai        service.AIGateway
	limiter   *middleware.RateLimiter
}

func NewCookingHandler(inventory *service.InventoryService, ai service.AIGateway, limiter *middleware.RateLimiter) *CookingHandler {
	return &CookingHandler{inventory: inventory, ai: ai, limiter: limiter}
}

func (h *CookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/cooking-inventory", h.CookingInventory)
	router.POST("/cooking-recommend", h.limiter.Middleware(), h.Recommend)
}

// CookingInventory returns up to ten distinct ingredients ordered most
// urgent first, fruit excluded, frozen items last.
func (h *CookingHandler) CookingInventory(c *gin.Context) {
	items, err := h.inventory.ListEngineItems()
	if err != nil {
		log.Printf("[CookingHandler] Failed to load inventory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cooking inventory"})
		return
	}

	ranked := expiry.RankForDisplay(items, time.Now(), maxCookingItems)

	views := make([]InventoryItemView, 0, len(ranked.Items))
	for _, r := range ranked.Items {
		views = append(views, newRankedView(r))
	}

	displayNames := ranked.DisplayNames
	if displayNames == nil {
		displayNames = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":        views,
		"displayNames": displayNames,
		"totalCount":   ranked.TotalCount,
	})
}

// Recommend builds the prioritized ingredient context and asks the AI
// gateway for recipe suggestions. Unlike the preview, fruit counts here:
// an urgent apple is still worth cooking with.
func (h *CookingHandler) Recommend(c *gin.Context) {
	items, err := h.inventory.ListEngineItems()
	if err != nil {
		log.Printf("[CookingHandler] Failed to load inventory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load inventory"})
		return
	}

	ingredients := expiry.BuildPriorityContext(items, time.Now())
	if ingredients == nil {
		ingredients = []expiry.Ingredient{}
	}

	suggestions, err := h.ai.SuggestRecipes(c.Request.Context(), ingredients)
	if err != nil {
		log.Printf("[CookingHandler] Recommendation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": suggestions,
		"ingredients":     ingredients,
	})
}
