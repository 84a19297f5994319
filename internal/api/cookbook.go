package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshkeep/backend/internal/model"
	"github.com/freshkeep/backend/internal/service"
)

// CookbookHandler serves the saved-recipe collection.
type CookbookHandler struct {
	cookbook *service.CookbookService
}

func NewCookbookHandler(cookbook *service.CookbookService) *CookbookHandler {
	return &CookbookHandler{cookbook: cookbook}
}

func (h *CookbookHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/cookbook", h.ListCookbook)
	router.POST("/cookbook", h.SaveRecipe)
	router.POST("/cookbook/bookmark", h.ToggleBookmark)
	router.POST("/cookbook/cart", h.ToggleCart)
}

// ListCookbook returns saved recipes, newest first. With ?q= the list is
// ranked by embedding distance to the query (substring match on SQLite).
func (h *CookbookHandler) ListCookbook(c *gin.Context) {
	recipes, err := h.cookbook.List(c.Query("q"))
	if err != nil {
		log.Printf("[CookbookHandler] Failed to list cookbook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cookbook"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

type saveRecipeRequest struct {
	Title       string   `json:"title" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required"`
	Difficulty  string   `json:"difficulty" binding:"required"`
	Time        string   `json:"time" binding:"required"`
	SearchQuery string   `json:"searchQuery" binding:"required"`
	Bookmark    bool     `json:"bookmark"`
	Cart        bool     `json:"cart"`
}

// SaveRecipe stores a recommendation in the cookbook, updating the flags
// when the same (title, search query) pair was saved before.
func (h *CookbookHandler) SaveRecipe(c *gin.Context) {
	var req saveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := model.Recipe{
		Title:       req.Title,
		Ingredients: model.JSONBStringArray(req.Ingredients),
		Difficulty:  req.Difficulty,
		Time:        req.Time,
		SearchQuery: req.SearchQuery,
		Bookmark:    req.Bookmark,
		Cart:        req.Cart,
	}
	if err := h.cookbook.Save(&recipe); err != nil {
		log.Printf("[CookbookHandler] Failed to save recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      recipe.ID,
		"message": "Recipe saved to cookbook",
	})
}

type toggleRecipeRequest struct {
	Title       string `json:"title" binding:"required"`
	SearchQuery string `json:"searchQuery" binding:"required"`
}

// ToggleBookmark flips a recipe's bookmark flag.
func (h *CookbookHandler) ToggleBookmark(c *gin.Context) {
	h.toggle(c, "bookmark", h.cookbook.ToggleBookmark)
}

// ToggleCart flips a recipe's shopping-cart flag.
func (h *CookbookHandler) ToggleCart(c *gin.Context) {
	h.toggle(c, "cart", h.cookbook.ToggleCart)
}

func (h *CookbookHandler) toggle(c *gin.Context, field string, fn func(title, searchQuery string) (bool, error)) {
	var req toggleRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	value, err := fn(req.Title, req.SearchQuery)
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case err != nil:
		log.Printf("[CookbookHandler] Failed to toggle %s: %v", field, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle " + field})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, field: value})
	}
}
