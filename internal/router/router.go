package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/freshkeep/backend/internal/api"
)

// Handler registers its routes under the shared /api group.
type Handler interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// SetupRouter configures the application routes
func SetupRouter(
	inventoryHandler *api.InventoryHandler,
	cookingHandler *api.CookingHandler,
	analyzeHandler *api.AnalyzeHandler,
	cookbookHandler *api.CookbookHandler,
	shoppingHandler *api.ShoppingHandler,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	group := router.Group("/api")
	for _, h := range []Handler{
		inventoryHandler,
		cookingHandler,
		analyzeHandler,
		cookbookHandler,
		shoppingHandler,
	} {
		h.RegisterRoutes(group)
	}

	return router
}
