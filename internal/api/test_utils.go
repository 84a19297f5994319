package api

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/middleware"
	"github.com/freshkeep/backend/internal/model"
	"github.com/freshkeep/backend/internal/service"
)

// fakeGateway is a canned AIGateway for handler tests.
type fakeGateway struct {
	detected    []service.DetectedIngredient
	detectErr   error
	suggestions []service.RecipeSuggestion
	suggestErr  error

	// captured prompt context from the last SuggestRecipes call
	lastIngredients []expiry.Ingredient
}

func (f *fakeGateway) DetectIngredients(ctx context.Context, imageData []byte, mimeType string) ([]service.DetectedIngredient, error) {
	return f.detected, f.detectErr
}

func (f *fakeGateway) SuggestRecipes(ctx context.Context, ingredients []expiry.Ingredient) ([]service.RecipeSuggestion, error) {
	f.lastIngredients = ingredients
	return f.suggestions, f.suggestErr
}

func (f *fakeGateway) SynthesizeStorageInfo(ctx context.Context, name string) (*model.StorageInfo, error) {
	return nil, context.Canceled
}

type testApp struct {
	db      *gorm.DB
	router  *gin.Engine
	gateway *fakeGateway
}

// setupTestApp wires the full handler stack against an in-memory SQLite
// database and the fake gateway.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	err = db.AutoMigrate(
		&model.FoodItem{},
		&model.StorageInfo{},
		&model.HistoryRecord{},
		&model.Recipe{},
		&model.ShoppingItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	gateway := &fakeGateway{}
	inventory := service.NewInventoryService(db)
	storage := service.NewStorageService(db, gateway)
	images := service.NewImageService(nil)
	limiter := middleware.NewAIRateLimiter(nil)

	router := gin.New()
	group := router.Group("/api")
	NewInventoryHandler(inventory, storage).RegisterRoutes(group)
	NewCookingHandler(inventory, gateway, limiter).RegisterRoutes(group)
	NewAnalyzeHandler(gateway, storage, images, limiter).RegisterRoutes(group)
	NewCookbookHandler(service.NewCookbookService(db)).RegisterRoutes(group)
	NewShoppingHandler(service.NewShoppingService(db)).RegisterRoutes(group)

	return &testApp{db: db, router: router, gateway: gateway}
}
