package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/model"
	"github.com/freshkeep/backend/internal/service"
)

func seedStorage(t *testing.T, app *testApp, category, name string, days int) *model.StorageInfo {
	t.Helper()
	info := &model.StorageInfo{
		Category:      category,
		Name:          name,
		StorageDays:   days,
		StorageDesc:   "test",
		StorageMethod: "test",
	}
	require.NoError(t, app.db.Create(info).Error)
	return info
}

func TestCookingInventoryExcludesFruit(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()

	tofu := seedStorage(t, app, model.CategoryVegetable, "tofu", 5)
	apple := seedStorage(t, app, model.CategoryFruit, "apple", 14)
	days5, days14 := 5, 14
	seedItem(t, app, &model.FoodItem{Name: "tofu", StorageID: &tofu.ID, StorageDays: &days5, AddedAt: now.AddDate(0, 0, -3)})
	seedItem(t, app, &model.FoodItem{Name: "apple", StorageID: &apple.ID, StorageDays: &days14, AddedAt: now.AddDate(0, 0, -13)})

	w := performRequest(t, app, http.MethodGet, "/api/cooking-inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items        []InventoryItemView `json:"items"`
		DisplayNames []string            `json:"displayNames"`
		TotalCount   int                 `json:"totalCount"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "tofu", resp.Items[0].Name)
	assert.Equal(t, []string{"tofu"}, resp.DisplayNames)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestCookingInventoryEmptyList(t *testing.T) {
	app := setupTestApp(t)

	w := performRequest(t, app, http.MethodGet, "/api/cooking-inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items        []InventoryItemView `json:"items"`
		DisplayNames []string            `json:"displayNames"`
		TotalCount   int                 `json:"totalCount"`
	}
	decodeBody(t, w, &resp)
	assert.NotNil(t, resp.Items)
	assert.NotNil(t, resp.DisplayNames)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.TotalCount)
}

func TestRecommendBuildsPriorityContext(t *testing.T) {
	app := setupTestApp(t)
	app.gateway.suggestions = []service.RecipeSuggestion{
		{Title: "Mapo Tofu", Ingredients: []string{"tofu", "minced pork"}, Difficulty: "easy", Time: "under 30 min", SearchQuery: "mapo tofu recipe"},
	}

	now := time.Now()
	days := 5
	// expired item, should enter the prompt context as high priority
	seedItem(t, app, &model.FoodItem{Name: "tofu", StorageDays: &days, AddedAt: now.AddDate(0, 0, -10)})

	w := performRequest(t, app, http.MethodPost, "/api/cooking-recommend", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success         bool                       `json:"success"`
		Recommendations []service.RecipeSuggestion `json:"recommendations"`
		Ingredients     []expiry.Ingredient        `json:"ingredients"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Mapo Tofu", resp.Recommendations[0].Title)
	require.Len(t, resp.Ingredients, 1)
	assert.Equal(t, "tofu", resp.Ingredients[0].Name)
	assert.Equal(t, expiry.PriorityHigh, resp.Ingredients[0].Priority)

	require.Len(t, app.gateway.lastIngredients, 1)
	assert.Equal(t, expiry.PriorityHigh, app.gateway.lastIngredients[0].Priority)
}

func TestRecommendSurfacesGatewayError(t *testing.T) {
	app := setupTestApp(t)
	app.gateway.suggestErr = assert.AnError

	w := performRequest(t, app, http.MethodPost, "/api/cooking-recommend", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	assert.Equal(t, false, resp["success"])
}
