package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkeep/backend/config"
	"github.com/freshkeep/backend/internal/expiry"
)

// fakeCompletions serves a chat-completions endpoint that always answers
// with the given content string.
func fakeCompletions(t *testing.T, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)

		response := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestLLMService(t *testing.T, apiURL string) *LLMService {
	t.Helper()
	svc, err := NewLLMService(&config.Config{LLMAPIKey: "test-key", LLMAPIURL: apiURL}, nil)
	require.NoError(t, err)
	return svc
}

func TestNewLLMServiceRequiresKey(t *testing.T) {
	svc, err := NewLLMService(&config.Config{}, nil)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "LLM_API_KEY")
}

func TestSuggestRecipesParsesArray(t *testing.T) {
	content := `[
        {"title": "Soft Tofu Stew", "ingredients": ["tofu", "green onion"], "difficulty": "easy", "time": "under 30 min", "searchQuery": "soft tofu stew recipe"},
        {"title": "Fried Rice", "ingredients": ["rice", "egg"], "difficulty": "easy", "time": "under 30 min", "searchQuery": "fried rice recipe"}
    ]`
	svc := newTestLLMService(t, fakeCompletions(t, content).URL)

	suggestions, err := svc.SuggestRecipes(context.Background(), []expiry.Ingredient{
		{Name: "tofu", Priority: expiry.PriorityHigh},
	})
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Soft Tofu Stew", suggestions[0].Title)
	assert.Equal(t, []string{"tofu", "green onion"}, suggestions[0].Ingredients)
}

func TestSuggestRecipesUnwrapsObjectAndFences(t *testing.T) {
	content := "```json\n{\"recipes\": [{\"title\": \"Fried Rice\", \"ingredients\": [\"rice\"], \"difficulty\": \"easy\", \"time\": \"under 30 min\", \"searchQuery\": \"fried rice recipe\"}]}\n```"
	svc := newTestLLMService(t, fakeCompletions(t, content).URL)

	suggestions, err := svc.SuggestRecipes(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Fried Rice", suggestions[0].Title)
}

func TestSuggestRecipesKeepsRawOnParseFailure(t *testing.T) {
	svc := newTestLLMService(t, fakeCompletions(t, "Sorry, I cannot help with that.").URL)

	_, err := svc.SuggestRecipes(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sorry, I cannot help")
}

func TestSuggestRecipesSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	svc := newTestLLMService(t, server.URL)
	_, err := svc.SuggestRecipes(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDetectIngredientsParsesBoxes(t *testing.T) {
	content := `[{"name": "cucumber", "quantity": 3, "box_2d": [100, 200, 400, 500]}]`
	svc := newTestLLMService(t, fakeCompletions(t, content).URL)

	items, err := svc.DetectIngredients(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "cucumber", items[0].Name)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, []int{100, 200, 400, 500}, items[0].Box2D)
}

func TestSynthesizeStorageInfo(t *testing.T) {
	content := `{"category": "vegetable", "name": "kohlrabi", "storageDays": 14, "storageDesc": "1-2 weeks", "storageMethod": "wrap in paper towel and refrigerate"}`
	svc := newTestLLMService(t, fakeCompletions(t, content).URL)

	info, err := svc.SynthesizeStorageInfo(context.Background(), "kohlrabi")
	require.NoError(t, err)
	assert.Equal(t, "kohlrabi", info.Name)
	assert.Equal(t, 14, info.StorageDays)
	assert.Equal(t, "vegetable", info.Category)
}

func TestSynthesizeStorageInfoRejectsIncomplete(t *testing.T) {
	cases := []string{
		`{"category": "vegetable", "name": "kohlrabi", "storageDays": 0, "storageDesc": "?", "storageMethod": "?"}`,
		`{"name": "kohlrabi", "storageDays": 14, "storageDesc": "1-2 weeks", "storageMethod": "fridge"}`,
	}
	for i, content := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			svc := newTestLLMService(t, fakeCompletions(t, content).URL)
			_, err := svc.SynthesizeStorageInfo(context.Background(), "kohlrabi")
			assert.Error(t, err)
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripFences("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripFences(`{"a": 1}`))
}
