package service

import (
	"context"

	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/model"
)

// DetectedIngredient is one ingredient found in an analyzed photo. Box2D
// holds the raw normalized [y1, x1, y2, x2] coordinates on a 0-1000 scale
// as returned by the vision model.
type DetectedIngredient struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Box2D    []int  `json:"box_2d,omitempty"`
}

// RecipeSuggestion is one recipe proposed by the AI gateway.
type RecipeSuggestion struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Difficulty  string   `json:"difficulty"`
	Time        string   `json:"time"`
	SearchQuery string   `json:"searchQuery"`
}

// AIGateway is the boundary to the external language/vision model. All
// calls are blocking and unretried; malformed model output surfaces as a
// recoverable error, never a panic.
type AIGateway interface {
	DetectIngredients(ctx context.Context, imageData []byte, mimeType string) ([]DetectedIngredient, error)
	SuggestRecipes(ctx context.Context, ingredients []expiry.Ingredient) ([]RecipeSuggestion, error)
	SynthesizeStorageInfo(ctx context.Context, name string) (*model.StorageInfo, error)
}
