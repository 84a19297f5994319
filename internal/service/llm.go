package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freshkeep/backend/config"
	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/model"
)

// recommendationTTL bounds how long a cached recipe recommendation is
// reused for an unchanged ingredient context.
const recommendationTTL = time.Hour

// LLMService talks to a chat-completions API for ingredient detection,
// recipe suggestion and storage-info synthesis. Responses for identical
// ingredient contexts are cached in Redis to keep AI cost down.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
	redis  *redis.Client
}

// NewLLMService creates a new LLMService instance. The Redis client is
// optional; without it every call goes to the API.
func NewLLMService(cfg *config.Config, redisClient *redis.Client) (*LLMService, error) {
	apiKey := strings.TrimSpace(cfg.LLMAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY or LLM_API_KEY_FILE must be set")
	}

	return &LLMService{
		apiKey: apiKey,
		apiURL: cfg.LLMAPIURL,
		client: &http.Client{Timeout: 60 * time.Second},
		redis:  redisClient,
	}, nil
}

// Message represents a message in the chat. Content is a string for text
// messages and a part list for vision messages.
type Message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

// Request represents a chat-completions API request
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature,omitempty"`
}

func (s *LLMService) complete(ctx context.Context, req Request) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

// stripFences removes a Markdown code fence around a JSON payload. Models
// routinely wrap structured output even when asked not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// SuggestRecipes asks the model for 3-5 recipes that use up the most
// urgent ingredients first. Identical ingredient contexts are served from
// cache within recommendationTTL.
func (s *LLMService) SuggestRecipes(ctx context.Context, ingredients []expiry.Ingredient) ([]RecipeSuggestion, error) {
	ingredientsJSON, err := json.MarshalIndent(ingredients, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ingredients: %w", err)
	}

	cacheKey := recommendationCacheKey(ingredientsJSON)
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []RecipeSuggestion
			if err := json.Unmarshal(data, &cached); err == nil {
				log.Printf("[LLMService] Serving recommendation from cache")
				return cached, nil
			}
		}
	}

	prompt := fmt.Sprintf(`You are a culinary researcher with 30 years of experience.

These are the ingredients on hand with their usage priority:
%s

Recommend 3 to 5 dishes that can be made with these ingredients, favoring
dishes that use as many high-priority ingredients as possible.

Respond with a JSON array where each recipe has:
1. Dish title (key: "title")
2. Required ingredients (key: "ingredients", array of strings)
3. Difficulty (key: "difficulty", value: "easy", "medium" or "hard")
4. Estimated time (key: "time", value: "under 30 min", "under 1 hour" or "over 1 hour")
5. A video search query for the dish (key: "searchQuery"), for example "spinach zucchini stir fry recipe"

Respond with JSON only.`, string(ingredientsJSON))

	content, err := s.complete(ctx, Request{
		Model:          "deepseek-chat",
		Messages:       []Message{{Role: "user", Content: prompt}},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.9,
	})
	if err != nil {
		return nil, err
	}

	raw := stripFences(content)

	var suggestions []RecipeSuggestion
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		// Some models wrap the array in an object.
		var wrapper struct {
			Recipes []RecipeSuggestion `json:"recipes"`
		}
		if err2 := json.Unmarshal([]byte(raw), &wrapper); err2 != nil || len(wrapper.Recipes) == 0 {
			return nil, fmt.Errorf("failed to parse recipe suggestions: %w (raw response: %s)", err, content)
		}
		suggestions = wrapper.Recipes
	}

	if s.redis != nil {
		if data, err := json.Marshal(suggestions); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, recommendationTTL).Err(); err != nil {
				log.Printf("[LLMService] Failed to cache recommendation: %v", err)
			}
		}
	}

	return suggestions, nil
}

func recommendationCacheKey(ingredientsJSON []byte) string {
	sum := sha256.Sum256(ingredientsJSON)
	return "cooking:recommendation:" + hex.EncodeToString(sum[:8])
}

// DetectIngredients sends a photo to the vision model and returns the
// ingredients it found, with normalized 0-1000 bounding boxes.
func (s *LLMService) DetectIngredients(ctx context.Context, imageData []byte, mimeType string) ([]DetectedIngredient, error) {
	prompt := `Analyze the provided image and identify all food ingredients. For each
ingredient, provide its name and an estimated quantity (e.g. 3 apples, 2 onions).

Detect the 2d bounding box of each ingredient. Return normalized bounding box
coordinates in the format [y1, x1, y2, x2] where coordinates are scaled from 0 to 1000.

Return results as a JSON array. Example format:
[
    {"name": "cucumber", "quantity": 3, "box_2d": [100, 200, 400, 500]},
    {"name": "onion", "quantity": 2, "box_2d": [300, 100, 600, 400]}
]

Return just the JSON array, no additional text.`

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageData))

	content, err := s.complete(ctx, Request{
		Model: "deepseek-chat",
		Messages: []Message{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			},
		}},
	})
	if err != nil {
		return nil, err
	}

	raw := stripFences(content)

	var items []DetectedIngredient
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to parse detected ingredients: %w (raw response: %s)", err, content)
	}

	return items, nil
}

// SynthesizeStorageInfo asks the model to produce a registry entry for an
// ingredient the seed table does not know. Incomplete answers are rejected
// so the registry only memoizes usable records.
func (s *LLMService) SynthesizeStorageInfo(ctx context.Context, name string) (*model.StorageInfo, error) {
	prompt := fmt.Sprintf(`Provide storage guidance for this food ingredient: %q

Respond with JSON in this exact shape:
{
    "category": "one of: vegetable, fruit, other",
    "name": %q,
    "storageDays": number of days it keeps,
    "storageDesc": "recommended consumption window, at most 25 characters, e.g. \"5-7 days\"",
    "storageMethod": "practical storage instructions, at most 200 characters"
}

Keep storageDesc and storageMethod concise and practical. Respond with JSON only.`, name, name)

	content, err := s.complete(ctx, Request{
		Model:          "deepseek-chat",
		Messages:       []Message{{Role: "user", Content: prompt}},
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, err
	}

	raw := stripFences(content)

	var info struct {
		Category      string `json:"category"`
		Name          string `json:"name"`
		StorageDays   int    `json:"storageDays"`
		StorageDesc   string `json:"storageDesc"`
		StorageMethod string `json:"storageMethod"`
	}
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("failed to parse storage info: %w (raw response: %s)", err, content)
	}

	if info.Category == "" || info.Name == "" || info.StorageDays <= 0 || info.StorageDesc == "" || info.StorageMethod == "" {
		return nil, fmt.Errorf("incomplete storage info for %q: %s", name, raw)
	}

	return &model.StorageInfo{
		Category:      info.Category,
		Name:          info.Name,
		StorageDays:   info.StorageDays,
		StorageDesc:   info.StorageDesc,
		StorageMethod: info.StorageMethod,
	}, nil
}
