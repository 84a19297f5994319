package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkeep/backend/internal/expiry"
	"github.com/freshkeep/backend/internal/model"
)

// stubGateway is a canned AIGateway for registry tests.
type stubGateway struct {
	info       *model.StorageInfo
	err        error
	synthCalls int
}

func (s *stubGateway) DetectIngredients(ctx context.Context, imageData []byte, mimeType string) ([]DetectedIngredient, error) {
	return nil, errors.New("not implemented")
}

func (s *stubGateway) SuggestRecipes(ctx context.Context, ingredients []expiry.Ingredient) ([]RecipeSuggestion, error) {
	return nil, errors.New("not implemented")
}

func (s *stubGateway) SynthesizeStorageInfo(ctx context.Context, name string) (*model.StorageInfo, error) {
	s.synthCalls++
	if s.err != nil {
		return nil, s.err
	}
	info := *s.info
	return &info, nil
}

func TestLookupMissReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStorageService(db, nil)

	info, err := svc.Lookup("durian")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestLookupIsExactMatch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStorageService(db, nil)

	require.NoError(t, db.Create(&model.StorageInfo{
		Category: model.CategoryVegetable, Name: "green onion",
		StorageDays: 14, StorageDesc: "1-2 weeks", StorageMethod: "fridge",
	}).Error)

	info, err := svc.Lookup("green onion")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 14, info.StorageDays)

	// No fuzzy matching.
	info, err = svc.Lookup("onion")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestResolveOrCreateSynthesizesOnce(t *testing.T) {
	db := setupTestDB(t)
	gateway := &stubGateway{info: &model.StorageInfo{
		Category: model.CategoryOther, Name: "Durian Fruit",
		StorageDays: 5, StorageDesc: "3-5 days", StorageMethod: "wrap well, fridge",
	}}
	svc := NewStorageService(db, gateway)

	id, days := svc.ResolveOrCreate(context.Background(), "durian")
	require.NotNil(t, id)
	require.NotNil(t, days)
	assert.Equal(t, 5, *days)

	// The requested name wins over whatever the model echoed, so the
	// second resolve hits the table instead of the gateway.
	id2, days2 := svc.ResolveOrCreate(context.Background(), "durian")
	require.NotNil(t, id2)
	assert.Equal(t, *id, *id2)
	assert.Equal(t, 5, *days2)
	assert.Equal(t, 1, gateway.synthCalls)

	info, err := svc.Lookup("durian")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "durian", info.Name)
}

func TestResolveOrCreateToleratesFailure(t *testing.T) {
	db := setupTestDB(t)
	gateway := &stubGateway{err: errors.New("model unavailable")}
	svc := NewStorageService(db, gateway)

	id, days := svc.ResolveOrCreate(context.Background(), "durian")
	assert.Nil(t, id)
	assert.Nil(t, days)

	// Nothing persisted on failure.
	info, err := svc.Lookup("durian")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestResolveOrCreateWithoutGateway(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStorageService(db, nil)

	id, days := svc.ResolveOrCreate(context.Background(), "durian")
	assert.Nil(t, id)
	assert.Nil(t, days)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStorageService(db, nil)

	require.NoError(t, svc.Seed())
	var first int64
	db.Model(&model.StorageInfo{}).Count(&first)
	assert.Greater(t, first, int64(0))

	// Re-seeding leaves existing rows alone.
	var tofu model.StorageInfo
	require.NoError(t, db.Where("name = ?", "tofu").First(&tofu).Error)
	require.NoError(t, db.Model(&tofu).Update("storage_days", 99).Error)

	require.NoError(t, svc.Seed())
	var second int64
	db.Model(&model.StorageInfo{}).Count(&second)
	assert.Equal(t, first, second)

	require.NoError(t, db.Where("name = ?", "tofu").First(&tofu).Error)
	assert.Equal(t, 99, tofu.StorageDays)
}
