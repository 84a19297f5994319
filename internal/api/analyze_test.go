package api

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkeep/backend/internal/model"
	"github.com/freshkeep/backend/internal/service"
)

func testDataURL(t *testing.T, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAnalyzeImageJoinsRegistry(t *testing.T) {
	app := setupTestApp(t)
	info := seedStorage(t, app, model.CategoryVegetable, "tofu", 5)
	app.gateway.detected = []service.DetectedIngredient{
		{Name: "tofu", Quantity: 1, Box2D: []int{100, 200, 400, 500}},
		{Name: "mystery sauce", Quantity: 2},
	}

	body := ginListBody{"image": testDataURL(t, 1000, 500)}
	w := performRequest(t, app, http.MethodPost, "/api/analyze-image", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []DetectedItemView `json:"items"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Items, 2)

	tofu := resp.Items[0]
	assert.Equal(t, "tofu", tofu.Name)
	assert.Equal(t, []int{200, 50, 300, 150}, tofu.BoundingBox)
	require.NotNil(t, tofu.StorageID)
	assert.Equal(t, info.ID, *tofu.StorageID)
	require.NotNil(t, tofu.StorageDays)
	assert.Equal(t, 5, *tofu.StorageDays)
	require.NotNil(t, tofu.StorageDesc)

	unknown := resp.Items[1]
	assert.Nil(t, unknown.BoundingBox)
	assert.Nil(t, unknown.StorageID)
	assert.Nil(t, unknown.StorageDays)
	assert.Nil(t, unknown.StorageDesc)
}

func TestAnalyzeImageRejectsBadInput(t *testing.T) {
	app := setupTestApp(t)

	w := performRequest(t, app, http.MethodPost, "/api/analyze-image", ginListBody{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, app, http.MethodPost, "/api/analyze-image", ginListBody{"image": "data:image/png;base64,!!!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// valid base64 that is not a decodable image
	payload := base64.StdEncoding.EncodeToString([]byte("not an image"))
	w = performRequest(t, app, http.MethodPost, "/api/analyze-image", ginListBody{"image": "data:image/png;base64," + payload})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeImageSurfacesDetectionFailure(t *testing.T) {
	app := setupTestApp(t)
	app.gateway.detectErr = assert.AnError

	w := performRequest(t, app, http.MethodPost, "/api/analyze-image", ginListBody{"image": testDataURL(t, 10, 10)})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
