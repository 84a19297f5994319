package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshkeep/backend/internal/middleware"
	"github.com/freshkeep/backend/internal/service"
)

// AnalyzeHandler runs photo ingredient detection and joins the results
// with the storage registry.
type AnalyzeHandler struct {
	ai      service.AIGateway
	storage *service.StorageService
	images  *service.ImageService
	limiter *middleware.RateLimiter
}

func NewAnalyzeHandler(ai service.AIGateway, storage *service.StorageService, images *service.ImageService, limiter *middleware.RateLimiter) *AnalyzeHandler {
	return &AnalyzeHandler{ai: ai, storage: storage, images: images, limiter: limiter}
}

func (h *AnalyzeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/analyze-image", h.limiter.Middleware(), h.AnalyzeImage)
}

type analyzeImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// DetectedItemView is one detected ingredient joined with registry info.
// BoundingBox is pixel [x, y, w, h] or null when the model's box was
// unusable.
type DetectedItemView struct {
	Name        string     `json:"name"`
	Quantity    int        `json:"quantity"`
	BoundingBox []int      `json:"boundingBox"`
	StorageID   *uuid.UUID `json:"storageId"`
	StorageDays *int       `json:"storageDays"`
	StorageDesc *string    `json:"storageDesc"`
}

// AnalyzeImage decodes the uploaded photo, asks the vision model for
// ingredients, scales the bounding boxes to pixel coordinates and attaches
// known registry entries. Unknown names come back with null storage info;
// synthesis happens at save time, not here.
func (h *AnalyzeHandler) AnalyzeImage(c *gin.Context) {
	var req analyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image data provided."})
		return
	}

	imageData, mimeType, err := service.DecodeDataURL(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	width, height, err := service.ImageSize(imageData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detected, err := h.ai.DetectIngredients(c.Request.Context(), imageData, mimeType)
	if err != nil {
		log.Printf("[AnalyzeHandler] Detection failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI response could not be parsed. Please try again."})
		return
	}

	// Full-size photo archival is best-effort and must not delay or fail
	// the analysis response.
	go h.images.ArchivePhoto(context.Background(), imageData, mimeType)

	views := make([]DetectedItemView, 0, len(detected))
	for _, item := range detected {
		view := DetectedItemView{
			Name:        item.Name,
			Quantity:    item.Quantity,
			BoundingBox: service.ScaleBoundingBox(item.Box2D, width, height),
		}

		info, err := h.storage.Lookup(item.Name)
		if err != nil {
			log.Printf("[AnalyzeHandler] Registry lookup failed for %q: %v", item.Name, err)
		} else if info != nil {
			view.StorageID = &info.ID
			view.StorageDays = &info.StorageDays
			view.StorageDesc = &info.StorageDesc
		}

		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"items": views})
}
