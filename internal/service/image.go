package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/freshkeep/backend/config"
)

// ImageService handles uploaded photo decoding, bounding-box geometry and
// optional S3 archival of analyzed photos.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates the image service. s3Config may be nil; archival
// then becomes a no-op and photos live only in the database.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// DecodeDataURL splits a "data:<mime>;base64,<payload>" string into raw
// bytes and MIME type. A bare base64 string without the data-URL prefix is
// accepted and assumed to be JPEG.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	mimeType := "image/jpeg"
	payload := dataURL

	if strings.HasPrefix(dataURL, "data:") {
		header, rest, ok := strings.Cut(dataURL, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		payload = rest
		header = strings.TrimPrefix(header, "data:")
		if m, _, found := strings.Cut(header, ";"); found && m != "" {
			mimeType = m
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image data: %w", err)
	}
	return raw, mimeType, nil
}

// ImageSize probes the pixel dimensions of an encoded image without fully
// decoding it.
func ImageSize(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image dimensions: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// ScaleBoundingBox converts a vision-model box in normalized
// [y1, x1, y2, x2] coordinates on a 0-1000 scale into pixel [x, y, w, h]
// for the given image size. Swapped corners are corrected; nil is returned
// when the box is unusable.
func ScaleBoundingBox(box []int, width, height int) []int {
	if len(box) != 4 || width <= 0 || height <= 0 {
		return nil
	}

	y1, x1, y2, x2 := box[0], box[1], box[2], box[3]
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 1000 {
			return 1000
		}
		return v
	}
	y1, x1, y2, x2 = clamp(y1), clamp(x1), clamp(y2), clamp(x2)

	px := x1 * width / 1000
	py := y1 * height / 1000
	pw := (x2 - x1) * width / 1000
	ph := (y2 - y1) * height / 1000
	if pw <= 0 || ph <= 0 {
		return nil
	}
	return []int{px, py, pw, ph}
}

// ArchivePhoto uploads an analyzed photo to the archive bucket and returns
// a presigned URL for it. Archival is best-effort: with no S3 configured or
// on upload failure it returns an empty URL and no error for the upload
// path the caller cares about.
func (s *ImageService) ArchivePhoto(ctx context.Context, data []byte, mimeType string) string {
	if s.s3Config == nil {
		return ""
	}

	ext := "jpg"
	switch mimeType {
	case "image/png":
		ext = "png"
	case "image/gif":
		ext = "gif"
	}
	key := fmt.Sprintf("analyzed-photos/%s.%s", uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		log.Printf("[ImageService] Failed to archive photo to S3: %v", err)
		return ""
	}

	url, err := s.s3Config.GeneratePresignedURL(ctx, key, 24*time.Hour)
	if err != nil {
		log.Printf("[ImageService] Failed to presign archived photo: %v", err)
		return ""
	}
	log.Printf("[ImageService] Archived analyzed photo as %s", key)
	return url
}
