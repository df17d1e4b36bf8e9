package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/recipe-builder/backend/internal/types"
)

const (
	MaxImageSize      = 5 << 20
	imageURLExpiry    = 24 * time.Hour
	recipeImagePrefix = "recipes"
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ObjectStore is where recipe images are kept. config.S3Config implements it.
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// ImageKeySetter records a recipe's image key.
type ImageKeySetter interface {
	SetImageKey(ctx context.Context, recipeID uuid.UUID, key string) error
}

// ImageService uploads recipe images to object storage.
type ImageService struct {
	store   ObjectStore
	recipes ImageKeySetter
	logger  *zap.Logger
}

// NewImageService builds the service. A nil store makes every upload fail
// with ErrStorageDisabled.
func NewImageService(store ObjectStore, recipes ImageKeySetter, logger *zap.Logger) *ImageService {
	return &ImageService{store: store, recipes: recipes, logger: logger}
}

// Upload stores data as the image of recipeID. The declared content type is
// checked against the sniffed one.
func (s *ImageService) Upload(ctx context.Context, recipeID uuid.UUID, contentType string, data []byte) (*types.RecipeImageResponse, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	detected := http.DetectContentType(data)
	ext, ok := imageExtensions[detected]
	if !ok || (contentType != "" && contentType != detected) {
		return nil, ErrUnsupportedImage
	}

	key := fmt.Sprintf("%s/%s/%s.%s", recipeImagePrefix, recipeID, uuid.New(), ext)
	if err := s.store.PutObject(ctx, key, detected, data); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if err := s.recipes.SetImageKey(ctx, recipeID, key); err != nil {
		return nil, err
	}

	url, err := s.store.GeneratePresignedURL(ctx, key, imageURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign image url: %w", err)
	}
	s.logger.Info("recipe image uploaded", zap.String("recipe_id", recipeID.String()), zap.String("key", key))
	return &types.RecipeImageResponse{RecipeID: recipeID.String(), ImageKey: key, ImageURL: url}, nil
}
