package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// MaxImageSize is the largest accepted avatar or post picture.
const MaxImageSize = 1 << 20

var imageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

// sniffImage returns the content type of data or ErrValidation when it is not an accepted image.
func sniffImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image is empty", model.ErrValidation)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("%w: image is larger than %d bytes", model.ErrValidation, MaxImageSize)
	}

	contentType := http.DetectContentType(data)
	if _, ok := imageTypes[contentType]; !ok {
		return "", fmt.Errorf("%w: unsupported image type %s", model.ErrValidation, contentType)
	}
	return contentType, nil
}

// avatarKey and pictureKey return a fresh key per upload, so a stored blob is never
// overwritten while a document still references it.
func avatarKey(userID uuid.UUID) string {
	return "avatars/" + userID.String() + "/" + uuid.NewString()
}

func pictureKey(postID uuid.UUID) string {
	return "posts/" + postID.String() + "/" + uuid.NewString()
}

func uploadImage(ctx context.Context, storage model.Storage, key string, data []byte) error {
	contentType, err := sniffImage(data)
	if err != nil {
		return err
	}
	if err := storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}
	return nil
}

// removeBlobs deletes keys ignoring failures; documents referencing them are already gone.
func removeBlobs(ctx context.Context, storage model.Storage, log *logger.Logger, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := storage.Delete(ctx, key); err != nil {
			log.Warn("failed to remove blob",
				"key", key,
				"error", err.Error())
		}
	}
}
