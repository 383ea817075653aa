// Package memory keeps blobs in process memory for single-node development runs.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dtroode/gophfeed-server/internal/model"
)

var _ model.Storage = (*Storage)(nil)

type object struct {
	data        []byte
	contentType string
}

type Storage struct {
	mu      sync.RWMutex
	objects map[string]object
}

func New() *Storage {
	return &Storage{objects: make(map[string]object)}
}

func (s *Storage) Upload(_ context.Context, key string, reader io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	s.mu.Lock()
	s.objects[key] = object{data: data, contentType: contentType}
	s.mu.Unlock()
	return nil
}

func (s *Storage) Download(_ context.Context, key string) (model.Blob, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return model.Blob{}, model.ErrNotFound
	}
	return model.Blob{Body: io.NopCloser(bytes.NewReader(obj.data)), ContentType: obj.contentType}, nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}
