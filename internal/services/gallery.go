package services

import (
	"context"
	"io"

	"github.com/azaliev/showcase/internal/logging"
	"github.com/azaliev/showcase/internal/models"
	"github.com/azaliev/showcase/internal/repositories/gallery"
	"github.com/azaliev/showcase/internal/storage"
)

// GalleryService manages gallery images: upload-then-insert creation and
// removal of the row together with its stored object.
type GalleryService struct {
	repo  gallery.Repository
	store storage.ObjectStore
	log   logging.Logger
}

func NewGalleryService(repo gallery.Repository, store storage.ObjectStore, log logging.Logger) *GalleryService {
	return &GalleryService{repo: repo, store: store, log: log}
}

// List returns all images, newest first. An empty slice is a valid state.
func (s *GalleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	return s.repo.List(ctx)
}

// Upload stores the file, derives its public URL and inserts the record.
// A blank caption defaults to the uploaded file's name. Any step failing
// aborts the whole operation; an insert failure after a successful upload
// leaves the stored object orphaned, which is logged but not rolled back.
func (s *GalleryService) Upload(ctx context.Context, filename, caption string, f io.ReadSeeker) (*models.GalleryImage, error) {
	if caption == "" {
		caption = filename
	}

	contentType, err := detectContentType(f)
	if err != nil {
		return nil, err
	}

	key := storage.ObjectKey(storage.PrefixUploads, filename)
	if err := s.store.Upload(ctx, storage.BucketGallery, key, f, contentType); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &models.GalleryImage{
		Caption:    caption,
		ImageURL:   s.store.PublicURL(storage.BucketGallery, key),
		StorageKey: key,
	})
	if err != nil {
		s.log.Warn(ctx, "insert failed after upload, stored object orphaned", "key", key, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "gallery image added", "id", created.ID, "key", key)
	return created, nil
}

// Remove deletes the row first (it is authoritative), then removes the
// stored object best-effort. An object-removal failure is logged and does
// not fail the operation.
func (s *GalleryService) Remove(ctx context.Context, id string) error {
	key, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if key != "" {
		if err := s.store.Remove(ctx, storage.BucketGallery, key); err != nil {
			s.log.Warn(ctx, "stored object not removed", "key", key, "error", err)
		}
	}
	return nil
}
