package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/azaliev/showcase/internal/common"
	"github.com/azaliev/showcase/internal/logging"
	"github.com/azaliev/showcase/internal/models"
	"github.com/azaliev/showcase/internal/repositories/notices"
	"github.com/azaliev/showcase/internal/storage"
)

// NoticeService manages published notices. Same lifecycle as the gallery,
// with a required title checked before any storage call is issued.
type NoticeService struct {
	repo  notices.Repository
	store storage.ObjectStore
	log   logging.Logger
}

func NewNoticeService(repo notices.Repository, store storage.ObjectStore, log logging.Logger) *NoticeService {
	return &NoticeService{repo: repo, store: store, log: log}
}

// List returns all notices, newest first.
func (s *NoticeService) List(ctx context.Context) ([]models.Notice, error) {
	return s.repo.List(ctx)
}

// Publish uploads the document and inserts the notice record. A blank title
// rejects the request before anything is uploaded or inserted.
func (s *NoticeService) Publish(ctx context.Context, filename, title, description string, f io.ReadSeeker) (*models.Notice, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: please enter a title before uploading", common.ErrValidation)
	}

	contentType, err := detectContentType(f)
	if err != nil {
		return nil, err
	}

	key := storage.ObjectKey(storage.PrefixNotices, filename)
	if err := s.store.Upload(ctx, storage.BucketNotices, key, f, contentType); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &models.Notice{
		Title:       title,
		Description: description,
		PDFURL:      s.store.PublicURL(storage.BucketNotices, key),
		StorageKey:  key,
	})
	if err != nil {
		s.log.Warn(ctx, "insert failed after upload, stored object orphaned", "key", key, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "notice published", "id", created.ID, "key", key)
	return created, nil
}

// Remove deletes the row first, then removes the stored document
// best-effort.
func (s *NoticeService) Remove(ctx context.Context, id string) error {
	key, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if key != "" {
		if err := s.store.Remove(ctx, storage.BucketNotices, key); err != nil {
			s.log.Warn(ctx, "stored object not removed", "key", key, "error", err)
		}
	}
	return nil
}
