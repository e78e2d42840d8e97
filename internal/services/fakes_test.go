package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/azaliev/showcase/internal/logging"
	"github.com/azaliev/showcase/internal/models"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type uploadCall struct {
	bucket      string
	key         string
	contentType string
}

// fakeStore records calls so tests can assert that nothing was uploaded or
// removed when an operation must abort early.
type fakeStore struct {
	uploads   []uploadCall
	removals  []string
	uploadErr error
	removeErr error
}

func (f *fakeStore) Upload(_ context.Context, bucket, key string, _ io.Reader, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, uploadCall{bucket: bucket, key: key, contentType: contentType})
	return nil
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return "https://cdn.example.com/" + bucket + "/" + key
}

func (f *fakeStore) Remove(_ context.Context, bucket, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removals = append(f.removals, bucket+"/"+key)
	return nil
}

type fakeIdentityRepo struct {
	row       *models.Identity
	getErr    error
	upsertErr error
	upserted  *models.Identity
}

func (f *fakeIdentityRepo) Get(context.Context) (*models.Identity, error) {
	return f.row, f.getErr
}

func (f *fakeIdentityRepo) Upsert(_ context.Context, ident *models.Identity) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = ident
	saved := *ident
	f.row = &saved
	return nil
}

type fakeGalleryRepo struct {
	rows      []models.GalleryImage
	listErr   error
	insertErr error
	inserted  []models.GalleryImage
	deleteErr error
	deleted   []string
	deleteKey string
}

func (f *fakeGalleryRepo) List(context.Context) ([]models.GalleryImage, error) {
	return f.rows, f.listErr
}

func (f *fakeGalleryRepo) Insert(_ context.Context, img *models.GalleryImage) (*models.GalleryImage, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	created := *img
	created.ID = "g1"
	f.inserted = append(f.inserted, created)
	return &created, nil
}

func (f *fakeGalleryRepo) Delete(_ context.Context, id string) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return f.deleteKey, nil
}

type fakeNoticeRepo struct {
	rows      []models.Notice
	listErr   error
	insertErr error
	inserted  []models.Notice
	deleteErr error
	deleted   []string
	deleteKey string
}

func (f *fakeNoticeRepo) List(context.Context) ([]models.Notice, error) {
	return f.rows, f.listErr
}

func (f *fakeNoticeRepo) Insert(_ context.Context, n *models.Notice) (*models.Notice, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	created := *n
	created.ID = "n1"
	f.inserted = append(f.inserted, created)
	return &created, nil
}

func (f *fakeNoticeRepo) Delete(_ context.Context, id string) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return f.deleteKey, nil
}
