package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/azaliev/showcase/internal/common"
	"github.com/azaliev/showcase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n fake image body")

func TestGalleryUpload_BlankCaptionDefaultsToFilename(t *testing.T) {
	repo := &fakeGalleryRepo{}
	svc := NewGalleryService(repo, &fakeStore{}, discardLogger())

	created, err := svc.Upload(context.Background(), "photo.png", "", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "photo.png", created.Caption)
}

func TestGalleryUpload_ExplicitCaptionKept(t *testing.T) {
	repo := &fakeGalleryRepo{}
	svc := NewGalleryService(repo, &fakeStore{}, discardLogger())

	created, err := svc.Upload(context.Background(), "photo.png", "my caption", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "my caption", created.Caption)
}

func TestGalleryUpload_IdenticalFilenamesGetDistinctKeys(t *testing.T) {
	repo := &fakeGalleryRepo{}
	store := &fakeStore{}
	svc := NewGalleryService(repo, store, discardLogger())

	_, err := svc.Upload(context.Background(), "photo.png", "", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), "photo.png", "", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	require.Len(t, store.uploads, 2)
	assert.NotEqual(t, store.uploads[0].key, store.uploads[1].key)
	require.Len(t, repo.inserted, 2)
	assert.NotEqual(t, repo.inserted[0].ImageURL, repo.inserted[1].ImageURL)
}

func TestGalleryUpload_KeyAndURLShape(t *testing.T) {
	repo := &fakeGalleryRepo{}
	store := &fakeStore{}
	svc := NewGalleryService(repo, store, discardLogger())

	created, err := svc.Upload(context.Background(), "photo.png", "", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	up := store.uploads[0]
	assert.Equal(t, "gallery", up.bucket)
	assert.True(t, strings.HasPrefix(up.key, "uploads/"), "key %q", up.key)
	assert.Equal(t, "image/png", up.contentType)
	assert.Equal(t, "https://cdn.example.com/gallery/"+up.key, created.ImageURL)
}

func TestGalleryUpload_StorageFailureAbortsBeforeInsert(t *testing.T) {
	repo := &fakeGalleryRepo{}
	store := &fakeStore{uploadErr: errors.New("bucket gone")}
	svc := NewGalleryService(repo, store, discardLogger())

	_, err := svc.Upload(context.Background(), "photo.png", "", bytes.NewReader(pngBytes))
	require.Error(t, err)
	assert.Empty(t, repo.inserted, "no record may be inserted when the upload failed")
}

func TestGalleryUpload_InsertFailureSurfaces(t *testing.T) {
	repo := &fakeGalleryRepo{insertErr: errors.New("db down")}
	store := &fakeStore{}
	svc := NewGalleryService(repo, store, discardLogger())

	_, err := svc.Upload(context.Background(), "photo.png", "", bytes.NewReader(pngBytes))
	require.Error(t, err)
	// the uploaded object stays behind; orphaning is acknowledged
	assert.Len(t, store.uploads, 1)
}

func TestGalleryRemove_DeletesRowThenObject(t *testing.T) {
	repo := &fakeGalleryRepo{deleteKey: "uploads/k1"}
	store := &fakeStore{}
	svc := NewGalleryService(repo, store, discardLogger())

	require.NoError(t, svc.Remove(context.Background(), "g1"))
	assert.Equal(t, []string{"g1"}, repo.deleted)
	assert.Equal(t, []string{"gallery/uploads/k1"}, store.removals)
}

func TestGalleryRemove_ObjectFailureStillSucceeds(t *testing.T) {
	repo := &fakeGalleryRepo{deleteKey: "uploads/k1"}
	store := &fakeStore{removeErr: errors.New("object gone")}
	svc := NewGalleryService(repo, store, discardLogger())

	assert.NoError(t, svc.Remove(context.Background(), "g1"))
}

func TestGalleryRemove_NotFound(t *testing.T) {
	repo := &fakeGalleryRepo{deleteErr: common.ErrNotFound}
	store := &fakeStore{}
	svc := NewGalleryService(repo, store, discardLogger())

	err := svc.Remove(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, store.removals, "no object removal on a failed row delete")
}

func TestGalleryList_PassesThrough(t *testing.T) {
	repo := &fakeGalleryRepo{rows: []models.GalleryImage{{ID: "g1"}}}
	svc := NewGalleryService(repo, &fakeStore{}, discardLogger())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
