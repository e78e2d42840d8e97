package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/azaliev/showcase/internal/common"
	"github.com/azaliev/showcase/internal/logging"
	"github.com/azaliev/showcase/internal/models"
	"github.com/azaliev/showcase/internal/repositories/identity"
	"github.com/azaliev/showcase/internal/storage"
)

// IdentityService manages the singleton profile record. Logo upload and
// record persistence are deliberately decoupled: UploadLogo only stores the
// file and returns its URL; the caller must Save explicitly afterward.
type IdentityService struct {
	repo  identity.Repository
	store storage.ObjectStore
	log   logging.Logger
}

func NewIdentityService(repo identity.Repository, store storage.ObjectStore, log logging.Logger) *IdentityService {
	return &IdentityService{repo: repo, store: store, log: log}
}

// Load returns the identity record, or empty defaults when no row exists yet
// or the read fails. A blank profile keeps the form usable for first-time
// creation, so failures here are logged and swallowed.
func (s *IdentityService) Load(ctx context.Context) *models.Identity {
	ident, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "identity load failed, serving empty defaults", "error", err)
		return &models.Identity{}
	}
	if ident == nil {
		return &models.Identity{}
	}
	return ident
}

// UploadLogo stores the file in the identity bucket and returns its public
// URL. Nothing is persisted to the identity row.
func (s *IdentityService) UploadLogo(ctx context.Context, filename string, f io.ReadSeeker) (string, error) {
	contentType, err := detectContentType(f)
	if err != nil {
		return "", err
	}

	key := storage.ObjectKey(storage.PrefixLogos, filename)
	if err := s.store.Upload(ctx, storage.BucketIdentity, key, f, contentType); err != nil {
		return "", err
	}

	url := s.store.PublicURL(storage.BucketIdentity, key)
	s.log.Info(ctx, "logo uploaded", "key", key)
	return url, nil
}

// Save validates and persists the record as a single atomic upsert, so a
// rapid double-submit cannot produce two rows.
func (s *IdentityService) Save(ctx context.Context, ident *models.Identity) error {
	if strings.TrimSpace(ident.FullName) == "" {
		return fmt.Errorf("%w: full name is required", common.ErrValidation)
	}
	return s.repo.Upsert(ctx, ident)
}
