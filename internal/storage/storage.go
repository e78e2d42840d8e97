// Package storage provides access to the S3-compatible object store backing
// file uploads. Buckets hold publicly readable objects; a public URL is
// derived deterministically from base endpoint, bucket and key, so an upload
// that succeeds is assumed resolvable without an existence check.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// Bucket names and the key prefix used inside each.
const (
	BucketIdentity = "identity"
	BucketGallery  = "gallery"
	BucketNotices  = "notices"

	PrefixLogos   = "logos"
	PrefixUploads = "uploads"
	PrefixNotices = "notices"
)

// ObjectStore is the bucket-scoped contract consumed by the services.
type ObjectStore interface {
	// Upload stores body under key in bucket with the given content type.
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) error

	// PublicURL returns the browser-resolvable URL for an uploaded object.
	PublicURL(bucket, key string) string

	// Remove deletes the object. Missing objects are not an error.
	Remove(ctx context.Context, bucket, key string) error
}

// ObjectKey builds a collision-resistant storage key: the prefix, a
// millisecond timestamp and a random UUID, keeping the original file's
// extension. Two uploads of identically named files never share a key.
func ObjectKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UnixMilli(), uuid.New(), path.Ext(filename))
}
